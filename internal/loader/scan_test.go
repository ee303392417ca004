// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/invowk/cmdloader/internal/testutil"
)

func TestResolveDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	testutil.MustMkdirAll(t, filepath.Join(root, "commands", "Users"))
	file := testutil.MustWriteFile(t, root, "plain.txt", "x")

	canonicalRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("EvalSymlinks() error = %v", err)
	}

	t.Run("relative to work dir", func(t *testing.T) {
		t.Parallel()

		got, err := ResolveDir(root, "./commands")
		if err != nil {
			t.Fatalf("ResolveDir() error = %v", err)
		}
		if want := filepath.Join(canonicalRoot, "commands"); got != want {
			t.Errorf("ResolveDir() = %q, want %q", got, want)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		first, err := ResolveDir(root, "commands/Users/..")
		if err != nil {
			t.Fatalf("ResolveDir() error = %v", err)
		}
		second, err := ResolveDir(root, "commands/Users/..")
		if err != nil {
			t.Fatalf("ResolveDir() error = %v", err)
		}
		again, err := ResolveDir("", first)
		if err != nil {
			t.Fatalf("ResolveDir() error = %v", err)
		}
		if first != second || first != again {
			t.Errorf("resolutions differ: %q, %q, %q", first, second, again)
		}
	})

	failures := map[string]string{
		"empty":     "",
		"missing":   "does-not-exist",
		"not a dir": file,
	}
	for name, raw := range failures {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ResolveDir(root, raw)
			if !errors.Is(err, ErrPathInvalid) {
				t.Fatalf("ResolveDir(%q) error = %v, want ErrPathInvalid", raw, err)
			}
			var le *Error
			if !errors.As(err, &le) || le.Op != "ResolveDir" {
				t.Errorf("error = %#v, want *Error with Op ResolveDir", err)
			}
		})
	}
}

func TestResolveDir_Symlink(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	target := filepath.Join(root, "target")
	testutil.MustMkdirAll(t, target)
	link := filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := ResolveDir("", link)
	if err != nil {
		t.Fatalf("ResolveDir() error = %v", err)
	}
	want, _ := filepath.EvalSymlinks(target)
	if got != want {
		t.Errorf("ResolveDir() = %q, want %q", got, want)
	}
}

func TestScanDir(t *testing.T) {
	t.Parallel()

	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"b.go":             "package b\n",
		"a.go":             "package a\n",
		"a_test.go":        "package a\n",
		"doc.go":           "package a\n",
		".hidden.go":       "package a\n",
		"notes.txt":        "x",
		"generated_x.go":   "package a\n",
		"nested/deep.go":   "package deep\n",
		ManifestFileName:   "namespace: \"a\"\n",
		"nested/.skip.go":  "package x\n",
		"nested/x_test.go": "package x\n",
	})

	got, err := ScanDir(root, GoSyntax(), "generated_*.go")
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}
	if want := []string{"a.go", "b.go"}; !slices.Equal(got, want) {
		t.Errorf("ScanDir() = %v, want %v", got, want)
	}

	tree, unreadable, err := ScanTree(root, GoSyntax(), "generated_*.go")
	if err != nil || len(unreadable) != 0 {
		t.Fatalf("ScanTree() error = %v, unreadable = %v", err, unreadable)
	}
	if want := []string{"a.go", "b.go", "nested/deep.go"}; !slices.Equal(tree, want) {
		t.Errorf("ScanTree() = %v, want %v", tree, want)
	}
}

func TestScanTree_SkipsHiddenDirectories(t *testing.T) {
	t.Parallel()

	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"Create.src":           "namespace X;",
		".git/Hook.src":        "namespace X;",
		"Admin/Reset.src":      "namespace X;",
		"Admin/notes.md":       "",
		"Admin/.cache/Old.src": "namespace X;",
	})

	got, _, err := ScanTree(root, phpSyntax())
	if err != nil {
		t.Fatalf("ScanTree() error = %v", err)
	}
	if want := []string{"Admin/Reset.src", "Create.src"}; !slices.Equal(got, want) {
		t.Errorf("ScanTree() = %v, want %v", got, want)
	}
}

func TestScanTree_UnreadableSubdirectory(t *testing.T) {
	t.Parallel()

	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"Create.src":          "namespace X;",
		"Admin/Reset.src":     "namespace X;",
		"Locked/Secret.src":   "namespace X;",
		"Locked/Deep/Hid.src": "namespace X;",
		"Zeta/Last.src":       "namespace X;",
	})
	lockDir(t, filepath.Join(root, "Locked"))

	got, unreadable, err := ScanTree(root, phpSyntax())
	if err != nil {
		t.Fatalf("ScanTree() error = %v, want the unreadable directory skipped", err)
	}
	if want := []string{"Admin/Reset.src", "Create.src", "Zeta/Last.src"}; !slices.Equal(got, want) {
		t.Errorf("ScanTree() = %v, want %v", got, want)
	}
	if len(unreadable) != 1 || unreadable[0].Path != "Locked" || unreadable[0].Err == nil {
		t.Errorf("unreadable = %+v, want only Locked", unreadable)
	}
}

func TestScanTree_UnreadableRoot(t *testing.T) {
	t.Parallel()

	if _, _, err := ScanTree(filepath.Join(t.TempDir(), "nope"), phpSyntax()); err == nil {
		t.Error("ScanTree() on a missing directory returned nil error")
	}
}

func TestScanDir_Missing(t *testing.T) {
	t.Parallel()

	if _, err := ScanDir(filepath.Join(t.TempDir(), "nope"), GoSyntax()); err == nil {
		t.Error("ScanDir() on a missing directory returned nil error")
	}
}
