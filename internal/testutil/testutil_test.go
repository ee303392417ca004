// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTree(t *testing.T) {
	t.Parallel()

	root := WriteTree(t, t.TempDir(), map[string]string{
		"a.go":          "package a\n",
		"nested/b/c.go": "package c\n",
	})

	data, err := os.ReadFile(filepath.Join(root, "nested", "b", "c.go"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "package c\n" {
		t.Errorf("contents = %q, want %q", data, "package c\n")
	}
}

func TestMustWriteFile_Overwrites(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	MustWriteFile(t, root, "commands/a.go", "package old\n")
	path := MustWriteFile(t, root, "commands/a.go", "package new\n")

	if want := filepath.Join(root, "commands", "a.go"); path != want {
		t.Errorf("MustWriteFile() = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "package new\n" {
		t.Errorf("contents = %q, want %q", data, "package new\n")
	}
}

func TestMustUnsetenv_Restores(t *testing.T) {
	const key = "CMDLOADER_TESTUTIL_UNSET"
	t.Setenv(key, "value")

	restore := MustUnsetenv(t, key)
	if _, ok := os.LookupEnv(key); ok {
		t.Fatal("variable still set after MustUnsetenv()")
	}

	restore()
	if got := os.Getenv(key); got != "value" {
		t.Errorf("Getenv() after restore = %q, want %q", got, "value")
	}
}
