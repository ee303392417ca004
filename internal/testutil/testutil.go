// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MustUnsetenv unsets the environment variable key for the rest of the test.
// It returns a cleanup function that restores the original value (if any).
// Tests using it must not call t.Parallel.
func MustUnsetenv(t testing.TB, key string) func() {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	return func() {
		if !hadValue {
			return
		}
		if err := os.Setenv(key, originalValue); err != nil {
			t.Errorf("failed to restore env %s: %v", key, err)
		}
	}
}

// MustMkdirAll creates a directory along with any necessary parents.
func MustMkdirAll(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// MustWriteFile writes contents to root/rel, creating parent directories.
// rel is slash-separated.
func MustWriteFile(t testing.TB, root, rel, contents string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	MustMkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteTree writes every rel -> contents pair below root and returns root.
// A fixture tree is typically a command directory, e.g.
//
//	root := testutil.WriteTree(t, t.TempDir(), map[string]string{
//		"commands/users/create.go": "package app\n",
//	})
func WriteTree(t testing.TB, root string, files map[string]string) string {
	t.Helper()
	for rel, contents := range files {
		MustWriteFile(t, root, rel, contents)
	}
	return root
}
