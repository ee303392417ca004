// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ScanDir lists the source files directly inside dir, sorted by name.
// Hidden entries, directories, the manifest, and files matching the syntax
// ignore globs or the extra exclude globs are left out.
func ScanDir(dir string, syntax Syntax, exclude ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if keepSource(entry.Name(), entry.Name(), syntax, exclude) {
			files = append(files, entry.Name())
		}
	}
	// os.ReadDir already sorts by name; keep the guarantee explicit.
	sort.Strings(files)
	return files, nil
}

// UnreadableDir is a directory below a scanned tree that could not be listed.
type UnreadableDir struct {
	// Path is slash-separated and relative to the scanned directory.
	Path string
	Err  error
}

// ScanTree lists the source files below dir at any depth as slash-separated
// paths relative to dir, sorted. Hidden directories are not descended into.
// Subdirectories that cannot be listed are skipped and returned as
// unreadable; only a failure on dir itself is an error.
func ScanTree(dir string, syntax Syntax, exclude ...string) ([]string, []UnreadableDir, error) {
	var (
		files      []string
		unreadable []UnreadableDir
	)
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil && p == dir {
			return walkErr
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if walkErr != nil {
			unreadable = append(unreadable, UnreadableDir{Path: rel, Err: walkErr})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if p == dir {
			return nil
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if keepSource(d.Name(), rel, syntax, exclude) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk directory %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, unreadable, nil
}

// keepSource reports whether the file called name, at rel inside the scanned
// directory, is a source file to load.
func keepSource(name, rel string, syntax Syntax, exclude []string) bool {
	if strings.HasPrefix(name, ".") || name == ManifestFileName {
		return false
	}
	if !strings.HasSuffix(name, syntax.Extension) || name == syntax.Extension {
		return false
	}
	return !matchesAny(rel, syntax.Ignore) && !matchesAny(rel, exclude)
}

func matchesAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
