// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/invowk/cmdloader/pkg/types"
)

// ResolveDir turns raw into the canonical absolute path of an existing
// directory. Relative paths are resolved against workDir, or against the
// process working directory when workDir is empty. Symlinks are evaluated.
// Any failure is an *Error of kind ErrPathInvalid.
func ResolveDir(workDir, raw string) (string, error) {
	const op = "ResolveDir"

	if err := types.FilesystemPath(raw).Validate(); err != nil {
		return "", newError(ErrPathInvalid, op, raw, "path is empty", err)
	}

	p := raw
	if !filepath.IsAbs(p) && workDir != "" {
		p = filepath.Join(workDir, p)
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", newError(ErrPathInvalid, op, raw, "cannot make path absolute", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", newError(ErrPathInvalid, op, abs, fmt.Sprintf("cannot resolve %s", abs), err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", newError(ErrPathInvalid, op, resolved, fmt.Sprintf("cannot stat %s", resolved), err)
	}
	if !info.IsDir() {
		return "", newError(ErrPathInvalid, op, resolved, fmt.Sprintf("%s is not a directory", resolved), nil)
	}

	return resolved, nil
}
