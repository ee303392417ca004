// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"fmt"
	"path/filepath"
)

// LoadDirectory loads every command whose source file sits directly inside
// dir. Each file's identifier is its declared namespace joined with its base
// name, unless a commands.cue manifest says otherwise. LoadDirectory never
// fails: an unresolvable directory yields an empty Result with an
// informational diagnostic, and skipped files yield warnings. The policy
// option is ignored.
func LoadDirectory(dir string, opts ...Option) Result {
	s := newSettings(opts)

	var res Result
	if err := s.syntax.Validate(); err != nil {
		res.Diagnostics = append(res.Diagnostics, s.report(Diagnostic{
			Severity: SeverityError,
			Code:     CodeSyntaxInvalid,
			Message:  err.Error(),
			Cause:    err,
		}))
		return res
	}

	root, err := ResolveDir(s.workDir, dir)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, s.report(Diagnostic{
			Severity: SeverityInfo,
			Code:     CodeDirectoryUnresolvable,
			Message:  fmt.Sprintf("directory %q cannot be resolved, nothing to load", dir),
			Path:     dir,
			Cause:    err,
		}))
		return res
	}

	m, err := LoadManifest(root)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, s.report(Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeManifestInvalid,
			Message:  fmt.Sprintf("ignoring manifest in %s", root),
			Path:     filepath.Join(root, ManifestFileName),
			Cause:    err,
		}))
		m = nil
	}

	files, err := ScanDir(root, s.syntax, m.excludes()...)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, s.report(Diagnostic{
			Severity: SeverityInfo,
			Code:     CodeScanFailed,
			Message:  fmt.Sprintf("cannot list %s, nothing to load", root),
			Path:     root,
			Cause:    err,
		}))
		return res
	}

	for _, file := range files {
		c, d := s.flatCandidate(root, file, m)
		if d != nil {
			res.Diagnostics = append(res.Diagnostics, *d)
			continue
		}
		cmd, d := s.instantiate(root, c, nil)
		if d != nil {
			res.Diagnostics = append(res.Diagnostics, *d)
		}
		if cmd != nil {
			res.Commands = append(res.Commands, cmd)
		}
	}
	return res
}
