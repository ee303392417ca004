// SPDX-License-Identifier: MPL-2.0

package loader

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/invowk/cmdloader/pkg/cueutil"
)

// ManifestFileName is the name of the identity manifest inside a command directory.
const ManifestFileName = "commands.cue"

const manifestHeader = "// Code generated by cmdloader manifest. DO NOT EDIT.\n\n"

//go:embed manifest_schema.cue
var manifestSchema []byte

type (
	// Manifest declares the identity of the commands in one directory so that
	// discovery does not depend on parsing source text.
	Manifest struct {
		// Namespace is the namespace of every file in the directory (flat mode only).
		Namespace string `json:"namespace,omitempty"`
		// Exclude lists doublestar globs of files that are never scanned.
		Exclude []string `json:"exclude,omitempty"`
		// Commands pins identifiers to files.
		Commands []ManifestEntry `json:"commands,omitempty"`
	}

	// ManifestEntry pins one file (relative, slash-separated) to an identifier.
	ManifestEntry struct {
		File string `json:"file"`
		ID   string `json:"id"`
	}
)

// LoadManifest reads dir/commands.cue. It returns nil and no error when the
// directory has no manifest.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	res, err := cueutil.ParseAndDecode[Manifest](manifestSchema, data, "#Manifest", cueutil.WithFilename(path))
	if err != nil {
		return nil, err
	}

	m := res.Value
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Validate checks the constraints the CUE schema cannot express: valid globs
// and unique file entries.
func (m *Manifest) Validate() error {
	for _, pattern := range m.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("exclude pattern %q is not a valid glob", pattern)
		}
	}
	seen := make(map[string]bool, len(m.Commands))
	for i, entry := range m.Commands {
		file := toSlash(entry.File)
		if seen[file] {
			return fmt.Errorf("commands[%d]: duplicate file %q", i, entry.File)
		}
		seen[file] = true
	}
	return nil
}

// lookup returns the pinned identifier for file. Safe on a nil manifest.
func (m *Manifest) lookup(file string) (string, bool) {
	if m == nil {
		return "", false
	}
	file = toSlash(file)
	for _, entry := range m.Commands {
		if toSlash(entry.File) == file {
			return entry.ID, true
		}
	}
	return "", false
}

// excludes returns the exclude globs. Safe on a nil manifest.
func (m *Manifest) excludes() []string {
	if m == nil {
		return nil
	}
	return m.Exclude
}

// CUE renders the manifest as a commands.cue file.
func (m *Manifest) CUE() ([]byte, error) {
	body, err := cueutil.Encode(m)
	if err != nil {
		return nil, err
	}
	return append([]byte(manifestHeader), body...), nil
}

// GenerateManifest builds a manifest for the files directly inside dir,
// pinning each file to the identifier derived from its namespace declaration.
// Existing pins and namespace are not consulted; an existing manifest only
// contributes its exclude globs. When every file declares the same namespace
// it is recorded as well. Files without a namespace declaration are reported
// as diagnostics and left out.
func GenerateManifest(dir string, opts ...Option) (*Manifest, []Diagnostic, error) {
	s := newSettings(opts)
	if err := s.syntax.Validate(); err != nil {
		return nil, nil, newError(ErrInvalidArgument, "GenerateManifest", "", "invalid syntax", err)
	}

	root, err := ResolveDir(s.workDir, dir)
	if err != nil {
		return nil, nil, err
	}

	existing, err := LoadManifest(root)
	if err != nil {
		return nil, nil, newError(ErrInvalidArgument, "GenerateManifest", filepath.Join(root, ManifestFileName), "existing manifest is invalid", err)
	}

	files, err := ScanDir(root, s.syntax, existing.excludes()...)
	if err != nil {
		return nil, nil, newError(ErrPathInvalid, "GenerateManifest", root, "scan failed", err)
	}

	m := &Manifest{Exclude: existing.excludes()}
	var diags []Diagnostic
	namespaces := make(map[string]bool)

	for _, file := range files {
		c, d := s.flatCandidate(root, file, nil)
		if d != nil {
			diags = append(diags, *d)
			continue
		}
		namespaces[c.Namespace] = true
		m.Commands = append(m.Commands, ManifestEntry{File: c.SourceFile, ID: c.ID})
	}

	if len(namespaces) == 1 {
		for ns := range namespaces {
			m.Namespace = ns
		}
	}
	return m, diags, nil
}
