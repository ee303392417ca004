// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"path"
	"strings"
)

// Candidate describes one scanned file on its way through the pipeline.
type Candidate struct {
	// SourceFile is the file path relative to the scanned directory, slash-separated.
	SourceFile string
	// Namespace is the namespace the file declared, when it was extracted.
	Namespace string
	// ID is the fully-qualified identifier looked up in the registry.
	ID string
}

// BaseName strips any directory and the source extension from file.
func (s Syntax) BaseName(file string) string {
	return strings.TrimSuffix(path.Base(toSlash(file)), s.Extension)
}

// FlatID joins a declared namespace and the file's base name.
//
//	Syntax{Separator: `\`, Extension: ".src"}.FlatID("NS", "CmdA.src") == `NS\CmdA`
func (s Syntax) FlatID(namespace, file string) string {
	return namespace + s.Separator + s.BaseName(file)
}

// ModuleID joins the configured prefix, the module and the file location.
// Path separators inside module and the nested file name become the identity
// separator, so "Admin/Reset.go" in module "Users" under prefix "app" yields
// "app.Users.Admin.Reset" with a "." separator.
func (s Syntax) ModuleID(prefix, module, file string) string {
	rel := strings.TrimSuffix(toSlash(file), s.Extension)
	parts := []string{prefix, s.normalize(module), s.normalize(rel)}
	return strings.Join(parts, s.Separator)
}

// normalize replaces path separators with the identity separator and trims
// separators from both ends.
func (s Syntax) normalize(p string) string {
	p = strings.Trim(toSlash(p), "/")
	return strings.ReplaceAll(p, "/", s.Separator)
}

// toSlash converts both slash kinds to forward slashes regardless of platform.
func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
