// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invowk/cmdloader/pkg/command"
	"github.com/invowk/cmdloader/pkg/registry"
)

// Filter decides whether a resolved, concrete type is instantiated.
type Filter func(registry.Type) bool

// HasTag returns a Filter accepting types carrying tag.
func HasTag(tag string) Filter {
	return func(t registry.Type) bool { return t.HasTag(tag) }
}

// Not inverts f.
func Not(f Filter) Filter {
	return func(t registry.Type) bool { return !f(t) }
}

// flatCandidate derives the flat-mode identity of root/file: a manifest pin,
// else the manifest namespace, else the namespace the file declares.
// A nil diagnostic means the candidate is usable.
func (s *settings) flatCandidate(root, file string, m *Manifest) (Candidate, *Diagnostic) {
	c := Candidate{SourceFile: file}
	full := filepath.Join(root, filepath.FromSlash(file))

	if id, ok := m.lookup(file); ok {
		c.ID = id
		return c, nil
	}

	if m != nil && m.Namespace != "" {
		c.Namespace = m.Namespace
		c.ID = s.syntax.FlatID(c.Namespace, file)
		return c, nil
	}

	contents, err := os.ReadFile(full)
	if err != nil {
		d := s.report(skipDiagnostic(CodeFileReadFailed, full, "", fmt.Sprintf("failed to read %s, skipping", full), err))
		return c, &d
	}

	ns, ok := s.syntax.ExtractNamespace(contents)
	if !ok {
		d := s.report(skipDiagnostic(CodeNamespaceNotFound, full, "",
			fmt.Sprintf("no %s declaration in %s, skipping", s.syntax.Keyword, full), nil))
		return c, &d
	}

	c.Namespace = ns
	c.ID = s.syntax.FlatID(ns, file)
	return c, nil
}

// moduleCandidate derives the module-mode identity of file. Declared
// namespaces are ignored; only a manifest pin overrides the derived identifier.
func (s *settings) moduleCandidate(prefix, module, file string, m *Manifest) Candidate {
	c := Candidate{SourceFile: file}
	if id, ok := m.lookup(file); ok {
		c.ID = id
		return c
	}
	c.ID = s.syntax.ModuleID(prefix, module, file)
	return c
}

// instantiate resolves c in the registry, applies filter and constructs the
// command. It returns a nil command and nil diagnostic when filter rejected
// the type.
func (s *settings) instantiate(root string, c Candidate, filter Filter) (command.Command, *Diagnostic) {
	full := filepath.Join(root, filepath.FromSlash(c.SourceFile))

	t, ok := s.registry.Lookup(c.ID)
	if !ok {
		d := s.report(skipDiagnostic(CodeClassUnresolvable, full, c.ID,
			fmt.Sprintf("unable to load %s, skipping", c.ID), registry.ErrUnknownType))
		return nil, &d
	}

	if t.Abstract {
		d := s.report(skipDiagnostic(CodeClassAbstract, full, c.ID,
			fmt.Sprintf("%s is abstract, skipping", c.ID), registry.ErrAbstractType))
		return nil, &d
	}

	if filter != nil && !filter(t) {
		s.logger.Debug("filtered out", "id", c.ID)
		return nil, nil
	}

	cmd, err := t.Instantiate()
	if err != nil {
		d := s.report(skipDiagnostic(CodeClassNotConstructible, full, c.ID,
			fmt.Sprintf("unable to construct %s, skipping", c.ID), err))
		return nil, &d
	}
	return cmd, nil
}

// skipDiagnostic builds the diagnostic for a file skipped as unresolvable.
func skipDiagnostic(code, path, id, message string, cause error) Diagnostic {
	severity := SeverityWarning
	if errors.Is(cause, registry.ErrAbstractType) {
		severity = SeverityInfo
	}
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Path:     path,
		ID:       id,
		Cause:    newError(ErrClassUnresolvable, "load", path, message, cause),
	}
}

// report writes d as a single log line and returns it.
func (s *settings) report(d Diagnostic) Diagnostic {
	keyvals := []any{"code", d.Code}
	switch d.Severity {
	case SeverityInfo:
		s.logger.Debug(d.Message, keyvals...)
	case SeverityWarning:
		s.logger.Warn(d.Message, keyvals...)
	default:
		s.logger.Error(d.Message, keyvals...)
	}
	return d
}
