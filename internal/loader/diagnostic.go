// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"

	"github.com/invowk/cmdloader/pkg/command"
)

const (
	// SeverityInfo marks an expected skip (e.g., an abstract type).
	SeverityInfo Severity = "info"
	// SeverityWarning indicates a recoverable problem with a single file.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a failure that emptied the result under the soft policy.
	SeverityError Severity = "error"
)

// Diagnostic codes.
const (
	CodeNamespaceNotFound      = "namespace_not_found"
	CodeClassUnresolvable      = "class_unresolvable"
	CodeClassAbstract          = "class_abstract"
	CodeClassNotConstructible  = "class_not_constructible"
	CodeFileReadFailed         = "file_read_failed"
	CodeManifestInvalid        = "manifest_invalid"
	CodeScanFailed             = "scan_failed"
	CodeDirectoryUnresolvable  = "directory_unresolvable"
	CodeSyntaxInvalid          = "syntax_invalid"
	CodePathInvalid            = "path_invalid"
	CodeModuleNotFound         = "module_not_found"
	CodeLoaderNotReady         = "loader_not_ready"
	CodeInvalidArgument        = "invalid_argument"
	codeUnknownLoaderCondition = "loader_error"
)

type (
	// Severity represents diagnostic severity.
	Severity string

	// Diagnostic is a structured, non-fatal message produced while loading.
	// Every diagnostic is also written as one line to the loader's logger.
	Diagnostic struct {
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier (e.g., "class_unresolvable").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file or directory the diagnostic refers to (optional).
		Path string
		// ID is the fully-qualified identifier involved (optional).
		ID string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}

	// Result is the outcome of a load: the instantiated commands plus every
	// diagnostic produced on the way.
	Result struct {
		Commands    []command.Command
		Diagnostics []Diagnostic
	}
)

// Skipped returns the number of files skipped as unresolvable.
func (r Result) Skipped() int {
	n := 0
	for _, d := range r.Diagnostics {
		if errors.Is(d.Cause, ErrClassUnresolvable) {
			n++
		}
	}
	return n
}

// HasErrors reports whether any diagnostic has error severity.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// diagnosticFor converts a configuration error into an error diagnostic.
func diagnosticFor(err error) Diagnostic {
	d := Diagnostic{
		Severity: SeverityError,
		Code:     codeUnknownLoaderCondition,
		Message:  err.Error(),
		Cause:    err,
	}

	var le *Error
	if errors.As(err, &le) {
		d.Path = le.Path
	}

	switch {
	case errors.Is(err, ErrLoaderNotReady):
		d.Code = CodeLoaderNotReady
	case errors.Is(err, ErrInvalidArgument):
		d.Code = CodeInvalidArgument
	case errors.Is(err, ErrModuleNotFound):
		d.Code = CodeModuleNotFound
	case errors.Is(err, ErrPathInvalid):
		d.Code = CodePathInvalid
	}
	return d
}
