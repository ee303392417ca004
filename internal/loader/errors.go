// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// PolicyStrict returns configuration and resolution failures as errors.
	PolicyStrict Policy = "strict"
	// PolicySoft converts configuration and resolution failures into an
	// error diagnostic plus an empty result.
	PolicySoft Policy = "soft"
)

var (
	// ErrPathInvalid is returned when a path cannot be resolved to an existing directory.
	ErrPathInvalid = errors.New("path invalid")
	// ErrModuleNotFound is returned when a module subdirectory does not exist.
	ErrModuleNotFound = errors.New("module not found")
	// ErrLoaderNotReady is returned when required loader configuration is missing.
	ErrLoaderNotReady = errors.New("loader not ready")
	// ErrInvalidArgument is returned when a required argument is empty or malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrClassUnresolvable marks a file that was skipped during a scan. It is
	// only ever carried by diagnostics, never returned.
	ErrClassUnresolvable = errors.New("class unresolvable")

	// ErrInvalidPolicy is returned when a Policy value is not recognized.
	ErrInvalidPolicy = errors.New("invalid error policy")
)

type (
	// Policy selects how configuration and resolution failures are reported.
	Policy string

	// Error is the concrete error produced by the loader. errors.Is matches it
	// against its Kind, and errors.Unwrap yields the underlying cause.
	Error struct {
		// Kind is one of the Err* sentinels of this package.
		Kind error
		// Op is the loader operation that failed (e.g., "ModulePath").
		Op string
		// Path is the path involved, if any.
		Path string
		// Message is the human-readable detail.
		Message string
		// Cause is the underlying error (optional).
		Cause error
	}
)

// ParsePolicy converts s into a Policy. The empty string maps to PolicyStrict.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyStrict, nil
	case PolicyStrict, PolicySoft:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (expected %q or %q)", ErrInvalidPolicy, s, PolicyStrict, PolicySoft)
	}
}

// String returns the policy name.
func (p Policy) String() string { return string(p) }

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("loader error")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the error's Kind.
func (e *Error) Is(target error) bool { return e.Kind != nil && target == e.Kind }

func newError(kind error, op, path, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Message: message, Cause: cause}
}
