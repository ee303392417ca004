// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	stderrors "errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// ValidationError lists the CUE errors of one file, one "<path>: <message>"
// line each. It unwraps to the original CUE error.
type ValidationError struct {
	File  string
	Lines []string
	Err   error
}

// Error returns "<file>: <line>" for a single problem and an indented list
// otherwise.
func (e *ValidationError) Error() string {
	if len(e.Lines) == 1 {
		return e.File + ": " + e.Lines[0]
	}
	return e.File + ": validation failed:\n  " + strings.Join(e.Lines, "\n  ")
}

// Unwrap returns the underlying CUE error.
func (e *ValidationError) Unwrap() error { return e.Err }

// FormatError flattens a CUE error into a *ValidationError whose lines read
// "<path>: <message>", where path uses JSON notation (e.g. "commands[0].file").
// Non-CUE errors are wrapped with the file name.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	var ce errors.Error
	if !stderrors.As(err, &ce) {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	cueErrors := errors.Errors(err)
	lines := make([]string, 0, len(cueErrors))
	for _, e := range cueErrors {
		pathStr := formatPath(errors.Path(e))
		msg := e.Error()

		// CUE sometimes repeats the path inside the message.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}

		if pathStr != "" {
			lines = append(lines, pathStr+": "+msg)
		} else {
			lines = append(lines, msg)
		}
	}

	return &ValidationError{File: filePath, Lines: lines, Err: err}
}

// formatPath converts ["commands", "0", "file"] into "commands[0].file".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize returns an error if data is larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, len(data), maxSize)
	}
	return nil
}
