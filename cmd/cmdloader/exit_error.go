// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/cmdloader/pkg/types"
)

// ExitError carries the status a loaded command finished with back to
// Execute, which turns Code into the process exit code. With a nil Err the
// failure has already been reported by the command itself and nothing else
// is printed.
type ExitError struct {
	// Command is the "<module> <name>" pair of the command that exited.
	Command string
	Code    types.ExitCode
	Err     error
}

func (e *ExitError) Error() string {
	switch {
	case e.Err != nil:
		return e.Err.Error()
	case e.Command != "":
		return fmt.Sprintf("%s: exit status %d", e.Command, e.Code)
	default:
		return fmt.Sprintf("exit status %d", e.Code)
	}
}

func (e *ExitError) Unwrap() error { return e.Err }
