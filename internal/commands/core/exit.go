// SPDX-License-Identifier: MPL-2.0

package core

import (
	"errors"
	"os/exec"

	"mvdan.cc/sh/v3/interp"
)

// ExitCode extracts the exit status of a script or child process from err.
// It reports false when err carries no exit status.
func ExitCode(err error) (int, bool) {
	var status interp.ExitStatus
	if errors.As(err, &status) {
		return int(status), true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
