// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"bytes"
	"os"
	"runtime"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/invowk/cmdloader/pkg/command"
)

// testLogger returns a debug-level logger writing into the returned buffer.
func testLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

func commandNames(cmds []command.Command) []string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name())
	}
	slices.Sort(names)
	return names
}

func diagnosticCodes(diags []Diagnostic) []string {
	codes := make([]string, 0, len(diags))
	for _, d := range diags {
		codes = append(codes, d.Code)
	}
	slices.Sort(codes)
	return codes
}

func assertNames(t *testing.T, cmds []command.Command, want ...string) {
	t.Helper()
	slices.Sort(want)
	if got := commandNames(cmds); !slices.Equal(got, want) {
		t.Errorf("commands = %v, want %v", got, want)
	}
}

// lockDir removes every permission from dir until the test ends. Tests using
// it are skipped where permissions cannot deny a directory listing.
func lockDir(t *testing.T, dir string) {
	t.Helper()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for this user")
	}
	if err := os.Chmod(dir, 0); err != nil {
		t.Fatalf("Chmod(%s) error = %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })
}
