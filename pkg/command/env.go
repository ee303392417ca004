// SPDX-License-Identifier: MPL-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// VendorBinDir is the project-relative directory holding vendored tool binaries.
const VendorBinDir = "vendor/bin"

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#EF4444"))

type (
	// Env is the explicit execution environment of a command. It replaces any
	// reliance on the process working directory.
	Env struct {
		// WorkDir is the directory relative paths are resolved against.
		WorkDir string
		// ProjectDir is the root of the host project (used for vendored binaries).
		// Defaults to WorkDir when empty.
		ProjectDir string
		// Stdin is the input stream for the command.
		Stdin io.Reader
		// Stdout is the output stream for the command.
		Stdout io.Writer
		// Stderr is the error output stream for the command.
		Stderr io.Writer
	}

	envContextKey struct{}
)

// WithEnv stores env in ctx.
func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envContextKey{}, env)
}

// EnvFrom returns the Env stored in ctx. When none was stored it returns an
// Env bound to the standard streams and the process working directory.
func EnvFrom(ctx context.Context) *Env {
	if env, ok := ctx.Value(envContextKey{}).(*Env); ok && env != nil {
		return env
	}
	return DefaultEnv()
}

// DefaultEnv returns an Env bound to the standard streams and the process
// working directory.
func DefaultEnv() *Env {
	wd, err := os.Getwd()
	if err != nil {
		slog.Warn("failed to determine working directory for command env", "error", err)
	}
	return &Env{
		WorkDir: wd,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Path resolves p against the work directory. Absolute paths are returned cleaned.
func (e *Env) Path(p string) string {
	if p == "" {
		return e.WorkDir
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(e.WorkDir, p)
}

// VendorBin returns the path of a vendored tool binary under the project directory.
// With an empty name it returns the vendor binary directory itself.
func (e *Env) VendorBin(name string) string {
	root := e.ProjectDir
	if root == "" {
		root = e.WorkDir
	}
	return filepath.Join(root, filepath.FromSlash(VendorBinDir), name)
}

// Errorf writes a highlighted error block to Stderr.
func (e *Env) Errorf(format string, args ...any) {
	w := e.Stderr
	if w == nil {
		w = os.Stderr
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(w, "\n%s\n\n", errorStyle.Render(" [ERROR] "+msg))
}
