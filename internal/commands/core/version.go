// SPDX-License-Identifier: MPL-2.0

package core

import (
	"context"
	"fmt"

	"github.com/invowk/cmdloader/pkg/command"
)

// Build information, set via -ldflags "-X github.com/invowk/cmdloader/internal/commands/core.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// VersionCommand prints the build information.
type VersionCommand struct{ command.Base }

func init() {
	register("version", NewVersion)
}

// NewVersion creates the version command.
func NewVersion() command.Command {
	return &VersionCommand{Base: command.NewBase("version", "Print the build version")}
}

// Run executes version. With "--short" only the version is printed.
func (c *VersionCommand) Run(ctx context.Context, args []string) error {
	env := command.EnvFrom(ctx)
	if len(args) > 0 && args[0] == "--short" {
		fmt.Fprintln(env.Stdout, Version)
		return nil
	}
	fmt.Fprintf(env.Stdout, "cmdloader %s (commit %s, built %s)\n", Version, Commit, BuildDate)
	return nil
}
