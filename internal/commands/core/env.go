// SPDX-License-Identifier: MPL-2.0

package core

import (
	"context"
	"fmt"

	"github.com/invowk/cmdloader/pkg/command"
)

// EnvCommand prints the execution environment commands receive.
type EnvCommand struct{ command.Base }

func init() {
	register("env", NewEnv)
}

// NewEnv creates the env command.
func NewEnv() command.Command {
	return &EnvCommand{Base: command.NewBase("env", "Print the command execution environment")}
}

// Run executes env.
func (c *EnvCommand) Run(ctx context.Context, args []string) error {
	env := command.EnvFrom(ctx)
	if len(args) > 0 {
		return wrapError(c.Name(), fmt.Errorf("unexpected argument %q", args[0]))
	}

	projectDir := env.ProjectDir
	if projectDir == "" {
		projectDir = env.WorkDir
	}
	fmt.Fprintf(env.Stdout, "work_dir=%s\n", env.WorkDir)
	fmt.Fprintf(env.Stdout, "project_dir=%s\n", projectDir)
	fmt.Fprintf(env.Stdout, "vendor_bin=%s\n", env.VendorBin(""))
	return nil
}
