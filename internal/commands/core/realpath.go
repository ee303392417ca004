// SPDX-License-Identifier: MPL-2.0

package core

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/invowk/cmdloader/pkg/command"
)

// Realpath resolves each path against the command work directory, following symlinks.
type Realpath struct{ command.Base }

func init() {
	register("realpath", NewRealpath, TagFS)
}

// NewRealpath creates the realpath command.
func NewRealpath() command.Command {
	return &Realpath{Base: command.NewBase("realpath", "Print the resolved absolute path of each argument")}
}

// Run executes realpath.
// Usage: realpath PATH [PATH...]
func (c *Realpath) Run(ctx context.Context, args []string) error {
	env := command.EnvFrom(ctx)
	if len(args) == 0 {
		return wrapError(c.Name(), errMissingOperand)
	}

	for _, p := range args {
		resolved, err := filepath.EvalSymlinks(env.Path(p))
		if err != nil {
			return wrapError(c.Name(), err)
		}
		resolved, err = filepath.Abs(resolved)
		if err != nil {
			return wrapError(c.Name(), err)
		}
		fmt.Fprintln(env.Stdout, filepath.ToSlash(resolved))
	}
	return nil
}
