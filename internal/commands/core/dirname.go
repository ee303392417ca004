// SPDX-License-Identifier: MPL-2.0

package core

import (
	"context"
	"fmt"
	"path"

	"github.com/invowk/cmdloader/pkg/command"
)

// Dirname prints the directory portion of each path.
type Dirname struct{ command.Base }

func init() {
	register("dirname", NewDirname, TagFS)
}

// NewDirname creates the dirname command.
func NewDirname() command.Command {
	return &Dirname{Base: command.NewBase("dirname", "Strip the last element from each path")}
}

// Run executes dirname.
// Usage: dirname PATH [PATH...]
func (c *Dirname) Run(ctx context.Context, args []string) error {
	env := command.EnvFrom(ctx)
	if len(args) == 0 {
		return wrapError(c.Name(), errMissingOperand)
	}
	for _, p := range args {
		fmt.Fprintln(env.Stdout, path.Dir(toSlash(p)))
	}
	return nil
}
