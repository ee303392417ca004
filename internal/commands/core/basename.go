// SPDX-License-Identifier: MPL-2.0

package core

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/invowk/cmdloader/pkg/command"
)

var errMissingOperand = errors.New("missing operand")

// Basename prints the final element of a path, optionally stripping a suffix.
type Basename struct{ command.Base }

func init() {
	register("basename", NewBasename, TagFS)
}

// NewBasename creates the basename command.
func NewBasename() command.Command {
	return &Basename{Base: command.NewBase("basename", "Strip directory and suffix from a path")}
}

// Run executes basename.
// Usage: basename PATH [SUFFIX]
func (c *Basename) Run(ctx context.Context, args []string) error {
	env := command.EnvFrom(ctx)
	if len(args) == 0 {
		return wrapError(c.Name(), errMissingOperand)
	}

	base := path.Base(toSlash(args[0]))
	if len(args) > 1 {
		suffix := args[1]
		if suffix != "" && strings.HasSuffix(base, suffix) && base != suffix {
			base = strings.TrimSuffix(base, suffix)
		}
	}

	fmt.Fprintln(env.Stdout, base)
	return nil
}

// toSlash converts both separator kinds so paths print the same on every platform.
func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
