// SPDX-License-Identifier: MPL-2.0

package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/invowk/cmdloader/pkg/command"
)

// Vendor runs a binary from the project's vendor/bin directory.
type Vendor struct{ command.Base }

func init() {
	register("vendor", NewVendor, TagExec)
}

// NewVendor creates the vendor command.
func NewVendor() command.Command {
	return &Vendor{Base: command.NewBase("vendor", "Run a vendored tool binary")}
}

// Run executes vendor.
// Usage: vendor NAME [ARG...]
func (c *Vendor) Run(ctx context.Context, args []string) error {
	env := command.EnvFrom(ctx)
	if len(args) == 0 {
		return wrapError(c.Name(), errMissingOperand)
	}

	bin := env.VendorBin(args[0])
	if _, err := os.Stat(bin); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return wrapError(c.Name(), fmt.Errorf("vendored binary %q not found in %s", args[0], env.VendorBin("")))
		}
		return wrapError(c.Name(), err)
	}

	cmd := exec.CommandContext(ctx, bin, args[1:]...)
	cmd.Dir = env.WorkDir
	cmd.Stdin = env.Stdin
	cmd.Stdout = env.Stdout
	cmd.Stderr = env.Stderr
	if err := cmd.Run(); err != nil {
		return wrapError(c.Name(), err)
	}
	return nil
}
