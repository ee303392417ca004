// SPDX-License-Identifier: MPL-2.0

package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/invowk/cmdloader/pkg/command"
)

// Shell interprets a POSIX shell script in-process with vendored binaries on PATH.
type Shell struct{ command.Base }

func init() {
	register("sh", NewShell, TagExec)
}

// NewShell creates the sh command.
func NewShell() command.Command {
	return &Shell{Base: command.NewBase("sh", "Run a shell script with vendored binaries on PATH")}
}

// Run executes sh.
// Usage: sh -c SCRIPT [ARG...] | sh FILE [ARG...]
func (c *Shell) Run(ctx context.Context, args []string) error {
	env := command.EnvFrom(ctx)

	script, name, params, err := c.source(env, args)
	if err != nil {
		return wrapError(c.Name(), err)
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), name)
	if err != nil {
		return wrapError(c.Name(), fmt.Errorf("script syntax error: %w", err))
	}

	opts := []interp.RunnerOption{
		interp.Dir(env.WorkDir),
		interp.Env(expand.ListEnviron(shellEnviron(env)...)),
		interp.StdIO(env.Stdin, env.Stdout, env.Stderr),
	}
	// "--" keeps arguments such as "-v" from being read as shell options.
	if len(params) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, params...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return wrapError(c.Name(), fmt.Errorf("failed to create interpreter: %w", err))
	}
	if err := runner.Run(ctx, prog); err != nil {
		return wrapError(c.Name(), err)
	}
	return nil
}

// source returns the script text, its display name and positional parameters.
func (c *Shell) source(env *command.Env, args []string) (script, name string, params []string, err error) {
	if len(args) == 0 {
		return "", "", nil, errMissingOperand
	}
	if args[0] == "-c" {
		if len(args) < 2 {
			return "", "", nil, fmt.Errorf("-c requires an argument")
		}
		return args[1], "script", args[2:], nil
	}

	path := env.Path(args[0])
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to read script: %w", err)
	}
	return string(data), path, args[1:], nil
}

// shellEnviron returns the process environment with the vendor binary
// directory prepended to PATH.
func shellEnviron(env *command.Env) []string {
	environ := os.Environ()
	vendorBin := env.VendorBin("")
	for i, kv := range environ {
		if key, value, ok := strings.Cut(kv, "="); ok && strings.EqualFold(key, "PATH") {
			environ[i] = key + "=" + vendorBin + string(filepath.ListSeparator) + value
			return environ
		}
	}
	return append(environ, "PATH="+vendorBin)
}
