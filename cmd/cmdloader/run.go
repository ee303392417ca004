// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/invowk/cmdloader/internal/commands/core"
	"github.com/invowk/cmdloader/pkg/command"
	"github.com/invowk/cmdloader/pkg/types"
)

// newRunCommand creates the `cmdloader run` command.
func newRunCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <module> <command> [args...]",
		Short: "Load a module and run one of its commands",
		Long: `Load a module, register its commands into a command tree and run one.

Everything after the command name is passed to it untouched. Commands run
against the working directory (--workdir) without changing the process
directory, and the exit status of scripts and vendored tools is preserved.

` + SubtitleStyle.Render("Examples:") + `
  cmdloader --path ./commands --namespace app run users create alice
  cmdloader run tools sh -c 'phpunit --version'`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, name := args[0], args[1]

			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}

			res, err := s.newLoader(app.Registry).ModuleCommands(module, nil)
			if err != nil {
				return actionable("load module", "", err)
			}

			if !slices.ContainsFunc(res.Commands, func(c command.Command) bool { return c.Name() == name }) {
				return actionable("run command", module+" "+name, fmt.Errorf("%w: %q", errCommandNotFound, name))
			}

			host := hostCommand(module, res.Commands)
			host.SetArgs(args[1:])
			host.SetIn(cmd.InOrStdin())
			host.SetOut(app.stdout)
			host.SetErr(app.stderr)

			env := &command.Env{
				WorkDir:    s.workDir,
				ProjectDir: s.workDir,
				Stdin:      cmd.InOrStdin(),
				Stdout:     app.stdout,
				Stderr:     app.stderr,
			}
			if err := host.ExecuteContext(command.WithEnv(cmd.Context(), env)); err != nil {
				if code, ok := core.ExitCode(err); ok {
					return &ExitError{Command: module + " " + name, Code: types.ExitCode(code)}
				}
				return actionable("run command", module+" "+name, err)
			}
			return nil
		},
	}

	cmd.Flags().SetInterspersed(false)
	return cmd
}

// hostCommand registers cmds under a parent named after the module, the way
// a host application adds discovered commands to its own tree.
func hostCommand(module string, cmds []command.Command) *cobra.Command {
	host := &cobra.Command{
		Use:           module,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	for _, c := range cmds {
		host.AddCommand(command.ToCobra(c))
	}
	return host
}
