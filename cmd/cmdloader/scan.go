// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/cmdloader/internal/loader"
)

// newScanCommand creates the `cmdloader scan` command.
func newScanCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <dir>",
		Short: "Load the commands found directly inside a directory",
		Long: `Load every command file directly inside a directory.

Each file's identifier is its declared namespace joined with its base name,
unless a commands.cue manifest pins it. Problems never fail the scan: an
unresolvable directory yields an empty listing and skipped files are counted.

` + SubtitleStyle.Render("Examples:") + `
  cmdloader scan ./commands/users
  cmdloader -v scan ./commands/users`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}

			res := loader.LoadDirectory(args[0], s.options(app.Registry)...)
			printCommands(app.stdout, fmt.Sprintf("Commands in %s", args[0]), res.Commands)
			app.printSummary(app.stdout, res)
			return nil
		},
	}
}
