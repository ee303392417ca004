// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/invowk/cmdloader/internal/loader"
)

// newManifestCommand creates the `cmdloader manifest` command.
func newManifestCommand(app *App) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "manifest <dir>",
		Short: "Generate the commands.cue identity manifest of a directory",
		Long: `Generate a commands.cue manifest pinning every file directly inside a
directory to the identifier derived from its namespace declaration.

The manifest is printed unless --write is given, in which case it replaces
<dir>/commands.cue. Exclude globs of an existing manifest are kept.

` + SubtitleStyle.Render("Examples:") + `
  cmdloader manifest ./commands/users
  cmdloader manifest --write ./commands/users`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}

			m, diags, err := loader.GenerateManifest(args[0], s.options(app.Registry)...)
			if err != nil {
				return actionable("generate manifest", args[0], err)
			}

			data, err := m.CUE()
			if err != nil {
				return actionable("render manifest", args[0], err)
			}

			if !write {
				_, err = app.stdout.Write(data)
			} else {
				err = writeManifest(app, s, args[0], data)
			}
			if err != nil {
				return err
			}

			if len(diags) > 0 {
				fmt.Fprintln(app.stderr, WarningStyle.Render(fmt.Sprintf("%d file(s) left out of the manifest", len(diags))))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write <dir>/commands.cue instead of printing")
	return cmd
}

func writeManifest(app *App, s *session, dir string, data []byte) error {
	root, err := loader.ResolveDir(s.workDir, dir)
	if err != nil {
		return actionable("write manifest", dir, err)
	}

	path := filepath.Join(root, loader.ManifestFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return actionable("write manifest", path, err)
	}

	fmt.Fprintf(app.stdout, "%s Wrote %s\n", SuccessStyle.Render("✓"), path)
	return nil
}
