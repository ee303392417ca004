// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/cmdloader/pkg/registry"
)

// newRegistryCommand creates the `cmdloader registry` command.
func newRegistryCommand(app *App) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "registry",
		Short: "List the command types compiled into cmdloader",
		Long: `List every command type registered at build time, with its aliases and tags.

Discovery resolves the identifiers it derives from source files against this
registry. Abstract types are listed but never instantiated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(app.stdout, TitleStyle.Render("Registered Types"))
			fmt.Fprintln(app.stdout)

			n := 0
			for _, t := range app.Registry.Types() {
				if tag != "" && !t.HasTag(tag) {
					continue
				}
				fmt.Fprintln(app.stdout, formatType(t))
				n++
			}
			if n == 0 {
				fmt.Fprintf(app.stdout, "  %s\n", SubtitleStyle.Render("(none)"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "only list types carrying the tag")
	return cmd
}

// formatType renders one registry entry: id, kind, aliases and tags.
func formatType(t registry.Type) string {
	line := "  " + nameStyle.Render(t.ID)
	if t.Abstract {
		line += " " + sourceStyle.Render("(abstract)")
	}
	if len(t.Aliases) > 0 {
		line += " " + descStyle.Render("aliases: "+strings.Join(t.Aliases, ", "))
	}
	if len(t.Tags) > 0 {
		line += " " + tagStyle.Render("["+strings.Join(t.Tags, ", ")+"]")
	}
	return line
}
