// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/cmdloader/internal/loader"
	"github.com/invowk/cmdloader/pkg/registry"
)

// newListCommand creates the `cmdloader list` command.
func newListCommand(app *App) *cobra.Command {
	var tags, excludeTags []string

	cmd := &cobra.Command{
		Use:   "list <module>",
		Short: "List the commands of a module",
		Long: `Discover and instantiate every command below a module directory.

A module is a subdirectory of the base path (--path). Identifiers are built
from the namespace (--namespace), the module name and the file location.

` + SubtitleStyle.Render("Examples:") + `
  cmdloader --path ./commands --namespace app list users
  cmdloader list users --tag admin --exclude-tag experimental`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}

			res, err := s.newLoader(app.Registry).ModuleCommands(args[0], tagFilter(tags, excludeTags))
			if err != nil {
				return actionable("load module", "", err)
			}

			printCommands(app.stdout, fmt.Sprintf("Commands in %s", args[0]), res.Commands)
			app.printSummary(app.stdout, res)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "only load types carrying every given tag")
	cmd.Flags().StringSliceVar(&excludeTags, "exclude-tag", nil, "skip types carrying any given tag")
	return cmd
}

// tagFilter builds the filter selecting types that carry every tag in include
// and none in exclude. It returns nil when both are empty.
func tagFilter(include, exclude []string) loader.Filter {
	if len(include) == 0 && len(exclude) == 0 {
		return nil
	}

	filters := make([]loader.Filter, 0, len(include)+len(exclude))
	for _, tag := range include {
		filters = append(filters, loader.HasTag(tag))
	}
	for _, tag := range exclude {
		filters = append(filters, loader.Not(loader.HasTag(tag)))
	}

	return func(t registry.Type) bool {
		for _, f := range filters {
			if !f(t) {
				return false
			}
		}
		return true
	}
}
