// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/invowk/cmdloader/internal/commands/core"
	"github.com/invowk/cmdloader/pkg/types"
)

// NewRootCommand builds the cobra command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cmdloader",
		Short: "Discover, load and run commands from a directory tree",
		Long: TitleStyle.Render("cmdloader") + SubtitleStyle.Render(" - Discover, load and run commands from a directory tree") + `

cmdloader scans a directory for command source files, derives each file's
identifier from its namespace declaration and location, resolves it against
the types compiled into the binary and instantiates the concrete ones.

` + SubtitleStyle.Render("Examples:") + `
  cmdloader registry                                   List the registered types
  cmdloader scan ./commands/users                      Load a single directory
  cmdloader -p ./commands -n app list users            Load a module
  cmdloader -p ./commands -n app run users create bob  Run a module command
  cmdloader config show                                Show the configuration`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&app.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/cmdloader/config.cue)")
	pf.StringVarP(&app.flags.path, "path", "p", "", "base directory modules live under")
	pf.StringVarP(&app.flags.namespace, "namespace", "n", "", "identifier namespace of module commands")
	pf.StringVar(&app.flags.errorPolicy, "error-policy", "", "report configuration failures as errors (strict) or diagnostics (soft)")
	pf.StringVarP(&app.flags.workDir, "workdir", "C", "", "resolve relative paths against this directory")
	pf.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		newListCommand(app),
		newScanCommand(app),
		newManifestCommand(app),
		newRegistryCommand(app),
		newRunCommand(app),
		newConfigCommand(app),
		newCompletionCommand(),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if core.Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", core.Version, core.Commit, core.BuildDate)
}

// Execute builds the CLI and runs it against os.Args. It exits the process
// with the command's exit code on failure.
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			app.reportError(w, err)
		}),
	); err != nil {
		os.Exit(int(exitCodeFor(err)))
	}
}

// exitCodeFor maps a failed invocation to the process exit code.
func exitCodeFor(err error) types.ExitCode {
	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		if exitErr.Code.Validate() != nil {
			return types.ExitFailure
		}
		return exitErr.Code
	case errors.Is(err, errCommandNotFound):
		return types.ExitUsage
	default:
		return types.ExitFailure
	}
}
