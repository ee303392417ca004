// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/cmdloader/internal/config"
	"github.com/invowk/cmdloader/internal/issue"
)

// newConfigCommand creates the `cmdloader config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cmdloader configuration",
		Long: `Manage cmdloader configuration.

Configuration is read from the first of:
  - the file given with --config
  - config.cue in the config directory
    (Linux: ~/.config/cmdloader, macOS: ~/Library/Application Support/cmdloader,
    Windows: %APPDATA%\cmdloader)
  - config.cue in the working directory

CMDLOADER_PATH, CMDLOADER_NAMESPACE, CMDLOADER_ERROR_POLICY and
CMDLOADER_VERBOSE override file values; command-line flags override both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	s, err := app.newSession(ctx)
	if err != nil {
		app.renderIssue(app.stderr, issue.ConfigLoadFailedId)
		return err
	}
	cfg := s.cfg
	w := app.stdout

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	unset := SubtitleStyle.Render("(not set)")

	value := func(v string) string {
		if v == "" {
			return unset
		}
		return valueStyle.Render(v)
	}

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if cfg.Source == "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), cfg.Source)
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Working directory"), s.workDir)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("path"), value(cfg.Path))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("namespace"), value(cfg.Namespace))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("error_policy"), value(cfg.ErrorPolicy))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("syntax"))
	fmt.Fprintf(w, "  keyword: %s\n", value(cfg.Syntax.Keyword))
	fmt.Fprintf(w, "  extension: %s\n", value(cfg.Syntax.Extension))
	fmt.Fprintf(w, "  separator: %s\n", value(cfg.Syntax.Separator))
	fmt.Fprintf(w, "  ignore: %s\n", value(strings.Join(cfg.Syntax.Ignore, ", ")))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", value(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(app *App, force bool) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return actionable("locate config directory", "", err)
	}

	target := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	_, statErr := os.Stat(target)
	existed := statErr == nil

	path, err := config.CreateDefaultConfig("", force)
	if err != nil {
		return actionable("create config", cfgDir, err)
	}

	if existed && !force {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s (use --force to overwrite)\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath(app *App) error {
	workDir, err := app.workDir()
	if err != nil {
		return err
	}

	file, err := config.ResolveFile(config.LoadOptions{ConfigFilePath: app.flags.configPath, WorkDir: workDir})
	if err != nil {
		return actionable("locate config file", "", err)
	}
	if file != "" {
		fmt.Fprintln(app.stdout, file)
		return nil
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return actionable("locate config directory", "", err)
	}
	fmt.Fprintf(app.stdout, "%s %s\n",
		filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt),
		SubtitleStyle.Render("(not created)"))
	return nil
}
