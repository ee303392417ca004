// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/invowk/cmdloader/internal/issue"
	"github.com/invowk/cmdloader/pkg/cueutil"
)

const (
	// AppName is the application name.
	AppName = "cmdloader"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the cmdloader configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ResolveFile returns the config file loading would read: the explicit file,
// else config.cue in the config directory, else config.cue in the work dir.
// It returns "" when none exists. An explicit file is returned even when
// missing so the caller can report it.
func ResolveFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}

	name := ConfigFileName + "." + ConfigFileExt
	if p := filepath.Join(cfgDir, name); fileExists(p) {
		return p, nil
	}
	if p := filepath.Join(opts.WorkDir, name); fileExists(p) {
		return p, nil
	}
	return "", nil
}

// loadWithOptions layers defaults, the config file and environment overrides
// into a validated Config. It returns the file that was read, if any.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("path", defaults.Path)
	v.SetDefault("namespace", defaults.Namespace)
	v.SetDefault("error_policy", defaults.ErrorPolicy)
	v.SetDefault("syntax.keyword", defaults.Syntax.Keyword)
	v.SetDefault("syntax.extension", defaults.Syntax.Extension)
	v.SetDefault("syntax.separator", defaults.Syntax.Separator)
	v.SetDefault("syntax.ignore", defaults.Syntax.Ignore)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	resolvedPath, err := ResolveFile(opts)
	if err != nil {
		return nil, "", err
	}

	if opts.ConfigFilePath != "" && !fileExists(resolvedPath) {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(resolvedPath).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Check that the file exists and is readable").
			WithSuggestion("Use 'cmdloader config show' to see the default configuration").
			Wrap(fmt.Errorf("config file not found: %s", resolvedPath)).
			BuildError()
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("See 'cmdloader config --help' for configuration options").
				Wrap(err).
				BuildError()
		}
	}

	if err := applyEnv(v); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("read environment overrides").
			WithSuggestion("CMDLOADER_VERBOSE must be a boolean (true/false/1/0)").
			Wrap(err).
			BuildError()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("error_policy must be \"strict\" or \"soft\"").
			WithSuggestion("syntax needs a keyword, an extension starting with '.' and a separator").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper. Fields are optional, so the file is
// decoded into a map rather than a struct.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap([]byte(configSchema), data, "#Config", path)
	if err != nil {
		return err
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes a default config file into the config directory
// and returns its path. An existing file is kept unless force is set.
func CreateDefaultConfig(dir string, force bool) (string, error) {
	cfgDir, err := configDirWithOverride(dir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)

	if _, err := os.Stat(cfgPath); err == nil && !force {
		return cfgPath, nil
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return cfgPath, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// cmdloader configuration file\n")
	sb.WriteString("// Environment variables CMDLOADER_PATH, CMDLOADER_NAMESPACE,\n")
	sb.WriteString("// CMDLOADER_ERROR_POLICY and CMDLOADER_VERBOSE override these values.\n\n")

	if cfg.Path != "" {
		fmt.Fprintf(&sb, "path: %q\n", cfg.Path)
	}
	if cfg.Namespace != "" {
		fmt.Fprintf(&sb, "namespace: %q\n", cfg.Namespace)
	}
	fmt.Fprintf(&sb, "error_policy: %q\n", cfg.ErrorPolicy)

	sb.WriteString("\nsyntax: {\n")
	fmt.Fprintf(&sb, "\tkeyword: %q\n", cfg.Syntax.Keyword)
	fmt.Fprintf(&sb, "\textension: %q\n", cfg.Syntax.Extension)
	fmt.Fprintf(&sb, "\tseparator: %q\n", cfg.Syntax.Separator)
	if len(cfg.Syntax.Ignore) > 0 {
		sb.WriteString("\tignore: [\n")
		for _, pattern := range cfg.Syntax.Ignore {
			fmt.Fprintf(&sb, "\t\t%q,\n", pattern)
		}
		sb.WriteString("\t]\n")
	}
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}
