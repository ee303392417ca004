// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/invowk/cmdloader/internal/config"
	"github.com/invowk/cmdloader/internal/issue"
	"github.com/invowk/cmdloader/internal/loader"
	"github.com/invowk/cmdloader/pkg/registry"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every cobra handler receives an App and resolves its
	// per-invocation settings through it.
	App struct {
		Config   ConfigProvider
		Registry *registry.Registry
		stdout   io.Writer
		stderr   io.Writer

		flags       globalFlags
		verbose     bool
		colorScheme config.ColorScheme
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Registry *registry.Registry
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// globalFlags holds the persistent flags of the root command.
	globalFlags struct {
		configPath  string
		path        string
		namespace   string
		errorPolicy string
		workDir     string
		verbose     bool
	}

	// session is the resolved configuration of one invocation.
	session struct {
		cfg     *config.Config
		workDir string
		policy  loader.Policy
		logger  *log.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Registry == nil {
		deps.Registry = registry.Default
	}

	return &App{
		Config:      deps.Config,
		Registry:    deps.Registry,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
		colorScheme: config.ColorSchemeAuto,
	}, nil
}

// newSession loads the configuration and layers the command-line flags on top.
func (a *App) newSession(ctx context.Context) (*session, error) {
	a.verbose = a.flags.verbose

	workDir, err := a.workDir()
	if err != nil {
		return nil, err
	}

	cfg, err := a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: a.flags.configPath,
		WorkDir:        workDir,
	})
	if err != nil {
		return nil, err
	}

	a.applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("apply command-line flags").
			WithSuggestion("Valid error policies are 'strict' and 'soft'").
			Wrap(err).
			Build()
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	a.verbose = cfg.UI.Verbose
	a.colorScheme = cfg.UI.ColorScheme

	logger := loader.NewLogger(a.stderr)
	if cfg.UI.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return &session{
		cfg:     cfg,
		workDir: workDir,
		policy:  policy,
		logger:  logger,
	}, nil
}

// applyFlags overrides configuration values with the flags that were set.
func (a *App) applyFlags(cfg *config.Config) {
	if a.flags.path != "" {
		cfg.Path = a.flags.path
	}
	if a.flags.namespace != "" {
		cfg.Namespace = a.flags.namespace
	}
	if a.flags.errorPolicy != "" {
		cfg.ErrorPolicy = a.flags.errorPolicy
	}
	if a.flags.verbose {
		cfg.UI.Verbose = true
	}
}

// workDir returns the absolute directory relative paths are resolved against.
func (a *App) workDir() (string, error) {
	if a.flags.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(a.flags.workDir)
	if err != nil {
		return "", fmt.Errorf("invalid --workdir %q: %w", a.flags.workDir, err)
	}
	return abs, nil
}

// options returns the loader options of the session.
func (s *session) options(reg *registry.Registry) []loader.Option {
	return []loader.Option{
		loader.WithPolicy(s.policy),
		loader.WithWorkDir(s.workDir),
		loader.WithSyntax(s.cfg.Syntax.Loader()),
		loader.WithRegistry(reg),
		loader.WithLogger(s.logger),
	}
}

// newLoader returns a module loader configured from the session.
func (s *session) newLoader(reg *registry.Registry) *loader.Loader {
	return loader.New(s.options(reg)...).
		SetPath(s.cfg.Path).
		SetNamespace(s.cfg.Namespace)
}
