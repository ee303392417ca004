// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/invowk/cmdloader/pkg/registry"
)

type (
	// Option configures a Loader, LoadDirectory or GenerateManifest.
	Option func(*settings)

	// settings is the configuration shared by every entry point.
	settings struct {
		policy   Policy
		workDir  string
		syntax   Syntax
		registry *registry.Registry
		logger   *log.Logger
	}
)

func newSettings(opts []Option) settings {
	s := settings{
		policy:   PolicyStrict,
		syntax:   GoSyntax(),
		registry: registry.Default,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = NewLogger(os.Stderr)
	}
	return s
}

// NewLogger returns the default diagnostics logger writing to w.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "cmdloader",
	})
}

// WithPolicy selects the error policy. Only Loader honours it; LoadDirectory
// is always permissive.
func WithPolicy(p Policy) Option {
	return func(s *settings) { s.policy = p }
}

// WithWorkDir sets the directory relative paths are resolved against.
// The process working directory is used when unset.
func WithWorkDir(dir string) Option {
	return func(s *settings) { s.workDir = dir }
}

// WithSyntax sets the source syntax. Defaults to GoSyntax.
func WithSyntax(syntax Syntax) Option {
	return func(s *settings) { s.syntax = syntax }
}

// WithRegistry sets the registry identifiers are resolved in. Defaults to registry.Default.
func WithRegistry(r *registry.Registry) Option {
	return func(s *settings) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithLogger sets the diagnostics logger. Defaults to a logger on stderr.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) { s.logger = l }
}
