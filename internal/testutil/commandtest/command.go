// SPDX-License-Identifier: MPL-2.0

package commandtest

import (
	"context"
	"fmt"

	"github.com/invowk/cmdloader/pkg/command"
	"github.com/invowk/cmdloader/pkg/registry"
)

type (
	// Stub is a command that records its invocations.
	Stub struct {
		command.Base
		// ID is the identifier the stub was registered under.
		ID string
		// Calls holds the args of every Run call.
		Calls [][]string
		// Err is returned from Run when set.
		Err error
	}

	// TypeOption configures a registered test type.
	TypeOption func(*registry.Type)
)

// Run records args and prints the stub's identifier.
func (s *Stub) Run(ctx context.Context, args []string) error {
	s.Calls = append(s.Calls, args)
	env := command.EnvFrom(ctx)
	fmt.Fprintf(env.Stdout, "%s %v\n", s.ID, args)
	return s.Err
}

// Factory returns a factory building a Stub named name for id.
func Factory(id, name string) registry.Factory {
	return func() command.Command {
		return &Stub{Base: command.NewBase(name, "stub "+name), ID: id}
	}
}

// WithTags adds tags to the type.
func WithTags(tags ...string) TypeOption {
	return func(t *registry.Type) { t.Tags = append(t.Tags, tags...) }
}

// WithAliases adds aliases to the type.
func WithAliases(aliases ...string) TypeOption {
	return func(t *registry.Type) { t.Aliases = append(t.Aliases, aliases...) }
}

// Abstract marks the type abstract and removes its factory.
func Abstract() TypeOption {
	return func(t *registry.Type) {
		t.Abstract = true
		t.New = nil
	}
}

// WithFactory replaces the type's factory.
func WithFactory(f registry.Factory) TypeOption {
	return func(t *registry.Type) { t.New = f }
}

// Register adds a stub type for id to r whose instances are named name.
func Register(r *registry.Registry, id, name string, opts ...TypeOption) {
	t := registry.Type{ID: id, New: Factory(id, name)}
	for _, opt := range opts {
		opt(&t)
	}
	r.Register(t)
}
