// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/invowk/cmdloader/pkg/command"
)

var (
	// Default is the process-wide registry populated from init() functions.
	Default = New()

	// ErrUnknownType is returned when an identifier is not registered.
	ErrUnknownType = errors.New("unknown type")
	// ErrAbstractType is returned when instantiation of an abstract type is requested.
	ErrAbstractType = errors.New("abstract type")
	// ErrNotConstructible is returned when a factory is missing, panics, or yields nil.
	ErrNotConstructible = errors.New("type is not constructible")
)

type (
	// Factory constructs a new command instance without arguments.
	Factory func() command.Command

	// Type describes a registered command type. It is what loader filters inspect.
	Type struct {
		// ID is the fully-qualified identifier (e.g., "core.version").
		ID string
		// Aliases are additional identifiers resolving to the same type.
		Aliases []string
		// Abstract marks a type that must never be instantiated.
		Abstract bool
		// Tags are free-form labels available to filters (e.g., "experimental").
		Tags []string
		// New constructs an instance. Must be nil for abstract types.
		New Factory
	}

	// Registry manages the mapping of identifiers to command types.
	// It is safe for concurrent use.
	Registry struct {
		mu    sync.RWMutex
		types map[string]*Type
	}
)

// New creates a new empty Registry.
func New() *Registry {
	return &Registry{
		types: make(map[string]*Type),
	}
}

// HasTag reports whether the type carries tag.
func (t Type) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// Register adds a type under its ID and every alias.
// Panics on an empty ID, a duplicate ID or alias, or a concrete type without factory.
func (r *Registry) Register(t Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" {
		panic("registry: cannot register type with empty id")
	}
	if !t.Abstract && t.New == nil {
		panic(fmt.Sprintf("registry: concrete type %q has no factory", t.ID))
	}
	if t.Abstract && t.New != nil {
		panic(fmt.Sprintf("registry: abstract type %q must not have a factory", t.ID))
	}

	names := append([]string{t.ID}, t.Aliases...)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			panic(fmt.Sprintf("registry: type %q has an empty alias", t.ID))
		}
		if _, exists := r.types[name]; exists || seen[name] {
			panic(fmt.Sprintf("registry: type %q already registered", name))
		}
		seen[name] = true
	}

	stored := t
	stored.Aliases = slices.Clone(t.Aliases)
	stored.Tags = slices.Clone(t.Tags)
	for _, name := range names {
		r.types[name] = &stored
	}
}

// RegisterAbstract registers an abstract type under id.
func (r *Registry) RegisterAbstract(id string, aliases ...string) {
	r.Register(Type{ID: id, Aliases: aliases, Abstract: true})
}

// Lookup retrieves a type by ID or alias.
// Returns the zero Type and false if nothing is registered under id.
func (r *Registry) Lookup(id string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[id]
	if !ok {
		return Type{}, false
	}
	return *t, true
}

// Instantiate constructs a new instance of the type registered under id.
// A panicking factory is recovered and reported as ErrNotConstructible.
func (r *Registry) Instantiate(id string) (command.Command, error) {
	t, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrUnknownType)
	}
	return t.Instantiate()
}

// Instantiate constructs a new instance of t.
func (t Type) Instantiate() (cmd command.Command, err error) {
	if t.Abstract {
		return nil, fmt.Errorf("%s: %w", t.ID, ErrAbstractType)
	}
	if t.New == nil {
		return nil, fmt.Errorf("%s: no factory: %w", t.ID, ErrNotConstructible)
	}

	defer func() {
		if rec := recover(); rec != nil {
			cmd = nil
			err = fmt.Errorf("%s: factory panicked: %v: %w", t.ID, rec, ErrNotConstructible)
		}
	}()

	cmd = t.New()
	if cmd == nil {
		return nil, fmt.Errorf("%s: factory returned nil: %w", t.ID, ErrNotConstructible)
	}
	return cmd, nil
}

// IDs returns the primary identifiers of all registered types in sorted order.
// Aliases are not included.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.types))
	for name, t := range r.types {
		if name == t.ID {
			ids = append(ids, name)
		}
	}
	sort.Strings(ids)
	return ids
}

// Types returns all registered types ordered by ID.
func (r *Registry) Types() []Type {
	ids := r.IDs()

	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]Type, 0, len(ids))
	for _, id := range ids {
		types = append(types, *r.types[id])
	}
	return types
}

// RegisterDefault registers a type in the Default registry.
// This is typically called from init() functions in command packages.
func RegisterDefault(t Type) {
	Default.Register(t)
}
