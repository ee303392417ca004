// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/invowk/cmdloader/pkg/command"
)

type stubCommand struct {
	command.Base
}

func (s *stubCommand) Run(context.Context, []string) error { return nil }

func newStub(name string) Factory {
	return func() command.Command {
		return &stubCommand{Base: command.NewBase(name, "stub "+name)}
	}
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	fn()
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(Type{ID: "core.version", Aliases: []string{"app.core.version"}, Tags: []string{"builtin"}, New: newStub("version")})

	for _, id := range []string{"core.version", "app.core.version"} {
		typ, ok := r.Lookup(id)
		if !ok {
			t.Fatalf("Lookup(%q) not found", id)
		}
		if typ.ID != "core.version" {
			t.Errorf("Lookup(%q).ID = %q, want core.version", id, typ.ID)
		}
		if !typ.HasTag("builtin") {
			t.Errorf("Lookup(%q) lost tags", id)
		}
	}

	if _, ok := r.Lookup("core.missing"); ok {
		t.Error("Lookup of unregistered id should fail")
	}
}

func TestRegistry_RegisterPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  Type
	}{
		{"empty id", Type{New: newStub("x")}},
		{"concrete without factory", Type{ID: "x"}},
		{"abstract with factory", Type{ID: "x", Abstract: true, New: newStub("x")}},
		{"empty alias", Type{ID: "x", Aliases: []string{""}, New: newStub("x")}},
		{"alias equals id", Type{ID: "x", Aliases: []string{"x"}, New: newStub("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			expectPanic(t, func() { New().Register(tt.typ) })
		})
	}
}

func TestRegistry_RegisterDuplicatePanics(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(Type{ID: "a", Aliases: []string{"b"}, New: newStub("a")})

	expectPanic(t, func() { r.Register(Type{ID: "a", New: newStub("a")}) })
	expectPanic(t, func() { r.Register(Type{ID: "b", New: newStub("b")}) })
	expectPanic(t, func() { r.Register(Type{ID: "c", Aliases: []string{"a"}, New: newStub("c")}) })
}

func TestRegistry_Instantiate(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(Type{ID: "ok", New: newStub("ok")})
	r.RegisterAbstract("base")
	r.Register(Type{ID: "nil", New: func() command.Command { return nil }})
	r.Register(Type{ID: "panics", New: func() command.Command { panic("constructor failed") }})

	cmd, err := r.Instantiate("ok")
	if err != nil {
		t.Fatalf("Instantiate(ok) error = %v", err)
	}
	if cmd.Name() != "ok" {
		t.Errorf("Instantiate(ok).Name() = %q", cmd.Name())
	}

	tests := []struct {
		id      string
		wantErr error
	}{
		{"missing", ErrUnknownType},
		{"base", ErrAbstractType},
		{"nil", ErrNotConstructible},
		{"panics", ErrNotConstructible},
	}
	for _, tt := range tests {
		if _, err := r.Instantiate(tt.id); !errors.Is(err, tt.wantErr) {
			t.Errorf("Instantiate(%q) error = %v, want %v", tt.id, err, tt.wantErr)
		}
	}
}

func TestRegistry_InstantiateReturnsFreshInstances(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(Type{ID: "ok", New: newStub("ok")})

	first, _ := r.Instantiate("ok")
	second, _ := r.Instantiate("ok")
	if first == second {
		t.Error("each Instantiate call should construct a new instance")
	}
}

func TestRegistry_IDsAndTypes(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(Type{ID: "zeta", Aliases: []string{"alpha-alias"}, New: newStub("zeta")})
	r.Register(Type{ID: "beta", New: newStub("beta")})
	r.RegisterAbstract("gamma")

	want := []string{"beta", "gamma", "zeta"}
	if got := r.IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}

	types := r.Types()
	if len(types) != 3 {
		t.Fatalf("Types() returned %d types, want 3", len(types))
	}
	if !types[1].Abstract {
		t.Error("Types()[1] (gamma) should be abstract")
	}
}

func TestRegistry_RegisterCopiesSlices(t *testing.T) {
	t.Parallel()

	tags := []string{"one"}
	r := New()
	r.Register(Type{ID: "x", Tags: tags, New: newStub("x")})
	tags[0] = "mutated"

	typ, _ := r.Lookup("x")
	if typ.Tags[0] != "one" {
		t.Errorf("registered tags changed after caller mutation: %v", typ.Tags)
	}
}
