package core

import (
	"errors"
	"testing"
)

type testCommand struct {
	desc Descriptor
	runs int
}

func (c *testCommand) Describe() Descriptor { return c.desc }

func (c *testCommand) Run(ctx *Context) error {
	c.runs++
	return nil
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()
	mod := &testCommand{desc: Descriptor{Name: "mod", Category: "mod"}}
	kick := &testCommand{desc: Descriptor{Name: "kick", BelongsTo: "mod"}}
	ping := &testCommand{desc: Descriptor{Name: "ping"}}
	for _, c := range []Command{mod, kick, ping} {
		if err := reg.Register(c); err != nil {
			t.Fatalf("Register(%s): %v", c.Describe().Name, err)
		}
	}
	if err := reg.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	tests := []struct {
		name          string
		first, second string
		want          Command
		wantConsumed  bool
		wantFound     bool
	}{
		{"flat command", "ping", "", ping, false, true},
		{"flat command with argument", "ping", "extra", ping, false, true},
		{"subcommand", "mod", "kick", kick, true, true},
		{"bare category yields root", "mod", "", mod, false, true},
		{"unknown subcommand", "mod", "nonexistent", nil, false, false},
		{"unknown command", "nope", "", nil, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, consumed, found := reg.Resolve(tt.first, tt.second)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if got != tt.want {
				t.Errorf("resolved wrong command")
			}
			if consumed != tt.wantConsumed {
				t.Errorf("consumed = %v, want %v", consumed, tt.wantConsumed)
			}
		})
	}
}

func TestRegistryDeferredSubcommand(t *testing.T) {
	reg := NewRegistry()
	kick := &testCommand{desc: Descriptor{Name: "kick", BelongsTo: "mod"}}
	if err := reg.Register(kick); err != nil {
		t.Fatalf("Register(kick) before parent: %v", err)
	}
	if err := reg.Register(&testCommand{desc: Descriptor{Name: "mod", Category: "mod"}}); err != nil {
		t.Fatalf("Register(mod): %v", err)
	}
	if err := reg.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	got, consumed, found := reg.Resolve("mod", "kick")
	if !found || !consumed || got != kick {
		t.Errorf("deferred subcommand did not attach: got=%v consumed=%v found=%v", got, consumed, found)
	}
}

func TestRegistryOrphanSubcommand(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&testCommand{desc: Descriptor{Name: "kick", BelongsTo: "mod"}}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	err := reg.Finalize()
	var regErr *RegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("Finalize = %v, want *RegistrationError", err)
	}
}

func TestRegistryDuplicates(t *testing.T) {
	tests := []struct {
		name string
		cmds []Descriptor
	}{
		{
			"duplicate flat name",
			[]Descriptor{{Name: "ping"}, {Name: "ping"}},
		},
		{
			"duplicate category",
			[]Descriptor{{Name: "mod", Category: "mod"}, {Name: "mod2", Category: "mod"}},
		},
		{
			"duplicate subcommand",
			[]Descriptor{{Name: "mod", Category: "mod"}, {Name: "kick", BelongsTo: "mod"}, {Name: "kick", BelongsTo: "mod"}},
		},
		{
			"category and parent at once",
			[]Descriptor{{Name: "odd", Category: "a", BelongsTo: "b"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			var err error
			for _, d := range tt.cmds {
				if err = reg.Register(&testCommand{desc: d}); err != nil {
					break
				}
			}
			var regErr *RegistrationError
			if !errors.As(err, &regErr) {
				t.Fatalf("err = %v, want *RegistrationError", err)
			}
		})
	}
}

func TestRegistrySameNameAcrossScopes(t *testing.T) {
	// "kick" as a subcommand of mod and "kick" as a flat command live in
	// different scopes and must both register.
	reg := NewRegistry()
	for _, d := range []Descriptor{
		{Name: "mod", Category: "mod"},
		{Name: "kick", BelongsTo: "mod"},
		{Name: "kick"},
	} {
		if err := reg.Register(&testCommand{desc: d}); err != nil {
			t.Fatalf("Register(%s): %v", d.Name, err)
		}
	}
}
