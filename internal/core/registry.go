package core

import (
	"fmt"
	"sort"
)

// RegistrationError reports an inconsistent registry. It is fatal: startup
// must abort rather than run with a partial command table.
type RegistrationError struct {
	Name   string
	Reason string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("register %q: %s", e.Name, e.Reason)
}

// Registry maps command names to handlers, both flat and grouped by
// category. It is populated once at startup and read-only afterwards, so
// dispatch reads it concurrently without locking.
type Registry struct {
	commands   map[string]Command
	categories map[string]map[string]Command
	pending    map[string][]Command // subcommands seen before their parent
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands:   make(map[string]Command),
		categories: make(map[string]map[string]Command),
		pending:    make(map[string][]Command),
	}
}

// Register adds a command under its declared name. A category root also
// opens its subcommand group; a subcommand whose parent has not arrived yet
// is held back and attached when the parent registers. Duplicate names in
// the same scope are rejected.
func (r *Registry) Register(cmd Command) error {
	d := cmd.Describe()
	if d.Name == "" {
		return &RegistrationError{d.Name, "empty command name"}
	}
	if d.Category != "" && d.BelongsTo != "" {
		return &RegistrationError{d.Name, "declares both a category and a parent"}
	}

	if d.BelongsTo != "" {
		group, ok := r.categories[d.BelongsTo]
		if !ok {
			r.pending[d.BelongsTo] = append(r.pending[d.BelongsTo], cmd)
			return nil
		}
		return r.attach(group, d.BelongsTo, cmd)
	}

	if _, dup := r.commands[d.Name]; dup {
		return &RegistrationError{d.Name, "duplicate command name"}
	}
	r.commands[d.Name] = cmd

	if d.Category != "" {
		if _, dup := r.categories[d.Category]; dup {
			return &RegistrationError{d.Name, fmt.Sprintf("duplicate category %q", d.Category)}
		}
		group := make(map[string]Command)
		r.categories[d.Category] = group
		for _, sub := range r.pending[d.Category] {
			if err := r.attach(group, d.Category, sub); err != nil {
				return err
			}
		}
		delete(r.pending, d.Category)
	}
	return nil
}

func (r *Registry) attach(group map[string]Command, parent string, cmd Command) error {
	name := cmd.Describe().Name
	if _, dup := group[name]; dup {
		return &RegistrationError{name, fmt.Sprintf("duplicate subcommand in category %q", parent)}
	}
	group[name] = cmd
	return nil
}

// Finalize fails if any subcommand is still waiting for a parent category
// that never registered.
func (r *Registry) Finalize() error {
	for parent, subs := range r.pending {
		return &RegistrationError{
			subs[0].Describe().Name,
			fmt.Sprintf("parent category %q was never registered", parent),
		}
	}
	return nil
}

// Resolve maps the first one or two message tokens to a handler. A category
// name followed by one of its subcommands yields that subcommand, with
// consumed reporting that the second token was used up. A category name
// followed by anything else resolves to nothing: unknown subcommands are
// chatter, not an invocation of the root. A bare category name yields the
// root itself.
func (r *Registry) Resolve(first, second string) (cmd Command, consumed bool, found bool) {
	if group, ok := r.categories[first]; ok && second != "" {
		sub, ok := group[second]
		if !ok {
			return nil, false, false
		}
		return sub, true, true
	}
	cmd, found = r.commands[first]
	return cmd, false, found
}

// Commands returns all top-level commands (plain commands and category
// roots), sorted by name.
func (r *Registry) Commands() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Describe().Name < list[j].Describe().Name
	})
	return list
}

// Subcommands returns the members of a category, sorted by name.
func (r *Registry) Subcommands(category string) []Command {
	group := r.categories[category]
	list := make([]Command, 0, len(group))
	for _, c := range group {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Describe().Name < list[j].Describe().Name
	})
	return list
}
