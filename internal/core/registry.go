package core

import (
	"fmt"
	"sort"
)

// CategoryWeights pins the display order of well-known categories in help
// output. Unlisted categories sort after these, by name.
var CategoryWeights = map[string]int{
	"Information": 0,
	"Settings":    10,
	"Game":        20,
}

// Registry maps command names to commands and aliases to canonical names.
// It is populated once at startup by the module loader and read by the
// dispatcher and the help renderer. No locking: population finishes before
// the gateway opens, and only the Enabled display flag changes afterwards.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]string),
	}
}

// Register adds a command and its aliases. It rejects duplicate names and
// alias collisions, so an alias can never point at a missing command.
func (r *Registry) Register(c *Command) error {
	if c == nil {
		return fmt.Errorf("nil command")
	}
	if c.Name == "" {
		return fmt.Errorf("command has no name")
	}
	if _, exists := r.commands[c.Name]; exists {
		return fmt.Errorf("duplicate command name %q", c.Name)
	}
	if owner, taken := r.aliases[c.Name]; taken {
		return fmt.Errorf("command name %q collides with an alias of %q", c.Name, owner)
	}
	for _, a := range c.Aliases {
		if _, exists := r.commands[a]; exists {
			return fmt.Errorf("alias %q of command %q collides with a command name", a, c.Name)
		}
		if owner, taken := r.aliases[a]; taken {
			return fmt.Errorf("alias %q of command %q already belongs to %q", a, c.Name, owner)
		}
	}

	r.commands[c.Name] = c
	for _, a := range c.Aliases {
		r.aliases[a] = c.Name
	}
	return nil
}

// Get returns the command registered under name, resolving aliases to the
// canonical command. Returns nil when nothing matches.
func (r *Registry) Get(name string) *Command {
	if c, ok := r.commands[name]; ok {
		return c
	}
	if canonical, ok := r.aliases[name]; ok {
		return r.commands[canonical]
	}
	return nil
}

// Resolve maps an alias to its canonical command name.
func (r *Registry) Resolve(alias string) (string, bool) {
	canonical, ok := r.aliases[alias]
	return canonical, ok
}

// All returns every registered command, sorted by name.
func (r *Registry) All() []*Command {
	list := make([]*Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Len returns the number of registered commands, aliases excluded.
func (r *Registry) Len() int { return len(r.commands) }

// Clear empties the registry and the alias table. Required before the
// module loader may run a second time.
func (r *Registry) Clear() {
	r.commands = make(map[string]*Command)
	r.aliases = make(map[string]string)
}

// CategoryGroup is the derived category view: a category descriptor plus
// the commands whose Category.Name matches it, sorted by name.
type CategoryGroup struct {
	Category *Category
	Commands []*Command
}

// Categories groups all commands by category, ordered by CategoryWeights
// then category name. Commands without a category are skipped.
func (r *Registry) Categories() []CategoryGroup {
	byName := make(map[string]*CategoryGroup)
	for _, c := range r.All() {
		if c.Category == nil {
			continue
		}
		g, ok := byName[c.Category.Name]
		if !ok {
			g = &CategoryGroup{Category: c.Category}
			byName[c.Category.Name] = g
		}
		g.Commands = append(g.Commands, c)
	}

	groups := make([]CategoryGroup, 0, len(byName))
	for _, g := range byName {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		wi, iOK := CategoryWeights[groups[i].Category.Name]
		wj, jOK := CategoryWeights[groups[j].Category.Name]
		switch {
		case iOK && jOK && wi != wj:
			return wi < wj
		case iOK != jOK:
			return iOK
		default:
			return groups[i].Category.Name < groups[j].Category.Name
		}
	})
	return groups
}
