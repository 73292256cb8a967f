package core

import (
	"fmt"
	"log"
)

// CommandConstructor builds a command bound to the application context and
// its category descriptor.
type CommandConstructor func(app *App, cat *Category) *Command

// SubcommandConstructor builds a subcommand bound to the application
// context and its already-registered parent.
type SubcommandConstructor func(app *App, parent *Command) *Subcommand

// CategoryManifest declares one category: its descriptor, the commands it
// contains, and subcommand groups keyed by parent command name.
type CategoryManifest struct {
	Category    Category
	Commands    []CommandConstructor
	Subcommands map[string][]SubcommandConstructor
}

// Manifest is the declarative registration table the module loader
// consumes. Command packages contribute entries at startup instead of
// being discovered from a directory layout.
type Manifest struct {
	Categories []CategoryManifest
}

// LoadModules clears the registry and rebuilds it from the manifest.
// Per category, commands register before subcommand groups; categories
// load in declared order. The first malformed entry aborts the load with
// an error naming the offending category/command path; startup treats
// that as fatal.
func (a *App) LoadModules(m Manifest) error {
	a.registry.Clear()

	for i := range m.Categories {
		cm := &m.Categories[i]
		cat := cm.Category
		if cat.Name == "" {
			return fmt.Errorf("load modules: category %d has no name", i)
		}

		for _, build := range cm.Commands {
			c := build(a, &cat)
			if c == nil {
				return fmt.Errorf("load modules: %s: constructor returned no command", cat.Name)
			}
			c.Category = &cat
			if err := a.registry.Register(c); err != nil {
				return fmt.Errorf("load modules: %s/%s: %w", cat.Name, c.Name, err)
			}
		}

		for parentName, builders := range cm.Subcommands {
			parent := a.registry.Get(parentName)
			if parent == nil {
				return fmt.Errorf("load modules: %s/%s: subcommand group has no parent command", cat.Name, parentName)
			}
			if parent.Subcommands == nil {
				parent.Subcommands = make(map[string]*Subcommand)
			}
			for _, build := range builders {
				sub := build(a, parent)
				if sub == nil || sub.Name == "" {
					return fmt.Errorf("load modules: %s/%s: malformed subcommand", cat.Name, parentName)
				}
				if _, exists := parent.Subcommands[sub.Name]; exists {
					return fmt.Errorf("load modules: %s/%s/%s: duplicate subcommand", cat.Name, parentName, sub.Name)
				}
				sub.Parent = parent
				parent.Subcommands[sub.Name] = sub
			}
		}
	}

	log.Printf("[INFO] Loaded %d commands in %d categories", a.registry.Len(), len(m.Categories))
	return nil
}
