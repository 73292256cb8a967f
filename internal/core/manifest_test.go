package core

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/keshon/guild-clerk/internal/config"
	"github.com/keshon/guild-clerk/internal/storage"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	store, err := storage.New(filepath.Join(t.TempDir(), "datastore.json"))
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		DefaultPrefixes: []string{"!"},
		StaffIDs:        []string{"staff-1"},
	}
	return NewApp(cfg, store)
}

func constructor(name string, aliases ...string) CommandConstructor {
	return func(app *App, cat *Category) *Command {
		return &Command{Name: name, Aliases: aliases, Enabled: true, Run: func(*MessageContext) error { return nil }}
	}
}

func subConstructor(name string) SubcommandConstructor {
	return func(app *App, parent *Command) *Subcommand {
		return &Subcommand{Name: name, Enabled: true, Run: func(*MessageContext) error { return nil }}
	}
}

func testManifest() Manifest {
	return Manifest{Categories: []CategoryManifest{
		{
			Category: Category{Name: "Information", Description: "info"},
			Commands: []CommandConstructor{constructor("help", "h"), constructor("about")},
		},
		{
			Category:    Category{Name: "Settings", Description: "settings"},
			Commands:    []CommandConstructor{constructor("prefix")},
			Subcommands: map[string][]SubcommandConstructor{"prefix": {subConstructor("set"), subConstructor("clear")}},
		},
	}}
}

func TestLoadModules(t *testing.T) {
	app := newTestApp(t)
	if err := app.LoadModules(testManifest()); err != nil {
		t.Fatalf("LoadModules failed: %v", err)
	}

	r := app.Registry()
	if r.Len() != 3 {
		t.Errorf("Expected 3 commands, got %d", r.Len())
	}

	help := r.Get("help")
	if help == nil || help.Category == nil || help.Category.Name != "Information" {
		t.Fatalf("Expected help bound to Information, got %+v", help)
	}
	if r.Get("h") != help {
		t.Error("Expected alias h to resolve to help")
	}

	prefix := r.Get("prefix")
	if prefix == nil {
		t.Fatal("Expected prefix to be registered")
	}
	for _, name := range []string{"set", "clear"} {
		sub := prefix.Subcommand(name)
		if sub == nil {
			t.Fatalf("Expected subcommand %s", name)
		}
		if sub.Parent != prefix {
			t.Errorf("Expected subcommand %s to point back at its parent", name)
		}
	}
}

func TestLoadModulesIdempotentUnderClear(t *testing.T) {
	app := newTestApp(t)
	if err := app.LoadModules(testManifest()); err != nil {
		t.Fatalf("First load failed: %v", err)
	}
	first := app.Registry().All()

	// LoadModules clears before rebuilding, so a second run must not
	// report collisions and must produce an identical table.
	if err := app.LoadModules(testManifest()); err != nil {
		t.Fatalf("Second load failed: %v", err)
	}
	second := app.Registry().All()

	if len(first) != len(second) {
		t.Fatalf("Expected identical registry size, got %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("Expected command %d to be %s, got %s", i, first[i].Name, second[i].Name)
		}
	}
	if canonical, ok := app.Registry().Resolve("h"); !ok || canonical != "help" {
		t.Errorf("Expected alias table rebuilt identically, got %q (%v)", canonical, ok)
	}
}

func TestLoadModulesFailures(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		wantPath string
	}{
		{
			name: "duplicate command",
			manifest: Manifest{Categories: []CategoryManifest{{
				Category: Category{Name: "Information"},
				Commands: []CommandConstructor{constructor("help"), constructor("help")},
			}}},
			wantPath: "Information/help",
		},
		{
			name: "nil constructor result",
			manifest: Manifest{Categories: []CategoryManifest{{
				Category: Category{Name: "Information"},
				Commands: []CommandConstructor{func(app *App, cat *Category) *Command { return nil }},
			}}},
			wantPath: "Information",
		},
		{
			name: "subcommand group without parent",
			manifest: Manifest{Categories: []CategoryManifest{{
				Category:    Category{Name: "Settings"},
				Subcommands: map[string][]SubcommandConstructor{"ghost": {subConstructor("set")}},
			}}},
			wantPath: "Settings/ghost",
		},
		{
			name: "duplicate subcommand",
			manifest: Manifest{Categories: []CategoryManifest{{
				Category:    Category{Name: "Settings"},
				Commands:    []CommandConstructor{constructor("prefix")},
				Subcommands: map[string][]SubcommandConstructor{"prefix": {subConstructor("set"), subConstructor("set")}},
			}}},
			wantPath: "Settings/prefix/set",
		},
		{
			name: "unnamed category",
			manifest: Manifest{Categories: []CategoryManifest{{
				Category: Category{},
			}}},
			wantPath: "category 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			err := app.LoadModules(tt.manifest)
			if err == nil {
				t.Fatal("Expected load error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantPath) {
				t.Errorf("Expected error to name %q, got %q", tt.wantPath, err.Error())
			}
		})
	}
}
