// Package settings carries per-guild configuration commands.
package settings

import "github.com/keshon/guild-clerk/internal/core"

// Module is this category's manifest entry. The prefix command's
// subcommand group is declared against its parent by name; the loader
// registers the parent first.
func Module() core.CategoryManifest {
	return core.CategoryManifest{
		Category: core.Category{
			Name:        "Settings",
			Description: "Per-guild bot configuration",
		},
		Commands: []core.CommandConstructor{
			NewPrefix,
			NewToggle,
			NewDisable,
			NewEnable,
		},
		Subcommands: map[string][]core.SubcommandConstructor{
			"prefix": {
				NewPrefixShow,
				NewPrefixSet,
				NewPrefixClear,
			},
		},
	}
}
