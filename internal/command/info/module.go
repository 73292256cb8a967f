// Package info carries the bot's informational commands: the manual,
// bot facts, and latency.
package info

import "github.com/keshon/guild-clerk/internal/core"

// Module is this category's manifest entry.
func Module() core.CategoryManifest {
	return core.CategoryManifest{
		Category: core.Category{
			Name:        "Information",
			Description: "The manual and general bot facts",
		},
		Commands: []core.CommandConstructor{
			NewHelp,
			NewAbout,
			NewPing,
		},
	}
}
