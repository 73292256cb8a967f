// Package game carries small gameplay commands.
package game

import "github.com/keshon/guild-clerk/internal/core"

// Module is this category's manifest entry.
func Module() core.CategoryManifest {
	return core.CategoryManifest{
		Category: core.Category{
			Name:        "Game",
			Description: "Dice and other table toys",
		},
		Commands: []core.CommandConstructor{
			NewRoll,
		},
	}
}
