// Package command assembles the bot's module manifest. Each category
// package contributes its own entry; the loader resolves the table at
// startup instead of discovering modules from a directory layout.
package command

import (
	"github.com/keshon/guild-clerk/internal/command/game"
	"github.com/keshon/guild-clerk/internal/command/info"
	"github.com/keshon/guild-clerk/internal/command/settings"
	"github.com/keshon/guild-clerk/internal/core"
)

// Modules returns the full registration table, categories in display
// order.
func Modules() core.Manifest {
	return core.Manifest{
		Categories: []core.CategoryManifest{
			info.Module(),
			settings.Module(),
			game.Module(),
		},
	}
}
