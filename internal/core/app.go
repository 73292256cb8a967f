package core

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/guild-clerk/internal/bot"
	"github.com/keshon/guild-clerk/internal/config"
	"github.com/keshon/guild-clerk/internal/storage"
)

// App is the application context handed to command and event constructors.
// It replaces any ambient global state: the registry and alias table are
// owned fields reached through accessors.
type App struct {
	Config  *config.Config
	Storage *storage.Storage
	Bus     *bot.Bus

	session  *discordgo.Session
	registry *Registry
}

// NewApp assembles an application context around its collaborators.
func NewApp(cfg *config.Config, store *storage.Storage) *App {
	return &App{
		Config:   cfg,
		Storage:  store,
		Bus:      bot.NewBus(),
		registry: NewRegistry(),
	}
}

// Registry returns the command registry owned by this application.
func (a *App) Registry() *Registry { return a.registry }

// Session returns the gateway session, nil before AttachSession.
func (a *App) Session() *discordgo.Session { return a.session }

// AttachSession hands the gateway session to the application context.
// Called once by the bootstrap before event bindings are applied.
func (a *App) AttachSession(s *discordgo.Session) { a.session = s }

// ResolvePrefixes returns the textual prefixes in effect for a context.
// Direct messages use the global defaults; guilds use their configured
// list when one exists. An empty configured list means mention-only
// invocation with no textual prefix required.
func (a *App) ResolvePrefixes(guildID string) []string {
	if guildID == "" {
		return a.Config.DefaultPrefixes
	}
	prefixes, err := a.Storage.GetPrefixes(guildID)
	if err != nil {
		log.Printf("[WARN] Failed to read prefixes for guild %s: %v", guildID, err)
		return a.Config.DefaultPrefixes
	}
	if prefixes == nil {
		return a.Config.DefaultPrefixes
	}
	return prefixes
}

// IsStaff reports whether a user ID is on the configured staff list.
// Delegates to config for a single source of truth.
func (a *App) IsStaff(userID string) bool {
	return a.Config.IsStaff(userID)
}
