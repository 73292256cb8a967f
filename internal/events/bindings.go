// Package events declares the bot's event bindings: gateway handlers and
// system-bus handlers, attached through the event loader at startup.
package events

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/guild-clerk/internal/bot"
	"github.com/keshon/guild-clerk/internal/core"
	"github.com/keshon/guild-clerk/internal/version"
)

// Bindings is the event-binding table the bootstrap hands to the event
// loader. Each entry names its emitter target explicitly.
func Bindings() []core.EventBinding {
	return []core.EventBinding{
		{
			Name:   "ready",
			Target: core.EmitterClient,
			Once:   true,
			Client: onReady,
		},
		{
			Name:   "guild-joined",
			Target: core.EmitterClient,
			Client: onGuildCreate,
		},
		{
			Name:   "startup-notice",
			Target: core.EmitterSystem,
			Event:  bot.SystemEventStartupNotice,
			Once:   true,
			System: onStartupNotice,
		},
		{
			Name:   "prefix-updated",
			Target: core.EmitterSystem,
			Event:  bot.SystemEventPrefixUpdated,
			System: onPrefixUpdated,
		},
	}
}

func onReady(app *core.App) interface{} {
	return func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("[INFO] ✅ %s is running as %s, serving %d guilds with %d commands",
			version.AppName, r.User.Username, len(r.Guilds), app.Registry().Len())
		app.Bus.Publish(bot.SystemEvent{Type: bot.SystemEventStartupNotice})
	}
}

func onGuildCreate(app *core.App) interface{} {
	return func(s *discordgo.Session, g *discordgo.GuildCreate) {
		log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)
	}
}

func onStartupNotice(app *core.App, evt bot.SystemEvent) {
	log.Printf("[INFO] %s v%s finished startup", version.AppName, version.Version)
}

func onPrefixUpdated(app *core.App, evt bot.SystemEvent) {
	log.Printf("[INFO] [%s] Prefixes updated: %s", evt.GuildID, evt.Target)
}
