package settings

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/guild-clerk/internal/bot"
	"github.com/keshon/guild-clerk/internal/core"
)

// NewPrefix builds the prefix command. Without a subcommand it behaves
// like `prefix show`.
func NewPrefix(app *core.App, cat *core.Category) *core.Command {
	return &core.Command{
		Name:            "prefix",
		Enabled:         true,
		Description:     "Show or change this guild's command prefixes",
		FullDescription: "Manages the textual prefixes this guild responds to. Setting an empty list makes the bot mention-only.",
		Usage:           "[show|set|clear]",
		Run: func(ctx *core.MessageContext) error {
			return showPrefixes(ctx)
		},
	}
}

// NewPrefixShow builds the show subcommand.
func NewPrefixShow(app *core.App, parent *core.Command) *core.Subcommand {
	return &core.Subcommand{
		Name:        "show",
		Enabled:     true,
		Description: "Show the prefixes in effect here",
		Run: func(ctx *core.MessageContext) error {
			return showPrefixes(ctx)
		},
	}
}

// NewPrefixSet builds the set subcommand.
func NewPrefixSet(app *core.App, parent *core.Command) *core.Subcommand {
	return &core.Subcommand{
		Name:            "set",
		Enabled:         true,
		Description:     "Replace this guild's prefixes",
		FullDescription: "Replaces the guild's prefix list with the given tokens. With no tokens the bot becomes mention-only here.",
		Usage:           "[prefix...]",
		Run: func(ctx *core.MessageContext) error {
			if ctx.Event.GuildID == "" {
				bot.MessageText(ctx.Session, ctx.Event.ChannelID, "Prefixes can only be configured in a guild.")
				return nil
			}
			if !canManage(ctx) {
				bot.MessageText(ctx.Session, ctx.Event.ChannelID, "You need the Manage Server permission to change prefixes.")
				return nil
			}

			prefixes := append([]string{}, ctx.Args...)
			if err := ctx.Storage.SetPrefixes(ctx.Event.GuildID, prefixes); err != nil {
				return fmt.Errorf("save prefixes: %w", err)
			}
			ctx.App.Bus.Publish(bot.SystemEvent{
				Type:    bot.SystemEventPrefixUpdated,
				GuildID: ctx.Event.GuildID,
				Target:  strings.Join(prefixes, " "),
			})

			if len(prefixes) == 0 {
				bot.MessageText(ctx.Session, ctx.Event.ChannelID, "Prefixes cleared. Mention me to run commands here.")
				return nil
			}
			bot.MessageText(ctx.Session, ctx.Event.ChannelID,
				"Prefixes set to: `"+strings.Join(prefixes, "`, `")+"`")
			return nil
		},
	}
}

// NewPrefixClear builds the clear subcommand.
func NewPrefixClear(app *core.App, parent *core.Command) *core.Subcommand {
	return &core.Subcommand{
		Name:        "clear",
		Enabled:     true,
		Description: "Remove custom prefixes and restore the defaults",
		Run: func(ctx *core.MessageContext) error {
			if ctx.Event.GuildID == "" {
				bot.MessageText(ctx.Session, ctx.Event.ChannelID, "Prefixes can only be configured in a guild.")
				return nil
			}
			if !canManage(ctx) {
				bot.MessageText(ctx.Session, ctx.Event.ChannelID, "You need the Manage Server permission to change prefixes.")
				return nil
			}
			if err := ctx.Storage.ClearPrefixes(ctx.Event.GuildID); err != nil {
				return fmt.Errorf("clear prefixes: %w", err)
			}
			ctx.App.Bus.Publish(bot.SystemEvent{
				Type:    bot.SystemEventPrefixUpdated,
				GuildID: ctx.Event.GuildID,
				Target:  "defaults",
			})
			bot.MessageText(ctx.Session, ctx.Event.ChannelID, "Custom prefixes removed. Defaults are back.")
			return nil
		},
	}
}

func showPrefixes(ctx *core.MessageContext) error {
	prefixes := ctx.App.ResolvePrefixes(ctx.Event.GuildID)
	if len(prefixes) == 0 {
		bot.MessageText(ctx.Session, ctx.Event.ChannelID, "No prefix is set here. Mention me to run a command.")
		return nil
	}
	bot.MessageText(ctx.Session, ctx.Event.ChannelID,
		"Prefixes in effect: `"+strings.Join(prefixes, "`, `")+"`")
	return nil
}

// canManage allows staff and members holding Manage Server.
func canManage(ctx *core.MessageContext) bool {
	if ctx.App.IsStaff(ctx.Event.Author.ID) {
		return true
	}
	if ctx.Session == nil {
		return false
	}
	perms, err := ctx.Session.UserChannelPermissions(ctx.Event.Author.ID, ctx.Event.ChannelID)
	if err != nil {
		return false
	}
	return perms&discordgo.PermissionManageServer != 0
}
