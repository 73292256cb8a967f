package settings

import (
	"fmt"
	"strings"

	"github.com/keshon/guild-clerk/internal/bot"
	"github.com/keshon/guild-clerk/internal/core"
)

// NewDisable builds the disable command: marks a command unavailable in
// the invoking guild. Unlike toggle, the setting is persisted and
// survives restarts; staff bypass it at dispatch.
func NewDisable(app *core.App, cat *core.Category) *core.Command {
	return &core.Command{
		Name:            "disable",
		Enabled:         true,
		GuildOnly:       true,
		Description:     "Disable a command in this guild",
		FullDescription: "Marks a command unavailable in this guild. The setting is stored and survives restarts; staff are unaffected.",
		Usage:           "<command>",
		Run: func(ctx *core.MessageContext) error {
			msg, err := setCommandAvailability(ctx, false)
			if err != nil {
				return err
			}
			bot.MessageText(ctx.Session, ctx.Event.ChannelID, msg)
			return nil
		},
	}
}

// NewEnable builds the enable command, the inverse of disable.
func NewEnable(app *core.App, cat *core.Category) *core.Command {
	return &core.Command{
		Name:            "enable",
		Enabled:         true,
		GuildOnly:       true,
		Description:     "Re-enable a command in this guild",
		FullDescription: "Removes a command from this guild's disabled set.",
		Usage:           "<command>",
		Run: func(ctx *core.MessageContext) error {
			msg, err := setCommandAvailability(ctx, true)
			if err != nil {
				return err
			}
			bot.MessageText(ctx.Session, ctx.Event.ChannelID, msg)
			return nil
		},
	}
}

func setCommandAvailability(ctx *core.MessageContext, available bool) (string, error) {
	verb := "disable"
	if available {
		verb = "enable"
	}

	if !canManage(ctx) {
		return "You need the Manage Server permission to change command availability.", nil
	}
	if len(ctx.Args) == 0 {
		return fmt.Sprintf("Usage: `%s <command>`", verb), nil
	}

	c := ctx.App.Registry().Get(strings.ToLower(ctx.Args[0]))
	if c == nil {
		return "", &core.NotFoundError{Kind: "command", Input: ctx.Args[0]}
	}
	if c.Protected {
		return fmt.Sprintf("Command `%s` is protected and cannot be disabled.", c.Name), nil
	}

	if available {
		if err := ctx.Storage.EnableCommand(ctx.Event.GuildID, c.Name); err != nil {
			return "", fmt.Errorf("enable command: %w", err)
		}
		return fmt.Sprintf("Command `%s` is available in this guild again.", c.Name), nil
	}
	if err := ctx.Storage.DisableCommand(ctx.Event.GuildID, c.Name); err != nil {
		return "", fmt.Errorf("disable command: %w", err)
	}
	return fmt.Sprintf("Command `%s` is now disabled in this guild.", c.Name), nil
}
