package settings

import (
	"fmt"
	"strings"

	"github.com/keshon/guild-clerk/internal/bot"
	"github.com/keshon/guild-clerk/internal/core"
)

// NewToggle builds the toggle command: the administrative switch that
// flips a command's enabled flag at runtime. The write is a plain field
// assignment; the flag only filters display and dispatch.
func NewToggle(app *core.App, cat *core.Category) *core.Command {
	return &core.Command{
		Name:            "toggle",
		Enabled:         true,
		Protected:       true,
		Description:     "Enable or disable a command bot-wide",
		FullDescription: "Flips a command's enabled flag. Disabled commands disappear from the manual for regular users and stop dispatching for them.",
		Usage:           "<command>",
		Run: func(ctx *core.MessageContext) error {
			if len(ctx.Args) == 0 {
				bot.MessageText(ctx.Session, ctx.Event.ChannelID, "Usage: `toggle <command>`")
				return nil
			}
			name := strings.ToLower(ctx.Args[0])
			c := ctx.App.Registry().Get(name)
			if c == nil {
				return &core.NotFoundError{Kind: "command", Input: ctx.Args[0]}
			}
			if c.Protected {
				bot.MessageText(ctx.Session, ctx.Event.ChannelID,
					fmt.Sprintf("Command `%s` is protected and cannot be toggled.", c.Name))
				return nil
			}

			c.Enabled = !c.Enabled
			state := "disabled"
			if c.Enabled {
				state = "enabled"
			}
			bot.MessageText(ctx.Session, ctx.Event.ChannelID,
				fmt.Sprintf("Command `%s` is now %s.", c.Name, state))
			return nil
		},
	}
}
