package info

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/guild-clerk/internal/bot"
	"github.com/keshon/guild-clerk/internal/core"
	"github.com/keshon/guild-clerk/internal/version"
)

// NewAbout builds the about command.
func NewAbout(app *core.App, cat *core.Category) *core.Command {
	return &core.Command{
		Name:        "about",
		Aliases:     []string{"info"},
		Enabled:     true,
		Description: "Show what this bot is and what it runs",
		Usage:       "",
		Run: func(ctx *core.MessageContext) error {
			embed := &discordgo.MessageEmbed{
				Title: version.AppFullName,
				Description: fmt.Sprintf("Version %s, a command dispatcher with %d registered commands.",
					version.Version, ctx.App.Registry().Len()),
			}
			bot.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
			return nil
		},
	}
}
