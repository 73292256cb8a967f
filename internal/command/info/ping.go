package info

import (
	"fmt"
	"time"

	"github.com/keshon/guild-clerk/internal/bot"
	"github.com/keshon/guild-clerk/internal/core"
)

// NewPing builds the ping command.
func NewPing(app *core.App, cat *core.Category) *core.Command {
	return &core.Command{
		Name:        "ping",
		Enabled:     true,
		Cooldown:    5 * time.Second,
		Description: "Check gateway latency",
		Run: func(ctx *core.MessageContext) error {
			latency := ctx.Session.HeartbeatLatency().Round(time.Millisecond)
			bot.MessageText(ctx.Session, ctx.Event.ChannelID, fmt.Sprintf("Pong! `%s`", latency))
			return nil
		},
	}
}
