package core

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/guild-clerk/internal/storage"
)

// Category is a named grouping of commands. It is a descriptor, not a
// container: membership is inferred by scanning registered commands.
type Category struct {
	Name        string
	Description string
}

// Flag documents a per-invocation option a command understands.
type Flag struct {
	Name        string
	Description string
}

// Command is a single invokable chat action. Created once at load time,
// alive for the process lifetime. Enabled may be flipped at runtime by
// administrative commands; it is only read for display filtering and
// dispatch gating, so the plain field write is accepted.
type Command struct {
	Name            string
	Aliases         []string
	Category        *Category
	Enabled         bool
	Protected       bool
	GuildOnly       bool
	Cooldown        time.Duration
	Description     string
	FullDescription string
	Usage           string
	Flags           []Flag
	Subcommands     map[string]*Subcommand

	Run RunFunc
}

// Subcommand is a command-like entity scoped under a parent command's
// namespace. Owned exclusively by its parent.
type Subcommand struct {
	Name            string
	Enabled         bool
	Description     string
	FullDescription string
	Usage           string
	Flags           []Flag
	Parent          *Command

	Run RunFunc
}

// RunFunc executes a command against a message invocation.
type RunFunc func(ctx *MessageContext) error

// MessageContext is what the runtime hands a command when executing it.
type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Args    []string
	Flags   map[string]bool
	Storage *storage.Storage
	App     *App
}

// Subcommand returns the named subcommand, or nil.
func (c *Command) Subcommand(name string) *Subcommand {
	if c.Subcommands == nil {
		return nil
	}
	return c.Subcommands[name]
}

// Dispatch executes the command. A leading argument naming one of the
// command's subcommands routes there with that argument consumed; staff
// may reach disabled subcommands, everyone else falls through to the
// parent's own Run.
func (c *Command) Dispatch(ctx *MessageContext) error {
	if len(ctx.Args) > 0 {
		sub := c.Subcommand(strings.ToLower(ctx.Args[0]))
		if sub != nil && sub.Run != nil &&
			(sub.Enabled || ctx.App.IsStaff(ctx.Event.Author.ID)) {
			subCtx := *ctx
			subCtx.Args = ctx.Args[1:]
			return sub.Run(&subCtx)
		}
	}
	return c.Run(ctx)
}
