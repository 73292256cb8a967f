package info

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/guild-clerk/internal/bot"
	"github.com/keshon/guild-clerk/internal/core"
	"github.com/keshon/guild-clerk/internal/flags"
	"github.com/keshon/guild-clerk/internal/version"
)

// NewHelp builds the help command: renders the manual from the live
// registry.
func NewHelp(app *core.App, cat *core.Category) *core.Command {
	c := &core.Command{
		Name:        "help",
		Aliases:     []string{"h", "commands"},
		Enabled:     true,
		Cooldown:    3 * time.Second,
		Description: "Show the command manual",
		FullDescription: "Without arguments, lists every category with its commands. " +
			"Pass a category name for its command list, a command name for full help, " +
			"or a command and subcommand for the subcommand's help.",
		Usage: "[command|category] (subcommand)",
		Flags: []core.Flag{
			{Name: flags.NoEmbed, Description: "Render as plain text instead of an embed"},
		},
	}
	c.Run = func(ctx *core.MessageContext) error {
		reply, err := resolveHelp(ctx)
		if err != nil {
			return err
		}
		sendReply(ctx, reply)
		return nil
	}
	return c
}

// resolveHelp walks the help states in order: full manual, category,
// command, command+subcommand, not-found. Exactly one render per
// invocation.
func resolveHelp(ctx *core.MessageContext) (*core.Reply, error) {
	useEmbed := !ctx.Flags[flags.NoEmbed] && canEmbed(ctx)
	opts := core.HelpOptions{Embed: useEmbed, Timestamp: time.Now()}
	reg := ctx.App.Registry()
	staff := ctx.App.IsStaff(ctx.Event.Author.ID)

	switch len(ctx.Args) {
	case 0:
		return buildManual(ctx, staff, useEmbed), nil

	case 1:
		arg := ctx.Args[0]
		for _, g := range reg.Categories() {
			if strings.EqualFold(g.Category.Name, arg) {
				return buildCategoryHelp(g, useEmbed), nil
			}
		}
		if c := reg.Get(strings.ToLower(arg)); c != nil {
			return c.BuildHelp(ctx, nil, opts), nil
		}
		return nil, &core.NotFoundError{Kind: "command or category", Input: arg}

	default:
		c := reg.Get(strings.ToLower(ctx.Args[0]))
		if c == nil {
			return nil, &core.NotFoundError{Kind: "command or category", Input: ctx.Args[0]}
		}
		sub := c.Subcommand(strings.ToLower(ctx.Args[1]))
		if sub == nil {
			return nil, &core.NotFoundError{
				Kind:  fmt.Sprintf("subcommand of command '%s'", c.Name),
				Input: ctx.Args[1],
			}
		}
		return c.BuildHelp(ctx, sub, opts), nil
	}
}

// buildManual renders the full manual: every category with at least one
// visible command, annotated with its live command count. Non-staff
// callers never see disabled commands; staff see them tagged and counted.
func buildManual(ctx *core.MessageContext, staff, useEmbed bool) *core.Reply {
	type section struct {
		name  string
		lines []string
	}

	var sections []section
	for _, g := range ctx.App.Registry().Categories() {
		var lines []string
		for _, c := range g.Commands {
			if !c.Enabled && !staff {
				continue
			}
			line := fmt.Sprintf("`%s` - %s", c.Name, c.Description)
			if !c.Enabled {
				line += " (disabled)"
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}
		sections = append(sections, section{
			name:  fmt.Sprintf("%s (%d)", g.Category.Name, len(lines)),
			lines: lines,
		})
	}

	intro := prefixLine(ctx) + "\nUse `help <command>` for details on a command."

	if !useEmbed {
		var sb strings.Builder
		fmt.Fprintf(&sb, "= %s Manual =\n\n%s\n", version.AppName, stripTicks(intro))
		for _, s := range sections {
			fmt.Fprintf(&sb, "\n%s:\n", s.name)
			for _, l := range s.lines {
				sb.WriteString(stripTicks(l) + "\n")
			}
		}
		return &core.Reply{Content: "```asciidoc\n" + sb.String() + "```"}
	}

	embed := &discordgo.MessageEmbed{
		Title:       version.AppName + " Manual",
		Description: intro,
	}
	for _, s := range sections {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  s.name,
			Value: strings.Join(s.lines, "\n"),
		})
	}
	return &core.Reply{Embed: embed}
}

// buildCategoryHelp renders one category's command list. Disabled
// commands appear tagged rather than hidden, the category view is for
// inspecting what exists.
func buildCategoryHelp(g core.CategoryGroup, useEmbed bool) *core.Reply {
	var lines []string
	for _, c := range g.Commands {
		line := fmt.Sprintf("`%s` - %s", c.Name, c.Description)
		if !c.Enabled {
			line += " (disabled)"
		}
		lines = append(lines, line)
	}

	if !useEmbed {
		var sb strings.Builder
		fmt.Fprintf(&sb, "= %s =\n\n%s\n\n", g.Category.Name, g.Category.Description)
		for _, l := range lines {
			sb.WriteString(stripTicks(l) + "\n")
		}
		return &core.Reply{Content: "```asciidoc\n" + sb.String() + "```"}
	}

	return &core.Reply{Embed: &discordgo.MessageEmbed{
		Title:       g.Category.Name,
		Description: g.Category.Description,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Commands", Value: strings.Join(lines, "\n")},
		},
	}}
}

// prefixLine describes how to invoke the bot in the current context. A
// configured-but-empty prefix list means mention-only invocation and is
// rendered as such, never as an empty backticked list.
func prefixLine(ctx *core.MessageContext) string {
	prefixes := ctx.App.ResolvePrefixes(ctx.Event.GuildID)
	if len(prefixes) == 0 {
		return "No prefix is set here. Mention me to run a command."
	}
	return "Prefixes: `" + strings.Join(prefixes, "`, `") + "`"
}

// canEmbed reports whether the bot may send rich embeds in the current
// channel. DMs always allow embeds; in guilds the embed-links permission
// decides. Unknown state falls back to plain text.
func canEmbed(ctx *core.MessageContext) bool {
	if ctx.Session == nil || ctx.Session.State == nil || ctx.Session.State.User == nil {
		return false
	}
	if ctx.Event.GuildID == "" {
		return true
	}
	perms, err := ctx.Session.UserChannelPermissions(ctx.Session.State.User.ID, ctx.Event.ChannelID)
	if err != nil {
		return false
	}
	return perms&discordgo.PermissionEmbedLinks != 0
}

func sendReply(ctx *core.MessageContext, reply *core.Reply) {
	if reply.Embed != nil {
		bot.MessageEmbed(ctx.Session, ctx.Event.ChannelID, reply.Embed)
		return
	}
	bot.MessageText(ctx.Session, ctx.Event.ChannelID, reply.Content)
}

func stripTicks(s string) string {
	return strings.ReplaceAll(s, "`", "")
}
