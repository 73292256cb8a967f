package discord

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/guild-clerk/internal/bot"
	"github.com/keshon/guild-clerk/internal/core"
	"github.com/keshon/guild-clerk/internal/flags"
)

// onMessageCreate is the command dispatch path: match an invocation
// prefix or a leading bot mention, resolve the command (aliases
// included), and run it through the middleware chain.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	rest, ok := stripInvocation(s, m.Content, b.app.ResolvePrefixes(m.GuildID))
	if !ok {
		return
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return
	}

	name := strings.ToLower(fields[0])
	opts, args := flags.Parse(fields[1:])

	c := b.app.Registry().Get(name)
	if c == nil {
		return
	}
	if !c.Enabled && !b.app.IsStaff(m.Author.ID) {
		return
	}
	if m.GuildID != "" && !b.app.IsStaff(m.Author.ID) {
		if disabled, err := b.store.IsCommandDisabled(m.GuildID, c.Name); err == nil && disabled {
			return
		}
	}

	ctx := &core.MessageContext{
		Session: s,
		Event:   m,
		Args:    args,
		Flags:   opts,
		Storage: b.store,
		App:     b.app,
	}

	run := core.ApplyMiddleware(c,
		core.WithStaffOnly(),
		core.WithGuildOnly(),
		core.WithCooldown(b.gate),
		core.WithCommandLog(),
	)
	if err := run(ctx); err != nil {
		log.Printf("[ERR] Error running command %s: %v", c.Name, err)
		bot.MessageEmbed(s, m.ChannelID, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Error running command: %v", err),
		})
	}
}

// stripInvocation removes the invocation marker from content: a leading
// bot mention always works; textual prefixes depend on the resolved list.
// An empty prefix list means mention-only invocation.
func stripInvocation(s *discordgo.Session, content string, prefixes []string) (string, bool) {
	content = strings.TrimSpace(content)

	if s.State != nil && s.State.User != nil {
		id := s.State.User.ID
		for _, mention := range []string{"<@" + id + ">", "<@!" + id + ">"} {
			if strings.HasPrefix(content, mention) {
				return strings.TrimSpace(strings.TrimPrefix(content, mention)), true
			}
		}
	}

	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(content, p) {
			return strings.TrimSpace(strings.TrimPrefix(content, p)), true
		}
	}
	return "", false
}
