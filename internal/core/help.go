package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Reply is a sendable message: either a rich embed or plain content,
// depending on how the invocation asked to be answered.
type Reply struct {
	Content string
	Embed   *discordgo.MessageEmbed
}

// HelpOptions selects the rendering format for BuildHelp. Embed false
// produces a preformatted plain-text block with equivalent information.
type HelpOptions struct {
	Embed     bool
	Timestamp time.Time
}

type helpSection struct {
	name  string
	value string
}

// BuildHelp renders this command's full help, or a subcommand's when sub
// is non-nil. Both formats carry the same sections; the choice between
// embed and text is presentation only.
func (c *Command) BuildHelp(ctx *MessageContext, sub *Subcommand, opts HelpOptions) *Reply {
	title := c.Name
	description := c.FullDescription
	usage := c.Usage
	flags := c.Flags
	aliases := c.Aliases
	enabled := c.Enabled

	if sub != nil {
		title = c.Name + " " + sub.Name
		description = sub.FullDescription
		if description == "" {
			description = sub.Description
		}
		usage = sub.Usage
		flags = sub.Flags
		aliases = nil
		enabled = sub.Enabled
	}
	if description == "" {
		description = c.Description
	}
	if !enabled {
		title += " (disabled)"
	}

	invokable := strings.TrimSuffix(title, " (disabled)")

	var sections []helpSection
	if usage != "" {
		sections = append(sections, helpSection{"Usage", fmt.Sprintf("`%s %s`", invokable, usage)})
	}
	if len(aliases) > 0 {
		sections = append(sections, helpSection{"Aliases", "`" + strings.Join(aliases, "`, `") + "`"})
	}
	if len(flags) > 0 {
		var sb strings.Builder
		for _, f := range flags {
			fmt.Fprintf(&sb, "`--%s` - %s\n", f.Name, f.Description)
		}
		sections = append(sections, helpSection{"Flags", strings.TrimRight(sb.String(), "\n")})
	}
	if c.Cooldown > 0 && sub == nil {
		sections = append(sections, helpSection{"Cooldown", c.Cooldown.String()})
	}
	if sub == nil && len(c.Subcommands) > 0 {
		names := make([]string, 0, len(c.Subcommands))
		for name := range c.Subcommands {
			names = append(names, name)
		}
		sort.Strings(names)
		var sb strings.Builder
		for _, name := range names {
			fmt.Fprintf(&sb, "`%s` - %s\n", name, c.Subcommands[name].Description)
		}
		sections = append(sections, helpSection{"Subcommands", strings.TrimRight(sb.String(), "\n")})
	}

	if !opts.Embed {
		var sb strings.Builder
		fmt.Fprintf(&sb, "= %s =\n\n%s\n", title, description)
		for _, s := range sections {
			fmt.Fprintf(&sb, "\n%s:\n%s\n", s.name, stripMarkdown(s.value))
		}
		return &Reply{Content: "```asciidoc\n" + sb.String() + "```"}
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
	}
	for _, s := range sections {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  s.name,
			Value: s.value,
		})
	}
	if !opts.Timestamp.IsZero() {
		embed.Timestamp = opts.Timestamp.Format(time.RFC3339)
	}
	return &Reply{Embed: embed}
}

// stripMarkdown removes the backtick decoration used in embed fields so
// the plain-text rendering stays readable inside its code block.
func stripMarkdown(s string) string {
	return strings.ReplaceAll(s, "`", "")
}
