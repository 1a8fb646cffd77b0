package core

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

const (
	EmbedColor     = 0x5865f2
	EmbedColorWarn = 0xfaa61a
)

// SubcommandListEmbed builds the listing a category root replies with when
// invoked bare.
func SubcommandListEmbed(reg *Registry, prefix, category, description string) *discordgo.MessageEmbed {
	e := embed.NewEmbed().
		SetColor(EmbedColor).
		SetTitle(category).
		SetDescription(description)
	for _, sub := range reg.Subcommands(category) {
		d := sub.Describe()
		usage := d.QualifiedName()
		if len(d.Usages) > 0 {
			usage = d.Usages[0]
		}
		e = e.AddField(fmt.Sprintf("%s%s", prefix, usage), d.Description)
	}
	return e.MessageEmbed
}

// FirstMention returns the first user mentioned in the message, excluding
// the author.
func FirstMention(m *discordgo.MessageCreate) *discordgo.User {
	for _, u := range m.Mentions {
		if u.ID != m.Author.ID {
			return u
		}
	}
	if len(m.Mentions) > 0 {
		return m.Mentions[0]
	}
	return nil
}

// StripMentionTokens removes mention tokens (<@id> / <@!id>) from args so a
// trailing free-text argument (e.g. a kick reason) can be reassembled.
func StripMentionTokens(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if strings.HasPrefix(a, "<@") && strings.HasSuffix(a, ">") {
			continue
		}
		out = append(out, a)
	}
	return out
}
