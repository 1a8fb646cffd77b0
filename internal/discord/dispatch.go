package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/eliasrilegard/chronos/internal/core"
)

// onMessageCreate is the dispatcher: prefix strip, tokenize, resolve, run.
// Unknown commands are ignored without a reply; anything starting with the
// prefix can be ordinary chatter.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	prefix := b.resolvePrefix(m.GuildID)
	body, ok := strings.CutPrefix(m.Content, prefix)
	if !ok {
		return
	}

	cmd, args, found := resolveTokens(b.registry, strings.Fields(body))
	if !found {
		return
	}

	ctx := &core.Context{
		Session:   s,
		Event:     m,
		Args:      args,
		Prefix:    prefix,
		Operator:  b.cfg.IsOperator(m.Author.ID),
		Storage:   b.store,
		Registry:  b.registry,
		Cooldowns: b.tracker,
		Jobs:      b.jobs,
		Replier:   b.replier(m.ChannelID),
		Permissions: func(userID, channelID string) (int64, error) {
			return s.UserChannelPermissions(userID, channelID)
		},
	}

	name := cmd.Describe().QualifiedName()
	if err := cmd.Run(ctx); err != nil {
		log.Error().Err(err).Str("command", name).Msg("command failed")
		return
	}
	if ctx.Denied != nil {
		log.Debug().
			Str("command", name).
			Str("user", m.Author.ID).
			Str("reason", string(ctx.Denied.Reason)).
			Msg("invocation denied")
	}
}

// resolveTokens maps message tokens to a handler and its remaining
// arguments. The subcommand token, when one is consumed, is not part of the
// arguments.
func resolveTokens(reg *core.Registry, tokens []string) (core.Command, []string, bool) {
	if len(tokens) == 0 {
		return nil, nil, false
	}
	first, rest := tokens[0], tokens[1:]
	second := ""
	if len(rest) > 0 {
		second = rest[0]
	}

	cmd, consumed, found := reg.Resolve(first, second)
	if !found {
		return nil, nil, false
	}
	if consumed {
		rest = rest[1:]
	}
	return cmd, rest, true
}

// resolvePrefix applies the guild's prefix override, else the global
// default. Direct messages always use the default.
func (b *Bot) resolvePrefix(guildID string) string {
	if guildID != "" && b.store != nil {
		if p, ok := b.store.GetPrefix(guildID); ok {
			return p
		}
	}
	return b.cfg.Prefix
}
