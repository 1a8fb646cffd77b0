package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/eliasrilegard/chronos/internal/core"
)

type KickCommand struct{}

func (c *KickCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:               "kick",
		BelongsTo:          "mod",
		Description:        "Kick a member from the server",
		Usages:             []string{"mod kick <@member> [reason]"},
		RequiresArgs:       true,
		GuildOnly:          true,
		RequiredPermission: discordgo.PermissionKickMembers,
		Cooldown:           3 * time.Second,
	}
}

func (c *KickCommand) Run(ctx *core.Context) error {
	target := core.FirstMention(ctx.Event)
	if target == nil {
		_, err := ctx.Replier.Send("Mention the member you want to kick.")
		return err
	}

	reason := strings.Join(core.StripMentionTokens(ctx.Args), " ")
	if err := ctx.Session.GuildMemberDeleteWithReason(ctx.Event.GuildID, target.ID, reason); err != nil {
		_, serr := ctx.Replier.Send(fmt.Sprintf("Could not kick %s.", target.Username))
		return serr
	}

	msg := fmt.Sprintf("Kicked %s.", target.Username)
	if reason != "" {
		msg = fmt.Sprintf("Kicked %s: %s", target.Username, reason)
	}
	_, err := ctx.Replier.Send(msg)
	return err
}
