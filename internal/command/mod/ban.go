package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/eliasrilegard/chronos/internal/core"
)

type BanCommand struct{}

func (c *BanCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:               "ban",
		BelongsTo:          "mod",
		Description:        "Ban a member from the server",
		Usages:             []string{"mod ban <@member> [reason]"},
		RequiresArgs:       true,
		GuildOnly:          true,
		RequiredPermission: discordgo.PermissionBanMembers,
		Cooldown:           3 * time.Second,
	}
}

func (c *BanCommand) Run(ctx *core.Context) error {
	target := core.FirstMention(ctx.Event)
	if target == nil {
		_, err := ctx.Replier.Send("Mention the member you want to ban.")
		return err
	}

	reason := strings.Join(core.StripMentionTokens(ctx.Args), " ")
	if err := ctx.Session.GuildBanCreateWithReason(ctx.Event.GuildID, target.ID, reason, 0); err != nil {
		_, serr := ctx.Replier.Send(fmt.Sprintf("Could not ban %s.", target.Username))
		return serr
	}

	msg := fmt.Sprintf("Banned %s.", target.Username)
	if reason != "" {
		msg = fmt.Sprintf("Banned %s: %s", target.Username, reason)
	}
	_, err := ctx.Replier.Send(msg)
	return err
}
