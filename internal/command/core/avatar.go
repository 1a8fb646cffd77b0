package core

import (
	embed "github.com/clinet/discordgo-embed"

	"github.com/eliasrilegard/chronos/internal/core"
)

type AvatarCommand struct{}

func (c *AvatarCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:        "avatar",
		Description: "Show a user's avatar, or your own",
		Usages:      []string{"avatar", "avatar <@user>"},
	}
}

func (c *AvatarCommand) Run(ctx *core.Context) error {
	target := core.FirstMention(ctx.Event)
	if target == nil {
		target = ctx.Event.Author
	}

	_, err := ctx.Replier.SendEmbed(embed.NewEmbed().
		SetColor(core.EmbedColor).
		SetTitle(target.Username).
		SetImage(target.AvatarURL("1024")).
		MessageEmbed)
	return err
}
