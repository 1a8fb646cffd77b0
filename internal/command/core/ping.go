package core

import (
	"fmt"

	embed "github.com/clinet/discordgo-embed"

	"github.com/eliasrilegard/chronos/internal/core"
)

type PingCommand struct{}

func (c *PingCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:        "ping",
		Description: "Check bot latency",
		Usages:      []string{"ping"},
	}
}

func (c *PingCommand) Run(ctx *core.Context) error {
	latency := ctx.Session.HeartbeatLatency().Milliseconds()
	_, err := ctx.Replier.SendEmbed(embed.NewEmbed().
		SetColor(core.EmbedColor).
		SetTitle("Pong!").
		SetDescription(fmt.Sprintf("Latency: %dms", latency)).
		MessageEmbed)
	return err
}
