package core

import (
	"fmt"
	"runtime"
	"strings"

	embed "github.com/clinet/discordgo-embed"

	"github.com/eliasrilegard/chronos/internal/core"
	"github.com/eliasrilegard/chronos/internal/version"
)

type AboutCommand struct{}

func (c *AboutCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:        "about",
		Description: "Show info about the bot",
		Usages:      []string{"about"},
	}
}

func (c *AboutCommand) Run(ctx *core.Context) error {
	goVer := strings.TrimPrefix(runtime.Version(), "go")
	_, err := ctx.Replier.SendEmbed(embed.NewEmbed().
		SetColor(core.EmbedColor).
		SetTitle(version.AppName).
		SetDescription(version.AppDescription).
		AddField("Version", fmt.Sprintf("%s (Go %s)", version.AppVersion, goVer)).
		AddField("Repository", version.Repository).
		MessageEmbed)
	return err
}
