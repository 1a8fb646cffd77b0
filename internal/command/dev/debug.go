// Package dev holds operator-only commands.
package dev

import (
	"fmt"
	"runtime"

	embed "github.com/clinet/discordgo-embed"

	"github.com/eliasrilegard/chronos/internal/core"
)

type DebugCommand struct{}

func (c *DebugCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:        "debug",
		Description: "Show a runtime snapshot of the bot internals",
		Usages:      []string{"debug"},
		DevOnly:     true,
	}
}

func (c *DebugCommand) Run(ctx *core.Context) error {
	topLevel := len(ctx.Registry.Commands())
	_, err := ctx.Replier.SendEmbed(embed.NewEmbed().
		SetColor(core.EmbedColor).
		SetTitle("Debug").
		AddField("Commands", fmt.Sprintf("%d top-level", topLevel)).
		AddField("Active cooldowns", fmt.Sprintf("%d", ctx.Cooldowns.ActiveEntries())).
		AddField("Jobs", ctx.Jobs.Status()).
		AddField("Runtime", fmt.Sprintf("%s, %d goroutines", runtime.Version(), runtime.NumGoroutine())).
		MessageEmbed)
	return err
}

// Commands returns the package's registration table.
func Commands() []core.Command {
	return []core.Command{&DebugCommand{}}
}
