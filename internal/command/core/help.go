package core

import (
	"fmt"
	"strings"

	embed "github.com/clinet/discordgo-embed"

	"github.com/eliasrilegard/chronos/internal/core"
)

type HelpCommand struct{}

func (c *HelpCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:        "help",
		Description: "List commands, or show details for one",
		Usages:      []string{"help", "help <command>"},
	}
}

func (c *HelpCommand) Run(ctx *core.Context) error {
	if len(ctx.Args) > 0 {
		return c.showCommand(ctx)
	}
	return c.showOverview(ctx)
}

func (c *HelpCommand) showOverview(ctx *core.Context) error {
	e := embed.NewEmbed().
		SetColor(core.EmbedColor).
		SetTitle("Commands").
		SetDescription(fmt.Sprintf("Prefix: `%s`", ctx.Prefix))

	for _, cmd := range ctx.Registry.Commands() {
		d := cmd.Describe()
		if d.DevOnly && !ctx.Operator {
			continue
		}
		if d.Category != "" {
			var subs []string
			for _, sub := range ctx.Registry.Subcommands(d.Category) {
				subs = append(subs, sub.Describe().Name)
			}
			e = e.AddField(d.Name, fmt.Sprintf("%s\nSubcommands: `%s`", d.Description, strings.Join(subs, "`, `")))
			continue
		}
		e = e.AddField(d.Name, d.Description)
	}

	_, err := ctx.Replier.SendEmbed(e.MessageEmbed)
	return err
}

func (c *HelpCommand) showCommand(ctx *core.Context) error {
	first := ctx.Args[0]
	second := ""
	if len(ctx.Args) > 1 {
		second = ctx.Args[1]
	}

	cmd, _, found := ctx.Registry.Resolve(first, second)
	if !found {
		_, err := ctx.Replier.Send(fmt.Sprintf("No command named `%s`.", strings.Join(ctx.Args, " ")))
		return err
	}

	d := cmd.Describe()
	if d.DevOnly && !ctx.Operator {
		_, err := ctx.Replier.Send(fmt.Sprintf("No command named `%s`.", strings.Join(ctx.Args, " ")))
		return err
	}

	e := embed.NewEmbed().
		SetColor(core.EmbedColor).
		SetTitle(d.QualifiedName()).
		SetDescription(d.Description)
	if len(d.Usages) > 0 {
		var lines []string
		for _, u := range d.Usages {
			lines = append(lines, fmt.Sprintf("`%s%s`", ctx.Prefix, u))
		}
		e = e.AddField("Usage", strings.Join(lines, "\n"))
	}
	if d.RequiredPermission != 0 {
		e = e.AddField("Requires", core.PermissionName(d.RequiredPermission))
	}
	if d.Cooldown > 0 {
		e = e.AddField("Cooldown", d.Cooldown.String())
	}

	_, err := ctx.Replier.SendEmbed(e.MessageEmbed)
	return err
}
