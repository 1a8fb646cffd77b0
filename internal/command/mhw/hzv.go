package mhw

import (
	"fmt"
	"strings"
	"time"

	embed "github.com/clinet/discordgo-embed"

	"github.com/eliasrilegard/chronos/internal/core"
	"github.com/eliasrilegard/chronos/internal/mhwdata"
)

type HzvCommand struct {
	data *mhwdata.Dataset
}

func (c *HzvCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:         "hzv",
		BelongsTo:    "mhw",
		Description:  "Show a monster's hitzone values",
		Usages:       []string{"mhw hzv <monster>"},
		RequiresArgs: true,
		Cooldown:     3 * time.Second,
	}
}

func (c *HzvCommand) Run(ctx *core.Context) error {
	name := strings.Join(ctx.Args, " ")
	monster, ok := c.data.Find(name)
	if !ok {
		_, err := ctx.Replier.Send(fmt.Sprintf("No monster named `%s` in the hunter's notes.", name))
		return err
	}

	e := embed.NewEmbed().
		SetColor(core.EmbedColor).
		SetTitle(monster.Name).
		SetDescription(fmt.Sprintf("Threat level %d", monster.Threat))
	for _, hz := range monster.Hitzones {
		e = e.AddField(hz.Part, fmt.Sprintf(
			"Sever %d / Blunt %d / Shot %d\nFire %d / Water %d / Thunder %d / Ice %d / Dragon %d",
			hz.Sever, hz.Blunt, hz.Shot,
			hz.Fire, hz.Water, hz.Thunder, hz.Ice, hz.Dragon,
		))
	}

	_, err := ctx.Replier.SendEmbed(e.MessageEmbed)
	return err
}
