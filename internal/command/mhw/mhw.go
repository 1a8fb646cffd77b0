// Package mhw holds the Monster Hunter: World lookup category.
package mhw

import (
	"github.com/eliasrilegard/chronos/internal/core"
	"github.com/eliasrilegard/chronos/internal/mhwdata"
)

// MhwCommand is the category root.
type MhwCommand struct{}

func (c *MhwCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:        "mhw",
		Category:    "mhw",
		Description: "Monster Hunter: World lookups",
		Usages:      []string{"mhw <subcommand>"},
	}
}

func (c *MhwCommand) Run(ctx *core.Context) error {
	_, err := ctx.Replier.SendEmbed(
		core.SubcommandListEmbed(ctx.Registry, ctx.Prefix, "mhw", c.Describe().Description))
	return err
}

// Commands returns the package's registration table. The dataset is loaded
// once at startup and shared by every lookup.
func Commands(data *mhwdata.Dataset) []core.Command {
	return []core.Command{
		&MhwCommand{},
		&HzvCommand{data: data},
	}
}
