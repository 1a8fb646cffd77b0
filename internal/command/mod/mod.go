// Package mod holds the moderation command category.
package mod

import "github.com/eliasrilegard/chronos/internal/core"

// ModCommand is the category root. Invoked bare it lists its subcommands;
// dispatch of `mod <sub>` goes straight to the subcommand.
type ModCommand struct{}

func (c *ModCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:        "mod",
		Category:    "mod",
		Description: "Moderation tools",
		Usages:      []string{"mod <subcommand>"},
		GuildOnly:   true,
	}
}

func (c *ModCommand) Run(ctx *core.Context) error {
	_, err := ctx.Replier.SendEmbed(
		core.SubcommandListEmbed(ctx.Registry, ctx.Prefix, "mod", c.Describe().Description))
	return err
}

// Commands returns the package's registration table.
func Commands() []core.Command {
	return []core.Command{
		&ModCommand{},
		&KickCommand{},
		&BanCommand{},
	}
}
