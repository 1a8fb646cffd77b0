// Package settings holds per-guild configuration commands.
package settings

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/eliasrilegard/chronos/internal/core"
)

const maxPrefixLen = 5

type PrefixCommand struct{}

func (c *PrefixCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:               "prefix",
		Description:        "Set or reset this server's command prefix",
		Usages:             []string{"prefix <new prefix>", "prefix reset"},
		RequiresArgs:       true,
		GuildOnly:          true,
		RequiredPermission: discordgo.PermissionManageGuild,
	}
}

func (c *PrefixCommand) Run(ctx *core.Context) error {
	arg := ctx.Args[0]

	if arg == "reset" {
		if err := ctx.Storage.ClearPrefix(ctx.Event.GuildID); err != nil {
			return err
		}
		_, err := ctx.Replier.Send("Prefix reset to the default.")
		return err
	}

	if len(arg) > maxPrefixLen {
		_, err := ctx.Replier.Send(fmt.Sprintf("Prefixes can be at most %d characters.", maxPrefixLen))
		return err
	}
	if err := ctx.Storage.SetPrefix(ctx.Event.GuildID, arg); err != nil {
		return err
	}
	_, err := ctx.Replier.Send(fmt.Sprintf("Prefix for this server is now `%s`.", arg))
	return err
}

// Commands returns the package's registration table.
func Commands() []core.Command {
	return []core.Command{&PrefixCommand{}}
}
