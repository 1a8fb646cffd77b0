// Package core holds the bot's general-purpose commands.
package core

import "github.com/eliasrilegard/chronos/internal/core"

// Commands returns the package's registration table.
func Commands() []core.Command {
	return []core.Command{
		&PingCommand{},
		&HelpCommand{},
		&AboutCommand{},
		&AvatarCommand{},
	}
}
