package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

var permissionNames = map[int64]string{
	discordgo.PermissionKickMembers:     "Kick Members",
	discordgo.PermissionBanMembers:      "Ban Members",
	discordgo.PermissionAdministrator:   "Administrator",
	discordgo.PermissionManageChannels:  "Manage Channels",
	discordgo.PermissionManageGuild:     "Manage Server",
	discordgo.PermissionManageMessages:  "Manage Messages",
	discordgo.PermissionManageRoles:     "Manage Roles",
	discordgo.PermissionModerateMembers: "Moderate Members",
}

// PermissionName returns a human-readable name for a permission bit.
func PermissionName(p int64) string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", p)
}

// WithPermissionCheck rejects actors missing a command's required permission
// in the channel the invocation came from. Operators bypass the gate;
// administrators implicitly hold every permission.
func WithPermissionCheck() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *Context) error {
				required := cmd.Describe().RequiredPermission
				if required == 0 || ctx.Operator {
					return cmd.Run(ctx)
				}

				perms, err := ctx.Permissions(ctx.Event.Author.ID, ctx.Event.ChannelID)
				if err != nil {
					return ctx.Reject(Deny{
						Reason:      DenyInsufficientPermission,
						Explanation: "Could not resolve your permissions in this channel.",
					})
				}
				if perms&discordgo.PermissionAdministrator == 0 && perms&required == 0 {
					return ctx.Reject(Deny{
						Reason: DenyInsufficientPermission,
						Explanation: fmt.Sprintf(
							"You need the `%s` permission to use this command.",
							PermissionName(required),
						),
					})
				}
				return cmd.Run(ctx)
			},
		}
	}
}
