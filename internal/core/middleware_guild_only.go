package core

// WithGuildOnly rejects guild-only commands invoked from a direct message.
// Operators are not exempt from this gate: the command genuinely cannot work
// without a guild context.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *Context) error {
				if cmd.Describe().GuildOnly && ctx.Event.GuildID == "" {
					return ctx.Reject(Deny{
						Reason:      DenyWrongContext,
						Explanation: "This command is unavailable in direct messages. Use it in a server instead.",
					})
				}
				return cmd.Run(ctx)
			},
		}
	}
}
