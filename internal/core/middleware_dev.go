package core

import "github.com/rs/zerolog/log"

// WithDevGate drops devOnly commands for anyone outside the operator
// allowlist. The rejection is deliberately silent: to a regular user the
// command behaves as if it did not exist.
func WithDevGate() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *Context) error {
				if cmd.Describe().DevOnly && !ctx.Operator {
					log.Debug().
						Str("command", cmd.Describe().QualifiedName()).
						Str("user", ctx.Event.Author.ID).
						Msg("dev command dropped for non-operator")
					return ctx.Reject(Deny{Reason: DenyNotAuthorized})
				}
				return cmd.Run(ctx)
			},
		}
	}
}
