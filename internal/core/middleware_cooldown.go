package core

import (
	"fmt"
	"time"
)

// How long a cooling-down notice stays in the channel before it is deleted.
const cooldownNoticeTTL = 7 * time.Second

// WithCooldown arms the per-(command, user) cooldown as the final gate. The
// entry is created when this gate passes, not when the handler finishes, so
// a handler that fails internally still counts as an invocation. Category
// roots are dispatch hubs and never accrue cooldowns; operators bypass the
// gate entirely.
func WithCooldown(tracker *CooldownTracker) Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *Context) error {
				d := cmd.Describe()
				if d.Category != "" || d.Cooldown <= 0 || ctx.Operator {
					return cmd.Run(ctx)
				}

				remaining, ok := tracker.TryConsume(d.QualifiedName(), ctx.Event.Author.ID, d.Cooldown)
				if !ok {
					return ctx.Reject(Deny{
						Reason: DenyCoolingDown,
						Explanation: fmt.Sprintf(
							"Hold on! You can use `%s` again in %.1f seconds.",
							d.QualifiedName(), remaining.Seconds(),
						),
						TTL:       cooldownNoticeTTL,
						Remaining: remaining,
					})
				}
				return cmd.Run(ctx)
			},
		}
	}
}
