package core

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/eliasrilegard/chronos/internal/storage"
)

// WithCommandLogger records the invocation in the guild's command history.
// Register it innermost (after the gates) so only invocations that passed
// every precondition are logged.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *Context) error {
				if ctx.Storage != nil && ctx.Event.GuildID != "" {
					rec := storage.CommandHistoryRecord{
						ChannelID: ctx.Event.ChannelID,
						UserID:    ctx.Event.Author.ID,
						Username:  ctx.Event.Author.Username,
						Command:   cmd.Describe().QualifiedName(),
						Datetime:  time.Now(),
					}
					if err := ctx.Storage.AppendCommandLog(ctx.Event.GuildID, rec); err != nil {
						log.Warn().Err(err).Msg("failed to record command history")
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}
