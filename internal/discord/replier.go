package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/eliasrilegard/chronos/internal/core"
	"github.com/eliasrilegard/chronos/pkg/jobmgr"
	"github.com/eliasrilegard/chronos/pkg/sendlimit"
)

// channelReplier implements core.Replier for one channel. Every send passes
// through the adaptive limiter; temporary notices are deleted by a
// cancellable scheduled job rather than a bare timer.
type channelReplier struct {
	s         *discordgo.Session
	channelID string
	limiter   *sendlimit.Limiter
	jobs      *jobmgr.Manager
}

func (b *Bot) replier(channelID string) core.Replier {
	return &channelReplier{
		s:         b.dg,
		channelID: channelID,
		limiter:   b.limiter,
		jobs:      b.jobs,
	}
}

func (r *channelReplier) Send(content string) (*discordgo.Message, error) {
	if err := r.limiter.Wait(context.Background()); err != nil {
		return nil, err
	}
	msg, err := r.s.ChannelMessageSend(r.channelID, content)
	r.limiter.Observe(err)
	return msg, err
}

func (r *channelReplier) SendEmbed(e *discordgo.MessageEmbed) (*discordgo.Message, error) {
	if err := r.limiter.Wait(context.Background()); err != nil {
		return nil, err
	}
	msg, err := r.s.ChannelMessageSendEmbed(r.channelID, e)
	r.limiter.Observe(err)
	return msg, err
}

func (r *channelReplier) SendTemporary(content string, ttl time.Duration) error {
	msg, err := r.Send(content)
	if err != nil {
		return err
	}
	return r.jobs.After("notice:"+msg.ID, ttl, func(ctx context.Context) error {
		return r.s.ChannelMessageDelete(r.channelID, msg.ID)
	})
}
