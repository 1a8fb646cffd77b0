package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/eliasrilegard/chronos/internal/config"
	"github.com/eliasrilegard/chronos/internal/core"
	"github.com/eliasrilegard/chronos/internal/storage"
	"github.com/eliasrilegard/chronos/pkg/jobmgr"
	"github.com/eliasrilegard/chronos/pkg/sendlimit"
)

// Bot owns the Discord session and feeds incoming messages into the command
// registry.
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	store    *storage.Storage
	registry *core.Registry
	tracker  *core.CooldownTracker
	jobs     *jobmgr.Manager
	limiter  *sendlimit.Limiter
}

// NewBot wires the bot together. Run must be called to connect.
func NewBot(cfg *config.Config, store *storage.Storage, registry *core.Registry, tracker *core.CooldownTracker, jobs *jobmgr.Manager) *Bot {
	return &Bot{
		cfg:      cfg,
		store:    store,
		registry: registry,
		tracker:  tracker,
		jobs:     jobs,
		limiter:  sendlimit.New(5, 1, 20, 1, 0.5),
	}
}

// Run connects to Discord and blocks until ctx is done. Pending scheduled
// replies are cancelled on the way out.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, cancelling pending jobs")
	b.jobs.StopAll()
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Info().
		Str("user", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Msg("connected")
}
