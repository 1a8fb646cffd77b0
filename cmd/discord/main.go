package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	corecmd "github.com/eliasrilegard/chronos/internal/command/core"
	"github.com/eliasrilegard/chronos/internal/command/dev"
	"github.com/eliasrilegard/chronos/internal/command/mhw"
	"github.com/eliasrilegard/chronos/internal/command/mod"
	"github.com/eliasrilegard/chronos/internal/command/remind"
	"github.com/eliasrilegard/chronos/internal/command/settings"
	"github.com/eliasrilegard/chronos/internal/config"
	"github.com/eliasrilegard/chronos/internal/core"
	"github.com/eliasrilegard/chronos/internal/discord"
	"github.com/eliasrilegard/chronos/internal/logging"
	"github.com/eliasrilegard/chronos/internal/mhwdata"
	"github.com/eliasrilegard/chronos/internal/storage"
	"github.com/eliasrilegard/chronos/internal/version"
	"github.com/eliasrilegard/chronos/pkg/jobmgr"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFile)
	log.Info().Str("version", version.AppVersion).Msgf("starting %s", version.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close()

	dataset, err := mhwdata.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load monster dataset")
	}

	tracker := core.NewCooldownTracker()
	go tracker.RunCleaner(ctx, time.Minute)

	jobs := jobmgr.NewManager(func(msg string) {
		log.Debug().Str("event", msg).Msg("job")
	})

	registry, err := buildRegistry(tracker, dataset)
	if err != nil {
		log.Fatal().Err(err).Msg("command registration failed")
	}

	bot := discord.NewBot(cfg, store, registry, tracker, jobs)

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Run(ctx)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("bot error")
		}
		cancel()
	}

	log.Info().Msg("exited cleanly")
}

// buildRegistry assembles the explicit registration table and wraps every
// command in the precondition chain plus the command logger.
func buildRegistry(tracker *core.CooldownTracker, dataset *mhwdata.Dataset) (*core.Registry, error) {
	var table []core.Command
	table = append(table, corecmd.Commands()...)
	table = append(table, mod.Commands()...)
	table = append(table, mhw.Commands(dataset)...)
	table = append(table, remind.Commands()...)
	table = append(table, settings.Commands()...)
	table = append(table, dev.Commands()...)

	chain := append(core.Preconditions(tracker), core.WithCommandLogger())

	registry := core.NewRegistry()
	for _, c := range table {
		if err := registry.Register(core.ApplyMiddlewares(c, chain...)); err != nil {
			return nil, err
		}
	}
	if err := registry.Finalize(); err != nil {
		return nil, err
	}
	return registry, nil
}
