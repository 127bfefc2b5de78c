package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/battle"
	"github.com/KirkDiggler/rpg-battle/internal/catalog"
	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/logger"
	"github.com/KirkDiggler/rpg-battle/internal/narration"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-battle/internal/redis"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/player"
)

// app wires the game together for one command invocation.
type app struct {
	cfg  *config.Config
	opts options
	in   io.Reader
	out  io.Writer

	catalog *catalog.Catalog
	svc     encounter.Service
	closers []func() error
}

func (a *app) start(cmd *cobra.Command) error {
	logger.Setup(a.cfg, os.Stderr)

	cfg := *a.cfg
	cfg.CatalogPath = a.opts.catalogPath
	cfg.RedisAddr = a.opts.redisAddr
	cfg.SaveDir = a.opts.saveDir
	cfg.WrapWidth = a.opts.wrapWidth
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	cat, err := a.loadCatalog()
	if err != nil {
		return err
	}
	a.catalog = cat

	// A service handed in up front is used as is.
	if a.svc != nil {
		return nil
	}

	repo, err := a.playerRepo(cmd.Context())
	if err != nil {
		return err
	}

	var (
		roller dice.Roller = dice.DefaultRoller
		ids    idgen.Generator
	)
	if f := cmd.Flag("seed"); f != nil && f.Changed {
		roller = rng.New(a.opts.seed)
		ids = idgen.NewSequential("monster")
	} else {
		ids = idgen.NewUUID("monster")
	}

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		PlayerRepo:    repo,
		Catalog:       cat,
		Roller:        roller,
		EventBus:      newEventBus(),
		IDGenerator:   ids,
		Input:         newLineInput(a.in, a.out),
		Narrator:      narration.NewWrappingWriter(a.out, cfg.WrapWidth),
		DefaultPlayer: cfg.DefaultPlayer,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create encounter service")
	}
	a.svc = svc
	return nil
}

func (a *app) loadCatalog() (*catalog.Catalog, error) {
	if a.opts.catalogPath == "" {
		return catalog.Default()
	}
	return catalog.Load(a.opts.catalogPath)
}

func (a *app) playerRepo(ctx context.Context) (player.Repository, error) {
	if a.opts.redisAddr == "" {
		slog.Debug("Using file saves", "dir", a.opts.saveDir)
		return player.NewFile(&player.FileConfig{
			Dir:   a.opts.saveDir,
			Clock: clock.New(),
		})
	}

	client, err := redis.NewClient(a.opts.redisAddr, nil)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to reach redis at %s", a.opts.redisAddr)
	}
	slog.Debug("Using redis saves", "addr", a.opts.redisAddr)

	return player.NewRedis(&player.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
}

func (a *app) close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// report shows user errors as game text and passes everything else on.
func (a *app) report(err error) error {
	if err == nil {
		return nil
	}
	if errors.IsUserError(err) {
		slog.Debug("Player error", "code", errors.GetCode(err), "meta", errors.GetMeta(err))
		fmt.Fprintln(a.out, errors.GetMessage(err))
		return nil
	}
	return err
}

// newEventBus returns a bus that logs every battle event at debug level.
func newEventBus() events.EventBus {
	bus := events.NewBus()
	for _, eventType := range []string{
		battle.EventStarted,
		battle.EventActionResolved,
		battle.EventEscaped,
		battle.EventFinished,
	} {
		bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
			slog.DebugContext(ctx, "Battle event",
				"type", e.Type(),
				"source", entityID(e.Source()),
				"target", entityID(e.Target()),
			)
			return nil
		})
	}
	return bus
}

func entityID(e core.Entity) string {
	if e == nil {
		return ""
	}
	return e.GetID()
}
