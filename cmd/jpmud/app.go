package main

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/jp-mud/internal/clients/gameapi"
	"github.com/KirkDiggler/jp-mud/internal/config"
	"github.com/KirkDiggler/jp-mud/internal/orchestrators/game"
	"github.com/KirkDiggler/jp-mud/internal/orchestrators/savegame"
	"github.com/KirkDiggler/jp-mud/internal/pkg/clock"
	"github.com/KirkDiggler/jp-mud/internal/pkg/idgen"
	"github.com/KirkDiggler/jp-mud/internal/redis"
	saverepo "github.com/KirkDiggler/jp-mud/internal/repositories/savegame"
	"github.com/KirkDiggler/jp-mud/internal/resilience"
	"github.com/KirkDiggler/jp-mud/internal/store"
)

// app wires the game client together
type app struct {
	store *store.Store
	game  game.Service
	saves savegame.Service

	closers []func()
}

func newApp(cfg *config.Config) (*app, error) {
	client, err := gameapi.New(&gameapi.Config{
		BaseURL:     cfg.APIURL,
		HTTPTimeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game server client: %w", err)
	}

	res, err := resilience.NewManager(&resilience.Config{Threshold: cfg.FailureThreshold})
	if err != nil {
		return nil, fmt.Errorf("failed to create resilience manager: %w", err)
	}

	a := &app{store: store.New()}
	clk := clock.New()

	repo, err := a.saveRepository(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	settle := cfg.SettleDelay
	if settle == 0 {
		settle = -1
	}

	a.game, err = game.NewOrchestrator(&game.Config{
		Client:      client,
		Store:       a.store,
		Resilience:  res,
		Clock:       clk,
		Themes:      game.NewThemeRoller(nil, nil),
		WorldPrompt: cfg.WorldPrompt,
		SettleDelay: settle,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create game orchestrator: %w", err)
	}

	a.saves, err = savegame.NewOrchestrator(&savegame.Config{
		Client:      client,
		Store:       a.store,
		Resilience:  res,
		Clock:       clk,
		Repository:  repo,
		IDGenerator: idgen.NewUUID(""),
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create save orchestrator: %w", err)
	}

	return a, nil
}

func (a *app) saveRepository(cfg *config.Config) (saverepo.Repository, error) {
	switch cfg.SaveStore {
	case config.SaveStoreFile:
		repo, err := saverepo.NewFile(&saverepo.FileConfig{Dir: cfg.SaveDir})
		if err != nil {
			return nil, fmt.Errorf("failed to create file save index: %w", err)
		}
		return repo, nil
	case config.SaveStoreRedis:
		rc, err := redis.NewClientFromURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		a.closers = append(a.closers, func() {
			if err := rc.Close(); err != nil {
				slog.Warn("Failed to close redis client", "error", err)
			}
		})

		repo, err := saverepo.NewRedis(&saverepo.RedisConfig{Client: rc, TTL: cfg.SaveTTL})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis save index: %w", err)
		}
		return repo, nil
	default:
		return nil, nil
	}
}

// Close waits for background work and releases connections
func (a *app) Close() {
	if a.game != nil {
		a.game.Wait()
	}
	for _, c := range a.closers {
		c()
	}
}
