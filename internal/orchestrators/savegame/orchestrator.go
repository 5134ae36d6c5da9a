// Package savegame coordinates saving and loading whole games. The game server
// is the primary store; the local save index mirrors every save so games can
// still be listed and loaded when the server is unreachable.
package savegame

//go:generate mockgen -destination=mock/mock_service.go -package=savegamemock github.com/KirkDiggler/jp-mud/internal/orchestrators/savegame Service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/jp-mud/internal/clients/gameapi"
	"github.com/KirkDiggler/jp-mud/internal/errors"
	"github.com/KirkDiggler/jp-mud/internal/pkg/clock"
	"github.com/KirkDiggler/jp-mud/internal/pkg/idgen"
	saverepo "github.com/KirkDiggler/jp-mud/internal/repositories/savegame"
	"github.com/KirkDiggler/jp-mud/internal/resilience"
	"github.com/KirkDiggler/jp-mud/internal/store"
)

// Service defines the interface for save game operations
type Service interface {
	// Save stores the current game and returns its id
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load replaces the current game with a saved one
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// List returns saved games, newest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Forget removes a game from the local save index
	Forget(ctx context.Context, input *ForgetInput) (*ForgetOutput, error)
}

// Config holds the dependencies for the save game orchestrator
type Config struct {
	Client     gameapi.Client
	Store      *store.Store
	Resilience *resilience.Manager
	Clock      clock.Clock
	// Repository (optional) is the local save index
	Repository saverepo.Repository
	// IDGenerator (optional) names saves made while the server is unreachable
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Resilience == nil {
		vb.RequiredField("Resilience")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	client     gameapi.Client
	store      *store.Store
	resilience *resilience.Manager
	clock      clock.Clock
	repo       saverepo.Repository
	idGen      idgen.Generator
}

// NewOrchestrator creates a new save game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("")
	}

	return &orchestrator{
		client:     cfg.Client,
		store:      cfg.Store,
		resilience: cfg.Resilience,
		clock:      cfg.Clock,
		repo:       cfg.Repository,
		idGen:      idGen,
	}, nil
}

// Save stores the current game and returns its id
func (o *orchestrator) Save(ctx context.Context, _ *SaveInput) (*SaveOutput, error) {
	snap := o.store.Read()
	if !snap.Initialized() {
		return nil, errors.FailedPrecondition("no game to save").
			WithKind(errors.KindStateNotInitialized)
	}

	out := &SaveOutput{SavedAt: o.clock.Now().UTC()}

	resp, err := o.client.SaveState(ctx, &gameapi.SaveStateRequest{
		State:       snap.State,
		ChatHistory: snap.Transcript,
	})
	if err != nil {
		connection := o.resilience.RecordFailure(err)
		if !connection || o.repo == nil {
			return nil, errors.Wrap(err, "failed to save game").WithKind(errors.KindSaveLoad)
		}

		slog.Warn("Game server unreachable, saving locally", "error", err)
		out.GameID = o.idGen.Generate()
		out.Local = true
	} else {
		o.resilience.RecordSuccess()
		if resp.GameID == "" {
			return nil, errors.Internalf("game server returned no game id (status %q)", resp.Status).
				WithKind(errors.KindSaveLoad)
		}
		out.GameID = resp.GameID
	}

	if err := o.mirror(ctx, out, snap); err != nil {
		if out.Local {
			return nil, err
		}
		slog.Warn("Failed to mirror save locally", "game_id", out.GameID, "error", err)
	}

	slog.Info("Game saved", "game_id", out.GameID, "local", out.Local)
	return out, nil
}

func (o *orchestrator) mirror(ctx context.Context, out *SaveOutput, snap store.Snapshot) error {
	if o.repo == nil {
		return nil
	}

	_, err := o.repo.Put(ctx, saverepo.PutInput{
		Record: &saverepo.Record{
			GameID:      out.GameID,
			SavedAt:     out.SavedAt,
			Location:    saverepo.LocationName(snap.State),
			State:       snap.State,
			ChatHistory: snap.Transcript,
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to store local save").WithKind(errors.KindSaveLoad)
	}
	return nil
}

// Load replaces the current game with a saved one. The loaded world is used as
// saved and no opening look is issued.
func (o *orchestrator) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || strings.TrimSpace(input.GameID) == "" {
		return nil, errors.InvalidArgument("game ID is required").WithKind(errors.KindSaveLoad)
	}

	resp, err := o.client.LoadState(ctx, &gameapi.LoadStateRequest{GameID: input.GameID})
	if err == nil {
		o.resilience.RecordSuccess()
		if resp.State == nil {
			return nil, errors.Internalf("saved game %s has no state", input.GameID).
				WithKind(errors.KindSaveLoad)
		}

		o.store.Commit(resp.State, resp.ChatHistory, store.PhaseReady)
		slog.Info("Game loaded", "game_id", input.GameID)
		return &LoadOutput{Snapshot: o.store.Read()}, nil
	}

	connection := o.resilience.RecordFailure(err)
	if o.repo != nil && (connection || errors.IsNotFound(err)) {
		got, lerr := o.repo.Get(ctx, saverepo.GetInput{GameID: input.GameID})
		if lerr == nil {
			o.store.Commit(got.Record.State, got.Record.ChatHistory, store.PhaseReady)
			slog.Info("Game loaded from local save", "game_id", input.GameID)
			return &LoadOutput{Snapshot: o.store.Read(), Local: true}, nil
		}
		if !errors.IsNotFound(lerr) {
			slog.Warn("Failed to read local save", "game_id", input.GameID, "error", lerr)
		}
	}

	return nil, errors.Wrapf(err, "failed to load game %s", input.GameID).WithKind(errors.KindSaveLoad)
}

// List returns saved games, newest first. The local save index answers when
// the game server cannot.
func (o *orchestrator) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		input = &ListInput{}
	}

	resp, err := o.client.ListSavedGames(ctx)
	if err == nil {
		o.resilience.RecordSuccess()
		return &ListOutput{Saves: remoteSummaries(resp.SavedGames, input.Limit)}, nil
	}

	o.resilience.RecordFailure(err)
	if o.repo == nil {
		return nil, errors.Wrap(err, "failed to list saved games").WithKind(errors.KindSaveLoad)
	}

	slog.Warn("Listing local saves", "error", err)
	local, lerr := o.repo.List(ctx, saverepo.ListInput{Limit: input.Limit})
	if lerr != nil {
		return nil, errors.Wrap(lerr, "failed to list local saves").WithKind(errors.KindSaveLoad)
	}

	saves := make([]SaveSummary, 0, len(local.Saves))
	for _, s := range local.Saves {
		saves = append(saves, SaveSummary{
			GameID:   s.GameID,
			SavedAt:  s.SavedAt,
			Location: s.Location,
			Stats:    s.Stats,
		})
	}
	return &ListOutput{Saves: saves, Local: true}, nil
}

// Forget removes a game from the local save index
func (o *orchestrator) Forget(ctx context.Context, input *ForgetInput) (*ForgetOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}
	if o.repo == nil {
		return nil, errors.FailedPrecondition("no local save index configured")
	}

	if _, err := o.repo.Delete(ctx, saverepo.DeleteInput{GameID: input.GameID}); err != nil {
		return nil, errors.Wrapf(err, "failed to forget game %s", input.GameID)
	}
	return &ForgetOutput{}, nil
}

// timestampLayouts are the forms the server has written save timestamps in
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseTimestamp(value string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func remoteSummaries(games []gameapi.SavedGame, limit int) []SaveSummary {
	saves := make([]SaveSummary, 0, len(games))
	for _, g := range games {
		location := g.Location
		if location == "" {
			location = "Unknown"
		}
		saves = append(saves, SaveSummary{
			GameID:   g.GameID,
			SavedAt:  parseTimestamp(g.Timestamp),
			Location: location,
			Stats:    g.PlayerStats,
		})
	}

	sort.SliceStable(saves, func(i, j int) bool {
		return saves[i].SavedAt.After(saves[j].SavedAt)
	})

	if limit > 0 && len(saves) > limit {
		saves = saves[:limit]
	}
	return saves
}
