// Package game implements the game orchestrator: new-game bootstrap and the
// per-input command pipeline
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/jp-mud/internal/orchestrators/game Service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/jp-mud/internal/clients/gameapi"
	"github.com/KirkDiggler/jp-mud/internal/entities"
	"github.com/KirkDiggler/jp-mud/internal/errors"
	"github.com/KirkDiggler/jp-mud/internal/pkg/clock"
	"github.com/KirkDiggler/jp-mud/internal/quests"
	"github.com/KirkDiggler/jp-mud/internal/resilience"
	"github.com/KirkDiggler/jp-mud/internal/store"
	"github.com/KirkDiggler/jp-mud/internal/world"
)

const (
	// DefaultWorldPrompt is sent to world generation
	DefaultWorldPrompt = "Create a fantasy medieval world with Japanese elements"

	// DefaultSettleDelay is the pause before the opening look
	DefaultSettleDelay = time.Second

	// stateVersion is written into new game metadata
	stateVersion = "0.1.0"

	lookCommand = "look"
)

// Service defines the interface for game operations
type Service interface {
	// NewGame discards the current game and generates a new world
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// Dispatch runs one line of player input through the command pipeline
	Dispatch(ctx context.Context, input *DispatchInput) (*DispatchOutput, error)

	// AvailableCommands lists command hints, falling back to a built-in list
	AvailableCommands(ctx context.Context) (*AvailableCommandsOutput, error)

	// Wait blocks until background work started by NewGame has finished
	Wait()
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Client     gameapi.Client
	Store      *store.Store
	Resilience *resilience.Manager
	Clock      clock.Clock
	// Themes (optional) is used to append a rolled flavour to the world prompt
	Themes *ThemeRoller
	// WorldPrompt (optional) defaults to DefaultWorldPrompt
	WorldPrompt string
	// SettleDelay (optional) defaults to DefaultSettleDelay; negative means none
	SettleDelay time.Duration
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
	client      gameapi.Client
	store       *store.Store
	resilience  *resilience.Manager
	clock       clock.Clock
	themes      *ThemeRoller
	worldPrompt string
	settleDelay time.Duration

	// busy rejects overlapping Dispatch and NewGame calls
	busy     atomic.Bool
	settling sync.WaitGroup

	// settleMu guards settleSeq, which identifies the newest settle; only
	// that one may end the settling phase
	settleMu  sync.Mutex
	settleSeq uint64
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	prompt := cfg.WorldPrompt
	if prompt == "" {
		prompt = DefaultWorldPrompt
	}

	delay := cfg.SettleDelay
	switch {
	case delay == 0:
		delay = DefaultSettleDelay
	case delay < 0:
		delay = 0
	}

	return &orchestrator{
		client:      cfg.Client,
		store:       cfg.Store,
		resilience:  cfg.Resilience,
		clock:       cfg.Clock,
		themes:      cfg.Themes,
		worldPrompt: prompt,
		settleDelay: delay,
	}, nil
}

// NewGame discards the current game and generates a new world
func (o *orchestrator) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if !o.busy.CompareAndSwap(false, true) {
		return &NewGameOutput{Snapshot: o.store.Read()}, errBusy()
	}
	defer o.busy.Store(false)

	if input == nil {
		input = &NewGameInput{}
	}
	return o.newGame(ctx, input)
}

func (o *orchestrator) newGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	prev := o.store.Read()
	o.store.Reset(store.PhaseWorldGenerating, prev.Transcript)

	prompt := o.prompt(input.Prompt)
	slog.Info("Generating world", "prompt", prompt)

	w, err := o.generateWorld(ctx, prompt)
	out := &NewGameOutput{}
	if err != nil {
		out.Banner = o.generationBanner(err)

		if !o.resilience.ShouldFallback() {
			o.store.Reset(store.PhaseUninitialized, prev.Transcript)
			out.Snapshot = o.store.Read()
			return out, err
		}

		slog.Warn("Creating offline world after repeated connection failures",
			"consecutive_failures", o.resilience.Failures())
		w = world.OfflineWorld()
		out.Offline = true
	}

	state := o.bootstrapState(w, out.Offline)
	token := o.store.Commit(state, welcomeTranscript(), store.PhaseWorldReady)

	o.settle(token, out.Offline)

	out.Snapshot = o.store.Read()
	return out, nil
}

// generateWorld fetches and normalizes a world, feeding the resilience counter
func (o *orchestrator) generateWorld(ctx context.Context, prompt string) (*entities.World, error) {
	resp, err := o.client.GenerateWorld(ctx, &gameapi.GenerateWorldRequest{Prompt: prompt})
	if err != nil {
		if o.resilience.RecordFailure(err) {
			return nil, errors.Wrap(err, "failed to reach world generation").WithKind(errors.KindConnection)
		}
		return nil, errors.Wrap(err, "world generation failed").WithKind(errors.KindWorldGeneration)
	}
	o.resilience.RecordSuccess()

	if !isObject(resp.World) {
		return nil, errors.Internal("Received invalid world data structure").WithKind(errors.KindWorldGeneration)
	}

	return world.Normalize(resp.World), nil
}

func (o *orchestrator) generationBanner(err error) *Banner {
	if errors.GetKind(err) == errors.KindConnection {
		return &Banner{
			Kind:    errors.KindConnection,
			Message: bannerConnection,
			Detail:  o.resilience.Detail(),
		}
	}
	return &Banner{
		Kind:    errors.KindWorldGeneration,
		Message: bannerWorldGeneration,
		Detail:  errors.GetDetail(err),
	}
}

func (o *orchestrator) bootstrapState(w *entities.World, offline bool) *entities.GameState {
	metadata := map[string]interface{}{
		entities.MetaCreationTime: o.clock.Now().UTC().Format(time.RFC3339Nano),
		entities.MetaVersion:      stateVersion,
	}
	if offline {
		metadata[entities.MetaOffline] = true
	}

	return &entities.GameState{
		World:            w,
		Player:           entities.NewPlayer(),
		VisitedLocations: []string{},
		Flags:            map[string]interface{}{},
		Metadata:         metadata,
		QuestLog:         entities.NewQuestLog(),
	}
}

// settle issues the opening look in the background. Its result only lands if
// nothing was committed or appended since token.
func (o *orchestrator) settle(token uint64, offline bool) {
	o.settleMu.Lock()
	o.settleSeq++
	seq := o.settleSeq
	o.store.SetPhase(store.PhaseSettling)
	o.settleMu.Unlock()

	o.settling.Add(1)
	go func() {
		defer o.settling.Done()
		defer o.finishSettle(seq)

		if o.settleDelay > 0 {
			time.Sleep(o.settleDelay)
		}

		snap := o.store.Read()
		if snap.Token != token {
			slog.Debug("Skipping opening look, game state already moved on")
			return
		}

		if offline {
			o.appendSummary(token, snap.State)
			return
		}

		// the look outlives the request that started the game
		ctx := context.WithoutCancel(context.Background())
		resp, err := o.client.ProcessInput(ctx, &gameapi.ProcessInputRequest{
			Input:       lookCommand,
			GameState:   snap.State,
			ChatHistory: snap.Transcript,
		})
		if err == nil && resp.GameState == nil {
			err = errors.Internal("game server returned no game state")
		}
		if err != nil {
			slog.Warn("Opening look failed, using local description", "error", err)
			o.resilience.RecordFailure(err)
			o.appendSummary(token, snap.State)
			return
		}

		o.resilience.RecordSuccess()
		checkQuestLog(resp.GameState)
		if _, ok := o.store.CommitIf(token, resp.GameState, resp.ChatHistory, store.PhaseReady); !ok {
			slog.Debug("Discarding opening look, game state already moved on")
		}
	}()
}

// finishSettle ends the settling phase unless a newer game started settling
func (o *orchestrator) finishSettle(seq uint64) {
	o.settleMu.Lock()
	defer o.settleMu.Unlock()

	if seq != o.settleSeq {
		slog.Debug("Leaving phase to newer game", "settle", seq, "latest", o.settleSeq)
		return
	}
	o.store.SetPhaseIf(store.PhaseSettling, store.PhaseReady)
}

func (o *orchestrator) appendSummary(token uint64, state *entities.GameState) {
	start := state.World.Location(entities.StartLocationID)
	if start == nil {
		return
	}
	o.store.AppendIf(token, locationSummary(start))
}

// Wait blocks until background work started by NewGame has finished
func (o *orchestrator) Wait() {
	o.settling.Wait()
}

// Dispatch runs one line of player input through the command pipeline
func (o *orchestrator) Dispatch(ctx context.Context, input *DispatchInput) (*DispatchOutput, error) {
	if input == nil {
		return &DispatchOutput{Snapshot: o.store.Read(), Ignored: true}, nil
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return &DispatchOutput{Snapshot: o.store.Read(), Ignored: true}, nil
	}

	if !o.busy.CompareAndSwap(false, true) {
		return &DispatchOutput{Snapshot: o.store.Read()}, errBusy()
	}
	defer o.busy.Store(false)

	snap := o.store.Read()

	if isBootstrap(text) && !snap.Initialized() {
		ng, err := o.newGame(ctx, &NewGameInput{})
		return &DispatchOutput{
			Snapshot:     ng.Snapshot,
			Bootstrapped: true,
			Banner:       ng.Banner,
		}, err
	}

	if !snap.Initialized() {
		o.store.Append(entities.SystemMessage(msgStartHint))
		return &DispatchOutput{
				Snapshot: o.store.Read(),
				Banner: &Banner{
					Kind:    errors.KindStateNotInitialized,
					Message: bannerNotInitialized,
					Detail:  msgStartHint,
				},
			}, errors.FailedPrecondition("game state not initialized").
				WithKind(errors.KindStateNotInitialized)
	}

	out := &DispatchOutput{}

	if ContainsJapanese(text) {
		resp, err := o.client.ValidateJapanese(ctx, &gameapi.ValidateJapaneseRequest{Text: text})
		switch {
		case err != nil:
			slog.Warn("Japanese validation unavailable, continuing without it", "error", err)
			o.store.Append(entities.SystemMessage(msgValidationUnavailable))
		case !resp.IsValid:
			out.Snapshot = o.store.Read()
			out.ValidationFeedback = resp.Feedback
			out.Rejected = true
			return out, nil
		default:
			out.ValidationFeedback = resp.Feedback
		}
	}

	token := o.store.Append(entities.UserMessage(text))
	current := o.store.Read()

	resp, err := o.client.ProcessInput(ctx, &gameapi.ProcessInputRequest{
		Input:       text,
		GameState:   current.State,
		ChatHistory: current.Transcript,
	})
	if err == nil && resp.GameState == nil {
		err = errors.Internal("game server returned no game state")
	}
	if err != nil {
		return o.processingFailed(out, err)
	}
	o.resilience.RecordSuccess()
	checkQuestLog(resp.GameState)

	if _, ok := o.store.CommitIf(token, resp.GameState, resp.ChatHistory, store.PhaseReady); !ok {
		slog.Warn("Discarding stale command result", "input", text)
		out.Stale = true
	}

	out.Snapshot = o.store.Read()
	out.Response = resp.Response
	if ch, ok := quests.ResolveActiveChallenge(out.Snapshot.State); ok {
		out.Challenge = ch
	}
	return out, nil
}

func (o *orchestrator) processingFailed(out *DispatchOutput, err error) (*DispatchOutput, error) {
	if o.resilience.RecordFailure(err) {
		msgs := []entities.ChatMessage{entities.SystemMessage(msgNotProcessed)}
		if o.resilience.ShouldFallback() {
			msgs = append(msgs, entities.SystemMessage(msgOfflineMode))
		}
		o.store.Append(msgs...)

		out.Snapshot = o.store.Read()
		out.Banner = &Banner{
			Kind:    errors.KindConnection,
			Message: bannerConnection,
			Detail:  o.resilience.Detail(),
		}
		return out, errors.Wrap(err, "command not processed").WithKind(errors.KindConnection)
	}

	detail := errors.GetDetail(err)
	o.store.Append(processingErrorMessage(detail))

	out.Snapshot = o.store.Read()
	out.Banner = &Banner{
		Kind:    errors.KindCommandProcessing,
		Message: bannerProcessing,
		Detail:  detail,
	}
	return out, errors.Wrap(err, "command processing failed").WithKind(errors.KindCommandProcessing)
}

// checkQuestLog logs quests the server placed in two partitions. The state is
// committed as given.
func checkQuestLog(state *entities.GameState) {
	if err := state.QuestLog.Validate(); err != nil {
		slog.Warn("Game server returned an inconsistent quest log", "error", err)
	}
}

// AvailableCommands lists command hints, falling back to a built-in list
func (o *orchestrator) AvailableCommands(ctx context.Context) (*AvailableCommandsOutput, error) {
	resp, err := o.client.AvailableCommands(ctx)
	if err != nil {
		slog.Warn("Failed to fetch available commands, using built-in list", "error", err)
		return fallbackCommands(), nil
	}

	return &AvailableCommandsOutput{
		Movement:         resp.Movement,
		Actions:          resp.Actions,
		JapaneseCommands: resp.JapaneseCommands,
	}, nil
}

func fallbackCommands() *AvailableCommandsOutput {
	return &AvailableCommandsOutput{
		Movement: []string{"north", "south", "east", "west", "up", "down", "in", "out"},
		Actions:  []string{"look", "examine", "take", "drop", "inventory", "use", "talk", "help"},
		JapaneseCommands: []string{
			"見る", "調べる", "持つ", "取る", "拾う", "置く", "捨てる",
			"持ち物", "使う", "話す", "聞く", "質問", "助け", "ヘルプ",
		},
		Fallback:         true,
	}
}

func (o *orchestrator) prompt(override string) string {
	prompt := o.worldPrompt
	if override != "" {
		prompt = override
	}
	if o.themes == nil {
		return prompt
	}

	theme, err := o.themes.Roll()
	if err != nil {
		slog.Warn("Failed to roll world theme", "error", err)
		return prompt
	}
	return prompt + ", " + theme
}

func errBusy() error {
	return errors.Aborted("another command is still being processed").
		WithKind(errors.KindCommandProcessing)
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
