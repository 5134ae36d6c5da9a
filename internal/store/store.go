// Package store holds the single authoritative game state and transcript.
//
// Every mutation bumps a generation token. Asynchronous producers capture the
// token before they start and commit through CommitIf, so a result that was
// overtaken by a newer commit or transcript append is discarded.
package store

import (
	"log/slog"
	"sync"

	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// Phase is the engine lifecycle state
type Phase string

// Engine phases
const (
	PhaseUninitialized   Phase = "uninitialized"
	PhaseWorldGenerating Phase = "world_generating"
	PhaseWorldReady      Phase = "world_ready"
	PhaseSettling        Phase = "settling"
	PhaseReady           Phase = "ready"
)

// Snapshot is a consistent copy of the store contents
type Snapshot struct {
	State      *entities.GameState
	Transcript []entities.ChatMessage
	Token      uint64
	Phase      Phase
}

// Initialized reports whether a game state has been committed
func (s Snapshot) Initialized() bool {
	return s.State != nil
}

// Store is safe for concurrent use
type Store struct {
	mu         sync.RWMutex
	state      *entities.GameState
	transcript []entities.ChatMessage
	token      uint64
	phase      Phase
}

// New returns an uninitialized store
func New() *Store {
	return &Store{phase: PhaseUninitialized}
}

// Read returns a deep copy of the latest committed contents
func (s *Store) Read() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		State:      cloneState(s.state),
		Transcript: entities.CloneTranscript(s.transcript),
		Token:      s.token,
		Phase:      s.phase,
	}
}

// Token returns the current generation token
func (s *Store) Token() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Phase returns the current lifecycle phase
func (s *Store) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// SetPhase moves the engine to phase without touching state or transcript
func (s *Store) SetPhase(phase Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
}

// SetPhaseIf moves the engine to phase to only while it is in phase from
func (s *Store) SetPhaseIf(from, to Phase) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != from {
		return false
	}
	s.phase = to
	return true
}

// Commit atomically replaces state and transcript and returns the new token
func (s *Store) Commit(state *entities.GameState, transcript []entities.ChatMessage, phase Phase) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(state, transcript, phase)
}

// CommitIf commits only when token is still current. It reports whether the
// commit was applied and the token after the call.
func (s *Store) CommitIf(token uint64, state *entities.GameState, transcript []entities.ChatMessage, phase Phase) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != token {
		slog.Debug("Discarding stale commit",
			"captured_token", token,
			"current_token", s.token)
		return s.token, false
	}
	return s.commitLocked(state, transcript, phase), true
}

// Append adds messages to the transcript and returns the new token
func (s *Store) Append(msgs ...entities.ChatMessage) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = append(s.transcript, msgs...)
	s.token++
	return s.token
}

// AppendIf appends only when token is still current
func (s *Store) AppendIf(token uint64, msgs ...entities.ChatMessage) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != token {
		return s.token, false
	}
	s.transcript = append(s.transcript, msgs...)
	s.token++
	return s.token, true
}

// Reset clears the game state, replaces the transcript and enters phase
func (s *Store) Reset(phase Phase, transcript []entities.ChatMessage) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(nil, transcript, phase)
}

func (s *Store) commitLocked(state *entities.GameState, transcript []entities.ChatMessage, phase Phase) uint64 {
	s.state = cloneState(state)
	s.transcript = entities.CloneTranscript(transcript)
	s.phase = phase
	s.token++
	return s.token
}

func cloneState(state *entities.GameState) *entities.GameState {
	clone, err := state.Clone()
	if err != nil {
		// only reachable for values JSON cannot encode
		slog.Error("Failed to clone game state", "error", err)
		return state
	}
	return clone
}
