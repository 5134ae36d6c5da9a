// Package savegame provides the local save index: a mirror of every saved game
// that keeps Load and List working when the game server is unreachable.
package savegame

import (
	"context"
	"time"

	"github.com/KirkDiggler/jp-mud/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=savegamemock github.com/KirkDiggler/jp-mud/internal/repositories/savegame Repository

// Record is one saved game. State and ChatHistory are the exact aggregate that
// was sent to the game server.
type Record struct {
	GameID      string                 `json:"game_id"`
	SavedAt     time.Time              `json:"saved_at"`
	Location    string                 `json:"location"`
	State       *entities.GameState    `json:"state"`
	ChatHistory []entities.ChatMessage `json:"chat_history"`
}

// Summary describes a record without its payload
type Summary struct {
	GameID   string
	SavedAt  time.Time
	Location string
	Stats    entities.PlayerStats
}

// Summarize builds the listing entry for a record
func (r *Record) Summarize() Summary {
	s := Summary{
		GameID:   r.GameID,
		SavedAt:  r.SavedAt,
		Location: r.Location,
	}
	if r.State != nil && r.State.Player != nil {
		s.Stats = r.State.Player.Stats
	}
	return s
}

// LocationName resolves the display name of the player's location, or
// "Unknown" when it cannot be resolved
func LocationName(state *entities.GameState) string {
	if loc := state.CurrentLocation(); loc != nil && loc.Name != "" {
		return loc.Name
	}
	return "Unknown"
}

// PutInput contains parameters for storing a record
type PutInput struct {
	Record *Record
}

// PutOutput contains the result of storing a record
type PutOutput struct {
	Record *Record
}

// GetInput contains parameters for fetching a record
type GetInput struct {
	GameID string
}

// GetOutput contains the fetched record
type GetOutput struct {
	Record *Record
}

// ListInput contains parameters for listing records
type ListInput struct {
	// Limit caps the number of summaries; zero means no limit
	Limit int
}

// ListOutput lists summaries newest first
type ListOutput struct {
	Saves []Summary
}

// DeleteInput contains parameters for removing a record
type DeleteInput struct {
	GameID string
}

// DeleteOutput contains the result of removing a record
type DeleteOutput struct{}

// Repository defines the interface for local save storage
type Repository interface {
	// Put stores or replaces a record
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves a record by game id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns summaries of every record, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a record
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errRecordNil    = "record cannot be nil"
	errGameIDEmpty  = "game ID cannot be empty"
	errStateMissing = "record state cannot be nil"
)
