package savegame

import (
	"time"

	"github.com/KirkDiggler/jp-mud/internal/entities"
	"github.com/KirkDiggler/jp-mud/internal/store"
)

// SaveInput defines the request for saving the current game
type SaveInput struct{}

// SaveOutput defines the response for saving the current game
type SaveOutput struct {
	GameID  string
	SavedAt time.Time
	// Local is set when only the local save index holds the game
	Local bool
}

// LoadInput defines the request for loading a saved game
type LoadInput struct {
	GameID string
}

// LoadOutput defines the response for loading a saved game
type LoadOutput struct {
	Snapshot store.Snapshot
	// Local is set when the game came from the local save index
	Local bool
}

// ListInput defines the request for listing saved games
type ListInput struct {
	// Limit caps the local listing; zero means no limit
	Limit int
}

// SaveSummary is one saved game in a listing
type SaveSummary struct {
	GameID   string
	SavedAt  time.Time
	Location string
	Stats    entities.PlayerStats
}

// ListOutput defines the response for listing saved games
type ListOutput struct {
	Saves []SaveSummary
	// Local is set when the listing came from the local save index
	Local bool
}

// ForgetInput defines the request for removing a local save
type ForgetInput struct {
	GameID string
}

// ForgetOutput defines the response for removing a local save
type ForgetOutput struct{}
