package gameapi

import (
	"encoding/json"

	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// GenerateWorldRequest asks the server for a new world
type GenerateWorldRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateWorldResponse carries the world exactly as generated. It must go
// through world.Normalize before use.
type GenerateWorldResponse struct {
	World json.RawMessage `json:"world"`
}

// ProcessInputRequest sends one player command with the full context
type ProcessInputRequest struct {
	Input       string                 `json:"input"`
	GameState   *entities.GameState    `json:"game_state"`
	ChatHistory []entities.ChatMessage `json:"chat_history"`
}

// ProcessInputResponse is the server's reply and the replacement state
type ProcessInputResponse struct {
	Response    string                 `json:"response"`
	GameState   *entities.GameState    `json:"game_state"`
	ChatHistory []entities.ChatMessage `json:"chat_history"`
}

// ValidateJapaneseRequest asks for a grammar check of text
type ValidateJapaneseRequest struct {
	Text string `json:"text"`
}

// ValidateJapaneseResponse is the grammar check verdict
type ValidateJapaneseResponse struct {
	IsValid  bool   `json:"is_valid"`
	Feedback string `json:"feedback"`
}

// SaveStateRequest persists the whole aggregate in one payload
type SaveStateRequest struct {
	State       *entities.GameState    `json:"state"`
	ChatHistory []entities.ChatMessage `json:"chat_history"`
}

// SaveStateResponse reports the saved game id
type SaveStateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	GameID  string `json:"game_id,omitempty"`
}

// LoadStateRequest names the save to load
type LoadStateRequest struct {
	GameID string `json:"game_id"`
}

// LoadStateResponse is a saved aggregate
type LoadStateResponse struct {
	State       *entities.GameState    `json:"state"`
	ChatHistory []entities.ChatMessage `json:"chat_history"`
}

// SavedGame is one entry of the server's save listing
type SavedGame struct {
	GameID      string               `json:"game_id"`
	Timestamp   string               `json:"timestamp"`
	Location    string               `json:"location"`
	PlayerStats entities.PlayerStats `json:"player_stats"`
}

// ListSavedGamesResponse lists the server's saves
type ListSavedGamesResponse struct {
	SavedGames []SavedGame `json:"saved_games"`
}

// AvailableCommands are the command hints the server understands
type AvailableCommands struct {
	Movement         []string `json:"movement"`
	Actions          []string `json:"actions"`
	JapaneseCommands []string `json:"japanese_commands"`
}

// errorResponse is the server's error body
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}
