package game

import (
	"github.com/KirkDiggler/jp-mud/internal/errors"
	"github.com/KirkDiggler/jp-mud/internal/quests"
	"github.com/KirkDiggler/jp-mud/internal/store"
)

// Banner is a dismissible, typed failure notice for the player
type Banner struct {
	Kind    errors.Kind
	Message string
	Detail  string
}

// NewGameInput defines the request for starting a new game
type NewGameInput struct {
	// Prompt overrides the configured world prompt
	Prompt string
}

// NewGameOutput defines the response for starting a new game
type NewGameOutput struct {
	Snapshot store.Snapshot
	// Offline is set when the offline village replaced a generated world
	Offline bool
	Banner  *Banner
}

// DispatchInput defines one line of player input
type DispatchInput struct {
	Text string
}

// DispatchOutput defines the result of dispatching input. It is returned even
// when Dispatch also returns an error.
type DispatchOutput struct {
	// Snapshot is the store contents after the dispatch
	Snapshot store.Snapshot
	// Response is the server's reply text, empty when nothing was processed
	Response string
	// ValidationFeedback explains why Japanese input was rejected
	ValidationFeedback string
	// Rejected is set when validation stopped the command
	Rejected bool
	// Ignored is set for blank input
	Ignored bool
	// Bootstrapped is set when the input started a new game
	Bootstrapped bool
	// Stale is set when a newer commit superseded this command's result
	Stale bool
	// Challenge is the grammar challenge now awaiting an answer, if any
	Challenge *quests.ActiveChallenge
	Banner    *Banner
}

// AvailableCommandsOutput lists command hints
type AvailableCommandsOutput struct {
	Movement         []string
	Actions          []string
	JapaneseCommands []string
	// Fallback is set when the built-in list replaced the server's
	Fallback bool
}
