package game

import (
	"fmt"

	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// Player-facing text
const (
	WelcomeMessage = `Welcome to the Japanese MUD! Type "start" to begin a new adventure.`

	welcomeTips = "Welcome to your Japanese adventure! Here are some tips to get started:"
	welcomeHelp = "• Type \"look\" to see your surroundings\n" +
		"• Move with \"north\", \"south\", \"east\", \"west\"\n" +
		"• Examine objects with \"look [object]\"\n" +
		"• Talk to characters with \"talk [character]\"\n" +
		"• Type \"help\" for more commands\n" +
		"• Click \"How to Play\" for full instructions\n" +
		"• Remember: You can use Japanese commands too!"

	msgStartHint             = `Please start a new game with the "start" command`
	msgValidationUnavailable = "Japanese validation is currently unavailable. Your input will be processed as is."
	msgNotProcessed          = "Unable to reach the game server. Your command was not processed. " +
		"If this persists, the game will continue in offline mode with limited functionality."
	msgOfflineMode = "Switched to offline mode due to connection issues. Some features may be limited."

	bannerConnection      = "Connection to game server failed"
	bannerWorldGeneration = "Failed to create a new game world"
	bannerProcessing      = "Failed to process your command"
	bannerNotInitialized  = "Game state not initialized"
)

// welcomeTranscript is the transcript of a freshly generated game
func welcomeTranscript() []entities.ChatMessage {
	return []entities.ChatMessage{
		entities.SystemMessage(welcomeTips),
		entities.SystemMessage(welcomeHelp),
	}
}

func processingErrorMessage(detail string) entities.ChatMessage {
	return entities.SystemMessage("Error processing command: " + detail)
}

// locationSummary describes a location without the game server
func locationSummary(loc *entities.Location) entities.ChatMessage {
	return entities.SystemMessage(fmt.Sprintf("You are at %s (%s). %s",
		loc.Name, loc.JapaneseName, loc.Description))
}
