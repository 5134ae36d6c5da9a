package testutils

import (
	"github.com/KirkDiggler/jp-mud/internal/entities"
	"github.com/KirkDiggler/jp-mud/internal/testutils/builders"
)

// Generated world payloads in the shapes the game server has been seen to return
const (
	// WorldPayloadList carries every collection as a list of records
	WorldPayloadList = `{
		"locations": [
			{"id": "start", "name": "Village Square", "japanese_name": "村の広場",
			 "description": "A quiet square.", "japanese_description": "静かな広場。",
			 "connections": {"north": "forest"}, "characters": ["elder"], "items": ["lantern"], "vocabulary": []},
			{"id": "forest", "name": "Forest", "japanese_name": "森",
			 "description": "Tall cedars.", "japanese_description": "高い杉。",
			 "connections": {"south": "start"}, "characters": [], "items": [], "vocabulary": []}
		],
		"characters": [{"id": "elder", "name": "Village Elder", "japanese_name": "村長"}],
		"items": [{"id": "lantern", "name": "Lantern", "japanese_name": "ランタン", "can_be_taken": true}],
		"vocabulary": [{"japanese": "森", "english": "forest", "reading": "もり"}]
	}`

	// WorldPayloadDisconnected has a start location without connections
	WorldPayloadDisconnected = `{
		"locations": {"start": {"id": "start", "name": "Lonely Hill", "connections": {}}},
		"characters": {},
		"items": {},
		"vocabulary": {}
	}`
)

// Transcript fixtures
var (
	// TranscriptLook is a one-exchange transcript
	TranscriptLook = []entities.ChatMessage{
		entities.UserMessage("look"),
		entities.AssistantMessage("You are in the village square."),
	}
)

// CreateTestGameState creates a ready-to-play state with one active quest
func CreateTestGameState() *entities.GameState {
	quest := builders.NewQuestBuilder("q-greetings").
		WithTitle("Greetings").
		WithObjective("say-hello", true).
		WithObjective("say-goodbye", false).
		Build()

	return builders.NewGameStateBuilder().
		WithCurrentLocation(entities.StartLocationID).
		WithVocabulary("vocab_0", "森", "forest").
		WithActiveQuest(quest).
		Build()
}
