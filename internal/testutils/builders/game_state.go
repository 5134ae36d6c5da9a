// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// GameStateBuilder provides a fluent interface for building test GameState instances
type GameStateBuilder struct {
	state *entities.GameState
}

// NewGameStateBuilder creates a builder for a two-room world with the player at start
func NewGameStateBuilder() *GameStateBuilder {
	world := entities.NewWorld()
	world.Locations[entities.StartLocationID] = &entities.Location{
		ID:                  entities.StartLocationID,
		Name:                "Village Square",
		JapaneseName:        "村の広場",
		Description:         "A quiet square with a well.",
		JapaneseDescription: "井戸のある静かな広場。",
		Connections:         map[string]string{"north": "forest"},
		Characters:          []string{},
		Items:               []string{},
		Vocabulary:          []entities.VocabularyItem{},
	}
	world.Locations["forest"] = &entities.Location{
		ID:                  "forest",
		Name:                "Forest",
		JapaneseName:        "森",
		Description:         "Tall cedars block the sun.",
		JapaneseDescription: "高い杉が日光を遮る。",
		Connections:         map[string]string{"south": entities.StartLocationID},
		Characters:          []string{},
		Items:               []string{},
		Vocabulary:          []entities.VocabularyItem{},
	}

	return &GameStateBuilder{
		state: &entities.GameState{
			World:            world,
			Player:           entities.NewPlayer(),
			VisitedLocations: []string{},
			Flags:            map[string]interface{}{},
			Metadata:         map[string]interface{}{entities.MetaCreationTime: "2025-01-01T00:00:00Z"},
			QuestLog:         entities.NewQuestLog(),
		},
	}
}

// WithLocation adds or replaces a location
func (b *GameStateBuilder) WithLocation(loc *entities.Location) *GameStateBuilder {
	b.state.World.Locations[loc.ID] = loc
	return b
}

// WithCurrentLocation moves the player and marks the location visited
func (b *GameStateBuilder) WithCurrentLocation(id string) *GameStateBuilder {
	b.state.Player.CurrentLocation = id
	return b.WithVisited(id)
}

// WithVisited marks locations visited
func (b *GameStateBuilder) WithVisited(ids ...string) *GameStateBuilder {
	for _, id := range ids {
		if !b.state.HasVisited(id) {
			b.state.VisitedLocations = append(b.state.VisitedLocations, id)
		}
	}
	return b
}

// WithVocabulary adds a world vocabulary entry
func (b *GameStateBuilder) WithVocabulary(id, japanese, english string) *GameStateBuilder {
	b.state.World.Vocabulary[id] = &entities.VocabularyItem{Japanese: japanese, English: english}
	return b
}

// WithActiveQuest adds a quest to the active partition
func (b *GameStateBuilder) WithActiveQuest(q *entities.Quest) *GameStateBuilder {
	b.state.QuestLog.ActiveQuests[q.ID] = q
	return b
}

// WithAvailableQuest adds a quest to the available partition
func (b *GameStateBuilder) WithAvailableQuest(q *entities.Quest) *GameStateBuilder {
	b.state.QuestLog.AvailableQuests[q.ID] = q
	return b
}

// WithGrammarChallenge points the active challenge at a quest objective
func (b *GameStateBuilder) WithGrammarChallenge(questID, objectiveID string) *GameStateBuilder {
	b.state.ActiveGrammarChallenge = &entities.GrammarChallenge{QuestID: questID, ObjectiveID: objectiveID}
	return b
}

// WithStats replaces the player stats
func (b *GameStateBuilder) WithStats(stats entities.PlayerStats) *GameStateBuilder {
	b.state.Player.Stats = stats
	return b
}

// Build returns the built state
func (b *GameStateBuilder) Build() *entities.GameState {
	return b.state
}
