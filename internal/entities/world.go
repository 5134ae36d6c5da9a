// Package entities holds the game-state data model shared with the game server.
// JSON tags follow the server's wire format; YAML tags follow the save file layout.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types reported through core.Entity
const (
	EntityTypeLocation  = "location"
	EntityTypeCharacter = "character"
	EntityTypeItem      = "item"
)

// StartLocationID is the location every new player begins in
const StartLocationID = "start"

// World is the graph of locations, characters, items and vocabulary for one playthrough.
// Locations refer to characters and items by id; World owns the only copy.
type World struct {
	Locations  map[string]*Location       `json:"locations" yaml:"locations"`
	Characters map[string]*Character      `json:"characters" yaml:"characters"`
	Items      map[string]*Item           `json:"items" yaml:"items"`
	Vocabulary map[string]*VocabularyItem `json:"vocabulary" yaml:"vocabulary"`
}

// NewWorld returns a world with every collection initialized
func NewWorld() *World {
	return &World{
		Locations:  make(map[string]*Location),
		Characters: make(map[string]*Character),
		Items:      make(map[string]*Item),
		Vocabulary: make(map[string]*VocabularyItem),
	}
}

// Location returns the location with the given id, or nil
func (w *World) Location(id string) *Location {
	if w == nil || w.Locations == nil {
		return nil
	}
	return w.Locations[id]
}

// Entity looks up a location, character or item by entity type and id. It
// returns nil when the world holds no such entity.
func (w *World) Entity(entityType, id string) core.Entity {
	if w == nil {
		return nil
	}
	switch entityType {
	case EntityTypeLocation:
		if l := w.Locations[id]; l != nil {
			return l
		}
	case EntityTypeCharacter:
		if c := w.Characters[id]; c != nil {
			return c
		}
	case EntityTypeItem:
		if i := w.Items[id]; i != nil {
			return i
		}
	}
	return nil
}

// Location is a node of the world graph. Connections map a direction token to
// the id of the target location.
type Location struct {
	ID                  string            `json:"id" yaml:"id"`
	Name                string            `json:"name" yaml:"name"`
	JapaneseName        string            `json:"japanese_name" yaml:"japanese_name"`
	Description         string            `json:"description" yaml:"description"`
	JapaneseDescription string            `json:"japanese_description" yaml:"japanese_description"`
	Connections         map[string]string `json:"connections" yaml:"connections"`
	Characters          []string          `json:"characters" yaml:"characters"`
	Items               []string          `json:"items" yaml:"items"`
	Vocabulary          []VocabularyItem  `json:"vocabulary" yaml:"vocabulary"`
	Visited             bool              `json:"visited" yaml:"visited"`
	Hidden              bool              `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	RequiresKey         string            `json:"requires_key,omitempty" yaml:"requires_key,omitempty"`
}

// GetID implements core.Entity
func (l *Location) GetID() string { return l.ID }

// GetType implements core.Entity
func (l *Location) GetType() string { return EntityTypeLocation }

// Character is a non-player character placed in the world
type Character struct {
	ID                  string                   `json:"id" yaml:"id"`
	Name                string                   `json:"name" yaml:"name"`
	JapaneseName        string                   `json:"japanese_name" yaml:"japanese_name"`
	Description         string                   `json:"description" yaml:"description"`
	JapaneseDescription string                   `json:"japanese_description" yaml:"japanese_description"`
	Dialogues           map[string]DialogueEntry `json:"dialogues" yaml:"dialogues"`
	Vocabulary          []VocabularyItem         `json:"vocabulary" yaml:"vocabulary"`
	Items               []string                 `json:"items" yaml:"items"`
	QuestIDs            []string                 `json:"quest_ids" yaml:"quest_ids"`
}

// GetID implements core.Entity
func (c *Character) GetID() string { return c.ID }

// GetType implements core.Entity
func (c *Character) GetType() string { return EntityTypeCharacter }

// DialogueEntry is one bilingual line a character can say
type DialogueEntry struct {
	Response         string `json:"response" yaml:"response"`
	JapaneseResponse string `json:"japanese_response" yaml:"japanese_response"`
}

// Item is an object that can sit in a location or the player's inventory
type Item struct {
	ID                  string                 `json:"id" yaml:"id"`
	Name                string                 `json:"name" yaml:"name"`
	JapaneseName        string                 `json:"japanese_name" yaml:"japanese_name"`
	Description         string                 `json:"description" yaml:"description"`
	JapaneseDescription string                 `json:"japanese_description" yaml:"japanese_description"`
	Type                string                 `json:"type" yaml:"type"`
	Properties          map[string]interface{} `json:"properties" yaml:"properties"`
	Vocabulary          []VocabularyItem       `json:"vocabulary" yaml:"vocabulary"`
	CanBeTaken          bool                   `json:"can_be_taken" yaml:"can_be_taken"`
	Hidden              bool                   `json:"hidden" yaml:"hidden"`
}

// GetID implements core.Entity
func (i *Item) GetID() string { return i.ID }

// GetType implements core.Entity
func (i *Item) GetType() string { return EntityTypeItem }

// VocabularyItem is a single Japanese word attached to a world entity
type VocabularyItem struct {
	Japanese        string `json:"japanese" yaml:"japanese"`
	English         string `json:"english" yaml:"english"`
	Reading         string `json:"reading,omitempty" yaml:"reading,omitempty"`
	PartOfSpeech    string `json:"part_of_speech,omitempty" yaml:"part_of_speech,omitempty"`
	ExampleSentence string `json:"example_sentence,omitempty" yaml:"example_sentence,omitempty"`
	Notes           string `json:"notes,omitempty" yaml:"notes,omitempty"`
}
