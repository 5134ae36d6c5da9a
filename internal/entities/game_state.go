package entities

import (
	"encoding/json"
)

// Metadata keys written by the client
const (
	MetaCreationTime = "creation_time"
	MetaVersion      = "version"
	MetaOffline      = "offline"
)

// GameState is the authoritative aggregate for one playthrough
type GameState struct {
	World                  *World                 `json:"world" yaml:"world"`
	Player                 *Player                `json:"player" yaml:"player"`
	VisitedLocations       []string               `json:"visited_locations" yaml:"visited_locations"`
	Flags                  map[string]interface{} `json:"flags" yaml:"flags"`
	Metadata               map[string]interface{} `json:"metadata" yaml:"metadata"`
	QuestLog               *QuestLog              `json:"quest_log" yaml:"quest_log"`
	ActiveGrammarChallenge *GrammarChallenge      `json:"active_grammar_challenge,omitempty" yaml:"active_grammar_challenge,omitempty"`
}

// CurrentLocation resolves the player's location in the world, or nil
func (s *GameState) CurrentLocation() *Location {
	if s == nil || s.Player == nil {
		return nil
	}
	return s.World.Location(s.Player.CurrentLocation)
}

// HasVisited reports whether the location id is in the visited set
func (s *GameState) HasVisited(id string) bool {
	if s == nil {
		return false
	}
	for _, v := range s.VisitedLocations {
		if v == id {
			return true
		}
	}
	return false
}

// Clone deep-copies the state through its wire encoding
func (s *GameState) Clone() (*GameState, error) {
	if s == nil {
		return nil, nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}

	var out GameState
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is one transcript entry
type ChatMessage struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// UserMessage builds a user transcript entry
func UserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant transcript entry
func AssistantMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Content: content}
}

// SystemMessage builds a system transcript entry
func SystemMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleSystem, Content: content}
}

// CloneTranscript returns a copy of the transcript that shares no backing array
func CloneTranscript(msgs []ChatMessage) []ChatMessage {
	if msgs == nil {
		return nil
	}
	out := make([]ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}
