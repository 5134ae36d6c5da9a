package entities

// JLPT levels from easiest to hardest
var JLPTLevels = []int{5, 4, 3, 2, 1}

// Player is the player's position, inventory and learning progress
type Player struct {
	CurrentLocation   string                 `json:"current_location" yaml:"current_location"`
	Inventory         []string               `json:"inventory" yaml:"inventory"`
	LearnedVocabulary map[string]interface{} `json:"learned_vocabulary" yaml:"learned_vocabulary"`
	Knowledge         map[string]interface{} `json:"knowledge,omitempty" yaml:"knowledge,omitempty"`
	JLPTLevel         int                    `json:"jlpt_level,omitempty" yaml:"jlpt_level,omitempty"`
	Stats             PlayerStats            `json:"stats" yaml:"stats"`
}

// PlayerStats are cumulative counters maintained by the game server
type PlayerStats struct {
	Moves                 int         `json:"moves" yaml:"moves"`
	QuestsCompleted       int         `json:"quests_completed" yaml:"quests_completed"`
	LocationsVisited      []string    `json:"locations_visited" yaml:"locations_visited"`
	ItemsCollected        int         `json:"items_collected" yaml:"items_collected"`
	VocabularyLearned     int         `json:"vocabulary_learned" yaml:"vocabulary_learned"`
	GrammarPointsMastered int         `json:"grammar_points_mastered" yaml:"grammar_points_mastered"`
	TimePlayed            float64     `json:"time_played,omitempty" yaml:"time_played,omitempty"`
	JLPTProgress          map[int]int `json:"jlpt_progress,omitempty" yaml:"jlpt_progress,omitempty"`
}

// NewPlayer returns a fresh player standing at the start location
func NewPlayer() *Player {
	return &Player{
		CurrentLocation:   StartLocationID,
		Inventory:         []string{},
		LearnedVocabulary: map[string]interface{}{},
		Stats: PlayerStats{
			LocationsVisited: []string{},
		},
	}
}
