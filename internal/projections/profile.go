package projections

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// recentGrammarLimit is how many grammar points the profile shows
const recentGrammarLimit = 5

// JLPTProgress is the progress toward one JLPT level
type JLPTProgress struct {
	Level   int
	Label   string
	Percent int
}

// GrammarExample is one example sentence for a grammar point
type GrammarExample struct {
	Japanese string `json:"japanese"`
	English  string `json:"english"`
}

// GrammarPoint is a grammar point the player has learned
type GrammarPoint struct {
	Name        string           `json:"name"`
	Explanation string           `json:"explanation"`
	Examples    []GrammarExample `json:"examples"`
}

// ProfileView summarizes the player's learning progress
type ProfileView struct {
	JLPT                  []JLPTProgress
	Moves                 int
	QuestsCompleted       int
	LocationsVisited      int
	ItemsCollected        int
	VocabularyLearned     int
	GrammarPointsMastered int
	// VocabularyMastery is the learned share of the world's vocabulary
	VocabularyMastery int
	// RecentGrammar lists the latest grammar points, most recent first
	RecentGrammar []GrammarPoint
	TimePlayed    string
}

// Profile builds the player's profile
func Profile(state *entities.GameState) *ProfileView {
	view := &ProfileView{RecentGrammar: []GrammarPoint{}, TimePlayed: FormatTimePlayed(0)}
	if state == nil || state.Player == nil {
		return view
	}

	stats := state.Player.Stats
	view.JLPT = make([]JLPTProgress, 0, len(entities.JLPTLevels))
	for _, level := range entities.JLPTLevels {
		view.JLPT = append(view.JLPT, JLPTProgress{
			Level:   level,
			Label:   fmt.Sprintf("N%d", level),
			Percent: stats.JLPTProgress[level],
		})
	}

	view.Moves = stats.Moves
	view.QuestsCompleted = stats.QuestsCompleted
	view.LocationsVisited = len(stats.LocationsVisited)
	view.ItemsCollected = stats.ItemsCollected
	view.VocabularyLearned = stats.VocabularyLearned
	view.GrammarPointsMastered = stats.GrammarPointsMastered
	view.TimePlayed = FormatTimePlayed(stats.TimePlayed)

	if state.World != nil && len(state.World.Vocabulary) > 0 {
		ratio := float64(stats.VocabularyLearned) / float64(len(state.World.Vocabulary))
		view.VocabularyMastery = int(math.Round(ratio * 100))
	}

	view.RecentGrammar = recentGrammar(state.Player.Knowledge)
	return view
}

// FormatTimePlayed renders seconds as "1h 2m 3s"
func FormatTimePlayed(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%dh %dm %ds", total/3600, (total%3600)/60, total%60)
}

// recentGrammar reads knowledge["grammar_points"]. Anything that does not
// decode as a list of grammar points is treated as empty.
func recentGrammar(knowledge map[string]interface{}) []GrammarPoint {
	raw, ok := knowledge["grammar_points"]
	if !ok || raw == nil {
		return []GrammarPoint{}
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return []GrammarPoint{}
	}
	var points []GrammarPoint
	if err := json.Unmarshal(data, &points); err != nil {
		return []GrammarPoint{}
	}

	if len(points) > recentGrammarLimit {
		points = points[len(points)-recentGrammarLimit:]
	}
	recent := make([]GrammarPoint, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		recent = append(recent, points[i])
	}
	return recent
}
