package projections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/jp-mud/internal/entities"
	"github.com/KirkDiggler/jp-mud/internal/projections"
	"github.com/KirkDiggler/jp-mud/internal/testutils/builders"
)

func TestProfile(t *testing.T) {
	state := builders.NewGameStateBuilder().
		WithVocabulary("vocab_0", "森", "forest").
		WithVocabulary("vocab_1", "川", "river").
		WithVocabulary("vocab_2", "山", "mountain").
		WithStats(entities.PlayerStats{
			Moves:             12,
			LocationsVisited:  []string{"start", "forest"},
			VocabularyLearned: 2,
			TimePlayed:        3725,
			JLPTProgress:      map[int]int{5: 40, 4: 10},
		}).
		Build()

	view := projections.Profile(state)

	require.Len(t, view.JLPT, 5)
	assert.Equal(t, projections.JLPTProgress{Level: 5, Label: "N5", Percent: 40}, view.JLPT[0])
	assert.Equal(t, 10, view.JLPT[1].Percent)
	assert.Equal(t, "N1", view.JLPT[4].Label)
	assert.Equal(t, 0, view.JLPT[4].Percent)

	assert.Equal(t, 12, view.Moves)
	assert.Equal(t, 2, view.LocationsVisited)
	assert.Equal(t, 67, view.VocabularyMastery)
	assert.Equal(t, "1h 2m 5s", view.TimePlayed)
	assert.Empty(t, view.RecentGrammar)
}

func TestProfileWithoutVocabulary(t *testing.T) {
	state := builders.NewGameStateBuilder().
		WithStats(entities.PlayerStats{VocabularyLearned: 4}).
		Build()

	assert.Equal(t, 0, projections.Profile(state).VocabularyMastery)
	assert.Equal(t, "0h 0m 0s", projections.Profile(nil).TimePlayed)
}

func TestProfileRecentGrammar(t *testing.T) {
	state := builders.NewGameStateBuilder().Build()

	points := make([]interface{}, 0, 6)
	for _, name := range []string{"は", "が", "を", "に", "で", "へ"} {
		points = append(points, map[string]interface{}{
			"name":        name,
			"explanation": "particle " + name,
			"examples": []interface{}{
				map[string]interface{}{"japanese": "森" + name, "english": "forest"},
			},
		})
	}
	state.Player.Knowledge = map[string]interface{}{"grammar_points": points}

	view := projections.Profile(state)
	require.Len(t, view.RecentGrammar, 5)
	assert.Equal(t, "へ", view.RecentGrammar[0].Name)
	assert.Equal(t, "が", view.RecentGrammar[4].Name)
	assert.Equal(t, "森へ", view.RecentGrammar[0].Examples[0].Japanese)
}

func TestProfileIgnoresMalformedGrammar(t *testing.T) {
	state := builders.NewGameStateBuilder().Build()
	state.Player.Knowledge = map[string]interface{}{"grammar_points": "not a list"}

	assert.Empty(t, projections.Profile(state).RecentGrammar)
}
