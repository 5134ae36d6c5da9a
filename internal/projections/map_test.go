package projections_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/jp-mud/internal/entities"
	"github.com/KirkDiggler/jp-mud/internal/projections"
	"github.com/KirkDiggler/jp-mud/internal/testutils/builders"
)

func TestMapNilState(t *testing.T) {
	view := projections.Map(nil)
	assert.Empty(t, view.Nodes)
	assert.Empty(t, view.Edges)
}

func TestMapDeduplicatesEdges(t *testing.T) {
	state := builders.NewGameStateBuilder().WithCurrentLocation(entities.StartLocationID).Build()

	view := projections.Map(state)

	require.Len(t, view.Nodes, 2)
	forest := view.Node("forest")
	require.NotNil(t, forest)
	assert.Equal(t, 0, forest.X)
	assert.False(t, forest.Current)

	start := view.Node(entities.StartLocationID)
	require.NotNil(t, start)
	assert.Equal(t, 200, start.X)
	assert.Equal(t, 0, start.Y)
	assert.True(t, start.Current)
	assert.True(t, start.Visited)

	require.Len(t, view.Edges, 1)
	assert.Equal(t, "forest-start", view.Edges[0].ID)
	assert.True(t, view.Edges[0].Animated)
}

func TestMapHidesUndiscoveredLocations(t *testing.T) {
	b := builders.NewGameStateBuilder().
		WithLocation(&entities.Location{
			ID:          "cave",
			Name:        "Cave",
			Hidden:      true,
			Connections: map[string]string{"up": entities.StartLocationID},
		})
	state := b.Build()
	state.World.Locations[entities.StartLocationID].Connections["down"] = "cave"

	view := projections.Map(state)
	assert.Nil(t, view.Node("cave"))
	for _, e := range view.Edges {
		assert.NotEqual(t, "cave", e.Source)
		assert.NotEqual(t, "cave", e.Target)
	}

	// hidden locations keep their grid slot
	assert.Equal(t, 200, view.Node("forest").X)

	state = b.WithVisited("cave").Build()
	view = projections.Map(state)
	cave := view.Node("cave")
	require.NotNil(t, cave)
	assert.True(t, cave.Visited)
	assert.Len(t, view.Edges, 2)
}

func TestMapGridWraps(t *testing.T) {
	state := builders.NewGameStateBuilder().Build()
	state.World = entities.NewWorld()
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("loc-%d", i)
		state.World.Locations[id] = &entities.Location{ID: id, Characters: []string{"a", "b"}}
	}

	view := projections.Map(state)
	require.Len(t, view.Nodes, 7)

	n := view.Node("loc-5")
	require.NotNil(t, n)
	assert.Equal(t, 0, n.X)
	assert.Equal(t, 150, n.Y)
	assert.Equal(t, "Location loc-5", n.Name)
	assert.Equal(t, 2, n.CharacterCount)

	n = view.Node("loc-6")
	assert.Equal(t, 200, n.X)
	assert.Equal(t, 150, n.Y)
}
