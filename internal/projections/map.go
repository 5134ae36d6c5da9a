// Package projections derives read-only views of a game state for display
package projections

import (
	"sort"

	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// Map grid layout
const (
	MapColumns       = 5
	MapColumnSpacing = 200
	MapRowSpacing    = 150
)

// MapNode is one location on the map
type MapNode struct {
	ID             string
	Name           string
	JapaneseName   string
	X              int
	Y              int
	CharacterCount int
	ItemCount      int
	Visited        bool
	Current        bool
}

// MapEdge is one undirected connection between two shown locations
type MapEdge struct {
	ID     string
	Source string
	Target string
	// Animated marks edges touching the current location
	Animated bool
}

// MapView is the player's map of the world
type MapView struct {
	Nodes []MapNode
	Edges []MapEdge
}

// Node returns the node for a location, or nil
func (m *MapView) Node(id string) *MapNode {
	for i := range m.Nodes {
		if m.Nodes[i].ID == id {
			return &m.Nodes[i]
		}
	}
	return nil
}

// Map lays out every location that is not hidden or has been visited on a
// fixed grid. Locations are placed in id order; hidden locations keep their
// grid slot so positions stay put as they are discovered.
func Map(state *entities.GameState) *MapView {
	view := &MapView{Nodes: []MapNode{}, Edges: []MapEdge{}}
	if state == nil || state.World == nil {
		return view
	}

	current := ""
	if state.Player != nil {
		current = state.Player.CurrentLocation
	}

	ids := make([]string, 0, len(state.World.Locations))
	for id, loc := range state.World.Locations {
		if loc != nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	shown := make(map[string]bool, len(ids))
	for i, id := range ids {
		loc := state.World.Locations[id]
		visited := state.HasVisited(id)
		if loc.Hidden && !visited {
			continue
		}

		name := loc.Name
		if name == "" {
			name = "Location " + id
		}

		view.Nodes = append(view.Nodes, MapNode{
			ID:             id,
			Name:           name,
			JapaneseName:   loc.JapaneseName,
			X:              (i % MapColumns) * MapColumnSpacing,
			Y:              (i / MapColumns) * MapRowSpacing,
			CharacterCount: len(loc.Characters),
			ItemCount:      len(loc.Items),
			Visited:        visited,
			Current:        id == current,
		})
		shown[id] = true
	}

	seen := make(map[string]bool)
	for _, node := range view.Nodes {
		loc := state.World.Locations[node.ID]

		directions := make([]string, 0, len(loc.Connections))
		for dir := range loc.Connections {
			directions = append(directions, dir)
		}
		sort.Strings(directions)

		for _, dir := range directions {
			target := loc.Connections[dir]
			if !shown[target] {
				continue
			}
			forward := node.ID + "-" + target
			backward := target + "-" + node.ID
			if seen[forward] || seen[backward] {
				continue
			}
			seen[forward] = true

			view.Edges = append(view.Edges, MapEdge{
				ID:       forward,
				Source:   node.ID,
				Target:   target,
				Animated: node.ID == current || target == current,
			})
		}
	}

	return view
}
