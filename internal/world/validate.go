package world

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// Edge problems reported by ValidateConnections
const (
	ProblemMissingTarget  = "missing_target"
	ProblemMissingReverse = "missing_reverse"
)

// Edge is a directed connection that breaks the bidirectionality invariant
type Edge struct {
	From      string
	Direction string
	To        string
	Problem   string
}

// ValidateConnections lists every connection whose target is unknown or whose
// target does not lead back. The result is sorted by source then direction.
func ValidateConnections(w *entities.World) []Edge {
	if w == nil {
		return nil
	}

	var edges []Edge
	for id, loc := range w.Locations {
		if loc == nil {
			continue
		}
		for dir, targetID := range loc.Connections {
			target := w.Locations[targetID]
			switch {
			case target == nil:
				edges = append(edges, Edge{From: id, Direction: dir, To: targetID, Problem: ProblemMissingTarget})
			case target.Connections[Opposite(dir)] != id:
				edges = append(edges, Edge{From: id, Direction: dir, To: targetID, Problem: ProblemMissingReverse})
			}
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].Direction < edges[j].Direction
	})
	return edges
}

// Reference is an id named by a world entity that the world does not define
type Reference struct {
	Owner core.Entity
	Type  string
	ID    string
}

// MissingReferences lists the characters and items that locations and
// characters name but the world does not hold. The result is sorted by owner
// type, owner id, then the missing id.
func MissingReferences(w *entities.World) []Reference {
	if w == nil {
		return nil
	}

	var owners []core.Entity
	for _, loc := range w.Locations {
		if loc != nil {
			owners = append(owners, loc)
		}
	}
	for _, c := range w.Characters {
		if c != nil {
			owners = append(owners, c)
		}
	}

	var refs []Reference
	for _, owner := range owners {
		for _, named := range namedEntities(owner) {
			if w.Entity(named.Type, named.ID) == nil {
				refs = append(refs, Reference{Owner: owner, Type: named.Type, ID: named.ID})
			}
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		a, b := refs[i], refs[j]
		if a.Owner.GetType() != b.Owner.GetType() {
			return a.Owner.GetType() < b.Owner.GetType()
		}
		if a.Owner.GetID() != b.Owner.GetID() {
			return a.Owner.GetID() < b.Owner.GetID()
		}
		return a.ID < b.ID
	})
	return refs
}

type namedEntity struct {
	Type string
	ID   string
}

func namedEntities(owner core.Entity) []namedEntity {
	var named []namedEntity
	add := func(entityType string, ids []string) {
		for _, id := range ids {
			named = append(named, namedEntity{Type: entityType, ID: id})
		}
	}

	switch e := owner.(type) {
	case *entities.Location:
		add(entities.EntityTypeCharacter, e.Characters)
		add(entities.EntityTypeItem, e.Items)
	case *entities.Character:
		add(entities.EntityTypeItem, e.Items)
	}
	return named
}
