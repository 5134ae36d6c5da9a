package world

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// defaultConnections are wired from start when it has none, in this order
var defaultConnections = []struct {
	Direction string
	Target    string
}{
	{DirectionNorth, "forest"},
	{DirectionEast, "shop"},
	{DirectionWest, "house"},
	{DirectionSouth, "river"},
}

// Repair guarantees the start location exists and has at least one mirrored
// connection. A world whose start already has connections is left untouched.
func Repair(w *entities.World) {
	if w == nil {
		return
	}
	ensureCollections(w)

	start, ok := w.Locations[entities.StartLocationID]
	if !ok || start == nil {
		slog.Warn("No start location in world data, creating a placeholder")
		start = placeholderStart()
		w.Locations[entities.StartLocationID] = start
	}

	if len(start.Connections) > 0 {
		return
	}

	slog.Warn("Start location has no connections, adding defaults")
	start.Connections = make(map[string]string, len(defaultConnections))

	for _, dc := range defaultConnections {
		start.Connections[dc.Direction] = dc.Target
		reverse := Opposite(dc.Direction)

		target, ok := w.Locations[dc.Target]
		if !ok || target == nil {
			slog.Info("Creating missing location", "location_id", dc.Target)
			target = connectedArea(dc.Target)
			w.Locations[dc.Target] = target
		}
		if target.Connections == nil {
			target.Connections = make(map[string]string)
		}
		target.Connections[reverse] = entities.StartLocationID
	}
}

func ensureCollections(w *entities.World) {
	if w.Locations == nil {
		w.Locations = make(map[string]*entities.Location)
	}
	if w.Characters == nil {
		w.Characters = make(map[string]*entities.Character)
	}
	if w.Items == nil {
		w.Items = make(map[string]*entities.Item)
	}
	if w.Vocabulary == nil {
		w.Vocabulary = make(map[string]*entities.VocabularyItem)
	}
}

func placeholderStart() *entities.Location {
	return emptyLocation(entities.StartLocationID,
		"Starting Area", "開始エリア",
		"A mysterious starting point for your adventure.", "冒険の不思議な出発点。")
}

func connectedArea(id string) *entities.Location {
	return emptyLocation(id,
		strings.ToUpper(id[:1])+id[1:],
		fmt.Sprintf("%sエリア", id),
		fmt.Sprintf("A %s area connected to the starting point.", id),
		fmt.Sprintf("開始地点につながる%sエリアです。", id))
}

func emptyLocation(id, name, japaneseName, description, japaneseDescription string) *entities.Location {
	return &entities.Location{
		ID:                  id,
		Name:                name,
		JapaneseName:        japaneseName,
		Description:         description,
		JapaneseDescription: japaneseDescription,
		Connections:         map[string]string{},
		Characters:          []string{},
		Items:               []string{},
		Vocabulary:          []entities.VocabularyItem{},
	}
}
