package world

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/jp-mud/internal/entities"
	"github.com/KirkDiggler/jp-mud/internal/errors"
)

// rawWorld is the boundary shape of a generated world. Each collection is kept
// raw until its form (list or object) is known.
type rawWorld struct {
	Locations  json.RawMessage `json:"locations"`
	Characters json.RawMessage `json:"characters"`
	Items      json.RawMessage `json:"items"`
	Vocabulary json.RawMessage `json:"vocabulary"`
}

// idProbe reads only the id of a list record
type idProbe struct {
	ID string `json:"id"`
}

// Normalize converts a raw world payload into the canonical id-keyed form and
// repairs the start location. It never fails; structural problems yield
// EmergencyWorld.
func Normalize(raw json.RawMessage) *entities.World {
	w, err := decode(raw)
	if err != nil {
		slog.Error("Failed to normalize world data, using emergency world",
			"error", err)
		return EmergencyWorld()
	}

	Repair(w)
	return w
}

func decode(raw json.RawMessage) (*entities.World, error) {
	if isNull(raw) {
		return nil, errors.InvalidArgument("world payload is empty")
	}

	var rw rawWorld
	if err := json.Unmarshal(raw, &rw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "world payload is not an object")
	}

	w := entities.NewWorld()
	var err error

	w.Locations, err = collection(rw.Locations, "locations", nil,
		func(l *entities.Location) *string { return &l.ID })
	if err != nil {
		return nil, err
	}

	w.Characters, err = collection(rw.Characters, "characters", nil,
		func(c *entities.Character) *string { return &c.ID })
	if err != nil {
		return nil, err
	}

	w.Items, err = collection(rw.Items, "items", nil,
		func(i *entities.Item) *string { return &i.ID })
	if err != nil {
		return nil, err
	}

	w.Vocabulary, err = collection[entities.VocabularyItem](rw.Vocabulary, "vocabulary",
		func(index int) string { return fmt.Sprintf("vocab_%d", index) }, nil)
	if err != nil {
		return nil, err
	}

	return w, nil
}

// collection decodes one world collection given as a list or an id-keyed object.
// List records without an id are dropped unless fallbackKey names them.
// idField, when set, exposes the record's id so object records can inherit their key.
func collection[T any](
	raw json.RawMessage,
	name string,
	fallbackKey func(index int) string,
	idField func(*T) *string,
) (map[string]*T, error) {
	out := make(map[string]*T)
	if isNull(raw) {
		return out, nil
	}

	switch raw[firstByte(raw)] {
	case '[':
		var records []json.RawMessage
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "%s list is malformed", name)
		}

		for i, rec := range records {
			var probe idProbe
			if err := json.Unmarshal(rec, &probe); err != nil {
				return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "%s[%d] is not a record", name, i)
			}

			key := probe.ID
			if key == "" && fallbackKey != nil {
				key = fallbackKey(i)
			}
			if key == "" {
				slog.Warn("Dropping world record without id",
					"collection", name,
					"index", i)
				continue
			}

			v := new(T)
			if err := json.Unmarshal(rec, v); err != nil {
				return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "%s[%d] has the wrong shape", name, i)
			}
			out[key] = v
		}

	case '{':
		var records map[string]*T
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "%s object is malformed", name)
		}

		for key, v := range records {
			if v == nil {
				continue
			}
			if idField != nil {
				if id := idField(v); *id == "" {
					*id = key
				}
			}
			out[key] = v
		}

	default:
		return nil, errors.InvalidArgumentf("%s must be a list or an object", name)
	}

	return out, nil
}

func firstByte(raw json.RawMessage) int {
	for i, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return i
	}
	return 0
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
