package savegame

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/jp-mud/internal/errors"
)

const saveFileExt = ".yaml"

// fileRecord is the on-disk layout. State and chat history are stored as the
// generic tree of their wire encoding so null, empty and numeric values load
// back exactly as the game server would send them.
type fileRecord struct {
	GameID      string      `yaml:"game_id"`
	SavedAt     time.Time   `yaml:"saved_at"`
	Location    string      `yaml:"location"`
	State       interface{} `yaml:"state"`
	ChatHistory interface{} `yaml:"chat_history"`
}

// gameIDPattern keeps game ids safe to use as file names
var gameIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileConfig holds the configuration for the file repository
type FileConfig struct {
	// Dir holds one YAML file per save; created on first Put
	Dir string
}

// Validate ensures all required settings are provided
func (c *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", c.Dir, vb)
	return vb.Build()
}

type fileRepository struct {
	dir string
	mu  sync.RWMutex
}

// NewFile creates a save index backed by YAML files in a directory
func NewFile(cfg *FileConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &fileRepository{dir: cfg.Dir}, nil
}

// Ensure fileRepository implements Repository
var _ Repository = (*fileRepository)(nil)

func (r *fileRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}
	path, err := r.path(input.Record.GameID)
	if err != nil {
		return nil, err
	}

	data, err := encodeRecord(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save %s", input.Record.GameID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, 0o750); err != nil {
		return nil, errors.Wrapf(err, "failed to create save directory %s", r.dir)
	}

	// write then rename so a crash never leaves a truncated save
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return nil, errors.Wrapf(err, "failed to write save %s", input.Record.GameID)
	}
	if err := os.Rename(tmp, path); err != nil {
		return nil, errors.Wrapf(err, "failed to write save %s", input.Record.GameID)
	}

	return &PutOutput{Record: input.Record}, nil
}

func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	path, err := r.path(input.GameID)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, err := readRecord(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("save %s not found", input.GameID)
		}
		return nil, err
	}

	return &GetOutput{Record: record}, nil
}

func (r *fileRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &ListOutput{Saves: []Summary{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to read save directory %s", r.dir)
	}

	saves := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), saveFileExt) {
			continue
		}

		record, err := readRecord(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			slog.Warn("Skipping unreadable save file",
				"file", entry.Name(),
				"error", err)
			continue
		}
		saves = append(saves, record.Summarize())
	}

	sort.Slice(saves, func(i, j int) bool {
		return saves[i].SavedAt.After(saves[j].SavedAt)
	})
	if input.Limit > 0 && len(saves) > input.Limit {
		saves = saves[:input.Limit]
	}

	return &ListOutput{Saves: saves}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	path, err := r.path(input.GameID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("save %s not found", input.GameID)
		}
		return nil, errors.Wrapf(err, "failed to delete save %s", input.GameID)
	}
	return &DeleteOutput{}, nil
}

func (r *fileRepository) path(gameID string) (string, error) {
	if gameID == "" {
		return "", errors.InvalidArgument(errGameIDEmpty)
	}
	if !gameIDPattern.MatchString(gameID) {
		return "", errors.InvalidArgumentf("game ID %q contains invalid characters", gameID)
	}
	return filepath.Join(r.dir, gameID+saveFileExt), nil
}

func readRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path) // #nosec G304 // path is built from a validated game id
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read save file %s", filepath.Base(path))
	}

	record, err := decodeRecord(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save file %s", filepath.Base(path))
	}
	return record, nil
}

func encodeRecord(record *Record) ([]byte, error) {
	fr := fileRecord{
		GameID:   record.GameID,
		SavedAt:  record.SavedAt,
		Location: record.Location,
	}

	var err error
	if fr.State, err = toTree(record.State); err != nil {
		return nil, err
	}
	if fr.ChatHistory, err = toTree(record.ChatHistory); err != nil {
		return nil, err
	}

	return yaml.Marshal(&fr)
}

func decodeRecord(data []byte) (*Record, error) {
	var fr fileRecord
	if err := yaml.Unmarshal(data, &fr); err != nil {
		return nil, err
	}

	record := &Record{
		GameID:   fr.GameID,
		SavedAt:  fr.SavedAt,
		Location: fr.Location,
	}
	if err := fromTree(fr.State, &record.State); err != nil {
		return nil, err
	}
	if err := fromTree(fr.ChatHistory, &record.ChatHistory); err != nil {
		return nil, err
	}
	if record.State == nil {
		return nil, errors.InvalidArgument(errStateMissing)
	}
	return record, nil
}

func toTree(v interface{}) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func fromTree(tree interface{}, out interface{}) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
