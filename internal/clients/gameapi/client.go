// Package gameapi is the HTTP client for the jp-mud game server
package gameapi

//go:generate mockgen -destination=mock/mock_client.go -package=gameapimock github.com/KirkDiggler/jp-mud/internal/clients/gameapi Client

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/jp-mud/internal/errors"
)

// DefaultBaseURL is where the game server listens in development
const DefaultBaseURL = "http://localhost:8020/api"

// Client defines the game server operations
type Client interface {
	// GenerateWorld creates a new world from a prompt
	GenerateWorld(ctx context.Context, input *GenerateWorldRequest) (*GenerateWorldResponse, error)

	// ProcessInput interprets one player command against the given state
	ProcessInput(ctx context.Context, input *ProcessInputRequest) (*ProcessInputResponse, error)

	// ValidateJapanese checks Japanese text before it is processed
	ValidateJapanese(ctx context.Context, input *ValidateJapaneseRequest) (*ValidateJapaneseResponse, error)

	// SaveState stores a game and returns its id
	SaveState(ctx context.Context, input *SaveStateRequest) (*SaveStateResponse, error)

	// LoadState fetches a saved game
	LoadState(ctx context.Context, input *LoadStateRequest) (*LoadStateResponse, error)

	// ListSavedGames lists the saves known to the server
	ListSavedGames(ctx context.Context) (*ListSavedGamesResponse, error)

	// AvailableCommands lists command hints
	AvailableCommands(ctx context.Context) (*AvailableCommands, error)
}

// Config contains configuration options for the game server client
type Config struct {
	// BaseURL of the API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout per request (optional, zero means no timeout)
	HTTPTimeout time.Duration
	// HTTPClient overrides the transport (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	vb := errors.NewValidationBuilder()
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		vb.Field("BaseURL", "must be an http or https URL")
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new game server client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

func (c *client) GenerateWorld(ctx context.Context, input *GenerateWorldRequest) (*GenerateWorldResponse, error) {
	var out GenerateWorldResponse
	if err := c.do(ctx, http.MethodPost, "/generate-world", input, &out); err != nil {
		return nil, errors.Wrap(err, "failed to generate world")
	}
	return &out, nil
}

func (c *client) ProcessInput(ctx context.Context, input *ProcessInputRequest) (*ProcessInputResponse, error) {
	var out ProcessInputResponse
	if err := c.do(ctx, http.MethodPost, "/process-input", input, &out); err != nil {
		return nil, errors.Wrap(err, "failed to process input")
	}
	return &out, nil
}

func (c *client) ValidateJapanese(ctx context.Context, input *ValidateJapaneseRequest) (*ValidateJapaneseResponse, error) {
	var out ValidateJapaneseResponse
	if err := c.do(ctx, http.MethodPost, "/validate-japanese", input, &out); err != nil {
		return nil, errors.Wrap(err, "failed to validate japanese")
	}
	return &out, nil
}

func (c *client) SaveState(ctx context.Context, input *SaveStateRequest) (*SaveStateResponse, error) {
	var out SaveStateResponse
	if err := c.do(ctx, http.MethodPost, "/save-state", input, &out); err != nil {
		return nil, errors.Wrap(err, "failed to save game")
	}
	return &out, nil
}

func (c *client) LoadState(ctx context.Context, input *LoadStateRequest) (*LoadStateResponse, error) {
	var out LoadStateResponse
	if err := c.do(ctx, http.MethodPost, "/load-state", input, &out); err != nil {
		return nil, errors.Wrapf(err, "failed to load game %s", input.GameID)
	}
	return &out, nil
}

func (c *client) ListSavedGames(ctx context.Context) (*ListSavedGamesResponse, error) {
	var out ListSavedGamesResponse
	if err := c.do(ctx, http.MethodGet, "/saved-games", nil, &out); err != nil {
		return nil, errors.Wrap(err, "failed to list saved games")
	}
	return &out, nil
}

func (c *client) AvailableCommands(ctx context.Context) (*AvailableCommands, error) {
	var out AvailableCommands
	if err := c.do(ctx, http.MethodGet, "/commands", nil, &out); err != nil {
		return nil, errors.Wrap(err, "failed to get available commands")
	}
	return &out, nil
}

// do sends body as JSON and decodes a 2xx reply into out. Transport failures
// become Unavailable or DeadlineExceeded; error replies carry the server's
// detail text and a code derived from the status.
func (c *client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("Game server request failed",
			"method", method,
			"path", path,
			"error", err)
		return transportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(ctx, err)
	}

	slog.Debug("Game server request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode, payload)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "game server returned an unreadable response")
	}
	return nil
}

func transportError(ctx context.Context, err error) error {
	if stderrors.Is(ctx.Err(), context.Canceled) {
		return errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
	}

	var netErr net.Error
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "game server timed out")
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, "unable to reach game server")
}

func statusError(status int, payload []byte) error {
	detail := http.StatusText(status)

	var body errorResponse
	if err := json.Unmarshal(payload, &body); err == nil && len(body.Detail) > 0 {
		var text string
		if err := json.Unmarshal(body.Detail, &text); err == nil {
			detail = text
		} else {
			detail = string(body.Detail)
		}
	}

	return errors.New(errors.FromHTTPStatus(status), detail).
		WithMeta("http_status", status)
}
