// Package config loads process configuration from JPMUD_* environment variables
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/jp-mud/internal/errors"
)

// Save index backends
const (
	SaveStoreFile  = "file"
	SaveStoreRedis = "redis"
	SaveStoreNone  = "none"
)

// Config is the client configuration. Command-line flags override it.
type Config struct {
	APIURL           string        `env:"JPMUD_API_URL"           envDefault:"http://localhost:8020/api"`
	HTTPTimeout      time.Duration `env:"JPMUD_HTTP_TIMEOUT"`
	SaveStore        string        `env:"JPMUD_SAVE_STORE"        envDefault:"file"`
	SaveDir          string        `env:"JPMUD_SAVE_DIR"          envDefault:"game_saves"`
	RedisURL         string        `env:"JPMUD_REDIS_URL"         envDefault:"redis://localhost:6379/0"`
	SaveTTL          time.Duration `env:"JPMUD_SAVE_TTL"`
	FailureThreshold int           `env:"JPMUD_FAILURE_THRESHOLD" envDefault:"3"`
	SettleDelay      time.Duration `env:"JPMUD_SETTLE_DELAY"      envDefault:"1s"`
	WorldPrompt      string        `env:"JPMUD_WORLD_PROMPT"      envDefault:"Create a fantasy medieval world with Japanese elements"`
	LogLevel         string        `env:"LOG_LEVEL"               envDefault:"info"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("APIURL", c.APIURL, vb)
	errors.ValidatePositive("FailureThreshold", c.FailureThreshold, vb)

	switch c.SaveStore {
	case SaveStoreFile:
		errors.ValidateRequired("SaveDir", c.SaveDir, vb)
	case SaveStoreRedis:
		errors.ValidateRequired("RedisURL", c.RedisURL, vb)
	case SaveStoreNone:
	default:
		vb.Fieldf("SaveStore", "must be one of %s, %s or %s", SaveStoreFile, SaveStoreRedis, SaveStoreNone)
	}

	if c.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if c.SettleDelay < 0 {
		vb.Field("SettleDelay", "must not be negative")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
