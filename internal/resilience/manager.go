// Package resilience tracks consecutive connectivity failures against the game
// server and decides when play should fall back to the offline world.
package resilience

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/jp-mud/internal/errors"
)

// DefaultThreshold is the number of consecutive connectivity failures that
// triggers the offline fallback
const DefaultThreshold = 3

// Config configures a Manager
type Config struct {
	// Threshold defaults to DefaultThreshold when zero
	Threshold int
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Threshold < 0 {
		vb.Field("Threshold", "must not be negative")
	}
	return vb.Build()
}

// Manager counts consecutive connectivity failures. Domain failures neither
// count nor reset.
type Manager struct {
	mu        sync.Mutex
	threshold int
	failures  int
}

// NewManager creates a manager
func NewManager(cfg *Config) (*Manager, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	return &Manager{threshold: threshold}, nil
}

// RecordFailure counts err when it is a connectivity failure and reports
// whether it was counted
func (m *Manager) RecordFailure(err error) bool {
	if !errors.IsConnectionFailure(err) {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.failures++
	slog.Warn("Connection to game server failed",
		"consecutive_failures", m.failures,
		"threshold", m.threshold)
	return true
}

// RecordSuccess resets the counter
func (m *Manager) RecordSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = 0
}

// Failures returns the current consecutive failure count
func (m *Manager) Failures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures
}

// Threshold returns the fallback threshold
func (m *Manager) Threshold() int {
	return m.threshold
}

// ShouldFallback reports whether the threshold has been reached
func (m *Manager) ShouldFallback() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures >= m.threshold
}

// Detail describes the connection situation for a failure banner
func (m *Manager) Detail() string {
	n := m.Failures()
	if n <= 1 {
		return "Check your internet connection and try again."
	}
	return fmt.Sprintf("Failed after %d attempts. Server may be down or unreachable.", n)
}
