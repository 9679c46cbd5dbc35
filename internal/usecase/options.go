// Package usecase contains the business logic of the flight tracker.
// It runs the fetch pipeline and the tracking operations built on it.
package usecase

import (
	"time"

	"github.com/skytrack/flight-tracker/internal/domain"
)

// Default refresh values.
const (
	DefaultRefreshConcurrency = 4
	DefaultRefreshTimeout     = 10 * time.Second
)

// TrackerConfig contains configuration options for the tracker.
type TrackerConfig struct {
	// Settings is the API settings snapshot used by every fetch
	Settings domain.APISettings

	// RefreshConcurrency bounds the parallel fetches of RefreshAll
	RefreshConcurrency int

	// RefreshTimeout bounds a single flight refresh within RefreshAll
	RefreshTimeout time.Duration
}

// DefaultTrackerConfig returns the default configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		Settings:           domain.APISettings{Mode: domain.ModeDefault},
		RefreshConcurrency: DefaultRefreshConcurrency,
		RefreshTimeout:     DefaultRefreshTimeout,
	}
}

// withDefaults fills unset values from DefaultTrackerConfig.
func (c TrackerConfig) withDefaults() TrackerConfig {
	def := DefaultTrackerConfig()
	if c.RefreshConcurrency <= 0 {
		c.RefreshConcurrency = def.RefreshConcurrency
	}
	if c.RefreshTimeout <= 0 {
		c.RefreshTimeout = def.RefreshTimeout
	}
	return c
}
