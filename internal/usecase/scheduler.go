package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RefreshScheduler runs FlightTracker.RefreshAll on a fixed interval.
type RefreshScheduler struct {
	tracker  FlightTracker
	interval time.Duration
	log      zerolog.Logger
}

// NewRefreshScheduler creates a scheduler. A non-positive interval disables it.
func NewRefreshScheduler(tracker FlightTracker, interval time.Duration, log zerolog.Logger) *RefreshScheduler {
	return &RefreshScheduler{
		tracker:  tracker,
		interval: interval,
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

// Run blocks until ctx is cancelled. Batches never overlap: the next tick is
// taken only after the running batch returns.
func (s *RefreshScheduler) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.log.Info().Msg("Scheduled refresh disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("Scheduled refresh started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("Scheduled refresh stopped")
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			s.tick(ctx)
		}
	}
}

func (s *RefreshScheduler) tick(ctx context.Context) {
	if _, err := s.tracker.RefreshAll(ctx); err != nil {
		s.log.Error().Err(err).Msg("Scheduled refresh failed")
	}
}
