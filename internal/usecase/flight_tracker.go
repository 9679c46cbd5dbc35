package usecase

//go:generate mockgen -source=flight_tracker.go -destination=mock_flight_tracker.go -package=usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skytrack/flight-tracker/internal/boardingpass"
	"github.com/skytrack/flight-tracker/internal/domain"
	"github.com/skytrack/flight-tracker/internal/infrastructure/logger"
	"github.com/skytrack/flight-tracker/internal/infrastructure/metrics"
	"github.com/skytrack/flight-tracker/internal/infrastructure/timeutil"
)

var (
	flightNumberPattern = regexp.MustCompile(`^[A-Z0-9]{2,3}\s?[0-9]{1,5}[A-Z]?$`)
	seatPattern         = regexp.MustCompile(`^[0-9]{1,3}[A-Z]$`)
)

// FlightTracker defines the operations on the user's tracked flights.
type FlightTracker interface {
	// Track fetches a new flight and stores it.
	Track(ctx context.Context, flightNumber, date string) (*domain.FlightRecord, error)

	// List returns every tracked flight with its current progress.
	List(ctx context.Context) ([]domain.FlightRecord, error)

	// Get returns one tracked flight.
	Get(ctx context.Context, id int64) (*domain.FlightRecord, error)

	// Delete stops tracking a flight.
	Delete(ctx context.Context, id int64) error

	// Refresh re-fetches a tracked flight and replaces the stored record.
	Refresh(ctx context.Context, id int64) (*domain.FlightRecord, error)

	// RefreshAll refreshes every tracked flight. Individual failures do not abort the batch.
	RefreshAll(ctx context.Context) (*RefreshSummary, error)

	// AttachBoardingPass decodes a BCBP barcode and stores it with its seat.
	AttachBoardingPass(ctx context.Context, id int64, raw string) (*domain.FlightRecord, error)

	// SetSeat stores the user's seat.
	SetSeat(ctx context.Context, id int64, seat string) (*domain.FlightRecord, error)
}

// RefreshSummary reports the outcome of a RefreshAll run.
type RefreshSummary struct {
	Total      int              `json:"total"`
	Refreshed  int              `json:"refreshed"`
	Failed     int              `json:"failed"`
	Failures   map[int64]string `json:"failures,omitempty"`
	DurationMs int64            `json:"durationMs"`
}

// flightTracker implements FlightTracker.
type flightTracker struct {
	fetcher   FlightFetcher
	store     domain.FlightStore
	publisher domain.EventPublisher
	clock     timeutil.Clock
	metrics   *metrics.Metrics
	cfg       TrackerConfig
	log       zerolog.Logger
}

// NewFlightTracker creates a FlightTracker.
// clock and m may be nil; publisher may be a no-op implementation.
func NewFlightTracker(
	fetcher FlightFetcher,
	store domain.FlightStore,
	publisher domain.EventPublisher,
	clock timeutil.Clock,
	m *metrics.Metrics,
	cfg TrackerConfig,
	log zerolog.Logger,
) FlightTracker {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &flightTracker{
		fetcher:   fetcher,
		store:     store,
		publisher: publisher,
		clock:     clock,
		metrics:   m,
		cfg:       cfg.withDefaults(),
		log:       log.With().Str("component", "tracker").Logger(),
	}
}

// Track implements FlightTracker.Track.
func (t *flightTracker) Track(ctx context.Context, flightNumber, date string) (*domain.FlightRecord, error) {
	number, err := normalizeFlightNumber(flightNumber)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, domain.WrapInvalidRequest("date %q must be YYYY-MM-DD", date)
	}

	record, err := t.fetcher.Fetch(ctx, number, date, t.cfg.Settings, false)
	if err != nil {
		return nil, err
	}

	record.Progress = record.ProgressAt(t.clock.Now())
	t.publish(ctx, domain.EventFlightTracked, record)
	return record, nil
}

// List implements FlightTracker.List.
func (t *flightTracker) List(ctx context.Context) ([]domain.FlightRecord, error) {
	records, err := t.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}

	now := t.clock.Now()
	for i := range records {
		records[i].Progress = records[i].ProgressAt(now)
	}
	if t.metrics != nil {
		t.metrics.TrackedFlights.Set(float64(len(records)))
	}
	return records, nil
}

// Get implements FlightTracker.Get.
func (t *flightTracker) Get(ctx context.Context, id int64) (*domain.FlightRecord, error) {
	record, err := t.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Progress = record.ProgressAt(t.clock.Now())
	return record, nil
}

// Delete implements FlightTracker.Delete.
func (t *flightTracker) Delete(ctx context.Context, id int64) error {
	record, err := t.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := t.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete flight %d: %w", id, err)
	}

	log := t.flightLog(ctx, id, record.CallSign)
	log.Info().Msg("Flight removed")
	t.publish(ctx, domain.EventFlightRemoved, record)
	return nil
}

// Refresh implements FlightTracker.Refresh.
func (t *flightTracker) Refresh(ctx context.Context, id int64) (*domain.FlightRecord, error) {
	prev, err := t.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	number := strings.ReplaceAll(prev.CallSign, " ", "")
	date := timeutil.FormatDate(prev.Departure.DateTime)

	fresh, err := t.fetcher.Fetch(ctx, number, date, t.cfg.Settings, true)
	if err != nil {
		return nil, err
	}

	fresh.CarryUserFields(prev)
	fresh.Progress = fresh.ProgressAt(t.clock.Now())
	if err := t.store.Update(ctx, fresh); err != nil {
		return nil, domain.NewFetchError(domain.KindUnknown, fmt.Errorf("update flight %d: %w", id, err))
	}

	t.publish(ctx, domain.EventFlightUpdated, fresh)
	return fresh, nil
}

// refreshResult holds the outcome of one flight refresh.
type refreshResult struct {
	ID    int64
	Error error
}

// RefreshAll implements FlightTracker.RefreshAll with bounded fan-out.
func (t *flightTracker) RefreshAll(ctx context.Context) (*RefreshSummary, error) {
	start := time.Now()

	records, err := t.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}

	// Buffered channel to prevent goroutine blocking
	results := make(chan refreshResult, len(records))
	sem := make(chan struct{}, t.cfg.RefreshConcurrency)
	var wg sync.WaitGroup

	for _, record := range records {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results <- refreshResult{ID: id, Error: ctx.Err()}
				return
			}

			t.refreshOne(ctx, id, results)
		}(record.ID)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	summary := &RefreshSummary{Total: len(records)}
	for res := range results {
		if res.Error != nil {
			summary.Failed++
			if summary.Failures == nil {
				summary.Failures = make(map[int64]string)
			}
			summary.Failures[res.ID] = res.Error.Error()
			if t.metrics != nil {
				t.metrics.RefreshFailures.Inc()
			}
			t.log.Warn().Err(res.Error).Int64("flight_id", res.ID).Msg("Flight refresh failed")
			continue
		}
		summary.Refreshed++
	}

	elapsed := time.Since(start)
	summary.DurationMs = elapsed.Milliseconds()
	if t.metrics != nil {
		t.metrics.RefreshBatchTime.Observe(elapsed.Seconds())
	}

	t.log.Info().
		Int("total", summary.Total).
		Int("refreshed", summary.Refreshed).
		Int("failed", summary.Failed).
		Int64("duration_ms", summary.DurationMs).
		Msg("Refresh batch completed")

	return summary, nil
}

// refreshOne refreshes a single flight with timeout and panic recovery.
func (t *flightTracker) refreshOne(ctx context.Context, id int64, results chan<- refreshResult) {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.RefreshTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			results <- refreshResult{
				ID:    id,
				Error: domain.NewFetchError(domain.KindUnknown, fmt.Errorf("refresh panic: %v", r)),
			}
		}
	}()

	_, err := t.Refresh(ctx, id)
	results <- refreshResult{ID: id, Error: err}
}

// AttachBoardingPass implements FlightTracker.AttachBoardingPass.
func (t *flightTracker) AttachBoardingPass(ctx context.Context, id int64, raw string) (*domain.FlightRecord, error) {
	pass, err := boardingpass.Decode(raw)
	if err != nil {
		return nil, domain.WrapInvalidRequest("%v", err)
	}

	record, err := t.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if pass.FlightCode() != strings.ReplaceAll(record.CallSign, " ", "") {
		log := t.flightLog(ctx, id, record.CallSign)
		log.Warn().
			Str("pass_flight", pass.FlightCode()).
			Msg("Boarding pass flight differs from tracked flight")
	}

	record.BoardingPass = raw
	record.Seat = pass.Seat
	if err := t.store.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("update flight %d: %w", id, err)
	}

	record.Progress = record.ProgressAt(t.clock.Now())
	t.publish(ctx, domain.EventFlightUpdated, record)
	return record, nil
}

// SetSeat implements FlightTracker.SetSeat.
func (t *flightTracker) SetSeat(ctx context.Context, id int64, seat string) (*domain.FlightRecord, error) {
	seat = strings.ToUpper(strings.TrimSpace(seat))
	if seat != "" && !seatPattern.MatchString(seat) {
		return nil, domain.WrapInvalidRequest("seat %q must look like 12A", seat)
	}

	record, err := t.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Seat = seat
	if err := t.store.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("update flight %d: %w", id, err)
	}

	record.Progress = record.ProgressAt(t.clock.Now())
	return record, nil
}

// publish hands an event to the publisher. Delivery failures are logged only.
func (t *flightTracker) publish(ctx context.Context, eventType domain.EventType, record *domain.FlightRecord) {
	if t.publisher == nil {
		return
	}
	err := t.publisher.Publish(ctx, domain.NewFlightEvent(eventType, record, t.clock.Now()))
	t.metrics.ObserveEvent(string(eventType), err)
	if err != nil {
		log := t.flightLog(ctx, record.ID, record.CallSign)
		log.Error().Err(err).
			Str("event", string(eventType)).
			Msg("Failed to publish flight event")
	}
}

// flightLog returns the tracker logger tagged with the request id and flight.
func (t *flightTracker) flightLog(ctx context.Context, id int64, callSign string) zerolog.Logger {
	return logger.Flight(logger.FromContext(ctx, t.log), id, callSign)
}

// normalizeFlightNumber upper-cases and validates a flight number such as "vj84" or "VJ 84".
func normalizeFlightNumber(s string) (string, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	if n == "" {
		return "", domain.WrapInvalidRequest("flight number is required")
	}
	if !flightNumberPattern.MatchString(n) {
		return "", domain.WrapInvalidRequest("flight number %q is not valid", s)
	}
	return strings.ReplaceAll(n, " ", ""), nil
}
