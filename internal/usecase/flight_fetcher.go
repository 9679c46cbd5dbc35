package usecase

//go:generate mockgen -source=flight_fetcher.go -destination=mock_flight_fetcher.go -package=usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skytrack/flight-tracker/internal/domain"
	"github.com/skytrack/flight-tracker/internal/infrastructure/logger"
	"github.com/skytrack/flight-tracker/internal/infrastructure/metrics"
)

// FlightFetcher defines the fetch pipeline: request, decode, normalize, dedupe, persist.
type FlightFetcher interface {
	// Fetch retrieves one flight and, unless isUpdate is set, inserts it into the store.
	// Every non-nil error is a *domain.FetchError.
	Fetch(ctx context.Context, flightNumber, date string, settings domain.APISettings, isUpdate bool) (*domain.FlightRecord, error)
}

// flightFetcher implements FlightFetcher on top of a FlightSource and a FlightStore.
type flightFetcher struct {
	source  domain.FlightSource
	store   domain.FlightStore
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewFlightFetcher creates a FlightFetcher. metrics may be nil.
func NewFlightFetcher(source domain.FlightSource, store domain.FlightStore, m *metrics.Metrics, log zerolog.Logger) FlightFetcher {
	return &flightFetcher{
		source:  source,
		store:   store,
		metrics: m,
		log:     log.With().Str("component", "fetcher").Logger(),
	}
}

// Fetch implements FlightFetcher.Fetch.
func (f *flightFetcher) Fetch(ctx context.Context, flightNumber, date string, settings domain.APISettings, isUpdate bool) (record *domain.FlightRecord, err error) {
	start := time.Now()
	log := logger.FromContext(ctx, f.log).With().
		Str("flight_number", flightNumber).
		Str("date", date).
		Bool("update", isUpdate).
		Logger()

	// A panic anywhere below surfaces as an unknown failure.
	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = domain.NewFetchError(domain.KindUnknown, fmt.Errorf("fetch panic: %v", r))
		}
		f.metrics.ObserveFetch(outcome(err), time.Since(start))
		if err != nil {
			log.Error().Err(err).Str("kind", domain.KindOf(err).String()).Msg("Flight fetch failed")
		}
	}()

	record, err = f.source.FetchFlight(ctx, flightNumber, date, settings)
	if err != nil {
		return nil, asFetchError(err)
	}
	if record == nil {
		return nil, domain.NewFetchError(domain.KindUnknown, errors.New("source returned no record"))
	}

	if isUpdate {
		log.Debug().Str("call_sign", record.CallSign).Msg("Flight fetched for update")
		return record, nil
	}

	count, err := f.store.CountExisting(ctx, record.Departure.DateTime, record.CallSign)
	if err != nil {
		return nil, domain.NewFetchError(domain.KindUnknown, fmt.Errorf("count existing: %w", err))
	}
	if count > 0 {
		return nil, domain.NewFetchError(domain.KindFlightAlreadyExists,
			fmt.Errorf("%s departing %s", record.CallSign, record.DepartKey()))
	}

	if err := f.store.Insert(ctx, record); err != nil {
		return nil, domain.NewFetchError(domain.KindUnknown, fmt.Errorf("insert: %w", err))
	}

	log = logger.Flight(log, record.ID, record.CallSign)
	log.Info().Msg("Flight tracked")

	return record, nil
}

// asFetchError keeps FetchErrors as they are and tags anything else as unknown.
func asFetchError(err error) error {
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		return err
	}
	return domain.NewFetchError(domain.KindUnknown, err)
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	return domain.KindOf(err).String()
}
