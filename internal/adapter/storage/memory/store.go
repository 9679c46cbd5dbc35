// Package memory provides an in-process FlightStore.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/skytrack/flight-tracker/internal/domain"
)

// Store keeps flight records in a map guarded by a RWMutex.
// Records are copied on the way in and out so callers never share state with the store.
type Store struct {
	mu      sync.RWMutex
	records map[int64]domain.FlightRecord
	nextID  int64
}

// NewStore creates an empty store. IDs start at 1.
func NewStore() *Store {
	return &Store{
		records: make(map[int64]domain.FlightRecord),
		nextID:  1,
	}
}

// Insert implements domain.FlightStore.
func (s *Store) Insert(ctx context.Context, record *domain.FlightRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.nextID
	s.nextID++
	s.records[record.ID] = *record
	return nil
}

// Update implements domain.FlightStore.
func (s *Store) Update(ctx context.Context, record *domain.FlightRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[record.ID]; !ok {
		return domain.ErrRecordNotFound
	}
	s.records[record.ID] = *record
	return nil
}

// Delete implements domain.FlightStore.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(s.records, id)
	return nil
}

// Get implements domain.FlightStore.
func (s *Store) Get(ctx context.Context, id int64) (*domain.FlightRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &record, nil
}

// GetAll implements domain.FlightStore. Records are ordered by departure, then ID.
func (s *Store) GetAll(ctx context.Context) ([]domain.FlightRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	all := make([]domain.FlightRecord, 0, len(s.records))
	for _, r := range s.records {
		all = append(all, r)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].Departure.DateTime, all[j].Departure.DateTime
		if !a.Equal(b) {
			return a.Before(b)
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

// CountExisting implements domain.FlightStore.
// Departure dates match on their local text form, wall clock and offset included.
func (s *Store) CountExisting(ctx context.Context, departDate time.Time, callSign string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	key := departDate.Format(domain.LocalDateTimeLayout)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, r := range s.records {
		if r.CallSign == callSign && r.DepartKey() == key {
			n++
		}
	}
	return n, nil
}

var _ domain.FlightStore = (*Store)(nil)
