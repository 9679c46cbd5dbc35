package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytrack/flight-tracker/internal/domain"
)

func newRecord(callSign string, depart time.Time) *domain.FlightRecord {
	return &domain.FlightRecord{
		CallSign:  callSign,
		Departure: domain.FlightPoint{IATA: "SGN", DateTime: depart},
		Arrival:   domain.FlightPoint{IATA: "MEL", DateTime: depart.Add(8 * time.Hour)},
	}
}

var ict = time.FixedZone("", 7*3600)

func TestStore_InsertAssignsIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	a := newRecord("VJ 84", time.Date(2025, 1, 16, 20, 40, 0, 0, ict))
	b := newRecord("QF 1", time.Date(2025, 1, 17, 9, 0, 0, 0, ict))
	require.NoError(t, s.Insert(ctx, a))
	require.NoError(t, s.Insert(ctx, b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	got, err := s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "QF 1", got.CallSign)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	r := newRecord("VJ 84", time.Date(2025, 1, 16, 20, 40, 0, 0, ict))
	require.NoError(t, s.Insert(ctx, r))

	got, err := s.Get(ctx, r.ID)
	require.NoError(t, err)
	got.Seat = "1A"

	again, err := s.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Seat)
}

func TestStore_UpdateAndDelete(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	r := newRecord("VJ 84", time.Date(2025, 1, 16, 20, 40, 0, 0, ict))
	require.NoError(t, s.Insert(ctx, r))

	r.Seat = "12A"
	require.NoError(t, s.Update(ctx, r))
	got, err := s.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "12A", got.Seat)

	require.NoError(t, s.Delete(ctx, r.ID))
	_, err = s.Get(ctx, r.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	assert.ErrorIs(t, s.Delete(ctx, r.ID), domain.ErrRecordNotFound)
	assert.ErrorIs(t, s.Update(ctx, r), domain.ErrRecordNotFound)
}

func TestStore_GetAllOrdersByDeparture(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, newRecord("LATE", time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))))
	require.NoError(t, s.Insert(ctx, newRecord("EARLY", time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))))

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "EARLY", all[0].CallSign)
	assert.Equal(t, "LATE", all[1].CallSign)
}

func TestStore_CountExisting(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	depart := time.Date(2025, 1, 16, 20, 40, 0, 0, ict)
	require.NoError(t, s.Insert(ctx, newRecord("VJ 84", depart)))

	tests := []struct {
		name     string
		depart   time.Time
		callSign string
		want     int64
	}{
		{name: "same flight", depart: depart, callSign: "VJ 84", want: 1},
		{name: "other call sign", depart: depart, callSign: "VJ 85", want: 0},
		{name: "other day", depart: depart.AddDate(0, 0, 1), callSign: "VJ 84", want: 0},
		{name: "same instant in another offset", depart: depart.UTC(), callSign: "VJ 84", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := s.CountExisting(ctx, tt.depart, tt.callSign)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestStore_CancelledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Insert(ctx, newRecord("VJ 84", time.Now())), context.Canceled)
	_, err := s.GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_ConcurrentInserts(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Insert(ctx, newRecord(fmt.Sprintf("XX %d", i), time.Now()))
		}(i)
	}
	wg.Wait()

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)

	seen := make(map[int64]bool)
	for _, r := range all {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
}
