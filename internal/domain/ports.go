package domain

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

import (
	"context"
	"time"
)

// FlightStore persists tracked flights keyed by their local id.
// Implementations must be safe for concurrent use.
type FlightStore interface {
	// Insert stores a new record and assigns its ID.
	Insert(ctx context.Context, record *FlightRecord) error

	// Update replaces the stored record with the same ID.
	Update(ctx context.Context, record *FlightRecord) error

	// Delete removes the record with the given ID.
	Delete(ctx context.Context, id int64) error

	// Get returns the record with the given ID or ErrRecordNotFound.
	Get(ctx context.Context, id int64) (*FlightRecord, error)

	// GetAll returns every stored record ordered by departure.
	GetAll(ctx context.Context) ([]FlightRecord, error)

	// CountExisting counts records with the same departure date-time and call sign.
	CountExisting(ctx context.Context, departDate time.Time, callSign string) (int64, error)
}

// FlightSource fetches one flight from a remote API and normalizes it.
// Every returned error is a *FetchError.
type FlightSource interface {
	FetchFlight(ctx context.Context, flightNumber, date string, settings APISettings) (*FlightRecord, error)
}

// EventType names a flight lifecycle event.
type EventType string

const (
	EventFlightTracked EventType = "flight.tracked"
	EventFlightUpdated EventType = "flight.updated"
	EventFlightRemoved EventType = "flight.removed"
)

// FlightEvent is emitted for the notification scheduler, which
// schedules or cancels departure and arrival alerts from it.
type FlightEvent struct {
	Type       EventType     `json:"type"`
	FlightID   int64         `json:"flightId"`
	CallSign   string        `json:"callSign"`
	DepartDate time.Time     `json:"departDate"`
	ArriveDate time.Time     `json:"arriveDate"`
	OccurredAt time.Time     `json:"occurredAt"`
	Record     *FlightRecord `json:"record,omitempty"`
}

// NewFlightEvent builds an event describing record.
func NewFlightEvent(t EventType, record *FlightRecord, at time.Time) FlightEvent {
	return FlightEvent{
		Type:       t,
		FlightID:   record.ID,
		CallSign:   record.CallSign,
		DepartDate: record.Departure.DateTime,
		ArriveDate: record.Arrival.DateTime,
		OccurredAt: at,
		Record:     record,
	}
}

// EventPublisher delivers flight events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event FlightEvent) error
	Close() error
}
