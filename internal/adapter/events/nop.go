package events

import (
	"context"

	"github.com/skytrack/flight-tracker/internal/domain"
)

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.FlightEvent) error { return nil }

func (NopPublisher) Close() error { return nil }

var _ domain.EventPublisher = NopPublisher{}
