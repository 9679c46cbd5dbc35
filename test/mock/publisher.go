package mock

import (
	"context"
	"sync"

	"github.com/skytrack/flight-tracker/internal/domain"
)

// Publisher records every published event in memory.
type Publisher struct {
	mu     sync.Mutex
	events []domain.FlightEvent
	err    error
}

// NewPublisher creates an empty recording publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// WithError makes every Publish call fail with err after recording the event.
func (p *Publisher) WithError(err error) *Publisher {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
	return p
}

// Publish implements domain.EventPublisher.
func (p *Publisher) Publish(_ context.Context, event domain.FlightEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

// Close implements domain.EventPublisher.
func (p *Publisher) Close() error {
	return nil
}

// Types returns the recorded event types in publish order.
func (p *Publisher) Types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]domain.EventType, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

// Events returns a copy of the recorded events.
func (p *Publisher) Events() []domain.FlightEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.FlightEvent(nil), p.events...)
}
