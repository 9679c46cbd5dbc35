// Package events delivers flight lifecycle events to the notification scheduler.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/skytrack/flight-tracker/internal/domain"
	"github.com/skytrack/flight-tracker/internal/infrastructure/logger"
	"github.com/skytrack/flight-tracker/internal/infrastructure/retry"
)

// RequestIDHeader carries the id of the HTTP request that caused the event.
const RequestIDHeader = "request-id"

// messageWriter is the subset of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one JSON message per event, keyed by flight id so
// every event of a flight lands on the same partition.
type KafkaPublisher struct {
	writer messageWriter
	policy retry.Policy
	log    zerolog.Logger
}

// NewKafkaWriter returns a writer for topic on brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// NewKafkaPublisher creates a publisher on top of w.
func NewKafkaPublisher(w messageWriter, log zerolog.Logger) *KafkaPublisher {
	p := &KafkaPublisher{
		writer: w,
		policy: retry.EventDelivery,
		log:    log.With().Str("component", "events").Logger(),
	}
	p.policy.OnRetry = func(attempt int, err error, wait time.Duration) {
		p.log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("Event delivery failed, retrying")
	}
	return p
}

// Publish implements domain.EventPublisher.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.FlightEvent) error {
	msg, err := encode(event)
	if err != nil {
		return err
	}
	if id := logger.RequestIDFromContext(ctx); id != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: RequestIDHeader, Value: []byte(id)})
	}

	err = retry.Do(ctx, p.policy, func(ctx context.Context) error {
		return p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("publish %s for flight %d: %w", event.Type, event.FlightID, err)
	}

	p.log.Debug().
		Str("event", string(event.Type)).
		Int64("flight_id", event.FlightID).
		Msg("Event published")
	return nil
}

// Close flushes pending messages.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func encode(event domain.FlightEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.FlightID, 10)),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}

var _ domain.EventPublisher = (*KafkaPublisher)(nil)
