package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytrack/flight-tracker/internal/adapter/events"
	"github.com/skytrack/flight-tracker/internal/adapter/storage/memory"
	"github.com/skytrack/flight-tracker/internal/config"
	"github.com/skytrack/flight-tracker/internal/infrastructure/logger"
)

func TestOpenPublisher(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		cfg := &config.Config{}

		pub := openPublisher(cfg, logger.Nop())

		assert.IsType(t, events.NopPublisher{}, pub)
		assert.NoError(t, pub.Close())
	})

	t.Run("enabled", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Events.Enabled = true
		cfg.Events.Brokers = []string{"localhost:9092"}
		cfg.Events.Topic = "flight-events"

		pub := openPublisher(cfg, logger.Nop())

		assert.IsType(t, &events.KafkaPublisher{}, pub)
		// the writer dials lazily, so closing an unused publisher does not touch the broker
		assert.NoError(t, pub.Close())
	})
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.DriverMemory

	store, closeStore, err := openStore(context.Background(), cfg)
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &memory.Store{}, store)
}
