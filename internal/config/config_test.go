package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytrack/flight-tracker/internal/domain"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "30s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Flight API defaults
	assert.Equal(t, domain.ModeDefault, cfg.FlightAPI.Mode)
	assert.Empty(t, cfg.FlightAPI.Key)
	assert.Equal(t, "10s", cfg.FlightAPI.RequestTimeout.String())

	// Storage and events defaults
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "flight_tracker", cfg.Storage.MongoDatabase)
	assert.False(t, cfg.Events.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Events.Brokers)
	assert.Equal(t, "flight-events", cfg.Events.Topic)

	// Refresh defaults
	assert.Equal(t, "15m0s", cfg.Refresh.Interval.String())
	assert.Equal(t, 4, cfg.Refresh.Concurrency)
	assert.Equal(t, "10s", cfg.Refresh.PerFlightTimeout.String())

	// Logging and app defaults
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "development", cfg.App.Env)
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"SERVER_PORT":         "3000",
		"FLIGHT_API_MODE":     "custom-server",
		"FLIGHT_API_SERVER":   "https://proxy.example.com/flights",
		"FLIGHT_API_KEY":      "secret",
		"FLIGHT_API_TIMEOUT":  "3s",
		"STORAGE_DRIVER":      "postgres",
		"POSTGRES_DSN":        "postgres://tracker@localhost/flights",
		"EVENTS_ENABLED":      "true",
		"KAFKA_BROKERS":       "k1:9092,k2:9092",
		"KAFKA_TOPIC":         "alerts",
		"REFRESH_INTERVAL":    "0s",
		"REFRESH_CONCURRENCY": "8",
		"LOG_LEVEL":           "debug",
		"LOG_FORMAT":          "console",
		"APP_ENV":             "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, domain.ModeCustomServer, cfg.FlightAPI.Mode)
	assert.Equal(t, "3s", cfg.FlightAPI.RequestTimeout.String())
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.Brokers)
	assert.Equal(t, "alerts", cfg.Events.Topic)
	assert.Zero(t, cfg.Refresh.Interval)
	assert.Equal(t, 8, cfg.Refresh.Concurrency)
	assert.True(t, cfg.IsProduction())

	assert.Equal(t, domain.APISettings{
		Mode:   domain.ModeCustomServer,
		Server: "https://proxy.example.com/flights",
		Key:    "secret",
	}, cfg.APISettings())
}

// TestLoad_LegacyModeCodes tests the numeric mode codes.
func TestLoad_LegacyModeCodes(t *testing.T) {
	tests := []struct {
		value string
		want  domain.APIMode
	}{
		{value: "0", want: domain.ModeDefault},
		{value: "1", want: domain.ModeCustomServer},
		{value: "2", want: domain.ModeDirectEndpoint},
		{value: "Direct-Endpoint", want: domain.ModeDirectEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"FLIGHT_API_MODE": tt.value})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.FlightAPI.Mode)
		})
	}
}

// TestLoad_CustomServerWithoutKeyLoads tests that an incomplete API setup is left to fetch time.
func TestLoad_CustomServerWithoutKeyLoads(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"FLIGHT_API_MODE": "custom-server"})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.APISettings().Key)
}

// TestLoad_Validation tests rejected values.
func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		errMsg  string
	}{
		{name: "port too high", envVars: map[string]string{"SERVER_PORT": "70000"}, errMsg: "SERVER_PORT"},
		{name: "port zero", envVars: map[string]string{"SERVER_PORT": "0"}, errMsg: "SERVER_PORT"},
		{name: "negative read timeout", envVars: map[string]string{"SERVER_READ_TIMEOUT": "-1s"}, errMsg: "SERVER_READ_TIMEOUT"},
		{name: "zero api timeout", envVars: map[string]string{"FLIGHT_API_TIMEOUT": "0s"}, errMsg: "FLIGHT_API_TIMEOUT"},
		{name: "unknown mode", envVars: map[string]string{"FLIGHT_API_MODE": "3"}, errMsg: "parse config"},
		{name: "unknown driver", envVars: map[string]string{"STORAGE_DRIVER": "sqlite"}, errMsg: "STORAGE_DRIVER"},
		{name: "postgres without dsn", envVars: map[string]string{"STORAGE_DRIVER": "postgres"}, errMsg: "POSTGRES_DSN"},
		{name: "zero concurrency", envVars: map[string]string{"REFRESH_CONCURRENCY": "0"}, errMsg: "REFRESH_CONCURRENCY"},
		{name: "negative interval", envVars: map[string]string{"REFRESH_INTERVAL": "-1m"}, errMsg: "REFRESH_INTERVAL"},
		{name: "bad log level", envVars: map[string]string{"LOG_LEVEL": "trace"}, errMsg: "LOG_LEVEL"},
		{name: "bad log format", envVars: map[string]string{"LOG_FORMAT": "xml"}, errMsg: "LOG_FORMAT"},
		{name: "bad app env", envVars: map[string]string{"APP_ENV": "qa"}, errMsg: "APP_ENV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.envVars)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "invalid"})

	assert.Panics(t, func() { MustLoad() })
}

func TestConfig_IsDevelopment(t *testing.T) {
	assert.True(t, (&Config{App: AppConfig{Env: "development"}}).IsDevelopment())
	assert.False(t, (&Config{App: AppConfig{Env: "staging"}}).IsDevelopment())
}

// Helper functions

var envVars = []string{
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
	"FLIGHT_API_MODE", "FLIGHT_API_SERVER", "FLIGHT_API_ENDPOINT", "FLIGHT_API_KEY", "FLIGHT_API_TIMEOUT",
	"STORAGE_DRIVER", "MONGO_URI", "MONGO_DATABASE", "POSTGRES_DSN", "STORAGE_CONNECT_TIMEOUT",
	"EVENTS_ENABLED", "KAFKA_BROKERS", "KAFKA_TOPIC",
	"REFRESH_INTERVAL", "REFRESH_CONCURRENCY", "REFRESH_TIMEOUT",
	"LOG_LEVEL", "LOG_FORMAT", "APP_ENV",
}

// clearEnvVars unsets all config-related environment variables for the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables for the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
