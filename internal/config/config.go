// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/skytrack/flight-tracker/internal/domain"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	FlightAPI FlightAPIConfig
	Storage   StorageConfig
	Events    EventsConfig
	Refresh   RefreshConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// FlightAPIConfig holds the user's flight API preferences.
// An incomplete combination is not a startup error: fetches report it as api_key_missing.
type FlightAPIConfig struct {
	Mode           domain.APIMode `env:"FLIGHT_API_MODE" envDefault:"default"`
	Server         string         `env:"FLIGHT_API_SERVER"`
	Endpoint       string         `env:"FLIGHT_API_ENDPOINT"`
	Key            string         `env:"FLIGHT_API_KEY"`
	RequestTimeout time.Duration  `env:"FLIGHT_API_TIMEOUT" envDefault:"10s"`
}

// StorageConfig selects and configures the flight store.
type StorageConfig struct {
	Driver         string        `env:"STORAGE_DRIVER" envDefault:"memory"`
	MongoURI       string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase  string        `env:"MONGO_DATABASE" envDefault:"flight_tracker"`
	PostgresDSN    string        `env:"POSTGRES_DSN"`
	ConnectTimeout time.Duration `env:"STORAGE_CONNECT_TIMEOUT" envDefault:"10s"`
}

// EventsConfig holds the Kafka publisher settings.
type EventsConfig struct {
	Enabled bool     `env:"EVENTS_ENABLED" envDefault:"false"`
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"flight-events"`
}

// RefreshConfig holds the scheduled refresh settings.
type RefreshConfig struct {
	// Interval between scheduled refreshes; zero disables them
	Interval         time.Duration `env:"REFRESH_INTERVAL" envDefault:"15m"`
	Concurrency      int           `env:"REFRESH_CONCURRENCY" envDefault:"4"`
	PerFlightTimeout time.Duration `env:"REFRESH_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.FlightAPI.RequestTimeout <= 0 {
		return fmt.Errorf("FLIGHT_API_TIMEOUT must be positive")
	}

	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverMongo:
		if cfg.Storage.MongoURI == "" || cfg.Storage.MongoDatabase == "" {
			return fmt.Errorf("MONGO_URI and MONGO_DATABASE are required for STORAGE_DRIVER=mongo")
		}
	case DriverPostgres:
		if cfg.Storage.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of: memory, mongo, postgres; got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.ConnectTimeout <= 0 {
		return fmt.Errorf("STORAGE_CONNECT_TIMEOUT must be positive")
	}

	if cfg.Events.Enabled {
		if len(cfg.Events.Brokers) == 0 || cfg.Events.Topic == "" {
			return fmt.Errorf("KAFKA_BROKERS and KAFKA_TOPIC are required when EVENTS_ENABLED=true")
		}
	}

	if cfg.Refresh.Interval < 0 {
		return fmt.Errorf("REFRESH_INTERVAL must not be negative")
	}
	if cfg.Refresh.Concurrency < 1 {
		return fmt.Errorf("REFRESH_CONCURRENCY must be at least 1, got %d", cfg.Refresh.Concurrency)
	}
	if cfg.Refresh.PerFlightTimeout <= 0 {
		return fmt.Errorf("REFRESH_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// APISettings returns the snapshot of flight API preferences used by fetches.
func (c *Config) APISettings() domain.APISettings {
	return domain.APISettings{
		Mode:     c.FlightAPI.Mode,
		Server:   c.FlightAPI.Server,
		Endpoint: c.FlightAPI.Endpoint,
		Key:      c.FlightAPI.Key,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
