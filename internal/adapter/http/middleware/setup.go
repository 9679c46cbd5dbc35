package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skytrack/flight-tracker/internal/infrastructure/metrics"
)

// Setup registers all middleware on the Echo instance in order:
//  1. RequestID, so every later log line and event carries it
//  2. Metrics, which sees the final status of every request
//  3. RequestLogger
//  4. Recover, innermost, turning handler panics into 500s
//
// m may be nil, in which case requests are not metered.
func Setup(e *echo.Echo, log zerolog.Logger, m *metrics.Metrics) {
	e.Use(Chain(log, m)...)
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, m *metrics.Metrics, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	if m != nil {
		e.Use(Metrics(m))
	}
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}

// Chain returns the middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, m *metrics.Metrics) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{RequestID()}
	if m != nil {
		chain = append(chain, Metrics(m))
	}
	return append(chain, RequestLogger(log), Recover(log))
}
