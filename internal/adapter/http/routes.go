package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all flight tracker API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware on the API group.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FlightHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/flights")
	flights.POST("", h.TrackFlight)
	flights.GET("", h.ListFlights)
	flights.POST("/refresh", h.RefreshAll)
	flights.GET("/:id", h.GetFlight)
	flights.DELETE("/:id", h.DeleteFlight)
	flights.POST("/:id/refresh", h.RefreshFlight)
	flights.PUT("/:id/boarding-pass", h.AttachBoardingPass)
	flights.PUT("/:id/seat", h.SetSeat)
}

// RegisterOpsRoutes exposes prometheus metrics from gatherer and the swagger UI.
// A nil gatherer serves the default registry.
func RegisterOpsRoutes(e *echo.Echo, gatherer prometheus.Gatherer) {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
