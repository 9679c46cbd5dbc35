package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skytrack/flight-tracker/internal/adapter/http/response"
	"github.com/skytrack/flight-tracker/internal/domain"
	"github.com/skytrack/flight-tracker/internal/usecase"
)

// FlightHandler handles HTTP requests for tracked flight endpoints.
type FlightHandler struct {
	tracker usecase.FlightTracker
	storage string
}

// NewFlightHandler creates a new FlightHandler.
// storage names the active store driver and is reported by the health check.
func NewFlightHandler(tracker usecase.FlightTracker, storage string) *FlightHandler {
	return &FlightHandler{
		tracker: tracker,
		storage: storage,
	}
}

// TrackFlight handles POST /api/v1/flights
//
// @Summary Track a flight
// @Description Fetch a flight from the flight API and add it to the tracked flights
// @Tags flights
// @Accept json
// @Produce json
// @Param request body TrackFlightRequest true "Flight number and departure date"
// @Success 201 {object} FlightDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Flight not found"
// @Failure 409 {object} response.ErrorDetail "Flight already tracked"
// @Failure 422 {object} response.ErrorDetail "Incomplete flight data"
// @Failure 502 {object} response.ErrorDetail "Flight API error"
// @Failure 503 {object} response.ErrorDetail "Flight API not configured"
// @Router /api/v1/flights [post]
func (h *FlightHandler) TrackFlight(c echo.Context) error {
	var req TrackFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	record, err := h.tracker.Track(c.Request().Context(), req.FlightNumber, req.Date)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, ToFlightDTO(record))
}

// ListFlights handles GET /api/v1/flights
//
// @Summary List tracked flights
// @Tags flights
// @Produce json
// @Success 200 {object} FlightListDTO
// @Failure 500 {object} response.ErrorDetail
// @Router /api/v1/flights [get]
func (h *FlightHandler) ListFlights(c echo.Context) error {
	records, err := h.tracker.List(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToFlightListDTO(records))
}

// GetFlight handles GET /api/v1/flights/:id
//
// @Summary Get a tracked flight
// @Tags flights
// @Produce json
// @Param id path int true "Flight ID"
// @Success 200 {object} FlightDTO
// @Failure 400 {object} response.ErrorDetail
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/flights/{id} [get]
func (h *FlightHandler) GetFlight(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	record, err := h.tracker.Get(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToFlightDTO(record))
}

// DeleteFlight handles DELETE /api/v1/flights/:id
//
// @Summary Stop tracking a flight
// @Tags flights
// @Param id path int true "Flight ID"
// @Success 204
// @Failure 400 {object} response.ErrorDetail
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/flights/{id} [delete]
func (h *FlightHandler) DeleteFlight(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	if err := h.tracker.Delete(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// RefreshFlight handles POST /api/v1/flights/:id/refresh
//
// @Summary Refresh a tracked flight
// @Description Re-fetch the flight from the flight API, keeping seat and boarding pass
// @Tags flights
// @Produce json
// @Param id path int true "Flight ID"
// @Success 200 {object} FlightDTO
// @Failure 400 {object} response.ErrorDetail
// @Failure 404 {object} response.ErrorDetail
// @Failure 502 {object} response.ErrorDetail
// @Router /api/v1/flights/{id}/refresh [post]
func (h *FlightHandler) RefreshFlight(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	record, err := h.tracker.Refresh(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToFlightDTO(record))
}

// RefreshAll handles POST /api/v1/flights/refresh
//
// @Summary Refresh all tracked flights
// @Tags flights
// @Produce json
// @Success 200 {object} RefreshSummaryDTO
// @Failure 500 {object} response.ErrorDetail
// @Router /api/v1/flights/refresh [post]
func (h *FlightHandler) RefreshAll(c echo.Context) error {
	summary, err := h.tracker.RefreshAll(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToRefreshSummaryDTO(summary))
}

// AttachBoardingPass handles PUT /api/v1/flights/:id/boarding-pass
//
// @Summary Attach a boarding pass
// @Description Decode an IATA BCBP barcode and store it with its seat
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Param request body BoardingPassRequest true "Raw barcode"
// @Success 200 {object} FlightDTO
// @Failure 400 {object} response.ErrorDetail
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/flights/{id}/boarding-pass [put]
func (h *FlightHandler) AttachBoardingPass(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	var req BoardingPassRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	record, err := h.tracker.AttachBoardingPass(c.Request().Context(), id, req.Raw)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToFlightDTO(record))
}

// SetSeat handles PUT /api/v1/flights/:id/seat
//
// @Summary Set the seat of a tracked flight
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Param request body SeatRequest true "Seat"
// @Success 200 {object} FlightDTO
// @Failure 400 {object} response.ErrorDetail
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/flights/{id}/seat [put]
func (h *FlightHandler) SetSeat(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	var req SeatRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	record, err := h.tracker.SetSeat(c.Request().Context(), id, req.Seat)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToFlightDTO(record))
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c, h.storage)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if domain.IsRecordNotFound(err) {
		return response.NotFound(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	var fe *domain.FetchError
	if errors.As(err, &fe) {
		return response.FetchFailure(c, fe.Kind, fe.Err)
	}

	// Default to internal server error
	return response.InternalServerError(c)
}
