// Package http provides the HTTP handler layer for the flight tracker API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skytrack/flight-tracker/internal/boardingpass"
)

// TrackFlightRequest represents the request body for tracking a new flight.
type TrackFlightRequest struct {
	// FlightNumber is the carrier code plus number (e.g., "VJ84" or "VJ 84")
	FlightNumber string `json:"flightNumber" example:"VJ84"`

	// Date is the scheduled local departure date in YYYY-MM-DD format
	Date string `json:"date" example:"2025-01-16"`
}

// BoardingPassRequest carries a raw IATA BCBP barcode string.
type BoardingPassRequest struct {
	Raw string `json:"raw" example:"M1NGUYEN/VAN AN       EABC123 SGNMELVJ 0084 016Y012A0042 100"`
}

// SeatRequest sets or clears the seat of a tracked flight.
type SeatRequest struct {
	// Seat is a row plus letter (e.g., "12A"); empty clears it
	Seat string `json:"seat" example:"12A"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the shape of the request and normalizes the flight number.
// The tracker applies the full flight number rules.
func (r *TrackFlightRequest) Validate() error {
	errs := &ValidationErrors{}

	r.FlightNumber = strings.ToUpper(strings.TrimSpace(r.FlightNumber))
	switch {
	case r.FlightNumber == "":
		errs.Add("flightNumber", "flightNumber is required")
	case len(r.FlightNumber) > 10:
		errs.Add("flightNumber", "flightNumber is too long")
	}

	r.Date = strings.TrimSpace(r.Date)
	if r.Date == "" {
		errs.Add("date", "date is required")
	} else if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		errs.Add("date", "date must be a valid date in YYYY-MM-DD format")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks that the barcode is long enough to hold the mandatory items.
func (r *BoardingPassRequest) Validate() error {
	errs := &ValidationErrors{}

	switch {
	case strings.TrimSpace(r.Raw) == "":
		errs.Add("raw", "raw is required")
	case len(r.Raw) < boardingpass.MinLength:
		errs.Add("raw", "raw must be at least "+strconv.Itoa(boardingpass.MinLength)+" characters")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate normalizes the seat. Format rules live in the tracker.
func (r *SeatRequest) Validate() error {
	r.Seat = strings.ToUpper(strings.TrimSpace(r.Seat))
	if len(r.Seat) > 4 {
		errs := &ValidationErrors{}
		errs.Add("seat", "seat must look like 12A")
		return errs
	}
	return nil
}

// parseID reads the positive numeric :id path parameter.
func parseID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errs := &ValidationErrors{}
		errs.Add("id", "id must be a positive integer")
		return 0, errs
	}
	return id, nil
}
