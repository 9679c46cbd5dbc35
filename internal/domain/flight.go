// Package domain contains the core business entities and rules for the flight tracker.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"time"
)

// LocalDateTimeLayout is the canonical text form of a scheduled local date-time.
// Stores use it to persist and compare departure dates without losing the wall clock.
const LocalDateTimeLayout = "2006-01-02 15:04Z07:00"

// FlightRecord is the canonical, fully-populated tracked flight.
// A record is either built from a complete API response or not built at all.
type FlightRecord struct {
	// ID is assigned by the store on insert; 0 means not yet persisted
	ID int64 `json:"id"`

	// CallSign is the carrier code plus flight number (e.g., "VJ 84")
	CallSign string `json:"callSign"`

	// Airline contains information about the operating airline
	Airline AirlineInfo `json:"airline"`

	// Aircraft contains the aircraft model and optional photo metadata
	Aircraft AircraftInfo `json:"aircraft"`

	// Departure contains origin airport, schedule and map position
	Departure FlightPoint `json:"departure"`

	// Arrival contains destination airport, schedule and map position
	Arrival FlightPoint `json:"arrival"`

	// Duration is computed from the UTC scheduled times
	Duration time.Duration `json:"duration"`

	// Seat is attached by the user, usually from the boarding pass
	Seat string `json:"seat,omitempty"`

	// BoardingPass is the raw BCBP barcode string
	BoardingPass string `json:"boardingPass,omitempty"`

	// Progress is the flight completion percentage (0-100)
	Progress int `json:"progress"`

	// LastUpdate is when the record was last normalized from the API
	LastUpdate time.Time `json:"lastUpdate"`
}

// AirlineInfo contains information about an airline.
type AirlineInfo struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
}

// AircraftInfo describes the scheduled aircraft.
type AircraftInfo struct {
	Model string        `json:"model"`
	Image AircraftImage `json:"image"`
}

// AircraftImage holds photo metadata for the aircraft.
// All fields are empty when the API returned no image.
type AircraftImage struct {
	URL         string `json:"url"`
	Author      string `json:"author"`
	AuthorURL   string `json:"authorUrl"`
	Attribution string `json:"attribution"`
}

// FlightPoint represents one end of a flight (departure or arrival).
type FlightPoint struct {
	// IATA is the airport code (e.g., "SGN")
	IATA string `json:"iata"`

	// ShortName is the short airport name (e.g., "Tan Son Nhat")
	ShortName string `json:"shortName"`

	// CountryCode is the ISO 3166-1 alpha-2 country code
	CountryCode string `json:"countryCode"`

	// DateTime is the scheduled local date-time, wall clock as published by the airport
	DateTime time.Time `json:"dateTime"`

	// TimeZone is the IANA zone identifier of the airport (e.g., "Asia/Ho_Chi_Minh")
	TimeZone string `json:"timeZone"`

	Terminal    string `json:"terminal"`
	Gate        string `json:"gate"`
	BaggageBelt string `json:"baggageBelt"`
	CheckInDesk string `json:"checkInDesk"`

	// MapX and MapY are the normalized projected map coordinates
	MapX float64 `json:"mapX"`
	MapY float64 `json:"mapY"`
}

// DepartKey returns the text form of the departure date used for duplicate detection.
func (r *FlightRecord) DepartKey() string {
	return r.Departure.DateTime.Format(LocalDateTimeLayout)
}

// ProgressAt returns how far along the flight is at the given instant, as a percentage.
func (r *FlightRecord) ProgressAt(now time.Time) int {
	start := r.Departure.DateTime
	end := r.Arrival.DateTime
	if !end.After(start) {
		return 0
	}

	switch {
	case !now.After(start):
		return 0
	case !now.Before(end):
		return 100
	}

	return int(now.Sub(start) * 100 / end.Sub(start))
}

// CarryUserFields copies the user-attached fields of prev onto r.
// Used when a refreshed record replaces a stored one.
func (r *FlightRecord) CarryUserFields(prev *FlightRecord) {
	r.ID = prev.ID
	r.Seat = prev.Seat
	r.BoardingPass = prev.BoardingPass
}

// FormatDuration formats a duration as "Xh Ym".
func FormatDuration(d time.Duration) string {
	totalMinutes := int(d.Minutes())
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
