// Package aerodatabox adapts the AeroDataBox flight-status API.
// It builds requests from the user's API settings and normalizes the loosely
// typed response into a domain.FlightRecord.
package aerodatabox

// Response is the body returned by the flight-status endpoint.
// Only the first element is used.
type Response []RootElement

// RootElement is one flight leg as published by the API.
// Every member is optional on the wire; the normalizer decides what is required.
type RootElement struct {
	Number    *string         `json:"number"`
	Status    *string         `json:"status"`
	Departure *FlightEndpoint `json:"departure"`
	Arrival   *FlightEndpoint `json:"arrival"`
	Aircraft  *Aircraft       `json:"aircraft"`
	Airline   *Airline        `json:"airline"`
}

// FlightEndpoint is the departure or arrival side of a leg.
type FlightEndpoint struct {
	Airport       *Airport       `json:"airport"`
	ScheduledTime *ScheduledTime `json:"scheduledTime"`
	Terminal      *string        `json:"terminal"`
	Gate          *string        `json:"gate"`
	BaggageBelt   *string        `json:"baggageBelt"`
	CheckInDesk   *string        `json:"checkInDesk"`
}

// Airport describes an airport.
type Airport struct {
	ICAO        *string   `json:"icao"`
	IATA        *string   `json:"iata"`
	Name        *string   `json:"name"`
	ShortName   *string   `json:"shortName"`
	CountryCode *string   `json:"countryCode"`
	TimeZone    *string   `json:"timeZone"`
	Location    *Location `json:"location"`
}

// Location is a WGS84 coordinate.
type Location struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// ScheduledTime carries the same instant as UTC and airport-local text,
// e.g. {"utc": "2025-01-16 13:40Z", "local": "2025-01-16 20:40+07:00"}.
type ScheduledTime struct {
	UTC   *string `json:"utc"`
	Local *string `json:"local"`
}

// Aircraft describes the scheduled aircraft.
type Aircraft struct {
	Reg   *string        `json:"reg"`
	Model *string        `json:"model"`
	Image *AircraftImage `json:"image"`
}

// AircraftImage is a photo of the aircraft with its licensing metadata.
type AircraftImage struct {
	URL              *string  `json:"url"`
	WebURL           *string  `json:"webUrl"`
	Author           *string  `json:"author"`
	Title            *string  `json:"title"`
	License          *string  `json:"license"`
	HTMLAttributions []string `json:"htmlAttributions"`
}

// Airline describes the operating carrier.
type Airline struct {
	Name *string `json:"name"`
	IATA *string `json:"iata"`
	ICAO *string `json:"icao"`
}

// notFoundBody is the literal body the API returns for an unknown flight.
const notFoundBody = `{"message":"Could not parse server response"}`
