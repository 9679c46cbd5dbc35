package aerodatabox

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skytrack/flight-tracker/internal/domain"
	"github.com/skytrack/flight-tracker/internal/infrastructure/geo"
	"github.com/skytrack/flight-tracker/internal/infrastructure/timeutil"
)

// Fallbacks for non-critical fields.
const (
	// DefaultText replaces missing business fields (airline, aircraft model).
	DefaultText = "N/A"

	// DefaultLocation replaces missing physical locations (terminal, gate, belt, desk).
	DefaultLocation = "—"

	// DefaultImage replaces missing image metadata.
	DefaultImage = ""
)

// Normalizer converts a raw API response into a domain.FlightRecord.
type Normalizer struct {
	log   zerolog.Logger
	clock timeutil.Clock
}

// NewNormalizer creates a Normalizer. A nil clock uses the system time.
func NewNormalizer(log zerolog.Logger, clock timeutil.Clock) *Normalizer {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Normalizer{log: log, clock: clock}
}

// endpoint is a departure or arrival side whose critical fields are all present.
type endpoint struct {
	iata        string
	countryCode string
	shortName   string
	utc         string
	local       string
	timeZone    string
	lat         float64
	lon         float64
	raw         *FlightEndpoint
}

// Parse normalizes the first root element of resp.
// It returns a *domain.MissingCriticalDataError for the first absent critical field,
// a *domain.InvalidCoordinateError for out-of-range airport coordinates, and
// wrapped parse errors for malformed times or zone ids. No partial record is returned.
func (n *Normalizer) Parse(resp Response) (*domain.FlightRecord, error) {
	if len(resp) == 0 {
		return nil, &domain.MissingCriticalDataError{
			Field:   "JSON root",
			Message: "JSON root is null or empty",
		}
	}
	root := resp[0]

	callSign, ok := present(root.Number)
	if !ok {
		return nil, domain.NewMissingCriticalData("Call sign (number)")
	}

	dep, err := requireEndpoint(root.Departure, "Departure")
	if err != nil {
		return nil, err
	}
	arr, err := requireEndpoint(root.Arrival, "Arrival")
	if err != nil {
		return nil, err
	}

	log := n.log.With().Str("call_sign", callSign).Logger()

	departure, departUTC, err := n.buildPoint(log, dep, "Departure")
	if err != nil {
		return nil, err
	}
	arrival, arriveUTC, err := n.buildPoint(log, arr, "Arrival")
	if err != nil {
		return nil, err
	}

	return &domain.FlightRecord{
		ID:         0,
		CallSign:   callSign,
		Airline:    airlineInfo(log, root.Airline),
		Aircraft:   aircraftInfo(log, root.Aircraft),
		Departure:  departure,
		Arrival:    arrival,
		Duration:   arriveUTC.Sub(departUTC),
		LastUpdate: n.clock.Now(),
	}, nil
}

// requireEndpoint runs the presence chain for one side, in a fixed order.
func requireEndpoint(raw *FlightEndpoint, side string) (endpoint, error) {
	missing := func(what string) (endpoint, error) {
		return endpoint{}, domain.NewMissingCriticalData(side + " " + what)
	}

	if raw == nil {
		return missing("data")
	}
	airport := raw.Airport
	if airport == nil {
		return missing("airport")
	}

	ep := endpoint{raw: raw}
	var ok bool
	if ep.iata, ok = present(airport.IATA); !ok {
		return missing("airport IATA")
	}
	if ep.countryCode, ok = present(airport.CountryCode); !ok {
		return missing("airport country code")
	}
	if ep.shortName, ok = present(airport.ShortName); !ok {
		return missing("airport short name")
	}

	if raw.ScheduledTime == nil {
		return missing("scheduled time")
	}
	if ep.utc, ok = present(raw.ScheduledTime.UTC); !ok {
		return missing("UTC time")
	}
	if ep.local, ok = present(raw.ScheduledTime.Local); !ok {
		return missing("local time")
	}

	if ep.timeZone, ok = present(airport.TimeZone); !ok {
		return missing("airport time zone")
	}

	if airport.Location == nil {
		return missing("airport location")
	}
	if airport.Location.Lat == nil {
		return missing("airport latitude")
	}
	if airport.Location.Lon == nil {
		return missing("airport longitude")
	}
	ep.lat = *airport.Location.Lat
	ep.lon = *airport.Location.Lon

	return ep, nil
}

// buildPoint derives schedule, zone and map position for a validated side.
// It also returns the UTC instant used for the duration.
func (n *Normalizer) buildPoint(log zerolog.Logger, ep endpoint, side string) (domain.FlightPoint, time.Time, error) {
	localTime, err := timeutil.ParseDateTime(ep.local)
	if err != nil {
		return domain.FlightPoint{}, time.Time{}, err
	}
	utcTime, err := timeutil.ParseDateTime(ep.utc)
	if err != nil {
		return domain.FlightPoint{}, time.Time{}, err
	}
	loc, err := timeutil.GetLocation(ep.timeZone)
	if err != nil {
		return domain.FlightPoint{}, time.Time{}, err
	}

	x, y, err := geo.ProjectNormalized(ep.lat, ep.lon)
	if err != nil {
		return domain.FlightPoint{}, time.Time{}, err
	}

	return domain.FlightPoint{
		IATA:        ep.iata,
		ShortName:   ep.shortName,
		CountryCode: ep.countryCode,
		DateTime:    localTime,
		TimeZone:    loc.String(),
		Terminal:    fallback(log, ep.raw.Terminal, DefaultLocation, side+" terminal"),
		Gate:        fallback(log, ep.raw.Gate, DefaultLocation, side+" gate"),
		BaggageBelt: fallback(log, ep.raw.BaggageBelt, DefaultLocation, side+" baggage belt"),
		CheckInDesk: fallback(log, ep.raw.CheckInDesk, DefaultLocation, side+" check-in desk"),
		MapX:        x,
		MapY:        y,
	}, utcTime, nil
}

func airlineInfo(log zerolog.Logger, raw *Airline) domain.AirlineInfo {
	if raw == nil {
		raw = &Airline{}
	}
	return domain.AirlineInfo{
		Name: fallback(log, raw.Name, DefaultText, "Airline name"),
		IATA: fallback(log, raw.IATA, DefaultText, "Airline IATA"),
		ICAO: fallback(log, raw.ICAO, DefaultText, "Airline ICAO"),
	}
}

func aircraftInfo(log zerolog.Logger, raw *Aircraft) domain.AircraftInfo {
	if raw == nil {
		raw = &Aircraft{}
	}
	image := raw.Image
	if image == nil {
		image = &AircraftImage{}
	}

	var attribution *string
	if joined := strings.Join(image.HTMLAttributions, " "); joined != "" {
		attribution = &joined
	}

	return domain.AircraftInfo{
		Model: fallback(log, raw.Model, DefaultText, "Aircraft model"),
		Image: domain.AircraftImage{
			URL:         fallback(log, image.URL, DefaultImage, "Aircraft image url"),
			Author:      fallback(log, image.Author, DefaultImage, "Aircraft image author"),
			AuthorURL:   fallback(log, image.WebURL, DefaultImage, "Aircraft image web url"),
			Attribution: fallback(log, attribution, DefaultImage, "Aircraft image attribution"),
		},
	}
}

// present returns the trimmed value of s and whether it is non-blank.
func present(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}

// fallback returns the value of s, or def with a warning when s is null or blank.
func fallback(log zerolog.Logger, s *string, def, field string) string {
	if v, ok := present(s); ok {
		return v
	}
	log.Warn().Str("field", field).Str("default", def).Msg("Non-critical field missing, using default")
	return def
}
