package http

import (
	"strconv"
	"time"

	"github.com/skytrack/flight-tracker/internal/domain"
	"github.com/skytrack/flight-tracker/internal/usecase"
)

// ToFlightDTO converts a domain FlightRecord to a FlightDTO.
func ToFlightDTO(r *domain.FlightRecord) FlightDTO {
	dto := FlightDTO{
		ID:       r.ID,
		CallSign: r.CallSign,
		Airline: AirlineDTO{
			Name: r.Airline.Name,
			IATA: r.Airline.IATA,
			ICAO: r.Airline.ICAO,
		},
		Aircraft:  AircraftDTO{Model: r.Aircraft.Model},
		Departure: toFlightPointDTO(r.Departure),
		Arrival:   toFlightPointDTO(r.Arrival),
		Duration: DurationDTO{
			TotalMinutes: int(r.Duration.Minutes()),
			Formatted:    domain.FormatDuration(r.Duration),
		},
		Seat:         r.Seat,
		BoardingPass: r.BoardingPass,
		Progress:     r.Progress,
	}

	if img := r.Aircraft.Image; img.URL != "" {
		dto.Aircraft.Image = &AircraftImageDTO{
			URL:         img.URL,
			Author:      img.Author,
			AuthorURL:   img.AuthorURL,
			Attribution: img.Attribution,
		}
	}
	if !r.LastUpdate.IsZero() {
		dto.LastUpdate = r.LastUpdate.UTC().Format(time.RFC3339)
	}

	return dto
}

// toFlightPointDTO keeps the airport's own offset in the datetime text.
func toFlightPointDTO(p domain.FlightPoint) FlightPointDTO {
	return FlightPointDTO{
		Airport:     p.IATA,
		ShortName:   p.ShortName,
		CountryCode: p.CountryCode,
		DateTime:    p.DateTime.Format(time.RFC3339),
		Timestamp:   p.DateTime.Unix(),
		TimeZone:    p.TimeZone,
		Terminal:    p.Terminal,
		Gate:        p.Gate,
		BaggageBelt: p.BaggageBelt,
		CheckInDesk: p.CheckInDesk,
		MapX:        p.MapX,
		MapY:        p.MapY,
	}
}

// ToFlightListDTO converts a list of records.
func ToFlightListDTO(records []domain.FlightRecord) FlightListDTO {
	flights := make([]FlightDTO, len(records))
	for i := range records {
		flights[i] = ToFlightDTO(&records[i])
	}
	return FlightListDTO{
		Total:   len(flights),
		Flights: flights,
	}
}

// ToRefreshSummaryDTO converts a refresh summary, keying failures by id text.
func ToRefreshSummaryDTO(s *usecase.RefreshSummary) RefreshSummaryDTO {
	dto := RefreshSummaryDTO{
		Total:      s.Total,
		Refreshed:  s.Refreshed,
		Failed:     s.Failed,
		DurationMs: s.DurationMs,
	}
	if len(s.Failures) > 0 {
		dto.Failures = make(map[string]string, len(s.Failures))
		for id, msg := range s.Failures {
			dto.Failures[strconv.FormatInt(id, 10)] = msg
		}
	}
	return dto
}
