package mongo

import (
	"fmt"
	"time"

	"github.com/skytrack/flight-tracker/internal/domain"
	"github.com/skytrack/flight-tracker/internal/infrastructure/timeutil"
)

// flightDocument is the stored shape of a FlightRecord.
// Scheduled times are kept as local text: BSON dates drop the UTC offset.
type flightDocument struct {
	ID           int64           `bson:"_id"`
	CallSign     string          `bson:"callSign"`
	DepartKey    string          `bson:"departKey"`
	DepartAt     time.Time       `bson:"departAt"`
	Airline      airlineDocument `bson:"airline"`
	Aircraft     aircraftDoc     `bson:"aircraft"`
	Departure    pointDocument   `bson:"departure"`
	Arrival      pointDocument   `bson:"arrival"`
	DurationMin  int64           `bson:"durationMin"`
	Seat         string          `bson:"seat,omitempty"`
	BoardingPass string          `bson:"boardingPass,omitempty"`
	LastUpdate   time.Time       `bson:"lastUpdate"`
}

type airlineDocument struct {
	Name string `bson:"name"`
	IATA string `bson:"iata"`
	ICAO string `bson:"icao"`
}

type aircraftDoc struct {
	Model            string `bson:"model"`
	ImageURL         string `bson:"imageUrl"`
	ImageAuthor      string `bson:"imageAuthor"`
	ImageAuthorURL   string `bson:"imageAuthorUrl"`
	ImageAttribution string `bson:"imageAttribution"`
}

type pointDocument struct {
	IATA        string  `bson:"iata"`
	ShortName   string  `bson:"shortName"`
	CountryCode string  `bson:"countryCode"`
	DateTime    string  `bson:"dateTime"`
	TimeZone    string  `bson:"timeZone"`
	Terminal    string  `bson:"terminal"`
	Gate        string  `bson:"gate"`
	BaggageBelt string  `bson:"baggageBelt"`
	CheckInDesk string  `bson:"checkInDesk"`
	MapX        float64 `bson:"mapX"`
	MapY        float64 `bson:"mapY"`
}

func toDocument(r *domain.FlightRecord) flightDocument {
	return flightDocument{
		ID:        r.ID,
		CallSign:  r.CallSign,
		DepartKey: r.DepartKey(),
		DepartAt:  r.Departure.DateTime.UTC(),
		Airline: airlineDocument{
			Name: r.Airline.Name,
			IATA: r.Airline.IATA,
			ICAO: r.Airline.ICAO,
		},
		Aircraft: aircraftDoc{
			Model:            r.Aircraft.Model,
			ImageURL:         r.Aircraft.Image.URL,
			ImageAuthor:      r.Aircraft.Image.Author,
			ImageAuthorURL:   r.Aircraft.Image.AuthorURL,
			ImageAttribution: r.Aircraft.Image.Attribution,
		},
		Departure:    toPointDocument(r.Departure),
		Arrival:      toPointDocument(r.Arrival),
		DurationMin:  int64(r.Duration / time.Minute),
		Seat:         r.Seat,
		BoardingPass: r.BoardingPass,
		LastUpdate:   r.LastUpdate.UTC(),
	}
}

func toPointDocument(p domain.FlightPoint) pointDocument {
	return pointDocument{
		IATA:        p.IATA,
		ShortName:   p.ShortName,
		CountryCode: p.CountryCode,
		DateTime:    p.DateTime.Format(domain.LocalDateTimeLayout),
		TimeZone:    p.TimeZone,
		Terminal:    p.Terminal,
		Gate:        p.Gate,
		BaggageBelt: p.BaggageBelt,
		CheckInDesk: p.CheckInDesk,
		MapX:        p.MapX,
		MapY:        p.MapY,
	}
}

func (d flightDocument) toRecord() (*domain.FlightRecord, error) {
	dep, err := d.Departure.toPoint()
	if err != nil {
		return nil, fmt.Errorf("flight %d departure: %w", d.ID, err)
	}
	arr, err := d.Arrival.toPoint()
	if err != nil {
		return nil, fmt.Errorf("flight %d arrival: %w", d.ID, err)
	}

	return &domain.FlightRecord{
		ID:       d.ID,
		CallSign: d.CallSign,
		Airline: domain.AirlineInfo{
			Name: d.Airline.Name,
			IATA: d.Airline.IATA,
			ICAO: d.Airline.ICAO,
		},
		Aircraft: domain.AircraftInfo{
			Model: d.Aircraft.Model,
			Image: domain.AircraftImage{
				URL:         d.Aircraft.ImageURL,
				Author:      d.Aircraft.ImageAuthor,
				AuthorURL:   d.Aircraft.ImageAuthorURL,
				Attribution: d.Aircraft.ImageAttribution,
			},
		},
		Departure:    dep,
		Arrival:      arr,
		Duration:     time.Duration(d.DurationMin) * time.Minute,
		Seat:         d.Seat,
		BoardingPass: d.BoardingPass,
		LastUpdate:   d.LastUpdate,
	}, nil
}

func (p pointDocument) toPoint() (domain.FlightPoint, error) {
	dt, err := timeutil.ParseDateTime(p.DateTime)
	if err != nil {
		return domain.FlightPoint{}, err
	}
	return domain.FlightPoint{
		IATA:        p.IATA,
		ShortName:   p.ShortName,
		CountryCode: p.CountryCode,
		DateTime:    dt,
		TimeZone:    p.TimeZone,
		Terminal:    p.Terminal,
		Gate:        p.Gate,
		BaggageBelt: p.BaggageBelt,
		CheckInDesk: p.CheckInDesk,
		MapX:        p.MapX,
		MapY:        p.MapY,
	}, nil
}
