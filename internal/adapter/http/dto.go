package http

// FlightDTO is the data transfer object for tracked flight responses.
type FlightDTO struct {
	ID           int64          `json:"id" example:"1"`
	CallSign     string         `json:"call_sign" example:"VJ 84"`
	Airline      AirlineDTO     `json:"airline"`
	Aircraft     AircraftDTO    `json:"aircraft"`
	Departure    FlightPointDTO `json:"departure"`
	Arrival      FlightPointDTO `json:"arrival"`
	Duration     DurationDTO    `json:"duration"`
	Seat         string         `json:"seat,omitempty" example:"12A"`
	BoardingPass string         `json:"boarding_pass,omitempty"`
	Progress     int            `json:"progress" example:"50"`
	LastUpdate   string         `json:"last_update" example:"2025-01-16T10:00:00Z"`
}

// AirlineDTO represents airline information.
type AirlineDTO struct {
	Name string `json:"name" example:"VietJet Air"`
	IATA string `json:"iata" example:"VJ"`
	ICAO string `json:"icao" example:"VJC"`
}

// AircraftDTO describes the scheduled aircraft and its photo, if any.
type AircraftDTO struct {
	Model string            `json:"model" example:"Airbus A330"`
	Image *AircraftImageDTO `json:"image,omitempty"`
}

// AircraftImageDTO holds photo metadata.
type AircraftImageDTO struct {
	URL         string `json:"url"`
	Author      string `json:"author"`
	AuthorURL   string `json:"author_url"`
	Attribution string `json:"attribution"`
}

// FlightPointDTO represents a departure or arrival point.
type FlightPointDTO struct {
	Airport     string  `json:"airport" example:"SGN"`
	ShortName   string  `json:"short_name" example:"Tan Son Nhat"`
	CountryCode string  `json:"country_code" example:"VN"`
	DateTime    string  `json:"datetime" example:"2025-01-16T20:40:00+07:00"`
	Timestamp   int64   `json:"timestamp"`
	TimeZone    string  `json:"timezone" example:"Asia/Ho_Chi_Minh"`
	Terminal    string  `json:"terminal"`
	Gate        string  `json:"gate"`
	BaggageBelt string  `json:"baggage_belt"`
	CheckInDesk string  `json:"check_in_desk"`
	MapX        float64 `json:"map_x"`
	MapY        float64 `json:"map_y"`
}

// DurationDTO represents flight duration.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes" example:"505"`
	Formatted    string `json:"formatted" example:"8h 25m"`
}

// FlightListDTO is the response of the list endpoint.
type FlightListDTO struct {
	Total   int         `json:"total"`
	Flights []FlightDTO `json:"flights"`
}

// RefreshSummaryDTO reports the outcome of a refresh of all flights.
type RefreshSummaryDTO struct {
	Total      int               `json:"total"`
	Refreshed  int               `json:"refreshed"`
	Failed     int               `json:"failed"`
	Failures   map[string]string `json:"failures,omitempty"`
	DurationMs int64             `json:"duration_ms"`
}
