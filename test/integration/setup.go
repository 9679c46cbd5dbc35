// Package integration provides helpers and integration tests for the flight tracker.
// Integration tests verify that components work together correctly: the HTTP
// handlers, the tracker and fetcher, the AeroDataBox client and the memory store,
// with only the remote flight API replaced by a fake server.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	httpAdapter "github.com/skytrack/flight-tracker/internal/adapter/http"
	"github.com/skytrack/flight-tracker/internal/adapter/http/middleware"
	"github.com/skytrack/flight-tracker/internal/adapter/provider/aerodatabox"
	"github.com/skytrack/flight-tracker/internal/adapter/storage/memory"
	"github.com/skytrack/flight-tracker/internal/domain"
	"github.com/skytrack/flight-tracker/internal/infrastructure/metrics"
	"github.com/skytrack/flight-tracker/internal/infrastructure/timeutil"
	"github.com/skytrack/flight-tracker/internal/usecase"
	"github.com/skytrack/flight-tracker/test/mock"
)

const (
	// FlightDate is the departure date of the fixture flight.
	FlightDate = "2025-01-16"

	// MidFlight is halfway between the fixture's departure and arrival.
	MidFlight = "2025-01-16T17:52:30Z"

	testAPIKey = "test-key"
)

// Options customises a test server.
type Options struct {
	// Settings overrides the API settings; by default the custom server mode
	// pointed at the fake API is used
	Settings *domain.APISettings

	// HTTPTimeout bounds a single call to the flight API
	HTTPTimeout time.Duration

	// Tracker overrides refresh concurrency and timeout
	Tracker usecase.TrackerConfig
}

// TestServer wraps an Echo instance and the real tracker stack for integration testing.
type TestServer struct {
	Echo      *echo.Echo
	Handler   *httpAdapter.FlightHandler
	Tracker   usecase.FlightTracker
	Store     *memory.Store
	API       *mock.FlightAPI
	Publisher *mock.Publisher
	Clock     *timeutil.MockClock
	Registry  *prometheus.Registry
}

// NewTestServer creates a test server backed by api.
func NewTestServer(api *mock.FlightAPI) *TestServer {
	return NewTestServerWithOptions(api, Options{})
}

// NewTestServerWithOptions creates a test server with custom options.
func NewTestServerWithOptions(api *mock.FlightAPI, opts Options) *TestServer {
	if opts.HTTPTimeout <= 0 {
		opts.HTTPTimeout = 2 * time.Second
	}
	settings := domain.APISettings{Mode: domain.ModeCustomServer, Server: api.URL(), Key: testAPIKey}
	if opts.Settings != nil {
		settings = *opts.Settings
	}

	log := zerolog.Nop()
	clock := timeutil.NewMockClockFromString(MidFlight)
	registry := prometheus.NewRegistry()
	m := metrics.New(metrics.DefaultNamespace, registry)
	store := memory.NewStore()
	publisher := mock.NewPublisher()

	source := aerodatabox.NewClient(
		aerodatabox.NewHTTPClient(opts.HTTPTimeout),
		aerodatabox.NewNormalizer(log, clock),
		log,
	)
	fetcher := usecase.NewFlightFetcher(source, store, m, log)

	cfg := opts.Tracker
	cfg.Settings = settings
	tracker := usecase.NewFlightTracker(fetcher, store, publisher, clock, m, cfg, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, log, m)
	handler := httpAdapter.NewFlightHandler(tracker, "memory")
	httpAdapter.RegisterRoutes(e, handler)
	httpAdapter.RegisterOpsRoutes(e, registry)

	return &TestServer{
		Echo:      e,
		Handler:   handler,
		Tracker:   tracker,
		Store:     store,
		API:       api,
		Publisher: publisher,
		Clock:     clock,
		Registry:  registry,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	contentType := req.ContentType
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	httpReq.Header.Set(echo.HeaderContentType, contentType)

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Track posts a track request.
func (ts *TestServer) Track(flightNumber, date string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights",
		Body:   map[string]string{"flightNumber": flightNumber, "date": date},
	})
}

// MustTrack tracks a flight and returns the stored DTO. It panics on failure.
func (ts *TestServer) MustTrack(flightNumber, date string) *httpAdapter.FlightDTO {
	resp := ts.Track(flightNumber, date)
	if resp.Code != http.StatusCreated {
		panic(fmt.Sprintf("track %s: HTTP %d: %s", flightNumber, resp.Code, resp.Body))
	}
	flight, err := resp.ParseFlight()
	if err != nil {
		panic(err)
	}
	return flight
}

// List gets the tracked flights.
func (ts *TestServer) List() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/flights"})
}

// Get gets one tracked flight.
func (ts *TestServer) Get(id int64) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: flightPath(id, "")})
}

// Delete deletes one tracked flight.
func (ts *TestServer) Delete(id int64) Response {
	return ts.Do(Request{Method: http.MethodDelete, Path: flightPath(id, "")})
}

// Refresh refreshes one tracked flight.
func (ts *TestServer) Refresh(id int64) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: flightPath(id, "/refresh")})
}

// RefreshAll refreshes every tracked flight.
func (ts *TestServer) RefreshAll() Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/flights/refresh"})
}

// AttachBoardingPass stores a raw BCBP barcode on a flight.
func (ts *TestServer) AttachBoardingPass(id int64, raw string) Response {
	return ts.Do(Request{
		Method: http.MethodPut,
		Path:   flightPath(id, "/boarding-pass"),
		Body:   map[string]string{"raw": raw},
	})
}

// SetSeat stores a seat on a flight.
func (ts *TestServer) SetSeat(id int64, seat string) Response {
	return ts.Do(Request{
		Method: http.MethodPut,
		Path:   flightPath(id, "/seat"),
		Body:   map[string]string{"seat": seat},
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

func flightPath(id int64, suffix string) string {
	return fmt.Sprintf("/api/v1/flights/%d%s", id, suffix)
}

// ParseFlight parses the response body as a FlightDTO.
func (r Response) ParseFlight() (*httpAdapter.FlightDTO, error) {
	var flight httpAdapter.FlightDTO
	if err := json.Unmarshal(r.Body, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

// ParseFlightList parses the response body as a FlightListDTO.
func (r Response) ParseFlightList() (*httpAdapter.FlightListDTO, error) {
	var list httpAdapter.FlightListDTO
	if err := json.Unmarshal(r.Body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ParseRefreshSummary parses the response body as a RefreshSummaryDTO.
func (r Response) ParseRefreshSummary() (*httpAdapter.RefreshSummaryDTO, error) {
	var summary httpAdapter.RefreshSummaryDTO
	if err := json.Unmarshal(r.Body, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}
