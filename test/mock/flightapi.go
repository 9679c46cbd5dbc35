// Package mock provides test doubles for the flight tracker.
// FlightAPI stands in for the AeroDataBox flight-status endpoint so the
// real HTTP client can be exercised end to end.
package mock

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// NotFoundBody is what the flight API returns for an unknown flight.
const NotFoundBody = `{"message":"Could not parse server response"}`

// BasePath is the path prefix served by FlightAPI.
const BasePath = "/flights/number"

// FlightAPI is a configurable fake of the flight-status endpoint.
// Requests for unregistered flights receive NotFoundBody.
type FlightAPI struct {
	server *httptest.Server

	mu        sync.Mutex
	bodies    map[string]string
	status    int
	delay     time.Duration
	calls     map[string]int
	callCount int
	lastKey   string
	inFlight  int
	peak      int
}

// NewFlightAPI starts a fake flight API. Call Close when done.
func NewFlightAPI() *FlightAPI {
	api := &FlightAPI{
		bodies: make(map[string]string),
		calls:  make(map[string]int),
		status: http.StatusOK,
	}
	api.server = httptest.NewServer(http.HandlerFunc(api.serve))
	return api
}

// WithFlight registers the JSON body returned for number on date.
func (a *FlightAPI) WithFlight(number, date, body string) *FlightAPI {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bodies[key(number, date)] = body
	return a
}

// WithStatus makes every response use the given HTTP status.
func (a *FlightAPI) WithStatus(status int) *FlightAPI {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = status
	return a
}

// WithDelay makes the API wait before responding.
// This is useful for testing timeout behavior.
func (a *FlightAPI) WithDelay(d time.Duration) *FlightAPI {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.delay = d
	return a
}

// URL returns the base URL to configure as the custom server or endpoint.
func (a *FlightAPI) URL() string {
	return a.server.URL + BasePath
}

// Close shuts the server down.
func (a *FlightAPI) Close() {
	a.server.Close()
}

// CallCount returns the number of requests served.
func (a *FlightAPI) CallCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.callCount
}

// CallsFor returns the number of requests for one flight on one date.
func (a *FlightAPI) CallsFor(number, date string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[key(number, date)]
}

// MaxConcurrent returns the highest number of requests served at once.
func (a *FlightAPI) MaxConcurrent() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.peak
}

// LastAPIKey returns the API key header of the most recent request.
func (a *FlightAPI) LastAPIKey() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastKey
}

// Reset clears the call counters.
func (a *FlightAPI) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.callCount = 0
	a.peak = 0
	a.calls = make(map[string]int)
}

func (a *FlightAPI) serve(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, BasePath+"/")
	number, date, _ := strings.Cut(rest, "/")
	k := key(number, date)

	a.mu.Lock()
	a.callCount++
	a.calls[k]++
	a.lastKey = r.Header.Get("X-Flight-Api-Key")
	a.inFlight++
	if a.inFlight > a.peak {
		a.peak = a.inFlight
	}
	body, ok := a.bodies[k]
	status := a.status
	delay := a.delay
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.inFlight--
		a.mu.Unlock()
	}()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	if !ok {
		body = NotFoundBody
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func key(number, date string) string {
	return strings.ToUpper(number) + "|" + date
}
