package aerodatabox

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/skytrack/flight-tracker/internal/domain"
)

const (
	// DefaultBaseURL is used when the user has not configured a server.
	DefaultBaseURL = "https://aerodatabox.p.rapidapi.com/flights/number"

	// APIKeyHeader carries the key for custom servers.
	APIKeyHeader = "X-Flight-Api-Key"

	imageQuery = "withAircraftImage=True"
)

// Request is a fully-formed GET request against the flight-status endpoint.
type Request struct {
	URL    string
	Header http.Header
}

// BuildRequest composes the request for a flight number on a date (YYYY-MM-DD).
// It returns domain.ErrAPIKeyMissing when the settings cannot produce a usable request.
func BuildRequest(flightNumber, date string, settings domain.APISettings) (Request, error) {
	base, err := resolveBaseURL(settings)
	if err != nil {
		return Request{}, err
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	if settings.Mode == domain.ModeCustomServer {
		header.Set(APIKeyHeader, settings.Key)
	}

	rawURL := fmt.Sprintf("%s/%s/%s?%s",
		strings.TrimRight(base, "/"),
		url.PathEscape(flightNumber),
		url.PathEscape(date),
		imageQuery,
	)

	return Request{URL: rawURL, Header: header}, nil
}

// resolveBaseURL picks the base URL for the configured mode.
func resolveBaseURL(settings domain.APISettings) (string, error) {
	var base string
	switch settings.Mode {
	case domain.ModeDefault:
		base = DefaultBaseURL
	case domain.ModeCustomServer:
		base = settings.Server
	case domain.ModeDirectEndpoint:
		base = settings.Endpoint
	}

	if strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("%w: no base url for mode %s", domain.ErrAPIKeyMissing, settings.Mode)
	}
	if settings.Mode == domain.ModeCustomServer && strings.TrimSpace(settings.Key) == "" {
		return "", fmt.Errorf("%w: custom server requires a key", domain.ErrAPIKeyMissing)
	}
	return base, nil
}
