package aerodatabox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/skytrack/flight-tracker/internal/domain"
)

// ProviderName is the unique identifier for the AeroDataBox source.
const ProviderName = "aerodatabox"

// errNullBody is returned by Decode for a literal JSON null.
var errNullBody = errors.New("response body is null")

// NewHTTPClient returns the shared client used for flight API calls.
// Retries are disabled: each fetch is a single attempt.
func NewHTTPClient(timeout time.Duration) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)
}

// Client fetches flights from AeroDataBox and normalizes them.
// It is safe for concurrent use; the resty client is shared across calls.
type Client struct {
	http       *resty.Client
	normalizer *Normalizer
	log        zerolog.Logger
}

// NewClient creates a Client around a shared HTTP client.
func NewClient(http *resty.Client, normalizer *Normalizer, log zerolog.Logger) *Client {
	return &Client{
		http:       http,
		normalizer: normalizer,
		log:        log,
	}
}

// Name returns the provider's unique identifier.
func (c *Client) Name() string {
	return ProviderName
}

// FetchFlight builds the request, executes it once, and normalizes the body.
// Every error is a *domain.FetchError.
func (c *Client) FetchFlight(ctx context.Context, flightNumber, date string, settings domain.APISettings) (*domain.FlightRecord, error) {
	req, err := BuildRequest(flightNumber, date, settings)
	if err != nil {
		return nil, domain.NewFetchError(domain.KindAPIKeyMissing, err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaderMultiValues(req.Header).
		Get(req.URL)
	if err != nil {
		return nil, domain.NewFetchError(domain.KindUnknown, fmt.Errorf("request %s: %w", flightNumber, err))
	}

	if !resp.IsSuccess() {
		return nil, domain.NewFetchError(domain.KindNetwork, fmt.Errorf("HTTP %d", resp.StatusCode()))
	}

	body := resp.Body()
	if IsNotFoundBody(body) {
		return nil, domain.NewFetchError(domain.KindFlightNotFound, fmt.Errorf("%s on %s", flightNumber, date))
	}

	raw, err := Decode(body)
	if err != nil {
		return nil, domain.NewFetchError(domain.KindParsing, err)
	}

	record, err := c.normalizer.Parse(raw)
	if err != nil {
		if domain.IsMissingCriticalData(err) || domain.IsInvalidCoordinate(err) {
			c.log.Warn().Err(err).Str("flight_number", flightNumber).Msg("Flight data incomplete")
			return nil, domain.NewFetchError(domain.KindIncompleteData, err)
		}
		return nil, domain.NewFetchError(domain.KindUnknown, err)
	}

	return record, nil
}

// IsNotFoundBody reports whether body is the API's "flight not found" sentinel.
func IsNotFoundBody(body []byte) bool {
	return bytes.Equal(bytes.TrimSpace(body), []byte(notFoundBody))
}

// Decode unmarshals a response body. A JSON null is rejected.
func Decode(body []byte) (Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode flight response: %w", err)
	}
	if resp == nil {
		return nil, errNullBody
	}
	return resp, nil
}

var _ domain.FlightSource = (*Client)(nil)
