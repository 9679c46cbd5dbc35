package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skytrack/flight-tracker/internal/adapter/http/response"
	"github.com/skytrack/flight-tracker/internal/domain"
	"github.com/skytrack/flight-tracker/internal/usecase"
)

const testPass = "M1NGUYEN/VAN AN       EABC123 SGNMELVJ 0084 016Y012A0042 100"

// setupTestHandler creates a test Echo instance wired to a mock tracker.
func setupTestHandler(t *testing.T) (*echo.Echo, *usecase.MockFlightTracker) {
	ctrl := gomock.NewController(t)
	tracker := usecase.NewMockFlightTracker(ctrl)
	e := echo.New()
	RegisterRoutes(e, NewFlightHandler(tracker, "memory"))
	return e, tracker
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

// createTestRecord builds the stored form of VJ 84 SGN-MEL.
func createTestRecord(id int64) *domain.FlightRecord {
	dep := time.Date(2025, 1, 16, 20, 40, 0, 0, time.FixedZone("", 7*3600))
	arr := time.Date(2025, 1, 17, 9, 5, 0, 0, time.FixedZone("", 11*3600))
	return &domain.FlightRecord{
		ID:       id,
		CallSign: "VJ 84",
		Airline:  domain.AirlineInfo{Name: "VietJet Air", IATA: "VJ", ICAO: "VJC"},
		Aircraft: domain.AircraftInfo{
			Model: "Airbus A330",
			Image: domain.AircraftImage{URL: "https://img.example/a330.jpg", Author: "J. Spotter"},
		},
		Departure: domain.FlightPoint{IATA: "SGN", DateTime: dep, TimeZone: "Asia/Ho_Chi_Minh", MapX: 0.79},
		Arrival:   domain.FlightPoint{IATA: "MEL", DateTime: arr, TimeZone: "Australia/Melbourne", MapX: 0.9},
		Duration:  arr.Sub(dep),
		Progress:  50,
	}
}

// =====================================================
// Track
// =====================================================

func TestTrackFlight_Success(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().Track(gomock.Any(), "VJ84", "2025-01-16").Return(createTestRecord(1), nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights", TrackFlightRequest{FlightNumber: " vj84 ", Date: "2025-01-16"})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var dto FlightDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, int64(1), dto.ID)
	assert.Equal(t, "VJ 84", dto.CallSign)
	assert.Equal(t, "8h 25m", dto.Duration.Formatted)
	assert.Equal(t, 505, dto.Duration.TotalMinutes)
	assert.Equal(t, "2025-01-16T20:40:00+07:00", dto.Departure.DateTime)
	assert.Equal(t, "2025-01-17T09:05:00+11:00", dto.Arrival.DateTime)
	assert.Equal(t, 50, dto.Progress)
	require.NotNil(t, dto.Aircraft.Image)
	assert.Equal(t, "J. Spotter", dto.Aircraft.Image.Author)
}

func TestTrackFlight_InvalidJSON(t *testing.T) {
	e, _ := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights", strings.NewReader(`{invalid json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.CodeInvalidRequest, decodeError(t, rec).Code)
}

func TestTrackFlight_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		request       TrackFlightRequest
		expectedField string
	}{
		{
			name:          "missing flight number",
			request:       TrackFlightRequest{Date: "2025-01-16"},
			expectedField: "flightNumber",
		},
		{
			name:          "missing date",
			request:       TrackFlightRequest{FlightNumber: "VJ84"},
			expectedField: "date",
		},
		{
			name:          "bad date format",
			request:       TrackFlightRequest{FlightNumber: "VJ84", Date: "16/01/2025"},
			expectedField: "date",
		},
		{
			name:          "impossible date",
			request:       TrackFlightRequest{FlightNumber: "VJ84", Date: "2025-02-30"},
			expectedField: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setupTestHandler(t)

			rec := makeRequest(e, http.MethodPost, "/api/v1/flights", tt.request)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, response.CodeValidationError, detail.Code)
			assert.Contains(t, detail.Details, tt.expectedField)
		})
	}
}

func TestTrackFlight_FetchErrors(t *testing.T) {
	tests := []struct {
		kind       domain.FetchErrorKind
		wantStatus int
	}{
		{domain.KindAPIKeyMissing, http.StatusServiceUnavailable},
		{domain.KindNetwork, http.StatusBadGateway},
		{domain.KindParsing, http.StatusBadGateway},
		{domain.KindIncompleteData, http.StatusUnprocessableEntity},
		{domain.KindFlightAlreadyExists, http.StatusConflict},
		{domain.KindFlightNotFound, http.StatusNotFound},
		{domain.KindUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e, tracker := setupTestHandler(t)
			tracker.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, domain.NewFetchError(tt.kind, errors.New("cause")))

			rec := makeRequest(e, http.MethodPost, "/api/v1/flights", TrackFlightRequest{FlightNumber: "VJ84", Date: "2025-01-16"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.kind.String(), decodeError(t, rec).Code)
		})
	}
}

func TestTrackFlight_InvalidFlightNumberFromTracker(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().Track(gomock.Any(), "VJ-84", "2025-01-16").
		Return(nil, domain.WrapInvalidRequest("flight number %q is not valid", "VJ-84"))

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights", TrackFlightRequest{FlightNumber: "VJ-84", Date: "2025-01-16"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.CodeValidationError, decodeError(t, rec).Code)
}

func TestTrackFlight_Timeout(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.NewFetchError(domain.KindUnknown, context.DeadlineExceeded))

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights", TrackFlightRequest{FlightNumber: "VJ84", Date: "2025-01-16"})

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, response.CodeTimeout, decodeError(t, rec).Code)
}

// =====================================================
// List / Get / Delete
// =====================================================

func TestListFlights(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().List(gomock.Any()).Return([]domain.FlightRecord{*createTestRecord(1), *createTestRecord(2)}, nil)

	rec := makeRequest(e, http.MethodGet, "/api/v1/flights", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var list FlightListDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, int64(2), list.Flights[1].ID)
}

func TestListFlights_Empty(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := makeRequest(e, http.MethodGet, "/api/v1/flights", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":0,"flights":[]}`, rec.Body.String())
}

func TestListFlights_StoreError(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().List(gomock.Any()).Return(nil, errors.New("list flights: connection refused"))

	rec := makeRequest(e, http.MethodGet, "/api/v1/flights", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, response.CodeInternalError, decodeError(t, rec).Code)
}

func TestGetFlight(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().Get(gomock.Any(), int64(3)).Return(createTestRecord(3), nil)

	rec := makeRequest(e, http.MethodGet, "/api/v1/flights/3", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var dto FlightDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, int64(3), dto.ID)
}

func TestGetFlight_NotFound(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().Get(gomock.Any(), int64(9)).Return(nil, domain.ErrRecordNotFound)

	rec := makeRequest(e, http.MethodGet, "/api/v1/flights/9", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.CodeRecordNotFound, decodeError(t, rec).Code)
}

func TestGetFlight_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-4"} {
		t.Run(id, func(t *testing.T) {
			e, _ := setupTestHandler(t)

			rec := makeRequest(e, http.MethodGet, "/api/v1/flights/"+id, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec).Details, "id")
		})
	}
}

func TestDeleteFlight(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	rec := makeRequest(e, http.MethodDelete, "/api/v1/flights/4", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteFlight_NotFound(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().Delete(gomock.Any(), int64(4)).Return(fmt.Errorf("delete: %w", domain.ErrRecordNotFound))

	rec := makeRequest(e, http.MethodDelete, "/api/v1/flights/4", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =====================================================
// Refresh
// =====================================================

func TestRefreshFlight(t *testing.T) {
	e, tracker := setupTestHandler(t)
	record := createTestRecord(5)
	record.Seat = "12A"
	tracker.EXPECT().Refresh(gomock.Any(), int64(5)).Return(record, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/5/refresh", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var dto FlightDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "12A", dto.Seat)
}

func TestRefreshFlight_FlightGone(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().Refresh(gomock.Any(), int64(5)).Return(nil, domain.NewFetchError(domain.KindFlightNotFound, nil))

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/5/refresh", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "flight_not_found", decodeError(t, rec).Code)
}

func TestRefreshAll(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().RefreshAll(gomock.Any()).Return(&usecase.RefreshSummary{
		Total:      3,
		Refreshed:  2,
		Failed:     1,
		Failures:   map[int64]string{2: "network_error: HTTP 500"},
		DurationMs: 120,
	}, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/refresh", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var dto RefreshSummaryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, 3, dto.Total)
	assert.Equal(t, 1, dto.Failed)
	assert.Equal(t, "network_error: HTTP 500", dto.Failures["2"])
}

// =====================================================
// Boarding pass and seat
// =====================================================

func TestAttachBoardingPass(t *testing.T) {
	e, tracker := setupTestHandler(t)
	record := createTestRecord(1)
	record.Seat = "12A"
	record.BoardingPass = testPass
	tracker.EXPECT().AttachBoardingPass(gomock.Any(), int64(1), testPass).Return(record, nil)

	rec := makeRequest(e, http.MethodPut, "/api/v1/flights/1/boarding-pass", BoardingPassRequest{Raw: testPass})

	assert.Equal(t, http.StatusOK, rec.Code)
	var dto FlightDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "12A", dto.Seat)
	assert.Equal(t, testPass, dto.BoardingPass)
}

func TestAttachBoardingPass_TooShort(t *testing.T) {
	e, _ := setupTestHandler(t)

	rec := makeRequest(e, http.MethodPut, "/api/v1/flights/1/boarding-pass", BoardingPassRequest{Raw: "M1SHORT"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "raw")
}

func TestAttachBoardingPass_Undecodable(t *testing.T) {
	e, tracker := setupTestHandler(t)
	raw := "X" + testPass[1:]
	tracker.EXPECT().AttachBoardingPass(gomock.Any(), int64(1), raw).
		Return(nil, domain.WrapInvalidRequest("unsupported format code"))

	rec := makeRequest(e, http.MethodPut, "/api/v1/flights/1/boarding-pass", BoardingPassRequest{Raw: raw})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetSeat(t *testing.T) {
	e, tracker := setupTestHandler(t)
	record := createTestRecord(1)
	record.Seat = "14C"
	tracker.EXPECT().SetSeat(gomock.Any(), int64(1), "14C").Return(record, nil)

	rec := makeRequest(e, http.MethodPut, "/api/v1/flights/1/seat", SeatRequest{Seat: " 14c "})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetSeat_Clear(t *testing.T) {
	e, tracker := setupTestHandler(t)
	tracker.EXPECT().SetSeat(gomock.Any(), int64(1), "").Return(createTestRecord(1), nil)

	rec := makeRequest(e, http.MethodPut, "/api/v1/flights/1/seat", SeatRequest{})

	assert.Equal(t, http.StatusOK, rec.Code)
}

// =====================================================
// Health and ops routes
// =====================================================

func TestHealth_Success(t *testing.T) {
	e, _ := setupTestHandler(t)

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","storage":"memory"}`, rec.Body.String())
}

func TestRegisterOpsRoutes_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_hits_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	e := echo.New()
	RegisterOpsRoutes(e, reg)

	rec := makeRequest(e, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_hits_total 1")
}

func TestRegisterRoutes(t *testing.T) {
	e, _ := setupTestHandler(t)

	want := map[string]bool{
		http.MethodGet + " /health":                           false,
		http.MethodPost + " /api/v1/flights":                  false,
		http.MethodGet + " /api/v1/flights":                   false,
		http.MethodPost + " /api/v1/flights/refresh":          false,
		http.MethodGet + " /api/v1/flights/:id":               false,
		http.MethodDelete + " /api/v1/flights/:id":            false,
		http.MethodPost + " /api/v1/flights/:id/refresh":      false,
		http.MethodPut + " /api/v1/flights/:id/boarding-pass": false,
		http.MethodPut + " /api/v1/flights/:id/seat":          false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		assert.True(t, found, "route %s not registered", route)
	}
}
