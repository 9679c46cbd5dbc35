package aerodatabox

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytrack/flight-tracker/internal/domain"
	"github.com/skytrack/flight-tracker/internal/infrastructure/timeutil"
)

const fixtureNow = "2025-01-10T08:00:00Z"

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "vj84.json"))
	require.NoError(t, err)
	return data
}

// loadGeneric decodes the fixture into a mutable tree so tests can drop fields.
func loadGeneric(t *testing.T) []map[string]any {
	t.Helper()
	var tree []map[string]any
	require.NoError(t, json.Unmarshal(loadFixture(t), &tree))
	return tree
}

func toResponse(t *testing.T, tree any) Response {
	t.Helper()
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	resp, err := Decode(data)
	require.NoError(t, err)
	return resp
}

func newTestNormalizer() *Normalizer {
	return NewNormalizer(zerolog.Nop(), timeutil.NewMockClockFromString(fixtureNow))
}

func TestNormalizer_Parse_Complete(t *testing.T) {
	resp, err := Decode(loadFixture(t))
	require.NoError(t, err)

	record, err := newTestNormalizer().Parse(resp)
	require.NoError(t, err)

	assert.Equal(t, int64(0), record.ID)
	assert.Equal(t, "VJ 84", record.CallSign)
	assert.Equal(t, domain.AirlineInfo{Name: "VietJet Air", IATA: "VJ", ICAO: "VJC"}, record.Airline)
	assert.Equal(t, "Airbus A330", record.Aircraft.Model)
	assert.Equal(t, domain.AircraftImage{
		URL:         "https://example.org/a330.jpg",
		Author:      "J. Spotter",
		AuthorURL:   "https://example.org/photos/a330",
		Attribution: "Photo by J. Spotter",
	}, record.Aircraft.Image)

	dep := record.Departure
	assert.Equal(t, "SGN", dep.IATA)
	assert.Equal(t, "Tan Son Nhat", dep.ShortName)
	assert.Equal(t, "VN", dep.CountryCode)
	assert.Equal(t, "Asia/Ho_Chi_Minh", dep.TimeZone)
	assert.Equal(t, "2025-01-16 20:40", dep.DateTime.Format("2006-01-02 15:04"))
	assert.Equal(t, "I", dep.Terminal)
	assert.Equal(t, DefaultLocation, dep.Gate)
	assert.Equal(t, DefaultLocation, dep.BaggageBelt)
	assert.Equal(t, "12-20", dep.CheckInDesk)
	assert.Greater(t, dep.MapX, 0.5)

	arr := record.Arrival
	assert.Equal(t, "MEL", arr.IATA)
	assert.Equal(t, "Australia/Melbourne", arr.TimeZone)
	assert.Equal(t, "2025-01-17 09:05", arr.DateTime.Format("2006-01-02 15:04"))
	assert.Equal(t, "7", arr.BaggageBelt)
	assert.Equal(t, DefaultLocation, arr.Gate)
	assert.Greater(t, arr.MapY, 0.5)

	assert.Equal(t, 8*time.Hour+25*time.Minute, record.Duration)
	assert.Equal(t, "8h 25m", domain.FormatDuration(record.Duration))
	assert.True(t, record.LastUpdate.Equal(time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)))
}

func TestNormalizer_Parse_DurationUsesUTCOnly(t *testing.T) {
	tree := loadGeneric(t)
	// Local strings that disagree with UTC must not affect the duration.
	tree[0]["departure"].(map[string]any)["scheduledTime"] = map[string]any{
		"utc":   "2025-01-16T13:40Z",
		"local": "2025-01-16 01:00+07:00",
	}
	tree[0]["arrival"].(map[string]any)["scheduledTime"] = map[string]any{
		"utc":   "2025-01-16T22:05Z",
		"local": "2025-01-16 02:00+11:00",
	}

	record, err := newTestNormalizer().Parse(toResponse(t, tree))
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+25*time.Minute, record.Duration)
}

func TestNormalizer_Parse_Defaults(t *testing.T) {
	tree := loadGeneric(t)
	delete(tree[0], "airline")
	delete(tree[0], "aircraft")
	dep := tree[0]["departure"].(map[string]any)
	delete(dep, "terminal")
	dep["gate"] = "  "

	record, err := newTestNormalizer().Parse(toResponse(t, tree))
	require.NoError(t, err)

	assert.Equal(t, domain.AirlineInfo{Name: DefaultText, IATA: DefaultText, ICAO: DefaultText}, record.Airline)
	assert.Equal(t, DefaultText, record.Aircraft.Model)
	assert.Equal(t, domain.AircraftImage{}, record.Aircraft.Image)
	assert.Equal(t, DefaultLocation, record.Departure.Terminal)
	assert.Equal(t, DefaultLocation, record.Departure.Gate)
}

func TestNormalizer_Parse_Idempotent(t *testing.T) {
	resp, err := Decode(loadFixture(t))
	require.NoError(t, err)

	clock := timeutil.NewMockClockFromString(fixtureNow)
	n := NewNormalizer(zerolog.Nop(), clock)

	first, err := n.Parse(resp)
	require.NoError(t, err)
	clock.Advance(time.Hour)
	second, err := n.Parse(resp)
	require.NoError(t, err)

	assert.True(t, second.LastUpdate.After(first.LastUpdate))
	first.LastUpdate = time.Time{}
	second.LastUpdate = time.Time{}
	assert.Equal(t, first, second)
}

func TestNormalizer_Parse_MissingCriticalField(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(root map[string]any)
		wantField string
	}{
		{
			name:      "call sign",
			mutate:    func(root map[string]any) { delete(root, "number") },
			wantField: "Call sign (number)",
		},
		{
			name:      "departure side",
			mutate:    func(root map[string]any) { delete(root, "departure") },
			wantField: "Departure data",
		},
		{
			name: "departure airport IATA",
			mutate: func(root map[string]any) {
				airport(root, "departure")["iata"] = nil
			},
			wantField: "Departure airport IATA",
		},
		{
			name: "blank country code counts as missing",
			mutate: func(root map[string]any) {
				airport(root, "departure")["countryCode"] = ""
			},
			wantField: "Departure airport country code",
		},
		{
			name: "arrival UTC time",
			mutate: func(root map[string]any) {
				delete(root["arrival"].(map[string]any)["scheduledTime"].(map[string]any), "utc")
			},
			wantField: "Arrival UTC time",
		},
		{
			name: "arrival time zone",
			mutate: func(root map[string]any) {
				delete(airport(root, "arrival"), "timeZone")
			},
			wantField: "Arrival airport time zone",
		},
		{
			name: "arrival longitude",
			mutate: func(root map[string]any) {
				delete(airport(root, "arrival")["location"].(map[string]any), "lon")
			},
			wantField: "Arrival airport longitude",
		},
		{
			name: "first missing field wins",
			mutate: func(root map[string]any) {
				delete(airport(root, "departure"), "shortName")
				delete(airport(root, "departure"), "location")
				delete(root, "arrival")
			},
			wantField: "Departure airport short name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := loadGeneric(t)
			tt.mutate(tree[0])

			record, err := newTestNormalizer().Parse(toResponse(t, tree))
			require.Error(t, err)
			assert.Nil(t, record)

			var missing *domain.MissingCriticalDataError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantField, missing.Field)
			assert.Equal(t, tt.wantField+" is missing", missing.Error())
		})
	}
}

func TestNormalizer_Parse_EmptyRoot(t *testing.T) {
	record, err := newTestNormalizer().Parse(Response{})
	assert.Nil(t, record)

	var missing *domain.MissingCriticalDataError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "JSON root", missing.Field)
}

func TestNormalizer_Parse_InvalidCoordinate(t *testing.T) {
	tree := loadGeneric(t)
	airport(tree[0], "arrival")["location"] = map[string]any{"lat": 123.0, "lon": 10.0}

	_, err := newTestNormalizer().Parse(toResponse(t, tree))
	require.Error(t, err)
	assert.True(t, domain.IsInvalidCoordinate(err))
}

func TestNormalizer_Parse_PolarAirportEncodes(t *testing.T) {
	tree := loadGeneric(t)
	airport(tree[0], "departure")["location"] = map[string]any{"lat": 90.0, "lon": 0.0}
	airport(tree[0], "arrival")["location"] = map[string]any{"lat": -90.0, "lon": 0.0}

	record, err := newTestNormalizer().Parse(toResponse(t, tree))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, record.Departure.MapY, 1e-9)
	assert.InDelta(t, 1.0, record.Arrival.MapY, 1e-9)

	_, err = json.Marshal(record)
	assert.NoError(t, err)
}

func TestNormalizer_Parse_MalformedTime(t *testing.T) {
	tree := loadGeneric(t)
	tree[0]["departure"].(map[string]any)["scheduledTime"].(map[string]any)["local"] = "16/01/2025 20:40"

	_, err := newTestNormalizer().Parse(toResponse(t, tree))
	require.Error(t, err)
	assert.False(t, domain.IsMissingCriticalData(err))
}

func TestNormalizer_Parse_UnknownZone(t *testing.T) {
	tree := loadGeneric(t)
	airport(tree[0], "departure")["timeZone"] = "Mars/Olympus_Mons"

	_, err := newTestNormalizer().Parse(toResponse(t, tree))
	require.Error(t, err)
	assert.False(t, domain.IsMissingCriticalData(err))
}

func airport(root map[string]any, side string) map[string]any {
	return root[side].(map[string]any)["airport"].(map[string]any)
}
