package aerodatabox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/timeutil"
	"github.com/flight-lookup/aircraft-lookup-service/test/testutil"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestAdapter(baseURL string) *Adapter {
	return NewAdapter(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
	}, timeutil.NewMockClock(fixedNow), nil)
}

func TestAdapter_Name(t *testing.T) {
	adapter := NewAdapter(Config{APIKey: "k"}, nil, nil)
	assert.Equal(t, "aerodatabox", adapter.Name())
}

func TestAdapter_ImplementsInterface(t *testing.T) {
	var _ domain.AircraftProvider = (*Adapter)(nil)
}

func TestAdapter_MissingKeyShortCircuits(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer server.Close()

	adapter := NewAdapter(Config{BaseURL: server.URL}, timeutil.NewMockClock(fixedNow), nil)
	_, err := adapter.Lookup(context.Background(), "BA123", fixedNow)

	require.Error(t, err)
	assert.True(t, domain.IsConfiguration(err))
	assert.Equal(t, int64(0), atomic.LoadInt64(&calls))
}

func TestAdapter_SuccessfulLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights/number/BA123/2025-06-02", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "aerodatabox.p.rapidapi.com", r.Header.Get("X-RapidAPI-Host"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"number": "BA 123",
			"status": "Expected",
			"airline": {"name": "British Airways"},
			"aircraft": {"reg": "G-XWBA", "model": "Airbus A350-1000", "age": 5},
			"departure": {
				"airport": {"name": "London Heathrow", "icao": "EGLL", "iata": "LHR"},
				"scheduledTime": "2025-06-02 09:20+01:00",
				"terminal": "5"
			},
			"arrival": {
				"airport": {"name": "Doha Hamad Intl", "icao": "OTHH", "iata": "DOH"},
				"scheduledTime": "2025-06-02 18:05+03:00"
			},
			"greatCircleDistance": {"km": 5226}
		}]`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	details, err := adapter.Lookup(context.Background(), "BA123", testutil.MustParseDate(t, "2025-06-02"))

	require.NoError(t, err)
	assert.Equal(t, "BA 123", details.FlightNumber)
	assert.Equal(t, "British Airways", details.Airline)
	assert.Equal(t, "G-XWBA", details.Registration)
	assert.Equal(t, "Airbus A350-1000", details.Model)
	assert.Equal(t, domain.StatusScheduled, details.Status)
	assert.Equal(t, "AeroDataBox API", details.DataSource)
	assert.Equal(t, "London Heathrow", details.Departure.Airport)
	assert.Equal(t, "EGLL", details.Departure.ICAO)
	assert.Equal(t, "5", details.Departure.Terminal)
	assert.Equal(t, domain.NotAvailable, details.Departure.Gate)
	assert.Equal(t, domain.NotAvailable, details.Arrival.ActualTime)

	require.True(t, details.AircraftAge.Valid)
	assert.Equal(t, float64(5), details.AircraftAge.Value)

	// Miles derived from kilometers.
	require.True(t, details.Distance.Miles.Valid)
	assert.Equal(t, float64(3247), details.Distance.Miles.Value)

	// The base schema never carries live data or delay figures.
	assert.False(t, details.Speed.Valid)
	assert.False(t, details.Altitude.Valid)
	assert.Nil(t, details.Position)
	assert.False(t, details.DelayInfo.Departure.Valid)
}

func TestAdapter_EmptyResultClassifiedByProximity(t *testing.T) {
	tests := []struct {
		name        string
		date        time.Time
		wantMessage string
	}{
		{
			name:        "far future",
			date:        time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
			wantMessage: "days in the future",
		},
		{
			name:        "near future",
			date:        fixedNow.AddDate(0, 0, 3),
			wantMessage: "may not be finalized",
		},
		{
			name:        "past",
			date:        fixedNow.AddDate(0, 0, -10),
			wantMessage: "Historical data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			}))
			defer server.Close()

			adapter := newTestAdapter(server.URL)
			_, err := adapter.Lookup(context.Background(), "ZZ000", tt.date)

			require.Error(t, err)
			assert.True(t, domain.IsNotFound(err))
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestAdapter_Vendor404IsNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	_, err := adapter.Lookup(context.Background(), "ZZ000", fixedNow.AddDate(0, 0, 1))

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestAdapter_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(t, w, http.StatusTooManyRequests, map[string]string{"message": "rate limit exceeded"})
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	_, err := adapter.Lookup(context.Background(), "BA123", fixedNow)

	require.Error(t, err)
	var upstreamErr *domain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
	assert.Contains(t, upstreamErr.Body, "rate limit")
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		vendor string
		want   string
	}{
		{"Arrived", domain.StatusArrived},
		{"EnRoute", domain.StatusInAir},
		{"Approaching", domain.StatusInAir},
		{"Departed", domain.StatusDeparted},
		{"Expected", domain.StatusScheduled},
		{"Boarding", domain.StatusScheduled},
		{"Delayed", domain.StatusScheduled},
		{"Canceled", domain.StatusCancelled},
		{"CanceledUncertain", domain.StatusCancelled},
		{"", domain.StatusUnknown},
		{"SomethingNew", domain.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.vendor, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeStatus(tt.vendor))
		})
	}
}
