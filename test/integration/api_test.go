package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
	"github.com/flight-lookup/aircraft-lookup-service/test/mock"
)

// =====================================================
// Lookup Endpoints
// =====================================================

func TestLookup_LiveFlightThroughFlightAwareRoute(t *testing.T) {
	ts := NewTestServer()
	ts.FlightAware.WithDetails(mock.SampleDetails("UA100"))

	resp := ts.Get("/api/flightaware/aircraft/UA100/2025-06-02")

	require.Equal(t, http.StatusOK, resp.Code)

	details, err := resp.ParseDetails()
	require.NoError(t, err)
	assert.Equal(t, "UA100", details.FlightNumber)
	assert.Equal(t, domain.StatusInAir, details.Status)
	assert.Equal(t, float64(35000), details.Altitude.Value, "altitude reported in feet")
	assert.True(t, details.Altitude.Valid)
	assert.NotNil(t, details.Position)

	assert.Equal(t, 1, ts.FlightAware.CallCount())
	assert.Equal(t, 0, ts.AeroDataBox.CallCount(), "FlightAware route must not touch AeroDataBox")
}

func TestLookup_DefaultRouteUsesAeroDataBox(t *testing.T) {
	ts := NewTestServer()
	ts.AeroDataBox.WithDetails(mock.SampleDetails("BA123"))

	resp := ts.Get("/api/aircraft/BA123/2025-06-02")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 1, ts.AeroDataBox.CallCount())
	assert.Equal(t, 0, ts.FlightAware.CallCount())
}

func TestLookup_SentinelFieldsSurviveTheWire(t *testing.T) {
	ts := NewTestServer()
	ts.FlightAware.WithDetails(mock.SampleDetails("UA100"))

	resp := ts.Get("/api/flightaware/aircraft/UA100/2025-06-02")
	require.Equal(t, http.StatusOK, resp.Code)

	body, err := resp.ParseJSON()
	require.NoError(t, err)
	assert.Equal(t, domain.NotAvailable, body["filedRoute"])
	assert.Equal(t, domain.NotAvailable, body["aircraftOwner"])

	duration, ok := body["flightDuration"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, domain.NotAvailable, duration["actual"], "unset numbers marshal to the sentinel")
}

func TestLookup_FarFutureReturns404WithProximityMessage(t *testing.T) {
	ts := NewTestServer()
	date := TestNow.AddDate(0, 0, 214)
	ts.AeroDataBox.WithError(domain.NewNoDataError("ZZ000", date, TestNow))

	resp := ts.Get("/api/aircraft/ZZ000/2099-01-01")

	require.Equal(t, http.StatusNotFound, resp.Code)

	body, err := resp.ParseJSON()
	require.NoError(t, err)
	assert.Contains(t, body["message"], "days in the future")
}

func TestLookup_MissingCredentialReturns500(t *testing.T) {
	ts := NewTestServer()
	ts.FlightAware.WithConfigured(false)

	resp := ts.Get("/api/flightaware/aircraft/UA100/2025-06-02")

	require.Equal(t, http.StatusInternalServerError, resp.Code)

	body, err := resp.ParseJSON()
	require.NoError(t, err)
	assert.Contains(t, body["message"], "API key not configured")
}

func TestLookup_InvalidDateReturns400(t *testing.T) {
	ts := NewTestServer()

	resp := ts.Get("/api/aircraft/UA100/not-a-date")

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, 0, ts.AeroDataBox.CallCount(), "validation failure must not reach the provider")
}

func TestLookup_UpstreamRateLimitPassesThrough(t *testing.T) {
	ts := NewTestServer()
	ts.FlightAware.WithError(&domain.UpstreamError{
		Provider:   "flightaware",
		StatusCode: http.StatusTooManyRequests,
		Body:       "slow down",
	})

	resp := ts.Get("/api/flightaware/aircraft/UA100/2025-06-02")

	require.Equal(t, http.StatusTooManyRequests, resp.Code)

	body, err := resp.ParseJSON()
	require.NoError(t, err)
	assert.Contains(t, body["message"], "Rate limit exceeded")
}

// =====================================================
// CORS
// =====================================================

func TestCORS_PreflightReturns204(t *testing.T) {
	ts := NewTestServer()

	resp := ts.Do(http.MethodOptions, "/api/aircraft/UA100/2025-06-02")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "*", resp.Headers.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "86400", resp.Headers.Get("Access-Control-Max-Age"))
	assert.Empty(t, resp.Body)
	assert.Equal(t, 0, ts.AeroDataBox.CallCount())
}

func TestCORS_AllResponsesCarryAllowOrigin(t *testing.T) {
	ts := NewTestServer()
	ts.AeroDataBox.WithDetails(mock.SampleDetails("BA123"))

	paths := []string{
		"/api/aircraft/BA123/2025-06-02",
		"/api/health",
		"/api/test",
	}
	for _, path := range paths {
		resp := ts.Get(path)
		assert.Equal(t, "*", resp.Headers.Get("Access-Control-Allow-Origin"), path)
	}
}

// =====================================================
// Operational Endpoints
// =====================================================

func TestHealth_ReportsProviderState(t *testing.T) {
	ts := NewTestServer()
	ts.AeroDataBox.WithConfigured(false)

	resp := ts.Get("/api/health")

	require.Equal(t, http.StatusOK, resp.Code)

	body, err := resp.ParseJSON()
	require.NoError(t, err)
	assert.Equal(t, "UP", body["status"])
	assert.Equal(t, "1.1.0", body["version"])
	assert.Equal(t, "2025-06-01T12:00:00Z", body["timestamp"])

	apis, ok := body["apis"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "configured", apis["flightaware"])
	assert.Equal(t, "not configured", apis["aerodatabox"])
}

func TestTest_Liveness(t *testing.T) {
	ts := NewTestServer()

	resp := ts.Get("/api/test")

	require.Equal(t, http.StatusOK, resp.Code)

	body, err := resp.ParseJSON()
	require.NoError(t, err)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, 0, ts.FlightAware.CallCount())
	assert.Equal(t, 0, ts.AeroDataBox.CallCount())
}

func TestAdmin_CacheInfoAndClear(t *testing.T) {
	ts := NewTestServer()
	ts.FlightAware.WithDetails(mock.SampleDetails("UA100"))

	// Populate one entry through the normal path.
	require.Equal(t, http.StatusOK, ts.Get("/api/flightaware/aircraft/UA100/2025-06-02").Code)

	resp := ts.Get("/api/admin/cache")
	require.Equal(t, http.StatusOK, resp.Code)

	body, err := resp.ParseJSON()
	require.NoError(t, err)
	assert.Equal(t, float64(1), body["cacheSize"])

	entries, ok := body["entries"].([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "flightaware_UA100_2025-06-02", entry["key"])

	resp = ts.Do(http.MethodPost, "/api/admin/cache/clear")
	require.Equal(t, http.StatusOK, resp.Code)

	body, err = resp.ParseJSON()
	require.NoError(t, err)
	assert.Equal(t, "Cache cleared successfully", body["message"])

	body, err = ts.Get("/api/admin/cache").ParseJSON()
	require.NoError(t, err)
	assert.Equal(t, float64(0), body["cacheSize"])
}
