// Package integration provides helpers and integration tests for the aircraft
// lookup service. Integration tests verify that components work together
// correctly: middleware, HTTP handlers, the use case, the cache, and mock
// providers.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/flight-lookup/aircraft-lookup-service/internal/adapter/http"
	"github.com/flight-lookup/aircraft-lookup-service/internal/adapter/http/middleware"
	"github.com/flight-lookup/aircraft-lookup-service/internal/cache"
	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/timeutil"
	"github.com/flight-lookup/aircraft-lookup-service/internal/usecase"
	"github.com/flight-lookup/aircraft-lookup-service/test/mock"
)

// TestNow is the frozen wall clock used by all integration tests.
var TestNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// TestServer wires the full request path with mock providers behind the
// real registry, use case, cache, and middleware stack.
type TestServer struct {
	Echo        *echo.Echo
	FlightAware *mock.Provider
	AeroDataBox *mock.Provider
	Store       *cache.Memory
	Clock       *timeutil.MockClock
}

// NewTestServer creates a test server with both providers mocked.
func NewTestServer() *TestServer {
	fa := mock.NewProvider("flightaware")
	adb := mock.NewProvider("aerodatabox")

	registry := domain.NewProviderRegistry()
	registry.Register(fa)
	registry.Register(adb)

	clock := timeutil.NewMockClock(TestNow)
	store := cache.NewMemory(clock)

	uc := usecase.NewAircraftLookupUseCase(registry, store, clock, nil, nil)
	handler := httpAdapter.NewAircraftHandler(uc, registry, store, clock, "1.1.0", "test")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, zerolog.Nop())
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:        e,
		FlightAware: fa,
		AeroDataBox: adb,
		Store:       store,
		Clock:       clock,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(method, path string) Response {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get executes a GET request.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(http.MethodGet, path)
}

// ParseDetails parses the response body as an AircraftDetails record.
func (r Response) ParseDetails() (*domain.AircraftDetails, error) {
	var details domain.AircraftDetails
	if err := json.Unmarshal(r.Body, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// ParseJSON parses the response body into a generic map.
func (r Response) ParseJSON() (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return nil, err
	}
	return body, nil
}
