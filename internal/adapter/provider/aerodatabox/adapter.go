// Package aerodatabox implements the AircraftProvider adapter for the
// AeroDataBox API (via RapidAPI). Unlike FlightAware, a single
// flights-by-number endpoint answers every lookup.
package aerodatabox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/logger"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/metrics"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/timeutil"
)

// DefaultBaseURL is the production RapidAPI endpoint root.
const DefaultBaseURL = "https://aerodatabox.p.rapidapi.com"

// rapidAPIHost is the host header RapidAPI uses to route the request.
const rapidAPIHost = "aerodatabox.p.rapidapi.com"

// DefaultTimeout bounds every outbound call; no retries.
const DefaultTimeout = 10 * time.Second

// maxErrorBodyBytes caps how much of an upstream error body is kept.
const maxErrorBodyBytes = 200

// Config holds the adapter settings.
type Config struct {
	// APIKey is the RapidAPI credential. Empty means unconfigured.
	APIKey string

	// BaseURL overrides the API root, for tests.
	BaseURL string

	// Timeout bounds each upstream HTTP call.
	Timeout time.Duration
}

// Adapter resolves flight number + date against AeroDataBox.
type Adapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
	clock   timeutil.Clock
	log     *logger.Logger
}

// NewAdapter creates an AeroDataBox adapter.
func NewAdapter(cfg Config, clock timeutil.Clock, log *logger.Logger) *Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		clock:   clock,
		log:     log.WithProvider(ProviderName),
	}
}

// Name implements domain.AircraftProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Configured implements domain.AircraftProvider.
func (a *Adapter) Configured() bool {
	return a.apiKey != ""
}

// Lookup implements domain.AircraftProvider. The first element of the
// result array is taken; an empty array or a vendor 404 is classified as
// no-data by date proximity.
func (a *Adapter) Lookup(ctx context.Context, flightNumber string, date time.Time) (*domain.AircraftDetails, error) {
	if a.apiKey == "" {
		return nil, &domain.ConfigurationError{Message: "AeroDataBox API key not configured"}
	}

	endpoint := fmt.Sprintf("%s/flights/number/%s/%s",
		a.baseURL, url.PathEscape(flightNumber), date.Format(timeutil.DateFormat))

	metrics.UpstreamRequests.WithLabelValues(ProviderName, "flights_by_number").Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Provider: "AeroDataBox", Err: err}
	}
	req.Header.Set("X-RapidAPI-Key", a.apiKey)
	req.Header.Set("X-RapidAPI-Host", rapidAPIHost)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues(ProviderName).Inc()
		return nil, &domain.UpstreamError{Provider: "AeroDataBox", Err: err}
	}
	defer resp.Body.Close()

	// The vendor answers 404 for unknown flight numbers; that is a
	// no-data condition, not an upstream failure.
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewNoDataError(flightNumber, date, a.clock.Now())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamErrors.WithLabelValues(ProviderName).Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &domain.UpstreamError{
			Provider:   "AeroDataBox",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var flights []adbFlight
	if err := json.NewDecoder(resp.Body).Decode(&flights); err != nil {
		metrics.UpstreamErrors.WithLabelValues(ProviderName).Inc()
		return nil, &domain.UpstreamError{Provider: "AeroDataBox", Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(flights) == 0 {
		return nil, domain.NewNoDataError(flightNumber, date, a.clock.Now())
	}

	return normalize(&flights[0], flightNumber), nil
}

var _ domain.AircraftProvider = (*Adapter)(nil)
