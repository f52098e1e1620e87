// Package flightaware implements the AircraftProvider adapter for
// FlightAware's AeroAPI. The same flight can surface through the schedules
// endpoint (future flights, coarse fields) or the flights endpoint
// (confirmed flights, rich fields including live position); the adapter
// walks a fallback chain across both and normalizes whichever record wins.
package flightaware

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

// DefaultBaseURL is the production AeroAPI endpoint.
const DefaultBaseURL = "https://aeroapi.flightaware.com/aeroapi"

// DefaultTimeout bounds every outbound call. No retries: a failed call is
// surfaced, and the schedules→flights chain is alternate-source fallback,
// not retry-on-failure.
const DefaultTimeout = 10 * time.Second

// maxErrorBodyBytes caps how much of an upstream error body is kept for
// diagnostics.
const maxErrorBodyBytes = 200

// Config holds the adapter settings.
type Config struct {
	// APIKey is the AeroAPI credential. Empty means unconfigured: Lookup
	// fails with a ConfigurationError before any network call.
	APIKey string

	// BaseURL overrides the API root, for tests.
	BaseURL string

	// Timeout bounds each upstream HTTP call.
	Timeout time.Duration
}

// Adapter resolves flight number + date against AeroAPI.
type Adapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
	clock   timeutil.Clock
	log     *logger.Logger
}

// NewAdapter creates a FlightAware adapter.
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

// Lookup implements domain.AircraftProvider. The fallback order is:
//
//  1. schedules endpoint over the date's 24-hour window
//  2. schedule entry matching the requested date, upgraded through
//     /flights/{fa_flight_id} when the entry carries one
//  3. flights endpoint directly, first non-cancelled entry
//  4. not-found classification keyed off date proximity
func (a *Adapter) Lookup(ctx context.Context, flightNumber string, date time.Time) (*domain.AircraftDetails, error) {
	if a.apiKey == "" {
		return nil, &domain.ConfigurationError{Message: "FlightAware API key not configured"}
	}

	start := date.Format(timeutil.DateFormat)
	end := timeutil.NextDay(date).Format(timeutil.DateFormat)

	scheduled, schedErr := a.fetchSchedules(ctx, flightNumber, start, end)
	if schedErr != nil {
		a.log.Warn().Err(schedErr).Str("flight", flightNumber).Msg("schedules endpoint failed, falling back to flights endpoint")
	}

	if match := matchScheduleByDate(scheduled, start); match != nil {
		if match.FaFlightID != "" {
			record, err := a.fetchFlightByID(ctx, match.FaFlightID)
			if err != nil {
				a.log.Warn().Err(err).Str("fa_flight_id", match.FaFlightID).Msg("flight-by-id fetch failed, using schedule entry")
			}
			if record != nil {
				// The fa_flight_id shortcut reports altitude in
				// hundreds of feet.
				return normalizeFlight(record, flightNumber, sourceFaFlightID, altitudeHundredsOfFeet), nil
			}
		}
		return normalizeSchedule(match, flightNumber), nil
	}

	flights, flightsErr := a.fetchFlights(ctx, flightNumber, start, end)
	if flightsErr != nil {
		metrics.UpstreamErrors.WithLabelValues(ProviderName).Inc()
		return nil, flightsErr
	}
	if len(flights) > 0 {
		record := firstNonCancelled(flights)
		return normalizeFlight(record, flightNumber, sourceIdent, altitudeFeet), nil
	}

	// Both endpoints came back clean but empty, unless the schedules call
	// itself failed, in which case that failure is the best diagnostic.
	if schedErr != nil {
		metrics.UpstreamErrors.WithLabelValues(ProviderName).Inc()
		return nil, schedErr
	}
	return nil, domain.NewNoDataError(flightNumber, date, a.clock.Now())
}

// matchScheduleByDate picks the schedule entry whose departure date equals
// the requested date, or nil.
func matchScheduleByDate(scheduled []scheduleRecord, date string) *scheduleRecord {
	for i := range scheduled {
		if scheduledDepartureDate(&scheduled[i]) == date {
			return &scheduled[i]
		}
	}
	return nil
}

// firstNonCancelled returns the first non-cancelled record, or the first
// record when everything on the date was cancelled.
func firstNonCancelled(flights []flightRecord) *flightRecord {
	for i := range flights {
		if !flights[i].Cancelled {
			return &flights[i]
		}
	}
	return &flights[0]
}

func (a *Adapter) fetchSchedules(ctx context.Context, flightNumber, start, end string) ([]scheduleRecord, error) {
	endpoint := fmt.Sprintf("%s/schedules/%s", a.baseURL, url.PathEscape(flightNumber))

	var resp schedulesResponse
	if err := a.getJSON(ctx, "schedules", endpoint, dateWindow(start, end), &resp); err != nil {
		return nil, err
	}
	return resp.Scheduled, nil
}

func (a *Adapter) fetchFlights(ctx context.Context, flightNumber, start, end string) ([]flightRecord, error) {
	endpoint := fmt.Sprintf("%s/flights/%s", a.baseURL, url.PathEscape(flightNumber))

	var resp flightsResponse
	if err := a.getJSON(ctx, "flights", endpoint, dateWindow(start, end), &resp); err != nil {
		return nil, err
	}
	return resp.Flights, nil
}

// fetchFlightByID fetches the detailed record behind a vendor-internal
// flight identifier. A clean-but-empty response returns (nil, nil) so the
// caller can fall back to the schedule entry.
func (a *Adapter) fetchFlightByID(ctx context.Context, faFlightID string) (*flightRecord, error) {
	endpoint := fmt.Sprintf("%s/flights/%s", a.baseURL, url.PathEscape(faFlightID))

	var resp flightsResponse
	if err := a.getJSON(ctx, "flight_by_id", endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Flights) == 0 {
		return nil, nil
	}
	return &resp.Flights[0], nil
}

func dateWindow(start, end string) url.Values {
	return url.Values{
		"start":     {start},
		"end":       {end},
		"max_pages": {"1"},
	}
}

// getJSON performs one authenticated GET and decodes the body. Non-2xx
// responses become UpstreamErrors carrying the status and a truncated body.
func (a *Adapter) getJSON(ctx context.Context, endpointLabel, endpoint string, query url.Values, out interface{}) error {
	metrics.UpstreamRequests.WithLabelValues(ProviderName, endpointLabel).Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &domain.UpstreamError{Provider: "FlightAware", Err: err}
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("x-apikey", a.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return &domain.UpstreamError{Provider: "FlightAware", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &domain.UpstreamError{
			Provider:   "FlightAware",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.UpstreamError{Provider: "FlightAware", Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

var _ domain.AircraftProvider = (*Adapter)(nil)
