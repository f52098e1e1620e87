// Package mock provides test doubles for the aircraft lookup system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
)

// Provider is a configurable mock implementation of domain.AircraftProvider.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and unconfigured credentials.
type Provider struct {
	name       string
	details    *domain.AircraftDetails
	err        error
	delay      time.Duration
	configured bool
	callCount  int
	mu         sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider starts configured and is customized using the builder methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name:       name,
		configured: true,
	}
}

// WithDetails configures the provider to return the given record.
func (p *Provider) WithDetails(details *domain.AircraftDetails) *Provider {
	p.details = details
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// WithConfigured overrides the credential-present flag.
func (p *Provider) WithConfigured(configured bool) *Provider {
	p.configured = configured
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Configured implements domain.AircraftProvider.Configured.
func (p *Provider) Configured() bool {
	return p.configured
}

// Lookup implements domain.AircraftProvider.Lookup.
// It respects context cancellation, applies configured delay,
// and returns the configured record or error.
func (p *Provider) Lookup(ctx context.Context, flightNumber string, date time.Time) (*domain.AircraftDetails, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if !p.configured {
		return nil, &domain.ConfigurationError{Message: p.name + " API key not configured"}
	}

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.details, nil
}

// CallCount returns the number of times Lookup was called.
// This is useful for verifying cache behavior.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.AircraftProvider at compile time.
var _ domain.AircraftProvider = (*Provider)(nil)

// SampleDetails returns a fully populated in-air record for testing.
func SampleDetails(flightNumber string) *domain.AircraftDetails {
	return &domain.AircraftDetails{
		FlightNumber: flightNumber,
		Airline:      "United Airlines",
		Registration: "N37502",
		Model:        "B78X",
		Status:       domain.StatusInAir,
		Departure: domain.Movement{
			Airport:       "San Francisco Intl",
			Terminal:      "3",
			Gate:          "F11",
			ScheduledTime: "2025-06-02T08:00:00Z",
			ActualTime:    "2025-06-02T08:12:00Z",
			ICAO:          "KSFO",
			IATA:          "SFO",
		},
		Arrival: domain.Movement{
			Airport:       "Newark Liberty Intl",
			Terminal:      "C",
			Gate:          "C102",
			ScheduledTime: "2025-06-02T16:30:00Z",
			ActualTime:    domain.NotAvailable,
			ICAO:          "KEWR",
			IATA:          "EWR",
		},
		DataSource:  "FlightAware AeroAPI (fa_flight_id)",
		AircraftAge: domain.N(6),
		Distance: domain.Distance{
			Kilometers: domain.N(4163),
			Miles:      domain.N(2587),
		},
		Speed:    domain.N(480),
		Altitude: domain.N(35000),
		Position: &domain.Position{
			Latitude:  domain.N(40.2),
			Longitude: domain.N(-98.5),
			Heading:   domain.N(78),
		},
		FlightDuration: domain.FlightDuration{
			Scheduled: domain.N(330),
			Actual:    domain.Number{},
		},
		DelayInfo: domain.DelayInfo{
			Departure: domain.N(12),
			Arrival:   domain.Number{},
		},
		BaggageClaim:  "C",
		Progress:      domain.N(55),
		LastUpdated:   "2025-06-02T12:00:00Z",
		FiledRoute:    domain.NotAvailable,
		AircraftOwner: domain.NotAvailable,
		OperatorIcao:  "UAL",
	}
}
