package domain

import (
	"context"
	"sync"
	"time"
)

//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=domain

// AircraftProvider is the contract every upstream vendor adapter implements.
// An adapter knows how to call one vendor API and normalize its response
// shapes into a single AircraftDetails record.
type AircraftProvider interface {
	// Name returns the provider's unique identifier (e.g., "flightaware").
	Name() string

	// Configured reports whether the provider's credential is present.
	// Lookup on an unconfigured provider fails before any network call.
	Configured() bool

	// Lookup resolves a flight number on a given date to one normalized
	// record. The date carries only year/month/day significance.
	Lookup(ctx context.Context, flightNumber string, date time.Time) (*AircraftDetails, error)
}

// ProviderRegistry holds the registered providers keyed by name.
// Registration happens once at startup; lookups are concurrent.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]AircraftProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]AircraftProvider),
	}
}

// Register adds a provider to the registry. A later registration under the
// same name replaces the earlier one. Nil providers are ignored.
func (r *ProviderRegistry) Register(p AircraftProvider) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Get returns the provider with the given name, or nil if not registered.
func (r *ProviderRegistry) Get(name string) AircraftProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[name]
}

// GetAll returns all registered providers.
func (r *ProviderRegistry) GetAll() []AircraftProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]AircraftProvider, 0, len(r.providers))
	for _, p := range r.providers {
		all = append(all, p)
	}
	return all
}

// Names returns the names of all registered providers.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
