// Package cache provides TTL key-value stores for normalized aircraft records.
// The default store is an in-process map; a Redis-backed store is available
// for multi-instance deployments where a shared cache avoids duplicate
// upstream calls.
package cache

import (
	"context"
	"time"

	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
)

// Store is the cache contract consumed by the lookup use case.
// Implementations must degrade gracefully: a failing cache returns an error
// rather than panicking, and callers fall back to the upstream provider.
type Store interface {
	// Get returns the cached record for key. ok is false when the key is
	// absent or its entry has expired.
	Get(ctx context.Context, key string) (details *domain.AircraftDetails, ok bool, err error)

	// Set stores the record under key with the given TTL, overwriting any
	// existing entry.
	Set(ctx context.Context, key string, details *domain.AircraftDetails, ttl time.Duration) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Len returns the number of live entries.
	Len(ctx context.Context) (int, error)

	// Entries returns a snapshot of live entries for the admin endpoint.
	Entries(ctx context.Context) ([]Entry, error)
}

// Entry describes one cached record for cache inspection.
type Entry struct {
	// Key is the full cache key (provider_flightNumber_date).
	Key string `json:"key"`

	// ExpiresAt is the absolute expiry time.
	ExpiresAt time.Time `json:"expires"`

	// TTLRemaining is the time left until expiry.
	TTLRemaining time.Duration `json:"timeToLive"`
}
