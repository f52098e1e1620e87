// Package usecase contains the application logic that ties the cache, the
// provider registry, and the TTL policy together.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/flight-lookup/aircraft-lookup-service/internal/cache"
	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/logger"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/metrics"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/timeutil"
)

// Default TTL policy. Near-term flights get the short TTL because aircraft
// assignments change most often close to departure.
const (
	DefaultShortTTL = 30 * time.Minute
	DefaultLongTTL  = 12 * time.Hour

	// DefaultNearWindowDays is the proximity boundary: dates within this
	// many days of now (inclusive, and all past dates) use the short TTL.
	DefaultNearWindowDays = 3
)

// AircraftLookupUseCase defines the lookup operation exposed to the HTTP layer.
type AircraftLookupUseCase interface {
	// Lookup resolves provider + flight number + raw date into a
	// normalized record, consulting the cache first.
	Lookup(ctx context.Context, providerName, flightNumber, rawDate string) (*domain.AircraftDetails, error)
}

// aircraftLookupUseCase implements AircraftLookupUseCase.
type aircraftLookupUseCase struct {
	registry       *domain.ProviderRegistry
	store          cache.Store
	clock          timeutil.Clock
	log            *logger.Logger
	shortTTL       time.Duration
	longTTL        time.Duration
	nearWindowDays int
}

// Config contains configuration options for the use case.
type Config struct {
	ShortTTL       time.Duration
	LongTTL        time.Duration
	NearWindowDays int
}

// DefaultConfig returns the default TTL policy.
func DefaultConfig() Config {
	return Config{
		ShortTTL:       DefaultShortTTL,
		LongTTL:        DefaultLongTTL,
		NearWindowDays: DefaultNearWindowDays,
	}
}

// NewAircraftLookupUseCase creates the lookup use case. A nil config uses
// the default TTL policy; a nil clock uses the system clock.
func NewAircraftLookupUseCase(registry *domain.ProviderRegistry, store cache.Store, clock timeutil.Clock, log *logger.Logger, config *Config) AircraftLookupUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.ShortTTL > 0 {
			cfg.ShortTTL = config.ShortTTL
		}
		if config.LongTTL > 0 {
			cfg.LongTTL = config.LongTTL
		}
		if config.NearWindowDays > 0 {
			cfg.NearWindowDays = config.NearWindowDays
		}
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &aircraftLookupUseCase{
		registry:       registry,
		store:          store,
		clock:          clock,
		log:            log,
		shortTTL:       cfg.ShortTTL,
		longTTL:        cfg.LongTTL,
		nearWindowDays: cfg.NearWindowDays,
	}
}

// Lookup implements AircraftLookupUseCase. Cache failures are logged and
// degrade to a direct upstream call; they never fail the request.
func (uc *aircraftLookupUseCase) Lookup(ctx context.Context, providerName, flightNumber, rawDate string) (*domain.AircraftDetails, error) {
	metrics.LookupRequests.WithLabelValues(providerName).Inc()

	date, formattedDate, err := timeutil.ParseDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, rawDate)
	}

	provider := uc.registry.Get(providerName)
	if provider == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, providerName)
	}

	key := cacheKey(providerName, flightNumber, formattedDate)

	cached, ok, cacheErr := uc.store.Get(ctx, key)
	if cacheErr != nil {
		uc.log.Warn().Err(cacheErr).Str("cache_key", key).Msg("cache read failed, querying upstream")
	}
	if ok {
		metrics.CacheHits.Inc()
		uc.log.Debug().Str("cache_key", key).Msg("cache hit")
		return cached, nil
	}
	metrics.CacheMisses.Inc()

	details, err := provider.Lookup(ctx, flightNumber, date)
	if err != nil {
		return nil, err
	}

	ttl := uc.ttlFor(date)
	if err := uc.store.Set(ctx, key, details, ttl); err != nil {
		uc.log.Warn().Err(err).Str("cache_key", key).Msg("cache write failed")
	}
	uc.log.Info().
		Str("provider", providerName).
		Str("flight", flightNumber).
		Str("date", formattedDate).
		Dur("ttl", ttl).
		Msg("lookup resolved from upstream")

	return details, nil
}

// ttlFor selects the cache TTL by date proximity. Dates within the near
// window of now (and all past dates) use the short TTL.
func (uc *aircraftLookupUseCase) ttlFor(date time.Time) time.Duration {
	if timeutil.DaysBetween(uc.clock.Now(), date) <= uc.nearWindowDays {
		return uc.shortTTL
	}
	return uc.longTTL
}

// cacheKey builds the provider-scoped cache key.
func cacheKey(provider, flightNumber, date string) string {
	return fmt.Sprintf("%s_%s_%s", provider, flightNumber, date)
}
