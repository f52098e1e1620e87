package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
)

// keyPrefix namespaces lookup entries so a shared Redis can host other data.
const keyPrefix = "aircraft:"

// Redis is a Store backed by a Redis server. Records are stored as JSON and
// expiry is delegated to Redis TTLs, so expired entries never come back.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis store for the given address.
func NewRedis(addr string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

// NewRedisWithClient wraps an existing client. Useful for tests.
func NewRedisWithClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Ping verifies connectivity. Called once at startup so a bad REDIS_ADDR
// fails the boot instead of every request.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get implements Store.
func (r *Redis) Get(ctx context.Context, key string) (*domain.AircraftDetails, bool, error) {
	raw, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}

	var details domain.AircraftDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, false, fmt.Errorf("decode cached record %q: %w", key, err)
	}
	return &details, true, nil
}

// Set implements Store.
func (r *Redis) Set(ctx context.Context, key string, details *domain.AircraftDetails, ttl time.Duration) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", key, err)
	}
	if err := r.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Clear implements Store. Only keys under the lookup prefix are removed.
func (r *Redis) Clear(ctx context.Context) error {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Len implements Store.
func (r *Redis) Len(ctx context.Context) (int, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Entries implements Store.
func (r *Redis) Entries(ctx context.Context) ([]Entry, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		ttl, err := r.client.TTL(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("redis ttl %q: %w", key, err)
		}
		entries = append(entries, Entry{
			Key:          strings.TrimPrefix(key, keyPrefix),
			ExpiresAt:    now.Add(ttl),
			TTLRemaining: ttl,
		})
	}
	return entries, nil
}

func (r *Redis) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return keys, nil
}

var _ Store = (*Redis)(nil)
