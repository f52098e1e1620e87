package cache

import (
	"context"
	"sync"
	"time"

	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/timeutil"
)

// Memory is a mutex-guarded in-process Store with lazy expiry.
// Expired entries are discarded on read; there is no background sweep and no
// eviction, since the entry count is bounded by the distinct
// provider/flight/date combinations an interactive client queries.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	clock   timeutil.Clock
}

type memoryEntry struct {
	details *domain.AircraftDetails
	expiry  time.Time
}

// NewMemory creates an empty in-memory store using the given clock.
func NewMemory(clock timeutil.Clock) *Memory {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Memory{
		entries: make(map[string]memoryEntry),
		clock:   clock,
	}
}

// Get implements Store. An expired entry is deleted and reported as absent.
func (m *Memory) Get(_ context.Context, key string) (*domain.AircraftDetails, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if m.clock.Now().After(entry.expiry) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return entry.details, true, nil
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key string, details *domain.AircraftDetails, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		details: details,
		expiry:  m.clock.Now().Add(ttl),
	}
	return nil
}

// Clear implements Store.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]memoryEntry)
	return nil
}

// Len implements Store. Expired-but-unread entries still count; they are
// only reaped on Get.
func (m *Memory) Len(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries), nil
}

// Entries implements Store.
func (m *Memory) Entries(_ context.Context) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.clock.Now()
	snapshot := make([]Entry, 0, len(m.entries))
	for key, entry := range m.entries {
		snapshot = append(snapshot, Entry{
			Key:          key,
			ExpiresAt:    entry.expiry,
			TTLRemaining: entry.expiry.Sub(now),
		})
	}
	return snapshot, nil
}

var _ Store = (*Memory)(nil)
