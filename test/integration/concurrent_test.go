package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-lookup/aircraft-lookup-service/test/mock"
)

// The memory store is shared by every in-flight request, so these tests
// drive real goroutines through the full handler chain.

func TestConcurrent_DistinctKeysAllSucceed(t *testing.T) {
	ts := NewTestServer()
	ts.FlightAware.WithDetails(mock.SampleDetails("UA100"))

	const workers = 16

	var wg sync.WaitGroup
	codes := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := fmt.Sprintf("/api/flightaware/aircraft/UA%d/2025-06-02", 100+i)
			codes[i] = ts.Get(path).Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "request %d", i)
	}

	n, err := ts.Store.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, workers, n, "each flight number caches its own entry")
}

func TestConcurrent_SameKeyIsRaceFree(t *testing.T) {
	ts := NewTestServer()
	ts.FlightAware.WithDetails(mock.SampleDetails("UA100"))

	const workers = 16

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := ts.Get("/api/flightaware/aircraft/UA100/2025-06-02")
			assert.Equal(t, http.StatusOK, resp.Code)
		}()
	}
	wg.Wait()

	// No coalescing: concurrent misses may each hit the provider, but the
	// store must end up with exactly one entry.
	n, err := ts.Store.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.GreaterOrEqual(t, ts.FlightAware.CallCount(), 1)
	assert.LessOrEqual(t, ts.FlightAware.CallCount(), workers)
}

func TestConcurrent_LookupsMixedWithAdminClear(t *testing.T) {
	ts := NewTestServer()
	ts.FlightAware.WithDetails(mock.SampleDetails("UA100"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, http.StatusOK, ts.Get("/api/flightaware/aircraft/UA100/2025-06-02").Code)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, http.StatusOK, ts.Do(http.MethodPost, "/api/admin/cache/clear").Code)
		}()
	}
	wg.Wait()
}
