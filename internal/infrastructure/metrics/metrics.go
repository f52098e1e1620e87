// Package metrics exposes Prometheus instrumentation for the lookup pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LookupRequests counts inbound lookup requests per provider.
	LookupRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aircraft_lookup_requests_total",
		Help: "Number of aircraft lookup requests received, by provider.",
	}, []string{"provider"})

	// CacheHits counts lookups served from the cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aircraft_lookup_cache_hits_total",
		Help: "Number of lookups answered from the cache.",
	})

	// CacheMisses counts lookups that went to an upstream provider.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aircraft_lookup_cache_misses_total",
		Help: "Number of lookups that missed the cache.",
	})

	// UpstreamRequests counts outbound vendor API calls per provider and endpoint.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aircraft_lookup_upstream_requests_total",
		Help: "Number of outbound vendor API requests, by provider and endpoint.",
	}, []string{"provider", "endpoint"})

	// UpstreamErrors counts failed vendor API calls per provider.
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aircraft_lookup_upstream_errors_total",
		Help: "Number of vendor API calls that failed, by provider.",
	}, []string{"provider"})
)
