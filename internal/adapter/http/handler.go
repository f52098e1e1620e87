// Package http provides the HTTP handler layer for the aircraft lookup API.
// It handles request parsing, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-lookup/aircraft-lookup-service/internal/adapter/http/response"
	"github.com/flight-lookup/aircraft-lookup-service/internal/cache"
	"github.com/flight-lookup/aircraft-lookup-service/internal/domain"
	"github.com/flight-lookup/aircraft-lookup-service/internal/infrastructure/timeutil"
	"github.com/flight-lookup/aircraft-lookup-service/internal/usecase"
)

// Upstream status codes surfaced to the client verbatim instead of being
// collapsed into a 500.
var passthroughStatuses = map[int]string{
	http.StatusUnauthorized:    "Invalid or unauthorized API key",
	http.StatusForbidden:       "Invalid or unauthorized API key",
	http.StatusNotFound:        "No data found for this flight",
	http.StatusTooManyRequests: "Rate limit exceeded, please try again later",
}

// AircraftHandler handles HTTP requests for aircraft lookup endpoints.
type AircraftHandler struct {
	useCase  usecase.AircraftLookupUseCase
	registry *domain.ProviderRegistry
	store    cache.Store
	clock    timeutil.Clock
	version  string
	env      string
}

// NewAircraftHandler creates a new AircraftHandler.
func NewAircraftHandler(uc usecase.AircraftLookupUseCase, registry *domain.ProviderRegistry, store cache.Store, clock timeutil.Clock, version, env string) *AircraftHandler {
	return &AircraftHandler{
		useCase:  uc,
		registry: registry,
		store:    store,
		clock:    clock,
		version:  version,
		env:      env,
	}
}

// GetAircraft returns an echo handler resolving :flightNumber/:date through
// the named provider. Each provider route binds its own instance.
//
// @Summary Look up aircraft details
// @Description Resolves a flight number and date to a normalized aircraft record
// @Tags aircraft
// @Produce json
// @Param flightNumber path string true "Flight number (e.g. UA100)"
// @Param date path string true "Flight date (YYYY-MM-DD)"
// @Success 200 {object} domain.AircraftDetails
// @Failure 400 {object} response.Error "Invalid date"
// @Failure 404 {object} response.Error "No data for this flight/date"
// @Failure 500 {object} response.Error "Configuration or upstream failure"
// @Router /api/aircraft/{flightNumber}/{date} [get]
func (h *AircraftHandler) GetAircraft(providerName string) echo.HandlerFunc {
	return func(c echo.Context) error {
		flightNumber := c.Param("flightNumber")
		date := c.Param("date")

		details, err := h.useCase.Lookup(c.Request().Context(), providerName, flightNumber, date)
		if err != nil {
			return h.handleError(c, err)
		}

		return response.OK(c, details)
	}
}

// handleError maps domain errors to HTTP responses.
func (h *AircraftHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidDate) {
		return response.BadRequest(c, "Invalid date format. Please use YYYY-MM-DD.")
	}
	if errors.Is(err, domain.ErrUnknownProvider) {
		return response.BadRequest(c, err.Error())
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return response.NotFound(c, notFound.Message)
	}

	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		return response.InternalServerErrorWithMessage(c, configErr.Message)
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		if msg, ok := passthroughStatuses[upstream.StatusCode]; ok {
			return response.UpstreamStatus(c, upstream.StatusCode, msg, upstream.Body)
		}
		return response.InternalServerError(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	return response.InternalServerError(c, err.Error())
}

// HealthResponse is the GET /api/health payload.
type HealthResponse struct {
	Status      string            `json:"status"`
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	Timestamp   string            `json:"timestamp"`
	Environment string            `json:"environment"`
	APIs        map[string]string `json:"apis"`
}

// Health handles GET /api/health. It reports per-provider credential state
// without exposing the keys themselves.
//
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (h *AircraftHandler) Health(c echo.Context) error {
	apis := make(map[string]string)
	for _, p := range h.registry.GetAll() {
		state := "not configured"
		if p.Configured() {
			state = "configured"
		}
		apis[p.Name()] = state
	}

	return response.OK(c, &HealthResponse{
		Status:      "UP",
		Message:     "Server is running!",
		Version:     h.version,
		Timestamp:   h.clock.Now().UTC().Format(time.RFC3339),
		Environment: h.env,
		APIs:        apis,
	})
}

// Test handles GET /api/test, a liveness probe that touches no upstream.
func (h *AircraftHandler) Test(c echo.Context) error {
	return response.OK(c, map[string]string{
		"status":    "success",
		"message":   "API test endpoint is working!",
		"timestamp": h.clock.Now().UTC().Format(time.RFC3339),
	})
}

// cacheEntryDTO mirrors one cache entry in the admin payload.
type cacheEntryDTO struct {
	Key        string `json:"key"`
	Expires    string `json:"expires"`
	TimeToLive string `json:"timeToLive"`
}

// CacheInfoResponse is the GET /api/admin/cache payload.
type CacheInfoResponse struct {
	CacheSize int             `json:"cacheSize"`
	Entries   []cacheEntryDTO `json:"entries"`
}

// CacheInfo handles GET /api/admin/cache.
//
// @Summary Inspect the lookup cache
// @Tags admin
// @Produce json
// @Success 200 {object} CacheInfoResponse
// @Router /api/admin/cache [get]
func (h *AircraftHandler) CacheInfo(c echo.Context) error {
	entries, err := h.store.Entries(c.Request().Context())
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}

	dtos := make([]cacheEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, cacheEntryDTO{
			Key:        e.Key,
			Expires:    e.ExpiresAt.UTC().Format(time.RFC3339),
			TimeToLive: fmt.Sprintf("%d seconds", int(e.TTLRemaining.Seconds())),
		})
	}

	return response.OK(c, &CacheInfoResponse{
		CacheSize: len(dtos),
		Entries:   dtos,
	})
}

// CacheClear handles POST /api/admin/cache/clear.
//
// @Summary Clear the lookup cache
// @Tags admin
// @Produce json
// @Success 200 {object} response.Error
// @Router /api/admin/cache/clear [post]
func (h *AircraftHandler) CacheClear(c echo.Context) error {
	if err := h.store.Clear(c.Request().Context()); err != nil {
		return response.InternalServerError(c, err.Error())
	}

	return response.OK(c, map[string]string{
		"status":    "success",
		"message":   "Cache cleared successfully",
		"timestamp": h.clock.Now().UTC().Format(time.RFC3339),
	})
}
