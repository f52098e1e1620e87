// Package http provides the HTTP handler layer for the aircraft lookup API.
package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-lookup/aircraft-lookup-service/internal/adapter/provider/aerodatabox"
	"github.com/flight-lookup/aircraft-lookup-service/internal/adapter/provider/flightaware"
)

// RegisterRoutes registers all aircraft lookup API routes. The path layout
// mirrors the UI contract: AeroDataBox is the default lookup source and
// FlightAware lives under its own prefix.
func RegisterRoutes(e *echo.Echo, h *AircraftHandler) {
	api := e.Group("/api")

	api.GET("/aircraft/:flightNumber/:date", h.GetAircraft(aerodatabox.ProviderName))
	api.GET("/flightaware/aircraft/:flightNumber/:date", h.GetAircraft(flightaware.ProviderName))

	api.GET("/health", h.Health)
	api.GET("/test", h.Test)

	admin := api.Group("/admin")
	admin.GET("/cache", h.CacheInfo)
	admin.POST("/cache/clear", h.CacheClear)
}
