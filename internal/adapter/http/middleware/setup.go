package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order:
//  1. CORS - first, so even errors and preflights carry the CORS headers
//  2. RequestID - generates/propagates the ID used by all later logging
//  3. RequestLogger - logs every request with its ID
//  4. Recover - catches panics and returns 500 (wraps handlers)
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(CORS())
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
