// Package response provides standardized HTTP response builders for the
// aircraft lookup API. All error bodies share the {message, details} shape
// the UI expects.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error is the uniform error payload.
type Error struct {
	// Message is a human-readable error message
	Message string `json:"message"`

	// Details carries optional diagnostic context (upstream body, parse hint)
	Details string `json:"details,omitempty"`
}

// Error messages used in API responses.
const (
	MsgInternalError = "Error fetching aircraft data"
	MsgTimeout       = "Upstream request timed out"
)

// OK writes a 200 OK response with the given payload.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Message writes a response carrying only a message, at the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &Error{Message: message})
}
