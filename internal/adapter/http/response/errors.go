// Package response provides standardized HTTP response builders for the aircraft lookup API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &Error{Message: message})
}

// NotFound writes a 404 Not Found response with the given message.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, &Error{Message: message})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context, details string) error {
	return c.JSON(http.StatusInternalServerError, &Error{
		Message: MsgInternalError,
		Details: details,
	})
}

// InternalServerErrorWithMessage writes a 500 response with a custom message.
func InternalServerErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, &Error{Message: message})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &Error{Message: MsgTimeout})
}

// UpstreamStatus passes a vendor status code through with a vendor-keyed
// message. Used for the 401/403/404/429 codes the UI surfaces verbatim.
func UpstreamStatus(c echo.Context, statusCode int, message, details string) error {
	return c.JSON(statusCode, &Error{
		Message: message,
		Details: details,
	})
}
