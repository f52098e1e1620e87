package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS headers applied to every response. The API is consumed by a static
// frontend served from a different origin, so the policy is permissive.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type, X-Request-ID"
	corsMaxAge       = "86400"
)

// CORS returns middleware that attaches permissive CORS headers and
// short-circuits preflight requests with 204 No Content.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", corsAllowOrigin)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)

			if c.Request().Method == http.MethodOptions {
				h.Set("Access-Control-Max-Age", corsMaxAge)
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
