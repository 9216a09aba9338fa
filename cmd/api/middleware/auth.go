package middleware

import (
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// UsernameKey is the context key for storing the acting username
	UsernameKey ContextKey = "username"
)

// ExtractUsername extracts the X-User-ID header into the request context.
// The value names who a change was made on behalf of; notification events
// carry it as the actor. An absent header is allowed.
func ExtractUsername() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username := c.Request().Header.Get("X-User-ID")
			if username != "" {
				c.Set(string(UsernameKey), username)
			}
			return next(c)
		}
	}
}

// GetUsername retrieves the username from the request context.
// Returns empty string if not set.
func GetUsername(c echo.Context) string {
	username := c.Get(string(UsernameKey))
	if username == nil {
		return ""
	}
	return username.(string)
}
