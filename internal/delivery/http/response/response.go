// Package response holds the flat JSON bodies of the management API. The
// admin frontend matches on these exact shapes, so they stay minimal: either
// {"success":true}, a payload object, or {"error":"..."}.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OK writes {"success": true}.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

// JSON writes an arbitrary payload with the given status.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Error writes {"error": message} with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Unauthorized writes the fixed 401 body of the API gate.
func Unauthorized(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, "Unauthorized")
}
