// Package response defines the unified JSON envelope for the HTTP API.
package response

import (
	domainerrors "taskboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response is the unified API response structure. Every endpoint wraps
// its payload in this envelope.
type Response struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message,omitempty"`
	Data    any                       `json:"data,omitempty"`
	Errors  []domainerrors.FieldError `json:"errors,omitempty"`
}

// Success writes a successful response with an optional message.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failed response. fieldErrors may be nil for errors
// that are not tied to specific input fields.
func Error(c echo.Context, statusCode int, message string, fieldErrors []domainerrors.FieldError) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Errors:  fieldErrors,
	})
}
