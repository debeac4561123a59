// Package response defines the JSON shapes the API returns.
package response

import (
	"github.com/labstack/echo/v4"

	domainerrors "skillswap/internal/domain/errors"
)

// ErrorBody is the error envelope. Details is only present on validation
// failures.
type ErrorBody struct {
	Error   string                    `json:"error"`
	Details []domainerrors.FieldError `json:"details,omitempty"`
}

// Error writes the error envelope with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// ValidationFailed writes a 400 with the per-field problems attached.
func ValidationFailed(c echo.Context, statusCode int, message string, fields []domainerrors.FieldError) error {
	return c.JSON(statusCode, ErrorBody{Error: message, Details: fields})
}
