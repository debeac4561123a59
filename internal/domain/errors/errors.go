// Package errors defines application-level errors that carry an HTTP status
// alongside a user-facing message. The delivery layer maps them to responses;
// everything below the delivery layer deals in these values or in plain errors.
package errors

import "net/http"

// AppError is the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int   // HTTP status code
	Message() string // User-facing error message
}

// BaseError is a basic error value that implements the AppError interface.
type BaseError struct {
	httpCode int
	message  string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, message string) *BaseError {
	return &BaseError{httpCode: httpCode, message: message}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error values.
var (
	// ErrInvalidCredentials deliberately covers both an unknown email and a
	// wrong password so that login failures cannot be used for email
	// enumeration.
	ErrInvalidCredentials = NewBaseError(http.StatusUnauthorized, "invalid email or password")

	ErrUnauthenticated = NewBaseError(http.StatusUnauthorized, "authentication required")
	ErrForbidden       = NewBaseError(http.StatusForbidden, "no access to this resource")

	// ErrRefreshTokenInvalid covers a cryptographically invalid, expired,
	// wrong-class, or revoked refresh token. The cases are deliberately
	// indistinguishable to the caller.
	ErrRefreshTokenInvalid = NewBaseError(http.StatusForbidden, "invalid or expired refresh token")
	ErrRefreshTokenMissing = NewBaseError(http.StatusBadRequest, "refresh token is required")

	ErrEmailTaken     = NewBaseError(http.StatusBadRequest, "a user with this email already exists")
	ErrAvatarRequired = NewBaseError(http.StatusBadRequest, "avatar upload is required")

	ErrUserNotFound        = NewBaseError(http.StatusNotFound, "user not found")
	ErrSkillNotFound       = NewBaseError(http.StatusNotFound, "skill not found")
	ErrCategoryNotFound    = NewBaseError(http.StatusNotFound, "category not found")
	ErrSubcategoryNotFound = NewBaseError(http.StatusNotFound, "subcategory not found")
	ErrCityNotFound        = NewBaseError(http.StatusNotFound, "city not found")
	ErrLikeNotFound        = NewBaseError(http.StatusNotFound, "like not found")

	ErrLikeExists   = NewBaseError(http.StatusConflict, "like already exists")
	ErrSelfLike     = NewBaseError(http.StatusBadRequest, "you cannot like yourself")
	ErrLikeTargetID = NewBaseError(http.StatusBadRequest, "toUserId is required")

	ErrInternal = NewBaseError(http.StatusInternalServerError, "internal server error")
)

// FieldError is one per-field problem in a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a 400 with a structured list of per-field problems.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates a validation error from field problems.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code.
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// Message returns the user-facing error message.
func (e *ValidationError) Message() string {
	return "validation failed"
}

// BadRequest builds a one-off 400 with a custom message.
func BadRequest(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, message)
}
