// Package validator adapts go-playground/validator to echo's Validator
// interface and to the API's field-level error format.
package validator

import (
	"errors"
	"strings"

	playground "github.com/go-playground/validator/v10"

	domainerrors "skillswap/internal/domain/errors"
)

// Validator wraps a single validator instance for reuse across requests.
type Validator struct {
	validate *playground.Validate
}

// New is the constructor for Validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks struct tags and converts failures into the API's
// validation error carrying per-field messages.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fieldName(fe),
			Message: messageFor(fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

// fieldName lowercases the first rune of the struct field so that error
// fields match the JSON payload keys.
func fieldName(fe playground.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}

	return strings.ToLower(name[:1]) + name[1:]
}

func messageFor(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
