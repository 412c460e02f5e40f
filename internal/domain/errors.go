package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// medspa, service, or appointment does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. empty service set, unknown status, malformed email).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidTransition is returned when a status change is not allowed from
// the appointment's current status.
// Handlers should map this to HTTP 409 Conflict.
var ErrInvalidTransition = errors.New("invalid status transition")

// FieldError ties a failure kind (one of the sentinels above) to the input
// field that caused it. errors.Is(err, ErrValidation) keeps working because
// Unwrap returns Kind.
type FieldError struct {
	Kind    error
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Message)
}

func (e *FieldError) Unwrap() error { return e.Kind }

// Invalid builds a FieldError of kind ErrValidation.
func Invalid(field, format string, args ...any) error {
	return &FieldError{Kind: ErrValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Missing builds a FieldError of kind ErrNotFound.
func Missing(field, format string, args ...any) error {
	return &FieldError{Kind: ErrNotFound, Field: field, Message: fmt.Sprintf(format, args...)}
}
