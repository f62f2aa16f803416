package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateRange   = errors.New("check-out date must be after check-in date")
	ErrInvalidRate        = errors.New("nightly rate must be positive")
	ErrGuestLimitExceeded = errors.New("guest count exceeds property limit")
	ErrMissingField       = errors.New("required field is missing")

	ErrSubmitInFlight   = errors.New("another booking submission is already in progress")
	ErrNotFound         = errors.New("booking not found")
	ErrForbidden        = errors.New("not allowed to access this booking")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

// ValidationError ties a validation failure to the request field that caused
// it. Unwrap keeps the sentinel reachable through errors.Is.
type ValidationError struct {
	Field string `json:"field"`
	Err   error  `json:"-"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e ValidationError) Unwrap() error { return e.Err }

// Code maps the underlying sentinel to a stable API error code.
func (e ValidationError) Code() string {
	switch {
	case errors.Is(e.Err, ErrInvalidDateRange):
		return "INVALID_DATE_RANGE"
	case errors.Is(e.Err, ErrInvalidRate):
		return "INVALID_RATE"
	case errors.Is(e.Err, ErrGuestLimitExceeded):
		return "GUEST_LIMIT_EXCEEDED"
	case errors.Is(e.Err, ErrMissingField):
		return "MISSING_REQUIRED_FIELD"
	default:
		return "VALIDATION_ERROR"
	}
}
