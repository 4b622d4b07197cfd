package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrValidation marks malformed or inconsistent input records.
	// Fatal at load: the engine never computes on invalid data.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRange marks a rejected week-range command. The prior
	// selection state is retained by the caller.
	ErrInvalidRange = errors.New("invalid week range")

	// ErrEmptySelection marks a cell-scoped computation attempted in
	// Locator mode. These operations require a selected (service, week).
	ErrEmptySelection = errors.New("no cell selected")

	ErrNotFound        = errors.New("resource not found")
	ErrServiceNotFound = fmt.Errorf("%w: service", ErrNotFound)
	ErrRecordNotFound  = fmt.Errorf("%w: record", ErrNotFound)
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, field, reason)
}

func NewRecordValidationError(service string, week int, reason string) error {
	return fmt.Errorf("%w: record (%s, week %d): %s", ErrValidation, service, week, reason)
}

func NewInvalidRangeError(lo, hi int, reason string) error {
	return fmt.Errorf("%w: [%d, %d]: %s", ErrInvalidRange, lo, hi, reason)
}

func NewRecordNotFoundError(service string, week int) error {
	return fmt.Errorf("%w (%s, week %d)", ErrRecordNotFound, service, week)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsInvalidRangeError(err error) bool {
	return errors.Is(err, ErrInvalidRange)
}

func IsEmptySelectionError(err error) bool {
	return errors.Is(err, ErrEmptySelection)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
