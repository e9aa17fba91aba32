package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Field shape errors
	ErrEmptyField     = errors.New("field has no data")
	ErrRaggedField    = errors.New("field rows have unequal lengths")
	ErrDomainTooLarge = errors.New("requested domain exceeds field extent")

	// Statistic errors
	ErrEmptyDomain  = errors.New("no valid pixels in radar domain")
	ErrZeroVariance = errors.New("zero variance input")

	// Determinism errors
	ErrSeedMismatch = errors.New("seed mismatch")
	ErrHashMismatch = errors.New("hash mismatch")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewFieldShapeError(rows, cols int, err error) error {
	return fmt.Errorf("%w: %dx%d", err, rows, cols)
}

// Error checking helpers
func IsFieldError(err error) bool {
	return errors.Is(err, ErrEmptyField) ||
		errors.Is(err, ErrRaggedField) ||
		errors.Is(err, ErrDomainTooLarge)
}

func IsDeterminismError(err error) bool {
	return errors.Is(err, ErrSeedMismatch) ||
		errors.Is(err, ErrHashMismatch)
}
