package trousers

import (
	"errors"
	"fmt"
)

// ErrConstraintViolation is returned when the measurements and ease cannot
// be drafted into a finite frame.
var ErrConstraintViolation = errors.New("trousers: constraint violation")

// ConstraintError describes which solved quantity failed.
type ConstraintError struct {
	// Field is the solved quantity, e.g. "front_waist_end_x".
	Field string
	// Value is the offending value (NaN or ±Inf for non-finite results).
	Value float64
	// Reason explains the failed constraint.
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("trousers: constraint violation: %s = %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrConstraintViolation) succeed.
func (e *ConstraintError) Unwrap() error {
	return ErrConstraintViolation
}
