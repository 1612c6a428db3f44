package driver

import (
	"errors"
	"fmt"
)

// Domain errors for driver inputs.
var (
	// ErrDimensionMismatch indicates per-particle slices of different lengths.
	ErrDimensionMismatch = errors.New("driver: dimension mismatch between particle arrays")

	// ErrUnknownType indicates a particle type outside the table.
	ErrUnknownType = errors.New("driver: particle type not in table")

	// ErrInvalidBox indicates a negative or non-finite box length.
	ErrInvalidBox = errors.New("driver: invalid box length")

	// ErrInvalidCutoff indicates a table cutoff the potential cannot use.
	ErrInvalidCutoff = errors.New("driver: invalid cutoff")
)

// ParticleError wraps an input error with the offending particle index.
type ParticleError struct {
	Index   int
	Wrapped error
}

func (e *ParticleError) Error() string {
	return fmt.Sprintf("particle %d: %v", e.Index, e.Wrapped)
}

func (e *ParticleError) Unwrap() error {
	return e.Wrapped
}
