package config

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	// ErrNoCoefficients indicates a configuration without any coefficient block.
	ErrNoCoefficients = errors.New("config: no pair coefficients")

	// ErrMissingCoeff indicates a type pair without a coefficient block.
	ErrMissingCoeff = errors.New("config: pair coefficients not set")

	// ErrDuplicateCoeff indicates a type pair given more than once.
	ErrDuplicateCoeff = errors.New("config: pair coefficients set twice")

	// ErrMissingField indicates a required parameter with no value and no default.
	ErrMissingField = errors.New("config: required parameter missing")

	// ErrInvalidExponent indicates generalized exponents that are odd,
	// negative or have n > m.
	ErrInvalidExponent = errors.New("config: invalid exponents")

	// ErrInvalidMode indicates an unknown energy mode.
	ErrInvalidMode = errors.New("config: invalid mode")
)

// CoeffError reports a problem with one type pair's coefficients.
type CoeffError struct {
	A, B  string
	Field string
	Err   error
}

func (e *CoeffError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("pair (%s, %s): %v", e.A, e.B, e.Err)
	}
	return fmt.Sprintf("pair (%s, %s): %s: %v", e.A, e.B, e.Field, e.Err)
}

func (e *CoeffError) Unwrap() error {
	return e.Err
}
