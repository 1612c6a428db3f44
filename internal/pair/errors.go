package pair

import (
	"errors"
	"fmt"
)

// Domain errors for parameter handling.
var (
	// ErrShapeUnsupported is returned by ShapeSpec for isotropic potentials.
	ErrShapeUnsupported = errors.New("pair: shape definition not supported for this pair potential")

	// ErrInvalidParam indicates a parameter field with an unusable value.
	ErrInvalidParam = errors.New("pair: invalid parameter")

	// ErrUnknownField indicates a record key the parameter block does not define.
	ErrUnknownField = errors.New("pair: unknown parameter field")

	// ErrUnknownKind indicates a model name outside the registry.
	ErrUnknownKind = errors.New("pair: unknown potential kind")
)

// ParamError wraps a record decoding failure with the offending field.
type ParamError struct {
	Field   string
	Value   any
	Wrapped error
}

func (e *ParamError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%v: %q", e.Wrapped, e.Field)
	}
	return fmt.Sprintf("%v: %q = %v", e.Wrapped, e.Field, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
