package config

import (
	"errors"
	"fmt"

	"github.com/san-kum/polymd/internal/driver"
	"github.com/san-kum/polymd/internal/pair"
)

// Built is a configuration resolved into a driver table.
type Built struct {
	Kind        pair.Kind
	Types       []string
	Table       *driver.Table
	EnergyShift bool
}

// TypeIndex maps a type name to its table index.
func (b *Built) TypeIndex(name string) (int, bool) {
	for i, t := range b.Types {
		if t == name {
			return i, true
		}
	}
	return 0, false
}

// Build applies model defaults, decodes every coefficient block and fills
// a symmetric table. dmax is the largest particle diameter and is used
// only when neither r_cut nor d_max is set for a diameter-scaled model.
func (c *Config) Build(dmax float64) (*Built, error) {
	kind := pair.Kind(c.Model)
	desc, err := pair.Lookup(kind)
	if err != nil {
		return nil, err
	}

	var shift bool
	switch c.Mode {
	case "", ModeNone:
	case ModeShift:
		shift = true
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}

	if len(c.Coeffs) == 0 {
		return nil, ErrNoCoefficients
	}

	types := c.resolveTypes()
	index := make(map[string]int, len(types))
	for i, t := range types {
		index[t] = i
	}

	if c.DMax > 0 {
		dmax = c.DMax
	}

	table := driver.NewTable(len(types))
	seen := make(map[[2]int]bool, len(c.Coeffs))

	for _, co := range c.Coeffs {
		a, okA := index[co.A]
		b, okB := index[co.B]
		if !okA || !okB {
			return nil, &CoeffError{A: co.A, B: co.B, Err: fmt.Errorf("%w: type not declared", ErrMissingCoeff)}
		}
		key := [2]int{min(a, b), max(a, b)}
		if seen[key] {
			return nil, &CoeffError{A: co.A, B: co.B, Err: ErrDuplicateCoeff}
		}
		seen[key] = true

		pot, err := decodeCoeff(desc, co)
		if err != nil {
			return nil, err
		}

		rcut := co.RCut
		if rcut <= 0 {
			rcut = c.RCut
		}
		if rcut <= 0 {
			if !desc.NeedsDiameter {
				return nil, &CoeffError{A: co.A, B: co.B, Field: "r_cut", Err: ErrMissingField}
			}
			rcut = pot.MaxRange(dmax)
		}
		if err := table.Set(a, b, pot, rcut); err != nil {
			return nil, &CoeffError{A: co.A, B: co.B, Field: "r_cut", Err: err}
		}
	}

	for i := range types {
		for j := i; j < len(types); j++ {
			if !seen[[2]int{i, j}] {
				return nil, &CoeffError{A: types[i], B: types[j], Err: ErrMissingCoeff}
			}
		}
	}

	return &Built{Kind: kind, Types: types, Table: table, EnergyShift: shift}, nil
}

func (c *Config) resolveTypes() []string {
	if len(c.Types) > 0 {
		return c.Types
	}
	var types []string
	known := map[string]bool{}
	for _, co := range c.Coeffs {
		for _, t := range []string{co.A, co.B} {
			if !known[t] {
				known[t] = true
				types = append(types, t)
			}
		}
	}
	return types
}

// decodeCoeff fills model defaults, enforces required fields and decodes
// the block.
func decodeCoeff(desc pair.Descriptor, co Coeff) (pair.Potential, error) {
	rec := make(pair.Record, len(desc.Defaults)+len(co.Params))
	for k, v := range desc.Defaults {
		rec[k] = v
	}
	for k, v := range co.Params {
		rec[k] = v
	}

	for _, f := range desc.Required {
		if !rec.Has(f) {
			return pair.Potential{}, &CoeffError{A: co.A, B: co.B, Field: f, Err: ErrMissingField}
		}
	}

	pot, err := pair.NewPotential(desc.Kind, rec)
	if err != nil {
		ce := &CoeffError{A: co.A, B: co.B, Err: err}
		var pe *pair.ParamError
		if errors.As(err, &pe) {
			ce.Field = pe.Field
		}
		return pair.Potential{}, ce
	}

	if gp, ok := pot.General(); ok {
		if field, err := checkExponents(gp.M, gp.N); err != nil {
			return pair.Potential{}, &CoeffError{A: co.A, B: co.B, Field: field, Err: err}
		}
	}
	return pot, nil
}

// checkExponents returns the offending field with the error. n > m is
// reported against n_expnt.
func checkExponents(m, n int) (string, error) {
	switch {
	case m < 0:
		return "m_expnt", fmt.Errorf("%w: negative (m=%d, n=%d)", ErrInvalidExponent, m, n)
	case n < 0:
		return "n_expnt", fmt.Errorf("%w: negative (m=%d, n=%d)", ErrInvalidExponent, m, n)
	case m%2 != 0:
		return "m_expnt", fmt.Errorf("%w: odd (m=%d, n=%d)", ErrInvalidExponent, m, n)
	case n%2 != 0:
		return "n_expnt", fmt.Errorf("%w: odd (m=%d, n=%d)", ErrInvalidExponent, m, n)
	case n > m:
		return "n_expnt", fmt.Errorf("%w: n > m (m=%d, n=%d)", ErrInvalidExponent, m, n)
	}
	return "", nil
}
