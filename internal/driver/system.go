package driver

import (
	"fmt"
	"math"

	"github.com/san-kum/polymd/internal/pair"
)

// System is a set of particles in an optional cubic periodic box. Box == 0
// means open boundaries. Diameters and Charges may be nil when no potential
// in the table reads them.
type System struct {
	Positions [][3]float64
	Types     []int
	Diameters []float64
	Charges   []float64
	Box       float64
}

func (s *System) Len() int { return len(s.Positions) }

// Validate checks the system against a table before a force pass.
func (s *System) Validate(t *Table) error {
	n := s.Len()
	if len(s.Types) != n {
		return fmt.Errorf("%w: %d positions, %d types", ErrDimensionMismatch, n, len(s.Types))
	}
	if t.NeedsDiameter() && len(s.Diameters) != n {
		return fmt.Errorf("%w: %d positions, %d diameters", ErrDimensionMismatch, n, len(s.Diameters))
	}
	if t.NeedsCharge() && len(s.Charges) != n {
		return fmt.Errorf("%w: %d positions, %d charges", ErrDimensionMismatch, n, len(s.Charges))
	}
	if s.Box < 0 || math.IsNaN(s.Box) || math.IsInf(s.Box, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidBox, s.Box)
	}
	for i, typ := range s.Types {
		if typ < 0 || typ >= t.NumTypes() {
			return &ParticleError{Index: i, Wrapped: fmt.Errorf("%w: type %d", ErrUnknownType, typ)}
		}
	}
	return nil
}

// MaxDiameter returns the largest particle diameter, or 0 without
// diameters.
func (s *System) MaxDiameter() float64 {
	m := 0.0
	for _, d := range s.Diameters {
		m = math.Max(m, d)
	}
	return m
}

// delta returns r_i - r_j under the minimum image convention.
func (s *System) delta(ri, rj [3]float64) [3]float64 {
	d := [3]float64{ri[0] - rj[0], ri[1] - rj[1], ri[2] - rj[2]}
	if s.Box > 0 {
		for k := range d {
			d[k] -= s.Box * math.Round(d[k]/s.Box)
		}
	}
	return d
}

func (s *System) attributes(pot pair.Potential, i, j int) pair.Attributes {
	var attr pair.Attributes
	if pot.NeedsDiameter() {
		attr.Di, attr.Dj = s.Diameters[i], s.Diameters[j]
	}
	if pot.NeedsCharge() {
		attr.Qi, attr.Qj = s.Charges[i], s.Charges[j]
	}
	return attr
}
