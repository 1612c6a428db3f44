package driver

import (
	"fmt"
	"math"

	"github.com/san-kum/polymd/internal/pair"
)

// Table holds one potential and one squared pre-filter cutoff per
// unordered type pair. Unset entries are the disabled zero potential.
type Table struct {
	ntypes int
	pots   []pair.Potential
	rcutsq []float64
}

func NewTable(ntypes int) *Table {
	return &Table{
		ntypes: ntypes,
		pots:   make([]pair.Potential, ntypes*ntypes),
		rcutsq: make([]float64, ntypes*ntypes),
	}
}

func (t *Table) NumTypes() int { return t.ntypes }

// Set assigns pot to both (a, b) and (b, a). A non-positive rcut disables
// the pre-filter. That is only allowed for diameter-scaled kinds, which
// apply their own cutoff; for the others rcut is the evaluator's cutoff
// and must be positive and finite.
func (t *Table) Set(a, b int, pot pair.Potential, rcut float64) error {
	rcutsq := rcut * rcut
	switch {
	case math.IsNaN(rcut) || math.IsInf(rcut, 0):
		return fmt.Errorf("%w: %g", ErrInvalidCutoff, rcut)
	case rcut <= 0 && !pot.IsZero() && !pot.Kind().IsPolydisperse():
		return fmt.Errorf("%w: %s requires r_cut > 0, got %g", ErrInvalidCutoff, pot.Kind(), rcut)
	case rcut <= 0:
		rcutsq = math.Inf(1)
	}
	t.pots[a*t.ntypes+b], t.pots[b*t.ntypes+a] = pot, pot
	t.rcutsq[a*t.ntypes+b], t.rcutsq[b*t.ntypes+a] = rcutsq, rcutsq
	return nil
}

// Get returns the potential and squared pre-filter cutoff of a type pair.
func (t *Table) Get(a, b int) (pair.Potential, float64) {
	k := a*t.ntypes + b
	return t.pots[k], t.rcutsq[k]
}

// NeedsDiameter reports whether any entry reads particle diameters.
func (t *Table) NeedsDiameter() bool {
	for _, p := range t.pots {
		if p.NeedsDiameter() {
			return true
		}
	}
	return false
}

// NeedsCharge reports whether any entry reads particle charges.
func (t *Table) NeedsCharge() bool {
	for _, p := range t.pots {
		if p.NeedsCharge() {
			return true
		}
	}
	return false
}

// MaxCutoff returns the largest finite pre-filter radius in the table.
func (t *Table) MaxCutoff() float64 {
	m := 0.0
	for i, rsq := range t.rcutsq {
		if t.pots[i].IsZero() || math.IsInf(rsq, 1) {
			continue
		}
		m = math.Max(m, math.Sqrt(rsq))
	}
	return m
}
