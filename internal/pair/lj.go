package pair

import "math"

// Evaluator names reported by Name.
const (
	NameLJ             = "lj"
	NameForceShiftedLJ = "force_shifted_lj"
)

// LJParams holds the Lennard-Jones coefficients for one type pair.
//
//	V(r) = 4 epsilon [ (sigma/r)^12 - alpha (sigma/r)^6 ]
//
// is evaluated as r^-6 (LJ1 r^-6 - LJ2) with LJ1 = 4 epsilon sigma^12 and
// LJ2 = 4 alpha epsilon sigma^6.
type LJParams struct {
	Epsilon float64
	Sigma   float64
	Alpha   float64
	LJ1     float64
	LJ2     float64
}

// NewLJParams derives LJ1 and LJ2 from the physical coefficients.
func NewLJParams(epsilon, sigma, alpha float64) LJParams {
	return LJParams{
		Epsilon: epsilon,
		Sigma:   sigma,
		Alpha:   alpha,
		LJ1:     4.0 * epsilon * math.Pow(sigma, 12.0),
		LJ2:     alpha * 4.0 * epsilon * math.Pow(sigma, 6.0),
	}
}

// LJ evaluates the classical truncated Lennard-Jones potential with a single
// global cutoff.
type LJ struct {
	isotropic
	rsq    float64
	rcutsq float64
	p      LJParams
}

// NewLJ stores one pair's squared distance and cutoff. No range check
// happens until EvalForceAndEnergy.
func NewLJ(rsq, rcutsq float64, p LJParams) LJ {
	return LJ{rsq: rsq, rcutsq: rcutsq, p: p}
}

func (LJ) NeedsDiameter() bool            { return false }
func (LJ) NeedsCharge() bool              { return false }
func (e LJ) WithDiameter(_, _ float64) LJ { return e }
func (e LJ) WithCharge(_, _ float64) LJ   { return e }
func (LJ) Name() string                   { return NameLJ }

func (e LJ) EvalForceAndEnergy(energyShift bool) (forceDivR, pairEng float64, ok bool) {
	if !(e.rsq < e.rcutsq) || e.p.LJ1 == 0 {
		return 0, 0, false
	}
	lj1, lj2 := e.p.LJ1, e.p.LJ2
	r2inv := 1.0 / e.rsq
	r6inv := r2inv * r2inv * r2inv
	forceDivR = r2inv * r6inv * (12.0*lj1*r6inv - 6.0*lj2)

	pairEng = r6inv * (lj1*r6inv - lj2)
	if energyShift {
		rcut2inv := 1.0 / e.rcutsq
		rcut6inv := rcut2inv * rcut2inv * rcut2inv
		pairEng -= rcut6inv * (lj1*rcut6inv - lj2)
	}
	return forceDivR, pairEng, true
}

// PressureLRCIntegral returns -int_rc^inf r dV/dr r^2 dr.
func (e LJ) PressureLRCIntegral() float64 {
	rcut3inv := 1.0 / math.Pow(e.rcutsq, 1.5)
	rcut9inv := rcut3inv * rcut3inv * rcut3inv
	return e.p.LJ1*4.0/3.0*rcut9inv - e.p.LJ2*2.0*rcut3inv
}

// EnergyLRCIntegral returns int_rc^inf V(r) r^2 dr.
func (e LJ) EnergyLRCIntegral() float64 {
	rcut3inv := 1.0 / math.Pow(e.rcutsq, 1.5)
	rcut9inv := rcut3inv * rcut3inv * rcut3inv
	return e.p.LJ1/9.0*rcut9inv - e.p.LJ2/3.0*rcut3inv
}

// ForceShiftedLJ subtracts the cutoff force so that the force vanishes at
// the cutoff:
//
//	V(r) = V_LJ(r) + (r - rc) F_LJ(rc)
//
// With energyShift the cutoff energy V_LJ(rc) is subtracted too, which
// makes the energy vanish there as well.
type ForceShiftedLJ struct {
	isotropic
	noTail
	rsq    float64
	rcutsq float64
	p      LJParams
}

// NewForceShiftedLJ is the force-shifted counterpart of NewLJ.
func NewForceShiftedLJ(rsq, rcutsq float64, p LJParams) ForceShiftedLJ {
	return ForceShiftedLJ{rsq: rsq, rcutsq: rcutsq, p: p}
}

func (ForceShiftedLJ) NeedsDiameter() bool                        { return false }
func (ForceShiftedLJ) NeedsCharge() bool                          { return false }
func (e ForceShiftedLJ) WithDiameter(_, _ float64) ForceShiftedLJ { return e }
func (e ForceShiftedLJ) WithCharge(_, _ float64) ForceShiftedLJ   { return e }
func (ForceShiftedLJ) Name() string                               { return NameForceShiftedLJ }

func (e ForceShiftedLJ) EvalForceAndEnergy(energyShift bool) (forceDivR, pairEng float64, ok bool) {
	if !(e.rsq < e.rcutsq) || e.p.LJ1 == 0 {
		return 0, 0, false
	}
	lj1, lj2 := e.p.LJ1, e.p.LJ2
	r2inv := 1.0 / e.rsq
	r6inv := r2inv * r2inv * r2inv
	forceDivR = r2inv * r6inv * (12.0*lj1*r6inv - 6.0*lj2)

	rcut2inv := 1.0 / e.rcutsq
	rcut6inv := rcut2inv * rcut2inv * rcut2inv
	forceDivRCut := rcut2inv * rcut6inv * (12.0*lj1*rcut6inv - 6.0*lj2)

	r := math.Sqrt(e.rsq)
	rcut := math.Sqrt(e.rcutsq)

	// F(rc) = forceDivRCut*rc; F/r picks up 1/r.
	forceDivR -= forceDivRCut * rcut / r
	pairEng = r6inv*(lj1*r6inv-lj2) + forceDivRCut*rcut*(r-rcut)
	if energyShift {
		pairEng -= rcut6inv * (lj1*rcut6inv - lj2)
	}
	return forceDivR, pairEng, true
}
