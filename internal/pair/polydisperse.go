package pair

import "math"

// EffectiveSigma returns the pair length scale: the mean diameter reduced
// by eps times the diameter mismatch.
func EffectiveSigma(di, dj, eps float64) float64 {
	return 0.5 * (di + dj) * (1 - eps*math.Abs(di-dj))
}

// PolyParams holds the parameters of the fixed-exponent polydisperse
// variants. C0, C1 and C2 are derived by the New*Params constructor of the
// variant the block is meant for.
type PolyParams struct {
	V0         float64
	Eps        float64
	ScaledRcut float64
	C0         float64
	C1         float64
	C2         float64
}

// Shift holds the coefficients of c0 + c1 x^2 + c2 x^4 that bring a
// potential, its slope and its curvature to zero at the reduced cutoff.
type Shift struct {
	C0, C1, C2 float64
}

func (s Shift) sub(o Shift) Shift {
	return Shift{C0: s.C0 - o.C0, C1: s.C1 - o.C1, C2: s.C2 - o.C2}
}

// PowerShift returns the smoothing coefficients for v0 x^-p cut at xc.
// For p = 12 these are -28 v0/xc^12, 48 v0/xc^14 and -21 v0/xc^16.
func PowerShift(v0, xc float64, p int) Shift {
	fp := float64(p)
	return Shift{
		C0: -float64((p+2)*(p+4)) / 8.0 * v0 / math.Pow(xc, fp),
		C1: float64(p*(p+4)) / 4.0 * v0 / math.Pow(xc, fp+2),
		C2: -float64(p*(p+2)) / 8.0 * v0 / math.Pow(xc, fp+4),
	}
}

// PairShift returns the smoothing coefficients for v0 (x^-m - x^-n).
func PairShift(v0, xc float64, m, n int) Shift {
	return PowerShift(v0, xc, m).sub(PowerShift(v0, xc, n))
}

// SmoothShift solves for the coefficients that cancel f, f' and f'' at xc
// for an arbitrary reduced potential f.
func SmoothShift(f, df, d2f, xc float64) Shift {
	a := -df
	b := -d2f
	c2 := (b*xc - a) / (8 * xc * xc * xc)
	c1 := (b - 12*c2*xc*xc) / 2
	c0 := -f - c1*xc*xc - c2*xc*xc*xc*xc
	return Shift{C0: c0, C1: c1, C2: c2}
}

func newPolyParams(v0, eps, scaledRcut float64, s Shift) PolyParams {
	return PolyParams{V0: v0, Eps: eps, ScaledRcut: scaledRcut, C0: s.C0, C1: s.C1, C2: s.C2}
}

// NewPoly12Params smooths v0 x^-12 at scaledRcut.
func NewPoly12Params(v0, eps, scaledRcut float64) PolyParams {
	return newPolyParams(v0, eps, scaledRcut, PowerShift(v0, scaledRcut, 12))
}

// NewPoly18Params smooths v0 x^-18 at scaledRcut.
func NewPoly18Params(v0, eps, scaledRcut float64) PolyParams {
	return newPolyParams(v0, eps, scaledRcut, PowerShift(v0, scaledRcut, 18))
}

// NewPoly10Params smooths v0 x^-10 at scaledRcut.
func NewPoly10Params(v0, eps, scaledRcut float64) PolyParams {
	return newPolyParams(v0, eps, scaledRcut, PowerShift(v0, scaledRcut, 10))
}

// NewPolyLJParams smooths v0 (x^-12 - x^-6) at scaledRcut.
func NewPolyLJParams(v0, eps, scaledRcut float64) PolyParams {
	return newPolyParams(v0, eps, scaledRcut, PairShift(v0, scaledRcut, 12, 6))
}

// NewPolyLJ106Params smooths v0 (x^-10 - x^-6) at scaledRcut.
func NewPolyLJ106Params(v0, eps, scaledRcut float64) PolyParams {
	return newPolyParams(v0, eps, scaledRcut, PairShift(v0, scaledRcut, 10, 6))
}

// polydisperse is the state shared by the diameter-scaled variants.
type polydisperse struct {
	isotropic
	noTail
	rsq    float64
	rcutsq float64
	di, dj float64
}

func (polydisperse) NeedsDiameter() bool { return true }
func (polydisperse) NeedsCharge() bool   { return false }

// reduce applies the pair-local strict cutoff test and returns sigma^2,
// x^2 = rsq/sigma^2 and its inverse.
func (e polydisperse) reduce(v0, eps, scaledRcut float64) (sigma2, r2, r2inv float64, ok bool) {
	sigma := EffectiveSigma(e.di, e.dj, eps)
	sigma2 = sigma * sigma
	actualcutsq := scaledRcut * scaledRcut * sigma2
	if !(e.rsq < actualcutsq) || v0 == 0 {
		return 0, 0, 0, false
	}
	return sigma2, e.rsq / sigma2, sigma2 / e.rsq, true
}
