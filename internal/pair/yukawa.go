package pair

import "math"

// NamePolydisperseYukawa is the name of the screened coulomb variant.
const NamePolydisperseYukawa = "polydisperse-yukawa"

// YukawaParams holds the polydisperse screened-Coulomb parameters. Kappa is
// the inverse screening length in units of sigma.
type YukawaParams struct {
	V0         float64
	Eps        float64
	ScaledRcut float64
	Kappa      float64
	C0         float64
	C1         float64
	C2         float64
}

// NewYukawaParams derives the smoothing coefficients that cancel
// v0 exp(-kappa x)/x together with its first two derivatives at scaledRcut.
func NewYukawaParams(v0, eps, scaledRcut, kappa float64) YukawaParams {
	xc := scaledRcut
	e := v0 * math.Exp(-kappa*xc)
	f := e / xc
	df := -e * (kappa*xc + 1) / (xc * xc)
	d2f := e * (kappa*kappa*xc*xc + 2*kappa*xc + 2) / (xc * xc * xc)
	s := SmoothShift(f, df, d2f, xc)
	return YukawaParams{
		V0:         v0,
		Eps:        eps,
		ScaledRcut: scaledRcut,
		Kappa:      kappa,
		C0:         s.C0,
		C1:         s.C1,
		C2:         s.C2,
	}
}

// PolydisperseYukawa evaluates
//
//	V(r) = v0 exp(-kappa x)/x + c0 + c1 x^2 + c2 x^4,  x = r/sigma
//
// The energy is always smoothed; energyShift is ignored.
type PolydisperseYukawa struct {
	polydisperse
	p YukawaParams
}

// NewPolydisperseYukawa stores one pair; the effective cutoff decides
// acceptance.
func NewPolydisperseYukawa(rsq, rcutsq float64, p YukawaParams) PolydisperseYukawa {
	return PolydisperseYukawa{polydisperse: polydisperse{rsq: rsq, rcutsq: rcutsq}, p: p}
}

func (e PolydisperseYukawa) WithDiameter(di, dj float64) PolydisperseYukawa {
	e.di, e.dj = di, dj
	return e
}

func (e PolydisperseYukawa) WithCharge(_, _ float64) PolydisperseYukawa { return e }
func (PolydisperseYukawa) Name() string                                 { return NamePolydisperseYukawa }

func (e PolydisperseYukawa) EvalForceAndEnergy(_ bool) (forceDivR, pairEng float64, ok bool) {
	p := e.p
	sigma2, r2, _, ok := e.reduce(p.V0, p.Eps, p.ScaledRcut)
	if !ok {
		return 0, 0, false
	}
	x := math.Sqrt(r2)
	screened := p.V0 * math.Exp(-p.Kappa*x)
	forceDivR = (screened*(1+p.Kappa*x)/(x*r2) - 2.0*p.C1 - 4.0*p.C2*r2) / sigma2
	pairEng = screened/x + p.C0 + p.C1*r2 + p.C2*r2*r2
	return forceDivR, pairEng, true
}
