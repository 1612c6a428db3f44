package pair

// NamePolydisperseGeneral is the name of the runtime-exponent variant.
const NamePolydisperseGeneral = "polydisperse"

// GeneralParams holds the runtime-exponent polydisperse parameters. M is
// the repulsive and N the attractive exponent; both must be even with
// N <= M. C0, C1 and C2 are carried in the block rather than derived per
// pair. Every field is a named record field, so a block round-trips
// through Record exactly.
type GeneralParams struct {
	V0         float64
	Eps        float64
	ScaledRcut float64
	M, N       int
	C0         float64
	C1         float64
	C2         float64
}

// NewGeneralParams derives the smoothing coefficients of v0 (x^-m - x^-n) at scaledRcut.
func NewGeneralParams(v0, eps, scaledRcut float64, m, n int) GeneralParams {
	s := PairShift(v0, scaledRcut, m, n)
	return GeneralParams{
		V0:         v0,
		Eps:        eps,
		ScaledRcut: scaledRcut,
		M:          m,
		N:          n,
		C0:         s.C0,
		C1:         s.C1,
		C2:         s.C2,
	}
}

// PolydisperseGeneral evaluates
//
//	V(r) = v0 [(sigma/r)^m - (sigma/r)^n] + c0 + c1 (r/sigma)^2 + c2 (r/sigma)^4
//
// Unlike the fixed-exponent variants the cutoff test is inclusive.
// Energy is always smoothed; energyShift is ignored.
type PolydisperseGeneral struct {
	polydisperse
	p GeneralParams
}

// NewPolydisperseGeneral stores one pair; the effective cutoff decides
// acceptance.
func NewPolydisperseGeneral(rsq, rcutsq float64, p GeneralParams) PolydisperseGeneral {
	return PolydisperseGeneral{polydisperse: polydisperse{rsq: rsq, rcutsq: rcutsq}, p: p}
}

func (e PolydisperseGeneral) WithDiameter(di, dj float64) PolydisperseGeneral {
	e.di, e.dj = di, dj
	return e
}

func (e PolydisperseGeneral) WithCharge(_, _ float64) PolydisperseGeneral { return e }
func (PolydisperseGeneral) Name() string                                  { return NamePolydisperseGeneral }

func (e PolydisperseGeneral) EvalForceAndEnergy(_ bool) (forceDivR, pairEng float64, ok bool) {
	p := e.p
	sigma := EffectiveSigma(e.di, e.dj, p.Eps)
	sigma2 := sigma * sigma
	actualcutsq := p.ScaledRcut * p.ScaledRcut * sigma2
	if !(e.rsq <= actualcutsq) || p.V0 == 0 {
		return 0, 0, false
	}
	r2 := e.rsq / sigma2
	r2inv := sigma2 / e.rsq

	// N <= M, so the attractive power is complete after the first N/2
	// rounds.
	halfM, halfN := p.M/2, p.N/2
	rrep, rattr := 1.0, 1.0
	for i := 0; i < halfM; i++ {
		rrep *= r2inv
		if i < halfN {
			rattr *= r2inv
		}
	}

	m, n := float64(p.M), float64(p.N)
	forceDivR = (m*p.V0*r2inv*rrep - n*p.V0*r2inv*rattr - 2.0*p.C1 - 4.0*p.C2*r2) / sigma2
	pairEng = p.V0*(rrep-rattr) + p.C0 + p.C1*r2 + p.C2*r2*r2
	return forceDivR, pairEng, true
}
