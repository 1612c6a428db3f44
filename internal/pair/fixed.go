package pair

// Evaluator names of the fixed-exponent variants.
const (
	NamePolydisperse12    = "polydisperse-12"
	NamePolydisperse18    = "polydisperse-18"
	NamePolydisperse10    = "polydisperse-10"
	NamePolydisperseLJ    = "polydisperse-lj"
	NamePolydisperseLJ106 = "polydisperse-lj106"
)

// The fixed-exponent variants below always return the smoothed energy:
// their shift terms already bring V, dV/dr and d2V/dr2 to zero at the
// effective cutoff, so energyShift is ignored.

// Polydisperse12 evaluates
//
//	V(r) = v0 (sigma/r)^12 + c0 + c1 (r/sigma)^2 + c2 (r/sigma)^4
type Polydisperse12 struct {
	polydisperse
	p PolyParams
}

// NewPolydisperse12 stores one pair. rcutsq is kept for the contract but
// the effective cutoff ScaledRcut*sigma decides acceptance.
func NewPolydisperse12(rsq, rcutsq float64, p PolyParams) Polydisperse12 {
	return Polydisperse12{polydisperse: polydisperse{rsq: rsq, rcutsq: rcutsq}, p: p}
}

func (e Polydisperse12) WithDiameter(di, dj float64) Polydisperse12 {
	e.di, e.dj = di, dj
	return e
}

func (e Polydisperse12) WithCharge(_, _ float64) Polydisperse12 { return e }
func (Polydisperse12) Name() string                             { return NamePolydisperse12 }

func (e Polydisperse12) EvalForceAndEnergy(_ bool) (forceDivR, pairEng float64, ok bool) {
	p := e.p
	sigma2, r2, r2inv, ok := e.reduce(p.V0, p.Eps, p.ScaledRcut)
	if !ok {
		return 0, 0, false
	}
	r6inv := r2inv * r2inv * r2inv
	r12inv := r6inv * r6inv
	forceDivR = (12.0*p.V0*r2inv*r12inv - 2.0*p.C1 - 4.0*p.C2*r2) / sigma2
	pairEng = p.V0*r12inv + p.C0 + p.C1*r2 + p.C2*r2*r2
	return forceDivR, pairEng, true
}

// Polydisperse18 evaluates v0 (sigma/r)^18 with the same smoothing.
type Polydisperse18 struct {
	polydisperse
	p PolyParams
}

// NewPolydisperse18 stores one pair; see NewPolydisperse12.
func NewPolydisperse18(rsq, rcutsq float64, p PolyParams) Polydisperse18 {
	return Polydisperse18{polydisperse: polydisperse{rsq: rsq, rcutsq: rcutsq}, p: p}
}

func (e Polydisperse18) WithDiameter(di, dj float64) Polydisperse18 {
	e.di, e.dj = di, dj
	return e
}

func (e Polydisperse18) WithCharge(_, _ float64) Polydisperse18 { return e }
func (Polydisperse18) Name() string                             { return NamePolydisperse18 }

func (e Polydisperse18) EvalForceAndEnergy(_ bool) (forceDivR, pairEng float64, ok bool) {
	p := e.p
	sigma2, r2, r2inv, ok := e.reduce(p.V0, p.Eps, p.ScaledRcut)
	if !ok {
		return 0, 0, false
	}
	r6inv := r2inv * r2inv * r2inv
	r18inv := r6inv * r6inv * r6inv
	forceDivR = (18.0*p.V0*r2inv*r18inv - 2.0*p.C1 - 4.0*p.C2*r2) / sigma2
	pairEng = p.V0*r18inv + p.C0 + p.C1*r2 + p.C2*r2*r2
	return forceDivR, pairEng, true
}

// Polydisperse10 evaluates v0 (sigma/r)^10 with the same smoothing.
type Polydisperse10 struct {
	polydisperse
	p PolyParams
}

// NewPolydisperse10 stores one pair; see NewPolydisperse12.
func NewPolydisperse10(rsq, rcutsq float64, p PolyParams) Polydisperse10 {
	return Polydisperse10{polydisperse: polydisperse{rsq: rsq, rcutsq: rcutsq}, p: p}
}

func (e Polydisperse10) WithDiameter(di, dj float64) Polydisperse10 {
	e.di, e.dj = di, dj
	return e
}

func (e Polydisperse10) WithCharge(_, _ float64) Polydisperse10 { return e }
func (Polydisperse10) Name() string                             { return NamePolydisperse10 }

func (e Polydisperse10) EvalForceAndEnergy(_ bool) (forceDivR, pairEng float64, ok bool) {
	p := e.p
	sigma2, r2, r2inv, ok := e.reduce(p.V0, p.Eps, p.ScaledRcut)
	if !ok {
		return 0, 0, false
	}
	r4inv := r2inv * r2inv
	r10inv := r4inv * r4inv * r2inv
	forceDivR = (10.0*p.V0*r2inv*r10inv - 2.0*p.C1 - 4.0*p.C2*r2) / sigma2
	pairEng = p.V0*r10inv + p.C0 + p.C1*r2 + p.C2*r2*r2
	return forceDivR, pairEng, true
}

// PolydisperseLJ evaluates v0 [(sigma/r)^12 - (sigma/r)^6] with the same
// smoothing.
type PolydisperseLJ struct {
	polydisperse
	p PolyParams
}

// NewPolydisperseLJ stores one pair; see NewPolydisperse12.
func NewPolydisperseLJ(rsq, rcutsq float64, p PolyParams) PolydisperseLJ {
	return PolydisperseLJ{polydisperse: polydisperse{rsq: rsq, rcutsq: rcutsq}, p: p}
}

func (e PolydisperseLJ) WithDiameter(di, dj float64) PolydisperseLJ {
	e.di, e.dj = di, dj
	return e
}

func (e PolydisperseLJ) WithCharge(_, _ float64) PolydisperseLJ { return e }
func (PolydisperseLJ) Name() string                             { return NamePolydisperseLJ }

func (e PolydisperseLJ) EvalForceAndEnergy(_ bool) (forceDivR, pairEng float64, ok bool) {
	p := e.p
	sigma2, r2, r2inv, ok := e.reduce(p.V0, p.Eps, p.ScaledRcut)
	if !ok {
		return 0, 0, false
	}
	r6inv := r2inv * r2inv * r2inv
	r12inv := r6inv * r6inv
	forceDivR = (12.0*p.V0*r2inv*r12inv - 6.0*p.V0*r2inv*r6inv - 2.0*p.C1 - 4.0*p.C2*r2) / sigma2
	pairEng = p.V0*(r12inv-r6inv) + p.C0 + p.C1*r2 + p.C2*r2*r2
	return forceDivR, pairEng, true
}

// PolydisperseLJ106 evaluates v0 [(sigma/r)^10 - (sigma/r)^6] with the same
// smoothing.
type PolydisperseLJ106 struct {
	polydisperse
	p PolyParams
}

// NewPolydisperseLJ106 stores one pair; see NewPolydisperse12.
func NewPolydisperseLJ106(rsq, rcutsq float64, p PolyParams) PolydisperseLJ106 {
	return PolydisperseLJ106{polydisperse: polydisperse{rsq: rsq, rcutsq: rcutsq}, p: p}
}

func (e PolydisperseLJ106) WithDiameter(di, dj float64) PolydisperseLJ106 {
	e.di, e.dj = di, dj
	return e
}

func (e PolydisperseLJ106) WithCharge(_, _ float64) PolydisperseLJ106 { return e }
func (PolydisperseLJ106) Name() string                                { return NamePolydisperseLJ106 }

func (e PolydisperseLJ106) EvalForceAndEnergy(_ bool) (forceDivR, pairEng float64, ok bool) {
	p := e.p
	sigma2, r2, r2inv, ok := e.reduce(p.V0, p.Eps, p.ScaledRcut)
	if !ok {
		return 0, 0, false
	}
	r6inv := r2inv * r2inv * r2inv
	r10inv := r6inv * r2inv * r2inv
	forceDivR = (10.0*p.V0*r2inv*r10inv - 6.0*p.V0*r2inv*r6inv - 2.0*p.C1 - 4.0*p.C2*r2) / sigma2
	pairEng = p.V0*(r10inv-r6inv) + p.C0 + p.C1*r2 + p.C2*r2*r2
	return forceDivR, pairEng, true
}
