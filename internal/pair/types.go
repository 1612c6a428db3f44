package pair

// Attributes carries the optional per-particle values of one pair. Only the
// fields an evaluator declares it needs are read.
type Attributes struct {
	Di, Dj float64
	Qi, Qj float64
}

// Result is the outcome of one pair evaluation. ForceDivR is -dV/dr / r
// (positive is repulsive). When OK is false the pair was not evaluated and
// both values are zero.
type Result struct {
	ForceDivR float64
	Energy    float64
	OK        bool
}

// Evaluator is the contract shared by every pair potential variant. E is
// the variant's own type: setters return an updated copy so evaluators stay
// plain stack values.
type Evaluator[E any] interface {
	NeedsDiameter() bool
	NeedsCharge() bool
	WithDiameter(di, dj float64) E
	WithCharge(qi, qj float64) E
	// EvalForceAndEnergy returns ok == false when the pair is beyond the
	// effective cutoff or the interaction is disabled.
	EvalForceAndEnergy(energyShift bool) (forceDivR, pairEng float64, ok bool)
	Name() string
	ShapeSpec() (string, error)
	PressureLRCIntegral() float64
	EnergyLRCIntegral() float64
}

// Evaluate runs one evaluator the way a driver loop does: attributes are
// handed over only when the variant asks for them.
func Evaluate[E Evaluator[E]](e E, attr Attributes, energyShift bool) Result {
	if e.NeedsDiameter() {
		e = e.WithDiameter(attr.Di, attr.Dj)
	}
	if e.NeedsCharge() {
		e = e.WithCharge(attr.Qi, attr.Qj)
	}
	f, v, ok := e.EvalForceAndEnergy(energyShift)
	if !ok {
		return Result{}
	}
	return Result{ForceDivR: f, Energy: v, OK: true}
}

// isotropic supplies the metadata shared by every variant in this package.
type isotropic struct{}

func (isotropic) ShapeSpec() (string, error) { return "", ErrShapeUnsupported }

// noTail marks variants without analytic long-range corrections.
type noTail struct{}

func (noTail) PressureLRCIntegral() float64 { return 0 }
func (noTail) EnergyLRCIntegral() float64   { return 0 }
