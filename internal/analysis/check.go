package analysis

import "math"

// DefaultSteps are the relative distances below the cutoff used by Check.
var DefaultSteps = []float64{1e-2, 1e-3, 1e-4}

// Jump is the residual energy and force just inside the cutoff, at
// rc*(1-Eps).
type Jump struct {
	Eps    float64 `json:"eps"`
	Energy float64 `json:"energy"`
	Force  float64 `json:"force"`
}

func CutoffJump(p Probe, eps float64) Jump {
	s := p.At(p.Cutoff() * (1 - eps))
	return Jump{Eps: eps, Energy: math.Abs(s.Energy), Force: math.Abs(s.Force())}
}

// Convergence evaluates CutoffJump for each step.
func Convergence(p Probe, steps []float64) []Jump {
	out := make([]Jump, len(steps))
	for i, eps := range steps {
		out[i] = CutoffJump(p, eps)
	}
	return out
}

// DerivativeError returns the difference between the evaluator's force
// and the central difference -dV/dr at r, relative to 1 + |dV/dr|.
func DerivativeError(p Probe, r, h float64) float64 {
	f := p.At(r).Force()
	want := -(p.At(r+h).Energy - p.At(r-h).Energy) / (2 * h)
	return math.Abs(f-want) / (1 + math.Abs(want))
}

// Report summarizes the cutoff behavior and force consistency of a probe.
type Report struct {
	Name   string  `json:"name"`
	Cutoff float64 `json:"cutoff"`
	Jumps  []Jump  `json:"jumps"`
	// EnergyConverges and ForceConverges report whether each residual is
	// at most half the previous one, i.e. whether it vanishes with the
	// step instead of settling on a finite jump.
	EnergyConverges bool    `json:"energy_converges"`
	ForceConverges  bool    `json:"force_converges"`
	MaxDerivError   float64 `json:"max_deriv_error"`
}

// Check probes continuity at the cutoff and compares forces with the
// numerical derivative between half the cutoff and the cutoff.
func Check(p Probe) Report {
	rep := Report{
		Name:            p.Pot.Name(),
		Cutoff:          p.Cutoff(),
		Jumps:           Convergence(p, DefaultSteps),
		EnergyConverges: true,
		ForceConverges:  true,
	}
	for i := 1; i < len(rep.Jumps); i++ {
		if !shrinks(rep.Jumps[i-1].Energy, rep.Jumps[i].Energy) {
			rep.EnergyConverges = false
		}
		if !shrinks(rep.Jumps[i-1].Force, rep.Jumps[i].Force) {
			rep.ForceConverges = false
		}
	}

	for _, frac := range []float64{0.5, 0.65, 0.8, 0.95} {
		e := DerivativeError(p, rep.Cutoff*frac, 1e-6)
		rep.MaxDerivError = math.Max(rep.MaxDerivError, e)
	}
	return rep
}

func shrinks(prev, next float64) bool {
	return next == 0 || next <= 0.5*prev
}
