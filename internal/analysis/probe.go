package analysis

import (
	"math"

	"github.com/san-kum/polymd/internal/pair"
)

// Sample is one point of a tabulated potential. When OK is false the pair
// was outside the cutoff at R and both values are zero.
type Sample struct {
	R         float64 `json:"r"`
	Energy    float64 `json:"energy"`
	ForceDivR float64 `json:"force_divr"`
	OK        bool    `json:"ok"`
}

// Force returns the radial force -dV/dr.
func (s Sample) Force() float64 { return s.ForceDivR * s.R }

// Probe evaluates one potential for a fixed pair of particles.
type Probe struct {
	Pot pair.Potential
	// RCut is the global cutoff; diameter-scaled kinds ignore it.
	RCut  float64
	Attr  pair.Attributes
	Shift bool
}

func (p Probe) At(r float64) Sample {
	res := p.Pot.Eval(r*r, p.RCut*p.RCut, p.Attr, p.Shift)
	return Sample{R: r, Energy: res.Energy, ForceDivR: res.ForceDivR, OK: res.OK}
}

// Cutoff returns the distance at which the pair stops interacting.
func (p Probe) Cutoff() float64 {
	return p.Pot.EffectiveCutoff(p.RCut*p.RCut, p.Attr)
}

// Tabulate samples n evenly spaced distances in [rmin, rmax].
func Tabulate(p Probe, rmin, rmax float64, n int) []Sample {
	if n < 2 {
		return []Sample{p.At(rmin)}
	}
	out := make([]Sample, n)
	step := (rmax - rmin) / float64(n-1)
	for i := range out {
		out[i] = p.At(rmin + float64(i)*step)
	}
	return out
}

// Range returns the lowest and highest energy among accepted samples.
func Range(samples []Sample) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		if !s.OK {
			continue
		}
		lo = math.Min(lo, s.Energy)
		hi = math.Max(hi, s.Energy)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// Energies extracts the energy column, clamped to [-clamp, clamp] when
// clamp > 0.
func Energies(samples []Sample, clamp float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = clampTo(s.Energy, clamp)
	}
	return out
}

// Forces extracts -dV/dr, clamped like Energies.
func Forces(samples []Sample, clamp float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = clampTo(s.Force(), clamp)
	}
	return out
}

func clampTo(v, c float64) float64 {
	if c <= 0 {
		return v
	}
	return math.Max(-c, math.Min(c, v))
}
