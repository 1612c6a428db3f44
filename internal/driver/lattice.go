package driver

import "math/rand/v2"

// LatticeOptions describes a generated test system.
type LatticeOptions struct {
	// N is the number of cells per side; the system has N^3 particles.
	N       int
	Spacing float64
	// Jitter displaces each particle uniformly by up to Jitter*Spacing/2
	// along every axis.
	Jitter float64
	NTypes int
	// Diameters are drawn uniformly from [DMin, DMax].
	DMin, DMax float64
	Seed       uint64
}

// Lattice builds a jittered simple cubic system in a periodic box of side
// N*Spacing. Types cycle through 0..NTypes-1.
func Lattice(opts LatticeOptions) *System {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	ntypes := max(opts.NTypes, 1)
	n := opts.N * opts.N * opts.N

	sys := &System{
		Positions: make([][3]float64, 0, n),
		Types:     make([]int, 0, n),
		Diameters: make([]float64, 0, n),
		Charges:   make([]float64, n),
		Box:       float64(opts.N) * opts.Spacing,
	}

	for x := 0; x < opts.N; x++ {
		for y := 0; y < opts.N; y++ {
			for z := 0; z < opts.N; z++ {
				var p [3]float64
				for k, c := range [3]int{x, y, z} {
					p[k] = (float64(c) + 0.5 + opts.Jitter*(rng.Float64()-0.5)) * opts.Spacing
				}
				sys.Positions = append(sys.Positions, p)
				sys.Types = append(sys.Types, len(sys.Types)%ntypes)
				sys.Diameters = append(sys.Diameters, opts.DMin+(opts.DMax-opts.DMin)*rng.Float64())
			}
		}
	}
	return sys
}
