// Package analysis probes pair potentials along r for a fixed pair of
// particles.
//
//   - [Tabulate]: energy and force on an even grid
//   - [CutoffJump], [Convergence]: residuals just inside the effective cutoff
//   - [DerivativeError]: force against the numerical derivative of the energy
//   - [Check]: all of the above as one [Report]
//   - [Plot]: character scatter of a tabulated curve
//
// # Continuity
//
// Smoothed and force-shifted potentials should show residuals that shrink
// with the step:
//
//	rep := analysis.Check(analysis.Probe{Pot: pot, Attr: attr})
//	if !rep.EnergyConverges {
//	    // energy jumps at the cutoff
//	}
package analysis
