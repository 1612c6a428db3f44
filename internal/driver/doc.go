// Package driver is a reference all-pairs force loop over [pair.Potential]
// values.
//
// A [Table] maps each unordered type pair to a potential and a squared
// pre-filter cutoff. [Compute] visits every ordered pair (i, j), skips it
// when rsq exceeds the pre-filter, hands the pair attributes to the
// evaluator only when it declares it needs them, and accumulates:
//
//   - per-particle force: sum of force_divr * (r_i - r_j)
//   - per-particle energy: half of every pair energy
//   - scalar virial: sum over pairs of force_divr * rsq
//
// # Thread Safety
//
// Rows of the pair matrix are split across workers. Each row is summed by
// exactly one worker in j order, so results are bit-identical for any
// worker count. A [Table] must not be modified while Compute runs.
package driver
