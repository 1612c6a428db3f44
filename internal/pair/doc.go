// Package pair provides short-range pair potential evaluators for
// molecular dynamics, including size-dispersity-aware (polydisperse) models.
//
// Every evaluator is a small value type built from the squared pair
// separation, the squared cutoff and a per type-pair parameter block:
//
//   - [LJ]: classical 12-6 Lennard-Jones with a global cutoff
//   - [ForceShiftedLJ]: Lennard-Jones with force and energy vanishing at the cutoff
//   - [Polydisperse12], [Polydisperse18], [Polydisperse10]: smoothed inverse power laws
//   - [PolydisperseLJ], [PolydisperseLJ106]: smoothed 12-6 and 10-6 forms
//   - [PolydisperseGeneral]: runtime (m, n) exponents
//   - [PolydisperseYukawa]: smoothed screened Coulomb
//
// All of them satisfy [Evaluator], so the caller picks a variant at
// configuration time and evaluates it through [Evaluate] without dynamic
// dispatch or heap allocation. [Potential] is the closed set of variants
// for code that only knows the model name at runtime.
//
// # Polydispersity
//
// Polydisperse variants scale every length by the pair diameter
//
//	sigma = 0.5*(di+dj)*(1 - eps*|di-dj|)
//
// and cut off at ScaledRcut*sigma. The squared cutoff given to the
// constructor is accepted for uniformity and ignored by these variants.
//
// # Hot Path
//
// EvalForceAndEnergy never validates its inputs. Diameters must be
// positive and exponents even with n <= m; parameter blocks must come from
// the matching New*Params constructor or from the record decoders, which
// derive the shift coefficients once.
package pair
