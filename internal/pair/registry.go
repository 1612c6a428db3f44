package pair

import (
	"fmt"
	"sort"
)

// Kind is the configuration-time model name of a potential variant.
type Kind string

// Registered kinds.
const (
	KindLJ             Kind = "lj_plugin"
	KindForceShiftedLJ Kind = "force_shifted_lj_plugin"
	KindPoly12         Kind = "polydisperse12"
	KindPoly18         Kind = "polydisperse18"
	KindPoly10         Kind = "polydisperse10"
	KindPolyLJ         Kind = "lennardjones"
	KindPolyLJ106      Kind = "polydisperse106"
	KindGeneral        Kind = "polydisperse"
	KindYukawa         Kind = "polydisperseyukawa"
)

// Descriptor documents one registered variant.
type Descriptor struct {
	Kind          Kind
	Name          string
	Summary       string
	Required      []string
	Optional      []string
	Defaults      map[string]float64
	NeedsDiameter bool
	NeedsCharge   bool
}

var fixedDerivations = map[Kind]func(v0, eps, scaledRcut float64) PolyParams{
	KindPoly12:    NewPoly12Params,
	KindPoly18:    NewPoly18Params,
	KindPoly10:    NewPoly10Params,
	KindPolyLJ:    NewPolyLJParams,
	KindPolyLJ106: NewPolyLJ106Params,
}

var registry = map[Kind]Descriptor{
	KindLJ: {
		Name:     NameLJ,
		Summary:  "12-6 lennard-jones, global cutoff",
		Required: ljFields,
		Defaults: map[string]float64{"alpha": 1.0},
	},
	KindForceShiftedLJ: {
		Name:     NameForceShiftedLJ,
		Summary:  "lennard-jones with force shifted to zero at cutoff",
		Required: ljFields,
		Defaults: map[string]float64{"alpha": 1.0},
	},
	KindPoly12: {
		Name:          NamePolydisperse12,
		Summary:       "smoothed inverse 12 power, diameter scaled",
		Required:      polyFields,
		Defaults:      map[string]float64{"v0": 1.0, "eps": 0.2, "scaledr_cut": 1.25},
		NeedsDiameter: true,
	},
	KindPoly18: {
		Name:          NamePolydisperse18,
		Summary:       "smoothed inverse 18 power, diameter scaled",
		Required:      polyFields,
		Defaults:      map[string]float64{"v0": 1.0, "eps": 0.0, "scaledr_cut": 1.25},
		NeedsDiameter: true,
	},
	KindPoly10: {
		Name:          NamePolydisperse10,
		Summary:       "smoothed inverse 10 power, diameter scaled",
		Required:      polyFields,
		Defaults:      map[string]float64{"v0": 1.0, "eps": 0.0416667, "scaledr_cut": 1.48},
		NeedsDiameter: true,
	},
	KindPolyLJ: {
		Name:          NamePolydisperseLJ,
		Summary:       "smoothed 12-6 lennard-jones, diameter scaled",
		Required:      polyFields,
		Defaults:      map[string]float64{"v0": 1.0, "eps": 0.2, "scaledr_cut": 2.5},
		NeedsDiameter: true,
	},
	KindPolyLJ106: {
		Name:          NamePolydisperseLJ106,
		Summary:       "smoothed 10-6 lennard-jones, diameter scaled",
		Required:      polyFields,
		Defaults:      map[string]float64{"v0": 1.0, "eps": 0.1, "scaledr_cut": 2.5},
		NeedsDiameter: true,
	},
	KindGeneral: {
		Name:          NamePolydisperseGeneral,
		Summary:       "smoothed (m, n) power law, runtime exponents",
		Required:      []string{"v0", "rcut", "eps", "m_expnt", "n_expnt"},
		Optional:      []string{"c0", "c1", "c2"},
		NeedsDiameter: true,
	},
	KindYukawa: {
		Name:          NamePolydisperseYukawa,
		Summary:       "smoothed screened coulomb, diameter scaled",
		Required:      yukawaFields,
		Defaults:      map[string]float64{"v0": 10.0, "eps": 0.0, "scaledr_cut": 3.0, "kappa": 3.0},
		NeedsDiameter: true,
	},
}

// Lookup returns the descriptor of a registered kind.
func Lookup(kind Kind) (Descriptor, error) {
	d, ok := registry[kind]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	d.Kind = kind
	return d, nil
}

// Kinds lists every registered kind in sorted order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// IsPolydisperse reports whether the kind scales its cutoff by diameter.
func (k Kind) IsPolydisperse() bool {
	return registry[k].NeedsDiameter
}
