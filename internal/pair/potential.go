package pair

import (
	"fmt"
	"math"
)

// Potential is the closed set of evaluator variants, selected once per type
// pair. The zero value is the disabled interaction: it never evaluates.
type Potential struct {
	kind    Kind
	lj      LJParams
	poly    PolyParams
	general GeneralParams
	yukawa  YukawaParams
}

// NewPotential decodes a parameter record for the given kind.
func NewPotential(kind Kind, r Record) (Potential, error) {
	switch kind {
	case KindLJ, KindForceShiftedLJ:
		p, err := DecodeLJParams(r)
		if err != nil {
			return Potential{}, err
		}
		return Potential{kind: kind, lj: p}, nil
	case KindPoly12, KindPoly18, KindPoly10, KindPolyLJ, KindPolyLJ106:
		p, err := DecodePolyParams(kind, r)
		if err != nil {
			return Potential{}, err
		}
		return Potential{kind: kind, poly: p}, nil
	case KindGeneral:
		p, err := DecodeGeneralParams(r)
		if err != nil {
			return Potential{}, err
		}
		return Potential{kind: kind, general: p}, nil
	case KindYukawa:
		p, err := DecodeYukawaParams(r)
		if err != nil {
			return Potential{}, err
		}
		return Potential{kind: kind, yukawa: p}, nil
	}
	return Potential{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

// NewLJPotential wraps an lj_plugin block.
func NewLJPotential(p LJParams) Potential {
	return Potential{kind: KindLJ, lj: p}
}

// NewForceShiftedLJPotential wraps a force_shifted_lj_plugin block.
func NewForceShiftedLJPotential(p LJParams) Potential {
	return Potential{kind: KindForceShiftedLJ, lj: p}
}

// NewFixedPotential wraps a fixed-exponent block; kind selects the variant
// and must match the constructor the block was derived with.
func NewFixedPotential(kind Kind, p PolyParams) (Potential, error) {
	if _, ok := fixedDerivations[kind]; !ok {
		return Potential{}, fmt.Errorf("%w: %q is not a fixed-exponent kind", ErrUnknownKind, kind)
	}
	return Potential{kind: kind, poly: p}, nil
}

// NewGeneralPotential wraps a runtime-exponent block.
func NewGeneralPotential(p GeneralParams) Potential {
	return Potential{kind: KindGeneral, general: p}
}

// NewYukawaPotential wraps a screened coulomb block.
func NewYukawaPotential(p YukawaParams) Potential {
	return Potential{kind: KindYukawa, yukawa: p}
}

func (p Potential) Kind() Kind { return p.kind }

// IsZero reports whether the potential is the disabled zero value.
func (p Potential) IsZero() bool { return p.kind == "" }

// Eval constructs the selected evaluator for one pair and evaluates it.
func (p Potential) Eval(rsq, rcutsq float64, attr Attributes, energyShift bool) Result {
	switch p.kind {
	case KindLJ:
		return Evaluate(NewLJ(rsq, rcutsq, p.lj), attr, energyShift)
	case KindForceShiftedLJ:
		return Evaluate(NewForceShiftedLJ(rsq, rcutsq, p.lj), attr, energyShift)
	case KindPoly12:
		return Evaluate(NewPolydisperse12(rsq, rcutsq, p.poly), attr, energyShift)
	case KindPoly18:
		return Evaluate(NewPolydisperse18(rsq, rcutsq, p.poly), attr, energyShift)
	case KindPoly10:
		return Evaluate(NewPolydisperse10(rsq, rcutsq, p.poly), attr, energyShift)
	case KindPolyLJ:
		return Evaluate(NewPolydisperseLJ(rsq, rcutsq, p.poly), attr, energyShift)
	case KindPolyLJ106:
		return Evaluate(NewPolydisperseLJ106(rsq, rcutsq, p.poly), attr, energyShift)
	case KindGeneral:
		return Evaluate(NewPolydisperseGeneral(rsq, rcutsq, p.general), attr, energyShift)
	case KindYukawa:
		return Evaluate(NewPolydisperseYukawa(rsq, rcutsq, p.yukawa), attr, energyShift)
	}
	return Result{}
}

// Name returns the evaluator's short identifier, or "" for the zero value.
func (p Potential) Name() string {
	return registry[p.kind].Name
}

func (p Potential) NeedsDiameter() bool { return registry[p.kind].NeedsDiameter }
func (p Potential) NeedsCharge() bool   { return registry[p.kind].NeedsCharge }

// ShapeSpec always fails: none of the variants carries a shape.
func (p Potential) ShapeSpec() (string, error) {
	return "", ErrShapeUnsupported
}

// PressureLRCIntegral returns the analytic pressure tail integral for the
// given squared cutoff, or zero when the variant has none.
func (p Potential) PressureLRCIntegral(rcutsq float64) float64 {
	if p.kind == KindLJ {
		return NewLJ(0, rcutsq, p.lj).PressureLRCIntegral()
	}
	return 0
}

// EnergyLRCIntegral returns the analytic energy tail integral for the given
// squared cutoff, or zero when the variant has none.
func (p Potential) EnergyLRCIntegral(rcutsq float64) float64 {
	if p.kind == KindLJ {
		return NewLJ(0, rcutsq, p.lj).EnergyLRCIntegral()
	}
	return 0
}

// Record encodes the parameter block back to its named fields.
func (p Potential) Record() Record {
	switch p.kind {
	case KindLJ, KindForceShiftedLJ:
		return p.lj.Record()
	case KindPoly12, KindPoly18, KindPoly10, KindPolyLJ, KindPolyLJ106:
		return p.poly.Record()
	case KindGeneral:
		return p.general.Record()
	case KindYukawa:
		return p.yukawa.Record()
	}
	return Record{}
}

func (p Potential) scaledRcut() (eps, xc float64, ok bool) {
	switch p.kind {
	case KindPoly12, KindPoly18, KindPoly10, KindPolyLJ, KindPolyLJ106:
		return p.poly.Eps, p.poly.ScaledRcut, true
	case KindGeneral:
		return p.general.Eps, p.general.ScaledRcut, true
	case KindYukawa:
		return p.yukawa.Eps, p.yukawa.ScaledRcut, true
	}
	return 0, 0, false
}

// MaxRange returns the largest cutoff a diameter-scaled potential reaches
// when no particle is larger than dmax: ScaledRcut*dmax. It returns zero
// for kinds with a single global cutoff.
func (p Potential) MaxRange(dmax float64) float64 {
	_, xc, ok := p.scaledRcut()
	if !ok {
		return 0
	}
	return xc * dmax
}

// EffectiveCutoff returns the cutoff distance that actually applies to a
// pair: ScaledRcut*sigma for diameter-scaled kinds, sqrt(rcutsq) otherwise.
func (p Potential) EffectiveCutoff(rcutsq float64, attr Attributes) float64 {
	eps, xc, ok := p.scaledRcut()
	if !ok {
		return math.Sqrt(rcutsq)
	}
	return xc * EffectiveSigma(attr.Di, attr.Dj, eps)
}

// LJ returns the Lennard-Jones block of an lj_plugin or
// force_shifted_lj_plugin potential.
func (p Potential) LJ() (LJParams, bool) {
	return p.lj, p.kind == KindLJ || p.kind == KindForceShiftedLJ
}

// Poly returns the block of a fixed-exponent potential.
func (p Potential) Poly() (PolyParams, bool) {
	_, ok := fixedDerivations[p.kind]
	return p.poly, ok
}

func (p Potential) General() (GeneralParams, bool) {
	return p.general, p.kind == KindGeneral
}

func (p Potential) Yukawa() (YukawaParams, bool) {
	return p.yukawa, p.kind == KindYukawa
}
