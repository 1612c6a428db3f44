package pair

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Record is the loosely typed named-field form of a parameter block, as it
// arrives from YAML or JSON. Absent fields decode to zero.
type Record map[string]any

// Keys returns the record's field names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether the field is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Clone returns a shallow copy.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

func (r Record) only(fields ...string) error {
	for _, k := range r.Keys() {
		known := false
		for _, f := range fields {
			if k == f {
				known = true
				break
			}
		}
		if !known {
			return &ParamError{Field: k, Wrapped: ErrUnknownField}
		}
	}
	return nil
}

func (r Record) float(key string) (float64, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, nil
	}
	x, ok := toFloat(v)
	if !ok {
		return 0, &ParamError{Field: key, Value: v, Wrapped: fmt.Errorf("%w: not a number", ErrInvalidParam)}
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &ParamError{Field: key, Value: v, Wrapped: fmt.Errorf("%w: not finite", ErrInvalidParam)}
	}
	return x, nil
}

func (r Record) integer(key string) (int, error) {
	x, err := r.float(key)
	if err != nil {
		return 0, err
	}
	if x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
		return 0, &ParamError{Field: key, Value: r[key], Wrapped: fmt.Errorf("%w: not an integer", ErrInvalidParam)}
	}
	return int(x), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		x, err := n.Float64()
		return x, err == nil
	}
	return 0, false
}

// readFloats decodes the named fields in order, stopping at the first error.
func (r Record) readFloats(keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		x, err := r.float(k)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

var (
	ljFields      = []string{"epsilon", "sigma", "alpha"}
	polyFields    = []string{"v0", "eps", "scaledr_cut"}
	yukawaFields  = []string{"v0", "eps", "scaledr_cut", "kappa"}
	generalFields = []string{"v0", "rcut", "eps", "m_expnt", "n_expnt", "c0", "c1", "c2"}
)

// DecodeLJParams builds LJ coefficients from epsilon, sigma and alpha.
func DecodeLJParams(r Record) (LJParams, error) {
	if err := r.only(ljFields...); err != nil {
		return LJParams{}, err
	}
	v, err := r.readFloats(ljFields...)
	if err != nil {
		return LJParams{}, err
	}
	return NewLJParams(v[0], v[1], v[2]), nil
}

func (p LJParams) Record() Record {
	return Record{"epsilon": p.Epsilon, "sigma": p.Sigma, "alpha": p.Alpha}
}

// DecodePolyParams builds the parameter block of a fixed-exponent kind,
// deriving the shift coefficients for that kind.
func DecodePolyParams(kind Kind, r Record) (PolyParams, error) {
	derive, ok := fixedDerivations[kind]
	if !ok {
		return PolyParams{}, fmt.Errorf("%w: %q has no fixed-exponent parameters", ErrUnknownKind, kind)
	}
	if err := r.only(polyFields...); err != nil {
		return PolyParams{}, err
	}
	v, err := r.readFloats(polyFields...)
	if err != nil {
		return PolyParams{}, err
	}
	return derive(v[0], v[1], v[2]), nil
}

func (p PolyParams) Record() Record {
	return Record{"v0": p.V0, "eps": p.Eps, "scaledr_cut": p.ScaledRcut}
}

func DecodeYukawaParams(r Record) (YukawaParams, error) {
	if err := r.only(yukawaFields...); err != nil {
		return YukawaParams{}, err
	}
	v, err := r.readFloats(yukawaFields...)
	if err != nil {
		return YukawaParams{}, err
	}
	return NewYukawaParams(v[0], v[1], v[2], v[3]), nil
}

func (p YukawaParams) Record() Record {
	return Record{"v0": p.V0, "eps": p.Eps, "scaledr_cut": p.ScaledRcut, "kappa": p.Kappa}
}

// DecodeGeneralParams reads the runtime-exponent block. If none of c0, c1
// and c2 is present they are derived from the exponents; otherwise they are
// taken verbatim.
func DecodeGeneralParams(r Record) (GeneralParams, error) {
	if err := r.only(generalFields...); err != nil {
		return GeneralParams{}, err
	}
	v, err := r.readFloats("v0", "eps", "rcut")
	if err != nil {
		return GeneralParams{}, err
	}
	m, err := r.integer("m_expnt")
	if err != nil {
		return GeneralParams{}, err
	}
	n, err := r.integer("n_expnt")
	if err != nil {
		return GeneralParams{}, err
	}
	p := NewGeneralParams(v[0], v[1], v[2], m, n)
	if !r.Has("c0") && !r.Has("c1") && !r.Has("c2") {
		return p, nil
	}
	c, err := r.readFloats("c0", "c1", "c2")
	if err != nil {
		return GeneralParams{}, err
	}
	p.C0, p.C1, p.C2 = c[0], c[1], c[2]
	return p, nil
}

func (p GeneralParams) Record() Record {
	return Record{
		"v0":      p.V0,
		"rcut":    p.ScaledRcut,
		"eps":     p.Eps,
		"m_expnt": p.M,
		"n_expnt": p.N,
		"c0":      p.C0,
		"c1":      p.C1,
		"c2":      p.C2,
	}
}
