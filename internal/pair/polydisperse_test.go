package pair

import (
	"math"
	"testing"
)

type fixedCase struct {
	name string
	p    PolyParams
	eval func(rsq float64, p PolyParams, di, dj float64) (float64, float64, bool)
}

func fixedCases() []fixedCase {
	return []fixedCase{
		{"polydisperse-12", NewPoly12Params(1.0, 0.2, 1.25), func(rsq float64, p PolyParams, di, dj float64) (float64, float64, bool) {
			return NewPolydisperse12(rsq, 0, p).WithDiameter(di, dj).EvalForceAndEnergy(false)
		}},
		{"polydisperse-18", NewPoly18Params(1.0, 0.0, 1.25), func(rsq float64, p PolyParams, di, dj float64) (float64, float64, bool) {
			return NewPolydisperse18(rsq, 0, p).WithDiameter(di, dj).EvalForceAndEnergy(false)
		}},
		{"polydisperse-10", NewPoly10Params(1.0, 0.0416667, 1.48), func(rsq float64, p PolyParams, di, dj float64) (float64, float64, bool) {
			return NewPolydisperse10(rsq, 0, p).WithDiameter(di, dj).EvalForceAndEnergy(false)
		}},
		{"polydisperse-lj", NewPolyLJParams(1.0, 0.2, 2.5), func(rsq float64, p PolyParams, di, dj float64) (float64, float64, bool) {
			return NewPolydisperseLJ(rsq, 0, p).WithDiameter(di, dj).EvalForceAndEnergy(false)
		}},
		{"polydisperse-lj106", NewPolyLJ106Params(1.0, 0.1, 2.5), func(rsq float64, p PolyParams, di, dj float64) (float64, float64, bool) {
			return NewPolydisperseLJ106(rsq, 0, p).WithDiameter(di, dj).EvalForceAndEnergy(false)
		}},
	}
}

func TestEffectiveSigma(t *testing.T) {
	tests := []struct {
		di, dj, eps float64
		expected    float64
	}{
		{1.0, 1.0, 0.2, 1.0},
		{1.0, 1.2, 0.2, 1.056},
		{1.2, 1.0, 0.2, 1.056},
		{0.8, 1.4, 0.0, 1.1},
	}

	for _, tt := range tests {
		got := EffectiveSigma(tt.di, tt.dj, tt.eps)
		if math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("sigma(%g, %g, %g): expected %g, got %g", tt.di, tt.dj, tt.eps, tt.expected, got)
		}
	}
}

func TestPowerShiftClosedForm(t *testing.T) {
	s := PowerShift(1.0, 1.0, 12)
	if s.C0 != -28 || s.C1 != 48 || s.C2 != -21 {
		t.Errorf("expected (-28, 48, -21), got (%g, %g, %g)", s.C0, s.C1, s.C2)
	}

	s = PowerShift(1.0, 1.25, 12)
	if math.Abs(s.C1-2.11106) > 1e-5 || math.Abs(s.C2+0.591097) > 1e-6 {
		t.Errorf("unexpected coefficients at xc 1.25: %+v", s)
	}

	s = PowerShift(2.0, 1.0, 18)
	if s.C0 != -110 || s.C1 != 198 || s.C2 != -90 {
		t.Errorf("expected (-110, 198, -90), got (%g, %g, %g)", s.C0, s.C1, s.C2)
	}

	s = PowerShift(1.0, 1.0, 0)
	if s.C0 != -1 || s.C1 != 0 || s.C2 != 0 {
		t.Errorf("expected (-1, 0, 0) for p = 0, got (%g, %g, %g)", s.C0, s.C1, s.C2)
	}
}

func TestSmoothShiftMatchesPowerShift(t *testing.T) {
	v0, xc := 1.3, 1.25
	for _, p := range []int{6, 10, 12, 18} {
		fp := float64(p)
		f := v0 * math.Pow(xc, -fp)
		df := -fp * v0 * math.Pow(xc, -fp-1)
		d2f := fp * (fp + 1) * v0 * math.Pow(xc, -fp-2)

		got := SmoothShift(f, df, d2f, xc)
		want := PowerShift(v0, xc, p)
		if math.Abs(got.C0-want.C0) > 1e-12*math.Abs(want.C0) ||
			math.Abs(got.C1-want.C1) > 1e-12*math.Abs(want.C1) ||
			math.Abs(got.C2-want.C2) > 1e-12*math.Abs(want.C2) {
			t.Errorf("p %d: expected %+v, got %+v", p, want, got)
		}
	}
}

func TestPolydisperse12Scenario(t *testing.T) {
	p := NewPoly12Params(1.0, 0.2, 1.0)

	e := NewPolydisperse12(1.0, 0, p).WithDiameter(1.0, 1.2)
	force, energy, ok := e.EvalForceAndEnergy(false)
	if !ok {
		t.Fatal("expected rsq 1.0 to be inside the effective cutoff")
	}
	if math.IsNaN(force) || math.IsInf(force, 0) || force <= 0 {
		t.Errorf("expected finite repulsive force, got %g", force)
	}
	if energy <= 0 {
		t.Errorf("expected positive energy, got %g", energy)
	}
	if math.Abs(force-4.536923347211569) > 1e-9 {
		t.Errorf("expected force_divr 4.536923, got %.9f", force)
	}
	if math.Abs(energy-0.07959048708053729) > 1e-9 {
		t.Errorf("expected energy 0.0795905, got %.9f", energy)
	}

	if _, _, ok := NewPolydisperse12(2.0, 0, p).WithDiameter(1.0, 1.2).EvalForceAndEnergy(false); ok {
		t.Error("expected rsq 2.0 to be beyond the effective cutoff")
	}
}

func TestPolydisperseIgnoresConstructorCutoff(t *testing.T) {
	p := NewPoly12Params(1.0, 0.2, 1.25)

	_, _, okSmall := NewPolydisperse12(1.0, 0.01, p).WithDiameter(1, 1).EvalForceAndEnergy(false)
	_, _, okHuge := NewPolydisperse12(1.6, 100, p).WithDiameter(1, 1).EvalForceAndEnergy(false)
	if !okSmall {
		t.Error("expected the effective cutoff to override a small rcutsq")
	}
	if okHuge {
		t.Error("expected the effective cutoff to override a large rcutsq")
	}
}

func TestFixedStrictCutoff(t *testing.T) {
	for _, tc := range fixedCases() {
		sigma := EffectiveSigma(1.0, 1.3, tc.p.Eps)
		sigma2 := sigma * sigma
		cutsq := tc.p.ScaledRcut * tc.p.ScaledRcut * sigma2

		if _, _, ok := tc.eval(cutsq, tc.p, 1.0, 1.3); ok {
			t.Errorf("%s: expected no evaluation exactly at the cutoff", tc.name)
		}
		if _, _, ok := tc.eval(cutsq*1.01, tc.p, 1.0, 1.3); ok {
			t.Errorf("%s: expected no evaluation beyond the cutoff", tc.name)
		}
		if _, _, ok := tc.eval(cutsq*0.99, tc.p, 1.0, 1.3); !ok {
			t.Errorf("%s: expected evaluation inside the cutoff", tc.name)
		}
	}
}

func TestFixedDisabled(t *testing.T) {
	for _, tc := range fixedCases() {
		p := tc.p
		p.V0 = 0
		for _, rsq := range []float64{0.5, 1.0, 1.5} {
			f, v, ok := tc.eval(rsq, p, 1.0, 1.0)
			if ok || f != 0 || v != 0 {
				t.Errorf("%s: expected v0 = 0 to disable rsq %g, got %v %g %g", tc.name, rsq, ok, f, v)
			}
		}
	}
}

func TestFixedSmoothAtCutoff(t *testing.T) {
	di, dj := 1.0, 1.3
	for _, tc := range fixedCases() {
		rc := tc.p.ScaledRcut * EffectiveSigma(di, dj, tc.p.Eps)

		prev := math.Inf(1)
		for _, eps := range []float64{1e-2, 1e-3, 1e-4} {
			r := rc * (1 - eps)
			f, v, ok := tc.eval(r*r, tc.p, di, dj)
			if !ok {
				t.Fatalf("%s: expected evaluation at eps %g", tc.name, eps)
			}
			if math.Abs(v) >= prev {
				t.Errorf("%s: energy did not converge at eps %g", tc.name, eps)
			}
			if math.Abs(v) > eps {
				t.Errorf("%s: energy %g exceeds O(eps) bound at eps %g", tc.name, v, eps)
			}
			if math.Abs(f) > 10*eps {
				t.Errorf("%s: force %g exceeds O(eps) bound at eps %g", tc.name, f, eps)
			}
			prev = math.Abs(v)
		}
	}
}

func TestFixedForceMatchesDerivative(t *testing.T) {
	di, dj := 1.0, 1.3
	h := 1e-6
	for _, tc := range fixedCases() {
		rc := tc.p.ScaledRcut * EffectiveSigma(di, dj, tc.p.Eps)
		for _, frac := range []float64{0.75, 0.85, 0.95} {
			r := rc * frac
			f, _, _ := tc.eval(r*r, tc.p, di, dj)
			_, vp, _ := tc.eval((r+h)*(r+h), tc.p, di, dj)
			_, vm, _ := tc.eval((r-h)*(r-h), tc.p, di, dj)
			want := -(vp - vm) / (2 * h)
			if math.Abs(f*r-want) > 1e-6*(1+math.Abs(want)) {
				t.Errorf("%s r %g: expected -dV/dr %g, got %g", tc.name, r, want, f*r)
			}
		}
	}
}

func TestFixedDiameterSymmetry(t *testing.T) {
	for _, tc := range fixedCases() {
		for _, rsq := range []float64{0.8, 1.1, 1.4} {
			f1, v1, ok1 := tc.eval(rsq, tc.p, 0.9, 1.25)
			f2, v2, ok2 := tc.eval(rsq, tc.p, 1.25, 0.9)
			if ok1 != ok2 || f1 != f2 || v1 != v2 {
				t.Errorf("%s rsq %g: swapping diameters changed the result", tc.name, rsq)
			}
		}
	}
}

func TestFixedIgnoresEnergyShift(t *testing.T) {
	p := NewPoly12Params(1.0, 0.2, 1.25)
	e := NewPolydisperse12(1.1, 0, p).WithDiameter(1, 1.1)
	f1, v1, _ := e.EvalForceAndEnergy(false)
	f2, v2, _ := e.EvalForceAndEnergy(true)
	if f1 != f2 || v1 != v2 {
		t.Error("expected energyShift to have no effect on smoothed variants")
	}
}

func TestFixedMetadata(t *testing.T) {
	checks := []struct {
		name string
		got  string
	}{
		{"polydisperse-12", NewPolydisperse12(1, 1, PolyParams{}).Name()},
		{"polydisperse-18", NewPolydisperse18(1, 1, PolyParams{}).Name()},
		{"polydisperse-10", NewPolydisperse10(1, 1, PolyParams{}).Name()},
		{"polydisperse-lj", NewPolydisperseLJ(1, 1, PolyParams{}).Name()},
		{"polydisperse-lj106", NewPolydisperseLJ106(1, 1, PolyParams{}).Name()},
	}
	for _, c := range checks {
		if c.got != c.name {
			t.Errorf("expected name %s, got %s", c.name, c.got)
		}
	}

	e := NewPolydisperse18(1, 1, PolyParams{})
	if !e.NeedsDiameter() || e.NeedsCharge() {
		t.Error("polydisperse variants need diameter and not charge")
	}
	if e.PressureLRCIntegral() != 0 || e.EnergyLRCIntegral() != 0 {
		t.Error("expected zero tail integrals")
	}
	if _, err := e.ShapeSpec(); err != ErrShapeUnsupported {
		t.Errorf("expected ErrShapeUnsupported, got %v", err)
	}
}
