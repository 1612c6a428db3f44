package pair

import (
	"math"
	"testing"
)

func TestYukawaUnscreenedMatchesPowerShift(t *testing.T) {
	got := NewYukawaParams(1.0, 0.0, 2.0, 0.0)
	want := PowerShift(1.0, 2.0, 1)
	if !closeTo(got.C0, want.C0) || !closeTo(got.C1, want.C1) || !closeTo(got.C2, want.C2) {
		t.Errorf("expected %+v, got c0 %g c1 %g c2 %g", want, got.C0, got.C1, got.C2)
	}
}

func TestYukawaSmoothAtCutoff(t *testing.T) {
	p := NewYukawaParams(10.0, 0.0, 3.0, 3.0)
	di, dj := 1.0, 1.3
	rc := p.ScaledRcut * EffectiveSigma(di, dj, p.Eps)

	prev := math.Inf(1)
	for _, eps := range []float64{1e-2, 1e-3, 1e-4} {
		r := rc * (1 - eps)
		f, v, ok := NewPolydisperseYukawa(r*r, 0, p).WithDiameter(di, dj).EvalForceAndEnergy(false)
		if !ok {
			t.Fatalf("eps %g: expected evaluation", eps)
		}
		if math.Abs(v) >= prev || math.Abs(v) > eps {
			t.Errorf("eps %g: energy %g did not vanish", eps, v)
		}
		if math.Abs(f) > eps {
			t.Errorf("eps %g: force %g did not vanish", eps, f)
		}
		prev = math.Abs(v)
	}
}

func TestYukawaForceMatchesDerivative(t *testing.T) {
	p := NewYukawaParams(10.0, 0.0, 3.0, 3.0)
	di, dj := 1.0, 1.3
	rc := p.ScaledRcut * EffectiveSigma(di, dj, p.Eps)
	h := 1e-6

	eval := func(r float64) (float64, float64) {
		f, v, _ := NewPolydisperseYukawa(r*r, 0, p).WithDiameter(di, dj).EvalForceAndEnergy(false)
		return f, v
	}
	for _, frac := range []float64{0.4, 0.6, 0.9} {
		r := rc * frac
		f, _ := eval(r)
		_, vp := eval(r + h)
		_, vm := eval(r - h)
		want := -(vp - vm) / (2 * h)
		if math.Abs(f*r-want) > 1e-6*(1+math.Abs(want)) {
			t.Errorf("r %g: expected -dV/dr %g, got %g", r, want, f*r)
		}
	}
}

func TestYukawaCutoffAndDisabled(t *testing.T) {
	p := NewYukawaParams(10.0, 0.1, 3.0, 3.0)
	sigma := EffectiveSigma(0.9, 1.1, p.Eps)
	sigma2 := sigma * sigma
	cutsq := p.ScaledRcut * p.ScaledRcut * sigma2

	if _, _, ok := NewPolydisperseYukawa(cutsq, 0, p).WithDiameter(0.9, 1.1).EvalForceAndEnergy(false); ok {
		t.Error("expected exclusive cutoff")
	}
	if _, _, ok := NewPolydisperseYukawa(cutsq*0.99, 0, p).WithDiameter(0.9, 1.1).EvalForceAndEnergy(false); !ok {
		t.Error("expected evaluation inside the cutoff")
	}

	off := NewYukawaParams(0, 0.1, 3.0, 3.0)
	f, v, ok := NewPolydisperseYukawa(1.0, 0, off).WithDiameter(1, 1).EvalForceAndEnergy(false)
	if ok || f != 0 || v != 0 {
		t.Errorf("expected v0 = 0 to disable the pair, got %v %g %g", ok, f, v)
	}
}

func TestYukawaIgnoresCharge(t *testing.T) {
	p := NewYukawaParams(10.0, 0.0, 3.0, 3.0)
	e := NewPolydisperseYukawa(1.5, 0, p).WithDiameter(1, 1)

	if e.NeedsCharge() {
		t.Error("yukawa variant reads no charges")
	}
	f1, v1, _ := e.EvalForceAndEnergy(false)
	f2, v2, _ := e.WithCharge(3, -2).EvalForceAndEnergy(false)
	if f1 != f2 || v1 != v2 {
		t.Error("expected charges to have no effect")
	}
	if e.Name() != "polydisperse-yukawa" {
		t.Errorf("expected name polydisperse-yukawa, got %s", e.Name())
	}
}
