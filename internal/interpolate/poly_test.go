package interpolate

import (
	"math"
	"testing"
)

func TestPolyPinnedValues(t *testing.T) {
	p := NewPoly([]float64{0, 1, 2})
	coeffs := p.Coefficients(1, 2, 5)

	for _, tc := range []struct{ x, want float64 }{
		{0, 1}, {1, 2}, {2, 5},
	} {
		got := Eval(tc.x, coeffs)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Eval(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestPolyPinnedDerivatives(t *testing.T) {
	// Cubic with values 1 and 1.3 at the ends and zero slope at both.
	a, b := 0.0, 17*math.Pi/180
	p := NewPoly([]float64{a, b}, []float64{a, b})
	coeffs := p.Coefficients(1, 1.3, 0, 0)

	if got := Eval(a, coeffs); math.Abs(got-1) > 1e-12 {
		t.Errorf("value at left end = %v, want 1", got)
	}
	if got := Eval(b, coeffs); math.Abs(got-1.3) > 1e-12 {
		t.Errorf("value at right end = %v, want 1.3", got)
	}

	const h = 1e-7
	for _, x := range []float64{a, b} {
		d := (Eval(x+h, coeffs) - Eval(x-h, coeffs)) / (2 * h)
		if math.Abs(d) > 1e-5 {
			t.Errorf("slope at %v = %v, want 0", x, d)
		}
	}
}

func TestPolySecondDerivative(t *testing.T) {
	a, b := 17*math.Pi/180, math.Pi/2
	p := NewPoly([]float64{a, b}, []float64{a, b}, []float64{b})
	coeffs := p.Coefficients(1.3, 0, 0, 0, 0)

	if len(coeffs) != 5 {
		t.Fatalf("expected quartic (5 coefficients), got %d", len(coeffs))
	}
	if got := Eval(b, coeffs); math.Abs(got) > 1e-12 {
		t.Errorf("value at 90deg = %v, want 0", got)
	}

	const h = 1e-5
	dd := (Eval(b-2*h, coeffs) - 2*Eval(b-h, coeffs) + Eval(b, coeffs)) / (h * h)
	if math.Abs(dd) > 1e-3 {
		t.Errorf("second derivative at right end = %v, want 0", dd)
	}
}

func TestPolyConstraintCountMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on wrong value count")
		}
	}()
	NewPoly([]float64{0, 1}).Coefficients(1)
}
