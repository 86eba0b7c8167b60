package rocket

import (
	"math"
	"testing"
)

func TestBodyTubeAreas(t *testing.T) {
	tube := NewBodyTube(BodyTubeSpec{Name: "tube", Length: 0.5, Radius: 0.02})

	wantWet := 2 * math.Pi * 0.02 * 0.5
	if got := tube.WetArea(); math.Abs(got-wantWet) > 1e-12 {
		t.Errorf("wet area = %v, want %v", got, wantWet)
	}

	wantPlan := 2 * 0.02 * 0.5
	if got := tube.PlanformArea(); math.Abs(got-wantPlan) > 1e-12 {
		t.Errorf("planform area = %v, want %v", got, wantPlan)
	}
}

func TestTransitionFrustumAreas(t *testing.T) {
	tr := NewTransition(TransitionSpec{Length: 0.1, ForeRadius: 0.02, AftRadius: 0.03})

	slant := math.Hypot(0.01, 0.1)
	wantWet := math.Pi * 0.05 * slant
	if got := tr.WetArea(); math.Abs(got-wantWet) > 1e-12 {
		t.Errorf("wet area = %v, want %v", got, wantWet)
	}

	wantPlan := 0.05 * 0.1
	if got := tr.PlanformArea(); math.Abs(got-wantPlan) > 1e-12 {
		t.Errorf("planform area = %v, want %v", got, wantPlan)
	}
}

func TestNoseConeGeometry(t *testing.T) {
	nose := NewNoseCone(NoseConeSpec{Length: 0.25, AftRadius: 0.02, Shape: ShapeConical})

	if got := nose.ForeRadius(); got != 0 {
		t.Errorf("fore radius = %v, want 0", got)
	}
	if got := nose.PlanformArea(); math.Abs(got-0.02*0.25) > 1e-12 {
		t.Errorf("planform area = %v, want %v", got, 0.02*0.25)
	}
}

func TestTrapezoidFinSet(t *testing.T) {
	fins := NewTrapezoidFinSet(TrapezoidFinSetSpec{
		Count: 3, RootChord: 0.1, TipChord: 0.05, Span: 0.08, Sweep: 0.03,
	})

	wantArea := (0.1 + 0.05) / 2 * 0.08
	if got := fins.FinArea(); math.Abs(got-wantArea) > 1e-12 {
		t.Errorf("fin area = %v, want %v", got, wantArea)
	}

	// root chord exceeds sweep+tip here
	if got := fins.Length(); got != 0.1 {
		t.Errorf("length = %v, want 0.1", got)
	}
}

func TestCGOffsetDefaultsToMidpoint(t *testing.T) {
	tube := NewBodyTube(BodyTubeSpec{Position: 1.0, Length: 0.4})
	if got := tube.CG(); math.Abs(got-1.2) > 1e-12 {
		t.Errorf("CG = %v, want 1.2", got)
	}

	tube = NewBodyTube(BodyTubeSpec{Position: 1.0, Length: 0.4, CGOffset: 0.1})
	if got := tube.CG(); math.Abs(got-1.1) > 1e-12 {
		t.Errorf("CG = %v, want 1.1", got)
	}
}

func TestMassComponentNotAerodynamic(t *testing.T) {
	m := NewMassComponent(MassComponentSpec{Mass: 0.5})
	if m.IsAerodynamic() {
		t.Error("mass component must not be aerodynamic")
	}
}
