package rocket

import (
	"math"
	"testing"
)

func twoStageRocket() *Rocket {
	r := New("test")
	r.AddStage(
		NewNoseCone(NoseConeSpec{Name: "nose", Length: 0.2, AftRadius: 0.02, Mass: 0.05}),
		NewBodyTube(BodyTubeSpec{Name: "upper", Position: 0.2, Length: 0.3, Radius: 0.02, Mass: 0.1}),
	)
	r.AddStage(
		NewBodyTube(BodyTubeSpec{Name: "booster", Position: 0.5, Length: 0.4, Radius: 0.025, Mass: 0.2}),
	)
	return r
}

func TestGenerationBumpsOnChange(t *testing.T) {
	r := New("test")
	gen := r.Generation()

	r.AddStage(NewBodyTube(BodyTubeSpec{Length: 0.3, Radius: 0.02}))
	if r.Generation() == gen {
		t.Error("AddStage did not bump generation")
	}

	gen = r.Generation()
	r.InvalidateGeometry()
	if r.Generation() == gen {
		t.Error("InvalidateGeometry did not bump generation")
	}

	gen = r.Generation()
	r.SetPerfectFinish(true)
	if r.Generation() == gen {
		t.Error("SetPerfectFinish did not bump generation")
	}
	gen = r.Generation()
	r.SetPerfectFinish(true) // no change
	if r.Generation() != gen {
		t.Error("no-op SetPerfectFinish bumped generation")
	}
}

func TestConfigurationStageSelection(t *testing.T) {
	r := twoStageRocket()
	cfg := NewConfiguration(r)

	if got := len(cfg.Components()); got != 3 {
		t.Fatalf("all stages: %d components, want 3", got)
	}

	cfg.SetToStage(0)
	if got := len(cfg.Components()); got != 2 {
		t.Errorf("stage 0: %d components, want 2", got)
	}

	// Full tree stays complete regardless of selection.
	if got := len(r.Components()); got != 3 {
		t.Errorf("full tree: %d components, want 3", got)
	}
}

func TestReferenceDimensions(t *testing.T) {
	r := twoStageRocket()
	cfg := NewConfiguration(r)

	if got := cfg.RefLength(); math.Abs(got-0.05) > 1e-12 {
		t.Errorf("ref length = %v, want 0.05", got)
	}
	wantArea := math.Pi * 0.05 * 0.05 / 4
	if got := cfg.RefArea(); math.Abs(got-wantArea) > 1e-12 {
		t.Errorf("ref area = %v, want %v", got, wantArea)
	}

	cfg.SetToStage(0)
	if got := cfg.RefLength(); math.Abs(got-0.04) > 1e-12 {
		t.Errorf("stage 0 ref length = %v, want 0.04", got)
	}

	if got := cfg.Length(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("stage 0 length = %v, want 0.5", got)
	}
}

func TestMassProperties(t *testing.T) {
	r := New("test")
	r.AddStage(
		NewMassComponent(MassComponentSpec{Name: "a", Position: 0, Length: 0.2, Mass: 1}),
		NewMassComponent(MassComponentSpec{Name: "b", Position: 0.2, Length: 0.2, Mass: 1}),
	)
	cfg := NewConfiguration(r)

	mp := cfg.MassProperties(0)
	if math.Abs(mp.Mass-2) > 1e-12 {
		t.Errorf("mass = %v, want 2", mp.Mass)
	}
	if math.Abs(mp.CGX-0.2) > 1e-12 {
		t.Errorf("CG = %v, want 0.2", mp.CGX)
	}
	// Two point masses 0.1 m either side of the CG.
	want := 2 * 1 * 0.1 * 0.1
	if math.Abs(mp.LongitudinalInertia-want) > 1e-12 {
		t.Errorf("longitudinal inertia = %v, want %v", mp.LongitudinalInertia, want)
	}
}
