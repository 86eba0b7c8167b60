package aero

import (
	"math"
	"testing"
)

func TestStandardAtmosphere(t *testing.T) {
	atm := StandardConditions()

	if got := atm.Density(); math.Abs(got-1.225) > 0.01 {
		t.Errorf("density = %v, want ~1.225", got)
	}
	if got := atm.SpeedOfSound(); math.Abs(got-340.3) > 1 {
		t.Errorf("speed of sound = %v, want ~340.3", got)
	}
	// Sea level kinematic viscosity of air is about 1.46e-5 m^2/s.
	if got := atm.KinematicViscosity(); math.Abs(got-1.46e-5) > 0.1e-5 {
		t.Errorf("kinematic viscosity = %v, want ~1.46e-5", got)
	}
}

func TestSetMachTracksAtmosphere(t *testing.T) {
	fc := NewFlightConditions(0.05, 0.5)
	want := 0.5 * fc.Atmosphere.SpeedOfSound()
	if math.Abs(fc.Velocity-want) > 1e-9 {
		t.Errorf("velocity = %v, want %v", fc.Velocity, want)
	}
	if math.Abs(fc.RefArea-math.Pi*0.05*0.05/4) > 1e-12 {
		t.Errorf("ref area = %v", fc.RefArea)
	}
}

func TestForcesDragSentinel(t *testing.T) {
	f := NewForces()
	if f.HasDrag() {
		t.Error("fresh record must have no drag computed")
	}

	f.PressureCD = 0.1
	f.FinishDrag()
	if f.FrictionCD != 0 || f.BaseCD != 0 {
		t.Error("unset terms must be zeroed when any term was computed")
	}
	if math.Abs(f.CD-0.1) > 1e-12 {
		t.Errorf("CD = %v, want 0.1", f.CD)
	}

	// A record with nothing computed stays fully unset.
	f = NewForces()
	f.FinishDrag()
	if !math.IsNaN(f.CD) || !math.IsNaN(f.FrictionCD) {
		t.Error("FinishDrag must not touch a record with no drag terms")
	}
}

func TestWarningSetDeduplicatesByKind(t *testing.T) {
	ws := NewWarningSet()
	ws.Add(DiscontinuityWarning())
	ws.Add(DiscontinuityWarning())
	ws.Add(LargeAOAWarning(0.4))

	if ws.Len() != 2 {
		t.Errorf("len = %d, want 2", ws.Len())
	}
	if !ws.Contains(WarningDiscontinuity) || !ws.Contains(WarningLargeAOA) {
		t.Error("expected both warning kinds present")
	}
}

func TestNilWarningSetDiscards(t *testing.T) {
	var ws *WarningSet
	ws.Add(DiscontinuityWarning()) // must not panic
	if ws.Len() != 0 || ws.Contains(WarningDiscontinuity) || ws.All() != nil {
		t.Error("nil set must behave as a discard sink")
	}
}

func TestCoordinateAverageIsUnweighted(t *testing.T) {
	a := Coordinate{X: 1}
	b := Coordinate{X: 3}
	got := a.Average(b)
	if math.Abs(got.X-2) > 1e-12 {
		t.Errorf("average X = %v, want 2", got.X)
	}
}
