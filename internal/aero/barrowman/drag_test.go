package barrowman

import (
	"math"
	"testing"
)

func relDiff(a, b float64) float64 {
	return math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))
}

func TestStagnationCDContinuousAtMach1(t *testing.T) {
	sub := StagnationCD(1.0)
	sup := StagnationCD(1.0 + 1e-9)
	if math.Abs(sub-sup) > 0.01 {
		t.Errorf("stagnation CD jump at Mach 1: %v vs %v", sub, sup)
	}
}

func TestBaseCDContinuousAtMach1(t *testing.T) {
	sub := BaseCD(1.0)
	sup := BaseCD(1.0 + 1e-12)
	if math.Abs(sub-sup) > 1e-9 {
		t.Errorf("base CD jump at Mach 1: %v vs %v", sub, sup)
	}
	if math.Abs(sub-0.25) > 1e-12 {
		t.Errorf("base CD at Mach 1 = %v, want 0.25", sub)
	}
}

func TestBaseCDBranches(t *testing.T) {
	if got := BaseCD(0.5); math.Abs(got-(0.12+0.13*0.25)) > 1e-12 {
		t.Errorf("subsonic base CD = %v", got)
	}
	if got := BaseCD(2); math.Abs(got-0.125) > 1e-12 {
		t.Errorf("supersonic base CD = %v, want 0.125", got)
	}
}

func TestSkinFrictionReynoldsContinuity(t *testing.T) {
	tests := []struct {
		name    string
		re      float64
		perfect bool
	}{
		{"smooth constant-laminar", 1e4, true},
		{"smooth laminar-transitional", 5.39e5, true},
		{"standard constant-turbulent", 1e4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			below := skinFriction(tt.re*(1-1e-6), 0.1, tt.perfect)
			above := skinFriction(tt.re*(1+1e-6), 0.1, tt.perfect)
			if relDiff(below, above) > 0.01 {
				t.Errorf("Cf jump at Re=%g: %v vs %v", tt.re, below, above)
			}
		})
	}
}

func TestSkinFrictionMachBlendContinuity(t *testing.T) {
	for _, perfect := range []bool{true, false} {
		for _, re := range []float64{5e5, 2e6, 5e6} {
			for _, mach := range []float64{0.9, 1.1} {
				below := skinFriction(re, mach-1e-9, perfect)
				above := skinFriction(re, mach+1e-9, perfect)
				if relDiff(below, above) > 1e-6 {
					t.Errorf("Cf jump at Re=%g Mach=%g perfect=%v: %v vs %v",
						re, mach, perfect, below, above)
				}
			}
		}
	}
}

func TestSkinFrictionRegimeValues(t *testing.T) {
	// Mach 0 so no compressibility correction applies.
	if got := skinFriction(1e3, 0, true); math.Abs(got-1.33e-2) > 1e-9 {
		t.Errorf("smooth low-Re Cf = %v, want 1.33e-2", got)
	}
	if got := skinFriction(1e3, 0, false); math.Abs(got-1.48e-2) > 1e-9 {
		t.Errorf("standard low-Re Cf = %v, want 1.48e-2", got)
	}

	// Laminar branch
	want := 1.328 / math.Sqrt(1e5)
	if got := skinFriction(1e5, 0, true); math.Abs(got-want) > 1e-9 {
		t.Errorf("laminar Cf = %v, want %v", got, want)
	}

	// The smooth model carries a -1700/Re correction the standard one
	// does not.
	re := 1e6
	smooth := skinFriction(re, 0, true)
	standard := skinFriction(re, 0, false)
	if math.Abs((standard-smooth)-1700/re) > 1e-9 {
		t.Errorf("smooth/standard delta = %v, want %v", standard-smooth, 1700/re)
	}
}

func TestSkinFrictionDecreasesWithMach(t *testing.T) {
	re := 5e6
	for _, perfect := range []bool{true, false} {
		low := skinFriction(re, 0.3, perfect)
		high := skinFriction(re, 2.0, perfect)
		if high >= low {
			t.Errorf("perfect=%v: Cf did not decrease with Mach: %v -> %v", perfect, low, high)
		}
	}
}
