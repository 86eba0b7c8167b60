package barrowman

import (
	"math"

	"aerocalc/internal/aero"
	"aerocalc/internal/interpolate"
)

// The wind-axis to body-axis drag conversion uses two fixed polynomial
// interpolants, precomputed once: [0,17deg] pinned to 1 and 1.3 with zero
// end slopes, and [17deg,90deg] pinned to 1.3 and 0 with zero end slopes
// and zero curvature at 90deg.
var axialDragPoly1, axialDragPoly2 []float64

const axialKnee = 17 * math.Pi / 180

func init() {
	p := interpolate.NewPoly(
		[]float64{0, axialKnee},
		[]float64{0, axialKnee},
	)
	axialDragPoly1 = p.Coefficients(1, 1.3, 0, 0)

	p = interpolate.NewPoly(
		[]float64{axialKnee, math.Pi / 2},
		[]float64{axialKnee, math.Pi / 2},
		[]float64{math.Pi / 2},
	)
	axialDragPoly2 = p.Coefficients(1.3, 0, 0, 0, 0)
}

// axialDrag maps the total wind-axis drag coefficient to the body-axial
// coefficient. The AOA is clamped to [0,180deg] and folded to [0,90deg] by
// symmetry; the result is negated when the unfolded AOA exceeds 90deg.
func axialDrag(cond *aero.FlightConditions, cd float64) float64 {
	aoa := clamp(cond.AOA, 0, math.Pi)

	if aoa > math.Pi/2 {
		aoa = math.Pi - aoa
	}

	var mul float64
	if aoa < axialKnee {
		mul = interpolate.Eval(aoa, axialDragPoly1)
	} else {
		mul = interpolate.Eval(aoa, axialDragPoly2)
	}

	if cond.AOA < math.Pi/2 {
		return mul * cd
	}
	return -mul * cd
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
