package aero

import "math"

// Forces holds the aerodynamic coefficients of one component or of the
// whole vehicle. Records are created fresh per calculation call and never
// persisted.
//
// The drag breakdown fields (FrictionCD, PressureCD, BaseCD) start out as
// NaN, meaning "not computed". A record where at least one of the three was
// computed has the remaining ones zeroed before CD is summed; a record
// where none applied keeps all three unset.
type Forces struct {
	CP Coordinate

	CNa        float64 // normal force coefficient derivative w.r.t. AOA
	CN         float64
	Cm         float64 // pitching moment about the nose tip
	Cside      float64
	Cyaw       float64
	Croll      float64
	CrollDamp  float64
	CrollForce float64

	FrictionCD float64
	PressureCD float64
	BaseCD     float64
	CD         float64
	Caxial     float64

	CG                  Coordinate
	Mass                float64
	LongitudinalInertia float64
	RotationalInertia   float64

	PitchDampingMoment float64
	YawDampingMoment   float64
}

// NewForces returns a record with all coefficients zero and the drag
// breakdown marked not-computed.
func NewForces() *Forces {
	f := &Forces{}
	f.FrictionCD = math.NaN()
	f.PressureCD = math.NaN()
	f.BaseCD = math.NaN()
	f.CD = math.NaN()
	f.Caxial = math.NaN()
	return f
}

// Zero resets every coefficient, including the drag breakdown, to zero.
func (f *Forces) Zero() {
	*f = Forces{}
}

// HasDrag reports whether any of the three drag breakdown terms was
// computed for this record.
func (f *Forces) HasDrag() bool {
	return !math.IsNaN(f.FrictionCD) || !math.IsNaN(f.PressureCD) || !math.IsNaN(f.BaseCD)
}

// FinishDrag zeroes the unset breakdown terms and sums CD. No-op when no
// term was computed, so non-aerodynamic components keep a fully unset
// breakdown.
func (f *Forces) FinishDrag() {
	if !f.HasDrag() {
		return
	}
	if math.IsNaN(f.FrictionCD) {
		f.FrictionCD = 0
	}
	if math.IsNaN(f.PressureCD) {
		f.PressureCD = 0
	}
	if math.IsNaN(f.BaseCD) {
		f.BaseCD = 0
	}
	f.CD = f.FrictionCD + f.PressureCD + f.BaseCD
}
