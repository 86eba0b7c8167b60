package aero

import "math"

// FlightConditions is the read-only flight state a calculation is evaluated
// at. The calculator never mutates it; callers own the value and may reuse
// it across calls.
type FlightConditions struct {
	Mach     float64
	Velocity float64 // m/s
	AOA      float64 // angle of attack, radians
	Theta    float64 // lateral wind direction, radians

	PitchRate float64 // rad/s
	YawRate   float64 // rad/s
	RollRate  float64 // rad/s

	RefArea   float64 // m^2, from the maximum body diameter
	RefLength float64 // m, maximum body diameter

	Atmosphere AtmosphericConditions
}

// NewFlightConditions returns standard-atmosphere conditions with the given
// reference dimensions and Mach number.
func NewFlightConditions(refLength float64, mach float64) *FlightConditions {
	fc := &FlightConditions{
		RefLength:  refLength,
		RefArea:    math.Pi * refLength * refLength / 4,
		Atmosphere: StandardConditions(),
	}
	fc.SetMach(mach)
	return fc
}

// SetMach sets the Mach number and the matching true airspeed for the
// current atmosphere.
func (fc *FlightConditions) SetMach(mach float64) {
	fc.Mach = mach
	fc.Velocity = mach * fc.Atmosphere.SpeedOfSound()
}

func (fc *FlightConditions) SinAOA() float64 {
	return math.Sin(fc.AOA)
}
