package aero

import "math"

const (
	// Specific gas constant of air, J/(kg*K).
	GasConstant = 287.053

	StandardTemperature = 288.15 // K
	StandardPressure    = 101325.0
	GammaAir            = 1.4
)

// AtmosphericConditions describes the ambient air state at the flight
// altitude. The zero value is not useful; use StandardConditions or fill
// both fields.
type AtmosphericConditions struct {
	Temperature float64 // K
	Pressure    float64 // Pa
}

func StandardConditions() AtmosphericConditions {
	return AtmosphericConditions{
		Temperature: StandardTemperature,
		Pressure:    StandardPressure,
	}
}

func (a AtmosphericConditions) Density() float64 {
	return a.Pressure / (GasConstant * a.Temperature)
}

// DynamicViscosity is a linear fit of air viscosity in the troposphere
// temperature range, kg/(m*s).
func (a AtmosphericConditions) DynamicViscosity() float64 {
	return 3.7291e-6 + 4.9944e-8*a.Temperature
}

func (a AtmosphericConditions) KinematicViscosity() float64 {
	return a.DynamicViscosity() / a.Density()
}

func (a AtmosphericConditions) SpeedOfSound() float64 {
	return math.Sqrt(GammaAir * GasConstant * a.Temperature)
}
