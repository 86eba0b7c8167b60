package barrowman

import (
	"math"

	"aerocalc/internal/aero"
	"aerocalc/internal/rocket"
)

// pressureDrag sums the forebody pressure drag of every aerodynamic
// component plus stagnation drag on forward-facing radius steps between
// body components.
func (c *Calculator) pressureDrag(cond *aero.FlightConditions, table map[rocket.Component]*aero.Forces, warnings *aero.WarningSet) float64 {
	c.checkCache()

	stagnation := StagnationCD(cond.Mach)
	base := BaseCD(cond.Mach)

	total := 0.0
	trackedRadius := 0.0

	for _, comp := range c.config.Components() {
		if !comp.IsAerodynamic() {
			continue
		}

		cd := c.cache.calcs[comp].PressureDrag(cond, stagnation, base, warnings)
		total += cd

		if table != nil {
			table[comp].PressureCD = cd
		}

		if body, ok := comp.(rocket.BodyComponent); ok {
			if trackedRadius < body.ForeRadius() {
				area := math.Pi * (sq(body.ForeRadius()) - sq(trackedRadius))
				cd = stagnation * area / cond.RefArea
				total += cd
				if table != nil {
					table[comp].PressureCD += cd
				}
			}
			trackedRadius = body.AftRadius()
		}
	}

	return total
}

// baseDrag sums base drag on rearward-facing radius steps, attributed to
// the body component ahead of the step, plus the trailing base of the
// assembly.
func (c *Calculator) baseDrag(cond *aero.FlightConditions, table map[rocket.Component]*aero.Forces, _ *aero.WarningSet) float64 {
	c.checkCache()

	base := BaseCD(cond.Mach)

	total := 0.0
	trackedRadius := 0.0
	var prev rocket.Component

	for _, comp := range c.config.Components() {
		body, ok := comp.(rocket.BodyComponent)
		if !ok {
			continue
		}

		if trackedRadius > body.ForeRadius() {
			area := math.Pi * (sq(trackedRadius) - sq(body.ForeRadius()))
			cd := base * area / cond.RefArea
			total += cd
			if table != nil {
				table[prev].BaseCD = cd
			}
		}

		trackedRadius = body.AftRadius()
		prev = comp
	}

	if trackedRadius > 0 {
		area := math.Pi * sq(trackedRadius)
		cd := base * area / cond.RefArea
		total += cd
		if table != nil {
			table[prev].BaseCD = cd
		}
	}

	return total
}

// StagnationCD is the stagnation pressure drag coefficient at the given
// Mach number: a subsonic polynomial in Mach squared, a supersonic
// asymptotic expansion, both scaled by 0.85.
func StagnationCD(m float64) float64 {
	var pressure float64
	if m <= 1 {
		pressure = 1 + sq(m)/4 + sq(sq(m))/40
	} else {
		pressure = 1.84 - 0.76/sq(m) + 0.166/sq(sq(m)) + 0.035/sq(m*m*m)
	}
	return 0.85 * pressure
}

// BaseCD is the base drag coefficient at the given Mach number.
func BaseCD(m float64) float64 {
	if m <= 1 {
		return 0.12 + 0.13*m*m
	}
	return 0.25 / m
}
