package barrowman

import (
	"math"

	"aerocalc/internal/aero"
	"aerocalc/internal/rocket"
)

// dampingGain is an empirical amplification of the damping multiplier,
// retained verbatim for compatibility with reference output. Higher
// damping yields a much more realistic apogee turn.
const dampingGain = 3

// dampingMoments fills the pitch and yaw damping moment coefficients from
// the angular rates and the cached damping geometry.
func (c *Calculator) dampingMoments(cond *aero.FlightConditions, total *aero.Forces) {
	mul := c.dampingMultiplier(cond, total.CG.X) * dampingGain

	total.PitchDampingMoment = mul * sign(cond.PitchRate) * sq(cond.PitchRate/cond.Velocity)
	total.YawDampingMoment = mul * sign(cond.YawRate) * sq(cond.YawRate/cond.Velocity)
}

// dampingMultiplier combines a body term from the cached mean diameter and
// length with one term per fin set. The geometry aggregates are computed
// lazily and invalidated together with the strategy registry.
func (c *Calculator) dampingMultiplier(cond *aero.FlightConditions, cgx float64) float64 {
	c.checkCache()

	if c.cache.meanDiameter < 0 {
		area := 0.0
		c.cache.meanLength = 0
		c.cache.meanDiameter = 0

		for _, comp := range c.config.Components() {
			if body, ok := comp.(rocket.BodyComponent); ok {
				area += body.PlanformArea()
				c.cache.meanLength += comp.Length()
			}
		}
		if c.cache.meanLength > 0 {
			c.cache.meanDiameter = area / c.cache.meanLength
		}
	}

	mul := 0.275 * c.cache.meanDiameter / (cond.RefArea * cond.RefLength)
	mul *= pow4(cgx) + pow4(c.cache.meanLength-cgx)

	for _, comp := range c.config.Components() {
		fins, ok := comp.(*rocket.TrapezoidFinSet)
		if !ok {
			continue
		}
		mid := comp.ForePosition() + c.cache.calcs[comp].(finCalc).MidchordPos()
		mul += 0.6 * math.Min(float64(fins.FinCount()), 4) * fins.FinArea() *
			pow3(math.Abs(mid-cgx)) /
			(cond.RefArea * cond.RefLength)
	}

	return mul
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func pow3(x float64) float64 { return x * x * x }
func pow4(x float64) float64 { return x * x * x * x }
