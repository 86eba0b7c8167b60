package barrowman

import (
	"math"

	"aerocalc/internal/aero"
	"aerocalc/internal/rocket"
)

// frictionDrag computes the total skin friction drag coefficient. Body
// wetted areas are summed and corrected with the vehicle fineness ratio;
// fin areas are corrected for thickness as they are accumulated.
func (c *Calculator) frictionDrag(cond *aero.FlightConditions, table map[rocket.Component]*aero.Forces, _ *aero.WarningSet) float64 {
	mach := cond.Mach
	perfect := c.config.Rocket().PerfectFinish()

	c.checkCache()

	re := cond.Velocity * c.config.Length() / cond.Atmosphere.KinematicViscosity()

	cf := skinFriction(re, mach, perfect)

	// Mach correction for the roughness-limited coefficient, blended
	// linearly across Mach 0.9..1.1 like the main coefficient.
	var roughnessCorrection float64
	switch {
	case mach < 0.9:
		roughnessCorrection = 1 - 0.1*mach*mach
	case mach > 1.1:
		roughnessCorrection = 1 / (1 + 0.18*mach*mach)
	default:
		c1 := 1 - 0.1*0.9*0.9
		c2 := 1 / (1 + 0.18*1.1*1.1)
		roughnessCorrection = c2*(mach-0.9)/0.2 + c1*(1.1-mach)/0.2
	}

	// Roughness-limited coefficient per finish kind, computed on first use.
	var roughnessLimited [rocket.NumFinishes]float64
	for i := range roughnessLimited {
		roughnessLimited[i] = math.NaN()
	}

	finFriction := 0.0
	bodyFriction := 0.0
	maxR, bodyLen := 0.0, 0.0

	for _, comp := range c.config.Components() {
		body, isBody := comp.(rocket.BodyComponent)
		fins, isFins := comp.(*rocket.TrapezoidFinSet)
		if !isBody && !isFins {
			continue
		}

		finish := comp.(rocket.ExternalComponent).Finish()
		if math.IsNaN(roughnessLimited[finish]) {
			roughnessLimited[finish] = 0.032 *
				math.Pow(finish.Roughness()/c.config.Length(), 0.2) *
				roughnessCorrection
		}

		// Effective Cf is the maximum of Cf and the roughness floor. The
		// smooth model additionally requires Re > 1e6 before the floor
		// applies.
		var componentCf float64
		if perfect {
			if re > 1e6 && roughnessLimited[finish] > cf {
				componentCf = roughnessLimited[finish]
			} else {
				componentCf = cf
			}
		} else {
			componentCf = math.Max(cf, roughnessLimited[finish])
		}

		switch {
		case isBody:
			bodyFriction += componentCf * body.WetArea()

			if table != nil {
				// Corrected by the fineness factor after the traversal.
				table[comp].FrictionCD = componentCf * body.WetArea() / cond.RefArea
			}

			r := math.Max(body.ForeRadius(), body.AftRadius())
			if r > maxR {
				maxR = r
			}
			bodyLen += comp.Length()

		case isFins:
			mac := c.cache.calcs[comp].(finCalc).MACLength()
			cd := componentCf * (1 + 2*fins.Thickness()/mac) *
				2 * float64(fins.FinCount()) * fins.FinArea()
			finFriction += cd

			if table != nil {
				table[comp].FrictionCD = cd / cond.RefArea
			}
		}
	}

	// fineness may be +Inf for a finless stack of zero radius; the
	// correction then degenerates to 1, which is fine.
	fineness := (bodyLen + 0.0001) / maxR
	correction := 1 + 1/(2*fineness)

	if table != nil {
		for comp, entry := range table {
			if _, ok := comp.(rocket.BodyComponent); ok {
				entry.FrictionCD *= correction
			}
		}
	}

	return (finFriction + correction*bodyFriction) / cond.RefArea
}

// skinFriction is the base skin friction coefficient before roughness
// limiting: Reynolds regimes blended with a Mach-dependent compressibility
// correction, applied continuously across Mach 0.9..1.1.
func skinFriction(re, mach float64, perfect bool) float64 {
	var cf float64
	c1, c2 := 1.0, 1.0

	if perfect {
		// Partially laminar boundary layer.
		switch {
		case re < 1e4:
			cf = 1.33e-2
		case re < 5.39e5:
			cf = 1.328 / math.Sqrt(re)
		default:
			cf = 1/sq(1.50*math.Log(re)-5.6) - 1700/re
		}

		if mach < 1.1 && re > 1e6 {
			if re < 3e6 {
				c1 = 1 - 0.1*sq(mach)*(re-1e6)/2e6
			} else {
				c1 = 1 - 0.1*sq(mach)
			}
		}
		if mach > 0.9 && re > 1e6 {
			if re < 3e6 {
				c2 = 1 + (1/math.Pow(1+0.045*sq(mach), 0.25)-1)*(re-1e6)/2e6
			} else {
				c2 = 1 / math.Pow(1+0.045*sq(mach), 0.25)
			}
		}
	} else {
		// Fully turbulent boundary layer.
		if re < 1e4 {
			cf = 1.48e-2
		} else {
			cf = 1 / sq(1.50*math.Log(re)-5.6)
		}

		if mach < 1.1 {
			c1 = 1 - 0.1*sq(mach)
		}
		if mach > 0.9 {
			c2 = 1 / math.Pow(1+0.15*sq(mach), 0.58)
		}
	}

	switch {
	case mach < 0.9:
		cf *= c1
	case mach < 1.1:
		cf *= c2*(mach-0.9)/0.2 + c1*(1.1-mach)/0.2
	default:
		cf *= c2
	}

	return cf
}

func sq(x float64) float64 { return x * x }
