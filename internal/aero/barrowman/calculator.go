package barrowman

import (
	"math"

	"github.com/rs/zerolog/log"

	"aerocalc/internal/aero"
	"aerocalc/internal/rocket"
)

// largeAOALimit is the angle of attack beyond which the linearized force
// model degrades and an advisory warning is emitted.
const largeAOALimit = 17.5 * math.Pi / 180

// gapTolerance is the axial gap beyond which two adjacent body components
// are considered discontinuous.
const gapTolerance = 1e-4

// MassProvider supplies the mass state of the vehicle at a point in time.
// The trajectory simulator typically plugs in a motor-burn-aware
// implementation; rocket.Configuration provides a static one.
type MassProvider interface {
	MassProperties(time float64) rocket.MassProperties
}

// Calculator computes aerodynamic forces for one configuration using the
// extended Barrowman method. Not safe for concurrent use while the
// underlying rocket geometry is being invalidated.
type Calculator struct {
	config *rocket.Configuration
	mass   MassProvider
	cache  calcCache

	loggedDegenerate bool
}

// New creates a calculator for the given configuration, using the
// configuration's own static mass model.
func New(config *rocket.Configuration) *Calculator {
	return &Calculator{config: config, mass: config}
}

// SetMassProvider replaces the mass-properties collaborator.
func (c *Calculator) SetMassProvider(mass MassProvider) {
	c.mass = mass
}

// CP returns the aggregate center of pressure for the given conditions.
// warnings may be nil to discard advisories.
func (c *Calculator) CP(cond *aero.FlightConditions, warnings *aero.WarningSet) aero.Coordinate {
	total := c.nonAxial(cond, nil, warnings)
	return total.CP
}

// Analysis is the per-component force breakdown of one calculation call.
// Order preserves the traversal order; Total is keyed separately from the
// component table.
type Analysis struct {
	Order  []rocket.Component
	Forces map[rocket.Component]*aero.Forces
	Total  *aero.Forces
}

// ForceAnalysis computes the full per-component and aggregate breakdown
// for reporting. Components whose drag breakdown is entirely inapplicable
// keep all three terms unset; otherwise unset terms are zeroed before the
// total is summed.
func (c *Calculator) ForceAnalysis(cond *aero.FlightConditions, warnings *aero.WarningSet) *Analysis {
	analysis := &Analysis{
		Forces: make(map[rocket.Component]*aero.Forces),
	}
	for _, comp := range c.config.Components() {
		entry := aero.NewForces()
		entry.CG = aero.Coordinate{X: comp.CG()}
		entry.Mass = comp.Mass()
		analysis.Order = append(analysis.Order, comp)
		analysis.Forces[comp] = entry
	}

	total := c.nonAxial(cond, analysis.Forces, warnings)

	total.FrictionCD = c.frictionDrag(cond, analysis.Forces, warnings)
	total.PressureCD = c.pressureDrag(cond, analysis.Forces, warnings)
	total.BaseCD = c.baseDrag(cond, analysis.Forces, warnings)
	total.CD = total.FrictionCD + total.PressureCD + total.BaseCD
	total.Caxial = axialDrag(cond, total.CD)

	mp := c.mass.MassProperties(0)
	total.CG = aero.Coordinate{X: mp.CGX}
	total.Mass = mp.Mass

	for _, entry := range analysis.Forces {
		if !entry.HasDrag() {
			continue
		}
		entry.FinishDrag()
		entry.Caxial = axialDrag(cond, entry.CD)
	}

	analysis.Total = total
	return analysis
}

// AerodynamicForces computes the full aggregate coefficient set including
// mass properties and damping-adjusted pitch/yaw moments.
func (c *Calculator) AerodynamicForces(time float64, cond *aero.FlightConditions, warnings *aero.WarningSet) *aero.Forces {
	total := c.nonAxial(cond, nil, warnings)

	total.FrictionCD = c.frictionDrag(cond, nil, warnings)
	total.PressureCD = c.pressureDrag(cond, nil, warnings)
	total.BaseCD = c.baseDrag(cond, nil, warnings)
	total.CD = total.FrictionCD + total.PressureCD + total.BaseCD
	total.Caxial = axialDrag(cond, total.CD)

	mp := c.mass.MassProperties(time)
	total.CG = aero.Coordinate{X: mp.CGX}
	total.Mass = mp.Mass
	total.LongitudinalInertia = mp.LongitudinalInertia
	total.RotationalInertia = mp.RotationalInertia

	c.dampingMoments(cond, total)
	total.Cm -= total.PitchDampingMoment
	total.Cyaw -= total.YawDampingMoment

	return total
}

// AxialForces is the drag-and-mass fast path for trajectory stepping; it
// skips the non-axial aggregation entirely.
func (c *Calculator) AxialForces(time float64, cond *aero.FlightConditions, warnings *aero.WarningSet) *aero.Forces {
	c.logDegenerate(cond)
	c.checkCache()

	total := &aero.Forces{}

	total.FrictionCD = c.frictionDrag(cond, nil, warnings)
	total.PressureCD = c.pressureDrag(cond, nil, warnings)
	total.BaseCD = c.baseDrag(cond, nil, warnings)
	total.CD = total.FrictionCD + total.PressureCD + total.BaseCD
	total.Caxial = axialDrag(cond, total.CD)

	mp := c.mass.MassProperties(time)
	total.CG = aero.Coordinate{X: mp.CGX}
	total.Mass = mp.Mass
	total.LongitudinalInertia = mp.LongitudinalInertia
	total.RotationalInertia = mp.RotationalInertia

	return total
}

// nonAxial traverses the active configuration front to back, summing
// per-component coefficients and tracking body discontinuities.
func (c *Calculator) nonAxial(cond *aero.FlightConditions, table map[rocket.Component]*aero.Forces, warnings *aero.WarningSet) *aero.Forces {
	c.logDegenerate(cond)

	total := &aero.Forces{}
	scratch := &aero.Forces{}

	// Aft position and radius of the previous body component.
	trackedAftPosition := 0.0
	trackedAftRadius := 0.0

	if cond.AOA > largeAOALimit {
		warnings.Add(aero.LargeAOAWarning(cond.AOA))
	}

	c.checkCache()

	for _, comp := range c.config.Components() {
		if !comp.IsAerodynamic() {
			continue
		}

		if body, ok := comp.(rocket.BodyComponent); ok {
			x := comp.ForePosition()

			// Axial gap to the previous body component.
			if x > trackedAftPosition+gapTolerance {
				if !floatEquals(trackedAftRadius, 0) {
					warnings.Add(aero.DiscontinuityWarning())
					trackedAftRadius = 0
				}
			}
			trackedAftPosition = x + comp.Length()

			// Radius step against the previous aft radius. Advisory only,
			// no correction is applied to the coefficients.
			if !floatEquals(body.ForeRadius(), trackedAftRadius) {
				warnings.Add(aero.DiscontinuityWarning())
			}
			trackedAftRadius = body.AftRadius()
		}

		scratch.Zero()
		c.cache.calcs[comp].NonaxialForces(cond, scratch, warnings)
		scratch.CP.X += comp.ForePosition()
		scratch.Cm = scratch.CN * scratch.CP.X / cond.RefLength

		if table != nil {
			entry := table[comp]
			entry.CP = scratch.CP
			entry.CNa = scratch.CNa
			entry.CN = scratch.CN
			entry.Cm = scratch.Cm
			entry.Cside = scratch.Cside
			entry.Cyaw = scratch.Cyaw
			entry.Croll = scratch.Croll
			entry.CrollDamp = scratch.CrollDamp
			entry.CrollForce = scratch.CrollForce
		}

		total.CP = total.CP.Average(scratch.CP)
		total.CNa += scratch.CNa
		total.CN += scratch.CN
		total.Cm += scratch.Cm
		total.Cside += scratch.Cside
		total.Cyaw += scratch.Cyaw
		total.Croll += scratch.Croll
		total.CrollDamp += scratch.CrollDamp
		total.CrollForce += scratch.CrollForce
	}

	return total
}

// logDegenerate records the known numeric gap once: zero velocity or zero
// reference dimensions are not guarded and NaN/Inf propagate into the
// results, matching the reference behavior.
func (c *Calculator) logDegenerate(cond *aero.FlightConditions) {
	if c.loggedDegenerate {
		return
	}
	if cond.Velocity == 0 || cond.RefArea == 0 || cond.RefLength == 0 {
		log.Debug().
			Float64("velocity", cond.Velocity).
			Float64("refArea", cond.RefArea).
			Float64("refLength", cond.RefLength).
			Msg("degenerate flight condition, NaN/Inf will propagate")
		c.loggedDegenerate = true
	}
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
