package barrowman

import (
	"math"

	"aerocalc/internal/aero"
	"aerocalc/internal/rocket"
)

// finSetCalc is the strategy for trapezoidal fin sets: multi-fin Barrowman
// normal force with body interference, quarter-MAC CP, cant-angle roll
// coefficients and leading-edge pressure drag.
type finSetCalc struct {
	count      int
	rootChord  float64
	tipChord   float64
	span       float64
	sweep      float64
	thickness  float64
	cant       float64
	bodyRadius float64
	finArea    float64

	macLength  float64
	macLEPos   float64 // axial MAC leading edge from the root leading edge
	macSpanPos float64 // spanwise MAC position from the root
}

func newFinSetCalc(fins *rocket.TrapezoidFinSet) *finSetCalc {
	cr, ct := fins.RootChord(), fins.TipChord()
	f := &finSetCalc{
		count:      fins.FinCount(),
		rootChord:  cr,
		tipChord:   ct,
		span:       fins.Span(),
		sweep:      fins.Sweep(),
		thickness:  fins.Thickness(),
		cant:       fins.Cant(),
		bodyRadius: fins.BodyRadius(),
		finArea:    fins.FinArea(),
	}
	sum := cr + ct
	f.macLength = 2.0 / 3.0 * (sum - cr*ct/sum)
	f.macSpanPos = f.span / 3 * (cr + 2*ct) / sum
	f.macLEPos = f.sweep * (cr + 2*ct) / (3 * sum)
	return f
}

func (f *finSetCalc) MACLength() float64 { return f.macLength }

func (f *finSetCalc) MidchordPos() float64 { return f.macLEPos + f.macLength/2 }

func (f *finSetCalc) NonaxialForces(cond *aero.FlightConditions, forces *aero.Forces, warnings *aero.WarningSet) {
	if f.thickness > 0.1*f.macLength {
		warnings.Add(aero.ThickFinWarning())
	}
	if cond.Mach > 1.1 {
		warnings.Add(aero.SupersonicFinWarning())
	}

	d := cond.RefLength
	midchord := math.Hypot(f.span, f.sweep+(f.tipChord-f.rootChord)/2)

	ar := 2 * midchord / (f.rootChord + f.tipChord)
	cna := 4 * float64(f.count) * (f.span / d) * (f.span / d) /
		(1 + math.Sqrt(1+ar*ar))

	// Body interference
	tau := 1 + f.bodyRadius/(f.span+f.bodyRadius)
	cna *= tau

	// Prandtl-Glauert, clamped near Mach 1 where linear theory blows up
	beta := math.Sqrt(math.Abs(1 - cond.Mach*cond.Mach))
	if beta < 0.25 {
		beta = 0.25
	}
	cna /= beta

	forces.CNa = cna
	forces.CN = cna * cond.SinAOA()
	forces.CP = aero.Coordinate{X: f.macLEPos + 0.25*f.macLength}

	// Roll forcing from fin cant and roll damping from the rotation-induced
	// local angle of attack at the MAC.
	arm := f.bodyRadius + f.macSpanPos
	forces.CrollForce = cna * f.cant * arm / d
	forces.CrollDamp = cna * arm / d * (cond.RollRate * arm / cond.Velocity)
	if cond.RollRate == 0 {
		// Avoid 0/0 when the caller also passes zero velocity.
		forces.CrollDamp = 0
	}
	forces.Croll = forces.CrollForce - forces.CrollDamp
}

func (f *finSetCalc) PressureDrag(cond *aero.FlightConditions, stagnationCD, _ float64, _ *aero.WarningSet) float64 {
	// Leading edge frontal area, reduced by leading edge sweep.
	cosLE := f.span / math.Hypot(f.span, f.sweep)
	frontal := float64(f.count) * f.span * f.thickness
	return stagnationCD * cosLE * cosLE * frontal / cond.RefArea
}
