package barrowman

import (
	"math"

	"aerocalc/internal/aero"
	"aerocalc/internal/rocket"
)

// transitionCalc is the force strategy for nose cones, transitions and
// boat-tails. A nose cone is the fore-radius-zero special case.
type transitionCalc struct {
	length     float64
	foreRadius float64
	aftRadius  float64
	cpx        float64 // CP position from the fore end
}

func newTransitionCalc(body rocket.BodyComponent) *transitionCalc {
	t := &transitionCalc{
		length:     body.Length(),
		foreRadius: body.ForeRadius(),
		aftRadius:  body.AftRadius(),
	}
	t.cpx = t.cpPosition(body)
	return t
}

// cpPosition gives the Barrowman CP location from the fore end. Nose cones
// use the tabulated shape factor; transitions use the closed-form frustum
// expression.
func (t *transitionCalc) cpPosition(body rocket.BodyComponent) float64 {
	if nose, ok := body.(*rocket.NoseCone); ok {
		return nose.Shape().CPFactor() * t.length
	}
	if t.aftRadius == t.foreRadius || t.aftRadius == 0 {
		return t.length / 2
	}
	xi := t.foreRadius / t.aftRadius
	return t.length / 3 * (1 + (1-xi)/(1-xi*xi))
}

func (t *transitionCalc) NonaxialForces(cond *aero.FlightConditions, forces *aero.Forces, _ *aero.WarningSet) {
	foreArea := math.Pi * t.foreRadius * t.foreRadius
	aftArea := math.Pi * t.aftRadius * t.aftRadius

	forces.CNa = 2 * (aftArea - foreArea) / cond.RefArea
	forces.CN = forces.CNa * cond.SinAOA()
	forces.CP = aero.Coordinate{X: t.cpx}
}

func (t *transitionCalc) PressureDrag(cond *aero.FlightConditions, stagnationCD, baseCD float64, _ *aero.WarningSet) float64 {
	if t.length <= 0 {
		// Zero-length radius steps are handled by the stagnation/base
		// stepping of the drag aggregator.
		return 0
	}

	dr := t.aftRadius - t.foreRadius
	switch {
	case dr > 0:
		// Expanding frustum: stagnation pressure scaled by the squared
		// sine of the cone half-angle, on the exposed frontal ring.
		sin := dr / math.Hypot(dr, t.length)
		frontal := math.Pi * (t.aftRadius*t.aftRadius - t.foreRadius*t.foreRadius)
		return stagnationCD * sin * sin * frontal / cond.RefArea

	case dr < 0:
		// Boat-tail: separation drag on the shrinking ring, fading out
		// with slenderness. No drag beyond a length/diameter-step ratio
		// of 3.
		fineness := t.length / (2 * -dr)
		var gamma float64
		switch {
		case fineness <= 1:
			gamma = 1
		case fineness >= 3:
			gamma = 0
		default:
			gamma = (3 - fineness) / 2
		}
		frontal := math.Pi * (t.foreRadius*t.foreRadius - t.aftRadius*t.aftRadius)
		return baseCD * gamma * frontal / cond.RefArea
	}
	return 0
}
