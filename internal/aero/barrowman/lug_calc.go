package barrowman

import (
	"math"

	"aerocalc/internal/aero"
	"aerocalc/internal/rocket"
)

// launchLugCalc is the strategy for launch lugs: pure drag, no normal
// force.
type launchLugCalc struct {
	length      float64
	outerRadius float64
}

func newLaunchLugCalc(lug *rocket.LaunchLug) *launchLugCalc {
	return &launchLugCalc{length: lug.Length(), outerRadius: lug.OuterRadius()}
}

func (l *launchLugCalc) NonaxialForces(_ *aero.FlightConditions, forces *aero.Forces, _ *aero.WarningSet) {
	forces.CP = aero.Coordinate{X: l.length / 2}
}

func (l *launchLugCalc) PressureDrag(cond *aero.FlightConditions, stagnationCD, _ float64, _ *aero.WarningSet) float64 {
	frontal := math.Pi * l.outerRadius * l.outerRadius
	return stagnationCD * frontal / cond.RefArea
}
