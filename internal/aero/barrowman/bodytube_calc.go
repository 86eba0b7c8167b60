package barrowman

import (
	"aerocalc/internal/aero"
	"aerocalc/internal/rocket"
)

// bodyTubeCalc is the strategy for constant-radius tubes: no linear normal
// force and no forebody pressure drag. The CP sits at the tube midpoint so
// the running CP average stays well defined.
type bodyTubeCalc struct {
	length float64
}

func newBodyTubeCalc(tube *rocket.BodyTube) *bodyTubeCalc {
	return &bodyTubeCalc{length: tube.Length()}
}

func (b *bodyTubeCalc) NonaxialForces(_ *aero.FlightConditions, forces *aero.Forces, _ *aero.WarningSet) {
	forces.CP = aero.Coordinate{X: b.length / 2}
}

func (b *bodyTubeCalc) PressureDrag(_ *aero.FlightConditions, _, _ float64, _ *aero.WarningSet) float64 {
	return 0
}
