// Package barrowman implements the extended Barrowman method: center of
// pressure, normal force and moment coefficients, and a friction/pressure/
// base drag breakdown for a rocket configuration.
//
// All calculations are closed-form and synchronous. Only the strategy
// registry and the damping geometry cache persist between calls; both are
// invalidated together by the rocket's geometry generation counter.
package barrowman

import (
	"aerocalc/internal/aero"
)

// ComponentCalc computes the normal-force and pressure-drag contribution of
// a single component. One implementation exists per geometry kind; the
// registry resolves components to their strategy.
type ComponentCalc interface {
	// NonaxialForces fills the local normal-force coefficients into forces.
	// The CP is reported relative to the component's fore end; the caller
	// transforms it into the assembly frame. The record is zeroed before
	// the call.
	NonaxialForces(cond *aero.FlightConditions, forces *aero.Forces, warnings *aero.WarningSet)

	// PressureDrag returns the forebody pressure drag coefficient of the
	// component, referenced to cond.RefArea, given the current stagnation
	// and base pressure coefficients.
	PressureDrag(cond *aero.FlightConditions, stagnationCD, baseCD float64, warnings *aero.WarningSet) float64
}

// finCalc is the extra surface a fin set strategy exposes to the friction
// and damping paths.
type finCalc interface {
	ComponentCalc
	// MACLength is the mean aerodynamic chord length.
	MACLength() float64
	// MidchordPos is the axial position of the MAC midchord point,
	// relative to the component's fore end.
	MidchordPos() float64
}
