package barrowman

import (
	"fmt"

	"aerocalc/internal/rocket"
)

// calcCache is the per-calculator derived state: the strategy registry and
// the damping geometry aggregates, both valid only for the geometry
// generation they were built from. They share one invalidation trigger and
// are never invalidated independently.
type calcCache struct {
	generation uint64
	calcs      map[rocket.Component]ComponentCalc

	// Damping geometry; meanDiameter < 0 means not yet computed.
	meanDiameter float64
	meanLength   float64
}

// checkCache rebuilds the registry lazily when the rocket's geometry
// generation has moved past the one the cache was built from.
func (c *Calculator) checkCache() {
	gen := c.config.Rocket().Generation()
	if c.cache.calcs != nil && c.cache.generation == gen {
		return
	}
	c.cache = calcCache{
		generation:   gen,
		calcs:        buildCalcMap(c.config.Rocket()),
		meanDiameter: -1,
	}
}

// buildCalcMap registers a force strategy for every aerodynamic component
// of the full tree, not just the active stages, so that stage selection
// never requires a rebuild.
func buildCalcMap(r *rocket.Rocket) map[rocket.Component]ComponentCalc {
	calcs := make(map[rocket.Component]ComponentCalc)
	for _, comp := range r.Components() {
		if !comp.IsAerodynamic() {
			continue
		}
		calcs[comp] = newComponentCalc(comp)
	}
	return calcs
}

// newComponentCalc resolves a geometry kind to its strategy. The kind set
// is closed; an unhandled aerodynamic kind is a programming error and fails
// loudly at registry construction.
func newComponentCalc(comp rocket.Component) ComponentCalc {
	switch comp.Kind() {
	case rocket.KindNoseCone, rocket.KindTransition:
		return newTransitionCalc(comp.(rocket.BodyComponent))
	case rocket.KindBodyTube:
		return newBodyTubeCalc(comp.(*rocket.BodyTube))
	case rocket.KindTrapezoidFinSet:
		return newFinSetCalc(comp.(*rocket.TrapezoidFinSet))
	case rocket.KindLaunchLug:
		return newLaunchLugCalc(comp.(*rocket.LaunchLug))
	default:
		panic(fmt.Sprintf("barrowman: no force strategy for geometry kind %q", comp.Kind()))
	}
}
