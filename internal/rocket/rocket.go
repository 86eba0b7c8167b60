package rocket

import "math"

// Rocket is the full component tree, grouped into stages ordered front to
// back. It carries a monotonic generation counter: any structural or
// geometry change bumps it, and downstream caches (force strategy registry,
// damping geometry cache) compare against it on access.
//
// A Rocket and the caches built from it are not safe for concurrent
// mutation; concurrent read-only use is fine as long as no invalidation
// happens during the window.
type Rocket struct {
	name          string
	stages        [][]Component
	perfectFinish bool
	generation    uint64
}

func New(name string) *Rocket {
	return &Rocket{name: name, generation: 1}
}

func (r *Rocket) Name() string { return r.name }

// AddStage appends a stage of front-to-back ordered components.
func (r *Rocket) AddStage(components ...Component) {
	r.stages = append(r.stages, components)
	r.generation++
}

func (r *Rocket) StageCount() int { return len(r.stages) }

// Components returns every component of every stage in traversal order.
// The registry is built from this, not from the active configuration, so
// that stage selection never invalidates it.
func (r *Rocket) Components() []Component {
	var all []Component
	for _, stage := range r.stages {
		all = append(all, stage...)
	}
	return all
}

// Generation identifies the current geometry. Caches record the generation
// they were built from and rebuild on mismatch.
func (r *Rocket) Generation() uint64 { return r.generation }

// InvalidateGeometry must be called after any in-place geometry or
// structure change so caches rebuild on next access.
func (r *Rocket) InvalidateGeometry() { r.generation++ }

// PerfectFinish selects the smooth (partially laminar) skin friction model
// for the whole vehicle instead of the fully turbulent one.
func (r *Rocket) PerfectFinish() bool { return r.perfectFinish }

func (r *Rocket) SetPerfectFinish(perfect bool) {
	if r.perfectFinish != perfect {
		r.perfectFinish = perfect
		r.generation++
	}
}

// Configuration is the active-stage selection of a rocket: an ordered
// front-to-back traversal of the components flown in the current stage
// setup. Changing the stage selection does not touch the rocket's
// generation counter.
type Configuration struct {
	rocket  *Rocket
	toStage int
}

// NewConfiguration selects all stages.
func NewConfiguration(r *Rocket) *Configuration {
	return &Configuration{rocket: r, toStage: len(r.stages) - 1}
}

func (c *Configuration) Rocket() *Rocket { return c.rocket }

// SetToStage makes stages 0..n active. Negative n selects all stages.
func (c *Configuration) SetToStage(n int) {
	if n < 0 || n >= len(c.rocket.stages) {
		n = len(c.rocket.stages) - 1
	}
	c.toStage = n
}

// Components returns the active components in front-to-back order.
func (c *Configuration) Components() []Component {
	var active []Component
	for i := 0; i <= c.toStage && i < len(c.rocket.stages); i++ {
		active = append(active, c.rocket.stages[i]...)
	}
	return active
}

// Length is the total length of the active axisymmetric body.
func (c *Configuration) Length() float64 {
	total := 0.0
	for _, comp := range c.Components() {
		if _, ok := comp.(BodyComponent); ok {
			total += comp.Length()
		}
	}
	return total
}

// RefLength is the reference length: the maximum body diameter of the
// active configuration.
func (c *Configuration) RefLength() float64 {
	maxR := 0.0
	for _, comp := range c.Components() {
		if body, ok := comp.(BodyComponent); ok {
			maxR = math.Max(maxR, math.Max(body.ForeRadius(), body.AftRadius()))
		}
	}
	return 2 * maxR
}

// RefArea is the reference area matching RefLength.
func (c *Configuration) RefArea() float64 {
	d := c.RefLength()
	return math.Pi * d * d / 4
}
