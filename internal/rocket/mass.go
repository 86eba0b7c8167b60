package rocket

// MassProperties aggregates the mass state of a configuration at a point
// in time. Motor burn is owned by the trajectory simulator; this static
// model treats component masses as constant.
type MassProperties struct {
	Mass                float64
	CGX                 float64 // absolute axial CG position
	LongitudinalInertia float64 // about the CG, kg*m^2
	RotationalInertia   float64 // about the axis, kg*m^2
}

// MassProperties computes the aggregate mass, CG and moments of inertia of
// the active configuration. The time argument is accepted for interface
// compatibility with time-varying mass providers and ignored here.
func (c *Configuration) MassProperties(_ float64) MassProperties {
	var m MassProperties

	for _, comp := range c.Components() {
		mass := comp.Mass()
		m.Mass += mass
		m.CGX += mass * comp.CG()
	}
	if m.Mass > 0 {
		m.CGX /= m.Mass
	}

	// Point-mass longitudinal inertia about the CG; thin-shell rotational
	// inertia for body components.
	for _, comp := range c.Components() {
		mass := comp.Mass()
		dx := comp.CG() - m.CGX
		m.LongitudinalInertia += mass * dx * dx
		if body, ok := comp.(BodyComponent); ok {
			r := (body.ForeRadius() + body.AftRadius()) / 2
			m.RotationalInertia += mass * r * r
		}
	}

	return m
}
