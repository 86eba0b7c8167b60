package rocket

import "math"

// Component is the read-only view of one airframe component. The
// calculator never mutates components; all geometry edits go through the
// owning Rocket, which bumps its generation counter.
type Component interface {
	Name() string
	Kind() Kind
	// IsAerodynamic reports whether the component contributes aerodynamic
	// forces. Non-aerodynamic components are skipped by every traversal and
	// never registered with a force strategy.
	IsAerodynamic() bool
	// ForePosition is the absolute axial position of the component's
	// forward end, measured from the nose tip.
	ForePosition() float64
	Length() float64
	Mass() float64
	// CG is the absolute axial position of the component's center of mass.
	CG() float64
}

// BodyComponent is an axisymmetric shell component (nose cone, transition,
// body tube). These take part in discontinuity detection, stagnation/base
// drag stepping and the damping geometry cache.
type BodyComponent interface {
	Component
	ForeRadius() float64
	AftRadius() float64
	WetArea() float64
	PlanformArea() float64
	Finish() Finish
}

// ExternalComponent is any component exposed to the airflow, carrying a
// surface finish.
type ExternalComponent interface {
	Component
	Finish() Finish
}

// NoseShape selects the nose cone profile; it only affects the CP position
// factor of the nose strategy.
type NoseShape int

const (
	ShapeConical NoseShape = iota
	ShapeOgive
	ShapeParabolic
	ShapeElliptical
)

// CPFactor is the fraction of the nose length the CP sits behind the tip.
func (s NoseShape) CPFactor() float64 {
	switch s {
	case ShapeConical:
		return 2.0 / 3.0
	case ShapeOgive:
		return 0.466
	case ShapeParabolic:
		return 0.5
	case ShapeElliptical:
		return 1.0 / 3.0
	}
	return 0.5
}

func (s NoseShape) String() string {
	switch s {
	case ShapeConical:
		return "conical"
	case ShapeOgive:
		return "ogive"
	case ShapeParabolic:
		return "parabolic"
	case ShapeElliptical:
		return "elliptical"
	}
	return "unknown"
}

// frustum surface of revolution, lateral area only
func frustumWetArea(r1, r2, length float64) float64 {
	slant := math.Hypot(r2-r1, length)
	return math.Pi * (r1 + r2) * slant
}

// axial cross-section (profile) area of a frustum
func frustumPlanformArea(r1, r2, length float64) float64 {
	return (r1 + r2) * length
}

// NoseConeSpec describes a nose cone. CGOffset is measured from the fore
// end; zero means the length midpoint.
type NoseConeSpec struct {
	Name      string
	Position  float64
	Length    float64
	AftRadius float64
	Shape     NoseShape
	Finish    Finish
	Mass      float64
	CGOffset  float64
}

type NoseCone struct {
	spec NoseConeSpec
}

func NewNoseCone(spec NoseConeSpec) *NoseCone {
	return &NoseCone{spec: spec}
}

func (n *NoseCone) Name() string          { return n.spec.Name }
func (n *NoseCone) Kind() Kind            { return KindNoseCone }
func (n *NoseCone) IsAerodynamic() bool   { return true }
func (n *NoseCone) ForePosition() float64 { return n.spec.Position }
func (n *NoseCone) Length() float64       { return n.spec.Length }
func (n *NoseCone) Mass() float64         { return n.spec.Mass }
func (n *NoseCone) CG() float64           { return n.spec.Position + cgOffset(n.spec.CGOffset, n.spec.Length) }
func (n *NoseCone) ForeRadius() float64   { return 0 }
func (n *NoseCone) AftRadius() float64    { return n.spec.AftRadius }
func (n *NoseCone) Finish() Finish        { return n.spec.Finish }
func (n *NoseCone) Shape() NoseShape      { return n.spec.Shape }

func (n *NoseCone) WetArea() float64 {
	return frustumWetArea(0, n.spec.AftRadius, n.spec.Length)
}

func (n *NoseCone) PlanformArea() float64 {
	return frustumPlanformArea(0, n.spec.AftRadius, n.spec.Length)
}

// TransitionSpec describes a conical transition or boat-tail.
type TransitionSpec struct {
	Name       string
	Position   float64
	Length     float64
	ForeRadius float64
	AftRadius  float64
	Finish     Finish
	Mass       float64
	CGOffset   float64
}

type Transition struct {
	spec TransitionSpec
}

func NewTransition(spec TransitionSpec) *Transition {
	return &Transition{spec: spec}
}

func (t *Transition) Name() string          { return t.spec.Name }
func (t *Transition) Kind() Kind            { return KindTransition }
func (t *Transition) IsAerodynamic() bool   { return true }
func (t *Transition) ForePosition() float64 { return t.spec.Position }
func (t *Transition) Length() float64       { return t.spec.Length }
func (t *Transition) Mass() float64         { return t.spec.Mass }
func (t *Transition) CG() float64           { return t.spec.Position + cgOffset(t.spec.CGOffset, t.spec.Length) }
func (t *Transition) ForeRadius() float64   { return t.spec.ForeRadius }
func (t *Transition) AftRadius() float64    { return t.spec.AftRadius }
func (t *Transition) Finish() Finish        { return t.spec.Finish }

func (t *Transition) WetArea() float64 {
	return frustumWetArea(t.spec.ForeRadius, t.spec.AftRadius, t.spec.Length)
}

func (t *Transition) PlanformArea() float64 {
	return frustumPlanformArea(t.spec.ForeRadius, t.spec.AftRadius, t.spec.Length)
}

// BodyTubeSpec describes a constant-radius tube.
type BodyTubeSpec struct {
	Name     string
	Position float64
	Length   float64
	Radius   float64
	Finish   Finish
	Mass     float64
	CGOffset float64
}

type BodyTube struct {
	spec BodyTubeSpec
}

func NewBodyTube(spec BodyTubeSpec) *BodyTube {
	return &BodyTube{spec: spec}
}

func (b *BodyTube) Name() string          { return b.spec.Name }
func (b *BodyTube) Kind() Kind            { return KindBodyTube }
func (b *BodyTube) IsAerodynamic() bool   { return true }
func (b *BodyTube) ForePosition() float64 { return b.spec.Position }
func (b *BodyTube) Length() float64       { return b.spec.Length }
func (b *BodyTube) Mass() float64         { return b.spec.Mass }
func (b *BodyTube) CG() float64           { return b.spec.Position + cgOffset(b.spec.CGOffset, b.spec.Length) }
func (b *BodyTube) ForeRadius() float64   { return b.spec.Radius }
func (b *BodyTube) AftRadius() float64    { return b.spec.Radius }
func (b *BodyTube) Finish() Finish        { return b.spec.Finish }

func (b *BodyTube) WetArea() float64 {
	return 2 * math.Pi * b.spec.Radius * b.spec.Length
}

func (b *BodyTube) PlanformArea() float64 {
	return 2 * b.spec.Radius * b.spec.Length
}

// TrapezoidFinSetSpec describes a set of identical trapezoidal fins spaced
// evenly around the body. Sweep is the axial distance from the root leading
// edge to the tip leading edge. Cant is the fin cant angle in radians.
type TrapezoidFinSetSpec struct {
	Name       string
	Position   float64 // absolute position of the root leading edge
	Count      int
	RootChord  float64
	TipChord   float64
	Span       float64
	Sweep      float64
	Thickness  float64
	Cant       float64
	BodyRadius float64 // body radius at the fin station
	Finish     Finish
	Mass       float64
}

type TrapezoidFinSet struct {
	spec TrapezoidFinSetSpec
}

func NewTrapezoidFinSet(spec TrapezoidFinSetSpec) *TrapezoidFinSet {
	return &TrapezoidFinSet{spec: spec}
}

func (f *TrapezoidFinSet) Name() string          { return f.spec.Name }
func (f *TrapezoidFinSet) Kind() Kind            { return KindTrapezoidFinSet }
func (f *TrapezoidFinSet) IsAerodynamic() bool   { return true }
func (f *TrapezoidFinSet) ForePosition() float64 { return f.spec.Position }
func (f *TrapezoidFinSet) Mass() float64         { return f.spec.Mass }
func (f *TrapezoidFinSet) CG() float64           { return f.spec.Position + f.Length()/2 }
func (f *TrapezoidFinSet) Finish() Finish        { return f.spec.Finish }
func (f *TrapezoidFinSet) FinCount() int         { return f.spec.Count }
func (f *TrapezoidFinSet) RootChord() float64    { return f.spec.RootChord }
func (f *TrapezoidFinSet) TipChord() float64     { return f.spec.TipChord }
func (f *TrapezoidFinSet) Span() float64         { return f.spec.Span }
func (f *TrapezoidFinSet) Sweep() float64        { return f.spec.Sweep }
func (f *TrapezoidFinSet) Thickness() float64    { return f.spec.Thickness }
func (f *TrapezoidFinSet) Cant() float64         { return f.spec.Cant }
func (f *TrapezoidFinSet) BodyRadius() float64   { return f.spec.BodyRadius }

// Length is the axial extent of the planform.
func (f *TrapezoidFinSet) Length() float64 {
	return math.Max(f.spec.RootChord, f.spec.Sweep+f.spec.TipChord)
}

// FinArea is the planform area of a single fin.
func (f *TrapezoidFinSet) FinArea() float64 {
	return (f.spec.RootChord + f.spec.TipChord) / 2 * f.spec.Span
}

// LaunchLugSpec describes a cylindrical launch lug.
type LaunchLugSpec struct {
	Name        string
	Position    float64
	Length      float64
	OuterRadius float64
	Finish      Finish
	Mass        float64
}

type LaunchLug struct {
	spec LaunchLugSpec
}

func NewLaunchLug(spec LaunchLugSpec) *LaunchLug {
	return &LaunchLug{spec: spec}
}

func (l *LaunchLug) Name() string          { return l.spec.Name }
func (l *LaunchLug) Kind() Kind            { return KindLaunchLug }
func (l *LaunchLug) IsAerodynamic() bool   { return true }
func (l *LaunchLug) ForePosition() float64 { return l.spec.Position }
func (l *LaunchLug) Length() float64       { return l.spec.Length }
func (l *LaunchLug) Mass() float64         { return l.spec.Mass }
func (l *LaunchLug) CG() float64           { return l.spec.Position + l.spec.Length/2 }
func (l *LaunchLug) Finish() Finish        { return l.spec.Finish }
func (l *LaunchLug) OuterRadius() float64  { return l.spec.OuterRadius }

// MassComponentSpec describes internal mass (payload, recovery hardware,
// motor) with no aerodynamic effect.
type MassComponentSpec struct {
	Name     string
	Position float64
	Length   float64
	Mass     float64
	CGOffset float64
}

type MassComponent struct {
	spec MassComponentSpec
}

func NewMassComponent(spec MassComponentSpec) *MassComponent {
	return &MassComponent{spec: spec}
}

func (m *MassComponent) Name() string          { return m.spec.Name }
func (m *MassComponent) Kind() Kind            { return KindMassComponent }
func (m *MassComponent) IsAerodynamic() bool   { return false }
func (m *MassComponent) ForePosition() float64 { return m.spec.Position }
func (m *MassComponent) Length() float64       { return m.spec.Length }
func (m *MassComponent) Mass() float64         { return m.spec.Mass }
func (m *MassComponent) CG() float64 {
	return m.spec.Position + cgOffset(m.spec.CGOffset, m.spec.Length)
}

func cgOffset(offset, length float64) float64 {
	if offset != 0 {
		return offset
	}
	return length / 2
}
