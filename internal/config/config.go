// Package config loads rocket and flight condition definitions from YAML.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"aerocalc/internal/aero"
	"aerocalc/internal/rocket"
)

// Definition is the YAML schema of a rocket plus default flight
// conditions.
type Definition struct {
	Name          string        `yaml:"name"`
	PerfectFinish bool          `yaml:"perfect_finish"`
	Stages        []StageDef    `yaml:"stages"`
	Conditions    ConditionsDef `yaml:"conditions"`
}

type StageDef struct {
	Name       string         `yaml:"name"`
	Components []ComponentDef `yaml:"components"`
}

// ComponentDef is one component entry. Kind selects which fields apply.
// Position is optional for body components, which stack front to back;
// fin sets, lugs and masses default to ending at the current body aft end.
type ComponentDef struct {
	Kind     string   `yaml:"kind"`
	Name     string   `yaml:"name"`
	Position *float64 `yaml:"position"`
	Length   float64  `yaml:"length"`
	Mass     float64  `yaml:"mass"`
	Finish   string   `yaml:"finish"`

	// bodytube
	Radius float64 `yaml:"radius"`

	// nosecone / transition
	Shape      string  `yaml:"shape"`
	ForeRadius float64 `yaml:"fore_radius"`
	AftRadius  float64 `yaml:"aft_radius"`

	// finset
	Count     int     `yaml:"count"`
	RootChord float64 `yaml:"root_chord"`
	TipChord  float64 `yaml:"tip_chord"`
	Span      float64 `yaml:"span"`
	Sweep     float64 `yaml:"sweep"`
	Thickness float64 `yaml:"thickness"`
	CantDeg   float64 `yaml:"cant_deg"`

	// launchlug
	OuterRadius float64 `yaml:"outer_radius"`
}

type ConditionsDef struct {
	Mach        float64 `yaml:"mach"`
	AOADeg      float64 `yaml:"aoa_deg"`
	PitchRate   float64 `yaml:"pitch_rate"`
	YawRate     float64 `yaml:"yaw_rate"`
	Temperature float64 `yaml:"temperature"`
	Pressure    float64 `yaml:"pressure"`
}

func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Definition, error) {
	def := &Definition{}
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, fmt.Errorf("parse rocket definition: %w", err)
	}
	if len(def.Stages) == 0 {
		return nil, fmt.Errorf("rocket definition %q has no stages", def.Name)
	}
	return def, nil
}

// Build assembles the rocket tree. Body components without an explicit
// position are stacked front to back; the current body radius is carried
// into fin sets as the mounting radius.
func (d *Definition) Build() (*rocket.Rocket, error) {
	r := rocket.New(d.Name)
	r.SetPerfectFinish(d.PerfectFinish)

	x := 0.0     // running aft position of the body stack
	bodyR := 0.0 // current body radius, for fin mounting
	for _, stage := range d.Stages {
		var comps []rocket.Component
		for _, def := range stage.Components {
			comp, err := buildComponent(def, &x, &bodyR)
			if err != nil {
				return nil, fmt.Errorf("stage %q: %w", stage.Name, err)
			}
			comps = append(comps, comp)
		}
		r.AddStage(comps...)
	}
	return r, nil
}

func buildComponent(def ComponentDef, x, bodyR *float64) (rocket.Component, error) {
	finish, err := parseFinish(def.Finish)
	if err != nil {
		return nil, fmt.Errorf("component %q: %w", def.Name, err)
	}

	bodyPos := func() float64 {
		if def.Position != nil {
			return *def.Position
		}
		return *x
	}
	// Non-body components default to ending at the current body aft end.
	trailingPos := func(length float64) float64 {
		if def.Position != nil {
			return *def.Position
		}
		return math.Max(0, *x-length)
	}

	switch def.Kind {
	case "nosecone":
		shape, err := parseShape(def.Shape)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", def.Name, err)
		}
		pos := bodyPos()
		*x = pos + def.Length
		*bodyR = def.AftRadius
		return rocket.NewNoseCone(rocket.NoseConeSpec{
			Name: def.Name, Position: pos, Length: def.Length,
			AftRadius: def.AftRadius, Shape: shape, Finish: finish, Mass: def.Mass,
		}), nil

	case "transition":
		pos := bodyPos()
		*x = pos + def.Length
		*bodyR = def.AftRadius
		return rocket.NewTransition(rocket.TransitionSpec{
			Name: def.Name, Position: pos, Length: def.Length,
			ForeRadius: def.ForeRadius, AftRadius: def.AftRadius,
			Finish: finish, Mass: def.Mass,
		}), nil

	case "bodytube":
		pos := bodyPos()
		*x = pos + def.Length
		*bodyR = def.Radius
		return rocket.NewBodyTube(rocket.BodyTubeSpec{
			Name: def.Name, Position: pos, Length: def.Length,
			Radius: def.Radius, Finish: finish, Mass: def.Mass,
		}), nil

	case "finset":
		if def.Count < 1 {
			return nil, fmt.Errorf("component %q: fin count must be at least 1", def.Name)
		}
		length := math.Max(def.RootChord, def.Sweep+def.TipChord)
		return rocket.NewTrapezoidFinSet(rocket.TrapezoidFinSetSpec{
			Name: def.Name, Position: trailingPos(length), Count: def.Count,
			RootChord: def.RootChord, TipChord: def.TipChord, Span: def.Span,
			Sweep: def.Sweep, Thickness: def.Thickness,
			Cant:       def.CantDeg * math.Pi / 180,
			BodyRadius: *bodyR, Finish: finish, Mass: def.Mass,
		}), nil

	case "launchlug":
		return rocket.NewLaunchLug(rocket.LaunchLugSpec{
			Name: def.Name, Position: trailingPos(def.Length), Length: def.Length,
			OuterRadius: def.OuterRadius, Finish: finish, Mass: def.Mass,
		}), nil

	case "mass":
		return rocket.NewMassComponent(rocket.MassComponentSpec{
			Name: def.Name, Position: trailingPos(def.Length), Length: def.Length,
			Mass: def.Mass,
		}), nil
	}
	return nil, fmt.Errorf("component %q: unknown kind %q", def.Name, def.Kind)
}

func parseFinish(s string) (rocket.Finish, error) {
	switch s {
	case "polished":
		return rocket.FinishPolished, nil
	case "smooth":
		return rocket.FinishSmooth, nil
	case "", "normal":
		return rocket.FinishNormal, nil
	case "unfinished":
		return rocket.FinishUnfinished, nil
	case "rough":
		return rocket.FinishRough, nil
	}
	return 0, fmt.Errorf("unknown finish %q", s)
}

func parseShape(s string) (rocket.NoseShape, error) {
	switch s {
	case "conical":
		return rocket.ShapeConical, nil
	case "", "ogive":
		return rocket.ShapeOgive, nil
	case "parabolic":
		return rocket.ShapeParabolic, nil
	case "elliptical":
		return rocket.ShapeElliptical, nil
	}
	return 0, fmt.Errorf("unknown nose shape %q", s)
}

// FlightConditions builds the flight conditions for a configuration from
// the definition defaults. Zero temperature/pressure mean the standard
// atmosphere.
func (d *Definition) FlightConditions(cfg *rocket.Configuration) *aero.FlightConditions {
	atm := aero.StandardConditions()
	if d.Conditions.Temperature > 0 {
		atm.Temperature = d.Conditions.Temperature
	}
	if d.Conditions.Pressure > 0 {
		atm.Pressure = d.Conditions.Pressure
	}

	fc := &aero.FlightConditions{
		AOA:        d.Conditions.AOADeg * math.Pi / 180,
		PitchRate:  d.Conditions.PitchRate,
		YawRate:    d.Conditions.YawRate,
		RefArea:    cfg.RefArea(),
		RefLength:  cfg.RefLength(),
		Atmosphere: atm,
	}
	fc.SetMach(d.Conditions.Mach)
	return fc
}
