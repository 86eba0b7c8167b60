package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"aerocalc/internal/rocket"
)

const sampleYAML = `
name: alpha
perfect_finish: true
stages:
  - name: sustainer
    components:
      - kind: nosecone
        name: nose
        length: 0.25
        aft_radius: 0.025
        shape: conical
        finish: smooth
        mass: 0.05
      - kind: bodytube
        name: tube
        length: 0.5
        radius: 0.025
        finish: smooth
        mass: 0.2
      - kind: finset
        name: fins
        count: 3
        root_chord: 0.06
        tip_chord: 0.03
        span: 0.05
        sweep: 0.02
        thickness: 0.003
        finish: smooth
        mass: 0.03
      - kind: mass
        name: motor
        position: 0.55
        length: 0.2
        mass: 0.4
conditions:
  mach: 0.3
  aoa_deg: 2
`

func TestParseAndBuild(t *testing.T) {
	def, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, "alpha", def.Name)
	require.True(t, def.PerfectFinish)

	r, err := def.Build()
	require.NoError(t, err)
	require.True(t, r.PerfectFinish())

	comps := r.Components()
	require.Len(t, comps, 4)

	// Body components stack front to back.
	require.Equal(t, 0.0, comps[0].ForePosition())
	require.Equal(t, 0.25, comps[1].ForePosition())

	// The fin set defaults to ending at the body aft end and picks up the
	// mounting radius from the tube.
	fins := comps[2].(*rocket.TrapezoidFinSet)
	require.InDelta(t, 0.75-0.06, fins.ForePosition(), 1e-12)
	require.Equal(t, 0.025, fins.BodyRadius())
}

func TestFlightConditionsFromDefinition(t *testing.T) {
	def, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	r, err := def.Build()
	require.NoError(t, err)

	cfg := rocket.NewConfiguration(r)
	cond := def.FlightConditions(cfg)

	require.InDelta(t, 0.3, cond.Mach, 1e-12)
	require.InDelta(t, 2*math.Pi/180, cond.AOA, 1e-12)
	require.InDelta(t, 0.05, cond.RefLength, 1e-12)
	require.Greater(t, cond.Velocity, 100.0)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocket.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	def, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "alpha", def.Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no stages", `name: empty`},
		{"bad yaml", `:{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestPresetsBuild(t *testing.T) {
	for name, def := range Presets {
		t.Run(name, func(t *testing.T) {
			r, err := def.Build()
			require.NoError(t, err)
			require.NotEmpty(t, r.Components())
			require.Greater(t, def.Conditions.Mach, 0.0)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown kind", `
name: x
stages:
  - components:
      - kind: warpdrive
`},
		{"unknown finish", `
name: x
stages:
  - components:
      - kind: bodytube
        finish: chrome
`},
		{"zero fin count", `
name: x
stages:
  - components:
      - kind: finset
        count: 0
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = def.Build()
			require.Error(t, err)
		})
	}
}
