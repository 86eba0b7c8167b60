package config

func f(v float64) *float64 { return &v }

// Presets are built-in rocket definitions usable without a YAML file.
var Presets = map[string]*Definition{
	"alpha": {
		Name: "alpha",
		Stages: []StageDef{
			{Name: "sustainer", Components: []ComponentDef{
				{Kind: "nosecone", Name: "nose", Length: 0.25, AftRadius: 0.0125,
					Shape: "ogive", Finish: "normal", Mass: 0.023},
				{Kind: "bodytube", Name: "tube", Length: 0.30, Radius: 0.0125,
					Finish: "normal", Mass: 0.045},
				{Kind: "finset", Name: "fins", Count: 3, RootChord: 0.05,
					TipChord: 0.03, Span: 0.05, Sweep: 0.02, Thickness: 0.003,
					Finish: "normal", Mass: 0.015},
				{Kind: "launchlug", Name: "lug", Position: f(0.4), Length: 0.03,
					OuterRadius: 0.0035, Mass: 0.001},
				{Kind: "mass", Name: "motor", Position: f(0.45), Length: 0.07,
					Mass: 0.024},
			}},
		},
		Conditions: ConditionsDef{Mach: 0.3},
	},
	"two-stage": {
		Name: "two-stage",
		Stages: []StageDef{
			{Name: "sustainer", Components: []ComponentDef{
				{Kind: "nosecone", Name: "nose", Length: 0.30, AftRadius: 0.025,
					Shape: "conical", Finish: "smooth", Mass: 0.08},
				{Kind: "bodytube", Name: "upper tube", Length: 0.45, Radius: 0.025,
					Finish: "smooth", Mass: 0.15},
				{Kind: "finset", Name: "upper fins", Count: 4, RootChord: 0.07,
					TipChord: 0.04, Span: 0.06, Sweep: 0.03, Thickness: 0.004,
					Finish: "smooth", Mass: 0.04},
			}},
			{Name: "booster", Components: []ComponentDef{
				{Kind: "bodytube", Name: "booster tube", Length: 0.35, Radius: 0.025,
					Finish: "smooth", Mass: 0.12},
				{Kind: "transition", Name: "boat-tail", Length: 0.05,
					ForeRadius: 0.025, AftRadius: 0.018, Finish: "smooth", Mass: 0.02},
				{Kind: "finset", Name: "booster fins", Count: 4, RootChord: 0.09,
					TipChord: 0.05, Span: 0.08, Sweep: 0.04, Thickness: 0.004,
					Finish: "smooth", Mass: 0.06},
				{Kind: "mass", Name: "booster motor", Position: f(1.0), Length: 0.1,
					Mass: 0.24},
			}},
		},
		Conditions: ConditionsDef{Mach: 0.5},
	},
}
