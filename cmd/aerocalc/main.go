package main

import (
	"fmt"
	"math"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"aerocalc/internal/aero"
	"aerocalc/internal/aero/barrowman"
	"aerocalc/internal/config"
	"aerocalc/internal/report"
	"aerocalc/internal/rocket"
	"aerocalc/internal/storage"
)

var (
	rocketFile string
	preset     string
	logLevel   string
	mach       float64
	aoaDeg     float64
	stage      int
	// sweep
	sweepFrom float64
	sweepTo   float64
	sweepStep float64
	sweepOut  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aerocalc",
		Short: "rocket aerodynamic coefficient calculator (extended Barrowman method)",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				level = zerolog.InfoLevel
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
		},
	}

	rootCmd.PersistentFlags().StringVar(&rocketFile, "rocket", "rocket.yaml", "rocket definition file")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a built-in rocket instead of a file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.PersistentFlags().Float64Var(&mach, "mach", -1, "Mach number (overrides definition)")
	rootCmd.PersistentFlags().Float64Var(&aoaDeg, "aoa", -1, "angle of attack in degrees (overrides definition)")
	rootCmd.PersistentFlags().IntVar(&stage, "stage", -1, "active up-to stage, -1 for all")

	cpCmd := &cobra.Command{
		Use:   "cp",
		Short: "compute center of pressure and static margin",
		RunE:  runCP,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "per-component force and drag breakdown",
		RunE:  runAnalyze,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "drag coefficient sweep across Mach numbers",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.05, "start Mach")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 3.0, "end Mach")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 0.05, "Mach step")
	sweepCmd.Flags().StringVar(&sweepOut, "out", "", "directory to save CSV results")

	rootCmd.AddCommand(cpCmd, analyzeCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads the definition and assembles the calculator and conditions.
func setup() (*config.Definition, *barrowman.Calculator, *rocket.Configuration, *aero.FlightConditions, error) {
	var def *config.Definition
	if preset != "" {
		var ok bool
		if def, ok = config.Presets[preset]; !ok {
			return nil, nil, nil, nil, fmt.Errorf("unknown preset %q", preset)
		}
	} else {
		var err error
		if def, err = config.Load(rocketFile); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	r, err := def.Build()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	cfg := rocket.NewConfiguration(r)
	cfg.SetToStage(stage)

	cond := def.FlightConditions(cfg)
	if mach >= 0 {
		cond.SetMach(mach)
	}
	if aoaDeg >= 0 {
		cond.AOA = aoaDeg * math.Pi / 180
	}

	log.Debug().
		Str("rocket", r.Name()).
		Int("components", len(cfg.Components())).
		Float64("mach", cond.Mach).
		Msg("configuration loaded")

	return def, barrowman.New(cfg), cfg, cond, nil
}

func runCP(cmd *cobra.Command, args []string) error {
	_, calc, cfg, cond, err := setup()
	if err != nil {
		return err
	}

	warnings := aero.NewWarningSet()
	cp := calc.CP(cond, warnings)
	mp := cfg.MassProperties(0)

	fmt.Print(report.Stability(cp, aero.Coordinate{X: mp.CGX}, cond))
	fmt.Print(report.Warnings(warnings))
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	_, calc, _, cond, err := setup()
	if err != nil {
		return err
	}

	warnings := aero.NewWarningSet()
	analysis := calc.ForceAnalysis(cond, warnings)

	fmt.Print(report.Analysis(analysis, cond))
	fmt.Print(report.Warnings(warnings))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	def, calc, _, cond, err := setup()
	if err != nil {
		return err
	}
	if sweepStep <= 0 || sweepTo < sweepFrom {
		return fmt.Errorf("invalid sweep range %g..%g step %g", sweepFrom, sweepTo, sweepStep)
	}

	var points []storage.SweepPoint
	var series []float64
	for m := sweepFrom; m <= sweepTo+1e-9; m += sweepStep {
		cond.SetMach(m)
		total := calc.AxialForces(0, cond, nil)
		points = append(points, storage.SweepPoint{
			Mach:       m,
			FrictionCD: total.FrictionCD,
			PressureCD: total.PressureCD,
			BaseCD:     total.BaseCD,
			CD:         total.CD,
			Caxial:     total.Caxial,
		})
		series = append(series, total.CD)
	}

	fmt.Printf("CD vs Mach (%.2f..%.2f)\n", sweepFrom, sweepTo)
	fmt.Println(asciigraph.Plot(series, asciigraph.Height(15), asciigraph.Width(70)))

	if sweepOut != "" {
		store := storage.New(sweepOut)
		if err := store.Init(); err != nil {
			return err
		}
		id, err := store.SaveSweep(def.Name, cond.AOA*180/math.Pi, points)
		if err != nil {
			return err
		}
		log.Info().Str("id", id).Str("dir", sweepOut).Msg("sweep saved")
	}
	return nil
}
