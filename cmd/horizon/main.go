package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/horizon/internal/analysis"
	"github.com/san-kum/horizon/internal/config"
	"github.com/san-kum/horizon/internal/export"
	"github.com/san-kum/horizon/internal/metrics"
	"github.com/san-kum/horizon/internal/sim"
	"github.com/san-kum/horizon/internal/viz"
)

var (
	gravity    float64
	mass       float64
	lightSpeed float64
	dt         float64
	ticks      int
	configFile string
	preset     string
	outDir     string
	svgFile    string
	plotLimit  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "horizon",
		Short: "black hole particle and photon capture simulator",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to live view of the built-in scene
			if err := runLive(cmd, args); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation headless and report results",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&outDir, "out", "", "directory to save run data (metadata + paths.csv)")
	runCmd.Flags().StringVar(&svgFile, "svg", "", "write trajectory rendering to an SVG file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live terminal animation",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().Float64Var(&plotLimit, "limit", 300, "half-extent of the plotted region")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scene presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %d particles, %d ticks\n", name, len(p.Particles), p.Ticks)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&gravity, "g", config.DefaultG, "gravitational constant")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultM, "body mass")
	cmd.Flags().Float64Var(&lightSpeed, "c", config.DefaultC, "clamp speed for photons")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "time step")
	cmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset scene")
}

// loadConfig resolves preset, config file and flags, in increasing
// precedence, into one Config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("g") {
		cfg.G = gravity
	}
	if cmd.Flags().Changed("mass") {
		cfg.M = mass
	}
	if cmd.Flags().Changed("c") {
		cfg.C = lightSpeed
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("ticks") {
		cfg.Ticks = ticks
	}

	return cfg, nil
}

func buildDriver(cfg *config.Config) (*sim.Driver, error) {
	body, particles, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return sim.New(body, particles, cfg.Dt)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	driver, err := buildDriver(cfg)
	if err != nil {
		return err
	}
	body := driver.Body()

	rec := sim.NewRecorder(len(cfg.Particles))
	driver.AddSink(rec)
	driver.AddMetric(metrics.NewEnergyDrift(body))
	driver.AddMetric(metrics.NewPhotonSpeed(body.C))
	driver.AddMetric(metrics.NewCaptures())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %d particles for %d ticks (dt=%g, r_s=%.3f)...\n",
		len(cfg.Particles), cfg.Ticks, cfg.Dt, body.Rs)
	start := time.Now()

	result, err := driver.Run(ctx, cfg.Ticks)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	summaries := analysis.Summarize(result.Final)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLE\tKIND\tFINAL POS\tPATH\tCLOSEST\tDEFLECT\tCAPTURED")
	for i, p := range result.Final.Particles {
		kind := "mass"
		if p.Photon {
			kind = "photon"
		}
		captured := "-"
		if t := rec.CaptureTick(i); t >= 0 {
			captured = fmt.Sprintf("tick %d", t)
		}
		deflect := "-"
		if !p.Captured && !math.IsNaN(summaries[i].Deflection) {
			deflect = fmt.Sprintf("%.1f°", summaries[i].Deflection*180/math.Pi)
		}
		fmt.Fprintf(w, "%d\t%s\t(%.1f, %.1f)\t%d\t%.1f\t%s\t%s\n",
			i, kind, p.Pos.X(), p.Pos.Y(), len(p.Path), summaries[i].ClosestApproach, deflect, captured)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	if outDir != "" {
		runID, err := export.SaveRun(outDir, cfg.G, cfg.M, cfg.C, cfg.Dt, result)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved run: %s\n", runID)
	}

	if svgFile != "" {
		svg := export.SnapshotToSVG(result.Final, 1000)
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	driver, err := buildDriver(cfg)
	if err != nil {
		return err
	}

	rebuild := func() (*sim.Driver, error) { return buildDriver(cfg) }
	m := viz.NewModel(driver, rebuild, cfg.Ticks, plotLimit)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
