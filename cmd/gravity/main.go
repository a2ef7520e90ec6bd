package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/config"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/export"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/metrics"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/render"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/sim"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/storage"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/viz"
)

var (
	dataDir     string
	particles   int
	seed        int64
	g           float64
	softening   float64
	radiusScale float64
	dt          float64
	duration    float64
	configFile  string
	preset      string
	svgOut      string
	svgSize     int
)

// main registers the CLI commands. With no subcommand the windowed
// simulation opens directly, matching the original demo behavior.
func main() {
	rootCmd := &cobra.Command{
		Use:   "gravity",
		Short: "2D gravity and elastic collision particle simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return render.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravity", "data directory")
	addSimFlags(rootCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the windowed GPU simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return render.Run(cfg)
		},
	}
	addSimFlags(guiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and record it",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation with live terminal visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunLive(cfg)
		},
	}
	addSimFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot recorded particle trajectories",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export recorded frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a recorded run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export recorded trajectories to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "trajectories.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 600, "image size in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s (%d particles)\n", p, config.Presets[p].Particles)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, runCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "number of particles")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&g, "g", 1.0, "gravitational constant")
	cmd.Flags().Float64Var(&softening, "softening", 0.01, "force softening constant")
	cmd.Flags().Float64Var(&radiusScale, "radius-scale", 0.02, "collision radius per unit mass")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep for headless/terminal runs")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "headless run duration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig merges preset, config file, and CLI flags; flags set
// explicitly on the command line win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
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

	if cmd.Flags().Changed("particles") {
		cfg.Particles = particles
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("g") {
		cfg.G = g
	}
	if cmd.Flags().Changed("softening") {
		cfg.Softening = softening
	}
	if cmd.Flags().Changed("radius-scale") {
		cfg.RadiusScale = radiusScale
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ps, err := engine.Spawn(cfg.SpawnOptions())
	if err != nil {
		return err
	}

	params := cfg.PhysicsParams()
	s := sim.New(ps, params)
	s.AddMetric(metrics.NewEnergy(params))
	s.AddMetric(metrics.NewEnergyDrift(params))
	s.AddMetric(metrics.NewMomentumDrift())

	fmt.Printf("running %d-particle simulation...\n", cfg.Particles)
	start := time.Now()

	result, err := s.Run(context.Background(), sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(result.Frames))
	for _, simErr := range result.Errors {
		fmt.Printf("warning: %v\n", simErr)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPARTICLES\tDURATION\tDT\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Particles,
			run.Duration,
			run.Dt,
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, _, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("particles: %d\n", meta.Particles)
	fmt.Printf("frames: %d\n\n", len(frames))

	maxPlots := 3
	plots := meta.Particles
	if plots > maxPlots {
		plots = maxPlots
	}

	for p := 0; p < plots; p++ {
		base := p * storage.FrameColumns
		for axis, name := range []string{"x", "y"} {
			data := make([]float64, len(frames))
			for i := range frames {
				if base+axis < len(frames[i]) {
					data[i] = frames[i][base+axis]
				}
			}

			graph := asciigraph.Plot(data,
				asciigraph.Height(8),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("particle %d %s vs time", p, name)),
			)
			fmt.Println(graph)
			fmt.Println()
		}
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := 0; i < meta.Particles; i++ {
		header = append(header,
			fmt.Sprintf("x%d", i),
			fmt.Sprintf("y%d", i),
			fmt.Sprintf("vx%d", i),
			fmt.Sprintf("vy%d", i),
			fmt.Sprintf("m%d", i),
		)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range frames {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range frames[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, frames, times)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	frames, _, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	svg := export.TrajectoriesToSVG(frames, svgSize, svgSize)
	if svg == "" {
		return fmt.Errorf("not enough data to render trajectories")
	}

	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", svgOut)
	return nil
}
