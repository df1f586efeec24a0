package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/qsim/internal/analysis"
	"github.com/san-kum/qsim/internal/config"
	"github.com/san-kum/qsim/internal/demos"
	"github.com/san-kum/qsim/internal/export"
	"github.com/san-kum/qsim/internal/qasm"
	"github.com/san-kum/qsim/internal/sim"
	"github.com/san-kum/qsim/internal/storage"
	"github.com/san-kum/qsim/internal/tui"
	"github.com/san-kum/qsim/internal/viz"
)

var (
	dataDir    string
	verbose    bool
	shots      int
	seed       int64
	workers    int
	configFile string
	preset     string
	save       bool
	outFile    string
	// converge parameters
	targetKey string
	batches   int
	batchSize int

	log zerolog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qsim",
		Short: "shot-based quantum circuit simulation lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [demo]",
		Short: "run a demo circuit and print its histogram",
		Args:  cobra.ExactArgs(1),
		RunE:  runDemo,
	}
	runCmd.Flags().IntVar(&shots, "shots", config.DefaultShots, "number of shots")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all CPUs)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&save, "save", false, "persist the run under the data directory")

	demosCmd := &cobra.Command{
		Use:   "demos",
		Short: "list available demo circuits",
		RunE:  listDemos,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [demo]",
		Short: "list available presets for a demo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for demo: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				cfg := config.GetPreset(args[0], p)
				fmt.Printf("  %-10s %d shots\n", p, cfg.Shots)
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [demo]",
		Short: "print a demo's circuit diagram",
		Args:  cobra.ExactArgs(1),
		RunE:  showDemo,
	}

	exportQASMCmd := &cobra.Command{
		Use:   "export-qasm [demo]",
		Short: "write a demo circuit as OpenQASM 3.0",
		Args:  cobra.ExactArgs(1),
		RunE:  exportQASM,
	}
	exportQASMCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's histogram",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "summary statistics for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a stored run's histogram to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "histogram.svg", "output file")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run's counts to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			if err := st.ExportJSON(args[0], outFile); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", outFile)
			return nil
		},
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "counts.json", "output file")

	convergeCmd := &cobra.Command{
		Use:   "converge [demo]",
		Short: "plot how an outcome's frequency settles as shots accumulate",
		Args:  cobra.ExactArgs(1),
		RunE:  convergeDemo,
	}
	convergeCmd.Flags().StringVar(&targetKey, "key", "0", "bitstring to track")
	convergeCmd.Flags().IntVar(&batches, "batches", 40, "number of batches")
	convergeCmd.Flags().IntVar(&batchSize, "batch-size", 64, "shots per batch")
	convergeCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	convergeCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers")

	liveCmd := &cobra.Command{
		Use:   "live [demo]",
		Short: "run with a live-updating histogram view",
		Args:  cobra.ExactArgs(1),
		RunE:  liveDemo,
	}
	liveCmd.Flags().IntVar(&shots, "shots", config.DefaultShots, "number of shots")
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	liveCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers")

	rootCmd.AddCommand(runCmd, demosCmd, presetsCmd, showCmd, exportQASMCmd,
		listCmd, plotCmd, analyzeCmd, exportSVGCmd, exportJSONCmd, convergeCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func pickSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func runDemo(cmd *cobra.Command, args []string) error {
	demo := args[0]

	if preset != "" {
		cfg := config.GetPreset(demo, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(demo))
		}
		if !cmd.Flags().Changed("shots") {
			shots = cfg.Shots
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if !cmd.Flags().Changed("shots") {
			shots = cfg.Shots
		}
		if !cmd.Flags().Changed("workers") {
			workers = cfg.Workers
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}

	registry := demos.NewRegistry()
	circ, err := registry.Get(demo)
	if err != nil {
		return err
	}

	runSeed := pickSeed()
	log.Debug().Str("demo", demo).Int("shots", shots).Int64("seed", runSeed).
		Int("workers", workers).Msg("starting run")

	start := time.Now()
	hist, err := sim.NewRunner(workers).Run(context.Background(), circ, shots, runSeed)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("%s: %d shots in %v (seed %d)\n\n", demo, shots, elapsed.Round(time.Microsecond), runSeed)
	fmt.Print(viz.Histogram(hist))

	summary := analysis.Summarize(hist, circ.NumClbits())
	fmt.Printf("\noutcomes: %d  entropy: %.3f bits\n", summary.Outcomes, summary.EntropyBits)

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunMetadata{
			Demo:      demo,
			Timestamp: time.Now(),
			Shots:     shots,
			Seed:      runSeed,
			Workers:   workers,
			Elapsed:   elapsed,
		}, hist)
		if err != nil {
			return err
		}
		log.Info().Str("run_id", runID).Msg("run saved")
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

func listDemos(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tQUBITS\tCLBITS\tDESCRIPTION")
	for _, d := range demos.NewRegistry().List() {
		c, err := d.Build()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", d.Name, c.NumQubits(), c.NumClbits(), d.Description)
	}
	return w.Flush()
}

func showDemo(cmd *cobra.Command, args []string) error {
	circ, err := demos.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s (%d qubits, %d classical bits)\n\n", args[0], circ.NumQubits(), circ.NumClbits())
	fmt.Print(circ.Diagram())
	return nil
}

func exportQASM(cmd *cobra.Command, args []string) error {
	circ, err := demos.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}
	src, err := qasm.Encode(circ)
	if err != nil {
		return err
	}
	if outFile == "" {
		fmt.Print(src)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(src), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tDEMO\tSHOTS\tSEED\tOUTCOMES\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			r.ID, r.Demo, r.Shots, r.Seed, r.Outcomes, r.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	hist, err := st.LoadCounts(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d shots (seed %d)\n\n", meta.Demo, meta.Shots, meta.Seed)
	fmt.Print(viz.Histogram(hist))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	hist, err := st.LoadCounts(args[0])
	if err != nil {
		return err
	}

	clbits := 0
	for key := range hist {
		if len(key) > clbits {
			clbits = len(key)
		}
	}
	summary := analysis.Summarize(hist, clbits)

	fmt.Printf("%s: %d shots\n", meta.Demo, summary.Shots)
	fmt.Printf("  outcomes: %d\n", summary.Outcomes)
	fmt.Printf("  entropy:  %.4f bits\n", summary.EntropyBits)
	for bit := range summary.BitFrequency {
		fmt.Printf("  c%d: P(1)=%.4f sigma=%.4f\n", bit, summary.BitFrequency[bit], summary.BitStdDev[bit])
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	hist, err := st.LoadCounts(args[0])
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s - %d shots", meta.Demo, meta.Shots)
	if err := os.WriteFile(outFile, []byte(export.HistogramSVG(hist, title)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func convergeDemo(cmd *cobra.Command, args []string) error {
	circ, err := demos.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}
	if batches < 2 || batchSize < 1 {
		return fmt.Errorf("need at least 2 batches of at least 1 shot")
	}

	runSeed := pickSeed()
	runner := sim.NewRunner(workers)
	parts := make([]sim.Histogram, 0, batches)
	for i := 0; i < batches; i++ {
		h, err := runner.Run(context.Background(), circ, batchSize, runSeed+int64(i*batchSize))
		if err != nil {
			return err
		}
		parts = append(parts, h)
	}

	series := analysis.RunningFrequency(parts, targetKey)
	caption := fmt.Sprintf("frequency of %q over %d shots (seed %d)",
		targetKey, batches*batchSize, runSeed)
	fmt.Println(viz.Convergence(series, caption))
	fmt.Printf("final frequency: %.4f\n", series[len(series)-1])
	return nil
}

func liveDemo(cmd *cobra.Command, args []string) error {
	demo := args[0]
	circ, err := demos.NewRegistry().Get(demo)
	if err != nil {
		return err
	}
	return tui.Run(demo, circ, sim.NewRunner(workers), shots, pickSeed())
}
