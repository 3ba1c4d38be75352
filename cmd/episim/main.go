package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/episim/episim/internal/config"
	"github.com/episim/episim/internal/engine"
	"github.com/episim/episim/internal/export"
	"github.com/episim/episim/internal/scenario"
	"github.com/episim/episim/internal/sir"
	"github.com/episim/episim/internal/store"
	"github.com/episim/episim/internal/tui"
)

var (
	dataDir    string
	logLevel   string
	configFile string
	preset     string

	population float64
	infectious float64
	recovered  float64
	beta       float64
	gamma      float64
	steps      int

	intervene bool
	day       int
	betaAfter float64

	engineOrder []string
	solverCmd   string

	saveRun  bool
	showPlot bool

	svgOut    string
	svgWidth  int
	svgHeight int

	sweepParam  string
	sweepMin    float64
	sweepMax    float64
	sweepPoints int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "episim",
		Short: "sir epidemic simulation lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				logrus.Fatalf("invalid log level %q: %v", logLevel, err)
			}
			logrus.SetLevel(lvl)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive dashboard when no command given
			eng := engine.NewCache(engine.NewSelector(engine.NewNative()))
			return tui.Run(eng, config.DefaultConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".episim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run an epidemic simulation",
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save run to data directory")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot compartment curves")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare intervention against baseline",
		RunE:  compareRuns,
	}
	addParamFlags(compareCmd)
	compareCmd.Flags().BoolVar(&saveRun, "save", false, "save both runs to data directory")
	compareCmd.Flags().BoolVar(&showPlot, "plot", false, "plot infectious curves")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a saved run as an SVG chart",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "chart width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "chart height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	enginesCmd := &cobra.Command{
		Use:   "engines",
		Short: "show simulation engine availability",
		RunE:  showEngines,
	}
	enginesCmd.Flags().StringVar(&solverCmd, "solver", engine.DefaultSolver, "external solver command")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted scenario batch",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&saveRun, "save", false, "save each run to data directory")
	batchCmd.Flags().StringSliceVar(&engineOrder, "engine", []string{"native"}, "engine preference order (native, external)")
	batchCmd.Flags().StringVar(&solverCmd, "solver", engine.DefaultSolver, "external solver command")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one parameter across a range",
		RunE:  runSweep,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "beta", "parameter to sweep (beta, gamma, beta-after, day, infectious, population)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.1, "lowest swept value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0.5, "highest swept value")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 9, "number of swept values")
	sweepCmd.Flags().BoolVar(&showPlot, "plot", false, "plot peak infectious across the sweep")

	dashCmd := &cobra.Command{
		Use:   "dash",
		Short: "interactive dashboard",
		RunE:  runDash,
	}
	addParamFlags(dashCmd)

	rootCmd.AddCommand(runCmd, compareCmd, batchCmd, sweepCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, presetsCmd, enginesCmd, dashCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&population, "population", config.DefaultPopulation, "total population")
	cmd.Flags().Float64Var(&infectious, "infectious", config.DefaultInitialInfectious, "initially infectious")
	cmd.Flags().Float64Var(&recovered, "recovered", config.DefaultInitialRecovered, "initially recovered")
	cmd.Flags().Float64Var(&beta, "beta", config.DefaultTransmissionRate, "transmission rate")
	cmd.Flags().Float64Var(&gamma, "gamma", config.DefaultRecoveryRate, "recovery rate")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultTimesteps, "simulation timesteps")
	cmd.Flags().BoolVar(&intervene, "intervene", false, "apply an intervention")
	cmd.Flags().IntVar(&day, "day", config.DefaultInterventionTime, "intervention day")
	cmd.Flags().Float64Var(&betaAfter, "beta-after", config.DefaultTransmissionAfter, "transmission rate after intervention")
	cmd.Flags().StringSliceVar(&engineOrder, "engine", []string{"native"}, "engine preference order (native, external)")
	cmd.Flags().StringVar(&solverCmd, "solver", engine.DefaultSolver, "external solver command")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	// Load preset if specified
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		population = p.Population
		infectious = p.InitialInfectious
		recovered = p.InitialRecovered
		beta = p.TransmissionRate
		gamma = p.RecoveryRate
		steps = p.Timesteps
		intervene = p.Intervention.Enabled
		if p.Intervention.Enabled {
			day = p.Intervention.Time
			betaAfter = p.Intervention.TransmissionAfter
		}
	}

	// Load config file if specified (overrides preset, CLI flags override config)
	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("population") {
			population = fileCfg.Population
		}
		if !cmd.Flags().Changed("infectious") {
			infectious = fileCfg.InitialInfectious
		}
		if !cmd.Flags().Changed("recovered") {
			recovered = fileCfg.InitialRecovered
		}
		if !cmd.Flags().Changed("beta") {
			beta = fileCfg.TransmissionRate
		}
		if !cmd.Flags().Changed("gamma") {
			gamma = fileCfg.RecoveryRate
		}
		if !cmd.Flags().Changed("steps") {
			steps = fileCfg.Timesteps
		}
		if !cmd.Flags().Changed("intervene") {
			intervene = fileCfg.Intervention.Enabled
		}
		if !cmd.Flags().Changed("day") {
			day = fileCfg.Intervention.Time
		}
		if !cmd.Flags().Changed("beta-after") {
			betaAfter = fileCfg.Intervention.TransmissionAfter
		}
		if !cmd.Flags().Changed("engine") && len(fileCfg.Engine.Order) > 0 {
			engineOrder = fileCfg.Engine.Order
		}
		if !cmd.Flags().Changed("solver") && fileCfg.Engine.Solver != "" {
			solverCmd = fileCfg.Engine.Solver
		}
	}

	cfg := &config.Config{
		Population:        population,
		InitialInfectious: infectious,
		InitialRecovered:  recovered,
		TransmissionRate:  beta,
		RecoveryRate:      gamma,
		Timesteps:         steps,
		Intervention: config.InterventionConfig{
			Enabled:           intervene,
			Time:              day,
			TransmissionAfter: betaAfter,
		},
		Engine: config.EngineConfig{
			Order:  engineOrder,
			Solver: solverCmd,
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func buildEngine(cfg *config.Config) (engine.Engine, error) {
	engines := make([]engine.Engine, 0, len(cfg.Engine.Order))
	for _, name := range cfg.Engine.Order {
		switch name {
		case "native":
			engines = append(engines, engine.NewNative())
		case "external":
			engines = append(engines, engine.NewExternal(cfg.Engine.Solver))
		default:
			return nil, fmt.Errorf("unknown engine: %s (available: native, external)", name)
		}
	}
	return engine.NewCache(engine.NewSelector(engines...)), nil
}

func runParams(cfg *config.Config) store.RunParams {
	return store.RunParams{
		Population:        cfg.Population,
		InitialInfectious: cfg.InitialInfectious,
		InitialRecovered:  cfg.InitialRecovered,
		TransmissionRate:  cfg.TransmissionRate,
		RecoveryRate:      cfg.RecoveryRate,
		Timesteps:         cfg.Timesteps,
		Intervention:      cfg.Intervention.Enabled,
		InterventionTime:  cfg.Intervention.Time,
		TransmissionAfter: cfg.Intervention.TransmissionAfter,
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	logrus.Debugf("engine order: %v", cfg.Engine.Order)

	fmt.Println("running sir simulation...")
	start := time.Now()

	var series sir.TimeSeries
	if cfg.Intervention.Enabled {
		series, err = eng.SimulateIntervention(context.Background(), cfg.InterventionParameters())
	} else {
		series, err = eng.Simulate(context.Background(), cfg.Parameters())
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", len(series))
	if cfg.Intervention.Enabled {
		fmt.Printf("intervention: day %d, beta %.3f -> %.3f\n",
			cfg.Intervention.Time, cfg.TransmissionRate, cfg.Intervention.TransmissionAfter)
	}

	summary := sir.Summarize(series, cfg.Population)
	printSummary(summary, cfg.TransmissionRate, cfg.RecoveryRate)

	if showPlot {
		fmt.Println()
		plotSeries(series)
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save("sir", runParams(cfg), summary, series)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func compareRuns(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !cfg.Intervention.Enabled {
		cfg.Intervention.Enabled = true
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("comparing baseline against intervention at day %d (beta %.3f -> %.3f)\n\n",
		cfg.Intervention.Time, cfg.TransmissionRate, cfg.Intervention.TransmissionAfter)

	ctx := context.Background()
	var wg sync.WaitGroup
	var baseline, intervened sir.TimeSeries
	var baseErr, interErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		baseline, baseErr = eng.Simulate(ctx, cfg.Parameters())
	}()
	go func() {
		defer wg.Done()
		intervened, interErr = eng.SimulateIntervention(ctx, cfg.InterventionParameters())
	}()
	wg.Wait()

	if baseErr != nil {
		return baseErr
	}
	if interErr != nil {
		return interErr
	}

	baseSum := sir.Summarize(baseline, cfg.Population)
	interSum := sir.Summarize(intervened, cfg.Population)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tBASELINE\tINTERVENTION")
	fmt.Fprintf(w, "peak infected\t%.2f\t%.2f\n", baseSum.PeakInfectious, interSum.PeakInfectious)
	fmt.Fprintf(w, "peak day\t%d\t%d\n", baseSum.TimeToPeak, interSum.TimeToPeak)
	fmt.Fprintf(w, "final recovered\t%.2f\t%.2f\n", baseSum.FinalRecovered, interSum.FinalRecovered)
	fmt.Fprintf(w, "attack rate\t%.1f%%\t%.1f%%\n", baseSum.AttackRate*100, interSum.AttackRate*100)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ncases prevented: %.2f (%.1f%% reduction)\n",
		sir.CasesPrevented(baseSum, interSum), sir.PercentReduction(baseSum, interSum))

	if showPlot {
		fmt.Println()
		data := [][]float64{baseline.Infectious(), intervened.Infectious()}
		graph := asciigraph.PlotMany(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green),
			asciigraph.Caption("infectious: baseline (red) vs intervention (green)"),
		)
		fmt.Println(graph)
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		baseID, err := st.Save("baseline", runParams(&config.Config{
			Population:        cfg.Population,
			InitialInfectious: cfg.InitialInfectious,
			InitialRecovered:  cfg.InitialRecovered,
			TransmissionRate:  cfg.TransmissionRate,
			RecoveryRate:      cfg.RecoveryRate,
			Timesteps:         cfg.Timesteps,
		}), baseSum, baseline)
		if err != nil {
			return err
		}
		interID, err := st.Save("intervention", runParams(cfg), interSum, intervened)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun ids: %s, %s\n", baseID, interID)
	}

	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	sc, err := scenario.LoadScenario(args[0])
	if err != nil {
		return err
	}

	eng, err := buildEngine(&config.Config{
		Engine: config.EngineConfig{Order: engineOrder, Solver: solverCmd},
	})
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Println()

	var st *store.Store
	if saveRun {
		st = store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	results, err := scenario.RunScenario(context.Background(), sc, eng, st)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tPEAK\tPEAK DAY\tFINAL R\tATTACK\tRUN ID")
	for _, res := range results {
		runID := res.RunID
		if runID == "" {
			runID = "-"
		}
		fmt.Fprintf(w, "%s\t%.2f\t%d\t%.2f\t%.1f%%\t%s\n",
			res.Label,
			res.Summary.PeakInfectious,
			res.Summary.TimeToPeak,
			res.Summary.FinalRecovered,
			res.Summary.AttackRate*100,
			runID,
		)
	}

	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	sweep := &scenario.ParameterSweep{
		Param:  sweepParam,
		Min:    sweepMin,
		Max:    sweepMax,
		Points: sweepPoints,
		Base:   *cfg,
	}

	fmt.Printf("sweeping %s from %g to %g in %d points\n\n", sweepParam, sweepMin, sweepMax, sweepPoints)

	points, err := scenario.RunSweep(context.Background(), sweep, eng)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tPEAK\tPEAK DAY\tFINAL R\tATTACK")
	for _, p := range points {
		fmt.Fprintf(w, "%.3f\t%.2f\t%d\t%.2f\t%.1f%%\n",
			p.Value,
			p.Summary.PeakInfectious,
			p.Summary.TimeToPeak,
			p.Summary.FinalRecovered,
			p.Summary.AttackRate*100,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if showPlot {
		peaks := make([]float64, len(points))
		for i, p := range points {
			peaks[i] = p.Summary.PeakInfectious
		}
		fmt.Println()
		graph := asciigraph.Plot(peaks,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("peak infectious vs %s", sweepParam)),
		)
		fmt.Println(graph)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tSTEPS\tPEAK\tATTACK")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f\t%.1f%%\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Params.Timesteps,
			run.Summary.PeakInfectious,
			run.Summary.AttackRate*100,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("label: %s\n", meta.Label)
	fmt.Printf("samples: %d\n\n", len(series))

	panels := []struct {
		caption string
		data    []float64
	}{
		{"susceptible", series.Susceptible()},
		{"infectious", series.Infectious()},
		{"recovered", series.Recovered()},
	}

	for _, p := range panels {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	return st.Export(args[0], os.Stdout)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, series)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	markTime := 0
	if meta.Params.Intervention {
		markTime = meta.Params.InterventionTime
	}

	svg := export.ChartSVG(series, svgWidth, svgHeight, markTime)
	if svg == "" {
		return fmt.Errorf("not enough data to chart")
	}

	out := svgOut
	if out == "" {
		out = runID + ".svg"
	}
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPOPULATION\tBETA\tGAMMA\tSTEPS\tINTERVENTION")

	for _, name := range names {
		p := config.GetPreset(name)
		intervention := "-"
		if p.Intervention.Enabled {
			intervention = fmt.Sprintf("day %d, beta %.2f", p.Intervention.Time, p.Intervention.TransmissionAfter)
		}
		fmt.Fprintf(w, "%s\t%.0f\t%.2f\t%.2f\t%d\t%s\n",
			name, p.Population, p.TransmissionRate, p.RecoveryRate, p.Timesteps, intervention)
	}

	return w.Flush()
}

func showEngines(cmd *cobra.Command, args []string) error {
	engines := []struct {
		eng    engine.Engine
		detail string
	}{
		{engine.NewNative(), "in-process solver"},
		{engine.NewExternal(solverCmd), solverCmd},
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDETAIL\tSTATUS")

	for _, e := range engines {
		status := "unavailable"
		if e.eng.Available() {
			status = "ok"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.eng.Name(), e.detail, status)
	}

	return w.Flush()
}

func runDash(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	return tui.Run(eng, cfg)
}

func printSummary(s sir.Summary, beta, gamma float64) {
	fmt.Println("\nsummary:")
	fmt.Printf("  r0: %.2f\n", sir.BasicReproduction(beta, gamma))
	fmt.Printf("  peak infected: %.2f (day %d)\n", s.PeakInfectious, s.TimeToPeak)
	fmt.Printf("  final recovered: %.2f\n", s.FinalRecovered)
	fmt.Printf("  attack rate: %.1f%%\n", s.AttackRate*100)
}

func plotSeries(series sir.TimeSeries) {
	data := [][]float64{series.Susceptible(), series.Infectious(), series.Recovered()}
	graph := asciigraph.PlotMany(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
		asciigraph.Caption("susceptible (blue), infectious (red), recovered (green)"),
	)
	fmt.Println(graph)
}
