package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inventory-sim/inventory-sim/sim"
	"github.com/inventory-sim/inventory-sim/sim/optimize"
	"github.com/inventory-sim/inventory-sim/sim/trace"
)

var (
	// CLI flags shared across subcommands
	seed         int64   // Master seed for all random streams
	logLevel     string  // Log verbosity level
	scenarioPath string  // Optional scenario YAML path
	horizon      float64 // Simulated duration per replication (months)

	// run flags
	reorderPoint float64
	orderSize    float64
	showTrace    bool

	// experiments flags
	reorderPoints []float64
	orderSizes    []float64
	replications  int

	// optimize flags
	startReorderPoint float64
	startOrderSize    float64
	searchSteps       int
	runsPerEval       int
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "inventory-sim",
	Short: "Discrete-event simulator for periodic-review inventory policies",
}

// setupLogging applies the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// mustScenario loads the scenario file when one is given, otherwise the
// reference parameterization.
func mustScenario() sim.ScenarioSpec {
	if scenarioPath == "" {
		return sim.DefaultScenario()
	}
	spec, err := sim.LoadScenario(scenarioPath)
	if err != nil {
		logrus.Fatalf("unable to load scenario: %v", err)
	}
	return *spec
}

// runCmd executes a single simulation replication.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single simulation replication",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		scenario := mustScenario()

		logrus.Infof("Starting run with horizon=%.1f, reorder point=%.1f, order size=%.1f, seed=%d",
			horizon, reorderPoint, orderSize, seed)

		s := sim.NewSimulation(sim.NewSimulationKey(seed), sim.ReplicationStream(0), scenario,
			sim.Options{RecordTrace: showTrace})
		res, err := s.Run(horizon, reorderPoint, orderSize)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		printResults([]sim.ExperimentResult{res})
		if showTrace {
			printTraceSummary(trace.Summarize(s.Trace(), horizon))
		}
	},
}

// experimentsCmd sweeps the cross product of candidate parameters.
var experimentsCmd = &cobra.Command{
	Use:   "experiments",
	Short: "Sweep the cross product of reorder points and order sizes",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		scenario := mustScenario()

		runner := sim.NewExperimentRunner(sim.NewSimulationKey(seed), scenario, horizon)
		results, err := runner.RunExperiments(horizon, reorderPoints, orderSizes, replications)
		if err != nil {
			logrus.Fatalf("experiments failed: %v", err)
		}
		printResults(results)
	},
}

// optimizeCmd runs the greedy local search over policy parameters.
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search for low-cost policy parameters by greedy local search",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		scenario := mustScenario()

		key := sim.NewSimulationKey(seed)
		runner := sim.NewExperimentRunner(key, scenario, horizon)
		start := optimize.Point{ReorderPoint: startReorderPoint, OrderSize: startOrderSize}
		ls, err := optimize.Run(runner, start, searchSteps, runsPerEval, sim.DeriveSeed(key, sim.StreamSearch))
		if err != nil {
			logrus.Fatalf("optimization failed: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "STEP\tREORDER POINT\tORDER SIZE\tAVG TOTAL COST")
		for i, p := range ls.Path {
			fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%.2f\n", i, p.ReorderPoint, p.OrderSize, ls.Cost[i])
		}
		w.Flush()

		best, cost := ls.Best()
		fmt.Printf("best: reorder point %.2f, order size %.2f, avg total cost %.2f\n",
			best.ReorderPoint, best.OrderSize, cost)
	},
}

// printResults renders one row per replication.
func printResults(results []sim.ExperimentResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "REORDER POINT\tORDER SIZE\tTOTAL\tORDERING\tHOLDING\tSHORTAGE")
	for _, r := range results {
		fmt.Fprintf(w, "%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			r.ReorderPoint, r.OrderSize, r.TotalCost, r.OrderingCost, r.HoldingCost, r.ShortageCost)
	}
	w.Flush()
}

func printTraceSummary(s *trace.TraceSummary) {
	fmt.Println("=== Level Trace Summary ===")
	fmt.Printf("Mutations            : %d\n", s.Mutations)
	fmt.Printf("Min / Max Level      : %.2f / %.2f\n", s.MinLevel, s.MaxLevel)
	fmt.Printf("Time-weighted Mean   : %.2f\n", s.TimeWeightedMean)
	fmt.Printf("Backlogged Share     : %.2f%%\n", 100*s.BackloggedShare)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, experimentsCmd, optimizeCmd} {
		c.Flags().Int64Var(&seed, "seed", 42, "Master seed for random streams")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario YAML file (defaults to reference parameters)")
		c.Flags().Float64Var(&horizon, "horizon", 120, "Simulated duration per replication (months)")
	}

	runCmd.Flags().Float64Var(&reorderPoint, "reorder-point", 20, "Inventory level that triggers replenishment")
	runCmd.Flags().Float64Var(&orderSize, "order-size", 40, "Base quantity added to the deficit when replenishing")
	runCmd.Flags().BoolVar(&showTrace, "trace", false, "Record the (time, level) history and print its summary")

	experimentsCmd.Flags().Float64SliceVar(&reorderPoints, "reorder-points", []float64{20, 25}, "Comma-separated reorder point candidates")
	experimentsCmd.Flags().Float64SliceVar(&orderSizes, "order-sizes", []float64{30, 40}, "Comma-separated order size candidates")
	experimentsCmd.Flags().IntVar(&replications, "replications", 2, "Replications per candidate pair")

	optimizeCmd.Flags().Float64Var(&startReorderPoint, "start-reorder-point", 50, "Starting reorder point")
	optimizeCmd.Flags().Float64Var(&startOrderSize, "start-order-size", 50, "Starting order size")
	optimizeCmd.Flags().IntVar(&searchSteps, "steps", 50, "Total search steps, including the initial evaluation")
	optimizeCmd.Flags().IntVar(&runsPerEval, "runs", 5, "Replications averaged per candidate evaluation")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(experimentsCmd)
	rootCmd.AddCommand(optimizeCmd)
}
