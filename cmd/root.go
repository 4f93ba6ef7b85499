package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kernel-sim/kernel-sim/kernel"
	"github.com/kernel-sim/kernel-sim/kernel/script"
	"github.com/kernel-sim/kernel-sim/kernel/trace"
)

var (
	// CLI flags for simulation inputs
	tracePath    string // trace script: one activity per line
	vectorsPath  string // interrupt vector table file
	delaysPath   string // device delay table file
	catalogPath  string // external-file catalog (program,size_mb per line)
	scenarioPath string // YAML scenario bundling all inputs (exclusive with the four above)
	outputPath   string // execution trace output file
	statusPath   string // optional system-status snapshot output file
	logLevel     string // log verbosity level
	contextTicks int64  // context save/restore duration
	loaderPerMB  int64  // loader cost per MB of program size
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "kernel-sim",
	Short: "Discrete-event simulator for an OS kernel's interrupt and syscall path",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the kernel simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		vectors, delays, catalog, layout, scriptPath := loadInputs()

		lines, err := script.ReadScript(scriptPath)
		if err != nil {
			logrus.Fatalf("unable to read trace script: %v", err)
		}

		logrus.Infof("Starting simulation: %d vectors, %d devices, %d catalog entries, %d script lines",
			len(vectors), len(delays), len(catalog), len(lines))

		cfg := kernel.NewConfig(contextTicks, loaderPerMB)
		sim := kernel.NewSimulator(vectors, delays, catalog, layout, cfg)
		sim.Run(script.ParseScript(lines))

		if err := os.WriteFile(outputPath, []byte(sim.Trace.Render()), 0o644); err != nil {
			logrus.Fatalf("unable to write execution trace: %v", err)
		}
		logrus.Infof("Execution trace written to %s", outputPath)

		if statusPath != "" {
			if err := os.WriteFile(statusPath, []byte(sim.Trace.RenderSnapshots()), 0o644); err != nil {
				logrus.Fatalf("unable to write system status: %v", err)
			}
			logrus.Infof("System status written to %s", statusPath)
		}

		summary := trace.Summarize(sim.Trace)
		logrus.Infof("Simulation complete: %d records, %d ticks, %d recoverable errors",
			summary.TotalRecords, summary.EndTime, summary.ErrorCount)
	},
}

// loadInputs resolves the input tables either from a scenario YAML or from
// the four separate files. Any unreadable input is fatal: the process exits
// before simulation state is created, and no partial trace is produced.
func loadInputs() (vectors []string, delays []int64, catalog []kernel.ExternalFile, layout []kernel.Partition, scriptPath string) {
	if scenarioPath != "" {
		sc, err := script.LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("unable to load scenario: %v", err)
		}
		return sc.Vectors, sc.Delays, sc.Catalog(), sc.Layout(), sc.Trace
	}

	vectors, err := script.LoadVectorTable(vectorsPath)
	if err != nil {
		logrus.Fatalf("unable to load vector table: %v", err)
	}
	delays, err = script.LoadDelayTable(delaysPath)
	if err != nil {
		logrus.Fatalf("unable to load delay table: %v", err)
	}
	catalog, err = script.LoadCatalog(catalogPath)
	if err != nil {
		logrus.Fatalf("unable to load external-file catalog: %v", err)
	}
	return vectors, delays, catalog, nil, tracePath
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&tracePath, "trace", "trace.txt", "Trace script file")
	runCmd.Flags().StringVar(&vectorsPath, "vectors", "vector_table.txt", "Interrupt vector table file")
	runCmd.Flags().StringVar(&delaysPath, "delays", "device_table.txt", "Device delay table file")
	runCmd.Flags().StringVar(&catalogPath, "external-files", "external_files.txt", "External-file catalog")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario YAML bundling all inputs (overrides the file flags)")
	runCmd.Flags().StringVar(&outputPath, "output", "execution.txt", "Execution trace output file")
	runCmd.Flags().StringVar(&statusPath, "status-output", "", "System status snapshot output file (empty = disabled)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().Int64Var(&contextTicks, "context-save-ticks", kernel.DefaultContextSaveTicks, "Context save/restore duration in ticks")
	runCmd.Flags().Int64Var(&loaderPerMB, "loader-ticks-per-mb", kernel.DefaultLoaderTicksPerMB, "Program load cost per MB in ticks")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
