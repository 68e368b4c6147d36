// cmd/root.go
package cmd

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/flowsim/flowsim/sim"
)

var (
	diagramPath string
	outPath     string
	configPath  string
	days        int
	hoursPerDay int
	seed        int64
	seedSet     bool
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "flowsim",
	Short: "Discrete-event simulator for entity-flow networks",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build, validate, and run a diagram-described simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		xmlBytes, err := os.ReadFile(diagramPath)
		if err != nil {
			return err
		}

		runDays, runHoursPerDay, runSeed, runSeedSet := days, hoursPerDay, seed, seedSet
		if configPath != "" {
			fileCfg, err := loadFileConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") && fileCfg.Days != 0 {
				runDays = fileCfg.Days
			}
			if !cmd.Flags().Changed("hours-per-day") && fileCfg.HoursPerDay != 0 {
				runHoursPerDay = fileCfg.HoursPerDay
			}
			if !runSeedSet && fileCfg.HasSeed {
				runSeed, runSeedSet = fileCfg.Seed, true
			}
		}

		cfg := sim.NewRunConfig(runDays, runHoursPerDay, runSeed, runSeedSet)
		logrus.Infof("Starting simulation with horizon=%ds, days=%d, hoursPerDay=%d", cfg.Horizon(), cfg.Days, cfg.HoursPerDay)

		report, err := sim.Simulate(xmlBytes, cfg)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}

		if outPath == "" {
			os.Stdout.Write(out)
			os.Stdout.WriteString("\n")
			return nil
		}
		return os.WriteFile(outPath, out, 0o644)
	},
}

// Execute runs the root command; invoked from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&diagramPath, "file", "", "Path to the diagram XML file (required)")
	runCmd.Flags().StringVar(&outPath, "out", "", "Write the statistics report here instead of stdout")
	runCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML file of run defaults (days, hours_per_day, seed); flags override it")
	runCmd.Flags().IntVar(&days, "days", 1, "Number of simulated days")
	runCmd.Flags().IntVar(&hoursPerDay, "hours-per-day", 8, "Simulated hours per day")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed (defaults to a fixed seed when omitted)")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (debug, info, warn, error)")
	_ = runCmd.MarkFlagRequired("file")

	runCmd.PreRun = func(cmd *cobra.Command, args []string) {
		seedSet = cmd.Flags().Changed("seed")
	}

	rootCmd.AddCommand(runCmd)
}
