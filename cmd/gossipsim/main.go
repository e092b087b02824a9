package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gossipsim/experiment"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gossipsim",
		Short: "Gossip dissemination simulator for unstable networks",
		Long: `gossipsim measures how far a single message spreads over random geometric
graphs whose links and nodes keep failing and recovering.

It compares Flooding, fixed-fanout gossip (FFG) and gossip over minimum
boundary clusters (GMBC) across a parameter sweep and writes one CSV file
per protocol.

Examples:
  gossipsim run --config sweep.yaml
  gossipsim sweep churn --seed 42 --out result
  gossipsim config > sweep.yaml`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file (defaults when empty)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: console or json")
	rootCmd.PersistentFlags().Int64("seed", 0, "Run seed (0 draws a fresh one)")
	rootCmd.PersistentFlags().Int("trials", 0, "Graphs drawn per sweep point")
	rootCmd.PersistentFlags().Int("graph-trials", 0, "Trials per drawn graph")
	rootCmd.PersistentFlags().String("out", "", "Directory for result CSV files")
	rootCmd.PersistentFlags().String("metrics-out", "", "Write Prometheus metrics to this file when the run ends")
	rootCmd.PersistentFlags().Bool("json", false, "Print the run summary as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSweepCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// loadConfig layers defaults, the --config file, GOSSIPSIM_* variables, the
// given adjustments and explicitly set flags, in that order. The result is
// not validated.
func loadConfig(cmd *cobra.Command, adjust ...func(*experiment.Config)) (*experiment.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := experiment.Load(path)
	if err != nil {
		return nil, err
	}
	for _, fn := range adjust {
		fn(cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("trials") {
		cfg.Trials, _ = flags.GetInt("trials")
	}
	if flags.Changed("graph-trials") {
		cfg.GraphTrials, _ = flags.GetInt("graph-trials")
	}
	if flags.Changed("out") {
		cfg.Output.Dir, _ = flags.GetString("out")
	}
	if flags.Changed("metrics-out") {
		cfg.Output.MetricsFile, _ = flags.GetString("metrics-out")
	}

	return cfg, nil
}

// signalContext returns a context cancelled on the first interrupt.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 1)
	notifySignals(ch)
	go func() {
		defer signal.Stop(ch)
		select {
		case <-ch:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
