package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gossipsim/experiment"
	"github.com/katalvlaran/gossipsim/logging"
	"github.com/katalvlaran/gossipsim/telemetry"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the sweep described by the configuration",
		Long: `Run the sweep described by --config (or the built-in edge-churn sweep)
and write one CSV file per protocol under the output directory.

An interrupt stops the run after the trial in progress; results written so
far are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return execute(cmd, cfg)
		},
	}
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep <varying|biased|churn|update>",
		Short: "Run one of the classic sweeps",
		Long: `Run one of the classic sweeps. The sweep range, fixed rates and trial
counts are reset to the classic values of the kind; geometry and protocols
still come from --config. Range flags and --trials/--graph-trials override
the preset.

Examples:
  gossipsim sweep varying
  gossipsim sweep varying --fixed --values 3600,3800,4000,4200
  gossipsim sweep churn --start 0 --finish 0.5 --delta 0.05`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := experiment.ParseKind(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, func(c *experiment.Config) {
				experiment.Preset(c, kind)
				applySweepFlags(cmd, &c.Sweep)
			})
			if err != nil {
				return err
			}
			return execute(cmd, cfg)
		},
	}
	cmd.Flags().Float64("start", 0, "First swept value")
	cmd.Flags().Float64("finish", 1, "Last swept value (inclusive)")
	cmd.Flags().Float64("delta", 0.1, "Step between swept values")
	cmd.Flags().Float64Slice("values", nil, "Explicit swept values (overrides the range)")
	cmd.Flags().Bool("fixed", false, "varying only: sweep the number of edges toggled per pass")

	return cmd
}

func applySweepFlags(cmd *cobra.Command, sw *experiment.SweepConfig) {
	flags := cmd.Flags()
	if flags.Changed("start") {
		sw.Start, _ = flags.GetFloat64("start")
	}
	if flags.Changed("finish") {
		sw.Finish, _ = flags.GetFloat64("finish")
	}
	if flags.Changed("delta") {
		sw.Delta, _ = flags.GetFloat64("delta")
	}
	if flags.Changed("values") {
		sw.Values, _ = flags.GetFloat64Slice("values")
	}
	if flags.Changed("fixed") {
		sw.FixedCount, _ = flags.GetBool("fixed")
	}
}

// execute runs cfg with CSV output, logging and metrics wired from cfg.
func execute(cmd *cobra.Command, cfg *experiment.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	defer logger.Sync() //nolint:errcheck

	var sink experiment.Sink = &experiment.MemorySink{}
	if cfg.Output.Dir != "" {
		csvSink, err := experiment.NewCSVSink(cfg.Output.Dir)
		if err != nil {
			return fmt.Errorf("failed to open output directory: %w", err)
		}
		sink = csvSink
	}
	metrics := telemetry.NewRegistry()
	runner, err := experiment.NewRunner(cfg,
		experiment.WithLogger(logger),
		experiment.WithMetrics(metrics),
		experiment.WithSink(sink),
		experiment.WithVersion(version),
	)
	if err != nil {
		sink.Close()
		return err
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	summary, runErr := runner.Run(ctx)
	if err := sink.Close(); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("failed to close results: %w", err))
	}
	if cfg.Output.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.Output.MetricsFile); err != nil {
			runErr = errors.Join(runErr, err)
		} else {
			logger.Info("metrics written", zap.String("path", cfg.Output.MetricsFile))
		}
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if err := printSummary(cmd.OutOrStdout(), summary, jsonOut); err != nil {
		runErr = errors.Join(runErr, err)
	}

	return runErr
}

func printSummary(w io.Writer, s *experiment.Summary, jsonOut bool) error {
	if s == nil {
		return nil
	}
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Fprintf(w, "run %s: %d trials in %s\n", s.RunID, s.Trials, s.Elapsed.Round(time.Millisecond))
	if len(s.Aggregates) == 0 {
		return nil
	}
	fmt.Fprintf(w, "%-12s %8s %7s %13s %12s %9s\n", "PROTOCOL", "POINT", "TRIALS", "REACHABILITY", "MESSAGES", "HOPS")
	fmt.Fprintln(w, strings.Repeat("-", 66))
	for _, a := range s.Aggregates {
		fmt.Fprintf(w, "%-12s %8g %7d %13.4f %12.1f %9.2f\n",
			a.Protocol, a.Point, a.Trials, a.MeanReachability, a.MeanMessages, a.MeanHops)
	}

	return nil
}
