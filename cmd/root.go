package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/report"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	logLevel    string   // Log verbosity level
	configPath  string   // Optional policy bundle YAML
	policyNames []string // Subset of policies to run
	quantum     int64    // RR quantum override (ticks)
	idleAllowed int64    // EDUI idle threshold override (ticks)
	horizon     int64    // FP/EDCD horizon override (ticks)
	showSummary bool     // Print per-task summary tables
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Tick-driven uniprocessor scheduling simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runOptions is the resolved configuration of a run command.
type runOptions struct {
	bundle   *sim.PolicyBundle // from --config, may be nil
	flags    sim.PolicyBundle  // flag overrides; only changed flags are set
	policies []string
	summary  bool
}

// params layers batch header, bundle and flags, in that order of precedence.
func (o runOptions) params(b *sim.Batch) sim.PolicyParams {
	return o.flags.Apply(o.bundle.Apply(b.Params()))
}

// runCmd simulates every applicable policy over each input batch
var runCmd = &cobra.Command{
	Use:          "run FILE...",
	Short:        "Simulate the applicable scheduling policies over batch files",
	Long:         "Simulate the applicable scheduling policies over batch files. Paths may start with ~ and may contain one wildcard segment. Missing files are reported and skipped.",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions{summary: showSummary}
		if configPath != "" {
			bundle, err := sim.LoadPolicyBundle(configPath)
			if err != nil {
				return err
			}
			if err := bundle.Validate(); err != nil {
				return fmt.Errorf("policy config %s: %w", configPath, err)
			}
			opts.bundle = bundle
			opts.policies = bundle.Policies
		}
		// Flags override the bundle only when the user actually set them.
		if cmd.Flags().Changed("policies") {
			opts.policies = policyNames
		}
		if cmd.Flags().Changed("quantum") {
			opts.flags.Quantum = &quantum
		}
		if cmd.Flags().Changed("idle-allowed") {
			opts.flags.IdleAllowed = &idleAllowed
		}
		if cmd.Flags().Changed("horizon") {
			opts.flags.Horizon = &horizon
		}
		if err := opts.flags.Validate(); err != nil {
			return err
		}
		if err := sim.ValidatePolicyNames(opts.policies); err != nil {
			return err
		}
		return runFiles(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
	},
}

// runFiles resolves args and runs every batch. Unreadable inputs are reported
// to errOut and skipped; the returned error counts them.
func runFiles(out, errOut io.Writer, args []string, opts runOptions) error {
	paths, errs := ResolvePaths(args)
	for _, err := range errs {
		fmt.Fprintf(errOut, "schedsim: %v\n", err)
	}
	failed := len(errs)

	for _, path := range paths {
		batch, err := workload.LoadBatch(path)
		if err != nil {
			fmt.Fprintf(errOut, "schedsim: %v\n", err)
			failed++
			continue
		}
		params := opts.params(batch)
		logrus.Infof("Loaded %s batch %s: %d tasks, params %+v", batch.Kind, path, len(batch.Tasks), params)
		results, err := sim.RunBatch(batch, params, opts.policies)
		if err != nil {
			fmt.Fprintf(errOut, "schedsim: %s: %v\n", path, err)
			failed++
			continue
		}
		for _, r := range results {
			if err := report.WriteSchedule(out, r); err != nil {
				return err
			}
			if opts.summary {
				report.WriteSummary(out, sim.ComputeMetrics(r))
			}
			fmt.Fprintln(out)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d input(s) could not be processed", failed)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&configPath, "config", "", "Policy bundle YAML (policies, rr_quantum, idle_allowed, horizon)")
	runCmd.Flags().StringSliceVar(&policyNames, "policies", nil, "Comma-separated subset of policies to run (default: all applicable)")
	runCmd.Flags().Int64Var(&quantum, "quantum", 1, "RR quantum in ticks (overrides the batch header)")
	runCmd.Flags().Int64Var(&idleAllowed, "idle-allowed", sim.DefaultIdleAllowed, "EDUI idle ticks tolerated before forced dispatch")
	runCmd.Flags().Int64Var(&horizon, "horizon", sim.DefaultHorizon, "Last tick simulated by FP and EDCD (overrides the batch header)")
	runCmd.Flags().BoolVar(&showSummary, "summary", false, "Print a per-task summary table after each schedule")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(policiesCmd)
}
