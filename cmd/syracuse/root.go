package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/syracuse/config"
	"github.com/katalvlaran/syracuse/metrics"
	"github.com/katalvlaran/syracuse/sequence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	out io.Writer

	// Flags
	configPath string
	verbose    bool
	relation   string
	terms      []int64
	mode       string
	maxSteps   int
	workers    int
	timeout    time.Duration
	showMetric bool

	// Resolved in PersistentPreRunE
	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
}

func newRootCmd(out io.Writer) *cobra.Command {
	return (&app{out: out}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "syracuse",
		Short: "Evaluate recurrence sequences and their cycle statistics",
		Long: `syracuse evaluates integer sequences defined by recurrence.

The initial terms seed the sequence; every later term is computed from the k
terms before it by the chosen relation (collatz, fibonacci, tribonacci or an
inline linear:c0,c1,… relation).

Examples:
  syracuse until 1 --terms 6                  # cycle=8 max=16
  syracuse at 6 --relation fibonacci --terms 0,10
  syracuse batch 3 1 --terms 6 --step 1`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "syracuse.yaml", "YAML run configuration")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.StringVarP(&a.relation, "relation", "r", "", "relation name or linear:c0,c1,…")
	pf.Int64SliceVarP(&a.terms, "terms", "t", nil, "initial terms, oldest first")
	pf.StringVar(&a.mode, "mode", "", "evaluation mode: rolling or recursive")
	pf.IntVar(&a.maxSteps, "max-steps", 0, "fail a walk after this many steps (0 = unbounded)")
	pf.IntVar(&a.workers, "workers", 0, "goroutines per batch (0 = one per vector)")
	pf.DurationVar(&a.timeout, "timeout", 0, "abort the run after this long (0 = never)")
	pf.BoolVar(&a.showMetric, "metrics", false, "print Prometheus metrics after the run")

	root.AddCommand(
		newAtCmd(a),
		newUntilCmd(a),
		newBatchCmd(a),
		newRelationsCmd(a),
	)

	return root
}

// setup loads the config, lets explicit flags override it and builds the
// logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("relation") {
		cfg.Relation = a.relation
	}
	if flags.Changed("terms") {
		cfg.Terms = a.terms
	}
	if flags.Changed("mode") {
		cfg.Mode = a.mode
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = a.maxSteps
	}
	if flags.Changed("workers") {
		cfg.Batch.Workers = a.workers
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout.String()
	}
	if a.verbose {
		cfg.Logging.Level = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	// Tests inject a logger before Execute.
	if a.logger == nil {
		if a.logger, err = cfg.Logger(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	return nil
}

// build returns the configured Sequence with logging and, when asked,
// metrics attached.
func (a *app) build() (*sequence.Sequence, error) {
	opts := []sequence.Option{sequence.WithLogger(a.logger)}
	if a.showMetric {
		a.registry = prometheus.NewRegistry()
		opts = append(opts, sequence.WithRecorder(metrics.New(a.registry)))
	}

	return a.cfg.Build(opts...)
}

// runContext returns the run context bounded by the configured timeout.
func (a *app) runContext(parent context.Context) (context.Context, context.CancelFunc) {
	if d := a.cfg.GetTimeout(); d > 0 {
		return context.WithTimeout(parent, d)
	}

	return context.WithCancel(parent)
}

// finish prints the metrics exposition when --metrics was given.
func (a *app) finish() error {
	if a.registry == nil {
		return nil
	}
	fmt.Fprintln(a.out)

	return metrics.WriteText(a.out, a.registry)
}
