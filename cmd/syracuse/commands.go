package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/syracuse/relations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "at N",
		Short: "Print the term of index N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index %q: %w", args[0], err)
			}
			seq, err := a.build()
			if err != nil {
				return err
			}
			v, err := seq.At(n)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "u_%d = %d\n", n, v)

			return a.finish()
		},
	}
}

func newUntilCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "until [TARGET]",
		Short: "Walk the sequence until TARGET and print cycle length and max term",
		Long: `Walks u_0, u_1, … until a term equals TARGET (default: the config target).

The walk does not end on its own if TARGET is never produced: use --max-steps
or --timeout for relations that are not known to converge.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := a.cfg.Target
			if len(args) == 1 {
				t, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("target %q: %w", args[0], err)
				}
				target = t
			}
			seq, err := a.build()
			if err != nil {
				return err
			}
			ctx, cancel := a.runContext(cmd.Context())
			defer cancel()

			res, err := seq.DoUntilContext(ctx, target, nil)
			if err != nil {
				return err
			}
			a.logger.Debug("walk finished", zap.Stringer("terms", seq.Terms()), zap.Int64("target", target))
			fmt.Fprintf(a.out, "%v cycle=%d max=%d\n", seq.Terms(), res.CycleLength, res.MaxTerm)

			return a.finish()
		},
	}
}

func newBatchCmd(a *app) *cobra.Command {
	var step int64
	cmd := &cobra.Command{
		Use:   "batch [N] [TARGET]",
		Short: "Run N walks concurrently from the initial terms shifted by --step",
		Long: `Runs the cycle walk over N seeds: the initial terms, then the initial terms
with --step added to every component, and so on. Results print in seed order.
N is at most 255; N and TARGET default to batch.size and target from the config.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := a.cfg.Batch.Size
			target := a.cfg.Target
			if len(args) >= 1 {
				n, err := strconv.ParseUint(args[0], 10, 8)
				if err != nil {
					return fmt.Errorf("batch size %q: %w", args[0], err)
				}
				size = int(n)
			}
			if len(args) == 2 {
				t, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("target %q: %w", args[1], err)
				}
				target = t
			}
			if !cmd.Flags().Changed("step") {
				step = a.cfg.Batch.Step
			}

			seq, err := a.build()
			if err != nil {
				return err
			}
			ctx, cancel := a.runContext(cmd.Context())
			defer cancel()

			m, err := seq.LoadNUntilContext(ctx, uint8(size), target, step)
			if err != nil {
				return err
			}
			for terms, res := range m.All() {
				fmt.Fprintf(a.out, "%v cycle=%d max=%d\n", terms, res.CycleLength, res.MaxTerm)
			}

			return a.finish()
		},
	}
	cmd.Flags().Int64Var(&step, "step", 0, "increment added to every initial term between seeds (0 = 1)")

	return cmd
}

func newRelationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "relations",
		Short: "List the built-in relations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range relations.Builtins() {
				fmt.Fprintf(a.out, "%-11s k=%d  %s\n", s.Name, s.Arity, s.Description)
			}
			fmt.Fprintf(a.out, "%-11s k=len(c)  linear:c0,c1,… sums c_j times the previous terms, oldest first\n", "linear")

			return nil
		},
	}
}
