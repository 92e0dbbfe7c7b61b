package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspanneal/tsp"
)

// solveParams holds the flags of the solve command.
type solveParams struct {
	source    sourceFlags
	config    string
	seed      int64
	maxSweeps int
	shuffle   bool
	every     int
	restarts  int
	output    string
	plot      string
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	p := solveParams{every: defaultEvery, restarts: 1}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Anneal a point set and report the shortest tour found",
		Long: `Anneal a point set and report the shortest tour found.

Points come from a YAML/JSON file (--points) or are generated (--random,
--circle). Annealing parameters start from built-in defaults, are overridden
by the [anneal] table of a TOML file (--config) and finally by flags.

With --restarts R the run is repeated R times from shuffled starts with
seeds derived from --seed; the best of all restarts is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := p.options(cmd)
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), p, opts)
		},
	}

	p.source.bind(cmd, true)
	cmd.Flags().StringVarP(&p.config, "config", "c", "", "TOML file with an [anneal] table")
	cmd.Flags().Int64Var(&p.seed, "seed", 0, "random seed (0 selects the fixed default)")
	cmd.Flags().IntVar(&p.maxSweeps, "max-sweeps", 0, "stop after this many sweeps (0: until converged)")
	cmd.Flags().BoolVar(&p.shuffle, "shuffle", false, "start from a shuffled tour instead of the identity")
	cmd.Flags().IntVar(&p.every, "every", p.every, "log progress every N sweeps (0: only on convergence)")
	cmd.Flags().IntVar(&p.restarts, "restarts", p.restarts, "number of independent runs")
	cmd.Flags().StringVarP(&p.output, "output", "o", "", "write the result as YAML")
	cmd.Flags().StringVar(&p.plot, "plot", "", "render the best tour (and <name>.trace.<ext>) to an image")

	return cmd
}

// options layers defaults, the config file and explicitly set flags.
func (p solveParams) options(cmd *cobra.Command) (tsp.Options, error) {
	opts := tsp.DefaultOptions()
	if p.config != "" {
		if err := loadConfig(p.config, &opts); err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		opts.Seed = p.seed
	}
	if flags.Changed("max-sweeps") {
		opts.MaxSweeps = p.maxSweeps
	}
	if flags.Changed("shuffle") {
		opts.ShuffleStart = p.shuffle
	}

	if p.restarts < 1 {
		return opts, fmt.Errorf("--restarts must be at least 1, got %d", p.restarts)
	}
	if p.every < 0 {
		return opts, fmt.Errorf("--every must not be negative, got %d", p.every)
	}
	return opts, nil
}

// runSolve loads the points, runs every restart and reports the best one.
// An interrupt stops the current restart between sweeps; the best tour so
// far is still reported before the context error is returned.
func (c *CLI) runSolve(ctx context.Context, w io.Writer, p solveParams, opts tsp.Options) error {
	logger := loggerFromContext(ctx)

	ps, desc, err := p.source.load(opts.Seed)
	if err != nil {
		return err
	}
	logger.Info("Loaded points", "source", desc, "n", ps.Len())

	model, err := tsp.NewEuclideanModel(ps)
	if err != nil {
		return fmt.Errorf("build energy model: %w", err)
	}

	var (
		prog      = newProgress(logger)
		best      outcome
		found     bool
		runErr    error
		restart   int
		observers []tsp.Observer
	)
	for restart = 0; restart < p.restarts; restart++ {
		runOpts := opts
		if restart > 0 {
			runOpts.Seed = tsp.DeriveSeed(opts.Seed, uint64(restart))
			runOpts.ShuffleStart = true
		}

		a, err := tsp.NewAnnealer(model, runOpts)
		if err != nil {
			return err
		}

		trace := &traceObserver{}
		observers = append(observers[:0], logObserver{every: p.every, restart: restart})
		if p.plot != "" {
			observers = append(observers, trace)
		}

		sol, err := tsp.Run(ctx, a, observers...)
		if !found || sol.Energy < best.best.Energy {
			best = outcome{restart: restart, seed: runOpts.Seed, best: sol, status: a.Status(), trace: trace}
			found = true
		}
		if err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			runErr = err
			break
		}
	}
	ran := restart
	if runErr != nil {
		ran++
	}
	prog.done("Annealed", "points", ps.Len(), "restarts", ran, "best_restart", best.restart, "seed", best.seed)

	res := newResult(ps, best, p.restarts)
	if runErr != nil {
		printWarning(w, "Interrupted after %d sweeps; reporting the best tour so far", res.Sweeps)
	}
	printSummary(w, res)

	if p.output != "" {
		if err := writeResult(p.output, res); err != nil {
			return err
		}
		printFile(w, p.output)
	}
	if p.plot != "" {
		if err := writeTourPlot(p.plot, ps, best.best.Tour, best.best.Energy); err != nil {
			return err
		}
		printFile(w, p.plot)
		if tp := tracePath(p.plot); len(best.trace.samples) > 0 {
			if err := writeTracePlot(tp, best.trace.samples); err != nil {
				return err
			}
			printFile(w, tp)
		}
	}

	return runErr
}
