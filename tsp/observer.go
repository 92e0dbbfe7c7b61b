// Package tsp - driver loop and observers.
//
// The core never renders, persists or schedules. A driver calls Step at its
// own cadence; Run is the ready-made synchronous driver that steps until the
// run converges and hands a Snapshot to each Observer after every sweep.
package tsp

import "context"

// Snapshot is a copy of a run's observable state after one sweep.
// Tour and Best.Tour are owned by the receiver and may be retained.
type Snapshot struct {
	Status Status
	Tour   Tour
	Best   BestSolution
}

// Observer receives a Snapshot after every sweep executed by Run.
// OnStep runs synchronously between sweeps; slow observers slow the run.
type Observer interface {
	OnStep(ctx context.Context, snap Snapshot)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ctx context.Context, snap Snapshot)

// OnStep calls f(ctx, snap).
func (f ObserverFunc) OnStep(ctx context.Context, snap Snapshot) { f(ctx, snap) }

// Snapshot copies the current observable state of a.
func (a *Annealer) Snapshot() Snapshot {
	return Snapshot{Status: a.last, Tour: a.tour.Clone(), Best: a.run.Best.Clone()}
}

// Run steps a until it converges, Options.MaxSweeps sweeps have completed,
// or ctx is done. Cancellation is checked between sweeps only; a sweep is
// never interrupted. On cancellation the best solution so far is returned
// together with ctx.Err().
//
// Calling Run on an already converged annealer returns its best at once.
func Run(ctx context.Context, a *Annealer, observers ...Observer) (BestSolution, error) {
	var (
		maxSweeps = a.opts.MaxSweeps
		err       error
	)
	for a.State() == Running {
		if err = ctx.Err(); err != nil {
			return a.Best(), err
		}
		if maxSweeps > 0 && a.run.Sweeps >= maxSweeps {
			break
		}
		if _, err = a.Step(); err != nil {
			return a.Best(), err
		}
		if len(observers) == 0 {
			continue
		}
		snap := a.Snapshot()
		for _, o := range observers {
			o.OnStep(ctx, snap)
		}
	}

	return a.Best(), nil
}
