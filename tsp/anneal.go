// Package tsp - annealing controller.
//
// One sweep (Step) is:
//  1. MovesPerSweep proposals at a fixed temperature T; each is priced with
//     the O(1) delta, passed to the acceptance criterion and, if accepted,
//     committed in place.
//  2. The live tour is re-measured from scratch (O(n)).
//  3. A strictly shorter tour replaces the best and resets the plateau
//     counter; otherwise T is multiplied by CoolingRate and the plateau
//     counter grows.
//  4. A plateau of PlateauLimit sweeps moves the run to Converged.
//
// Temperature therefore only decays on stagnating sweeps; each level gets
// many proposals before cooling further.
//
// Concurrency:
//   - A run (Annealer or RunState + Tour) is owned by one caller; sweeps must
//     not overlap. Independent runs may proceed in parallel on their own
//     state and random source.
//
// Complexity:
//   - One sweep: O(MovesPerSweep · L) where L is the mean reversal length
//     (O(n) worst case), plus O(n) for the energy recompute.
package tsp

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tspanneal/geom"
)

// RunState is the mutable scalar state of one annealing run.
type RunState struct {
	Temperature float64
	Plateau     int
	Sweeps      int
	Energy      float64 // length of the live tour after the last sweep
	Best        BestSolution
	State       State
}

// NewRunState prepares the state for a run starting from tour t: the
// temperature is InitialTemperature and the best solution is seeded with a
// copy of t and its length.
func NewRunState(e *EnergyModel, t Tour, opts Options) (*RunState, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := ValidatePermutation(t, e.Len()); err != nil {
		return nil, err
	}
	energy := e.TotalEnergy(t)

	return &RunState{
		Temperature: opts.InitialTemperature,
		Energy:      energy,
		Best:        BestSolution{Tour: t.Clone(), Energy: energy},
		State:       Running,
	}, nil
}

// Step performs one sweep on t, mutating t and run in place.
// rng feeds the move generator; crit decides acceptance.
//
// Returns ErrConverged without doing any work once run is Converged, and
// ErrInvalidConfiguration for out-of-range opts. Missing collaborators or a
// tour whose length differs from e.Len() yield ErrInvalidInput.
func Step(e *EnergyModel, t Tour, run *RunState, rng *rand.Rand, crit Criterion, opts Options) (Status, error) {
	if run == nil {
		return Status{}, fmt.Errorf("%w: nil run state", ErrInvalidInput)
	}
	if run.State == Converged {
		return run.status(0, false), ErrConverged
	}
	if e == nil || rng == nil || crit == nil {
		return run.status(0, false), fmt.Errorf("%w: nil model, random source or criterion", ErrInvalidInput)
	}
	if len(t) != e.Len() {
		return run.status(0, false), fmt.Errorf("%w: tour has %d cities, model has %d", ErrInvalidInput, len(t), e.Len())
	}
	if err := validateOptions(opts); err != nil {
		return run.status(0, false), err
	}

	var (
		moves    = opts.movesPerSweep(e.Len())
		temp     = run.Temperature
		accepted int
		mv       Move
		k        int
	)
	for k = 0; k < moves; k++ {
		mv = ProposeMove(rng, e, t)
		if crit.Accept(temp, mv.Delta) {
			ApplyMove(t, mv.I, mv.J)
			accepted++
		}
	}

	run.Sweeps++
	run.Energy = e.TotalEnergy(t)

	improved := run.Best.offer(t, run.Energy)
	if improved {
		run.Plateau = 0
	} else {
		run.Temperature *= opts.CoolingRate
		run.Plateau++
	}
	if run.Plateau >= opts.PlateauLimit {
		run.State = Converged
	}

	return run.status(accepted, improved), nil
}

func (r *RunState) status(accepted int, improved bool) Status {
	return Status{
		Sweep:       r.Sweeps,
		Temperature: r.Temperature,
		Energy:      r.Energy,
		BestEnergy:  r.Best.Energy,
		Plateau:     r.Plateau,
		Accepted:    accepted,
		Improved:    improved,
		State:       r.State,
	}
}

// Annealer bundles everything a single run owns: the energy model, the live
// tour, the run state, the random source and the acceptance rule.
// It is not safe for concurrent use.
type Annealer struct {
	model *EnergyModel
	tour  Tour
	run   *RunState
	rng   *rand.Rand
	crit  Criterion
	opts  Options
	last  Status
}

// NewAnnealer validates opts and prepares a run over model.
// The starting tour is opts.InitialTour (copied) if set, otherwise the
// identity permutation, shuffled when opts.ShuffleStart is set.
//
// Errors: ErrInvalidConfiguration, ErrInvalidInput.
func NewAnnealer(model *EnergyModel, opts Options) (*Annealer, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil energy model", ErrInvalidInput)
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	rng := resolveRand(opts)

	var tour Tour
	switch {
	case opts.InitialTour != nil:
		tour = opts.InitialTour.Clone()
	case opts.ShuffleStart:
		tour = NewTour(model.Len())
		shuffleInPlace(tour, rng)
	default:
		tour = NewTour(model.Len())
	}

	run, err := NewRunState(model, tour, opts)
	if err != nil {
		return nil, err
	}

	crit := opts.Criterion
	if crit == nil {
		crit = NewMetropolis(rng, opts.FrozenThreshold)
	}

	a := &Annealer{model: model, tour: tour, run: run, rng: rng, crit: crit, opts: opts}
	a.last = run.status(0, false)

	return a, nil
}

// NewEuclidean prepares a run over planar points under Euclidean distance.
// Fewer than two points yields ErrInvalidInput.
func NewEuclidean(ps *geom.PointSet, opts Options) (*Annealer, error) {
	model, err := NewEuclideanModel(ps)
	if err != nil {
		return nil, err
	}

	return NewAnnealer(model, opts)
}

// Step runs one sweep. See the package-level Step.
func (a *Annealer) Step() (Status, error) {
	st, err := Step(a.model, a.tour, a.run, a.rng, a.crit, a.opts)
	if err != nil {
		return st, err
	}
	a.last = st

	return st, nil
}

// Status returns the status after the latest sweep (sweep 0 before any).
func (a *Annealer) Status() Status { return a.last }

// State returns the lifecycle state.
func (a *Annealer) State() State { return a.run.State }

// Tour returns a copy of the live tour.
func (a *Annealer) Tour() Tour { return a.tour.Clone() }

// Best returns a copy of the best solution seen so far.
func (a *Annealer) Best() BestSolution { return a.run.Best.Clone() }

// Model returns the energy model of the run.
func (a *Annealer) Model() *EnergyModel { return a.model }

// Options returns the configuration of the run.
func (a *Annealer) Options() Options { return a.opts }
