package tsp

import "errors"

// Sentinel errors. Match them with errors.Is; call sites may wrap them with
// extra context via fmt.Errorf("%w").
var (
	// ErrInvalidInput is returned when the instance cannot carry a tour:
	// fewer than two points, a malformed distance table, an initial tour
	// that is not a permutation of 0..n-1, or Step arguments that do not
	// fit together.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrInvalidConfiguration is returned when Options are out of range,
	// e.g. CoolingRate outside (0,1) or PlateauLimit < 1.
	ErrInvalidConfiguration = errors.New("tsp: invalid configuration")

	// ErrConverged is returned by Step once the run has reached Converged.
	// No sweep is performed.
	ErrConverged = errors.New("tsp: run has converged")
)

// State is the lifecycle state of an annealing run.
type State int

const (
	// Running accepts further sweeps.
	Running State = iota

	// Converged is terminal: the plateau limit was reached.
	Converged
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	default:
		return "unknown"
	}
}

// Move is a proposed 2-opt move: reverse the tour segment strictly after
// position I up to and including position J (after ordering I<J).
// Delta is oldLength - newLength, so Delta > 0 shortens the tour.
type Move struct {
	I, J  int
	Delta float64
}

// Status summarizes a run after its latest sweep.
type Status struct {
	Sweep       int     // number of completed sweeps
	Temperature float64 // temperature for the next sweep
	Energy      float64 // length of the live tour after the sweep
	BestEnergy  float64 // length of the best tour seen so far
	Plateau     int     // consecutive sweeps without improvement
	Accepted    int     // moves committed during the sweep
	Improved    bool    // whether the sweep set a new best
	State       State
}
