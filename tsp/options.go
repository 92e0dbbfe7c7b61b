// Package tsp - annealing configuration.
//
// Options follows the plain-struct idiom: start from DefaultOptions(), then
// overwrite fields. Zero values are NOT defaults (a zero CoolingRate is
// rejected), so always derive from DefaultOptions.
package tsp

import "math/rand"

// Defaults for Options.
const (
	DefaultInitialTemperature = 10.0
	DefaultCoolingRate        = 0.99
	DefaultPlateauLimit       = 50
	DefaultFrozenThreshold    = 1e-4
)

// Options configures an annealing run.
type Options struct {
	// InitialTemperature is the starting temperature; must be finite and > 0.
	InitialTemperature float64

	// CoolingRate multiplies the temperature after every non-improving sweep.
	// Must lie in (0,1).
	CoolingRate float64

	// PlateauLimit is the number of consecutive non-improving sweeps after
	// which the run converges. Must be ≥ 1.
	PlateauLimit int

	// MovesPerSweep is the number of move proposals per sweep.
	// 0 ⇒ n*n. Must be ≥ 0.
	MovesPerSweep int

	// FrozenThreshold: below this temperature only improving moves are
	// accepted and no random draw is made. Must be ≥ 0.
	FrozenThreshold float64

	// MaxSweeps caps the number of sweeps executed by Run. 0 ⇒ unlimited.
	MaxSweeps int

	// Seed feeds the default random source when Rand is nil.
	// Seed 0 selects a fixed default seed (deterministic by default).
	Seed int64

	// Rand, when non-nil, is used for every random draw of the run.
	// It must not be shared with another concurrently running annealer.
	Rand *rand.Rand

	// Criterion overrides the acceptance rule. nil ⇒ Metropolis using the
	// run's random source and FrozenThreshold.
	Criterion Criterion

	// InitialTour, when non-nil, is the starting permutation (copied).
	// nil ⇒ identity tour, shuffled when ShuffleStart is set.
	InitialTour Tour

	// ShuffleStart shuffles the identity tour with the run's random source.
	// Ignored when InitialTour is set.
	ShuffleStart bool
}

// DefaultOptions returns the standard configuration:
//   - InitialTemperature: 10
//   - CoolingRate:        0.99
//   - PlateauLimit:       50
//   - MovesPerSweep:      0 (n² proposals per sweep)
//   - FrozenThreshold:    1e-4
//   - MaxSweeps:          0 (unlimited)
//   - Seed:               0 (fixed default seed)
func DefaultOptions() Options {
	return Options{
		InitialTemperature: DefaultInitialTemperature,
		CoolingRate:        DefaultCoolingRate,
		PlateauLimit:       DefaultPlateauLimit,
		FrozenThreshold:    DefaultFrozenThreshold,
	}
}

// movesPerSweep resolves the proposal count for an instance of size n.
func (o Options) movesPerSweep(n int) int {
	if o.MovesPerSweep > 0 {
		return o.MovesPerSweep
	}

	return n * n
}
