// Package tsp - validation helpers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinels from types.go,
//     wrapped with the offending field so messages stay actionable.
package tsp

import (
	"fmt"
	"math"
)

// validateOptions checks the scalar knobs of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if math.IsNaN(opts.InitialTemperature) || math.IsInf(opts.InitialTemperature, 0) ||
		opts.InitialTemperature <= 0 {
		return fmt.Errorf("%w: initial temperature %v must be finite and > 0",
			ErrInvalidConfiguration, opts.InitialTemperature)
	}
	// The negated form also rejects NaN.
	if !(opts.CoolingRate > 0 && opts.CoolingRate < 1) {
		return fmt.Errorf("%w: cooling rate %v not in (0,1)", ErrInvalidConfiguration, opts.CoolingRate)
	}
	if opts.PlateauLimit < 1 {
		return fmt.Errorf("%w: plateau limit %d < 1", ErrInvalidConfiguration, opts.PlateauLimit)
	}
	if opts.MovesPerSweep < 0 {
		return fmt.Errorf("%w: moves per sweep %d < 0", ErrInvalidConfiguration, opts.MovesPerSweep)
	}
	if !(opts.FrozenThreshold >= 0) {
		return fmt.Errorf("%w: frozen threshold %v < 0", ErrInvalidConfiguration, opts.FrozenThreshold)
	}
	if opts.MaxSweeps < 0 {
		return fmt.Errorf("%w: max sweeps %d < 0", ErrInvalidConfiguration, opts.MaxSweeps)
	}

	return nil
}

// validateSize enforces the n ≥ 2 requirement of a closed tour.
//
// Complexity: O(1).
func validateSize(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidInput, n)
	}

	return nil
}
