// Package tsp finds short closed tours through planar points (Euclidean
// Travelling Salesman Problem) by simulated annealing.
//
// Building blocks, leaf-first:
//
//   - EnergyModel - validated symmetric distance table; EdgeLength,
//     TotalEnergy and the O(1) 2-opt Delta.
//   - Tour - permutation of point indices; the closing edge is implicit.
//   - ProposeMove / ApplyMove - random 2-opt moves priced without
//     materializing the new tour, committed by in-place segment reversal.
//   - Criterion / Metropolis - acceptance rule; below the frozen
//     threshold it degrades to pure descent without random draws.
//   - Step - one sweep: n² proposals at a fixed temperature, then a full
//     energy recompute, best-tour bookkeeping, cooling on stagnation and
//     plateau-based convergence.
//   - Annealer / Run - a run bundled with its random source, and a
//     synchronous driver loop notifying Observers after each sweep.
//
// Sign convention: a Move's Delta is oldLength − newLength, so Delta > 0
// shortens the tour.
//
// Determinism: every random draw comes from one *rand.Rand per run,
// injectable through Options.Rand; Options.Seed == 0 selects a fixed
// default seed.
//
// Example:
//
//	ps, _ := geom.Circle(32, geom.Point{}, 10)
//	a, err := tsp.NewEuclidean(ps, tsp.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	best, err := tsp.Run(ctx, a)
//
// Non-goals: exactness, parallel search, asymmetric distances and very
// large instances (n beyond a few hundred).
package tsp
