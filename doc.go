// Package tspanneal finds short closed tours through planar points with
// simulated annealing over 2-opt moves.
//
// What is in the module?
//
//	A small, single-threaded optimizer with a CLI on top:
//		• geom/   – points, point sets, Euclidean distances, generators and
//		            YAML/JSON point files
//		• matrix/ – dense distance tables and their validators
//		• tsp/    – tours, the energy model, 2-opt proposals, the Metropolis
//		            rule, the cooling schedule and the annealing controller
//		• cmd/tspanneal – the command-line driver
//
// Why annealing?
//
//   - Exact solvers blow up past a few dozen points; annealing scales to
//     hundreds with a single tunable schedule.
//   - Each proposal is priced in O(1) and committed in place, so a sweep of
//     n² proposals stays cheap.
//   - Runs are deterministic under a seed and observable sweep by sweep.
//
// Quick ASCII example:
//
//	    3───2          3   2
//	    │   │    vs.    ╲ ╱
//	    0───1           ╱ ╲
//	                   0   1
//
//	the square tour (length 4) beats the crossed one (length 2+2√2); a single
//	2-opt move turns the second into the first.
//
//	go install github.com/katalvlaran/tspanneal/cmd/tspanneal@latest
package tspanneal
