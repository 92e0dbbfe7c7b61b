// Package tsp_test - benchmarks for the annealing hot path.
//
// Policy:
//   - Deterministic instances (seedDet) built outside the timer.
//   - Measure one sweep, one proposal, and a full energy recompute.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tspanneal/geom"
	"github.com/katalvlaran/tspanneal/tsp"
)

func benchPoints(b *testing.B, n int) *geom.PointSet {
	b.Helper()
	ps, err := geom.Uniform(rand.New(rand.NewSource(seedDet)), n, 100, 100)
	if err != nil {
		b.Fatalf("Uniform: %v", err)
	}

	return ps
}

// BenchmarkStep_n200 measures one sweep (n² proposals) on 200 points.
func BenchmarkStep_n200(b *testing.B) {
	ps := benchPoints(b, 200)
	opts := tsp.DefaultOptions()
	opts.Seed = seedDet
	opts.PlateauLimit = 1 << 30

	a, err := tsp.NewEuclidean(ps, opts)
	if err != nil {
		b.Fatalf("NewEuclidean: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err = a.Step(); err != nil {
			b.Fatalf("Step: %v", err)
		}
	}
}

// BenchmarkProposeMove_n200 measures drawing and pricing a single move.
func BenchmarkProposeMove_n200(b *testing.B) {
	ps := benchPoints(b, 200)
	e, err := tsp.NewEuclideanModel(ps)
	if err != nil {
		b.Fatalf("NewEuclideanModel: %v", err)
	}
	tour := tsp.NewTour(200)
	rng := rand.New(rand.NewSource(seedDet))

	var mv tsp.Move
	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		mv = tsp.ProposeMove(rng, e, tour)
	}
	_ = mv
}

// BenchmarkTotalEnergy_n200 measures the O(n) recompute done once per sweep.
func BenchmarkTotalEnergy_n200(b *testing.B) {
	ps := benchPoints(b, 200)
	e, err := tsp.NewEuclideanModel(ps)
	if err != nil {
		b.Fatalf("NewEuclideanModel: %v", err)
	}
	tour := tsp.NewTour(200)

	var sum float64
	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		sum += e.TotalEnergy(tour)
	}
	_ = sum
}
