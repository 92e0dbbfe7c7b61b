// Package tsp_test provides helpers shared across *_test.go files in this
// package.
package tsp_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspanneal/geom"
	"github.com/katalvlaran/tspanneal/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the tolerance for energy identities that only suffer
	// summation-order rounding.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for random instances.
	seedDet = int64(42)
)

// -----------------------------------------------------------------------------
// Random sources
// -----------------------------------------------------------------------------

// countingSource wraps a rand.Source and counts Int63 calls, which is the
// single entry point math/rand uses for Float64 and Intn draws.
type countingSource struct {
	src   rand.Source
	calls int
}

func newCountingSource(seed int64) *countingSource {
	return &countingSource{src: rand.NewSource(seed)}
}

func (c *countingSource) Int63() int64 {
	c.calls++
	return c.src.Int63()
}

func (c *countingSource) Seed(seed int64) { c.src.Seed(seed) }

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// squarePoints is the unit square (0,0),(1,0),(1,1),(0,1); its identity
// tour is optimal with length 4.
func squarePoints(t *testing.T) *geom.PointSet {
	t.Helper()
	ps, err := geom.NewPointSet([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)

	return ps
}

// randomPoints returns n uniform points in [0,100)² from a fixed seed.
func randomPoints(t *testing.T, n int, seed int64) *geom.PointSet {
	t.Helper()
	ps, err := geom.Uniform(rand.New(rand.NewSource(seed)), n, 100, 100)
	require.NoError(t, err)

	return ps
}

// mustModel builds the Euclidean energy model or fails the test.
func mustModel(t *testing.T, ps *geom.PointSet) *tsp.EnergyModel {
	t.Helper()
	e, err := tsp.NewEuclideanModel(ps)
	require.NoError(t, err)

	return e
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requirePermutation asserts that tour is a permutation of 0..n-1.
func requirePermutation(t *testing.T, tour tsp.Tour, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n), "tour %v", tour)
}

// sameCycle reports whether a and b describe the same cycle, allowing any
// rotation and either direction.
func sameCycle(a, b tsp.Tour) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	ra := a.RotateTo(0)
	rb := b.RotateTo(0)
	if slices.Equal(ra, rb) {
		return true
	}
	// Reverse direction, keeping point 0 first.
	rev := make(tsp.Tour, len(rb))
	rev[0] = rb[0]
	for i := 1; i < len(rb); i++ {
		rev[i] = rb[len(rb)-i]
	}

	return slices.Equal(ra, rev)
}

// rejectAll is a criterion that never commits a move.
var rejectAll = tsp.CriterionFunc(func(float64, float64) bool { return false })
