// Package tsp_test exercises the annealing controller via the public API.
// Focus: run invariants (permutation, monotone best), exact plateau
// termination, small known instances and deterministic seeding.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspanneal/geom"
	"github.com/katalvlaran/tspanneal/tsp"
)

// -----------------------------------------------------------------------------
// 1) Invariants across sweeps
// -----------------------------------------------------------------------------

func TestStep_PermutationInvariantAndMonotoneBest(t *testing.T) {
	const n = 30
	opts := tsp.DefaultOptions()
	opts.Seed = seedDet
	a, err := tsp.NewEuclidean(randomPoints(t, n, seedDet), opts)
	require.NoError(t, err)

	prevBest := a.Best().Energy
	var sweep int
	for sweep = 0; sweep < 40 && a.State() == tsp.Running; sweep++ {
		st, err := a.Step()
		require.NoError(t, err)

		requirePermutation(t, a.Tour(), n)
		best := a.Best()
		requirePermutation(t, best.Tour, n)
		require.LessOrEqual(t, best.Energy, prevBest, "best energy must not increase")
		require.InDelta(t, best.Energy, a.Model().TotalEnergy(best.Tour), epsTiny)
		require.InDelta(t, st.Energy, a.Model().TotalEnergy(a.Tour()), epsTiny)
		require.Equal(t, best.Energy, st.BestEnergy)
		require.Equal(t, sweep+1, st.Sweep)
		prevBest = best.Energy
	}
}

func TestStep_TemperatureNonIncreasingAndCoolsOnlyOnStagnation(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Seed = 11
	a, err := tsp.NewEuclidean(randomPoints(t, 15, 11), opts)
	require.NoError(t, err)

	prevT := opts.InitialTemperature
	for a.State() == tsp.Running {
		st, err := a.Step()
		require.NoError(t, err)
		if st.Improved {
			require.Equal(t, prevT, st.Temperature)
			require.Zero(t, st.Plateau)
		} else {
			require.InDelta(t, prevT*opts.CoolingRate, st.Temperature, 1e-15)
		}
		prevT = st.Temperature
	}
	assert.Equal(t, opts.PlateauLimit, a.Status().Plateau)
}

// -----------------------------------------------------------------------------
// 2) Termination happens exactly at sweep k
// -----------------------------------------------------------------------------

func TestStep_ConvergesExactlyAtPlateauLimit(t *testing.T) {
	const k = 7
	opts := tsp.DefaultOptions()
	opts.PlateauLimit = k
	opts.Criterion = rejectAll
	a, err := tsp.NewEuclidean(randomPoints(t, 10, 1), opts)
	require.NoError(t, err)
	startBest := a.Best()

	var sweep int
	for sweep = 1; sweep < k; sweep++ {
		st, err := a.Step()
		require.NoError(t, err)
		require.Equal(t, tsp.Running, st.State, "sweep %d", sweep)
		require.Equal(t, sweep, st.Plateau)
		require.Zero(t, st.Accepted)
	}

	st, err := a.Step()
	require.NoError(t, err)
	require.Equal(t, tsp.Converged, st.State)
	require.Equal(t, k, st.Sweep)
	require.InDelta(t, opts.InitialTemperature*math.Pow(opts.CoolingRate, k), st.Temperature, 1e-12)
	require.Equal(t, startBest, a.Best())

	// No further sweeps are run.
	again, err := a.Step()
	require.ErrorIs(t, err, tsp.ErrConverged)
	require.Equal(t, k, again.Sweep)
	require.Equal(t, tsp.Converged, a.State())
}

// -----------------------------------------------------------------------------
// 3) Known instances
// -----------------------------------------------------------------------------

func TestAnneal_UnitSquareFromBowtie(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.InitialTour = tsp.Tour{0, 2, 1, 3}
	opts.Seed = seedDet
	a, err := tsp.NewEuclidean(squarePoints(t), opts)
	require.NoError(t, err)
	require.InDelta(t, 2*math.Sqrt2+2, a.Best().Energy, epsTiny)

	var sweeps int
	for sweeps = 0; sweeps < 200 && a.State() == tsp.Running; sweeps++ {
		_, err = a.Step()
		require.NoError(t, err)
	}

	require.Equal(t, tsp.Converged, a.State(), "did not converge within 200 sweeps")
	best := a.Best()
	require.InDelta(t, 4.0, best.Energy, epsTiny)
	require.True(t, sameCycle(best.Tour, tsp.Tour{0, 1, 2, 3}), "best tour %v", best.Tour)
}

func TestAnneal_SinglePointRejected(t *testing.T) {
	ps, err := geom.NewPointSet([]geom.Point{{X: 1, Y: 2}})
	require.NoError(t, err)

	_, err = tsp.NewEuclidean(ps, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidInput)
}

func TestAnneal_TwoPointsNeverImprove(t *testing.T) {
	ps, err := geom.NewPointSet([]geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}})
	require.NoError(t, err)
	opts := tsp.DefaultOptions()
	a, err := tsp.NewEuclidean(ps, opts)
	require.NoError(t, err)
	require.InDelta(t, 10.0, a.Best().Energy, epsTiny)

	for a.State() == tsp.Running {
		st, err := a.Step()
		require.NoError(t, err)
		require.False(t, st.Improved)
		require.InDelta(t, 10.0, st.Energy, epsTiny)
	}
	assert.Equal(t, opts.PlateauLimit, a.Status().Sweep)
	assert.InDelta(t, 10.0, a.Best().Energy, epsTiny)
}

func TestAnneal_CircleReachesPolygon(t *testing.T) {
	const n = 12
	ps, err := geom.Circle(n, geom.Point{}, 10)
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	opts.InitialTemperature = 1
	opts.ShuffleStart = true
	opts.Seed = 5
	a, err := tsp.NewEuclidean(ps, opts)
	require.NoError(t, err)

	for a.State() == tsp.Running {
		_, err = a.Step()
		require.NoError(t, err)
	}

	perimeter := float64(n) * 2 * 10 * math.Sin(math.Pi/n)
	best := a.Best()
	assert.InDelta(t, perimeter, best.Energy, 1e-6)
	assert.True(t, sameCycle(best.Tour, tsp.NewTour(n)), "best tour %v", best.Tour)
}

// -----------------------------------------------------------------------------
// 4) Ownership and configuration plumbing
// -----------------------------------------------------------------------------

func TestAnneal_InitialTourIsCopiedAndValidated(t *testing.T) {
	init := tsp.Tour{3, 1, 0, 2}
	opts := tsp.DefaultOptions()
	opts.InitialTour = init
	a, err := tsp.NewEuclidean(squarePoints(t), opts)
	require.NoError(t, err)

	init[0] = 0
	assert.Equal(t, tsp.Tour{3, 1, 0, 2}, a.Tour())

	opts.InitialTour = tsp.Tour{0, 1, 1, 2}
	_, err = tsp.NewEuclidean(squarePoints(t), opts)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)

	opts.InitialTour = tsp.Tour{0, 1, 2}
	_, err = tsp.NewEuclidean(squarePoints(t), opts)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)
}

func TestAnneal_ShuffleStart(t *testing.T) {
	const n = 20
	opts := tsp.DefaultOptions()
	opts.ShuffleStart = true
	opts.Seed = 3
	a, err := tsp.NewEuclidean(randomPoints(t, n, 3), opts)
	require.NoError(t, err)

	start := a.Tour()
	requirePermutation(t, start, n)
	assert.NotEqual(t, tsp.NewTour(n), start)
	assert.Equal(t, start, a.Best().Tour)
}

func TestAnneal_CopiesNeverAlias(t *testing.T) {
	opts := tsp.DefaultOptions()
	a, err := tsp.NewEuclidean(randomPoints(t, 8, 9), opts)
	require.NoError(t, err)
	_, err = a.Step()
	require.NoError(t, err)

	live := a.Tour()
	live[0], live[1] = live[1], live[0]
	assert.NotEqual(t, live, a.Tour())

	best := a.Best()
	best.Tour[0] = -1
	assert.NotEqual(t, -1, a.Best().Tour[0])
}

func TestStep_PackageLevelOwnsNoAliases(t *testing.T) {
	e := mustModel(t, randomPoints(t, 10, 4))
	opts := tsp.DefaultOptions()
	tour := tsp.NewTour(e.Len())
	run, err := tsp.NewRunState(e, tour, opts)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(4))
	crit := tsp.NewMetropolis(rng, opts.FrozenThreshold)

	for run.State == tsp.Running && run.Sweeps < 30 {
		_, err = tsp.Step(e, tour, run, rng, crit, opts)
		require.NoError(t, err)
		require.NotSame(t, &tour[0], &run.Best.Tour[0])
	}
	requirePermutation(t, tour, e.Len())
}

func TestStep_PackageLevelRejectsBadArguments(t *testing.T) {
	e := mustModel(t, randomPoints(t, 10, 6))
	opts := tsp.DefaultOptions()
	rng := rand.New(rand.NewSource(6))
	crit := tsp.NewMetropolis(rng, opts.FrozenThreshold)

	tests := []struct {
		name string
		tour tsp.Tour
		nilR bool
		crit tsp.Criterion
		rng  *rand.Rand
	}{
		{"short tour", tsp.NewTour(5), false, crit, rng},
		{"long tour", tsp.NewTour(11), false, crit, rng},
		{"nil run state", tsp.NewTour(10), true, crit, rng},
		{"nil criterion", tsp.NewTour(10), false, nil, rng},
		{"nil random source", tsp.NewTour(10), false, crit, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var run *tsp.RunState
			if !tc.nilR {
				var err error
				run, err = tsp.NewRunState(e, tsp.NewTour(10), opts)
				require.NoError(t, err)
			}

			require.NotPanics(t, func() {
				_, err := tsp.Step(e, tc.tour, run, tc.rng, tc.crit, opts)
				require.ErrorIs(t, err, tsp.ErrInvalidInput)
			})
			if run != nil {
				assert.Zero(t, run.Sweeps, "rejected call must not sweep")
			}
		})
	}
}

func TestStep_MovesPerSweep(t *testing.T) {
	const n = 6
	var calls int
	counting := tsp.CriterionFunc(func(float64, float64) bool {
		calls++
		return false
	})

	opts := tsp.DefaultOptions()
	opts.Criterion = counting
	a, err := tsp.NewEuclidean(randomPoints(t, n, 2), opts)
	require.NoError(t, err)
	_, err = a.Step()
	require.NoError(t, err)
	assert.Equal(t, n*n, calls, "default is n² proposals")

	calls = 0
	opts.MovesPerSweep = 5
	a, err = tsp.NewEuclidean(randomPoints(t, n, 2), opts)
	require.NoError(t, err)
	_, err = a.Step()
	require.NoError(t, err)
	assert.Equal(t, 5, calls)
}

func TestStep_AcceptedCountMatchesCriterion(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Criterion = tsp.CriterionFunc(func(float64, float64) bool { return true })
	opts.MovesPerSweep = 17
	a, err := tsp.NewEuclidean(randomPoints(t, 9, 8), opts)
	require.NoError(t, err)

	st, err := a.Step()
	require.NoError(t, err)
	assert.Equal(t, 17, st.Accepted)
	requirePermutation(t, a.Tour(), 9)
}

func TestAnneal_SeededRunsAreDeterministic(t *testing.T) {
	ps := randomPoints(t, 25, 17)
	run := func(opts tsp.Options) (tsp.BestSolution, tsp.Status) {
		a, err := tsp.NewEuclidean(ps, opts)
		require.NoError(t, err)
		var k int
		for k = 0; k < 15; k++ {
			_, err = a.Step()
			require.NoError(t, err)
		}
		return a.Best(), a.Status()
	}

	opts := tsp.DefaultOptions()
	opts.Seed = 99
	b1, s1 := run(opts)
	b2, s2 := run(opts)
	assert.Equal(t, b1, b2)
	assert.Equal(t, s1, s2)

	// An injected generator with the same seed reproduces the seeded run.
	injected := opts
	injected.Rand = rand.New(rand.NewSource(99))
	b3, s3 := run(injected)
	assert.Equal(t, b1, b3)
	assert.Equal(t, s1, s3)

	// Seed 0 selects the fixed default seed.
	zero, one := tsp.DefaultOptions(), tsp.DefaultOptions()
	one.Seed = 1
	bz, _ := run(zero)
	bo, _ := run(one)
	assert.Equal(t, bz, bo)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", tsp.Running.String())
	assert.Equal(t, "converged", tsp.Converged.String())
	assert.Equal(t, "unknown", tsp.State(9).String())
}
