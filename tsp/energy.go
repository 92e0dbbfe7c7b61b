// Package tsp - energy (tour-length) model.
//
// The EnergyModel owns a validated, symmetric distance table prefetched into
// a dense 1D buffer w[u*n+v], removing interface indirection and error
// returns from the hot loops of a sweep.
//
// Design:
//   - Validation happens once, in the constructor; lookups never fail.
//   - Positions are taken modulo n (negative ones too), so edge queries wrap
//     at the tour boundary.
//   - TotalEnergy is O(n) and runs once per sweep; Delta is O(1) and runs
//     once per proposal.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspanneal/geom"
	"github.com/katalvlaran/tspanneal/matrix"
)

// symTol is the structural tolerance for the diagonal/symmetry checks of
// distance tables.
const symTol = 1e-12

// EnergyModel measures tours over a fixed symmetric distance table.
// It is immutable after construction and safe to share between runs.
type EnergyModel struct {
	n int
	w []float64 // w[u*n+v] = distance(u,v)
}

// NewEnergyModel validates dist as a symmetric distance table (square,
// n ≥ 2, zero diagonal, finite, non-negative) and prefetches it.
// Any violation is reported as ErrInvalidInput wrapping the matrix sentinel.
//
// Complexity: O(n²) time and memory.
func NewEnergyModel(dist matrix.Matrix) (*EnergyModel, error) {
	if err := matrix.ValidateDistance(dist, symTol); err != nil {
		return nil, fmt.Errorf("%w: distance table: %w", ErrInvalidInput, err)
	}
	n := dist.Rows()
	if err := validateSize(n); err != nil {
		return nil, err
	}

	w := make([]float64, n*n)

	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = dist.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: distance table: %w", ErrInvalidInput, err)
			}
			w[i*n+j] = x
		}
	}

	return &EnergyModel{n: n, w: w}, nil
}

// NewEuclideanModel builds the model for planar points under Euclidean
// distance.
//
// Complexity: O(n²).
func NewEuclideanModel(ps *geom.PointSet) (*EnergyModel, error) {
	if ps == nil {
		return nil, fmt.Errorf("%w: nil point set", ErrInvalidInput)
	}
	if err := validateSize(ps.Len()); err != nil {
		return nil, err
	}
	dist, err := geom.DistanceMatrix(ps)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return NewEnergyModel(dist)
}

// Len returns the number of points n.
func (e *EnergyModel) Len() int { return e.n }

// Distance returns the distance between points u and v.
func (e *EnergyModel) Distance(u, v int) float64 { return e.w[u*e.n+v] }

// wrap maps any position onto 0..n-1.
func (e *EnergyModel) wrap(i int) int {
	i %= e.n
	if i < 0 {
		i += e.n
	}

	return i
}

// EdgeLength returns the distance between the points at tour positions
// i mod n and j mod n.
//
// Contracts: len(t) == e.Len().
//
// Complexity: O(1).
func (e *EnergyModel) EdgeLength(t Tour, i, j int) float64 {
	return e.w[t[e.wrap(i)]*e.n+t[e.wrap(j)]]
}

// TotalEnergy returns the closed-tour length Σ EdgeLength(i, i+1).
//
// Complexity: O(n).
func (e *EnergyModel) TotalEnergy(t Tour) float64 {
	var (
		sum float64
		i   int
		n   = e.n
	)
	for i = 0; i < n-1; i++ {
		sum += e.w[t[i]*n+t[i+1]]
	}
	sum += e.w[t[n-1]*n+t[0]] // closing edge

	return sum
}

// Delta returns the length change of the 2-opt move (i, j) as
// old - new:
//
//	EdgeLength(i,i+1) + EdgeLength(j,j+1) - EdgeLength(i,j) - EdgeLength(i+1,j+1)
//
// so Delta > 0 means ApplyMove(t, i, j) shortens the tour. The expression is
// symmetric in (i, j). For i ≡ j (mod n) the move is empty and Delta is 0.
//
// Complexity: O(1).
func (e *EnergyModel) Delta(t Tour, i, j int) float64 {
	i, j = e.wrap(i), e.wrap(j)
	if i == j {
		return 0
	}

	return e.EdgeLength(t, i, i+1) + e.EdgeLength(t, j, j+1) -
		e.EdgeLength(t, i, j) - e.EdgeLength(t, i+1, j+1)
}
