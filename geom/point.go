// Package geom holds the planar inputs of the tour optimizer: immutable
// points, point sets with stable indices, pairwise Euclidean distance and the
// distance table consumed by the energy model.
//
// Design:
//   - A PointSet copies its input on construction and never exposes its
//     backing slice; indices 0..n-1 are the identities used by tours.
//   - Distances are computed with gonum's r2 vector helpers.
//   - No logging, no panics on user input - only sentinel errors.
package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/tspanneal/matrix"
)

var (
	// ErrNoPoints is returned when a point set or supplier is asked for zero points.
	ErrNoPoints = errors.New("geom: no points")

	// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("geom: non-finite coordinate")
)

// Point is an immutable 2-D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec returns p as a gonum r2 vector.
func (p Point) Vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return r2.Norm(r2.Sub(p.Vec(), q.Vec()))
}

// PointSet is an ordered, immutable collection of points.
type PointSet struct {
	pts []Point
}

// NewPointSet copies pts into a new PointSet.
// Returns ErrNoPoints for an empty input and ErrNonFinite (with the offending
// index) when a coordinate is NaN or ±Inf.
//
// Complexity: O(n).
func NewPointSet(pts []Point) (*PointSet, error) {
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}

	var (
		cp = make([]Point, len(pts))
		i  int
	)
	for i = range pts {
		if !finite(pts[i].X) || !finite(pts[i].Y) {
			return nil, fmt.Errorf("point %d: %w", i, ErrNonFinite)
		}
		cp[i] = pts[i]
	}

	return &PointSet{pts: cp}, nil
}

// Len returns the number of points.
func (s *PointSet) Len() int { return len(s.pts) }

// At returns the point with index i. It panics on an out-of-range index,
// like slice indexing.
func (s *PointSet) At(i int) Point { return s.pts[i] }

// Points returns a copy of the points in index order.
func (s *PointSet) Points() []Point {
	out := make([]Point, len(s.pts))
	copy(out, s.pts)

	return out
}

// Distance returns the Euclidean distance between points i and j.
func (s *PointSet) Distance(i, j int) float64 {
	return Distance(s.pts[i], s.pts[j])
}

// Bounds returns the axis-aligned bounding box of the set.
func (s *PointSet) Bounds() (lo, hi Point) {
	lo, hi = s.pts[0], s.pts[0]
	for _, p := range s.pts[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}

	return lo, hi
}

// DistanceMatrix builds the symmetric n×n table of pairwise distances.
//
// Complexity: O(n²) time and memory.
func DistanceMatrix(s *PointSet) (*matrix.Dense, error) {
	if s == nil || len(s.pts) == 0 {
		return nil, ErrNoPoints
	}

	return matrix.NewSymmetric(len(s.pts), s.Distance)
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
