package geom

import (
	"math"
	"math/rand"
)

// Uniform returns n points drawn uniformly from [0,width)×[0,height).
// The caller owns rng; pass a seeded generator for reproducible sets.
//
// Complexity: O(n).
func Uniform(rng *rand.Rand, n int, width, height float64) (*PointSet, error) {
	if n <= 0 {
		return nil, ErrNoPoints
	}
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: rng.Float64() * width, Y: rng.Float64() * height}
	}

	return NewPointSet(pts)
}

// Circle returns n points evenly spaced on the circle of the given radius
// around center, in angular order. The identity tour over the result is
// optimal, which makes it a handy sanity instance.
//
// Complexity: O(n).
func Circle(n int, center Point, radius float64) (*PointSet, error) {
	if n <= 0 {
		return nil, ErrNoPoints
	}
	pts := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		a := step * float64(i)
		pts[i] = Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}

	return NewPointSet(pts)
}
