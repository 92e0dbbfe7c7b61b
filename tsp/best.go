package tsp

// BestSolution is the best tour seen by a run and its length.
// Tour never aliases the live tour of the run that produced it.
type BestSolution struct {
	Tour   Tour
	Energy float64
}

// Clone returns a deep copy of b.
func (b BestSolution) Clone() BestSolution {
	return BestSolution{Tour: b.Tour.Clone(), Energy: b.Energy}
}

// offer records t as the new best when energy is strictly lower than the
// current best. The tour is copied into storage owned by b, reusing the
// existing buffer when it has the right length.
//
// Complexity: O(n) on improvement, O(1) otherwise.
func (b *BestSolution) offer(t Tour, energy float64) bool {
	if energy >= b.Energy {
		return false
	}
	if len(b.Tour) != len(t) {
		b.Tour = make(Tour, len(t))
	}
	copy(b.Tour, t)
	b.Energy = energy

	return true
}
