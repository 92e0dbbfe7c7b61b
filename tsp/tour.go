// Package tsp - tour representation.
//
// A Tour is an open permutation of point indices 0..n-1; the closing edge
// (t[n-1], t[0]) is implicit. Helpers here operate purely on the index
// sequence and never touch distances.
//
// Provided helpers:
//   - NewTour: identity permutation.
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - Clone: independent copy (used for best-tour snapshots).
//   - RotateTo: cyclic shift so a chosen point comes first (reporting).
//   - reverse: in-place inclusive segment reversal (2-opt core).
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time for every helper; in-place mutation where the contract allows.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// Tour is a cyclic visiting order, a permutation of 0..n-1.
type Tour []int

// NewTour returns the identity permutation [0, 1, ..., n-1].
// For n ≤ 0 it returns an empty tour.
//
// Complexity: O(n).
func NewTour(n int) Tour {
	if n <= 0 {
		return Tour{}
	}
	t := make(Tour, n)
	for i := range t {
		t[i] = i
	}

	return t
}

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
// Returns ErrInvalidInput (wrapped with the first violation) otherwise.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: tour length %d, want %d", ErrInvalidInput, len(perm), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: tour[%d]=%d out of range", ErrInvalidInput, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: tour[%d]=%d repeated", ErrInvalidInput, i, v)
		}
		seen[v] = true
	}

	return nil
}

// Len returns the number of points in the tour.
func (t Tour) Len() int { return len(t) }

// Clone returns an independent copy of t. A nil tour stays nil.
//
// Complexity: O(n).
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// RotateTo returns a copy of t shifted so that point start comes first.
// The cycle and its direction are unchanged. If start is absent the copy is
// returned unrotated.
//
// Complexity: O(n).
func (t Tour) RotateTo(start int) Tour {
	var (
		n     = len(t)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if t[i] == start {
			pivot = i
			break
		}
	}
	if pivot <= 0 {
		return t.Clone()
	}

	out := make(Tour, n)
	for i = 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}

	return out
}

// String returns a compact form, e.g. "[0 3 1 2]".
func (t Tour) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')

	return sb.String()
}

// reverse reverses the inclusive segment t[i..k] in place. Empty or
// single-element ranges (i ≥ k) are no-ops.
//
// Contracts:
//   - 0 ≤ i, k < len(t).
//
// Complexity: O(k-i) time, O(1) space.
func (t Tour) reverse(i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}
