// Package tsp - 2-opt neighborhood.
//
// For positions i < j, reversing t[i+1..j] removes the edges
// (t[i],t[i+1]) and (t[j],t[j+1]) and inserts (t[i],t[j]) and
// (t[i+1],t[j+1]); every other edge is kept. With j = n-1 the second removed
// edge is the closing edge (t[n-1], t[0]).
//
// Proposals draw i and j independently and uniformly from 0..n-1. Equal or
// adjacent positions are legal: they yield a zero delta and an empty or
// single-element reversal.
package tsp

import "math/rand"

// ProposeMove draws a random 2-opt move and prices it without touching t.
// Exactly two random draws are consumed.
//
// Complexity: O(1).
func ProposeMove(rng *rand.Rand, e *EnergyModel, t Tour) Move {
	var (
		n = e.Len()
		i = rng.Intn(n)
		j = rng.Intn(n)
	)

	return Move{I: i, J: j, Delta: e.Delta(t, i, j)}
}

// ApplyMove commits the 2-opt move (i, j) in place: positions are ordered so
// that i ≤ j, then t[i+1..j] is reversed.
//
// Contracts: 0 ≤ i, j < len(t).
//
// Complexity: O(j-i).
func ApplyMove(t Tour, i, j int) {
	if j < i {
		i, j = j, i
	}
	t.reverse(i+1, j)
}
