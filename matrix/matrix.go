// SPDX-License-Identifier: MIT
// Package matrix provides the small dense-matrix layer used to hold pairwise
// distance tables.
//
// What & Why:
//
//	The Matrix interface is a uniform abstraction over a two-dimensional
//	mutable array of float64 values. Distance tables for tour optimization
//	are built once (Dense, NewSymmetric), validated once (ValidateDistance)
//	and then read many times by the energy model, which prefetches them into
//	a flat slice for its hot loops.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Clone() performs a deep copy in O(rows*cols) time.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns sentinel errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix
}
