// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide the canonical validation checks for square and distance tables.
//  - Return sentinel errors tagged with the validator name so call sites can
//    still match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry checks visit the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
//
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil with Rows()==Cols()>0.
//
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() || m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |a_ij - a_ji| <= tol for all i<j.
// Assumes m is square (call ValidateSquare first).
//
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return err
			}
			if aji, err = m.At(j, i); err != nil {
				return err
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistance enforces the shape and value policy of a symmetric
// distance table:
//   - non-nil and square,
//   - every entry finite (ErrNaNInf),
//   - diagonal within tol of 0 (ErrNonZeroDiagonal),
//   - off-diagonal entries non-negative (ErrNegative),
//   - symmetric within tol (ErrAsymmetry).
//
// Checks run in the order above so the reported sentinel is deterministic.
//
// Complexity: O(n²).
func ValidateDistance(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if !isFinite(v) {
				return validatorErrorf("ValidateDistance", ErrNaNInf)
			}
			if i == j {
				if math.Abs(v) > tol {
					return validatorErrorf("ValidateDistance", ErrNonZeroDiagonal)
				}
				continue
			}
			if v < 0 {
				return validatorErrorf("ValidateDistance", ErrNegative)
			}
		}
	}

	return ValidateSymmetric(m, tol)
}
