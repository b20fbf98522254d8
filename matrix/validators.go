// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/pivot checks here.
//  - Return sentinel errors wrapped only with the validator tag so call sites
//    can add their operation tag uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Scans run left to right and stop at the first violation.
//
// Note:
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Reader interface value.
// Returns ErrNilMatrix if m == nil (including a typed nil *BandedMatrix).
// Complexity: O(1).
func ValidateNotNil(m Reader) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if b, ok := m.(*BandedMatrix); ok && b == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and its length matches n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateBandLengths checks the tridiagonal shape invariant
// len(upper) == len(lower) == len(diagonal)-1 with len(diagonal) >= 1.
//
// Errors: ErrInvalidDimensions (empty diagonal), ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBandLengths(diagonal, upper, lower []float64) error {
	n := len(diagonal)
	if n == 0 {
		return validatorErrorf("ValidateBandLengths", ErrInvalidDimensions)
	}
	if len(upper) != n-1 {
		return validatorErrorf("ValidateBandLengths: upper",
			fmt.Errorf("len %d, want %d: %w", len(upper), n-1, ErrDimensionMismatch))
	}
	if len(lower) != n-1 {
		return validatorErrorf("ValidateBandLengths: lower",
			fmt.Errorf("len %d, want %d: %w", len(lower), n-1, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries, reporting the first offending index.
// Complexity: O(len(xs)).
func ValidateFinite(xs []float64) error {
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}

// ValidatePivots checks that no entry of diagonal is zero within tol
// (|d| <= tol). This is the pre-elimination singularity check: it does not
// guarantee that elimination will not produce a zero pivot later.
//
// Errors: ErrSingularPivot wrapped with the first offending index.
// Complexity: O(n).
func ValidatePivots(diagonal []float64, tol float64) error {
	for i, d := range diagonal {
		if isZeroPivot(d, tol) {
			return validatorErrorf("ValidatePivots", fmt.Errorf("pivot %d: %w", i, ErrSingularPivot))
		}
	}

	return nil
}

// isZeroPivot reports whether |p| <= tol. For tol == 0 this is p == 0.
func isZeroPivot(p, tol float64) bool {
	return math.Abs(p) <= tol
}
