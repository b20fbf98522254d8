// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with their operation tag via
// matrixErrorf ("<Op>: %w"); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> NaN/Inf -> singular pivot
// -> optional preconditions (diagonal dominance).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (a banded matrix needs n >= 1).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths between operands:
	// band lengths at construction, or a vector whose length differs from n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (construction, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilVector indicates that a nil vector was passed where data is required.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrSingularPivot is returned when a pivot is zero (within the configured
	// pivot tolerance) in the pivot-free elimination. It is raised both for a
	// zero on the original diagonal and for one produced during elimination.
	ErrSingularPivot = errors.New("matrix: singular pivot")

	// ErrNotDiagonallyDominant is returned only when the caller opted into the
	// diagonal-dominance precondition and the matrix does not satisfy it.
	ErrNotDiagonallyDominant = errors.New("matrix: not diagonally dominant")
)

// ErrSingular historically named the zero-pivot condition.
// Keep it as an alias so errors.Is(err, ErrSingular) remains true.
var ErrSingular = ErrSingularPivot // Deprecated: use ErrSingularPivot.
