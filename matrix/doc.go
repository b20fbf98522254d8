// Package matrix provides compact banded storage and a linear-time solver
// for tridiagonal systems.
//
// The matrix package provides:
//
//   - BandedMatrix: an n×n tridiagonal matrix stored as three bands
//     (diagonal, upper, lower) with O(n) Multiply and a deep Copy.
//   - SolveTridiagonal: pivot-free Gaussian elimination specialized to a
//     band of width one (the Thomas algorithm), O(n) time.
//   - Dense: a row-major matrix used to materialize and Render a band.
//   - MatVec: y = A·x over any Reader, with band and dense fast paths.
//   - Residual and AllClose: a-posteriori checks of a computed solution.
//
// Errors are package-level sentinels (ErrDimensionMismatch,
// ErrSingularPivot, ...) matched with errors.Is.
//
// Example:
//
//	C, err := matrix.NewBandedMatrix(
//		[]float64{4, 4, 4}, // diagonal
//		[]float64{1, 1},    // upper
//		[]float64{1, 1},    // lower
//	)
//	x, err := matrix.SolveTridiagonal(C, []float64{5, 6, 5})
//	// x ≈ [1, 1, 1]
//
// Stability: no pivoting is performed. Diagonally dominant systems are
// always safe; pass WithRequireDiagonalDominance to enforce that, or
// WithPivotTolerance to reject near-zero pivots.
package matrix
