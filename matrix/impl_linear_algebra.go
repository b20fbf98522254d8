// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Reader implementation.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Declare the operation tags and shared constants used for error reporting.
//   - Provide MatVec, the generic y = A·x kernel with shape-specific fast paths.
//
// Notes:
//   - All kernels use the central validators and return sentinels wrapped via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial sum value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec           = "MatVec"
	opMultiply         = "BandedMatrix.Multiply"
	opNewBanded        = "NewBandedMatrix"
	opToDense          = "BandedMatrix.ToDense"
	opTridiagonalSolve = "TridiagonalSolve"
	opResidual         = "Residual"
	opAllClose         = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = A·x for any Reader.
//
// Implementation:
//   - Stage 1: Validate A (non-nil) and len(x) == A.Cols().
//   - Stage 2: Dispatch on the concrete type:
//     *BandedMatrix → O(n) band kernel; *Dense → flat row-major dot products;
//     otherwise → generic At-based loop in fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrNilVector, ErrDimensionMismatch (wrapped with "MatVec").
//
// Complexity:
//   - Banded O(n); Dense and generic O(r*c).
func MatVec(m Reader, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	switch t := m.(type) {
	case *BandedMatrix:
		return t.multiply(x), nil
	case *Dense:
		y := make([]float64, t.r)
		var i, j, base int
		var acc float64
		for i = 0; i < t.r; i++ {
			acc = ZeroSum
			base = i * t.c
			for j = 0; j < t.c; j++ {
				acc += t.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
