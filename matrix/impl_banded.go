// SPDX-License-Identifier: MIT

// Package matrix - BandedMatrix: compact tridiagonal storage.
//
// Purpose:
//   - Store an n×n tridiagonal matrix as its three nonzero bands only.
//   - Enforce the band-length invariant at construction (no runtime asserts later).
//   - Provide O(n) matrix-vector multiplication and a deep Copy for callers
//     (the solver) that need to mutate bands destructively.
//
// Layout:
//
//	| d0  u0                  |
//	| l0  d1  u1              |
//	|     l1  d2  u2          |
//	|         ..  ..  ..      |
//	|             l(n-2) d(n-1)|
//
//	diagonal[i] at (i, i), upper[i] at (i, i+1), lower[i] at (i+1, i).
//
// Complexity quicksheet:
//   - NewBandedMatrix: O(n); Multiply: O(n); Copy: O(n); At: O(1); ToDense: O(n²).

package matrix

import (
	"fmt"
	"math"
)

// BandedMatrix is an immutable-shape n×n tridiagonal matrix.
// After construction its bands are never written; the only way to obtain
// mutable bands is Copy (used internally by the solver).
type BandedMatrix struct {
	n        int
	diagonal []float64 // len n
	upper    []float64 // len n-1
	lower    []float64 // len n-1
}

// Compile-time assertions.
var (
	_ Reader       = (*BandedMatrix)(nil)
	_ fmt.Stringer = (*BandedMatrix)(nil)
)

// NewBandedMatrix builds a tridiagonal matrix from its three bands.
//
// Implementation:
//   - Stage 1: ValidateBandLengths (n ≥ 1, len(upper) == len(lower) == n-1).
//   - Stage 2: optional finite-value policy over all three bands.
//   - Stage 3: copy the bands so the matrix owns its storage.
//
// Inputs:
//   - diagonal: main diagonal, length n.
//   - upper: superdiagonal, length n-1 (empty/nil for n=1).
//   - lower: subdiagonal, length n-1 (empty/nil for n=1).
//   - opts: numeric policy (WithNoValidateNaNInf); solve options are ignored here.
//
// Errors:
//   - ErrInvalidDimensions (n == 0), ErrDimensionMismatch (band lengths),
//     ErrNaNInf (non-finite entry under the default policy).
//
// Complexity:
//   - Time O(n), Space O(n).
func NewBandedMatrix(diagonal, upper, lower []float64, opts ...Option) (*BandedMatrix, error) {
	if err := ValidateBandLengths(diagonal, upper, lower); err != nil {
		return nil, matrixErrorf(opNewBanded, err)
	}

	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for _, band := range [...][]float64{diagonal, upper, lower} {
			if err := ValidateFinite(band); err != nil {
				return nil, matrixErrorf(opNewBanded, err)
			}
		}
	}

	return &BandedMatrix{
		n:        len(diagonal),
		diagonal: cloneVec(diagonal),
		upper:    cloneVec(upper),
		lower:    cloneVec(lower),
	}, nil
}

// N returns the matrix order n.
func (m *BandedMatrix) N() int { return m.n }

// Rows returns n. Complexity: O(1).
func (m *BandedMatrix) Rows() int { return m.n }

// Cols returns n. Complexity: O(1).
func (m *BandedMatrix) Cols() int { return m.n }

// Diagonal returns a copy of the main diagonal.
func (m *BandedMatrix) Diagonal() []float64 { return cloneVec(m.diagonal) }

// Upper returns a copy of the superdiagonal.
func (m *BandedMatrix) Upper() []float64 { return cloneVec(m.upper) }

// Lower returns a copy of the subdiagonal.
func (m *BandedMatrix) Lower() []float64 { return cloneVec(m.lower) }

// At returns the logical entry (i, j); off-band entries are 0.
// Returns ErrOutOfRange outside the n×n square.
// Complexity: O(1).
func (m *BandedMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("BandedMatrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	switch j - i {
	case 0:
		return m.diagonal[i], nil
	case 1:
		return m.upper[i], nil
	case -1:
		return m.lower[j], nil
	}

	return 0, nil
}

// Multiply computes y = C·x in O(n) touching only the three bands.
// Row i is lower[i-1]*x[i-1] + diagonal[i]*x[i] + upper[i]*x[i+1];
// terms falling outside the matrix are omitted.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch (len(x) != n), wrapped with the op tag.
//
// Complexity:
//   - Time O(n), Space O(n) for the result. The receiver is not modified.
func (m *BandedMatrix) Multiply(x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMultiply, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.n); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return m.multiply(x), nil
}

// multiply is the unchecked band kernel; len(x) == m.n is assumed.
func (m *BandedMatrix) multiply(x []float64) []float64 {
	y := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		acc := m.diagonal[i] * x[i]
		if i > 0 {
			acc += m.lower[i-1] * x[i-1]
		}
		if i < m.n-1 {
			acc += m.upper[i] * x[i+1]
		}
		y[i] = acc
	}

	return y
}

// Copy returns a deep copy whose bands share no storage with m.
// Complexity: O(n).
func (m *BandedMatrix) Copy() *BandedMatrix {
	return &BandedMatrix{
		n:        m.n,
		diagonal: cloneVec(m.diagonal),
		upper:    cloneVec(m.upper),
		lower:    cloneVec(m.lower),
	}
}

// ToDense materializes the logical n×n matrix with zeros off-band.
// The dense copy is independent of m. NaN policy is disabled on the result
// so matrices built with WithNoValidateNaNInf can still be rendered.
//
// Complexity:
//   - Time O(n²) (zero fill), Space O(n²).
func (m *BandedMatrix) ToDense() (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToDense, ErrNilMatrix)
	}
	d, err := NewDense(m.n, m.n)
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	d.validateNaNInf = false
	for i := 0; i < m.n; i++ {
		d.data[i*m.n+i] = m.diagonal[i]
		if i < m.n-1 {
			d.data[i*m.n+i+1] = m.upper[i]
			d.data[(i+1)*m.n+i] = m.lower[i]
		}
	}

	return d, nil
}

// IsDiagonallyDominant reports whether |d_i| >= |l_(i-1)| + |u_i| holds for
// every row and strictly for at least one. Strict dominance in every row
// guarantees the pivot-free elimination never meets a zero pivot.
// Complexity: O(n).
func (m *BandedMatrix) IsDiagonallyDominant() bool {
	strict := false
	for i := 0; i < m.n; i++ {
		off := 0.0
		if i > 0 {
			off += math.Abs(m.lower[i-1])
		}
		if i < m.n-1 {
			off += math.Abs(m.upper[i])
		}
		d := math.Abs(m.diagonal[i])
		if d < off {
			return false
		}
		if d > off {
			strict = true
		}
	}

	return strict
}

// String implements fmt.Stringer via Render.
func (m *BandedMatrix) String() string { return Render(m) }

// cloneVec returns an independent copy of s; nil and empty both yield an empty slice.
func cloneVec(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
