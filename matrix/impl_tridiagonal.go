// SPDX-License-Identifier: MIT

// Package matrix - tridiagonal solver (Thomas algorithm).
//
// Purpose:
//   - Solve C·x = r for a BandedMatrix C in O(n) without pivoting.
//
// Pipeline (single pass, no loops back):
//
//	Start → Validate → ForwardEliminate → BackSubstitute → Done
//	           └──────────────┴──→ Failed
//
// Numerical precondition:
//   - No pivoting is performed. The result is reliable for diagonally dominant
//     or otherwise well-conditioned matrices. The precondition is documented,
//     and enforced only when WithRequireDiagonalDominance is passed.
//
// Ownership:
//   - The caller's matrix and right-hand side are never mutated. Elimination
//     runs on a Copy of the matrix and a copy of r owned by one call.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stage tags used in error messages.
const (
	stageValidate = "validate"
	stageForward  = "forward elimination"
)

// SolveTridiagonal solves C·x = rhs and returns x.
//
// Implementation:
//   - Stage 1 (Validate): nil/length/finite checks, zero pivots on the original
//     diagonal, optional diagonal dominance.
//   - Stage 2 (ForwardEliminate): on owned copies, zero the sub-diagonal and
//     update the diagonal and rhs in lock-step.
//   - Stage 3 (BackSubstitute): solve the upper-bidiagonal system from the last row up.
//
// Inputs:
//   - m: coefficient matrix (n×n tridiagonal).
//   - rhs: right-hand side of length n.
//   - opts: WithPivotTolerance, WithRequireDiagonalDominance, WithStats, WithNoValidateNaNInf.
//
// Returns:
//   - []float64: solution of length n; nil on any error (no partial results).
//
// Errors (wrapped with "TridiagonalSolve"):
//   - ErrNilMatrix, ErrNilVector, ErrDimensionMismatch, ErrNaNInf,
//     ErrSingularPivot (original or elimination-produced pivot),
//     ErrNotDiagonallyDominant (opt-in).
//
// Complexity:
//   - Time O(n), Space O(n) for the working copies.
func SolveTridiagonal(m *BandedMatrix, rhs []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if err := validateSystem(m, rhs, o); err != nil {
		return nil, matrixErrorf(opTridiagonalSolve, fmt.Errorf("%s: %w", stageValidate, err))
	}
	if o.stats != nil {
		o.stats.reset(m.n)
	}

	// Owned elimination state.
	w := m.Copy()
	r := cloneVec(rhs)

	if err := forwardEliminate(w, r, o); err != nil {
		return nil, matrixErrorf(opTridiagonalSolve, fmt.Errorf("%s: %w", stageForward, err))
	}

	return backSubstitute(w, r, o.stats), nil
}

// validateSystem runs the pre-elimination checks in priority order.
func validateSystem(m *BandedMatrix, rhs []float64, o Options) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := ValidateVecLen(rhs, m.n); err != nil {
		return err
	}
	if o.validateNaNInf {
		if err := ValidateFinite(rhs); err != nil {
			return err
		}
	}
	if err := ValidatePivots(m.diagonal, o.pivotTol); err != nil {
		return err
	}
	if o.requireDominance && !m.IsDiagonallyDominant() {
		return ErrNotDiagonallyDominant
	}

	return nil
}

// forwardEliminate reduces w to upper-bidiagonal form in place and applies
// the same row operations to r.
//
// For i = 1 .. n-1:
//
//	factor      = lower[i-1] / diagonal[i-1]
//	diagonal[i] -= factor * upper[i-1]
//	lower[i-1]  = 0
//	r[i]        -= factor * r[i-1]
//
// After step i, rows 0..i are upper triangular within the band.
// Every pivot diagonal[i-1] is re-checked before division because
// elimination changes the diagonal; the last pivot diagonal[n-1] is checked
// after the loop since back substitution divides by it.
//
// Errors: ErrSingularPivot wrapped with the pivot index.
// Complexity: exactly n-1 steps, 3 counted operations each.
func forwardEliminate(w *BandedMatrix, r []float64, o Options) error {
	d, u, l := w.diagonal, w.upper, w.lower
	s := o.stats
	var factor float64
	for i := 1; i < w.n; i++ {
		if isZeroPivot(d[i-1], o.pivotTol) {
			return fmt.Errorf("pivot %d: %w", i-1, ErrSingularPivot)
		}
		factor = l[i-1] / d[i-1]
		d[i] -= factor * u[i-1]
		l[i-1] = 0
		r[i] -= factor * r[i-1]
		if s != nil {
			s.Divisions++
			s.DiagonalUpdates++
			s.RHSUpdates++
		}
	}
	if last := w.n - 1; isZeroPivot(d[last], o.pivotTol) {
		return fmt.Errorf("pivot %d: %w", last, ErrSingularPivot)
	}

	return nil
}

// backSubstitute solves the eliminated system. It assumes w has a zero
// sub-diagonal and nonzero pivots, as established by forwardEliminate.
//
//	x[n-1] = r[n-1] / diagonal[n-1]
//	x[i]   = (r[i] - upper[i]*x[i+1]) / diagonal[i],  i = n-2 .. 0
//
// Complexity: O(n).
func backSubstitute(w *BandedMatrix, r []float64, s *SolveStats) []float64 {
	n := w.n
	d, u := w.diagonal, w.upper
	x := make([]float64, n)
	x[n-1] = r[n-1] / d[n-1]
	if s != nil {
		s.BackDivisions++
	}
	for i := n - 2; i >= 0; i-- {
		x[i] = (r[i] - u[i]*x[i+1]) / d[i]
		if s != nil {
			s.BackUpdates++
			s.BackDivisions++
		}
	}

	return x
}

// Residual returns the infinity norm of C·x - r, a cheap a-posteriori check
// of a computed solution.
//
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch (wrapped with "Residual").
// Complexity: O(n).
func Residual(m *BandedMatrix, x, r []float64) (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opResidual, ErrNilMatrix)
	}
	if err := ValidateVecLen(r, m.n); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	cx, err := m.Multiply(x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	floats.Sub(cx, r)

	return floats.Norm(cx, math.Inf(1)), nil
}
