// SPDX-License-Identifier: MIT

package matrix

import "math"

// AllClose reports whether |a[i]-b[i]| ≤ atol + rtol·|b[i]| for every i.
// b is the reference vector; the relation is not symmetric in a and b.
//
// Policy:
//   - Negative tolerances are normalized to their absolute value.
//   - NaN/Inf tolerances return ErrNaNInf.
//   - A NaN element never compares close.
//
// Errors: ErrNilVector, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n), early exit on the first violation.
func AllClose(a, b []float64, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if a == nil {
		return false, matrixErrorf(opAllClose, ErrNilVector)
	}
	if err := ValidateVecLen(b, len(a)); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= atol+rtol*math.Abs(b[i])) {
			return false, nil
		}
	}

	return true, nil
}
