// SPDX-License-Identifier: MIT

package matrix

// SolveStats records the arithmetic performed by one SolveTridiagonal call.
// Attach it with WithStats; counts are reset at the start of each solve.
//
// One forward-elimination step performs exactly one division (the factor),
// one multiply-subtract on the diagonal and one multiply-subtract on the
// right-hand side, so EliminationOps() == 3*(n-1) for any successful solve.
type SolveStats struct {
	N               int // system size
	Divisions       int // factor = lower[i-1] / diagonal[i-1]
	DiagonalUpdates int // diagonal[i] -= factor * upper[i-1]
	RHSUpdates      int // r[i] -= factor * r[i-1]
	BackDivisions   int // x[i] = (...) / diagonal[i]
	BackUpdates     int // r[i] - upper[i]*x[i+1]
}

// EliminationOps returns the number of forward-elimination operations.
func (s *SolveStats) EliminationOps() int {
	return s.Divisions + s.DiagonalUpdates + s.RHSUpdates
}

// BackSubstitutionOps returns the number of back-substitution operations.
func (s *SolveStats) BackSubstitutionOps() int {
	return s.BackDivisions + s.BackUpdates
}

// reset zeroes every counter and records n.
func (s *SolveStats) reset(n int) {
	*s = SolveStats{N: n}
}
