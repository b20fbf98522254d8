// Package scientificcomputing collects small numerical kernels: compact
// storage and a linear-time solver for tridiagonal systems, and two
// quadrature utilities.
//
// 🚀 What is in the box?
//
//	• Banded storage: three bands instead of n² entries, read-only after construction
//	• Thomas algorithm: O(n) forward elimination + back substitution, no pivoting
//	• One-point Gauss rule: ∫ w·f ≈ W·f(ξ), exact for linear f
//	• Adaptive 2-D midpoint rule: quadrant refinement until coarse ≈ fine
//
// Packages:
//
//	matrix/      — BandedMatrix, SolveTridiagonal, Residual, dense rendering
//	quadrature/  — NewOnePointRule, Integrate2D, named weights and integrands
//	cmd/scicomp/ — CLI over both (cobra + viper, logrus, Prometheus textfile)
//
// Quick example, the 3×3 system [2 -1 0; -1 2 -1; 0 -1 2]·x = [1 0 1]:
//
//	m, _ := matrix.NewBandedMatrix([]float64{2, 2, 2}, []float64{-1, -1}, []float64{-1, -1})
//	x, err := matrix.SolveTridiagonal(m, []float64{1, 0, 1}) // x = [1 1 1]
//
// The solver does not pivot: it is meant for diagonally dominant or
// otherwise well-conditioned systems, and reports a zero pivot with
// matrix.ErrSingularPivot.
//
//	go get github.com/rabbou/ScientificComputing
package scientificcomputing
