// Package quadrature implements two small numerical-integration utilities:
//
//   - a weighted one-point Gauss rule, ∫ w(x) f(x) dx ≈ W·f(ξ), exact for
//     linear f, with W = ∫ w and ξ = ∫ x·w / W;
//   - a recursive 2-D adaptive midpoint-rule integrator over rectangles.
//
// Both are independent of the matrix package.
//
// Usage:
//
//	r, err := quadrature.NewOnePointRule(math.Sqrt, 0, 1)
//	approx := r.Integrate(func(x float64) float64 { return x * x })
//
//	res, err := quadrature.Integrate2D(f, quadrature.Rect{X0: 0, X1: 1, Y0: 0, Y1: 1},
//		quadrature.WithTolerance(1e-6), quadrature.WithMaxDepth(10))
package quadrature
