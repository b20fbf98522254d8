// SPDX-License-Identifier: MIT
package quadrature_test

import (
	"fmt"

	"github.com/rabbou/ScientificComputing/quadrature"
)

// ExampleNewOnePointRuleFromMoments builds the rule for w(x)=sqrt(x) on [0,1].
func ExampleNewOnePointRuleFromMoments() {
	r, err := quadrature.NewOnePointRuleFromMoments(2.0/3, 2.0/5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("node=%.4f weight=%.4f\n", r.Node, r.Weight)
	fmt.Printf("∫ sqrt(x)·(3x+1) ≈ %.4f\n", r.Integrate(func(x float64) float64 { return 3*x + 1 }))
	// Output:
	// node=0.6000 weight=0.6667
	// ∫ sqrt(x)·(3x+1) ≈ 1.8667
}

// ExampleIntegrate2D integrates x·y over the unit square.
func ExampleIntegrate2D() {
	f, _ := quadrature.Integrand2D("xy")
	res, err := quadrature.Integrate2D(f, quadrature.Rect{X0: 0, X1: 1, Y0: 0, Y1: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("value=%.4f evals=%d cells=%d converged=%v\n",
		res.Value, res.Evaluations, res.Cells, res.Converged)
	// Output:
	// value=0.2500 evals=5 cells=4 converged=true
}
