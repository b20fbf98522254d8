// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Rule is a weighted one-point Gauss rule on [A, B]:
//
//	∫_A^B w(x) f(x) dx ≈ Weight · f(Node)
//
// The rule is exact for every polynomial f of degree ≤ 1.
type Rule struct {
	A, B   float64
	Node   float64 // first moment / zeroth moment
	Weight float64 // zeroth moment ∫ w
}

// NewOnePointRule derives the one-point rule for weight w on [a, b].
//
// Implementation:
//   - Stage 1: validate w and the interval.
//   - Stage 2: m0 = ∫ w, m1 = ∫ x·w with an n-point Gauss–Legendre rule
//     (WithMomentNodes, default 64).
//   - Stage 3: delegate to NewOnePointRuleFromMoments.
//
// Weights with endpoint singularities (e.g. 1/sqrt(x)) converge slowly under
// Gauss–Legendre; pass analytic moments to NewOnePointRuleFromMoments instead.
//
// Errors: ErrNilFunc, ErrBadInterval, ErrZeroMass, ErrNaNInf.
// Complexity: 2n weight evaluations.
func NewOnePointRule(w func(float64) float64, a, b float64, opts ...Option) (Rule, error) {
	if w == nil {
		return Rule{}, ErrNilFunc
	}
	if err := validateInterval(a, b); err != nil {
		return Rule{}, err
	}
	o := gatherOptions(opts...)

	m0 := quad.Fixed(w, a, b, o.momentNodes, quad.Legendre{}, 0)
	m1 := quad.Fixed(func(x float64) float64 { return x * w(x) }, a, b, o.momentNodes, quad.Legendre{}, 0)

	r, err := NewOnePointRuleFromMoments(m0, m1)
	if err != nil {
		return Rule{}, err
	}
	r.A, r.B = a, b

	return r, nil
}

// NewOnePointRuleFromMoments builds the rule from known moments
// m0 = ∫ w and m1 = ∫ x·w. A and B are left zero.
//
// Errors: ErrNaNInf (non-finite moment), ErrZeroMass (m0 == 0).
func NewOnePointRuleFromMoments(m0, m1 float64) (Rule, error) {
	if !isFinite(m0) || !isFinite(m1) {
		return Rule{}, fmt.Errorf("moments (%g, %g): %w", m0, m1, ErrNaNInf)
	}
	if m0 == 0 {
		return Rule{}, ErrZeroMass
	}

	return Rule{Node: m1 / m0, Weight: m0}, nil
}

// Integrate applies the rule to f.
func (r Rule) Integrate(f func(float64) float64) float64 {
	return r.Weight * f(r.Node)
}

// String reports the rule as "W·f(ξ)".
func (r Rule) String() string {
	return fmt.Sprintf("%.12g·f(%.12g)", r.Weight, r.Node)
}

func validateInterval(a, b float64) error {
	if !isFinite(a) || !isFinite(b) || a >= b {
		return fmt.Errorf("[%g, %g]: %w", a, b, ErrBadInterval)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
