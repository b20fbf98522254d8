// SPDX-License-Identifier: MIT
package quadrature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabbou/ScientificComputing/quadrature"
)

func TestNewOnePointRule_PolynomialWeights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		w          func(float64) float64
		a, b       float64
		wantNode   float64
		wantWeight float64
	}{
		{"unit weight is the midpoint rule", func(float64) float64 { return 1 }, -1, 3, 1, 4},
		{"linear weight", func(x float64) float64 { return x }, 0, 1, 2.0 / 3, 0.5},
		{"exp-neg", func(x float64) float64 { return math.Exp(-x) }, 0, 1,
			(1 - 2/math.E) / (1 - 1/math.E), 1 - 1/math.E},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r, err := quadrature.NewOnePointRule(tc.w, tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantNode, r.Node, 1e-12)
			assert.InDelta(t, tc.wantWeight, r.Weight, 1e-12)
			assert.Equal(t, tc.a, r.A)
			assert.Equal(t, tc.b, r.B)
		})
	}
}

func TestOnePointRule_ExactForLinear(t *testing.T) {
	t.Parallel()

	// ∫_0^1 x·(2x+1) dx = 2/3 + 1/2.
	r, err := quadrature.NewOnePointRule(func(x float64) float64 { return x }, 0, 1)
	require.NoError(t, err)
	f, err := quadrature.Integrand1D("linear")
	require.NoError(t, err)
	assert.InDelta(t, 7.0/6, r.Integrate(f), 1e-12)

	// Not exact for quadratics: ∫_0^1 x·x² = 1/4, rule gives 0.5·(2/3)² = 2/9.
	sq, err := quadrature.Integrand1D("square")
	require.NoError(t, err)
	assert.InDelta(t, 2.0/9, r.Integrate(sq), 1e-12)
}

func TestNewOnePointRule_SqrtWeight(t *testing.T) {
	t.Parallel()

	// Analytic: m0 = 2/3, m1 = 2/5 ⇒ ξ = 3/5.
	exact, err := quadrature.NewOnePointRuleFromMoments(2.0/3, 2.0/5)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, exact.Node, 1e-15)

	// Endpoint singularity in the derivative: Gauss–Legendre converges slowly.
	num, err := quadrature.NewOnePointRule(math.Sqrt, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, exact.Node, num.Node, 1e-4)
	assert.InDelta(t, exact.Weight, num.Weight, 1e-4)

	more, err := quadrature.NewOnePointRule(math.Sqrt, 0, 1, quadrature.WithMomentNodes(256))
	require.NoError(t, err)
	assert.LessOrEqual(t, math.Abs(more.Weight-exact.Weight), math.Abs(num.Weight-exact.Weight))
}

func TestNewOnePointRule_Errors(t *testing.T) {
	t.Parallel()

	one := func(float64) float64 { return 1 }

	_, err := quadrature.NewOnePointRule(nil, 0, 1)
	assert.ErrorIs(t, err, quadrature.ErrNilFunc)

	for _, ab := range [][2]float64{{1, 1}, {2, 1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		_, err = quadrature.NewOnePointRule(one, ab[0], ab[1])
		assert.ErrorIs(t, err, quadrature.ErrBadInterval, "interval %v", ab)
	}

	_, err = quadrature.NewOnePointRuleFromMoments(0, 1)
	assert.ErrorIs(t, err, quadrature.ErrZeroMass)

	_, err = quadrature.NewOnePointRuleFromMoments(math.NaN(), 1)
	assert.ErrorIs(t, err, quadrature.ErrNaNInf)

	_, err = quadrature.NewOnePointRule(func(float64) float64 { return math.Inf(1) }, 0, 1)
	assert.ErrorIs(t, err, quadrature.ErrNaNInf)
}

func TestRule_String(t *testing.T) {
	t.Parallel()

	r, err := quadrature.NewOnePointRuleFromMoments(0.5, 0.25)
	require.NoError(t, err)
	assert.Equal(t, "0.5·f(0.5)", r.String())
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { quadrature.WithMomentNodes(0) })
	assert.Panics(t, func() { quadrature.WithTolerance(0) })
	assert.Panics(t, func() { quadrature.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { quadrature.WithMaxDepth(0) })
}

func TestNamedFunctions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"exp-neg", "one", "sqrt", "x"}, quadrature.WeightNames())
	assert.Contains(t, quadrature.Integrand1DNames(), "cube")
	assert.Contains(t, quadrature.Integrand2DNames(), "gaussian-bump")

	w, err := quadrature.Weight("sqrt")
	require.NoError(t, err)
	assert.Equal(t, 3.0, w(9))

	_, err = quadrature.Weight("nope")
	assert.ErrorIs(t, err, quadrature.ErrUnknownFunction)
	_, err = quadrature.Integrand1D("nope")
	assert.ErrorIs(t, err, quadrature.ErrUnknownFunction)
	_, err = quadrature.Integrand2D("nope")
	assert.ErrorIs(t, err, quadrature.ErrUnknownFunction)
}
