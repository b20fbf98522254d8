// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabbou/ScientificComputing/matrix"
)

func TestAllClose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		a, b       []float64
		rtol, atol float64
		want       bool
	}{
		{"identical", []float64{1, -2, 3}, []float64{1, -2, 3}, 0, 0, true},
		{"within atol", []float64{1 + 1e-13}, []float64{1}, 0, 1e-12, true},
		{"within rtol", []float64{1000.001}, []float64{1000}, 2e-6, 0, true},
		{"outside both", []float64{1.1}, []float64{1}, 1e-3, 1e-3, false},
		{"negative tolerances normalized", []float64{1.05}, []float64{1}, 0, -0.1, true},
		{"nan never close", []float64{math.NaN()}, []float64{math.NaN()}, 1, 1, false},
		{"empty", []float64{}, []float64{}, 0, 0, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.AllClose(tc.a, tc.b, tc.rtol, tc.atol)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAllClose_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.AllClose(nil, []float64{1}, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilVector)

	_, err = matrix.AllClose([]float64{1}, nil, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilVector)

	_, err = matrix.AllClose([]float64{1, 2}, []float64{1}, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.ErrorContains(t, err, "AllClose")

	_, err = matrix.AllClose([]float64{1}, []float64{1}, math.Inf(1), 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAllClose_SolverRoundTrip(t *testing.T) {
	t.Parallel()

	x, err := matrix.SolveTridiagonal(refMatrix(t), refRHS)
	require.NoError(t, err)
	ok, err := matrix.AllClose(x, refSolution, solveTol, solveTol)
	require.NoError(t, err)
	assert.True(t, ok)
}
