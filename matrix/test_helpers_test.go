// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for banded kernels.
//   - Provide an independent dense oracle (gonum LU solve) for cross-checks.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/rabbou/ScientificComputing/matrix"
)

// Reference system: a 5×5 diagonally dominant band with known solution 1..5.
var (
	refDiagonal = []float64{4.0, 4.1, 4.2, 4.3, 4.4}
	refUpper    = []float64{1.0, 1.01, 1.04, 1.09}
	refLower    = []float64{0.99, 0.96, 0.93, 0.90}
	refSolution = []float64{1, 2, 3, 4, 5}
	// refRHS = C·refSolution, computed by hand.
	refRHS = []float64{6, 12.22, 18.68, 25.44, 25.6}
)

// solveTol is the round-trip tolerance used across solver tests.
const solveTol = 1e-9

// hide wraps any Reader to hide its concrete type from type switches,
// forcing the generic At-based fallback in MatVec.
type hide struct{ matrix.Reader }

// mustBanded builds a BandedMatrix or fails the test.
func mustBanded(t testing.TB, diagonal, upper, lower []float64, opts ...matrix.Option) *matrix.BandedMatrix {
	t.Helper()
	m, err := matrix.NewBandedMatrix(diagonal, upper, lower, opts...)
	require.NoError(t, err)

	return m
}

// refMatrix returns the reference 5×5 system matrix.
func refMatrix(t testing.TB) *matrix.BandedMatrix {
	return mustBanded(t, refDiagonal, refUpper, refLower)
}

// randomDominant builds a strictly diagonally dominant n×n band with a
// deterministic seed: off-band entries in [-1, 1), |d_i| = |l| + |u| + [1, 2).
// The diagonal sign alternates to exercise negative pivots.
func randomDominant(t testing.TB, n int, seed int64) *matrix.BandedMatrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := make([]float64, n)
	u := make([]float64, n-1)
	l := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		u[i] = 2*rng.Float64() - 1
		l[i] = 2*rng.Float64() - 1
	}
	for i := 0; i < n; i++ {
		off := 0.0
		if i > 0 {
			off += math.Abs(l[i-1])
		}
		if i < n-1 {
			off += math.Abs(u[i])
		}
		d[i] = off + 1 + rng.Float64()
		if i%2 == 1 {
			d[i] = -d[i]
		}
	}

	return mustBanded(t, d, u, l)
}

// randomVector returns n deterministic values in [-10, 10).
func randomVector(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = 20*rng.Float64() - 10
	}

	return v
}

// oracleSolve solves the dense form of m with gonum's general LU solver.
func oracleSolve(t testing.TB, m *matrix.BandedMatrix, rhs []float64) []float64 {
	t.Helper()
	n := m.N()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			data[i*n+j] = v
		}
	}
	var x mat.VecDense
	require.NoError(t, x.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, cloneF(rhs))))

	return x.RawVector().Data
}

// cloneF returns a copy of s.
func cloneF(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
