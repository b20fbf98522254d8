// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabbou/ScientificComputing/matrix"
)

func TestNewDense(t *testing.T) {
	t.Parallel()

	for _, rc := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(rc[0], rc[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "[0, 0, 0]\n[0, 0, 0]\n", m.String())
}

func TestDense_AtSetClone(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 2.5))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, -1))
	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v, "clone must not alias")

	_, err = m.RawRowView(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMatVec_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.MatVec(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.MatVec(m, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
