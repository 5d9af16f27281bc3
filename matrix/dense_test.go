// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 6},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			assert.Equal(t, tc.rows, m.Rows())
			assert.Equal(t, tc.cols, m.Cols())
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Zerof(t, MustAt(t, m, i, j), "element [%d,%d]", i, j)
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		assert.ErrorIsf(t, err, matrix.ErrInvalidDimensions, "dims=%v", dims)
	}
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := m.At(ij[0], ij[1])
		assert.ErrorIsf(t, err, matrix.ErrOutOfRange, "At%v", ij)
		assert.ErrorIsf(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange, "Set%v", ij)
	}

	MustSet(t, m, 1, 2, 7.5)
	assert.Equal(t, 7.5, MustAt(t, m, 1, 2))
}

// TestDense_CloneIndependent verifies that mutating a clone leaves the source intact.
func TestDense_CloneIndependent(t *testing.T) {
	t.Parallel()

	src := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cl := matrix.CloneMatrix(src)
	MustSet(t, cl, 0, 0, 99)

	assert.Equal(t, 1.0, MustAt(t, src, 0, 0))
	assert.Equal(t, 99.0, MustAt(t, cl, 0, 0))
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, MustAt(t, m, 1, 2))
	assert.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())

	_, err := matrix.NewFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRagged)
	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}, {3, 4}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewFromRows([][]float64{{1, 2}, {math.Inf(-1), 4}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	// the numeric policy can be relaxed explicitly
	relaxed, err := matrix.NewFromRows([][]float64{{math.Inf(1)}}, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	assert.True(t, math.IsInf(MustAt(t, relaxed, 0, 0), 1))
}

// TestNewFromRows_CopiesInput ensures later writes to the source rows do not leak in.
func TestNewFromRows_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	m := MustFromRows(t, rows)
	rows[0][0] = 42
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	I := MustIdentity(t, 4)
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.Equal(t, want, MustAt(t, I, i, j))
		}
	}

	_, err := matrix.NewIdentity(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	like, err := matrix.IdentityLike(MustDense(t, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, like.Rows())
	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	z, err := matrix.NewZeros(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, z.Cols())
}
