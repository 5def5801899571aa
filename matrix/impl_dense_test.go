// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Matrix construction and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewMatrixInvalidShape ensures NewMatrix rejects non-positive dimensions
// and shapes whose element count overflows int.
func TestNewMatrixInvalidShape(t *testing.T) {
	for _, tc := range []struct{ r, c int }{
		{0, 5}, {5, 0}, {-1, 2}, {0, 0},
		{math.MaxInt, 2}, {2, math.MaxInt}, {math.MaxInt/3 + 1, 3}, {math.MaxInt, math.MaxInt},
	} {
		_, err := matrix.NewMatrix[int](tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidShape, "shape %dx%d", tc.r, tc.c)
	}
}

// TestNewMatrixZeroFill verifies shape and additive-identity fill for several shapes.
func TestNewMatrixZeroFill(t *testing.T) {
	for r := 1; r <= 4; r++ {
		for c := 1; c <= 4; c++ {
			m := MustMatrix[float64](t, r, c)
			MustDims(t, m, r, c)
			for _, v := range m.Elements() {
				require.Zero(t, v)
			}
		}
	}
}

// TestFromRows checks the literal {{1,2,5},{3,4,6}}.
func TestFromRows(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2, 5}, {3, 4, 6}})
	MustDims(t, m, 2, 3)
	require.Equal(t, 6, MustAt(t, m, 1, 2))
	require.Equal(t, []int{1, 2, 5, 3, 4, 6}, m.Elements()) // row-major
}

// TestFromRowsErrors covers ragged and empty literals.
func TestFromRowsErrors(t *testing.T) {
	_, err := matrix.FromRows([][]int{{1, 2, 3}, {3, 4}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows([][]int{})
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.FromRows([][]int{{}, {}})
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

// TestFromRowsCopiesInput ensures later edits to the literal do not leak in.
func TestFromRowsCopiesInput(t *testing.T) {
	lit := [][]int{{1, 2}, {3, 4}}
	m := MustRows(t, lit)
	lit[0][0] = 99
	require.Equal(t, 1, MustAt(t, m, 0, 0))
}

// TestAtOutOfRange ensures At returns ErrIndexOutOfRange on invalid access.
func TestAtOutOfRange(t *testing.T) {
	m := MustMatrix[int](t, 2, 2)
	for _, ix := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		_, err := m.At(ix[0], ix[1])
		require.ErrorIs(t, err, matrix.ErrIndexOutOfRange, "At(%d,%d)", ix[0], ix[1])
	}
}

// TestSet writes in bounds and rejects out-of-range writes without side effects.
func TestSet(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, m.Set(1, 0, 9))
	CompareExact(t, [][]int{{1, 2}, {9, 4}}, m)

	err := m.Set(0, 2, 7)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	require.EqualError(t, err, "Matrix.Set(0,2): ValidateIndex: column 2 not in [0,2): matrix: index out of range")
	CompareExact(t, [][]int{{1, 2}, {9, 4}}, m)
}

// TestRowColumn checks copies and strides.
func TestRowColumn(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row)

	col, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6}, col)

	// mutating the returned slices must not reach the matrix
	row[0], col[0] = -1, -1
	require.Equal(t, 4, MustAt(t, m, 1, 0))
	require.Equal(t, 3, MustAt(t, m, 0, 2))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
}

// TestCloneIndependence ensures Clone returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.AddRow([]float64{5, 6}))

	MustDims(t, m, 2, 2)
	MustDims(t, c, 3, 2)
	require.True(t, matrix.Equal(m, MustRows(t, [][]float64{{1, 2}, {3, 4}})))
}

// TestIdentityAndZerosLike covers the facade constructors.
func TestIdentityAndZerosLike(t *testing.T) {
	id, err := matrix.Identity[int](3)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.Identity[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	z, err := matrix.ZerosLike(MustRows(t, [][]int8{{1, 2, 3}}))
	require.NoError(t, err)
	CompareExact(t, [][]int8{{0, 0, 0}}, z)

	_, err = matrix.ZerosLike[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMustFromRowsPanics checks the literal helper.
func TestMustFromRowsPanics(t *testing.T) {
	require.Panics(t, func() { matrix.MustFromRows([][]int{{1}, {1, 2}}) })
	require.NotPanics(t, func() { matrix.MustFromRows([][]int{{1, 2}}) })
}
