// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{11, 22}, {33, 44}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{-9, -18}, {-27, -36}}, diff)

	// operands untouched
	CompareExact(t, [][]int{{1, 2}, {3, 4}}, a)
}

func TestAddSubMismatch(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{1, 2, 3}})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddThenSubRoundTrip: (a + b) - b == a, exact for integers.
func TestAddThenSubRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		a := MustRows(t, RandIntRows(3, 5, seed))
		b := MustRows(t, RandIntRows(3, 5, seed+100))
		s, err := matrix.Add(a, b)
		require.NoError(t, err)
		back, err := matrix.Sub(s, b)
		require.NoError(t, err)
		require.True(t, matrix.Equal(a, back), "seed %d", seed)
	}
}

func TestMul(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{2, 0}, {1, 2}})
	res, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{4, 4}, {10, 8}}, res)

	// non-square: (2×3)·(3×1) = 2×1
	c := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	v := MustRows(t, [][]int{{1}, {0}, {-1}})
	res, err = matrix.Mul(c, v)
	require.NoError(t, err)
	CompareExact(t, [][]int{{-2}, {-2}}, res)
}

func TestMulDimensionMismatch(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]int{{1, 2}, {3, 4}})
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulIdentity: I·A == A·I == A.
func TestMulIdentity(t *testing.T) {
	a := MustRows(t, RandIntRows(4, 4, 7))
	id, err := matrix.Identity[int64](4)
	require.NoError(t, err)

	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, left))
	require.True(t, matrix.Equal(a, right))
}

func TestScaleAndHadamard(t *testing.T) {
	a := MustRows(t, [][]int{{1, -2}, {3, 0}})
	s, err := matrix.Scale(a, 3)
	require.NoError(t, err)
	CompareExact(t, [][]int{{3, -6}, {9, 0}}, s)

	h, err := matrix.Hadamard(a, a)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 4}, {9, 0}}, h)

	_, err = matrix.Scale[int](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDivFloat(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 0}})
	half, err := matrix.Div(m, 2.0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, 1}, {1.5, 0}}, half)

	// IEEE: x/0 → ±Inf, 0/0 → NaN (0·Inf), never an error.
	inf, err := matrix.Div(m, 0.0)
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, inf, 0, 0), 1))
	require.True(t, math.IsNaN(MustAt(t, inf, 1, 1)))
}

func TestDivInteger(t *testing.T) {
	m := MustRows(t, [][]int{{4, -6}})

	_, err := matrix.Div(m, 0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	same, err := matrix.Div(m, 1)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, same))

	neg, err := matrix.Div(m, -1)
	require.NoError(t, err)
	CompareExact(t, [][]int{{-4, 6}}, neg)

	// the integer reciprocal of 2 is 0
	zero, err := matrix.Div(m, 2)
	require.NoError(t, err)
	CompareExact(t, [][]int{{0, 0}}, zero)

	_, err = matrix.Div(MustRows(t, [][]uint8{{1}}), 0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
}

func TestTranspose(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	tr := matrix.Transpose(a)
	CompareExact(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, tr)
	CompareExact(t, [][]int{{1, 2, 3}, {4, 5, 6}}, a)
}

// TestTransposeNil: nil transposes to nil instead of dereferencing.
func TestTransposeNil(t *testing.T) {
	require.NotPanics(t, func() {
		require.Nil(t, matrix.Transpose[int](nil))
	})
}

// TestTransposeInvolution: (Aᵀ)ᵀ == A for a spread of shapes.
func TestTransposeInvolution(t *testing.T) {
	for r := 1; r <= 5; r++ {
		for c := 1; c <= 5; c++ {
			a := MustRows(t, RandFloatRows(r, c, int64(r*10+c)))
			require.True(t, matrix.Equal(a, matrix.Transpose(matrix.Transpose(a))), "%dx%d", r, c)
		}
	}
}

func TestEqual(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	require.True(t, matrix.Equal(a, MustRows(t, [][]int{{1, 2}, {3, 4}})))
	require.False(t, matrix.Equal(a, MustRows(t, [][]int{{1, 2}, {3, 5}})))

	// same elements, different shape
	require.False(t, matrix.Equal(a, MustRows(t, [][]int{{1, 2, 3, 4}})))
	require.False(t, matrix.Equal(a, MustRows(t, [][]int{{1}, {2}, {3}, {4}})))
	require.False(t, a.Equal(MustRows(t, [][]int{{-1, 1, 4}, {2, 5, 4}})))

	require.True(t, matrix.Equal[int](nil, nil))
	require.False(t, matrix.Equal(a, nil))

	// exact comparison, no tolerance
	x, y := 0.1, 0.2
	f := MustRows(t, [][]float64{{x + y}})
	require.False(t, matrix.Equal(f, MustRows(t, [][]float64{{0.3}})))
}
