// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep integer fixtures exact so results can be compared with require.Equal.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// MustMatrix ALLOCATES an r×c zero matrix or fails the test.
func MustMatrix[T matrix.Number](t testing.TB, r, c int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewMatrix[T](r, c)
	require.NoError(t, err, "NewMatrix(%d,%d)", r, c)

	return m
}

// MustRows builds a matrix from a row literal or fails the test.
func MustRows[T matrix.Number](t testing.TB, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err, "FromRows(%v)", rows)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustDims asserts the shape of m.
func MustDims[T matrix.Number](t testing.TB, m *matrix.Matrix[T], r, c int) {
	t.Helper()
	require.Equal(t, r, m.Rows(), "Rows")
	require.Equal(t, c, m.Cols(), "Cols")
}

// CompareExact asserts shape and every element of m against want.
func CompareExact[T matrix.Number](t testing.TB, want [][]T, m *matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "CompareExact: Rows")
	for i := range want {
		got, err := m.Row(i)
		require.NoError(t, err)
		require.Equal(t, want[i], got, "row %d", i)
	}
}

// RandIntRows returns an r×c literal of ints in [-9, 9] from a fixed seed.
func RandIntRows(r, c int, seed int64) [][]int64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]int64, r)
	for i := range out {
		out[i] = make([]int64, c)
		for j := range out[i] {
			out[i][j] = int64(rng.Intn(19) - 9)
		}
	}

	return out
}

// RandFloatRows returns an r×c literal of floats in [-1, 1) from a fixed seed.
func RandFloatRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = rng.Float64()*2 - 1
		}
	}

	return out
}

// laplace is an independent, slice-based cofactor expansion used to
// cross-check Determinant on small integer inputs.
func laplace(rows [][]int64) int64 {
	n := len(rows)
	if n == 1 {
		return rows[0][0]
	}
	var sum int64
	for i := 0; i < n; i++ {
		sub := make([][]int64, 0, n-1)
		for _, row := range rows[1:] {
			r := append(append([]int64{}, row[:i]...), row[i+1:]...)
			sub = append(sub, r)
		}
		term := rows[0][i] * laplace(sub)
		if i%2 == 0 {
			sum += term
		} else {
			sum -= term
		}
	}

	return sum
}
