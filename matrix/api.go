// SPDX-License-Identifier: MIT
// Package matrix: public facade helpers.
//
// Purpose:
//   - Convenience constructors layered on the core constructors.
//   - Keep names short and predictable for callers building fixtures.

package matrix

import "fmt"

// Identity returns the n×n identity matrix (main diagonal = 1, else 0).
// Errors: ErrInvalidShape when n < 1.
// Complexity: O(n²).
func Identity[T Number](n int) (*Matrix[T], error) {
	m, err := NewMatrix[T](n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ZerosLike returns a zero matrix with m's shape.
// Errors: ErrNilMatrix; ErrInvalidShape when m has been shrunk to 0 rows or cols.
func ZerosLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewMatrix[T](m.r, m.c)
}

// MustFromRows is FromRows for literals known to be well-formed.
// It panics on error, like regexp.MustCompile.
func MustFromRows[T Number](rows [][]T) *Matrix[T] {
	m, err := FromRows(rows)
	if err != nil {
		panic(fmt.Sprintf("matrix: MustFromRows: %v", err))
	}

	return m
}
