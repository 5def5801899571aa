// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file intentionally contains ONLY the element-type constraint and the
// Matrix storage type. Errors and options live in dedicated files
// (errors.go, options.go) per the package conventions.
package matrix

import "golang.org/x/exp/constraints"

// Number restricts Matrix elements to integer and floating-point types.
// Instantiating Matrix with anything else is a compile-time error.
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix is a row-major dense matrix of T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Public constructors require r,c >= 1. RemoveRow/RemoveColumn may drive a
// dimension down to 0; such a matrix holds no elements and can grow again.
//
// A *Matrix is owned by a single goroutine at a time; see Guarded for shared use.
type Matrix[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// isIntegral reports whether T truncates division (integer element type).
// Complexity: O(1).
func isIntegral[T Number]() bool {
	one, two := T(1), T(2)

	return one/two == 0
}

// negOne returns the additive inverse of one for T.
// Computed at runtime so unsigned types wrap instead of failing to compile.
func negOne[T Number]() T {
	var zero T

	return zero - T(1)
}
