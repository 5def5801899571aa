// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise helpers that sit next to the arithmetic kernels: Apply
//     maps a function over every cell, AllClose compares with tolerances.
//
// Determinism & Performance:
//   - Flat loops 0..n-1 over the row-major buffer.
//   - Apply allocates exactly one result; AllClose allocates nothing.

package matrix

import "math"

const (
	opApply    = "Apply"
	opAllClose = "AllClose"
)

// Apply returns a new matrix with out[i,j] = f(i, j, m[i,j]).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Apply[T Number](m *Matrix[T], f func(i, j int, v T) T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	out := make([]T, len(m.data))
	for k, v := range m.data {
		out[k] = f(k/m.c, k%m.c, v)
	}

	return fromFlat(out, m.r, m.c), nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds for every element.
// Differences are taken in float64, so unsigned element types do not wrap.
//
// Policy:
//   - a and b must be non-nil and share a shape (ErrDimensionMismatch otherwise).
//   - rtol, atol are used as |rtol|, |atol|; NaN or Inf tolerances fail with ErrNaNInf.
//   - Equal infinities compare close; a NaN element never does.
//
// Complexity: O(r*c), early exit on the first violation.
func AllClose[T Number](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	var x, y float64
	for k := range a.data {
		x, y = float64(a.data[k]), float64(b.data[k])
		if x == y {
			continue
		}
		if !(math.Abs(x-y) <= atol+rtol*math.Abs(y)) {
			return false, nil
		}
	}

	return true, nil
}
