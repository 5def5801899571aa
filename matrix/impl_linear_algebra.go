// SPDX-License-Identifier: MIT
// Package matrix provides elementwise addition, subtraction, matrix
// multiplication, transpose, scalar scaling/division and exact equality for
// Matrix[T]. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical arithmetic kernels used across the package.
//   - Define operation tags for deterministic error reporting.
//
// Notes:
//   - Every kernel allocates exactly one fresh result; operands are never mutated.
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opScale    = "Scale"
	opDiv      = "Div"
	opHadamard = "Hadamard"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zipWith computes out[k] = f(a[k], b[k]) over two same-shaped matrices.
// Internal helper for Add/Sub/Hadamard to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 into a fresh buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func zipWith[T Number](a, b *Matrix[T], f func(x, y T) T, opTag string) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := make([]T, len(a.data))
	for k := range out {
		out[k] = f(a.data[k], b.data[k])
	}

	return fromFlat(out, a.r, a.c), nil
}

// Add returns a + b elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(a, b, func(x, y T) T { return x + y }, opAdd)
}

// Sub returns a - b elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(a, b, func(x, y T) T { return x - y }, opSub)
}

// Hadamard returns the elementwise product a ⊙ b.
// Same shape rules as Add.
func Hadamard[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(a, b, func(x, y T) T { return x * y }, opHadamard)
}

// Mul computes the matrix product a×b.
// MAIN DESCRIPTION:
//   - Result shape is (a.Rows, b.Cols); out[i,j] = Σ_k a[i,k]·b[k,j].
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: bt := Transpose(b) so row i of a and row j of bt are both
//     contiguous; the inner reduction walks two flat slices in lockstep.
//   - Stage 3: each dot product starts from T's zero value.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→j→k.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) + O(n*c) for the transposed copy.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bt := Transpose(b)
	n := a.c
	out := make([]T, a.r*b.c)

	var (
		i, j, k    int
		rowA, rowB []T
		sum        T
	)
	for i = 0; i < a.r; i++ {
		rowA = a.data[i*n : (i+1)*n]
		for j = 0; j < bt.r; j++ {
			rowB = bt.data[j*n : (j+1)*n]
			sum = 0
			for k = 0; k < n; k++ {
				sum += rowA[k] * rowB[k]
			}
			out[i*b.c+j] = sum
		}
	}

	return fromFlat(out, a.r, b.c), nil
}

// Scale returns a new matrix whose elements are s * m[i,j].
// Scale is total for any shape; the only failure is a nil input.
// Complexity: O(r*c).
func Scale[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return scaled(m, s), nil
}

// scaled is the unchecked body of Scale, shared with Cofactor.
func scaled[T Number](m *Matrix[T], s T) *Matrix[T] {
	out := make([]T, len(m.data))
	for k, v := range m.data {
		out[k] = v * s
	}

	return fromFlat(out, m.r, m.c)
}

// Div returns Scale(m, 1/s).
// MAIN DESCRIPTION:
//   - Division is multiplication by the reciprocal computed in T.
//
// Behavior highlights:
//   - Integer T: s == 0 fails with ErrDivisionByZero. Otherwise 1/s truncates,
//     so only s ∈ {1, -1} leaves non-zero results; this mirrors scaling by
//     the integer reciprocal and is intentional.
//   - Floating T: s == 0 follows IEEE-754 (±Inf, NaN for 0·Inf); never errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Div[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	var zero T
	if s == zero && isIntegral[T]() {
		return nil, matrixErrorf(opDiv, ErrDivisionByZero)
	}

	return scaled(m, T(1)/s), nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Total and pure: the input is never mutated, and Transpose(nil) is nil.
//
// Implementation:
//   - data[i*cols + j] → out[j*rows + i], reading the source row by row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Number](m *Matrix[T]) *Matrix[T] {
	if m == nil {
		return nil
	}
	out := make([]T, len(m.data))
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out[j*m.r+i] = m.data[base+j]
		}
	}

	return fromFlat(out, m.c, m.r)
}

// Equal reports whether a and b have the same shape and pairwise-equal elements.
// Exact comparison: no epsilon. Differing shapes compare unequal (not an error).
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(r*c).
func Equal[T Number](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}
