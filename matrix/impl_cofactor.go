// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Minor, Cofactor and Determinant for square matrices.
//   - Determinant is Laplace expansion along row 0 over freshly materialized
//     minors: O(n!) time, no memoization, exact for integer element types.
//
// Exposed API:
//   - Minor(m, r, c)     -> (n-1)×(n-1) matrix without row r and column c
//   - Cofactor(m, r, c)  -> Minor scaled by (-1)^(r+c)
//   - Determinant(m)     -> T
//   - Trace(m)           -> T
//
// Error priority (all three share it):
//   - ErrNilMatrix → ErrNotSquare → ErrDimensionTooSmall → ErrIndexOutOfRange.

package matrix

const (
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opDeterminant = "Determinant"
	opTrace       = "Trace"
)

// validateMinorArgs runs the shared precondition chain of Minor/Cofactor.
func validateMinorArgs[T Number](m *Matrix[T], r, c int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateMinDim(m, minMinorDim); err != nil {
		return err
	}
	if err := ValidateIndex("row", r, m.r); err != nil {
		return err
	}

	return ValidateIndex("column", c, m.c)
}

// Minor returns the submatrix of square m with row r and column c deleted.
// MAIN DESCRIPTION:
//   - Remaining rows and columns keep their relative order.
//
// Implementation:
//   - Stage 1: validate (nil, square, n ≥ 2, indices).
//   - Stage 2: one pass over the flat buffer, skipping row r and column c.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrDimensionTooSmall, ErrIndexOutOfRange.
//
// Complexity:
//   - Time O(n²), Space O((n-1)²).
func Minor[T Number](m *Matrix[T], r, c int) (*Matrix[T], error) {
	if err := validateMinorArgs(m, r, c); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minor(m, r, c), nil
}

// minor is the unchecked body of Minor; m must be square with n ≥ 2.
func minor[T Number](m *Matrix[T], r, c int) *Matrix[T] {
	n := m.r
	out := make([]T, 0, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		if i == r {
			continue
		}
		for j = 0; j < n; j++ {
			if j == c {
				continue
			}
			out = append(out, m.data[i*n+j])
		}
	}

	return fromFlat(out, n-1, n-1)
}

// Cofactor returns Minor(m, r, c) when r+c is even, otherwise the minor
// scaled by -1. Same preconditions and errors as Minor.
// Complexity: O(n²).
func Cofactor[T Number](m *Matrix[T], r, c int) (*Matrix[T], error) {
	if err := validateMinorArgs(m, r, c); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	sub := minor(m, r, c)
	if (r+c)%2 == 0 {
		return sub, nil
	}

	return scaled(sub, negOne[T]()), nil
}

// Determinant computes det(m) by cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - n == 1: the sole element (no recursion).
//   - n > 1 : Σ_i (-1)^i · m[0,i] · det(minor(m, 0, i)).
//
// Implementation:
//   - Stage 1: validate (nil, square, n ≥ 1).
//   - Stage 2: recurse on freshly built minors; the running sum starts at
//     T's zero value and odd terms are subtracted rather than negated.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrDimensionTooSmall (0×0 after removals).
//
// Determinism:
//   - Fixed expansion order i = 0..n-1.
//
// Complexity:
//   - Time O(n!), Space O(n²) live at any depth.
//
// Notes:
//   - Integer results are exact modulo T's overflow semantics; floating
//     results may differ from elimination-based routines in the last ulps.
func Determinant[T Number](m *Matrix[T]) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateMinDim(m, minDeterminantDim); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}

	return det(m), nil
}

// det is the unchecked recursion behind Determinant.
func det[T Number](m *Matrix[T]) T {
	if m.r == 1 {
		return m.data[0]
	}
	var sum T
	for i := 0; i < m.c; i++ {
		term := m.data[i] * det(minor(m, 0, i))
		if i%2 == 0 {
			sum += term
		} else {
			sum -= term
		}
	}

	return sum
}

// Trace returns the sum of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNotSquare, ErrDimensionTooSmall (0×0).
// Complexity: O(n).
func Trace[T Number](m *Matrix[T]) (T, error) {
	var sum T
	if err := ValidateNotNil(m); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}
	if err := ValidateMinDim(m, minDeterminantDim); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}
