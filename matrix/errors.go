// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with their operation
// tag via matrixErrorf ("Mul: matrix: dimension mismatch"); callers still use
// errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> square -> dimension too small -> index range.

var (
	// ErrInvalidShape is returned when a requested shape is invalid
	// (rows<1 or cols<1, or an empty row literal).
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions: AddRow/AddColumn
	// with the wrong length, Add/Sub of different shapes, Mul where
	// a.Cols != b.Rows, or a row literal with unequal row lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIndexOutOfRange indicates that a row or column index is outside valid bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionTooSmall signals a square matrix below the minimum size an
	// operation supports (2 for Minor/Cofactor, 1 for Determinant).
	ErrDimensionTooSmall = errors.New("matrix: dimension too small")

	// ErrDivisionByZero is returned by Div for integer element types when the
	// divisor is zero. Floating-point types follow IEEE-754 instead.
	ErrDivisionByZero = errors.New("matrix: integer division by zero")

	// ErrNonNumericElementType is the runtime counterpart of the Number
	// constraint: decoders that pick the element type from data (see package
	// fixture) return it for unknown or non-numeric type names.
	ErrNonNumericElementType = errors.New("matrix: non-numeric element type")

	// ErrNaNInf is returned by AllClose for a NaN or infinite tolerance.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidVerb is returned by ValidateVerb for a render verb WithVerb
	// would reject.
	ErrInvalidVerb = errors.New("matrix: invalid render verb")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
