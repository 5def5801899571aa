// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Minimum dimensions accepted by the cofactor family.
const (
	minMinorDim       = 2 // a 1×1 matrix has no minor
	minDeterminantDim = 1 // a 0×0 matrix has no determinant
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows and cols are both positive and that rows*cols
// fits in an int.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return validatorErrorf("ValidateShape", ErrInvalidShape)
	}
	if cols > math.MaxInt/rows {
		return validatorErrorf("ValidateShape: element count overflows int", ErrInvalidShape)
	}

	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape checks both operands for nil, then for equal shape.
// Complexity: O(1).
func ValidateBinarySameShape[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible checks both operands for nil, then a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil.
// Errors: ErrNotSquare.
// Complexity: O(1).
func ValidateSquare[T Number](m *Matrix[T]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}

	return nil
}

// ValidateMinDim checks that a square m has at least minDim rows.
// Implementation: Assumes m is not nil and already square.
// Complexity: O(1).
func ValidateMinDim[T Number](m *Matrix[T], minDim int) error {
	if m.r < minDim {
		return validatorErrorf(fmt.Sprintf("ValidateMinDim(%d)", minDim), ErrDimensionTooSmall)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < n. The tag names the axis ("row"/"column").
// Complexity: O(1).
func ValidateIndex(tag string, i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex: %s %d not in [0,%d)", tag, i, n), ErrIndexOutOfRange)
	}

	return nil
}

// ValidateVecLen ensures a row/column payload has exactly n values.
// Complexity: O(1).
func ValidateVecLen(tag string, got, n int) error {
	if got != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: %s has %d values, want %d", tag, got, n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVerb ensures verb starts with '%' and holds exactly one directive,
// the form WithVerb accepts.
// Complexity: O(len(verb)).
func ValidateVerb(verb string) error {
	if !strings.HasPrefix(verb, "%") || strings.Count(verb, "%") != 1 {
		return validatorErrorf(fmt.Sprintf("ValidateVerb: %q", verb), ErrInvalidVerb)
	}

	return nil
}
