// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Column return errors instead of panicking.
//   - Never alias: every slice handed out is a fresh copy of the backing buffer.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c) zero-init; FromRows: O(r*c); At: O(1); Row: O(c);
//     Column: O(r); Clone/Elements: O(r*c).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew      = "NewMatrix"
	ctxFromRows = "FromRows"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxColumn   = "Column"
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// NewMatrix creates an r×c matrix filled with T's zero value.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=1 && cols>=1; else ErrInvalidShape.
//   - Stage 2: allocate a zero-filled flat buffer.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix[T Number](rows, cols int) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	// make() zero-fills deterministically.
	return fromFlat(make([]T, rows*cols), rows, cols), nil
}

// FromRows builds a matrix from a row literal; every inner slice is one row.
// MAIN DESCRIPTION:
//   - Rows = len(rows), Cols = the shared inner length.
//
// Implementation:
//   - Stage 1: reject an empty outer slice or empty first row (ErrInvalidShape).
//   - Stage 2: check every row length against the first (ErrDimensionMismatch).
//   - Stage 3: copy rows into one flat buffer in order.
//
// Behavior highlights:
//   - The input is copied; later edits to it do not reach the matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Number](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, denseErrorf(ctxFromRows, 0, 0, ErrInvalidShape)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, denseErrorf(ctxFromRows, len(rows), 0, ErrInvalidShape)
	}

	var i int
	for i = 1; i < len(rows); i++ {
		if err := ValidateVecLen(fmt.Sprintf("row %d", i), len(rows[i]), cols); err != nil {
			return nil, denseErrorf(ctxFromRows, i, len(rows[i]), err)
		}
	}

	buf := make([]T, 0, len(rows)*cols)
	for i = range rows {
		buf = append(buf, rows[i]...)
	}

	return fromFlat(buf, len(rows), cols), nil
}

// fromFlat adopts data as the backing buffer of an r×c matrix.
// Internal derivations (Transpose, kernels, Minor) compute len(data)==r*c
// themselves; nothing is validated here.
func fromFlat[T Number](data []T, rows, cols int) *Matrix[T] {
	return &Matrix[T]{r: rows, c: cols, data: data}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if err := ValidateIndex("row", row, m.r); err != nil {
		return 0, denseErrorf(method, row, col, err)
	}
	if err := ValidateIndex("column", col, m.c); err != nil {
		return 0, denseErrorf(method, row, col, err)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Both indices are bound-checked; out-of-range returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set writes v at (row, col). Shape never changes.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// The copy never aliases the backing buffer; mutating it leaves m intact.
// Complexity: O(c).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if err := ValidateIndex("row", i, m.r); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a copy of column j, striding through storage by Cols().
// Complexity: O(r).
func (m *Matrix[T]) Column(j int) ([]T, error) {
	if err := ValidateIndex("column", j, m.c); err != nil {
		return nil, denseErrorf(ctxColumn, 0, j, err)
	}
	out := make([]T, 0, m.r)
	for idx := j; idx < len(m.data); idx += m.c {
		out = append(out, m.data[idx])
	}

	return out, nil
}

// Elements returns a copy of the flat row-major buffer.
// Complexity: O(r*c).
func (m *Matrix[T]) Elements() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return fromFlat(m.Elements(), m.r, m.c)
}

// replace overwrites the receiver's whole state with src (compound assignment).
func (m *Matrix[T]) replace(src *Matrix[T]) {
	m.r, m.c, m.data = src.r, src.c, src.data
}
