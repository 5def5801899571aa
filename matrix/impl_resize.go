// SPDX-License-Identifier: MIT

// Package matrix - structural mutation (rows & columns).
//
// Purpose:
//   - Grow and shrink a Matrix in place while keeping len(data) == rows*cols.
//   - Validate first, mutate second: a failing call leaves the receiver untouched.
//
// Complexity quicksheet:
//   - AddRow: O(c) amortized (append to the tail of the row-major buffer).
//   - RemoveRow: O(r*c) (one contiguous delete, tail shifted left).
//   - AddColumn/RemoveColumn: O(r*c). Row-major layout makes the column path
//     the expensive one; each row gets its own mid-buffer insert/delete.

package matrix

import "slices"

const (
	ctxAddRow       = "AddRow"
	ctxAddColumn    = "AddColumn"
	ctxRemoveRow    = "RemoveRow"
	ctxRemoveColumn = "RemoveColumn"
)

// AddRow appends values as a new last row.
// Implementation:
//   - Stage 1: len(values) must equal Cols(); else ErrDimensionMismatch.
//   - Stage 2: append to the flat buffer, then bump the row count.
//
// Complexity:
//   - Time O(c) amortized, Space O(c).
func (m *Matrix[T]) AddRow(values []T) error {
	if err := ValidateVecLen("row", len(values), m.c); err != nil {
		return matrixErrorf(ctxAddRow, err)
	}
	m.data = append(m.data, values...)
	m.r++

	return nil
}

// AddColumn appends values as a new last column.
// Implementation:
//   - Stage 1: len(values) must equal Rows(); else ErrDimensionMismatch.
//   - Stage 2: for row i, insert values[i] right after that row's existing
//     cells. Offsets already account for the i cells inserted before it.
//   - Stage 3: bump the column count.
//
// Complexity:
//   - Time O(r*c): every insert shifts the tail of the buffer.
func (m *Matrix[T]) AddColumn(values []T) error {
	if err := ValidateVecLen("column", len(values), m.r); err != nil {
		return matrixErrorf(ctxAddColumn, err)
	}
	width := m.c + 1
	for i, v := range values {
		// row i now starts at i*width; its old cells end at i*width + m.c
		m.data = slices.Insert(m.data, i*width+m.c, v)
	}
	m.c = width

	return nil
}

// RemoveRow deletes row i; rows below shift up by one.
// Complexity: O(r*c).
func (m *Matrix[T]) RemoveRow(i int) error {
	if err := ValidateIndex("row", i, m.r); err != nil {
		return matrixErrorf(ctxRemoveRow, err)
	}
	m.data = slices.Delete(m.data, i*m.c, (i+1)*m.c)
	m.r--

	return nil
}

// RemoveColumn deletes column j from every row.
// Implementation:
//   - Stage 1: validate 0 ≤ j < Cols().
//   - Stage 2: decrement the width first, then walk rows deleting the cell at
//     i*newWidth + j; after each delete the next row's cell sits exactly
//     newWidth further along.
//
// Complexity:
//   - Time O(r*c).
func (m *Matrix[T]) RemoveColumn(j int) error {
	if err := ValidateIndex("column", j, m.c); err != nil {
		return matrixErrorf(ctxRemoveColumn, err)
	}
	m.c--
	for i := 0; i < m.r; i++ {
		at := i*m.c + j
		m.data = slices.Delete(m.data, at, at+1)
	}

	return nil
}
