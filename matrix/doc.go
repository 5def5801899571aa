// SPDX-License-Identifier: MIT

// Package matrix provides a generic, row-major, resizable numeric matrix.
//
// The matrix package provides:
//
//   - Matrix[T]: a dense container over any integer or floating-point element
//     type, backed by one flat slice (element (r,c) lives at r*cols + c).
//   - Structural mutation: AddRow/AddColumn/RemoveRow/RemoveColumn that keep
//     len(data) == rows*cols before and after every call.
//   - Pure kernels returning fresh matrices: Add, Sub, Mul, Scale, Div,
//     Hadamard, Transpose, Minor, Cofactor.
//   - Determinant by Laplace (cofactor) expansion along the first row.
//   - Guarded[T]: an opt-in RWMutex wrapper for shared access.
//
// A plain *Matrix[T] is NOT safe for concurrent use: one writer and no
// concurrent readers during a mutation. Wrap it in Guarded when sharing.
//
// All failures are reported as wrapped sentinel errors (see errors.go);
// match them with errors.Is. A failing call never mutates its receiver.
package matrix
