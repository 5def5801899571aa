// Package lvmat is a small, generic dense-matrix toolkit for Go.
//
// What is lvmat?
//
//	A row-major Matrix[T] over any integer or floating-point element type:
//		• Shape: construct from a shape or a row literal, grow and shrink
//		  with AddRow/AddColumn/RemoveRow/RemoveColumn
//		• Arithmetic: Add, Sub, Mul, Scale, Div, compound *Assign forms, Equal
//		• Structure: Transpose, Minor, Cofactor, Determinant (Laplace), Trace
//		• Rendering: "{1,2,\n3,4}" with functional render options
//
// Why lvmat?
//
//   - Explicit errors: every failure is a sentinel matched with errors.Is
//   - Exact integers: determinants never leave T, so int results stay exact
//   - Opt-in locking: plain Matrix is unsynchronized, Guarded adds an RWMutex
//
// Packages:
//
//	matrix/         Matrix[T], validators, arithmetic, determinant, Guarded[T]
//	converters/     gonum/mat interop and an LU determinant oracle
//	fixture/        YAML-described cases, runner and report
//	cmd/matrixdemo  walkthrough and fixture runner
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}})
//	d, _ := matrix.Determinant(m) // 49
//
//	go get github.com/katalvlaran/lvmat/matrix
package lvmat
