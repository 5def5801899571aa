// Package converters provides two-way adapters between matrix.Matrix and
// gonum.org/v1/gonum/mat:
//   - ToGonum   copies any Matrix[T] into a *mat.Dense (float64).
//   - FromGonum copies any mat.Matrix into a Matrix[T], converting elements.
//   - GonumDet  computes an LU-based determinant through gonum.
//
// GonumDet exists as an independent oracle for matrix.Determinant (which is a
// cofactor expansion); it is not a replacement for it.
package converters
