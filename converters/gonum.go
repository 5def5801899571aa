// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptyMatrix is returned for matrices without elements: gonum cannot
// represent a 0×N or N×0 Dense.
var ErrEmptyMatrix = fmt.Errorf("converters: %w", matrix.ErrInvalidShape)

// ErrNotIntegral is returned by FromGonum when a float value cannot be stored
// exactly in an integer element type.
var ErrNotIntegral = errors.New("converters: value is not integral")

// ToGonum copies m into a freshly allocated *mat.Dense.
// Integer elements are widened to float64; values above 2^53 lose precision.
// Errors: matrix.ErrNilMatrix, ErrEmptyMatrix.
// Complexity: O(r*c).
func ToGonum[T matrix.Number](m *matrix.Matrix[T]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, fmt.Errorf("ToGonum: %w", ErrEmptyMatrix)
	}
	src := m.Elements()
	data := make([]float64, len(src))
	for k, v := range src {
		data[k] = float64(v)
	}

	// mat.NewDense adopts data in row-major order, same layout as Matrix.
	return mat.NewDense(m.Rows(), m.Cols(), data), nil
}

// FromGonum copies any gonum matrix into a Matrix[T].
// For integer T every value must be finite and integral (ErrNotIntegral);
// float T accepts everything, including NaN/Inf.
// Complexity: O(r*c).
func FromGonum[T matrix.Number](g mat.Matrix) (*matrix.Matrix[T], error) {
	r, c := g.Dims()
	integral := isIntegral[T]()
	rows := make([][]T, r)
	var i, j int
	for i = 0; i < r; i++ {
		rows[i] = make([]T, c)
		for j = 0; j < c; j++ {
			v := g.At(i, j)
			if integral && (math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v)) {
				return nil, fmt.Errorf("FromGonum: (%d,%d)=%g: %w", i, j, v, ErrNotIntegral)
			}
			rows[i][j] = T(v)
		}
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	return m, nil
}

// GonumDet returns det(m) computed by gonum (LU factorization).
// Errors: matrix.ErrNilMatrix, matrix.ErrNotSquare, ErrEmptyMatrix.
func GonumDet[T matrix.Number](m *matrix.Matrix[T]) (float64, error) {
	d, err := ToGonum(m)
	if err != nil {
		return 0, fmt.Errorf("GonumDet: %w", err)
	}
	if err = matrix.ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("GonumDet: %w", err)
	}

	return mat.Det(d), nil
}

// isIntegral reports whether T truncates division.
func isIntegral[T matrix.Number]() bool {
	one, two := T(1), T(2)

	return one/two == 0
}
