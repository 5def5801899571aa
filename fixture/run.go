// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/katalvlaran/lvmat/matrix"
)

// Result is the type-erased outcome of running a Case.
// Exactly one of Matrix/Scalar/Bool/Text is set when Err is nil.
type Result struct {
	Matrix [][]float64
	Scalar *float64
	Bool   *bool
	Text   *string
	Err    error
}

// Run executes c with the element type named by c.Type ("" means int).
// An unknown type yields a Result whose Err wraps matrix.ErrNonNumericElementType.
func Run(c Case) Result {
	switch c.Type {
	case "int", "":
		return run[int](c)
	case "int8":
		return run[int8](c)
	case "int16":
		return run[int16](c)
	case "int32":
		return run[int32](c)
	case "int64":
		return run[int64](c)
	case "uint":
		return run[uint](c)
	case "uint8":
		return run[uint8](c)
	case "uint16":
		return run[uint16](c)
	case "uint32":
		return run[uint32](c)
	case "uint64":
		return run[uint64](c)
	case "float32":
		return run[float32](c)
	case "float64":
		return run[float64](c)
	default:
		return Result{Err: fmt.Errorf("%s: type %q: %w", c.Name, c.Type, matrix.ErrNonNumericElementType)}
	}
}

// run decodes operands into Matrix[T] and dispatches on c.Op.
func run[T matrix.Number](c Case) Result {
	a, err := decodeMatrix[T](c.A)
	if err != nil {
		return Result{Err: err}
	}
	switch c.Op {
	case "fromRows":
		return matrixResult[T](a, nil)
	case "add", "sub", "mul", "hadamard", "equal":
		b, err := decodeMatrix[T](c.B)
		if err != nil {
			return Result{Err: err}
		}
		return binary(c.Op, a, b)
	case "scale", "div":
		if c.Scalar == nil {
			return Result{Err: fmt.Errorf("%s: scalar: %w", c.Name, ErrMissing)}
		}
		s, err := convert[T](*c.Scalar)
		if err != nil {
			return Result{Err: err}
		}
		if c.Op == "scale" {
			return matrixResult[T](matrix.Scale(a, s))
		}
		return matrixResult[T](matrix.Div(a, s))
	case "transpose":
		return matrixResult[T](matrix.Transpose(a), nil)
	case "minor":
		return matrixResult[T](matrix.Minor(a, c.Row, c.Col))
	case "cofactor":
		return matrixResult[T](matrix.Cofactor(a, c.Row, c.Col))
	case "det":
		return scalarResult[T](matrix.Determinant(a))
	case "trace":
		return scalarResult[T](matrix.Trace(a))
	case "at":
		return scalarResult[T](a.At(c.Row, c.Col))
	case "addRow", "addColumn":
		vals, err := convertAll[T](c.Values)
		if err != nil {
			return Result{Err: err}
		}
		if c.Op == "addRow" {
			return matrixResult[T](a, a.AddRow(vals))
		}
		return matrixResult[T](a, a.AddColumn(vals))
	case "removeRow":
		return matrixResult[T](a, a.RemoveRow(c.Row))
	case "removeColumn":
		return matrixResult[T](a, a.RemoveColumn(c.Col))
	case "render":
		s := a.String()
		return Result{Text: &s}
	default:
		return Result{Err: fmt.Errorf("%s: %q: %w", c.Name, c.Op, ErrUnknownOp)}
	}
}

func binary[T matrix.Number](op string, a, b *matrix.Matrix[T]) Result {
	switch op {
	case "add":
		return matrixResult[T](matrix.Add(a, b))
	case "sub":
		return matrixResult[T](matrix.Sub(a, b))
	case "mul":
		return matrixResult[T](matrix.Mul(a, b))
	case "hadamard":
		return matrixResult[T](matrix.Hadamard(a, b))
	default:
		eq := matrix.Equal(a, b)
		return Result{Bool: &eq}
	}
}

// decodeMatrix converts a YAML literal into a Matrix[T] via matrix.FromRows.
func decodeMatrix[T matrix.Number](rows [][]float64) (*matrix.Matrix[T], error) {
	lit := make([][]T, len(rows))
	for i, row := range rows {
		vals, err := convertAll[T](row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		lit[i] = vals
	}

	return matrix.FromRows(lit)
}

func convertAll[T matrix.Number](in []float64) ([]T, error) {
	out := make([]T, len(in))
	for k, v := range in {
		t, err := convert[T](v)
		if err != nil {
			return nil, err
		}
		out[k] = t
	}

	return out, nil
}

// convert narrows v to T. Integer T requires a finite integral v inside T's
// range; float T rejects finite values that overflow to Inf.
func convert[T matrix.Number](v float64) (T, error) {
	var zero T
	if T(1)/T(2) != 0 {
		if !math.IsInf(v, 0) && math.IsInf(float64(T(v)), 0) {
			return zero, fmt.Errorf("%g: %w", v, ErrBadLiteral)
		}
		return T(v), nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return zero, fmt.Errorf("%g: %w", v, ErrBadLiteral)
	}
	// both bounds are powers of two, so they are exact in float64
	width := int(unsafe.Sizeof(zero)) * 8
	lo, hi := 0.0, math.Ldexp(1, width)
	if zero-1 < zero {
		lo, hi = -math.Ldexp(1, width-1), math.Ldexp(1, width-1)
	}
	if v < lo || v >= hi {
		return zero, fmt.Errorf("%g out of range [%g,%g): %w", v, lo, hi, ErrBadLiteral)
	}

	return T(v), nil
}

func matrixResult[T matrix.Number](m *matrix.Matrix[T], err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	out := make([][]float64, m.Rows())
	for i := range out {
		row, _ := m.Row(i)
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = float64(v)
		}
	}

	return Result{Matrix: out}
}

func scalarResult[T matrix.Number](v T, err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	f := float64(v)

	return Result{Scalar: &f}
}
