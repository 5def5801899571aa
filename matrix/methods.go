// SPDX-License-Identifier: MIT
// Package matrix: compound-assignment methods.
//
// Purpose:
//   - Offer +=, -=, *= and /= as methods that compute the corresponding pure
//     kernel and then replace the receiver's whole state with the result.
//   - On error the receiver is left exactly as it was (the kernel never
//     touches its operands and replace runs only on success).

package matrix

// AddAssign performs m = m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix[T]) AddAssign(b *Matrix[T]) error {
	res, err := Add(m, b)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// SubAssign performs m = m - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix[T]) SubAssign(b *Matrix[T]) error {
	res, err := Sub(m, b)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// MulAssign performs m = m × b. The receiver's shape becomes (m.Rows, b.Cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix[T]) MulAssign(b *Matrix[T]) error {
	res, err := Mul(m, b)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// ScaleAssign performs m = s·m.
func (m *Matrix[T]) ScaleAssign(s T) error {
	res, err := Scale(m, s)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// DivAssign performs m = m / s (see Div for the per-type zero policy).
func (m *Matrix[T]) DivAssign(s T) error {
	res, err := Div(m, s)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// Equal is the method form of the package-level Equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool { return Equal(m, o) }
