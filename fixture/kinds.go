// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"

	"github.com/katalvlaran/lvmat/matrix"
)

// kinds maps the error-kind names used in YAML to matrix sentinels.
var kinds = []struct {
	name string
	err  error
}{
	{"InvalidShape", matrix.ErrInvalidShape},
	{"DimensionMismatch", matrix.ErrDimensionMismatch},
	{"IndexOutOfRange", matrix.ErrIndexOutOfRange},
	{"NotSquare", matrix.ErrNotSquare},
	{"DimensionTooSmall", matrix.ErrDimensionTooSmall},
	{"DivisionByZero", matrix.ErrDivisionByZero},
	{"NonNumericElementType", matrix.ErrNonNumericElementType},
	{"NilMatrix", matrix.ErrNilMatrix},
}

// Sentinel returns the matrix sentinel for a kind name, or nil.
func Sentinel(kind string) error {
	for _, k := range kinds {
		if k.name == kind {
			return k.err
		}
	}

	return nil
}

// KindOf names the matrix error kind err wraps, or "" when it wraps none.
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}

	return ""
}
