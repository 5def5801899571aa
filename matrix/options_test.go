// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestStringDefault(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, "{1,2,\n3,4}", m.String())
	require.Equal(t, "{1,2,\n3,4}", fmt.Sprint(m))

	require.Equal(t, "{0}", MustMatrix[int](t, 1, 1).String())
	require.Equal(t, "{1.5,-2}", MustRows(t, [][]float64{{1.5, -2}}).String())
}

func TestRenderOptions(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4.5}})

	require.Equal(t, "{1.000000,2.000000,\n3.000000,4.500000}", m.Render(matrix.WithVerb("%f")))
	require.Equal(t, "[1 2; 3 4.5]", m.Render(
		matrix.WithSeparators(" ", "; "),
		matrix.WithBraces("[", "]"),
	))
	require.Equal(t, "1\t2\n3\t4.5", m.Render(
		matrix.WithSeparators("\t", "\n"),
		matrix.WithBraces("", ""),
	))
	// nil options are ignored, later options win
	require.Equal(t, "{1,2,\n3,4.5}", m.Render(nil, matrix.WithVerb("%f"), matrix.WithVerb("%v")))
}

func TestRenderOptionPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithVerb("v") })
	require.Panics(t, func() { matrix.WithVerb("%d%d") })
	require.Panics(t, func() { matrix.WithBraces("{", "") })
	require.NotPanics(t, func() { matrix.WithVerb("%6.2f") })

	require.NoError(t, matrix.ValidateVerb("%6.2f"))
	for _, verb := range []string{"d", "", "%d%d", "x%v"} {
		require.ErrorIs(t, matrix.ValidateVerb(verb), matrix.ErrInvalidVerb, "verb %q", verb)
	}
}
