// SPDX-License-Identifier: MIT

// Package matrix - textual rendering.
//
// Format (defaults):
//
//	{1,2,
//	3,4}
//
// Elements of a row are joined by ",", rows by ",\n", the whole is wrapped in
// braces. A matrix without elements (a dimension removed down to 0) renders
// as "{}".

package matrix

import (
	"fmt"
	"strings"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// String implements fmt.Stringer using the default render options.
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	return m.Render()
}

// Render formats the matrix under the given options (see options.go).
// Complexity: O(r*c) for string construction.
func (m *Matrix[T]) Render(opts ...RenderOption) string {
	o := gatherRenderOptions(opts...)

	var sb strings.Builder
	sb.WriteString(o.open)
	if len(m.data) == 0 {
		sb.WriteString(o.close)
		return sb.String()
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(o.rowSep)
		}
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(o.elemSep)
			}
			fmt.Fprintf(&sb, o.verb, m.data[i*m.c+j])
		}
	}
	sb.WriteString(o.close)

	return sb.String()
}
