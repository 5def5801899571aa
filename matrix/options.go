// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for textual rendering.
// This file defines:
//   - RenderOption / renderOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRenderOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts String/Render and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVerb formats each element with fmt. "%v" prints integers plainly
	// and floats in shortest form; "%f" gives fixed six-decimal output.
	DefaultVerb = "%v"

	// DefaultElemSep separates elements inside a row.
	DefaultElemSep = ","

	// DefaultRowSep separates rows; the trailing comma of a row is part of it.
	DefaultRowSep = ",\n"

	// DefaultOpen and DefaultClose delimit the whole matrix.
	DefaultOpen  = "{"
	DefaultClose = "}"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVerbInvalid  = "matrix: WithVerb: verb must start with '%' and hold exactly one directive"
	panicBraceInvalid = "matrix: WithBraces: open and close must both be set or both be empty"
)

// RenderOption mutates internal render options. Safe to apply repeatedly.
type RenderOption func(*renderOptions)

// renderOptions stores the effective configuration after applying RenderOption setters.
type renderOptions struct {
	verb    string
	elemSep string
	rowSep  string
	open    string
	close   string
}

// WithVerb sets the fmt verb used per element (e.g. "%v", "%f", "%.3g", "%6d").
// Panics if verb does not hold exactly one '%' directive; check untrusted
// input with ValidateVerb first.
func WithVerb(verb string) RenderOption {
	if ValidateVerb(verb) != nil {
		panic(panicVerbInvalid)
	}

	return func(o *renderOptions) { o.verb = verb }
}

// WithSeparators overrides the element and row separators.
func WithSeparators(elem, row string) RenderOption {
	return func(o *renderOptions) {
		o.elemSep = elem
		o.rowSep = row
	}
}

// WithBraces overrides the outer delimiters. Both empty disables them.
func WithBraces(open, close string) RenderOption {
	if (open == "") != (close == "") {
		panic(panicBraceInvalid)
	}

	return func(o *renderOptions) {
		o.open = open
		o.close = close
	}
}

// gatherRenderOptions applies opts over the defaults in order.
func gatherRenderOptions(opts ...RenderOption) renderOptions {
	o := renderOptions{
		verb:    DefaultVerb,
		elemSep: DefaultElemSep,
		rowSep:  DefaultRowSep,
		open:    DefaultOpen,
		close:   DefaultClose,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
