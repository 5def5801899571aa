// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Tolerance applied when comparing float results. Integer element types are
// converted exactly, so the tolerance never hides an integer mismatch.
const Tolerance = 1e-9

// Check compares r against the expectations recorded in c.
// A case with WantErr passes only if r.Err wraps that matrix error kind.
// A case without any expectation fails with ErrMissing.
func Check(c Case, r Result) error {
	if c.WantErr != "" {
		if got := KindOf(r.Err); got != c.WantErr {
			return fmt.Errorf("%s: want error %s, got %v: %w", c.Name, c.WantErr, r.Err, ErrMismatch)
		}
		return nil
	}
	if r.Err != nil {
		return fmt.Errorf("%s: %w", c.Name, r.Err)
	}

	switch {
	case c.Want != nil:
		if !rowsClose(c.Want, r.Matrix) {
			return fmt.Errorf("%s: want %v, got %v: %w", c.Name, c.Want, r.Matrix, ErrMismatch)
		}
	case c.WantScalar != nil:
		if r.Scalar == nil || !approxEqual(*c.WantScalar, *r.Scalar) {
			return fmt.Errorf("%s: want %v, got %v: %w", c.Name, *c.WantScalar, deref(r.Scalar), ErrMismatch)
		}
	case c.WantBool != nil:
		if r.Bool == nil || *r.Bool != *c.WantBool {
			return fmt.Errorf("%s: want %v, got %v: %w", c.Name, *c.WantBool, deref(r.Bool), ErrMismatch)
		}
	case c.WantText != nil:
		if r.Text == nil || *r.Text != *c.WantText {
			return fmt.Errorf("%s: want %q, got %q: %w", c.Name, *c.WantText, deref(r.Text), ErrMismatch)
		}
	default:
		return fmt.Errorf("%s: no want, wantScalar, wantBool, wantText or wantErr: %w", c.Name, ErrMissing)
	}

	return nil
}

func rowsClose(want, got [][]float64) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if len(want[i]) != len(got[i]) {
			return false
		}
		for j := range want[i] {
			if !approxEqual(want[i][j], got[i][j]) {
				return false
			}
		}
	}

	return true
}

func approxEqual(want, got float64) bool {
	if math.IsNaN(want) || math.IsNaN(got) {
		return math.IsNaN(want) && math.IsNaN(got)
	}
	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		return want == got
	}

	return math.Abs(want-got) <= Tolerance*math.Max(1, math.Abs(want))
}

func deref[V any](p *V) any {
	if p == nil {
		return nil
	}

	return *p
}

// Outcome is one line of a run report.
type Outcome struct {
	Name   string      `yaml:"name"`
	Op     string      `yaml:"op"`
	Passed bool        `yaml:"passed"`
	Got    [][]float64 `yaml:"got,flow,omitempty"`
	Scalar *float64    `yaml:"scalar,omitempty"`
	Text   *string     `yaml:"text,omitempty"`
	Error  string      `yaml:"error,omitempty"`
	Detail string      `yaml:"detail,omitempty"`
}

// Report is the YAML document produced by RunSuite.
type Report struct {
	Passed   int       `yaml:"passed"`
	Failed   int       `yaml:"failed"`
	Outcomes []Outcome `yaml:"outcomes"`
}

// RunSuite runs and checks every case in order.
func RunSuite(s Suite) Report {
	var rep Report
	for _, c := range s.Cases {
		r := Run(c)
		o := Outcome{Name: c.Name, Op: c.Op, Got: r.Matrix, Scalar: r.Scalar, Text: r.Text}
		if r.Err != nil {
			o.Error = KindOf(r.Err)
			if o.Error == "" {
				o.Error = r.Err.Error()
			}
		}
		if err := Check(c, r); err != nil {
			o.Detail = err.Error()
			rep.Failed++
		} else {
			o.Passed = true
			rep.Passed++
		}
		rep.Outcomes = append(rep.Outcomes, o)
	}

	return rep
}

// Encode writes rep as YAML with two-space indentation.
func (rep Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}

	return enc.Close()
}
