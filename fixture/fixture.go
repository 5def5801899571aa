// SPDX-License-Identifier: MIT

// Package fixture decodes named matrix test cases from YAML and runs them
// against package matrix.
//
// A suite file looks like:
//
//	cases:
//	  - name: det-2x2
//	    type: int
//	    op: det
//	    a: [[1, 2], [3, 4]]
//	    wantScalar: -2
//	  - name: ragged
//	    type: int
//	    op: fromRows
//	    a: [[1, 2, 3], [3, 4]]
//	    wantErr: DimensionMismatch
//
// Numbers are read as float64 and converted to the case's element type;
// integer types reject non-integral literals.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Errors returned while decoding or running a suite.
var (
	ErrUnknownOp  = errors.New("fixture: unknown op")
	ErrBadLiteral = errors.New("fixture: literal not representable in element type")
	ErrMissing    = errors.New("fixture: required field missing")
	ErrMismatch   = errors.New("fixture: result mismatch")
)

// Case is one named operation with its operands and expected outcome.
type Case struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Op   string `yaml:"op"`

	A      [][]float64 `yaml:"a,flow"`
	B      [][]float64 `yaml:"b,flow,omitempty"`
	Scalar *float64    `yaml:"scalar,omitempty"`
	Row    int         `yaml:"row,omitempty"`
	Col    int         `yaml:"col,omitempty"`
	Values []float64   `yaml:"values,flow,omitempty"`

	Want       [][]float64 `yaml:"want,flow,omitempty"`
	WantScalar *float64    `yaml:"wantScalar,omitempty"`
	WantBool   *bool       `yaml:"wantBool,omitempty"`
	WantText   *string     `yaml:"wantText,omitempty"`
	WantErr    string      `yaml:"wantErr,omitempty"`
}

// Suite is the top-level YAML document.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

// Decode reads one Suite from r. Unknown fields are rejected.
func Decode(r io.Reader) (Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Suite{}, fmt.Errorf("yaml decode: %w", err)
	}
	for i, c := range s.Cases {
		if c.Name == "" || c.Op == "" {
			return Suite{}, fmt.Errorf("case %d: name and op: %w", i, ErrMissing)
		}
	}

	return s, nil
}

// Load opens path and decodes it.
func Load(path string) (Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return Suite{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
