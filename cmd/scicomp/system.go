// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/rabbou/ScientificComputing/matrix"
)

// systemFile is the on-disk form of a tridiagonal system. Exactly one of
// RHS and Solution is set; with Solution the right-hand side is built as
// C·solution.
type systemFile struct {
	Diagonal []float64 `json:"diagonal"`
	Upper    []float64 `json:"upper"`
	Lower    []float64 `json:"lower"`
	RHS      []float64 `json:"rhs,omitempty"`
	Solution []float64 `json:"solution,omitempty"`
}

var (
	errNoRHS        = errors.New("system: one of rhs or solution is required")
	errAmbiguousRHS = errors.New("system: rhs and solution are mutually exclusive")
)

// system is a decoded system file. want is the expected solution when the
// file was given one, nil otherwise.
type system struct {
	m    *matrix.BandedMatrix
	rhs  []float64
	want []float64
}

// readSystem decodes a YAML or JSON system from path ("-" reads stdin).
func readSystem(path string, stdin io.Reader) (system, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return system{}, fmt.Errorf("read %s: %w", path, err)
	}

	var sf systemFile
	if err = yaml.UnmarshalStrict(raw, &sf); err != nil {
		return system{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return sf.build()
}

func (sf systemFile) build() (system, error) {
	switch {
	case sf.RHS == nil && sf.Solution == nil:
		return system{}, errNoRHS
	case sf.RHS != nil && sf.Solution != nil:
		return system{}, errAmbiguousRHS
	}

	m, err := matrix.NewBandedMatrix(sf.Diagonal, sf.Upper, sf.Lower)
	if err != nil {
		return system{}, err
	}
	if sf.RHS != nil {
		return system{m: m, rhs: sf.RHS}, nil
	}
	rhs, err := m.Multiply(sf.Solution)
	if err != nil {
		return system{}, fmt.Errorf("solution: %w", err)
	}

	return system{m: m, rhs: rhs, want: sf.Solution}, nil
}
