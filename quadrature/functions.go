// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"
	"sort"
)

// Named weights, 1-D integrands and 2-D integrands used by the CLI and tests.
var (
	weights = map[string]func(float64) float64{
		"one":     func(float64) float64 { return 1 },
		"x":       func(x float64) float64 { return x },
		"sqrt":    math.Sqrt,
		"exp-neg": func(x float64) float64 { return math.Exp(-x) },
	}

	integrands1D = map[string]func(float64) float64{
		"one":    func(float64) float64 { return 1 },
		"linear": func(x float64) float64 { return 2*x + 1 },
		"square": func(x float64) float64 { return x * x },
		"cube":   func(x float64) float64 { return x * x * x },
		"cos":    math.Cos,
		"exp":    math.Exp,
	}

	integrands2D = map[string]func(x, y float64) float64{
		"xy":            func(x, y float64) float64 { return x * y },
		"paraboloid":    func(x, y float64) float64 { return x*x + y*y },
		"gaussian-bump": func(x, y float64) float64 { return math.Exp(-(x*x + y*y)) },
		"peak":          func(x, y float64) float64 { return 1 / (0.01 + x*x + y*y) },
		"sin-product":   func(x, y float64) float64 { return math.Sin(math.Pi*x) * math.Sin(math.Pi*y) },
	}
)

// Weight returns the named weight function.
func Weight(name string) (func(float64) float64, error) {
	if w, ok := weights[name]; ok {
		return w, nil
	}

	return nil, fmt.Errorf("weight %q: %w", name, ErrUnknownFunction)
}

// Integrand1D returns the named 1-D integrand.
func Integrand1D(name string) (func(float64) float64, error) {
	if f, ok := integrands1D[name]; ok {
		return f, nil
	}

	return nil, fmt.Errorf("integrand %q: %w", name, ErrUnknownFunction)
}

// Integrand2D returns the named 2-D integrand.
func Integrand2D(name string) (func(x, y float64) float64, error) {
	if f, ok := integrands2D[name]; ok {
		return f, nil
	}

	return nil, fmt.Errorf("integrand %q: %w", name, ErrUnknownFunction)
}

// WeightNames lists the registered weights in sorted order.
func WeightNames() []string { return sortedKeys(weights) }

// Integrand1DNames lists the registered 1-D integrands in sorted order.
func Integrand1DNames() []string { return sortedKeys(integrands1D) }

// Integrand2DNames lists the registered 2-D integrands in sorted order.
func Integrand2DNames() []string { return sortedKeys(integrands2D) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
