// SPDX-License-Identifier: MIT

// Package quadrature: functional options for the Gauss rule and the adaptive
// 2-D integrator. Constructors panic only on nonsensical values (programmer
// error); everything else is reported through returned errors.
package quadrature

import "math"

// Defaults (single source of truth).
const (
	// DefaultMomentNodes is the Gauss–Legendre order used to integrate the
	// weight moments in NewOnePointRule.
	DefaultMomentNodes = 64

	// DefaultTolerance is the absolute acceptance threshold of Integrate2D
	// at the root cell; each refinement level divides it by four.
	DefaultTolerance = 1e-6

	// DefaultMaxDepth caps the subdivision depth of Integrate2D.
	DefaultMaxDepth = 12
)

const (
	panicNodesInvalid = "quadrature: WithMomentNodes: n must be >= 1"
	panicTolInvalid   = "quadrature: WithTolerance: tol must be finite and > 0"
	panicDepthInvalid = "quadrature: WithMaxDepth: depth must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	momentNodes int
	tol         float64
	maxDepth    int
}

// WithMomentNodes sets the Gauss–Legendre order for moment integration.
func WithMomentNodes(n int) Option {
	if n < 1 {
		panic(panicNodesInvalid)
	}

	return func(o *Options) { o.momentNodes = n }
}

// WithTolerance sets the root acceptance tolerance of Integrate2D.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxDepth sets the maximum subdivision depth of Integrate2D.
func WithMaxDepth(depth int) Option {
	if depth < 1 {
		panic(panicDepthInvalid)
	}

	return func(o *Options) { o.maxDepth = depth }
}

// gatherOptions applies user options over defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		momentNodes: DefaultMomentNodes,
		tol:         DefaultTolerance,
		maxDepth:    DefaultMaxDepth,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
