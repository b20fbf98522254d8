// SPDX-License-Identifier: MIT

package quadrature

import "errors"

// Sentinel errors. Every message is prefixed with "quadrature: "; callers
// match with errors.Is.
var (
	// ErrNilFunc indicates a nil weight or integrand.
	ErrNilFunc = errors.New("quadrature: nil function")

	// ErrBadInterval indicates a non-finite or empty interval/rectangle (a >= b).
	ErrBadInterval = errors.New("quadrature: invalid interval")

	// ErrZeroMass indicates the weight integrates to zero, so no one-point
	// rule exists (the node would be undefined).
	ErrZeroMass = errors.New("quadrature: weight has zero mass")

	// ErrNaNInf signals a non-finite moment or integral estimate.
	ErrNaNInf = errors.New("quadrature: NaN or Inf encountered")

	// ErrUnknownFunction is returned by the named-function lookups.
	ErrUnknownFunction = errors.New("quadrature: unknown function")
)
