// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"
)

// Rect is the axis-aligned rectangle [X0, X1] × [Y0, Y1].
type Rect struct {
	X0, X1 float64
	Y0, Y1 float64
}

// Area returns (X1-X0)·(Y1-Y0).
func (r Rect) Area() float64 { return (r.X1 - r.X0) * (r.Y1 - r.Y0) }

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return (r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2
}

// Quadrants splits r at its center, ordered SW, SE, NW, NE.
func (r Rect) Quadrants() [4]Rect {
	xm, ym := r.Center()

	return [4]Rect{
		{X0: r.X0, X1: xm, Y0: r.Y0, Y1: ym},
		{X0: xm, X1: r.X1, Y0: r.Y0, Y1: ym},
		{X0: r.X0, X1: xm, Y0: ym, Y1: r.Y1},
		{X0: xm, X1: r.X1, Y0: ym, Y1: r.Y1},
	}
}

func (r Rect) validate() error {
	for _, v := range [...]float64{r.X0, r.X1, r.Y0, r.Y1} {
		if !isFinite(v) {
			return fmt.Errorf("rect %+v: %w", r, ErrBadInterval)
		}
	}
	if r.X0 >= r.X1 || r.Y0 >= r.Y1 {
		return fmt.Errorf("rect %+v: %w", r, ErrBadInterval)
	}

	return nil
}

// Result summarizes one Integrate2D run.
type Result struct {
	Value       float64 // integral estimate
	Evaluations int     // integrand calls
	Cells       int     // accepted leaf cells
	MaxDepth    int     // deepest subdivision level among accepted cells
	Converged   bool    // false if any cell was accepted at the depth cap
}

// Integrate2D approximates ∫∫_r f(x, y) dA with a recursive adaptive
// midpoint rule.
//
// Implementation:
//   - Stage 1: coarse = area(r)·f(center(r)).
//   - Stage 2: fine = Σ over the four quadrants of area·f(center).
//   - Stage 3: if |fine − coarse| ≤ tol accept fine; otherwise recurse into
//     each quadrant with tol/4, reusing the quadrant's midpoint value as its
//     coarse estimate.
//   - At WithMaxDepth the fine estimate is accepted and Converged is false.
//
// Errors: ErrNilFunc, ErrBadInterval, ErrNaNInf (non-finite estimate).
// Complexity: 1 + 4·(refined cells) integrand evaluations.
func Integrate2D(f func(x, y float64) float64, r Rect, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if err := r.validate(); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts...)

	s := &adaptState{f: f, maxDepth: o.maxDepth, res: Result{Converged: true}}
	coarse := s.eval(r)
	s.res.Value = s.refine(r, coarse, o.tol, 0)

	if !isFinite(s.res.Value) {
		return s.res, fmt.Errorf("estimate %g: %w", s.res.Value, ErrNaNInf)
	}

	return s.res, nil
}

// adaptState carries the integrand and counters through one recursion.
type adaptState struct {
	f        func(x, y float64) float64
	maxDepth int
	res      Result
}

// eval returns the midpoint-rule value of cell c.
func (s *adaptState) eval(c Rect) float64 {
	s.res.Evaluations++
	x, y := c.Center()

	return c.Area() * s.f(x, y)
}

// refine compares cell c's coarse value against its four-quadrant value.
// depth is the level of c (root = 0); its quadrants live at depth+1.
func (s *adaptState) refine(c Rect, coarse, tol float64, depth int) float64 {
	q := c.Quadrants()
	var parts [4]float64
	fine := 0.0
	for k := range q {
		parts[k] = s.eval(q[k])
		fine += parts[k]
	}

	level := depth + 1
	if math.Abs(fine-coarse) <= tol || level >= s.maxDepth {
		if math.Abs(fine-coarse) > tol {
			s.res.Converged = false
		}
		s.res.Cells += 4
		if level > s.res.MaxDepth {
			s.res.MaxDepth = level
		}

		return fine
	}

	sum := 0.0
	for k := range q {
		sum += s.refine(q[k], parts[k], tol/4, level)
	}

	return sum
}
