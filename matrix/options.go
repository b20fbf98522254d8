// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for banded construction and the
// tridiagonal solver. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Numeric policy (validateNaNInf) applies to NewBandedMatrix and Dense.Set.
//   - Solve policy (pivotTol, requireDominance, stats) applies to SolveTridiagonal.
//     Passing solve options to NewBandedMatrix is legal and has no effect.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultPivotTolerance is the magnitude at or below which a pivot counts
	// as zero. Zero means exact-zero detection only.
	DefaultPivotTolerance = 0.0

	// DefaultRequireDominance enforces the diagonal-dominance precondition
	// before elimination when true. Off by default: dominance is a documented
	// stability precondition, not a correctness requirement.
	DefaultRequireDominance = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicStatsNil        = "matrix: WithStats: stats must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	// numeric policy
	validateNaNInf bool // DefaultValidateNaNInf

	// solve policy
	pivotTol         float64     // DefaultPivotTolerance
	requireDominance bool        // DefaultRequireDominance
	stats            *SolveStats // nil ⇒ no instrumentation
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation (default).
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// NaN entries then propagate through Multiply and SolveTridiagonal unchanged.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithPivotTolerance sets the zero-pivot threshold: |pivot| <= tol is singular.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - tol = 0 keeps exact-zero detection. A small positive tol turns tiny
//     pivots into clean ErrSingularPivot failures instead of huge quotients.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithRequireDiagonalDominance makes SolveTridiagonal fail with
// ErrNotDiagonallyDominant when the matrix is not diagonally dominant.
func WithRequireDiagonalDominance() Option {
	return func(o *Options) { o.requireDominance = true }
}

// WithStats attaches a SolveStats sink. The solver resets it at the start
// of every call and fills it with operation counts.
// Panics on nil (programmer error).
func WithStats(s *SolveStats) Option {
	if s == nil {
		panic(panicStatsNil)
	}

	return func(o *Options) { o.stats = s }
}

// defaultOptions returns the documented defaults (single source of truth).
// Keep this in sync with constants above.
func defaultOptions() Options {
	return Options{
		validateNaNInf:   DefaultValidateNaNInf,
		pivotTol:         DefaultPivotTolerance,
		requireDominance: DefaultRequireDominance,
	}
}

// gatherOptions applies user options over defaults in order (last writer wins).
// Nil options are skipped.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
