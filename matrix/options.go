// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the largest |pivot| LU still treats as zero.
	// 0 means only an exactly-zero column is singular.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf rejects NaN/±Inf values when building from rows.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; use WithX.
type Options struct {
	pivotTol       float64
	validateNaNInf bool
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults, in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithPivotTolerance sets the singular-pivot threshold used by LU and Det.
// A pivot p with |p| <= tol makes the matrix singular (Det returns 0).
// Panics if tol is negative, NaN or ±Inf.
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf toggles NaN/±Inf rejection in NewFromRows.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}
