// SPDX-License-Identifier: MIT

// Package elimination: functional configuration for Eliminate. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Observational flags (trace) never change results.
package elimination

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTrace disables the per-step log; Result.Steps() is empty.
	DefaultTrace = false

	// DefaultVerify skips the Left·A·Right == Matrix re-check.
	DefaultVerify = false

	// DefaultMaxSteps = 0 means no limit on elementary operations.
	DefaultMaxSteps = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const panicMaxStepsNegative = "elimination: WithMaxSteps: n must be >= 0"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	trace    bool // DefaultTrace
	verify   bool // DefaultVerify
	maxSteps int  // DefaultMaxSteps; 0 = unlimited
}

// ---------- Constructors (WithX) ----------

// WithTrace records every elementary operation together with the pivot being
// processed, exposes them through Result.Steps() and logs each at debug level.
// Results are identical with and without tracing.
func WithTrace() Option {
	return func(o *Options) { o.trace = true }
}

// WithoutTrace restores the default (no step log). Last writer wins.
func WithoutTrace() Option {
	return func(o *Options) { o.trace = false }
}

// WithVerify makes Eliminate recompute Left·A·Right and compare it with the
// normal form before returning; a mismatch yields ErrVerificationFailed.
// Complexity: one extra pair of sparse products per call.
func WithVerify() Option {
	return func(o *Options) { o.verify = true }
}

// WithMaxSteps bounds the number of elementary operations; exceeding it
// aborts with ErrStepLimit. n = 0 removes the bound.
// Panics if n < 0.
//
// AI-Hints: a safety valve for rings whose Degree is not a true Euclidean
// function; well-behaved rings never need it.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic(panicMaxStepsNegative)
	}

	return func(o *Options) { o.maxSteps = n }
}

// gatherOptions applies user setters on top of the documented defaults.
// Last-writer-wins semantics.
func gatherOptions(user ...Option) Options {
	o := Options{
		trace:    DefaultTrace,
		verify:   DefaultVerify,
		maxSteps: DefaultMaxSteps,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
