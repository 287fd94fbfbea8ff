// SPDX-License-Identifier: MIT

// Package rref: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithEpsilon constructor with strong validation (panic on nonsensical
//     values — programmer error, never user input),
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package rref

import "math"

// DefaultEpsilon is the absolute tolerance below which a value is treated as
// exactly zero, and within which a value is considered already equal to 1
// when testing whether a row is normalized. It is applied as-is (absolute,
// not relative to magnitude).
const DefaultEpsilon = 1e-15

// panicEpsilonInvalid is the stable message for an invalid WithEpsilon value.
const panicEpsilonInvalid = "rref: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept ...Option and resolve them via gatherOptions.
type Options struct {
	eps float64 // ≥ 0; DefaultEpsilon
}

// WithEpsilon sets the absolute tolerance used by the pivot search,
// elimination skip tests and IsReduced.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Larger eps relaxes both the ≈0 and ≈1 classifications; a row whose
//     entries are all below eps is treated as a zero row.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user-provided Option setters on top of the
// documented defaults (last-writer-wins). This is the canonical internal
// entry used by every public operation.
// Complexity: O(k) for k = len(user).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
