// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - Options live on each Dense and are inherited by every value derived from
//     it (Clone, Move, Transpose, Minor, Sum, Product, ...). Binary operations
//     take the policy of their left operand.
//   - Epsilon drives both Equal (|a-b| <= eps) and the singularity test in
//     Inverse (|det| < eps).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by Equal and Inverse.
	DefaultEpsilon = 1e-7

	// DefaultEliminationThreshold is the smallest order for which Determinant
	// switches from Laplace expansion to Gaussian elimination.
	DefaultEliminationThreshold = 6

	// minEliminationThreshold keeps the 1×1 and 2×2 closed forms reachable.
	minEliminationThreshold = 3
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicThresholdInvalid = "matrix: WithEliminationThreshold: n must be >= 3"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved numeric policy of a Dense.
type Options struct {
	eps                  float64 // equality / singularity tolerance
	eliminationThreshold int     // n >= threshold uses Gaussian elimination
}

// Epsilon returns the configured tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// EliminationThreshold returns the Laplace/elimination cut-over order.
func (o Options) EliminationThreshold() int { return o.eliminationThreshold }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:                  DefaultEpsilon,
		eliminationThreshold: DefaultEliminationThreshold,
	}
}

// WithEpsilon sets the tolerance used by Equal and Inverse.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithEliminationThreshold sets the order from which Determinant uses
// Gaussian elimination instead of recursive Laplace expansion.
// Panics if n < 3.
func WithEliminationThreshold(n int) Option {
	if n < minEliminationThreshold {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.eliminationThreshold = n }
}

// gatherOptions applies opts on top of the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
