// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithEpsilon with strict validation (panic on nonsensical values),
//   - the resolver that picks a per-width default when no option is given.
//
// Notes:
//   - eps is RELATIVE for singularity: inversion gives up when the best
//     remaining pivot is <= eps times the largest cell of its original row,
//     so scaling rows never flips the verdict.
//   - eps is ABSOLUTE for EqualApprox: |a[i]-b[i]| <= eps for every cell.
package matrix

import (
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used for float64 matrices.
	DefaultEpsilon = 1e-12

	// DefaultEpsilon32 is the tolerance used for float32 matrices.
	DefaultEpsilon32 = 1e-6
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; build it
// with NewOptions or pass ...Option to the operations that accept it.
type Options struct {
	eps    float64 // >= 0
	epsSet bool    // false ⇒ width default applies
}

// WithEpsilon sets the numeric tolerance.
// Panics when eps is NaN, ±Inf or negative (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.epsSet = true
	}
}

// NewOptions applies opts in order over the zero configuration.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Epsilon reports the explicitly configured tolerance and whether one was set.
func (o Options) Epsilon() (float64, bool) { return o.eps, o.epsSet }

// epsilonFor resolves the tolerance for kind T.
func epsilonFor[T scalar.Float](opts []Option) float64 {
	o := NewOptions(opts...)
	if o.epsSet {
		return o.eps
	}
	if scalar.IsSingle[T]() {
		return DefaultEpsilon32
	}

	return DefaultEpsilon
}
