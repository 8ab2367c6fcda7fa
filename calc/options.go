// SPDX-License-Identifier: MIT

// Package calc: functional options for configurable strategies.
//
// Design goals:
//   - Deterministic behavior: no global state; every strategy value carries its own settings.
//   - Safe by construction: panic only on nonsensical parameters (programmer error).
package calc

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the Float64 equality tolerance used when no option is given.
// Zero means exact IEEE-754 comparison.
const DefaultEpsilon = 0.0

// Options holds the resolved configuration of a configurable strategy.
type Options struct {
	epsilon float64 // absolute tolerance for Equal (>= 0, finite)
}

// Option mutates Options.
type Option func(*Options)

// WithEpsilon sets the absolute tolerance used by Float64.Equal.
// Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("calc: WithEpsilon(%v): tolerance must be finite and non-negative", eps))
	}

	return func(o *Options) { o.epsilon = eps }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{epsilon: DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
