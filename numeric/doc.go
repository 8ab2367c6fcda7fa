// SPDX-License-Identifier: MIT

// Package numeric pairs raw values with their arithmetic strategy.
//
// A Field binds a calc.Calculator and precomputes the constants the engine needs
// over and over (zero, one, two, minus one, small integers). Fields are created
// explicitly and passed to matrix constructors; there is no per-type global.
//
// Number is an immutable value type: every operation returns a new Number and
// comparisons go through the strategy, never through Go's == on the raw value.
package numeric
