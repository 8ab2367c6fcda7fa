// SPDX-License-Identifier: MIT

package calc

import "math"

// Float64 is the IEEE-754 double strategy.
//
// Behavior highlights:
//   - Div by zero yields ±Inf or NaN; nothing panics.
//   - Equal compares with an absolute tolerance (see WithEpsilon). Two identical values,
//     including equal infinities, are always equal; NaN is never equal to anything.
//   - IsNaN/IsInf expose the sentinels so factorization can detect blow-ups.
type Float64 struct {
	eps float64
}

// NewFloat64 returns a Float64 strategy configured by opts.
func NewFloat64(opts ...Option) Float64 {
	o := gatherOptions(opts...)

	return Float64{eps: o.epsilon}
}

// Epsilon returns the configured equality tolerance.
func (c Float64) Epsilon() float64 { return c.eps }

func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Sub(a, b float64) float64 { return a - b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Div(a, b float64) float64 { return a / b }
func (Float64) Neg(a float64) float64    { return -a }

// Greater reports a > b. Any comparison with NaN is false.
func (Float64) Greater(a, b float64) bool { return a > b }

// Equal reports |a-b| <= eps.
func (c Float64) Equal(a, b float64) bool {
	if a == b {
		return true
	}
	if c.eps == 0 {
		return false
	}

	return math.Abs(a-b) <= c.eps
}

func (Float64) Abs(a float64) float64  { return math.Abs(a) }
func (Float64) Zero() float64          { return 0 }
func (Float64) Copy(a float64) float64 { return a }
func (Float64) FromInt(n int) float64  { return float64(n) }
func (Float64) IsNaN(a float64) bool   { return math.IsNaN(a) }
func (Float64) IsInf(a float64) bool   { return math.IsInf(a, 0) }
