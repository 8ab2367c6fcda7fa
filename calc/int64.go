// SPDX-License-Identifier: MIT

package calc

// Int64 is the exact machine-integer strategy.
// Div truncates toward zero; a zero divisor panics (Go runtime semantics).
// Overflow wraps as in plain Go arithmetic.
type Int64 struct{}

func (Int64) Add(a, b int64) int64 { return a + b }
func (Int64) Sub(a, b int64) int64 { return a - b }
func (Int64) Mul(a, b int64) int64 { return a * b }
func (Int64) Div(a, b int64) int64 { return a / b }
func (Int64) Neg(a int64) int64    { return -a }

// Greater reports a > b.
func (Int64) Greater(a, b int64) bool { return a > b }

// Equal reports a == b.
func (Int64) Equal(a, b int64) bool { return a == b }

// Abs returns |a|. math.MinInt64 stays negative (two's complement).
func (Int64) Abs(a int64) int64 {
	if a < 0 {
		return -a
	}

	return a
}

func (Int64) Zero() int64         { return 0 }
func (Int64) Copy(a int64) int64  { return a }
func (Int64) FromInt(n int) int64 { return int64(n) }
func (Int64) IsEven(a int64) bool { return a%2 == 0 }
