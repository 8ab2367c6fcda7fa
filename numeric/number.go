// SPDX-License-Identifier: MIT

package numeric

import "fmt"

// Number is a raw value paired with its Field.
// The zero Number has no field and must not be used for arithmetic.
//
// Binary operations use the receiver's field; mixing Numbers from different
// fields of the same T is allowed but the receiver's strategy decides.
type Number[T any] struct {
	v T
	f *Field[T]
}

// Value returns the raw value (no copy).
func (n Number[T]) Value() T { return n.v }

// Field returns the bound field.
func (n Number[T]) Field() *Field[T] { return n.f }

// Add returns n + o.
func (n Number[T]) Add(o Number[T]) Number[T] { return n.f.New(n.f.calc.Add(n.v, o.v)) }

// Sub returns n - o.
func (n Number[T]) Sub(o Number[T]) Number[T] { return n.f.New(n.f.calc.Sub(n.v, o.v)) }

// Mul returns n * o.
func (n Number[T]) Mul(o Number[T]) Number[T] { return n.f.New(n.f.calc.Mul(n.v, o.v)) }

// Div returns n / o. Division by zero is strategy-defined.
func (n Number[T]) Div(o Number[T]) Number[T] { return n.f.New(n.f.calc.Div(n.v, o.v)) }

// Neg returns -n.
func (n Number[T]) Neg() Number[T] { return n.f.New(n.f.calc.Neg(n.v)) }

// Abs returns |n|.
func (n Number[T]) Abs() Number[T] { return n.f.New(n.f.calc.Abs(n.v)) }

// Copy returns a Number holding an independent copy of the value.
func (n Number[T]) Copy() Number[T] { return n.f.New(n.f.calc.Copy(n.v)) }

// Equal reports n == o under the strategy.
func (n Number[T]) Equal(o Number[T]) bool { return n.f.calc.Equal(n.v, o.v) }

// Greater reports n > o.
func (n Number[T]) Greater(o Number[T]) bool { return n.f.calc.Greater(n.v, o.v) }

// Less reports n < o.
func (n Number[T]) Less(o Number[T]) bool { return n.f.calc.Greater(o.v, n.v) }

// GreaterOrEqual reports n >= o.
func (n Number[T]) GreaterOrEqual(o Number[T]) bool { return n.Greater(o) || n.Equal(o) }

// LessOrEqual reports n <= o.
func (n Number[T]) LessOrEqual(o Number[T]) bool { return n.Less(o) || n.Equal(o) }

// Cmp returns -1, 0 or +1. Equality is tested first so tolerant strategies
// report 0 for values within their tolerance. Unordered values (NaN) report 0.
func (n Number[T]) Cmp(o Number[T]) int {
	switch {
	case n.Equal(o):
		return 0
	case n.Greater(o):
		return 1
	case n.Less(o):
		return -1
	default:
		return 0
	}
}

// Sign returns the sign of n relative to zero.
func (n Number[T]) Sign() int { return n.Cmp(n.f.Zero()) }

// IsZero reports n == 0 under the strategy.
func (n Number[T]) IsZero() bool { return n.f.IsZero(n.v) }

// IsNaN forwards to the strategy; false when it has no NaN.
func (n Number[T]) IsNaN() bool { return n.f.IsNaN(n.v) }

// IsInf forwards to the strategy; false when it has no infinities.
func (n Number[T]) IsInf() bool { return n.f.IsInf(n.v) }

// IsEven reports whether n is even.
// Returns ErrNotInteger when the strategy is not integral.
func (n Number[T]) IsEven() (bool, error) {
	if n.f.integral == nil {
		return false, fmt.Errorf("Number.IsEven: %w", ErrNotInteger)
	}

	return n.f.integral.IsEven(n.v), nil
}

// String formats the raw value with %v.
func (n Number[T]) String() string { return fmt.Sprintf("%v", n.v) }
