// SPDX-License-Identifier: MIT

package numeric

import "github.com/katalvlaran/lvlinalg/calc"

// smallIntCache is the number of non-negative integer constants kept per Field (0..10).
const smallIntCache = 11

// Field is a calculator plus its cached named constants.
//
// Cached values are shared between callers. This is safe because calculators
// never mutate operands; callers that mutate pointer-like values in place must
// take a Copy first.
type Field[T any] struct {
	calc     calc.Calculator[T]
	nanCheck calc.NaNChecker[T] // nil when the strategy has no sentinels
	integral calc.Integral[T]   // nil when the strategy is not integral
	minusOne T
	ints     [smallIntCache]T
}

// NewField binds c and computes the constant table once.
// Panics if c is nil.
// Complexity: O(smallIntCache) strategy conversions.
func NewField[T any](c calc.Calculator[T]) *Field[T] {
	if c == nil {
		panic("numeric: NewField(nil)")
	}
	f := &Field[T]{calc: c}
	f.nanCheck, _ = c.(calc.NaNChecker[T])
	f.integral, _ = c.(calc.Integral[T])
	f.ints[0] = c.Zero()
	for i := 1; i < smallIntCache; i++ {
		f.ints[i] = c.FromInt(i)
	}
	f.minusOne = c.Neg(f.ints[1])

	return f
}

// Calculator returns the bound strategy.
func (f *Field[T]) Calculator() calc.Calculator[T] { return f.calc }

// New wraps v.
func (f *Field[T]) New(v T) Number[T] { return Number[T]{v: v, f: f} }

// Zero returns the additive identity.
func (f *Field[T]) Zero() Number[T] { return f.New(f.ints[0]) }

// One returns the multiplicative identity.
func (f *Field[T]) One() Number[T] { return f.New(f.ints[1]) }

// Two returns 2.
func (f *Field[T]) Two() Number[T] { return f.New(f.ints[2]) }

// MinusOne returns -1.
func (f *Field[T]) MinusOne() Number[T] { return f.New(f.minusOne) }

// Int returns n, from the cache when 0 <= n <= 10.
func (f *Field[T]) Int(n int) Number[T] {
	if n >= 0 && n < smallIntCache {
		return f.New(f.ints[n])
	}

	return f.New(f.calc.FromInt(n))
}

// ZeroValue and OneValue return the raw cached constants for hot loops.
func (f *Field[T]) ZeroValue() T { return f.ints[0] }
func (f *Field[T]) OneValue() T  { return f.ints[1] }

// IsZero reports whether v equals the additive identity under the strategy.
func (f *Field[T]) IsZero(v T) bool { return f.calc.Equal(v, f.ints[0]) }

// IsNaN reports v is NaN; always false for strategies without sentinels.
func (f *Field[T]) IsNaN(v T) bool { return f.nanCheck != nil && f.nanCheck.IsNaN(v) }

// IsInf reports v is ±Inf; always false for strategies without sentinels.
func (f *Field[T]) IsInf(v T) bool { return f.nanCheck != nil && f.nanCheck.IsInf(v) }

// IsFinite reports !IsNaN(v) && !IsInf(v).
func (f *Field[T]) IsFinite(v T) bool { return !f.IsNaN(v) && !f.IsInf(v) }

// Integral reports whether the strategy supports integral queries.
func (f *Field[T]) Integral() bool { return f.integral != nil }
