// SPDX-License-Identifier: MIT

package calc

// Calculator is the capability set the matrix engine consumes for a value type T.
// Implementations are stateless (or configured once) and safe to share.
//
// Complexity: every method is expected O(1) for fixed-width types and
// O(size of operands) for arbitrary precision ones.
type Calculator[T any] interface {
	// Add returns a + b.
	Add(a, b T) T

	// Sub returns a - b.
	Sub(a, b T) T

	// Mul returns a * b.
	Mul(a, b T) T

	// Div returns a / b. Division by Zero() is strategy-defined.
	Div(a, b T) T

	// Neg returns -a.
	Neg(a T) T

	// Greater reports a > b (strict).
	Greater(a, b T) bool

	// Equal reports whether a and b are equal under the strategy.
	Equal(a, b T) bool

	// Abs returns |a|.
	Abs(a T) T

	// Zero returns the additive identity.
	Zero() T

	// Copy returns a value independent of a (deep for pointer-like types).
	Copy(a T) T

	// FromInt converts a small integer literal into T.
	FromInt(n int) T
}

// NaNChecker is implemented by strategies that have NaN and infinity sentinels.
type NaNChecker[T any] interface {
	IsNaN(a T) bool
	IsInf(a T) bool
}

// Integral is implemented by strategies over integral values.
type Integral[T any] interface {
	IsEven(a T) bool
}

// Compile-time conformance checks.
var (
	_ Calculator[int64]   = Int64{}
	_ Integral[int64]     = Int64{}
	_ Calculator[float64] = Float64{}
	_ NaNChecker[float64] = Float64{}
)
