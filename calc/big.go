// SPDX-License-Identifier: MIT

package calc

import "math/big"

// BigInt is the arbitrary precision integer strategy over *big.Int.
// Every result is a fresh *big.Int; operands are never modified.
// Div truncates toward zero (big.Int.Quo) and panics on a zero divisor.
type BigInt struct{}

// Compile-time conformance checks.
var (
	_ Calculator[*big.Int] = BigInt{}
	_ Integral[*big.Int]   = BigInt{}
	_ Calculator[*big.Rat] = BigRat{}
)

func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (BigInt) Div(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }
func (BigInt) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(a) }
func (BigInt) Abs(a *big.Int) *big.Int    { return new(big.Int).Abs(a) }
func (BigInt) Zero() *big.Int             { return new(big.Int) }
func (BigInt) Copy(a *big.Int) *big.Int   { return new(big.Int).Set(a) }
func (BigInt) FromInt(n int) *big.Int     { return big.NewInt(int64(n)) }
func (BigInt) IsEven(a *big.Int) bool     { return a.Bit(0) == 0 }

// Greater reports a > b.
func (BigInt) Greater(a, b *big.Int) bool { return a.Cmp(b) > 0 }

// Equal reports a == b.
func (BigInt) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

// BigRat is the exact rational strategy over *big.Rat.
// It has no NaN or infinity; Div panics on a zero divisor (math/big policy).
type BigRat struct{}

func (BigRat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (BigRat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (BigRat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (BigRat) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }
func (BigRat) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (BigRat) Abs(a *big.Rat) *big.Rat    { return new(big.Rat).Abs(a) }
func (BigRat) Zero() *big.Rat             { return new(big.Rat) }
func (BigRat) Copy(a *big.Rat) *big.Rat   { return new(big.Rat).Set(a) }
func (BigRat) FromInt(n int) *big.Rat     { return new(big.Rat).SetInt64(int64(n)) }

// Greater reports a > b.
func (BigRat) Greater(a, b *big.Rat) bool { return a.Cmp(b) > 0 }

// Equal reports a == b.
func (BigRat) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// RatFromFrac is a small helper building num/den as a *big.Rat.
// Panics if den == 0.
func RatFromFrac(num, den int64) *big.Rat { return big.NewRat(num, den) }
