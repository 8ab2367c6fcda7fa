// SPDX-License-Identifier: MIT

// Package calc defines the arithmetic strategy ("calculator") contract that the
// lvlinalg engine runs on, together with four ready-made strategies.
//
// What & Why:
//
//	Every algorithm in lvlinalg (dense kernels, LUP, determinants, inverse) is written
//	once against Calculator[T] and never against a concrete number type. Plugging in a
//	different calculator switches the whole engine between exact integers, IEEE-754
//	doubles, arbitrary precision integers and exact rationals.
//
// Strategies:
//
//	Int64   — machine integers; truncating division; implements Integral.
//	Float64 — doubles with an optional equality tolerance; implements NaNChecker.
//	BigInt  — *big.Int; truncating division; implements Integral.
//	BigRat  — *big.Rat; exact division.
//
// Contract:
//   - Operations never mutate their operands. Pointer-like values (*big.Int, *big.Rat)
//     are always returned as fresh allocations, so values may be shared freely.
//   - Greater is a strict comparison; Equal is strategy-defined (Float64 may use a tolerance).
//   - Division by the additive identity is not checked here: Float64 yields ±Inf/NaN,
//     the integer and big strategies panic the way the Go runtime and math/big do.
//
// Optional capabilities are discovered by type assertion:
//
//	if nc, ok := c.(calc.NaNChecker[float64]); ok { ... }
package calc
