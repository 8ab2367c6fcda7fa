// Package lvlinalg is a small linear-algebra core that works over any number
// system you can describe with a handful of arithmetic operations: machine
// integers, float64 with a comparison tolerance, arbitrary-precision integers
// and exact rationals.
//
// 🚀 What is lvlinalg?
//
//	A pure-Go, generics-based library that brings together:
//		• Strategies: calc.Int64, calc.Float64, calc.BigInt, calc.BigRat (or your own)
//		• Numbers: numeric.Field / numeric.Number wrap a value with its strategy
//		• Matrices: matrix.Dense plus write-through Minor and Submatrix views
//		• Kernels: add, multiply, transpose, trace, row/column swaps
//		• Factorization: LUP with partial pivoting, linear solves
//		• Determinants: LUP-based (O(n³)) and permutation expansion (O(n!·n))
//		• Inverse: cofactor/adjugate through minor views
//
// ✨ Why choose lvlinalg?
//
//   - One algorithm, many number systems – the same LUP runs on float64 and *big.Rat
//   - Exact when you need it – BigRat gives exact determinants and inverses
//   - Explicit errors – sentinel errors matched with errors.Is, no panics on bad input
//   - Views, not copies – minors and windows alias their parent
//
// Packages:
//
//	calc/          — Calculator[T] contract and the built-in strategies
//	numeric/       — Field[T] (strategy + cached constants) and Number[T]
//	matrix/        — Matrix[T], Dense, views, kernels, LUP, determinants, inverse
//	cmd/matcheck/  — randomized cross-checks of the algorithms from the command line
//
// Quick example:
//
//	f := numeric.NewField[*big.Rat](calc.BigRat{})
//	A, _ := matrix.NewFromInts(f, [][]int{{4, 3}, {6, 3}})
//	inv, _ := matrix.InverseLUP[*big.Rat](A) // [[-1/2, 1/2], [1, -2/3]]
//
//	go get github.com/katalvlaran/lvlinalg
package lvlinalg
