// Package matrix is a numeric linear-algebra core generic over the element type.
//
// What & Why:
//
//	Every matrix carries a *numeric.Field[T] (a calc.Calculator plus cached
//	constants). The same kernels therefore run over int64, float64, *big.Int and
//	*big.Rat, or any user strategy, without a line of type-specific code.
//
// The package provides:
//
//   - Matrix[T]: the contract (Rows/Cols/At/Set/Clone/Field) shared by storage and views.
//   - Dense[T]: the owning row-major buffer.
//   - Minor[T], Submatrix[T]: non-owning views; writes through a view reach the parent.
//   - Kernels: Add, Sub, Mul, Neg, AddScalar, Scale, DivScalar, Transpose,
//     TransposeInPlace, Trace, SwapRows, SwapCols, Equal.
//   - FactorizeLUP (partial pivoting), DeterminantLUP, DeterminantPermutations,
//     InverseLUP (adjugate / determinant) and Solve.
//
// Exactness:
//
//	BigRat is exact everywhere. Integral strategies (Int64, BigInt) truncate on
//	division: their determinants stay exact (fraction-free elimination), but LUP
//	factors, solutions and inverses are not. Float64 compares with its epsilon,
//	which also decides when a pivot counts as zero.
//
// Errors:
//
//	All user-triggered failures are sentinel errors (errors.go) wrapped with the
//	operation tag; match them with errors.Is. Nothing is logged and nothing is
//	retried: the algorithms are deterministic.
//
// Concurrency:
//
//	Single-threaded. Nothing here locks. A matrix, and any view onto it, must be
//	used by one goroutine at a time; a view and its parent alias the same storage
//	even though they are distinct values.
//
// Complexity:
//
//	At/Set O(1); Add/Sub/scalar maps O(r*c); Mul O(r*n*c); FactorizeLUP and
//	DeterminantLUP O(n³); DeterminantPermutations O(n!·n); InverseLUP O(n⁵).
package matrix
