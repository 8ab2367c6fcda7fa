// SPDX-License-Identifier: MIT

// Package matrix - LUP factorization with partial pivoting.
//
// Purpose:
//   - Factor a square A into P·A = L·U on a working copy, for any strategy.
//   - Serve the determinant, the inverse and linear-system solving.
//
// Policy:
//   - Pivot = largest |C[row][i]| for row ≥ i; ties keep the first (smallest row).
//   - A zero pivot column, or a division producing NaN/±Inf, aborts with ErrSingular.
//   - The input is read through the Matrix contract only (views are fine) and never mutated.
//
// Layout of the result:
//   - C holds L and U superimposed (L's unit diagonal is implicit): C = L + U − I.
//   - perm[i] is the ORIGINAL row index that ended up at position i.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
)

const (
	opLUP   = "LUP"
	opSolve = "Solve"
)

// LUP is the result of FactorizeLUP.
type LUP[T any] struct {
	lu   *Dense[T] // L+U−I, n×n
	perm []int     // perm[i] = original row now at i
}

// FactorizeLUP runs partial-pivot LUP factorization on a working copy of m.
//
// Implementation:
//
//	P = [0..n-1]; C = copy(A)
//	for i in 0..n:
//	    pick the first row ≥ i with the largest |C[row][i]|; zero ⇒ ErrSingular
//	    swap P[i]↔P[pivot] and rows i↔pivot of C
//	    for j in i+1..n:
//	        C[j][i] /= C[i][i]; NaN/Inf ⇒ ErrSingular
//	        for k in i+1..n: C[j][k] -= C[j][i]·C[i][k]
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Integer strategies truncate on division, so their factors are not exact.
//     Use BigRat or Float64 when the factors matter.
func FactorizeLUP[T any](m Matrix[T]) (*LUP[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	n := m.Rows()
	f := m.Field()
	c := f.Calculator()
	lu := materialize(m)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, row, pivotRow int
		pivotValue, a, ratio   T
		baseI, baseJ           int
	)
	for i = 0; i < n; i++ {
		// Stage 1: pivot search (strict > keeps the first maximum).
		pivotValue = c.Zero()
		pivotRow = -1
		for row = i; row < n; row++ {
			a = c.Abs(lu.data[row*n+i])
			if c.Greater(a, pivotValue) {
				pivotValue = a
				pivotRow = row
			}
		}
		if pivotRow < 0 || f.IsZero(pivotValue) {
			return nil, matrixErrorf(opLUP, fmt.Errorf("zero pivot column %d: %w", i, ErrSingular))
		}

		// Stage 2: row exchange.
		if pivotRow != i {
			perm[i], perm[pivotRow] = perm[pivotRow], perm[i]
			swapRows[T](lu, i, pivotRow)
		}

		// Stage 3: eliminate below the pivot.
		baseI = i * n
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			ratio = c.Div(lu.data[baseJ+i], lu.data[baseI+i])
			if !f.IsFinite(ratio) {
				return nil, matrixErrorf(opLUP, fmt.Errorf("non-finite multiplier at (%d,%d): %w", j, i, ErrSingular))
			}
			lu.data[baseJ+i] = ratio
			for k = i + 1; k < n; k++ {
				lu.data[baseJ+k] = c.Sub(lu.data[baseJ+k], c.Mul(ratio, lu.data[baseI+k]))
			}
		}
	}

	return &LUP[T]{lu: lu, perm: perm}, nil
}

// Order returns n.
func (d *LUP[T]) Order() int { return d.lu.r }

// Combined returns a copy of C = L + U − I.
func (d *LUP[T]) Combined() *Dense[T] { return d.lu.clone() }

// Perm returns a copy of P (P[i] = original row index now at position i).
func (d *LUP[T]) Perm() []int {
	out := make([]int, len(d.perm))
	copy(out, d.perm)

	return out
}

// L returns the unit lower-triangular factor (ones on the diagonal, zeros above).
func (d *LUP[T]) L() *Dense[T] {
	n := d.lu.r
	c := d.lu.f.Calculator()
	out := newDenseRaw(d.lu.f, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case j < i:
				out.data[i*n+j] = d.lu.data[i*n+j]
			case j == i:
				out.data[i*n+j] = c.FromInt(1)
			default:
				out.data[i*n+j] = c.Zero()
			}
		}
	}

	return out
}

// U returns the upper-triangular factor (zeros below the diagonal).
func (d *LUP[T]) U() *Dense[T] {
	n := d.lu.r
	c := d.lu.f.Calculator()
	out := newDenseRaw(d.lu.f, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j < i {
				out.data[i*n+j] = c.Zero()
			} else {
				out.data[i*n+j] = d.lu.data[i*n+j]
			}
		}
	}

	return out
}

// PermutationMatrix returns P as a 0/1 matrix with P·A = L·U:
// row i has its one in column perm[i].
func (d *LUP[T]) PermutationMatrix() *Dense[T] {
	n := d.lu.r
	out, _ := newDenseZeroOK(d.lu.f, n, n) // n ≥ 0, never fails
	c := d.lu.f.Calculator()
	for i, p := range d.perm {
		out.data[i*n+p] = c.FromInt(1)
	}

	return out
}

// Parity returns +1 when P has an even number of inversions, −1 otherwise.
func (d *LUP[T]) Parity() int { return permutationSign(d.perm) }

// Det returns det(A) = Π C[i][i] · (−1)^(inversions of P).
// The order-0 factorization has determinant zero, matching DeterminantLUP.
func (d *LUP[T]) Det() numeric.Number[T] {
	f := d.lu.f
	c := f.Calculator()
	n := d.lu.r
	if n == 0 {
		return f.Zero()
	}
	prod := c.FromInt(1)
	for i := 0; i < n; i++ {
		prod = c.Mul(prod, d.lu.data[i*n+i])
	}
	if d.Parity() < 0 {
		prod = c.Neg(prod)
	}

	return f.New(prod)
}

// Solve returns x with A·x = b using the stored factors
// (forward substitution on L, back substitution on U).
// Errors: ErrDimensionMismatch (len(b) != n). Complexity: O(n²).
func (d *LUP[T]) Solve(b []T) ([]T, error) {
	n := d.lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	c := d.lu.f.Calculator()
	x := make([]T, n)

	// Forward substitution: L·y = P·b (y stored in x).
	var (
		i, k int
		sum  T
	)
	for i = 0; i < n; i++ {
		sum = b[d.perm[i]]
		for k = 0; k < i; k++ {
			sum = c.Sub(sum, c.Mul(d.lu.data[i*n+k], x[k]))
		}
		x[i] = sum
	}
	// Back substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum = c.Sub(sum, c.Mul(d.lu.data[i*n+k], x[k]))
		}
		x[i] = c.Div(sum, d.lu.data[i*n+i])
	}

	return x, nil
}

// SolveMatrix returns X with A·X = B, solving column by column.
// Errors: ErrNilMatrix, ErrDimensionMismatch (B.Rows != n). Complexity: O(n²·k).
func (d *LUP[T]) SolveMatrix(b Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n, k := d.lu.r, b.Cols()
	if b.Rows() != n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rhs has %d rows, want %d: %w", b.Rows(), n, ErrDimensionMismatch))
	}
	out := newDenseRaw(d.lu.f, n, k)
	col := make([]T, n)
	for j := 0; j < k; j++ {
		for i := 0; i < n; i++ {
			col[i] = b.at(i, j)
		}
		x, err := d.Solve(col)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			out.data[i*k+j] = x[i]
		}
	}

	return out, nil
}

// LUPDecompose is the split-factor facade: it returns L (unit lower), U (upper)
// and P such that rows P[0..n-1] of A equal L·U.
func LUPDecompose[T any](m Matrix[T]) (*Dense[T], *Dense[T], []int, error) {
	d, err := FactorizeLUP(m)
	if err != nil {
		return nil, nil, nil, err
	}

	return d.L(), d.U(), d.Perm(), nil
}

// Solve solves A·x = b through FactorizeLUP.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
func Solve[T any](a Matrix[T], b []T) ([]T, error) {
	d, err := FactorizeLUP(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return d.Solve(b)
}

// permutationSign returns (−1)^(number of inversions of p).
// Complexity: O(n²).
func permutationSign(p []int) int {
	inversions := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}

	return -1
}
