// SPDX-License-Identifier: MIT

// Package matrix - determinants.
//
// Two algorithms are provided on purpose:
//   - DeterminantLUP: O(n³), the default. A singular matrix has determinant zero;
//     singularity is NOT reported as an error here.
//   - DeterminantPermutations: O(n!·n), the Leibniz expansion. It is a reference
//     oracle for tests and tiny matrices only; beyond order ~8 it is impractical.
//
// Integral strategies (calc.Integral, e.g. Int64, BigInt) truncate on division, so
// DeterminantLUP runs the fraction-free Bareiss variant of the same pivoted
// elimination for them: every division is exact and the result is exact.
//
// Conventions (both algorithms):
//   - order 0 (the internal empty sentinel) ⇒ zero;
//   - order 1 ⇒ a copy of the single element.

package matrix

import (
	"errors"

	"github.com/katalvlaran/lvlinalg/numeric"
)

const (
	opDetLUP  = "DeterminantLUP"
	opDetPerm = "DeterminantPermutations"
)

// DeterminantLUP returns det(A) via FactorizeLUP:
// Π diag(C) · (−1)^(inversions of P), or zero when the factorization reports ErrSingular.
// Integral fields use determinantBareiss instead.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square). Never ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func DeterminantLUP[T any](m Matrix[T]) (numeric.Number[T], error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Number[T]{}, matrixErrorf(opDetLUP, err)
	}
	f := m.Field()
	switch m.Rows() {
	case 0:
		return f.New(f.Calculator().Zero()), nil
	case 1:
		return f.New(f.Calculator().Copy(m.at(0, 0))), nil
	}
	if f.Integral() {
		return determinantBareiss(m), nil
	}
	d, err := FactorizeLUP(m)
	if errors.Is(err, ErrSingular) {
		return f.New(f.Calculator().Zero()), nil
	}
	if err != nil {
		return numeric.Number[T]{}, matrixErrorf(opDetLUP, err)
	}

	return d.Det(), nil
}

// DeterminantPermutations returns det(A) = Σ_σ sgn(σ) Π_j A[σ(j), j],
// enumerating σ in lexicographic order. A running product that reaches zero
// skips the remaining factors of that permutation.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n!·n), Space O(n).
func DeterminantPermutations[T any](m Matrix[T]) (numeric.Number[T], error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Number[T]{}, matrixErrorf(opDetPerm, err)
	}
	f := m.Field()
	c := f.Calculator()
	n := m.Rows()
	switch n {
	case 0:
		return f.New(c.Zero()), nil
	case 1:
		return f.New(c.Copy(m.at(0, 0))), nil
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sum := c.Zero()
	var prod T
	for {
		prod = m.at(perm[0], 0)
		for j := 1; j < n && !f.IsZero(prod); j++ {
			prod = c.Mul(prod, m.at(perm[j], j))
		}
		if !f.IsZero(prod) {
			if permutationSign(perm) < 0 {
				sum = c.Sub(sum, prod)
			} else {
				sum = c.Add(sum, prod)
			}
		}
		if !nextPermutation(perm) {
			break
		}
	}

	return f.New(sum), nil
}

// determinantBareiss is fraction-free elimination with the same partial pivoting
// as FactorizeLUP:
//
//	M[i][j] = (M[i][j]·M[k][k] − M[i][k]·M[k][j]) / prev,  prev = previous pivot
//
// Each division is exact (Sylvester's identity), so integer strategies stay exact.
// A zero pivot column means det = 0. Requires n ≥ 2.
func determinantBareiss[T any](m Matrix[T]) numeric.Number[T] {
	f := m.Field()
	c := f.Calculator()
	n := m.Rows()
	w := materialize(m)
	prev := c.FromInt(1)
	negative := false

	var pivotRow int
	var pivotValue, a T
	for k := 0; k < n-1; k++ {
		pivotValue = c.Zero()
		pivotRow = -1
		for row := k; row < n; row++ {
			a = c.Abs(w.data[row*n+k])
			if c.Greater(a, pivotValue) {
				pivotValue = a
				pivotRow = row
			}
		}
		if pivotRow < 0 || f.IsZero(pivotValue) {
			return f.New(c.Zero())
		}
		if pivotRow != k {
			swapRows[T](w, k, pivotRow)
			negative = !negative
		}
		pivot := w.data[k*n+k]
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				w.data[i*n+j] = c.Div(
					c.Sub(c.Mul(w.data[i*n+j], pivot), c.Mul(w.data[i*n+k], w.data[k*n+j])),
					prev,
				)
			}
		}
		prev = pivot
	}

	det := c.Copy(w.data[n*n-1])
	if negative {
		det = c.Neg(det)
	}

	return f.New(det)
}

// Determinant is the default determinant (DeterminantLUP).
func Determinant[T any](m Matrix[T]) (numeric.Number[T], error) { return DeterminantLUP(m) }

// nextPermutation advances p to its lexicographic successor in place.
// Returns false (leaving p unchanged) when p is already the last permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
