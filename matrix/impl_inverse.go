// SPDX-License-Identifier: MIT

// Package matrix - inversion through the adjugate.
//
// A⁻¹[i][j] = (−1)^(i+j) · det(minor(A, j, i)) / det(A)
//
// The minor excludes row j and column i (transposed order), so the cofactors are
// written straight into adjugate position. Every determinant goes through
// DeterminantLUP, which makes the whole routine O(n⁵): acceptable for small
// matrices only. Integral strategies get exact cofactors but a truncated final
// division.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
)

const opInverse = "InverseLUP"

// InverseLUP returns A⁻¹ of a square, non-singular matrix.
//
// Implementation:
//   - Stage 1: validate; det = DeterminantLUP(A); zero ⇒ ErrSingular.
//   - Stage 2: order 1 ⇒ [1/a] (the adjugate of a 1×1 matrix is [1]).
//   - Stage 3: for every (i,j) compute the signed minor determinant through a
//     Minor view (no copies of A) and divide by det.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Complexity:
//   - Time O(n⁵), Space O(n²).
func InverseLUP[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	if n == 0 {
		return nil, matrixErrorf(opInverse, ErrInvalidDimensions)
	}
	det, err := DeterminantLUP(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det.IsZero() {
		return nil, matrixErrorf(opInverse, fmt.Errorf("zero determinant: %w", ErrSingular))
	}

	f := m.Field()
	c := f.Calculator()
	res := newDenseRaw(f, n, n)
	if n == 1 {
		res.data[0] = c.Div(c.FromInt(1), det.Value())
		return res, nil
	}

	var (
		minor *Minor[T]
		d     numeric.Number[T]
		cof   T
	)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			minor, err = NewMinor(m, j, i)
			if err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			d, err = DeterminantLUP[T](minor)
			if err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			cof = d.Value()
			if (i+j)%2 == 1 {
				cof = c.Neg(cof)
			}
			res.data[i*n+j] = c.Div(cof, det.Value())
		}
	}

	return res, nil
}

// Inverse is the default inversion (InverseLUP).
func Inverse[T any](m Matrix[T]) (*Dense[T], error) { return InverseLUP(m) }
