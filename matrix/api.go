// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing constructors and helpers.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
)

const (
	ctxFromRows = "NewFromRows"
	ctxIdentity = "IdentityLike"
)

// NewZeros returns a new zero-filled *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T any](f *numeric.Field[T], rows, cols int) (*Dense[T], error) {
	return NewDense(f, rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²).
func NewIdentity[T any](f *numeric.Field[T], n int) (*Dense[T], error) {
	I, err := NewDense(f, n, n)
	if err != nil {
		return nil, err
	}
	one := f.Calculator().FromInt
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one(1)
	}

	return I, nil
}

// NewFromRows builds a *Dense from row slices (values are stored as given, no copies).
//
// Errors:
//   - ErrNilField, ErrInvalidDimensions (no rows or empty first row), ErrRaggedRows.
//
// Complexity: O(r*c).
func NewFromRows[T any](f *numeric.Field[T], rows [][]T) (*Dense[T], error) {
	if f == nil {
		return nil, matrixErrorf(ctxFromRows, ErrNilField)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := newDenseRaw(f, r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrRaggedRows))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewFromInts builds a *Dense converting each int through the field (FromInt).
// Handy for literals shared by every strategy.
func NewFromInts[T any](f *numeric.Field[T], rows [][]int) (*Dense[T], error) {
	if f == nil {
		return nil, matrixErrorf(ctxFromRows, ErrNilField)
	}
	conv := make([][]T, len(rows))
	for i, row := range rows {
		conv[i] = make([]T, len(row))
		for j, v := range row {
			conv[i][j] = f.Calculator().FromInt(v)
		}
	}

	return NewFromRows(f, conv)
}

// DeepCopy returns an owning *Dense whose elements are independent copies
// (calculator Copy), unlike Clone which shares pointer-like element values.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func DeepCopy[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDeepCopy, err)
	}

	return mapElements(m, m.Field().Calculator().Copy), nil
}

// ZerosLike returns a new zero matrix with the same shape and field as m.
func ZerosLike[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Field(), m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}

	return NewIdentity(m.Field(), m.Rows())
}

// GetTransposed is an alias for Transpose (new cols×rows matrix).
func GetTransposed[T any](m Matrix[T]) (*Dense[T], error) { return Transpose(m) }

// Product is an alias for Mul.
func Product[T any](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }
