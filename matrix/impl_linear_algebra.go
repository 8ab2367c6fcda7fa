// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, multiplication, negation, scalar maps,
// transpose, trace, row/column exchange and strategy-aware equality.
//
// Purpose:
//   - Canonical kernels written once against Matrix[T] and the field's calculator.
//   - Operands are never mutated; results are freshly allocated *Dense values,
//     except for the explicitly in-place kernels (TransposeInPlace, SwapRows, SwapCols).
//
// Notes:
//   - When every operand is *Dense the kernels walk the flat buffers directly.
//     Otherwise (views) they go through the unchecked at/set primitives after the
//     shape has been validated once.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd              = "Add"
	opSub              = "Sub"
	opMul              = "Mul"
	opNeg              = "Neg"
	opAddScalar        = "AddScalar"
	opScale            = "Scale"
	opDivScalar        = "DivScalar"
	opTranspose        = "Transpose"
	opTransposeInPlace = "TransposeInPlace"
	opTrace            = "Trace"
	opSwapRows         = "SwapRows"
	opSwapCols         = "SwapCols"
	opDeepCopy         = "DeepCopy"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes element-wise a+b (sub=false) or a-b (sub=true).
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b); allocate result Dense(rows, cols).
//   - Stage 2: fast path for *Dense pairs (single flat loop); otherwise i→j via at().
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub[T any](a, b Matrix[T], sub bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	f := a.Field()
	c := f.Calculator()
	op := c.Add
	if sub {
		op = c.Sub
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDenseRaw(f, rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range res.data {
				res.data[idx] = op(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: generic path with fixed i→j order.
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[i*cols+j] = op(a.at(i, j), b.at(i, j))
		}
	}

	return res, nil
}

// Add computes C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Add[T any](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Sub[T any](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Mul performs standard matrix multiplication C = A × B with the naive triple loop
// C[i,j] = Σ_k A[i,k]·B[k,j] (no Strassen, no zero skipping).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A.Cols != B.Rows).
//
// Determinism:
//   - Fixed i→j→k order; the sum for each cell starts at Zero() and accumulates k ascending.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T any](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	f := a.Field()
	c := f.Calculator()
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDenseRaw(f, aRows, bCols)

	var (
		i, j, k int
		acc     T
	)
	// Fast path for two Dense matrices: flat strides.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			var rowA int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				for j = 0; j < bCols; j++ {
					acc = c.Zero()
					for k = 0; k < aCols; k++ {
						acc = c.Add(acc, c.Mul(da.data[rowA+k], db.data[k*bCols+j]))
					}
					res.data[i*bCols+j] = acc
				}
			}

			return res, nil
		}
	}

	// Fallback: generic triple loop.
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = c.Zero()
			for k = 0; k < aCols; k++ {
				acc = c.Add(acc, c.Mul(a.at(i, k), b.at(k, j)))
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// mapElements allocates a result of m's shape with out[i,j] = fn(m[i,j]).
func mapElements[T any](m Matrix[T], fn func(T) T) *Dense[T] {
	rows, cols := m.Rows(), m.Cols()
	res := newDenseRaw(m.Field(), rows, cols)
	if d, ok := m.(*Dense[T]); ok {
		for idx, v := range d.data {
			res.data[idx] = fn(v)
		}

		return res
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			res.data[i*cols+j] = fn(m.at(i, j))
		}
	}

	return res
}

// Neg returns -A.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Neg[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return mapElements(m, m.Field().Calculator().Neg), nil
}

// AddScalar returns A + s (s added to every element).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func AddScalar[T any](m Matrix[T], s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddScalar, err)
	}
	c := m.Field().Calculator()

	return mapElements(m, func(v T) T { return c.Add(v, s) }), nil
}

// Scale returns s·A.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale[T any](m Matrix[T], s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	c := m.Field().Calculator()

	return mapElements(m, func(v T) T { return c.Mul(v, s) }), nil
}

// DivScalar returns A / s.
// A zero s is not checked: the strategy decides (±Inf/NaN for Float64, a panic
// for the integer and big strategies).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func DivScalar[T any](m Matrix[T], s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	c := m.Field().Calculator()

	return mapElements(m, func(v T) T { return c.Div(v, s) }), nil
}

// Transpose returns a new cols×rows matrix Aᵀ; works for any shape.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDenseRaw(m.Field(), cols, rows)
	var i, j int
	if d, ok := m.(*Dense[T]); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[base+j]
			}
		}

		return res, nil
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.at(i, j)
		}
	}

	return res, nil
}

// TransposeInPlace swaps every symmetric pair (i,j)↔(j,i) of a square matrix.
// Works through views as well (writes reach the parent).
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square). Complexity: O(n²).
func TransposeInPlace[T any](m Matrix[T]) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opTransposeInPlace, err)
	}
	n := m.Rows()
	var upper, lower T
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			upper, lower = m.at(i, j), m.at(j, i)
			m.set(i, j, lower)
			m.set(j, i, upper)
		}
	}

	return nil
}

// Trace returns Σ A[i,i] of a square matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square). Complexity: O(n).
func Trace[T any](m Matrix[T]) (numeric.Number[T], error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Number[T]{}, matrixErrorf(opTrace, err)
	}
	f := m.Field()
	c := f.Calculator()
	sum := c.Zero()
	for i := 0; i < m.Rows(); i++ {
		sum = c.Add(sum, m.at(i, i))
	}

	return f.New(sum), nil
}

// SwapRows exchanges rows r1 and r2 in place, element by element.
// r1 == r2 is a no-op. Errors: ErrNilMatrix, ErrOutOfRange. Complexity: O(c).
func SwapRows[T any](m Matrix[T], r1, r2 int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if r1 < 0 || r1 >= m.Rows() || r2 < 0 || r2 >= m.Rows() {
		return matrixErrorf(opSwapRows, fmt.Errorf("rows %d,%d of %d: %w", r1, r2, m.Rows(), ErrOutOfRange))
	}
	swapRows(m, r1, r2)

	return nil
}

// swapRows is the unchecked row exchange used by factorization.
func swapRows[T any](m Matrix[T], r1, r2 int) {
	if r1 == r2 {
		return
	}
	if d, ok := m.(*Dense[T]); ok {
		a := d.data[r1*d.c : (r1+1)*d.c]
		b := d.data[r2*d.c : (r2+1)*d.c]
		for j := range a {
			a[j], b[j] = b[j], a[j]
		}

		return
	}
	var tmp T
	for j := 0; j < m.Cols(); j++ {
		tmp = m.at(r1, j)
		m.set(r1, j, m.at(r2, j))
		m.set(r2, j, tmp)
	}
}

// SwapCols exchanges columns c1 and c2 in place, element by element.
// c1 == c2 is a no-op. Errors: ErrNilMatrix, ErrOutOfRange. Complexity: O(r).
func SwapCols[T any](m Matrix[T], c1, c2 int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSwapCols, err)
	}
	if c1 < 0 || c1 >= m.Cols() || c2 < 0 || c2 >= m.Cols() {
		return matrixErrorf(opSwapCols, fmt.Errorf("cols %d,%d of %d: %w", c1, c2, m.Cols(), ErrOutOfRange))
	}
	if c1 == c2 {
		return nil
	}
	var tmp T
	for i := 0; i < m.Rows(); i++ {
		tmp = m.at(i, c1)
		m.set(i, c1, m.at(i, c2))
		m.set(i, c2, tmp)
	}

	return nil
}

// Equal reports whether b is a Matrix[T] with a's shape whose elements all
// compare equal under a's strategy. Anything that is not a Matrix[T] (including
// nil) is unequal. Complexity: O(r*c), stops at the first difference.
func Equal[T any](a Matrix[T], b any) bool {
	if ValidateNotNil(a) != nil {
		return false
	}
	bm, ok := b.(Matrix[T])
	if !ok || ValidateNotNil(bm) != nil {
		return false
	}
	if a.Rows() != bm.Rows() || a.Cols() != bm.Cols() {
		return false
	}
	c := a.Field().Calculator()
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if !c.Equal(a.at(i, j), bm.at(i, j)) {
				return false
			}
		}
	}

	return true
}
