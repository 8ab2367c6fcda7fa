// SPDX-License-Identifier: MIT

// Package matrix - non-owning views over a parent Matrix.
//
// Purpose:
//   - Present a resized, re-indexed window onto a parent without copying.
//   - Forward every read AND write to the parent after remapping coordinates.
//
// Aliasing (sharp edge):
//   - A view and its parent share storage. Writing through a view changes the parent,
//     and two views of the same parent observe each other's writes.
//   - A view borrows its parent: it must not outlive the operation that created it
//     in a way that lets the parent be reshaped or dropped, and it must not be mutated
//     concurrently with the parent or a sibling view (no locking is done anywhere).
//   - Clone() on a view always returns an owning *Dense.
//
// Complexity quicksheet:
//   - NewMinor/NewSubmatrix: O(1); At/Set: O(1) per nesting level; Clone: O(r*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// Minor is the view of a parent with one row and one column excluded.
// Logical row r maps to parent row r if r < row, else r+1 (same rule for columns).
type Minor[T any] struct {
	parent   Matrix[T]
	row, col int // excluded parent row/column
	r, c     int // logical size: parent.Rows()-1 × parent.Cols()-1
}

// Submatrix is a rectangular window onto a parent.
// Logical (r, c) maps to parent (r+r0, c+c0).
type Submatrix[T any] struct {
	parent Matrix[T]
	r0, c0 int // top-left offset in parent
	r, c   int // window height and width
}

// Compile-time assertions.
var (
	_ Matrix[float64] = (*Minor[float64])(nil)
	_ Matrix[float64] = (*Submatrix[float64])(nil)
)

// NewMinor returns the write-through view of m without row and col.
//
// Behavior highlights:
//   - A 1×1 parent yields a legal 0×0 minor (used by cofactor expansion).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (row or col outside the parent).
//
// Complexity: O(1).
func NewMinor[T any](m Matrix[T], row, col int) (*Minor[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NewMinor: %w", err)
	}
	if err := ValidateIndex(m.Rows(), m.Cols(), row, col); err != nil {
		return nil, fmt.Errorf("NewMinor(%d,%d) of %dx%d: %w", row, col, m.Rows(), m.Cols(), err)
	}

	return &Minor[T]{parent: m, row: row, col: col, r: m.Rows() - 1, c: m.Cols() - 1}, nil
}

// Rows returns the number of rows in the view.
func (v *Minor[T]) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *Minor[T]) Cols() int { return v.c }

// Field returns the parent's field.
func (v *Minor[T]) Field() *numeric.Field[T] { return v.parent.Field() }

// Excluded returns the parent row and column hidden by the view.
func (v *Minor[T]) Excluded() (row, col int) { return v.row, v.col }

// remap translates logical coordinates into parent coordinates.
func (v *Minor[T]) remap(i, j int) (int, int) {
	if i >= v.row {
		i++
	}
	if j >= v.col {
		j++
	}

	return i, j
}

func (v *Minor[T]) at(i, j int) T {
	pi, pj := v.remap(i, j)

	return v.parent.at(pi, pj)
}

func (v *Minor[T]) set(i, j int, val T) {
	pi, pj := v.remap(i, j)
	v.parent.set(pi, pj, val)
}

// At reads logical (i,j) from the parent or returns ErrOutOfRange.
func (v *Minor[T]) At(i, j int) (T, error) {
	if err := ValidateIndex(v.r, v.c, i, j); err != nil {
		var zero T
		return zero, fmt.Errorf("Minor.At(%d,%d): %w", i, j, err)
	}

	return v.at(i, j), nil
}

// Set writes logical (i,j) through to the parent or returns ErrOutOfRange.
func (v *Minor[T]) Set(i, j int, val T) error {
	if err := ValidateIndex(v.r, v.c, i, j); err != nil {
		return fmt.Errorf("Minor.Set(%d,%d): %w", i, j, err)
	}
	v.set(i, j, val)

	return nil
}

// Clone materializes the view into an owning *Dense.
func (v *Minor[T]) Clone() Matrix[T] { return materialize[T](v) }

// String renders the view like Dense.String.
func (v *Minor[T]) String() string { return formatMatrix[T](v) }

// NewSubmatrix returns the write-through window [r0:r0+rows, c0:c0+cols) of m.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (rows or cols <= 0),
//     ErrOutOfRange (window leaves the parent).
//
// Complexity: O(1).
func NewSubmatrix[T any](m Matrix[T], r0, c0, rows, cols int) (*Submatrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NewSubmatrix: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewSubmatrix(%d,%d,%d,%d): %w", r0, c0, rows, cols, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.Rows() || c0+cols > m.Cols() {
		return nil, fmt.Errorf("NewSubmatrix(%d,%d,%d,%d) of %dx%d: %w",
			r0, c0, rows, cols, m.Rows(), m.Cols(), ErrOutOfRange)
	}

	return &Submatrix[T]{parent: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Rows returns the window height.
func (v *Submatrix[T]) Rows() int { return v.r }

// Cols returns the window width.
func (v *Submatrix[T]) Cols() int { return v.c }

// Field returns the parent's field.
func (v *Submatrix[T]) Field() *numeric.Field[T] { return v.parent.Field() }

// Offset returns the window's top-left corner in parent coordinates.
func (v *Submatrix[T]) Offset() (r0, c0 int) { return v.r0, v.c0 }

func (v *Submatrix[T]) at(i, j int) T       { return v.parent.at(i+v.r0, j+v.c0) }
func (v *Submatrix[T]) set(i, j int, val T) { v.parent.set(i+v.r0, j+v.c0, val) }

// At reads logical (i,j) from the parent or returns ErrOutOfRange.
func (v *Submatrix[T]) At(i, j int) (T, error) {
	if err := ValidateIndex(v.r, v.c, i, j); err != nil {
		var zero T
		return zero, fmt.Errorf("Submatrix.At(%d,%d): %w", i, j, err)
	}

	return v.at(i, j), nil
}

// Set writes logical (i,j) through to the parent or returns ErrOutOfRange.
func (v *Submatrix[T]) Set(i, j int, val T) error {
	if err := ValidateIndex(v.r, v.c, i, j); err != nil {
		return fmt.Errorf("Submatrix.Set(%d,%d): %w", i, j, err)
	}
	v.set(i, j, val)

	return nil
}

// Clone materializes the window into an owning *Dense.
func (v *Submatrix[T]) Clone() Matrix[T] { return materialize[T](v) }

// String renders the view like Dense.String.
func (v *Submatrix[T]) String() string { return formatMatrix[T](v) }

// materialize copies any Matrix into a fresh *Dense (0×0 allowed).
// Element values are copied as-is, matching Dense.Clone.
func materialize[T any](m Matrix[T]) *Dense[T] {
	if d, ok := m.(*Dense[T]); ok {
		return d.clone()
	}
	rows, cols := m.Rows(), m.Cols()
	out := newDenseRaw(m.Field(), rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j] = m.at(i, j)
		}
	}

	return out
}
