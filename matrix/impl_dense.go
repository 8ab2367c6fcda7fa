// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide the owning row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Hand out no-copy windows (Minor, Submatrix) whose writes reach this buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-fill; At/Set: O(1); Clone: O(r*c); Minor/Submatrix: O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxElem = "Elem" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". The sentinel stays matchable with errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the owning row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - f interprets the elements; it is shared with every result derived from this matrix.
type Dense[T any] struct {
	r, c int               // row and column counts (zero only for the internal empty sentinel)
	data []T               // contiguous row-major storage (len == r*c)
	f    *numeric.Field[T] // arithmetic strategy + cached constants
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates a rows×cols matrix filled with the field's zero.
//
// Implementation:
//   - Stage 1: validate f != nil and rows>0 && cols>0.
//   - Stage 2: allocate the flat buffer and fill every cell with a fresh Zero().
//
// Behavior highlights:
//   - Each cell gets its own zero value, so pointer-like elements never alias each other.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrNilField, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](f *numeric.Field[T], rows, cols int) (*Dense[T], error) {
	if f == nil {
		return nil, ErrNilField
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	m := newDenseRaw(f, rows, cols)
	zero := f.Calculator().Zero
	for i := range m.data {
		m.data[i] = zero()
	}

	return m, nil
}

// newDenseRaw allocates without filling. Callers MUST write every cell before
// the matrix escapes (kernels that produce a full result).
func newDenseRaw[T any](f *numeric.Field[T], rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), f: f}
}

// newDenseZeroOK is the internal constructor that allows rows==0 or cols==0.
// It is used for the 0×0 empty-result sentinel and the order-0 LUP factors.
func newDenseZeroOK[T any](f *numeric.Field[T], rows, cols int) (*Dense[T], error) {
	if f == nil {
		return nil, ErrNilField
	}
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if rows == 0 || cols == 0 {
		return &Dense[T]{r: rows, c: cols, data: make([]T, 0), f: f}, nil
	}

	return NewDense(f, rows, cols)
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Field returns the arithmetic field of the matrix.
func (m *Dense[T]) Field() *numeric.Field[T] { return m.f }

// IsSquare reports Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

func (m *Dense[T]) at(i, j int) T     { return m.data[i*m.c+j] }
func (m *Dense[T]) set(i, j int, v T) { m.data[i*m.c+j] = v }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfRange; public methods wrap with coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if err := ValidateIndex(m.r, m.c, row, col); err != nil {
		return 0, err
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// No copy is made: for pointer-like T the caller receives an alias.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Elem returns the element at (row, col) wrapped as a numeric.Number.
func (m *Dense[T]) Elem(row, col int) (numeric.Number[T], error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return numeric.Number[T]{}, denseErrorf(ctxElem, row, col, err)
	}

	return m.f.New(m.data[off]), nil
}

// Clone returns an independent *Dense with a new buffer holding the same
// element values (a shallow copy of the elements; see DeepCopy).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] { return m.clone() }

// clone is the typed variant used by kernels.
func (m *Dense[T]) clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, f: m.f}
}

// String renders one bracketed line per row with %v-formatted elements.
// Intended for diagnostics, not for serialization.
func (m *Dense[T]) String() string { return formatMatrix[T](m) }

// formatMatrix renders any Matrix the way Dense.String does.
func formatMatrix[T any](m Matrix[T]) string {
	var b strings.Builder
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&b, "%v", m.at(i, j))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Minor returns the write-through view of m without row and col.
// See NewMinor.
func (m *Dense[T]) Minor(row, col int) (*Minor[T], error) { return NewMinor[T](m, row, col) }

// Submatrix returns the write-through window [r0:r0+rows, c0:c0+cols).
// See NewSubmatrix.
func (m *Dense[T]) Submatrix(r0, c0, rows, cols int) (*Submatrix[T], error) {
	return NewSubmatrix[T](m, r0, c0, rows, cols)
}

// Equal reports whether other is a Matrix[T] of the same shape whose elements
// are all equal under the field's strategy.
func (m *Dense[T]) Equal(other any) bool { return Equal[T](m, other) }

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
