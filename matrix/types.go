// SPDX-License-Identifier: MIT

// Package matrix: the Matrix contract shared by owning storage and views.
package matrix

import "github.com/katalvlaran/lvlinalg/numeric"

// Matrix is a logical rows×cols grid of T values interpreted by a numeric.Field.
//
// The exported indexers (At/Set) bounds-check once and then call the unexported
// storage primitives (at/set), which are unchecked. Kernels that have already
// validated their loops use the primitives directly.
//
// The unexported methods restrict implementations to this package: *Dense owns a
// buffer, *Minor and *Submatrix forward into a parent.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T any] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// The value is returned as stored; pointer-like values alias the matrix.
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Clone returns an owning copy. Views clone into a *Dense, never into another view.
	Clone() Matrix[T]

	// Field returns the arithmetic field the elements are interpreted by.
	Field() *numeric.Field[T]

	// at is the unchecked get-element-at primitive.
	at(i, j int) T

	// set is the unchecked set-element-at primitive.
	set(i, j int, v T)
}
