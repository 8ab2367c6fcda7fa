// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions and a nil field.
func TestNewDenseInvalidDimensions(t *testing.T) {
	f := floatField(0)
	_, err := matrix.NewDense(f, 0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(f, 5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[float64](nil, 2, 2)
	require.ErrorIs(t, err, matrix.ErrNilField)
}

// TestNewDenseZeroFilled verifies shape and zero fill for every strategy.
func TestNewDenseZeroFilled(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		m, err := matrix.NewDense(intField(), 3, 4)
		require.NoError(t, err)
		rows, cols := m.Shape()
		require.Equal(t, 3, rows)
		require.Equal(t, 4, cols)
		require.False(t, m.IsSquare())
		m.Do(func(_, _ int, v int64) bool {
			require.Zero(t, v)
			return true
		})
	})
	t.Run("bigrat", func(t *testing.T) {
		m, err := matrix.NewDense(ratField(), 2, 2)
		require.NoError(t, err)
		require.True(t, m.IsSquare())
		a, b := mustAt[*big.Rat](t, m, 0, 0), mustAt[*big.Rat](t, m, 0, 1)
		require.Zero(t, a.Sign())
		require.NotSame(t, a, b) // every cell owns its zero
	})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(intField(), 2, 2)
	require.NoError(t, err)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias stays compatible

		err = m.Set(idx[0], idx[1], 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
}

// TestSetAt verifies stored values round-trip through Set/At and Elem.
func TestSetAt(t *testing.T) {
	m, err := matrix.NewDense(intField(), 2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7))
	require.Equal(t, int64(7), mustAt[int64](t, m, 1, 2))

	e, err := m.Elem(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(7), e.Value())
	require.Same(t, m.Field(), e.Field())

	_, err = m.Elem(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence checks that writes to a clone never reach the source.
func TestCloneIndependence(t *testing.T) {
	m := mustInts(t, intField(), [][]int{{1, 2}, {3, 4}})
	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, 99))
	require.Equal(t, int64(1), mustAt[int64](t, m, 0, 0))
	require.Equal(t, int64(99), mustAt[int64](t, cl, 0, 0))
}

// TestDeepCopyBig verifies that Clone shares pointer values while DeepCopy does not.
func TestDeepCopyBig(t *testing.T) {
	m := mustInts(t, bigIntField(), [][]int{{5, 6}})
	shallow := m.Clone()
	deep, err := matrix.DeepCopy[*big.Int](m)
	require.NoError(t, err)

	src := mustAt[*big.Int](t, m, 0, 0)
	require.Same(t, src, mustAt[*big.Int](t, shallow, 0, 0))
	require.NotSame(t, src, mustAt[*big.Int](t, deep, 0, 0))
	requireMatEqual[*big.Int](t, m, deep)
}

// TestNewFromRows covers ragged, empty and nil-field inputs.
func TestNewFromRows(t *testing.T) {
	f := intField()
	_, err := matrix.NewFromRows(f, [][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewFromRows(f, [][]int64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows[int64](nil, [][]int64{{1}})
	require.ErrorIs(t, err, matrix.ErrNilField)

	m, err := matrix.NewFromRows(f, [][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, int64(3), mustAt[int64](t, m, 1, 0))
}

// TestIdentityAndLike verifies NewIdentity, IdentityLike and ZerosLike.
func TestIdentityAndLike(t *testing.T) {
	f := ratField()
	I, err := matrix.NewIdentity(f, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := int64(0)
			if i == j {
				want = 1
			}
			require.Zero(t, mustAt[*big.Rat](t, I, i, j).Cmp(big.NewRat(want, 1)))
		}
	}

	rect, err := matrix.NewZeros(f, 2, 3)
	require.NoError(t, err)
	_, err = matrix.IdentityLike[*big.Rat](rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	z, err := matrix.ZerosLike[*big.Rat](rect)
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())
}

// TestString verifies the diagnostic rendering.
func TestString(t *testing.T) {
	m := mustInts(t, intField(), [][]int{{1, -2}, {3, 4}})
	require.Equal(t, "[1, -2]\n[3, 4]\n", m.String())

	r := mustRats(t, [][]string{{"1/2"}})
	require.Equal(t, "[1/2]\n", r.String())
}

// TestDoApply checks visiting order, early stop and in-place mapping.
func TestDoApply(t *testing.T) {
	m := mustInts(t, intField(), [][]int{{1, 2}, {3, 4}})
	var seen []int64
	m.Do(func(_, _ int, v int64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int64{1, 2, 3}, seen)

	m.Apply(func(i, j int, v int64) int64 { return v * int64(10+i+j) })
	requireMatEqual[int64](t, mustInts(t, intField(), [][]int{{10, 22}, {33, 48}}), m)
}

// TestEqual covers strategy tolerance, shapes and foreign values.
func TestEqual(t *testing.T) {
	f := floatField(1e-9)
	a, err := matrix.NewFromRows(f, [][]float64{{1, 2}})
	require.NoError(t, err)
	b, err := matrix.NewFromRows(f, [][]float64{{1 + 1e-12, 2}})
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.True(t, a.Equal(hide[float64]{b}))

	c, err := matrix.NewFromRows(f, [][]float64{{1}, {2}})
	require.NoError(t, err)
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
	require.False(t, a.Equal("matrix"))

	var nilDense *matrix.Dense[float64]
	require.False(t, a.Equal(nilDense))
}
