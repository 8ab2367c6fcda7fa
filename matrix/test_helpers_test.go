// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the kernel tests.
//   • Keep exact strategies (BigRat) for identities and Float64 for tolerance checks.

package matrix_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/lvlinalg/calc"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide[T]{X} to force the generic (non-*Dense) path in the code under test;
// the embedded interface forwards every method, including the unchecked primitives.
type hide[T any] struct{ matrix.Matrix[T] }

func ratField() *numeric.Field[*big.Rat] { return numeric.NewField[*big.Rat](calc.BigRat{}) }

func intField() *numeric.Field[int64] { return numeric.NewField[int64](calc.Int64{}) }

func bigIntField() *numeric.Field[*big.Int] { return numeric.NewField[*big.Int](calc.BigInt{}) }

// floatField returns a Float64 field with the given comparison tolerance.
func floatField(eps float64) *numeric.Field[float64] {
	return numeric.NewField[float64](calc.NewFloat64(calc.WithEpsilon(eps)))
}

// mustInts builds a *Dense from int literals or fails the test.
func mustInts[T any](t testing.TB, f *numeric.Field[T], rows [][]int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromInts(f, rows)
	require.NoError(t, err)

	return m
}

// mustRats builds an exact *Dense from "p/q" literals or fails the test.
func mustRats(t testing.TB, rows [][]string) *matrix.Dense[*big.Rat] {
	t.Helper()
	vals := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		vals[i] = make([]*big.Rat, len(row))
		for j, s := range row {
			r, ok := new(big.Rat).SetString(s)
			require.Truef(t, ok, "bad rational literal %q", s)
			vals[i][j] = r
		}
	}
	m, err := matrix.NewFromRows(ratField(), vals)
	require.NoError(t, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt[T any](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireMatEqual asserts element-wise equality under the field's strategy.
func requireMatEqual[T any](t testing.TB, want, got matrix.Matrix[T]) {
	t.Helper()
	require.Truef(t, matrix.Equal[T](want, got), "want\n%v\ngot\n%v", want, got)
}

// requireAllClose asserts |want-got| <= tol element-wise.
func requireAllClose(t testing.TB, want, got matrix.Matrix[float64], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, g := mustAt(t, want, i, j), mustAt(t, got, i, j)
			require.LessOrEqualf(t, math.Abs(w-g), tol, "(%d,%d): want %v got %v", i, j, w, g)
		}
	}
}
