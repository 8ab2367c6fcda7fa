// SPDX-License-Identifier: MIT
// Package matrix_test verifies LUP factorization with partial pivoting.
package matrix_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/lvlinalg/internal/sample"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestLUPReconstruction checks P·A = L·U exactly over random rational matrices.
func TestLUPReconstruction(t *testing.T) {
	g := sample.New(ratField(), 2024)
	for n := 1; n <= 6; n++ {
		A, err := g.NonSingular(n, 100)
		require.NoError(t, err)

		d, err := matrix.FactorizeLUP[*big.Rat](A)
		require.NoError(t, err)
		require.Equal(t, n, d.Order())

		PA, err := matrix.Mul[*big.Rat](d.PermutationMatrix(), A)
		require.NoError(t, err)
		LU, err := matrix.Mul[*big.Rat](d.L(), d.U())
		require.NoError(t, err)
		requireMatEqual[*big.Rat](t, PA, LU)
	}
}

// TestLUPKnownFactors pins the factors of a small matrix that needs a row swap.
func TestLUPKnownFactors(t *testing.T) {
	A := mustInts(t, ratField(), [][]int{{4, 3}, {6, 3}})
	d, err := matrix.FactorizeLUP[*big.Rat](A)
	require.NoError(t, err)

	require.Equal(t, []int{1, 0}, d.Perm())
	require.Equal(t, -1, d.Parity())
	requireMatEqual[*big.Rat](t, mustRats(t, [][]string{{"1", "0"}, {"2/3", "1"}}), d.L())
	requireMatEqual[*big.Rat](t, mustRats(t, [][]string{{"6", "3"}, {"0", "1"}}), d.U())
	requireMatEqual[*big.Rat](t, mustRats(t, [][]string{{"6", "3"}, {"2/3", "1"}}), d.Combined())

	L, U, P, err := matrix.LUPDecompose[*big.Rat](A)
	require.NoError(t, err)
	requireMatEqual[*big.Rat](t, d.L(), L)
	requireMatEqual[*big.Rat](t, d.U(), U)
	require.Equal(t, d.Perm(), P)
}

// TestLUPPivotTieKeepsFirst verifies that equal |pivot| candidates keep the smallest row.
func TestLUPPivotTieKeepsFirst(t *testing.T) {
	A := mustInts(t, ratField(), [][]int{{-2, 1}, {2, 5}})
	d, err := matrix.FactorizeLUP[*big.Rat](A)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, d.Perm())
	require.Equal(t, 1, d.Parity())
}

// TestLUPDoesNotMutateInput ensures the factorization works on a copy.
func TestLUPDoesNotMutateInput(t *testing.T) {
	f := floatField(0)
	A, err := matrix.NewFromRows(f, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	before := A.Clone()
	_, err = matrix.FactorizeLUP[float64](hide[float64]{A})
	require.NoError(t, err)
	requireMatEqual[float64](t, before, A)
}

// TestLUPSingular covers zero pivot columns, non-finite multipliers and shape errors.
func TestLUPSingular(t *testing.T) {
	_, err := matrix.FactorizeLUP[*big.Rat](mustInts(t, ratField(), [][]int{{1, 2}, {1, 2}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.FactorizeLUP[*big.Rat](mustInts(t, ratField(), [][]int{{0, 1}, {0, 2}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	inf, err := matrix.NewFromRows(floatField(0), [][]float64{{math.Inf(1), 1}, {math.Inf(1), 1}})
	require.NoError(t, err)
	_, err = matrix.FactorizeLUP[float64](inf)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.FactorizeLUP[*big.Rat](mustInts(t, ratField(), [][]int{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FactorizeLUP[*big.Rat](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestLUPEpsilonPivot verifies that the Float64 tolerance decides a zero pivot.
func TestLUPEpsilonPivot(t *testing.T) {
	rows := [][]float64{{1e-12, 0}, {0, 1e-12}}
	strict, err := matrix.NewFromRows(floatField(0), rows)
	require.NoError(t, err)
	_, err = matrix.FactorizeLUP[float64](strict)
	require.NoError(t, err)

	loose, err := matrix.NewFromRows(floatField(1e-9), rows)
	require.NoError(t, err)
	_, err = matrix.FactorizeLUP[float64](loose)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolve verifies vector and matrix right-hand sides.
func TestSolve(t *testing.T) {
	A := mustInts(t, ratField(), [][]int{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}})
	b := []*big.Rat{big.NewRat(5, 1), big.NewRat(-2, 1), big.NewRat(9, 1)}

	x, err := matrix.Solve[*big.Rat](A, b)
	require.NoError(t, err)
	want := []int64{1, 1, 2}
	for i := range want {
		require.Zerof(t, x[i].Cmp(big.NewRat(want[i], 1)), "x[%d]=%v", i, x[i])
	}

	d, err := matrix.FactorizeLUP[*big.Rat](A)
	require.NoError(t, err)
	_, err = d.Solve(b[:2])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	I, err := matrix.NewIdentity(ratField(), 3)
	require.NoError(t, err)
	X, err := d.SolveMatrix(I)
	require.NoError(t, err)
	AX, err := matrix.Mul[*big.Rat](A, X)
	require.NoError(t, err)
	requireMatEqual[*big.Rat](t, I, AX)

	_, err = d.SolveMatrix(mustInts(t, ratField(), [][]int{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve[*big.Rat](mustInts(t, ratField(), [][]int{{1, 1}, {1, 1}}), b[:2])
	require.ErrorIs(t, err, matrix.ErrSingular)
}
