// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlinalg/calc"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/numeric"
)

// ExampleInverseLUP inverts a matrix exactly over the rationals.
func ExampleInverseLUP() {
	f := numeric.NewField[*big.Rat](calc.BigRat{})
	A, _ := matrix.NewFromInts(f, [][]int{{4, 3}, {6, 3}})

	det, _ := matrix.DeterminantLUP[*big.Rat](A)
	inv, _ := matrix.InverseLUP[*big.Rat](A)
	fmt.Println("det:", det)
	fmt.Print(inv)
	// Output:
	// det: -6/1
	// [-1/2, 1/2]
	// [1/1, -2/3]
}

// ExampleFactorizeLUP shows the row permutation chosen by partial pivoting.
func ExampleFactorizeLUP() {
	f := numeric.NewField[float64](calc.NewFloat64(calc.WithEpsilon(1e-12)))
	A, _ := matrix.NewFromRows(f, [][]float64{{4, 3}, {6, 3}})

	d, _ := matrix.FactorizeLUP[float64](A)
	fmt.Println("perm:", d.Perm(), "parity:", d.Parity())
	fmt.Printf("det: %.3f\n", d.Det().Value())
	// Output:
	// perm: [1 0] parity: -1
	// det: -6.000
}

// ExampleNewMinor demonstrates that a minor writes through to its parent.
func ExampleNewMinor() {
	f := numeric.NewField[int64](calc.Int64{})
	A, _ := matrix.NewFromInts(f, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	m, _ := A.Minor(0, 0)
	_ = m.Set(0, 0, 50)
	fmt.Print(A)
	// Output:
	// [1, 2, 3]
	// [4, 50, 6]
	// [7, 8, 9]
}

// ExampleDeterminantPermutations computes an exact integer determinant.
func ExampleDeterminantPermutations() {
	f := numeric.NewField[int64](calc.Int64{})
	A, _ := matrix.NewFromInts(f, [][]int{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}})

	d, _ := matrix.DeterminantPermutations[int64](A)
	fmt.Println(d)
	// Output:
	// 6
}
