// SPDX-License-Identifier: MIT
// Package matrix_test verifies the permutation helpers behind both determinants.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestPermutationSign checks inversion parity on small permutations.
func TestPermutationSign(t *testing.T) {
	cases := []struct {
		p    []int
		want int
	}{
		{[]int{}, 1},
		{[]int{0, 1, 2}, 1},
		{[]int{1, 0, 2}, -1},
		{[]int{2, 0, 1}, 1},
		{[]int{2, 1, 0}, -1},
		{[]int{3, 2, 1, 0}, 1},
	}
	for _, tc := range cases {
		require.Equalf(t, tc.want, matrix.ExportedPermutationSign(tc.p), "%v", tc.p)
	}
}

// TestNextPermutationEnumeratesAll verifies lexicographic order and the n! count.
func TestNextPermutationEnumeratesAll(t *testing.T) {
	p := []int{0, 1, 2}
	seen := [][]int{append([]int(nil), p...)}
	for matrix.ExportedNextPermutation(p) {
		seen = append(seen, append([]int(nil), p...))
	}
	require.Equal(t, [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}, seen)

	count := 1
	q := []int{0, 1, 2, 3, 4}
	for matrix.ExportedNextPermutation(q) {
		count++
	}
	require.Equal(t, 120, count)
}
