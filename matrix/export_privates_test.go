// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private permutation helpers.
//
// Purpose:
//   - Expose unexported helpers to matrix_test only; the file is a _test.go in
//     package matrix, so production builds never see these names.

var (
	// ExportedPermutationSign exposes permutationSign.
	ExportedPermutationSign = permutationSign
	// ExportedNextPermutation exposes nextPermutation.
	ExportedNextPermutation = nextPermutation
)
