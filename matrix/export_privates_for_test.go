// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private determinant kernels.
//
// Purpose:
//   - Expose the structural pre-check and both determinant kernels to matrix_test
//     so their behaviour can be pinned independently of the size dispatch.
//   - The file name ends in _test.go, so none of this reaches production builds.

var (
	// ExportedHasZeroPivotColumn exposes the structural determinant pre-check.
	ExportedHasZeroPivotColumn = (*Dense).hasZeroPivotColumn

	// ExportedGaussDeterminant exposes the elimination kernel (no pre-check).
	ExportedGaussDeterminant = (*Dense).gaussDeterminant

	// ExportedLaplaceDeterminant exposes one level of row-0 Laplace expansion.
	ExportedLaplaceDeterminant = (*Dense).laplaceDeterminant
)
