// Package matrixplus is a small dense linear-algebra toolkit for exercises
// and tests: real matrices with arithmetic, determinants and inverses.
//
// Everything lives in one subpackage:
//
//	matrix/ - Dense storage and lifecycle, elementwise arithmetic,
//	          multiplication, transpose, minors, determinant, cofactors, inverse
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	det, _ := a.Determinant() // -2
//	inv, _ := a.Inverse()     // [[-2, 1], [1.5, -0.5]]
//
// Pure Go; gonum is used only for interop and as a test oracle.
package matrixplus
