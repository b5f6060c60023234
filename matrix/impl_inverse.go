// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Complements returns the cofactor matrix C with
// C[i][j] = det(Minor(i,j)) · (-1)^(i+j).
// The cofactor of a 1×1 matrix is 1 (determinant of the empty minor).
// Errors: ErrNonSquare (as *ShapeError), ErrNilMatrix, ErrEmptyMatrix.
func (m *Dense) Complements() (*Dense, error) {
	if err := ValidateSquareLive(m); err != nil {
		return nil, matrixErrorf(opComplements, err)
	}
	n := m.r
	res, err := m.derive(n, n)
	if err != nil {
		return nil, matrixErrorf(opComplements, err)
	}
	if n == 1 {
		res.data[0] = 1

		return res, nil
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = m.minor(i, j).determinant() * cofactorSign(i+j)
		}
	}

	return res, nil
}

// Inverse returns m⁻¹ = Complements()ᵀ / det(m).
// MAIN DESCRIPTION:
//   - det(m) and every cofactor go through the determinant dispatch,
//     pre-check included.
//
// Errors:
//   - ErrSingular when |det| < Epsilon(); the message carries the determinant.
//   - ErrNonSquare, ErrNilMatrix, ErrEmptyMatrix.
//
// Complexity:
//   - n² determinants of order n-1.
func (m *Dense) Inverse() (*Dense, error) {
	det, err := m.Determinant()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(det) < m.opt.eps {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}

	adj, err := m.Complements()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := adj.Transpose()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv.Scale(1 / det)

	return inv, nil
}
