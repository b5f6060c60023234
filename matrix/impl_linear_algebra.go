// SPDX-License-Identifier: MIT
// Package matrix provides elementwise arithmetic, matrix multiplication and
// transpose on Dense. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Purpose:
//   - In-place mutators (Add, Sub, Scale, Mul) change the receiver.
//   - Value-returning forms (Sum, Diff, Scaled, Product, Transpose) never
//     modify their operands; they clone the left operand and apply the
//     in-place mutator, or build the result with a pure kernel.
//
// Notes:
//   - Kernels operate on the flat data slices directly after validation.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opSum         = "Sum"
	opDiff        = "Diff"
	opScaled      = "Scaled"
	opProduct     = "Product"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opComplements = "Complements"
	opInverse     = "Inverse"
	opFromGonum   = "FromGonum"
	opToGonum     = "ToGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equal reports whether m and other have the same shape and every pair of
// corresponding elements differs by at most m's epsilon.
// A nil other is never equal; two empty matrices are equal.
// Only the receiver's epsilon is used, so a.Equal(b) and b.Equal(a) can
// differ when the two matrices carry different policies.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	eps := m.opt.eps
	for k, v := range m.data {
		if math.Abs(other.data[k]-v) > eps {
			return false
		}
	}

	return true
}

// addSub computes m += sign*other in place for sign ∈ {+1, -1}.
func (m *Dense) addSub(other *Dense, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return matrixErrorf(opTag, err)
	}
	for k, v := range other.data {
		m.data[k] += sign * v
	}

	return nil
}

// Add adds other to m elementwise, in place.
// Errors: ErrDimensionMismatch (shape differs), ErrNilMatrix, ErrEmptyMatrix.
func (m *Dense) Add(other *Dense) error { return m.addSub(other, +1, opAdd) }

// Sub subtracts other from m elementwise, in place.
// Errors: ErrDimensionMismatch (shape differs), ErrNilMatrix, ErrEmptyMatrix.
func (m *Dense) Sub(other *Dense) error { return m.addSub(other, -1, opSub) }

// Scale multiplies every element of m by k, in place. Always succeeds.
func (m *Dense) Scale(k float64) {
	if m == nil {
		return
	}
	for i := range m.data {
		m.data[i] *= k
	}
}

// Sum returns a + b as a new matrix; operands are not modified.
func Sum(a, b *Dense) (*Dense, error) {
	if err := ValidateLive(a); err != nil {
		return nil, matrixErrorf(opSum, err)
	}
	res := a.Clone()
	if err := res.Add(b); err != nil {
		return nil, matrixErrorf(opSum, err)
	}

	return res, nil
}

// Diff returns a - b as a new matrix; operands are not modified.
func Diff(a, b *Dense) (*Dense, error) {
	if err := ValidateLive(a); err != nil {
		return nil, matrixErrorf(opDiff, err)
	}
	res := a.Clone()
	if err := res.Sub(b); err != nil {
		return nil, matrixErrorf(opDiff, err)
	}

	return res, nil
}

// Scaled returns k*a as a new matrix; a is not modified.
func Scaled(a *Dense, k float64) (*Dense, error) {
	if err := ValidateLive(a); err != nil {
		return nil, matrixErrorf(opScaled, err)
	}
	res := a.Clone()
	res.Scale(k)

	return res, nil
}

// mulKernel computes a×b into a fresh matrix carrying a's policy.
// MAIN DESCRIPTION:
//   - Pure kernel shared by Mul and Product; never touches a or b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: i→k→j loop order so the inner loop walks rows of b and of the
//     result contiguously; res[i][j] = Σ_k a[i][k]*b[k][j].
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the result.
func mulKernel(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	res, err := a.derive(a.r, b.c)
	if err != nil {
		return nil, err
	}

	var i, j, k int
	var aik float64
	var resRow, bRow []float64
	for i = 0; i < a.r; i++ {
		resRow = res.row(i)
		for k = 0; k < a.c; k++ {
			aik = a.at(i, k)
			bRow = b.row(k)
			for j = 0; j < b.c; j++ {
				resRow[j] += aik * bRow[j]
			}
		}
	}

	return res, nil
}

// Mul replaces m with the product m×other (shape becomes Rows()×other.Cols()).
// The product is built in a temporary, so other may be m itself.
// Errors: ErrDimensionMismatch when m.Cols() != other.Rows().
func (m *Dense) Mul(other *Dense) error {
	res, err := mulKernel(m, other)
	if err != nil {
		return matrixErrorf(opMul, err)
	}
	m.install(res.r, res.c, res.data)

	return nil
}

// Product returns a×b as a new matrix; operands are not modified.
func Product(a, b *Dense) (*Dense, error) {
	res, err := mulKernel(a, b)
	if err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	return res, nil
}

// Transpose returns a new Cols()×Rows() matrix with res[i][j] = m[j][i].
// m is never mutated. Errors only for a nil or empty receiver.
func (m *Dense) Transpose() (*Dense, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := m.derive(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}
