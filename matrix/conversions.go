// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and gonum's mat types,
// so values can be handed to (or taken from) the gonum ecosystem.
// Both directions copy; no buffer is ever shared with gonum.
package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum returns a *mat.Dense holding a copy of m.
// Errors: ErrNilMatrix, ErrEmptyMatrix.
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Errors: ErrNilMatrix for a nil src, ErrInvalidDimensions for an empty one.
// Complexity: O(r*c) calls to src.At.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[i*c+j] = src.At(i, j)
		}
	}

	return m, nil
}
