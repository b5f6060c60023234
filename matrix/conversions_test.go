// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matrixplus/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestToGonumCopies(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	g, err := m.ToGonum()
	require.NoError(t, err)

	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	g.Set(0, 0, 100)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	m.Release()
	_, err = m.ToGonum()
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

func TestFromGonum(t *testing.T) {
	g := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	m, err := matrix.FromGonum(g.T(), matrix.WithEpsilon(1e-3))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}, {2, 4}}, m)
	require.Equal(t, 1e-3, m.Options().Epsilon())

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonum(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestGonumProductAgrees checks Product against gonum's Mul.
func TestGonumProductAgrees(t *testing.T) {
	a := RandFilledDense(t, 4, 6, 1)
	b := RandFilledDense(t, 6, 3, 2)
	p, err := matrix.Product(a, b)
	require.NoError(t, err)

	ga, err := a.ToGonum()
	require.NoError(t, err)
	gb, err := b.ToGonum()
	require.NoError(t, err)
	var gp mat.Dense
	gp.Mul(ga, gb)

	want, err := matrix.FromGonum(&gp)
	require.NoError(t, err)
	require.True(t, p.Equal(want))
}
