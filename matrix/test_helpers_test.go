// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed so expectations stay exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matrixplus/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	require.NoError(t, err)

	return m
}

// FromRows builds a Dense from literal rows or fails the test.
func FromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustIdentity returns the n×n identity or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err)

	return m
}

// RandFilledDense returns an r×c matrix with values uniform in [-1, 1),
// reproducible for a given seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 })

	return m
}

// DominantDense returns a random n×n matrix made strictly diagonally
// dominant (hence non-singular and well conditioned) by adding n+1 to the diagonal.
func DominantDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	m.Apply(func(i, j int, v float64) float64 {
		if i == j {
			return v + float64(n+1)
		}

		return v
	})

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustDet computes the determinant or fails the test.
func MustDet(t testing.TB, m *matrix.Dense) float64 {
	t.Helper()
	d, err := m.Determinant()
	require.NoError(t, err)

	return d
}

// CompareExact asserts m has the shape of want and bit-identical values.
func CompareExact(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, want, m.RawRows())
}

// CompareClose asserts m has the shape of want and values within delta.
func CompareClose(t testing.TB, want [][]float64, m *matrix.Dense, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, m, i, j), delta, "at (%d,%d)", i, j)
		}
	}
}

// mustDense is the benchmark flavour of MustDense.
func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// fillDenseRand fills d with deterministic values in [-1, 1).
func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	d.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 })
}
