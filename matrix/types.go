// SPDX-License-Identifier: MIT

// Package matrix: public interface consumed by validators and conversions.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// *Dense is the only implementation in this package; the interface lets the
// validators and conversions accept foreign implementations as well.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns an error wrapping ErrOutOfRange if i or j is invalid.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns an error wrapping ErrOutOfRange if i or j is invalid.
	Set(i, j int, v float64) error
}
