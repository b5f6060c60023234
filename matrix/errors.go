// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and structured error types.
// All operations return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is / errors.As. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Public methods
// wrap with their operation tag, e.g. "Dense.At(5,0): matrix: row index 5 out
// of range [0:2]"; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when |det| is below the epsilon policy.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEmptyMatrix indicates use of a moved-from or released matrix.
	ErrEmptyMatrix = errors.New("matrix: empty matrix (moved or released)")
)

// Axis names used by IndexError.
const (
	AxisRow = "row"
	AxisCol = "col"
)

// IndexError reports an out-of-range coordinate on one axis.
// Max is the largest valid index on that axis (Rows()-1 or Cols()-1).
type IndexError struct {
	Axis  string // AxisRow or AxisCol
	Index int    // offending index
	Max   int    // largest valid index
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("matrix: %s index %d out of range [0:%d]", e.Axis, e.Index, e.Max)
}

// Unwrap exposes ErrOutOfRange to errors.Is.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// ShapeError carries both operand shapes of a failed shape check.
// Err is ErrDimensionMismatch or ErrNonSquare.
type ShapeError struct {
	Op                   string
	Rows, Cols           int
	OtherRows, OtherCols int
	Err                  error
}

// Error implements error.
func (e *ShapeError) Error() string {
	if errors.Is(e.Err, ErrNonSquare) {
		return fmt.Sprintf("%s: %v: %dx%d", e.Op, e.Err, e.Rows, e.Cols)
	}

	return fmt.Sprintf("%s: %v: %dx%d vs %dx%d", e.Op, e.Err, e.Rows, e.Cols, e.OtherRows, e.OtherCols)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ShapeError) Unwrap() error { return e.Err }
