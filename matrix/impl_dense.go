// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ptr return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ptr: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxPtr   = "Ptr"   // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxMinor = "Minor" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols); both are 0 only for an empty
//     (moved-from or released) value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opt is the numeric policy inherited by every derived matrix.
//
// A Dense exclusively owns its buffer. It is not safe for concurrent use
// without external synchronization.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
	opt  Options   // numeric policy (epsilon, elimination threshold)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 via allocBuffer; else ErrInvalidDimensions.
//   - Stage 2: resolve options on top of the documented defaults.
//
// Errors:
//   - ErrInvalidDimensions, wrapped with the offending dimension.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	buf, err := allocBuffer(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: buf, opt: gatherOptions(opts...)}, nil
}

// New returns a 1×1 zero matrix with default options.
func New() *Dense {
	return &Dense{r: 1, c: 1, data: make([]float64, 1), opt: defaultOptions()}
}

// NewFromRows builds a Dense from a rectangular slice of rows.
// The input is copied; later changes to rows do not affect the result.
// Errors: ErrInvalidDimensions if rows or rows[0] is empty,
// ErrDimensionMismatch if the rows are ragged.
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewFromRows: rows=0: %w", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w",
				i, len(row), m.c, ErrDimensionMismatch)
		}
		copy(m.row(i), row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// derive allocates a zero rows×cols matrix carrying m's numeric policy.
func (m *Dense) derive(rows, cols int) (*Dense, error) {
	buf, err := allocBuffer(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: buf, opt: m.opt}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m has been moved from or released.
func (m *Dense) IsEmpty() bool { return m == nil || m.data == nil }

// Options returns the numeric policy carried by m.
func (m *Dense) Options() Options { return m.opt }

// IsSquare reports whether Rows() == Cols() on a live matrix.
func (m *Dense) IsSquare() bool { return !m.IsEmpty() && m.r == m.c }

// checkIndexes validates (row,col) against the current shape.
// The row is checked before the column, so a doubly invalid pair reports the row.
func (m *Dense) checkIndexes(row, col int) error {
	if row < 0 || row >= m.r {
		return &IndexError{Axis: AxisRow, Index: row, Max: m.r - 1}
	}
	if col < 0 || col >= m.c {
		return &IndexError{Axis: AxisCol, Index: col, Max: m.c - 1}
	}

	return nil
}

// indexOf computes the row-major offset or returns an *IndexError.
// A nil or empty m reports ErrNilMatrix / ErrEmptyMatrix instead.
func (m *Dense) indexOf(row, col int) (int, error) {
	if err := ValidateLive(m); err != nil {
		return 0, err
	}
	if err := m.checkIndexes(row, col); err != nil {
		return 0, err
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// at reads (i,j) without bounds checks; callers iterate within m.r × m.c.
func (m *Dense) at(i, j int) float64 { return m.data[i*m.c+j] }

// row returns the backing sub-slice of row i (shared, not copied).
func (m *Dense) row(i int) []float64 { return m.data[i*m.c : (i+1)*m.c] }

// At returns the value at (row, col).
// Errors: *IndexError (errors.Is ErrOutOfRange) naming the axis and its valid range;
// ErrNilMatrix, ErrEmptyMatrix.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set assigns v at (row, col).
// Errors: *IndexError (errors.Is ErrOutOfRange), ErrNilMatrix, ErrEmptyMatrix.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Ptr returns a mutable reference to the element at (row, col).
// The pointer aliases the backing buffer and is invalidated by SetRows,
// SetCols, Mul, CopyFrom, Move and Release, which install a new buffer.
func (m *Dense) Ptr(row, col int) (*float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxPtr, row, col, err)
	}

	return &m.data[off], nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if err := ValidateLive(m); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, &IndexError{Axis: AxisRow, Index: i, Max: m.r - 1})
	}
	out := make([]float64, m.c)
	copy(out, m.row(i))

	return out, nil
}

// RawRows returns a [][]float64 copy of m, one slice per row.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.row(i))
	}

	return out
}

// Do calls f for every element in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces every element with f(i, j, v) in row-major order.
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String implements fmt.Stringer, one bracketed row per line:
//
//	[1, 2]
//	[3, 4]
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
