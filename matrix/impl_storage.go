// SPDX-License-Identifier: MIT

// Package matrix - buffer lifecycle: allocate, resize, copy, move, release.
//
// Ownership contract:
//   - Every live Dense owns exactly one buffer; no two live values share one.
//   - Clone/CopyFrom duplicate data; Move transfers the buffer and leaves the
//     source empty (0×0, nil buffer).
//   - An empty Dense may be the target of CopyFrom or simply dropped; every
//     other operation reports ErrEmptyMatrix or an index error.

package matrix

import "fmt"

const (
	opSetRows  = "SetRows"
	opSetCols  = "SetCols"
	opCopyFrom = "CopyFrom"
)

// allocBuffer returns a zeroed rows*cols buffer.
// Errors: ErrInvalidDimensions naming the first non-positive dimension.
func allocBuffer(rows, cols int) ([]float64, error) {
	if rows < 1 {
		return nil, fmt.Errorf("rows=%d: %w", rows, ErrInvalidDimensions)
	}
	if cols < 1 {
		return nil, fmt.Errorf("cols=%d: %w", cols, ErrInvalidDimensions)
	}

	return make([]float64, rows*cols), nil
}

// install replaces the buffer and shape in one step.
func (m *Dense) install(rows, cols int, data []float64) {
	m.r, m.c, m.data = rows, cols, data
}

// Release drops the buffer and leaves m empty. Calling it again is a no-op.
func (m *Dense) Release() {
	m.install(0, 0, nil)
}

// SetRows resizes m to n rows in place.
// MAIN DESCRIPTION:
//   - Rows [0, min(old,n)) keep their values; added rows are zero; rows
//     beyond n are discarded.
//
// Implementation:
//   - Stage 1: n == Rows() is a no-op; otherwise allocate n×Cols().
//   - Stage 2: copy the overlapping prefix (contiguous in row-major order).
//   - Stage 3: install the new buffer.
//
// Errors:
//   - ErrInvalidDimensions if n < 1, ErrEmptyMatrix on an empty receiver.
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (m *Dense) SetRows(n int) error {
	if m.IsEmpty() {
		return matrixErrorf(opSetRows, ErrEmptyMatrix)
	}
	if n == m.r {
		return nil
	}
	buf, err := allocBuffer(n, m.c)
	if err != nil {
		return matrixErrorf(opSetRows, err)
	}
	copy(buf, m.data[:min(n, m.r)*m.c])
	m.install(n, m.c, buf)

	return nil
}

// SetCols resizes m to n columns in place.
// Columns [0, min(old,n)) keep their values in every row; added columns are
// zero; columns beyond n are discarded. n == Cols() is a no-op.
//
// Errors: ErrInvalidDimensions if n < 1, ErrEmptyMatrix on an empty receiver.
func (m *Dense) SetCols(n int) error {
	if m.IsEmpty() {
		return matrixErrorf(opSetCols, ErrEmptyMatrix)
	}
	if n == m.c {
		return nil
	}
	buf, err := allocBuffer(m.r, n)
	if err != nil {
		return matrixErrorf(opSetCols, err)
	}
	keep := min(n, m.c)
	for i := 0; i < m.r; i++ {
		copy(buf[i*n:i*n+keep], m.row(i)[:keep])
	}
	m.install(m.r, n, buf)

	return nil
}

// Clone returns a deep copy of m with the same numeric policy.
// Cloning an empty matrix yields another empty matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	var cp []float64
	if m.data != nil {
		cp = make([]float64, len(m.data))
		copy(cp, m.data)
	}

	return &Dense{r: m.r, c: m.c, data: cp, opt: m.opt}
}

// CopyFrom makes m a deep copy of src, adopting src's shape and policy.
// m may be empty (moved-from or released); src must be live.
// Errors: ErrNilMatrix, ErrEmptyMatrix.
func (m *Dense) CopyFrom(src *Dense) error {
	if err := ValidateLive(src); err != nil {
		return matrixErrorf(opCopyFrom, err)
	}
	if m == src {
		return nil
	}
	buf := make([]float64, len(src.data))
	copy(buf, src.data)
	m.install(src.r, src.c, buf)
	m.opt = src.opt

	return nil
}

// Move transfers m's buffer, shape and policy to a new Dense without copying
// and leaves m empty.
func (m *Dense) Move() *Dense {
	out := &Dense{r: m.r, c: m.c, data: m.data, opt: m.opt}
	m.Release()

	return out
}
