// SPDX-License-Identifier: MIT

// Package matrix - minors and determinants.
//
// Algorithm selection for an n×n matrix (n = Rows() = Cols()):
//   - structural pre-check (hasZeroPivotColumn) fires → 0, no arithmetic;
//   - n == 1 → the single element; n == 2 → ad - bc;
//   - 3 ≤ n < EliminationThreshold (default 6) → Laplace expansion along row 0;
//   - otherwise → Gaussian elimination with partial pivoting on a private copy.
//
// Numeric caveats:
//   - The pre-check is a heuristic, not a singularity test. It can report 0
//     for some non-singular matrices and miss many singular ones.
//   - Elimination has no zero-pivot guard: a column that is all zero from the
//     pivot down divides by zero and the result follows IEEE rules (NaN/Inf).

package matrix

import "math"

// Minor returns m with row `row` and column `col` removed.
// MAIN DESCRIPTION:
//   - For R×C with R>1 and C>1 the result is (R-1)×(C-1).
//   - A single row is never removed (R==1 keeps 1 row) and a single column is
//     never removed (C==1 keeps 1 column); the minor of a 1×1 matrix is a
//     copy of itself.
//
// Errors:
//   - *IndexError (errors.Is ErrOutOfRange) for invalid row/col.
//   - ErrNilMatrix, ErrEmptyMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if err := ValidateLive(m); err != nil {
		return nil, denseErrorf(ctxMinor, row, col, err)
	}
	if err := m.checkIndexes(row, col); err != nil {
		return nil, denseErrorf(ctxMinor, row, col, err)
	}

	return m.minor(row, col), nil
}

// minor is Minor without validation; row and col must be in range.
func (m *Dense) minor(row, col int) *Dense {
	rows, cols := m.r-1, m.c-1
	skipRow, skipCol := row, col
	if m.r == 1 {
		rows, skipRow = 1, -1
	}
	if m.c == 1 {
		cols, skipCol = 1, -1
	}

	res := &Dense{r: rows, c: cols, data: make([]float64, rows*cols), opt: m.opt}
	var i, j, k, l int
	var src, dst []float64
	for i = 0; i < m.r; i++ {
		if i == skipRow {
			continue
		}
		src, dst = m.row(i), res.row(k)
		l = 0
		for j = 0; j < m.c; j++ {
			if j == skipCol {
				continue
			}
			dst[l] = src[j]
			l++
		}
		k++
	}

	return res
}

// Determinant returns det(m).
// Errors: ErrNonSquare (as *ShapeError), ErrNilMatrix, ErrEmptyMatrix.
// Complexity: O(n!) below the elimination threshold, O(n³) from it.
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquareLive(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.determinant(), nil
}

// determinant dispatches on size; m must be live and square.
func (m *Dense) determinant() float64 {
	n := m.r
	switch {
	case m.hasZeroPivotColumn():
		return 0
	case n == 1:
		return m.data[0]
	case n == 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	case n < m.opt.eliminationThreshold:
		return m.laplaceDeterminant()
	default:
		return m.gaussDeterminant()
	}
}

// laplaceDeterminant expands along row 0: Σ_j m[0][j]·det(Minor(0,j))·(-1)^j.
func (m *Dense) laplaceDeterminant() float64 {
	det := 0.0
	for j := 0; j < m.c; j++ {
		det += m.data[j] * m.minor(0, j).determinant() * cofactorSign(j)
	}

	return det
}

// cofactorSign returns (-1)^k.
func cofactorSign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// hasZeroPivotColumn is the structural shortcut run before any determinant
// arithmetic. For each row i whose column-0 entry is exactly zero it scans
// column i over rows 1..n-1 and row i over columns 1..n-1; if either scan
// reaches its end without meeting a non-zero entry the matrix is reported as
// degenerate. The column scan is repeated on every step of the row scan and
// both scans stop at the first non-zero entry. A 1×1 matrix never fires.
//
// m must be square: column i is addressed with a row index.
func (m *Dense) hasZeroPivotColumn() bool {
	n := m.r
	zero := false
	var i, j, k int
	for i = 0; i < n; i++ {
		if m.at(i, 0) != 0 {
			continue
		}
		for j = 1; j < m.c; j++ {
			for k = 1; k < n; k++ {
				if m.at(k, i) != 0 {
					break
				}
				if k+1 == n {
					zero = true
				}
			}
			if m.at(i, j) != 0 {
				break
			}
			if j+1 == m.c {
				zero = true
			}
		}
	}

	return zero
}

// gaussDeterminant reduces a private copy of m to upper-triangular form with
// partial pivoting and returns the signed product of the pivots.
// MAIN DESCRIPTION:
//   - For each pivot column i pick the row j ≥ i with the largest |a[j][i]|
//     (first one wins on ties); swapping flips the sign.
//   - Rows below the pivot are reduced on columns > i; column i is set to 0.
//   - No zero-pivot guard: see the package note above.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the copy; m is untouched.
func (m *Dense) gaussDeterminant() float64 {
	g := m.Clone()
	n := g.r
	det := 1.0

	var i, j, k, maxRow int
	var factor float64
	var pivotRow, cur []float64
	for i = 0; i < n; i++ {
		maxRow = i
		for j = i + 1; j < n; j++ {
			if math.Abs(g.at(j, i)) > math.Abs(g.at(maxRow, i)) {
				maxRow = j
			}
		}
		if maxRow != i {
			g.swapRows(i, maxRow)
			det *= -1
		}

		pivotRow = g.row(i)
		for j = i + 1; j < n; j++ {
			cur = g.row(j)
			factor = cur[i] / pivotRow[i]
			for k = i + 1; k < n; k++ {
				cur[k] -= factor * pivotRow[k]
			}
			cur[i] = 0
		}
		det *= pivotRow[i]
	}

	return det
}

// swapRows exchanges rows a and b in place.
func (m *Dense) swapRows(a, b int) {
	ra, rb := m.row(a), m.row(b)
	for k := range ra {
		ra[k], rb[k] = rb[k], ra[k]
	}
}
