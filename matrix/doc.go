// Package matrix offers a dense, row-major float64 matrix with arithmetic,
// transposition, minors, determinants, cofactors and inversion.
//
// The matrix package provides:
//
//   - Dense: an exclusively owned R×C buffer with bounds-checked access
//     (At, Set, Ptr) and in-place resizing (SetRows, SetCols).
//   - Ownership helpers: Clone and CopyFrom duplicate data, Move transfers the
//     buffer and leaves the source empty, Release drops it.
//   - Elementwise Add/Sub/Scale in place, with Sum/Diff/Scaled returning new
//     values; Mul in place and Product returning a new value.
//   - Determinant (closed forms, Laplace expansion, Gaussian elimination with
//     partial pivoting), Complements and Inverse.
//   - ToGonum/FromGonum to exchange values with gonum.org/v1/gonum/mat.
//
// Errors are sentinel-based (ErrInvalidDimensions, ErrDimensionMismatch,
// ErrOutOfRange, ErrNonSquare, ErrSingular, ...) and matched with errors.Is;
// IndexError and ShapeError carry the offending coordinates and shapes.
//
// Matrices target small to moderate sizes. A Dense is not safe for concurrent
// use without external synchronization.
package matrix
