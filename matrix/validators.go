// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/empty/shape checks here.
//  - Return sentinel-backed errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Live → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is nil, including a typed nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix for a nil interface or a typed nil *Dense.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateLive – Composite: NotNil → non-empty.
// A moved-from or released Dense reports 0×0 and fails with ErrEmptyMatrix.
func ValidateLive(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return validatorErrorf("ValidateLive", ErrEmptyMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return &ShapeError{
			Op: "ValidateSameShape", Rows: a.Rows(), Cols: a.Cols(),
			OtherRows: b.Rows(), OtherCols: b.Cols(), Err: ErrDimensionMismatch,
		}
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare wrapped in a *ShapeError.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return &ShapeError{Op: "ValidateSquare", Rows: m.Rows(), Cols: m.Cols(), Err: ErrNonSquare}
	}

	return nil
}

// ValidateBinarySameShape – Composite: Live(a) → Live(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return ValidateSameShape(a, b)
}

// ValidateSquareLive – Composite: Live → Square.
func ValidateSquareLive(m Matrix) error {
	if err := ValidateLive(m); err != nil {
		return validatorErrorf("ValidateSquareLive", err)
	}

	return ValidateSquare(m)
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs live.
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return &ShapeError{
			Op: "ValidateMulCompatible", Rows: a.Rows(), Cols: a.Cols(),
			OtherRows: b.Rows(), OtherCols: b.Cols(), Err: ErrDimensionMismatch,
		}
	}

	return nil
}
