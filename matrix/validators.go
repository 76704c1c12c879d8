// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for nil/shape/index checks shared by every operation.
//  - Return sentinels wrapped with the validator tag; call sites add the op tag.
//
// Determinism & Performance:
//  - All checks are O(1), pure, and allocate only on the error path.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix when m is nil.
// Use it as the first step of composite validations.
func ValidateNotNil[T Numeric](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal rows and columns.
// Used by Add/Sub and their in-place variants.
// Complexity: O(1).
func ValidateSameShape[T Numeric](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateMulCompatible[T Numeric](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.rows, a.cols, b.rows, b.cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// validateDims rejects negative shapes.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("validateDims(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// validateIndex checks m != nil, 0 <= row < m.rows and 0 <= col < m.cols.
func (m *Matrix[T]) validateIndex(row, col int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if row < 0 || row >= m.rows {
		return ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}
