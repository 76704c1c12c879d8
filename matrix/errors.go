// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation returns
// one of these (possibly wrapped with an operation tag or coordinates) and
// tests match them via errors.Is. Every error-returning method reports a nil
// receiver as ErrNilMatrix, and iterators treat a nil receiver as empty.
// The unchecked Row accessor, the plain getters (Rows, Cols, Shape, String)
// on a nil receiver, and invalid options are programmer errors and panic.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for grep-ability.
// Wrap with fmt.Errorf("ctx: %w", ErrX) when context matters; callers still
// match with errors.Is.

var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside
	// [0, Rows()) or [0, Cols()). Checked accessors return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes: Add/Sub operands with
	// different rows or columns, Mul where a.Cols != b.Rows, or a ragged
	// nested literal passed to FromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was used as receiver or operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
