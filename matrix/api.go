// SPDX-License-Identifier: MIT
// Package matrix: convenience constructors.
//
// Purpose:
//   - Thin, intention-revealing entry points built on the canonical
//     constructors; no logic duplication.

package matrix

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
//
// Errors:
//   - ErrInvalidDimensions when n < 0.
//
// Complexity: O(n^2).
func NewIdentity[T Numeric](n int) (*Matrix[T], error) {
	I, err := NewZeros[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data.Get(i).Put(i, 1)
	}

	return I, nil
}

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike[T Numeric](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewZeros[T](m.rows, m.cols)
}
