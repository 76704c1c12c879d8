// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic operators on Matrix: element-wise
// addition and subtraction, and the standard matrix product, each in a
// copying form (fresh result) and an in-place form (mutates the receiver).
//
// Contracts:
//   - Shapes are validated before any element is touched; on mismatch the
//     operation fails with ErrDimensionMismatch and no operand changes.
//   - No broadcasting, no clamping, no padding.
//   - Mul accumulates Σ_k a[i][k]*b[k][j] with k ascending, seeded by the
//     zero value of T.
//   - MulInPlace materializes the full product before replacing the
//     receiver's storage, so m.MulInPlace(m) reads only old values.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/dynarray"
)

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opMulInPlace = "MulInPlace"
	opReserve    = "Reserve"
	opCopyFrom   = "CopyFrom"
	opFromRows   = "FromRows"
	opNewFilled  = "NewFilled"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub writes dst[i][j] = a[i][j] ± b[i][j] for every cell.
// Shapes must already be validated. dst may alias a and/or b: each cell is
// read before it is written and no other cell depends on it.
// Deterministic i→j order. Time O(r*c), Space O(1).
func addSub[T Numeric](dst, a, b *Matrix[T], subtract bool) {
	var i, j int
	var rd, ra, rb *dynarray.Array[T]
	for i = 0; i < a.rows; i++ {
		rd, ra, rb = dst.data.Get(i), a.data.Get(i), b.data.Get(i)
		if subtract {
			for j = 0; j < a.cols; j++ {
				rd.Put(j, ra.Get(j)-rb.Get(j))
			}
			continue
		}
		for j = 0; j < a.cols; j++ {
			rd.Put(j, ra.Get(j)+rb.Get(j))
		}
	}
}

// Add computes C = A + B into a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (rows or cols differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Inputs are never mutated.
func Add[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res, err := NewZeros[T](a.rows, a.cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	addSub(res, a, b, false)

	return res, nil
}

// Sub computes C = A - B into a fresh matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := NewZeros[T](a.rows, a.cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	addSub(res, a, b, true)

	return res, nil
}

// Mul performs the standard matrix product C = A × B.
// Implementation:
//   - Stage 1: validate A,B non-nil and A.Cols == B.Rows.
//   - Stage 2: allocate C (A.Rows × B.Cols) of zero values.
//   - Stage 3: i→k→j loops: C[i][j] += A[i][k]*B[k][j], k ascending.
//
// Behavior highlights:
//   - Every C[i][j] starts from the zero value of T and accumulates terms in
//     ascending k, so the summation order matches the textbook i→j→k form.
//   - No zero-skipping: 0*Inf and 0*NaN propagate as they would term by term.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewZeros[T](a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		aik        T
		ra, rb, rr *dynarray.Array[T]
	)
	for i = 0; i < a.rows; i++ {
		ra, rr = a.data.Get(i), res.data.Get(i)
		for k = 0; k < a.cols; k++ {
			aik = ra.Get(k)
			rb = b.data.Get(k)
			for j = 0; j < b.cols; j++ {
				rr.Put(j, rr.Get(j)+aik*rb.Get(j))
			}
		}
	}

	return res, nil
}

// Add returns m + b as a fresh matrix. See the package-level Add.
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) { return Add(m, b) }

// Sub returns m - b as a fresh matrix. See the package-level Sub.
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) { return Sub(m, b) }

// Mul returns m × b as a fresh matrix. See the package-level Mul.
func (m *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) { return Mul(m, b) }

// AddInPlace performs m += b element-wise. b is not modified; b may be m.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m unchanged).
func (m *Matrix[T]) AddInPlace(b *Matrix[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	addSub(m, m, b, false)

	return nil
}

// SubInPlace performs m -= b element-wise. b is not modified; b may be m.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m unchanged).
func (m *Matrix[T]) SubInPlace(b *Matrix[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	addSub(m, m, b, true)

	return nil
}

// MulInPlace performs m = m × b.
// The product is computed into a temporary first and then replaces m's
// storage, so m may change shape to (m.Rows, b.Cols) and b may be m.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m unchanged).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the temporary.
func (m *Matrix[T]) MulInPlace(b *Matrix[T]) error {
	prod, err := Mul(m, b)
	if err != nil {
		return matrixErrorf(opMulInPlace, err)
	}
	m.rows, m.cols, m.data = prod.rows, prod.cols, prod.data

	return nil
}
