// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Keep storage as one dynarray.Array of row pointers, each row a
//     dynarray.Array of exactly Cols() elements.
//   - Guarantee safety at the public surface: At/Set/Ref/RowAt return errors
//     instead of panicking. Row is the only unchecked accessor.
//   - Copies are always deep; no two matrices share a row.
//
// Complexity quicksheet:
//   - NewFilled/FromRows/Clone: O(r*c); At/Set/Ref/Row/RowAt: O(1).

package matrix

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvmat/dynarray"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxRef   = "Ref"
	ctxRowAt = "RowAt"
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
// The sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a row-major rows×cols container of T.
//   - rows, cols hold the shape (both >= 0).
//   - data holds exactly rows row pointers; every row holds exactly cols values.
//
// The zero value is an empty 0×0 matrix ready for Reserve.
// A Matrix is not safe for concurrent mutation; guard it externally.
type Matrix[T Numeric] struct {
	rows, cols int
	data       dynarray.Array[*dynarray.Array[T]]
}

// Compile-time assertions for fmt.Stringer and io.WriterTo conformance.
var (
	_ fmt.Stringer = (*Matrix[int])(nil)
	_ io.WriterTo  = (*Matrix[float64])(nil)
)

// New returns an empty 0×0 matrix.
func New[T Numeric]() *Matrix[T] {
	return &Matrix[T]{}
}

// NewZeros returns a rows×cols matrix of zero values.
// It is a thin alias of NewFilled with the zero value of T.
func NewZeros[T Numeric](rows, cols int) (*Matrix[T], error) {
	var zero T
	return NewFilled(rows, cols, zero)
}

// NewFilled returns a rows×cols matrix with every element set to fill.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: reserve the row table and allocate each row filled with fill.
//
// Behavior highlights:
//   - 0×N and N×0 shapes are legal.
//   - Rows never share storage.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled[T Numeric](rows, cols int, fill T) (*Matrix[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewFilled, err)
	}

	m := &Matrix[T]{rows: rows, cols: cols}
	_ = m.data.Reserve(rows, false) // rows validated above
	for i := 0; i < rows; i++ {
		m.data.Put(i, newRow(cols, fill))
	}

	return m, nil
}

// FromRows builds a matrix from a nested literal.
// Implementation:
//   - Stage 1: columns come from the first row; every other row must match.
//   - Stage 2: allocate and copy positionally.
//
// Behavior highlights:
//   - An empty outer slice yields a 0×0 matrix.
//   - The input is copied; later writes to src do not affect the matrix.
//
// Errors:
//   - ErrDimensionMismatch when any row length differs from the first
//     ("inconsistent row length"). Nothing is allocated in that case.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Numeric](src [][]T) (*Matrix[T], error) {
	if len(src) == 0 {
		return New[T](), nil
	}

	cols := len(src[0])
	for i, row := range src {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d columns, want %d: inconsistent row length: %w",
					i, len(row), cols, ErrDimensionMismatch))
		}
	}

	m := &Matrix[T]{rows: len(src), cols: cols}
	_ = m.data.Reserve(len(src), false)
	for i, row := range src {
		m.data.Put(i, dynarray.Of(row...))
	}

	return m, nil
}

// MustFromRows is like FromRows but panics on error.
// Intended for literals in tests and examples whose shape is known to be valid.
func MustFromRows[T Numeric](src [][]T) *Matrix[T] {
	m, err := FromRows(src)
	if err != nil {
		panic(err)
	}

	return m
}

// newRow allocates one row of n copies of fill. n must be >= 0.
func newRow[T Numeric](n int, fill T) *dynarray.Array[T] {
	row, _ := dynarray.NewFilled(n, fill) // callers validate n
	return row
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Row returns row i without bounds checking.
// It panics on an out-of-range index; use RowAt for untrusted input.
// The returned row aliases the matrix storage.
func (m *Matrix[T]) Row(i int) *dynarray.Array[T] {
	return m.data.Get(i)
}

// RowAt returns row i or ErrOutOfRange when i is outside [0, Rows()).
// The returned row aliases the matrix storage; resizing it through the
// dynarray API breaks the matrix shape invariant and is not supported.
func (m *Matrix[T]) RowAt(i int) (*dynarray.Array[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRowAt, i, err)
	}
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRowAt, i, ErrOutOfRange)
	}

	return m.data.Get(i), nil
}

// At returns the value at (row, col) or ErrOutOfRange (ErrNilMatrix for a nil m).
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := m.validateIndex(row, col); err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data.Get(row).Get(col), nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Set never grows the matrix; use Reserve to change the shape.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := m.validateIndex(row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data.Get(row).Put(col, v)

	return nil
}

// Ref returns a pointer to the element at (row, col) or ErrOutOfRange.
// The pointer stays valid until the next Reserve, CopyFrom or MulInPlace.
func (m *Matrix[T]) Ref(row, col int) (*T, error) {
	if err := m.validateIndex(row, col); err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return m.data.Get(row).Ref(col)
}

// Clone returns a deep copy: same shape, independent rows.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := &Matrix[T]{rows: m.rows, cols: m.cols}
	_ = cp.data.Reserve(m.rows, false)
	for i := 0; i < m.rows; i++ {
		cp.data.Put(i, m.data.Get(i).Clone())
	}

	return cp
}

// CopyFrom makes m an element-wise copy of src (assignment semantics).
// Implementation:
//   - Stage 1: reserve m to src's shape, discarding old contents.
//   - Stage 2: copy every element; rows stay owned by m.
//
// Behavior highlights:
//   - Self-assignment is a no-op.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opCopyFrom, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opCopyFrom, err)
	}
	if m == src {
		return nil
	}
	if err := m.Reserve(src.rows, src.cols, false); err != nil {
		return matrixErrorf(opCopyFrom, err)
	}

	var i, j int
	var dst, from *dynarray.Array[T]
	for i = 0; i < src.rows; i++ {
		dst, from = m.data.Get(i), src.data.Get(i)
		for j = 0; j < src.cols; j++ {
			dst.Put(j, from.Get(j))
		}
	}

	return nil
}

// Equal reports whether a and b have the same shape and elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Elements compare with ==, so NaN never equals itself.
func Equal[T Numeric](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}

	var i, j int
	for i = 0; i < a.rows; i++ {
		ra, rb := a.data.Get(i), b.data.Get(i)
		for j = 0; j < a.cols; j++ {
			if ra.Get(j) != rb.Get(j) {
				return false
			}
		}
	}

	return true
}

// ToRows returns the contents as a freshly allocated nested slice.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data.Get(i).Slice()
	}

	return out
}
