// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"

	"github.com/katalvlaran/lvmat/dynarray"
)

// All iterates rows in ascending order, yielding (index, row).
// Rows alias the matrix storage, so element writes through Put/Set are
// visible in m. The sequence is restartable: each range re-reads m.
// A nil m yields nothing.
func (m *Matrix[T]) All() iter.Seq2[int, *dynarray.Array[T]] {
	return func(yield func(int, *dynarray.Array[T]) bool) {
		if m == nil {
			return
		}
		for i := 0; i < m.rows; i++ {
			if !yield(i, m.data.Get(i)) {
				return
			}
		}
	}
}

// Values iterates rows in ascending order, yielding (index, copy of row).
// It is the read-only counterpart of All.
func (m *Matrix[T]) Values() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if m == nil {
			return
		}
		for i := 0; i < m.rows; i++ {
			if !yield(i, m.data.Get(i).Slice()) {
				return
			}
		}
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// It stops early when f returns false.
// A nil m visits nothing.
// Complexity: O(r*c), no allocations.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	if m == nil {
		return
	}
	var i, j int
	var row *dynarray.Array[T]
	for i = 0; i < m.rows; i++ {
		row = m.data.Get(i)
		for j = 0; j < m.cols; j++ {
			if !f(i, j, row.Get(j)) {
				return
			}
		}
	}
}
