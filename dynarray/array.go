// SPDX-License-Identifier: MIT

package dynarray

import (
	"fmt"
	"iter"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRef     = "Ref"
	ctxReserve = "Reserve"
)

// arrayErrorf wraps a sentinel with the method tag and the offending index.
func arrayErrorf(method string, i int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w", method, i, err)
}

// Array is a growable sequence of T.
// data holds exactly Len() elements; data[len:cap] is always zeroed.
// The zero value is an empty, ready-to-use Array.
type Array[T any] struct {
	data []T
}

// New returns an Array of n zero values.
//
// Errors:
//   - ErrNegativeLength when n < 0.
//
// Complexity: O(n).
func New[T any](n int) (*Array[T], error) {
	if n < 0 {
		return nil, arrayErrorf(ctxNew, n, ErrNegativeLength)
	}

	return &Array[T]{data: make([]T, n)}, nil
}

// NewFilled returns an Array of n copies of v.
//
// Errors:
//   - ErrNegativeLength when n < 0.
//
// Complexity: O(n).
func NewFilled[T any](n int, v T) (*Array[T], error) {
	a, err := New[T](n)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = v
	}

	return a, nil
}

// Of returns an Array holding a copy of vals.
func Of[T any](vals ...T) *Array[T] {
	buf := make([]T, len(vals))
	copy(buf, vals)

	return &Array[T]{data: buf}
}

// Len returns the number of elements. Complexity: O(1).
func (a *Array[T]) Len() int { return len(a.data) }

// Cap returns the capacity of the backing buffer. Complexity: O(1).
func (a *Array[T]) Cap() int { return cap(a.data) }

// inRange reports whether 0 <= i < Len().
func (a *Array[T]) inRange(i int) bool { return i >= 0 && i < len(a.data) }

// At returns the element at i or ErrOutOfRange.
func (a *Array[T]) At(i int) (T, error) {
	if !a.inRange(i) {
		var zero T
		return zero, arrayErrorf(ctxAt, i, ErrOutOfRange)
	}

	return a.data[i], nil
}

// Set overwrites the element at i or returns ErrOutOfRange.
// Set never grows the Array; use Reserve or Append for that.
func (a *Array[T]) Set(i int, v T) error {
	if !a.inRange(i) {
		return arrayErrorf(ctxSet, i, ErrOutOfRange)
	}
	a.data[i] = v

	return nil
}

// Ref returns a pointer to the element at i or ErrOutOfRange.
// The pointer is invalidated by the next Reserve or Append that reallocates.
func (a *Array[T]) Ref(i int) (*T, error) {
	if !a.inRange(i) {
		return nil, arrayErrorf(ctxRef, i, ErrOutOfRange)
	}

	return &a.data[i], nil
}

// Get returns the element at i without the error path.
// It panics like a slice index when i is out of range.
func (a *Array[T]) Get(i int) T { return a.data[i] }

// Put stores v at i without the error path.
// It panics like a slice index when i is out of range.
func (a *Array[T]) Put(i int, v T) { a.data[i] = v }

// Reserve resizes the Array to exactly n elements.
//
// Implementation:
//   - Stage 1: reject n < 0.
//   - Stage 2: n > Cap(): allocate a fresh buffer of length n, copy the old
//     prefix when preserve is set.
//   - Stage 3: n <= Cap(): reslice in place, zero the dropped tail, and zero
//     everything when preserve is not set.
//
// Behavior highlights:
//   - preserve=true keeps elements [0, min(old, n)); new slots hold the zero value.
//   - preserve=false leaves n zero values.
//
// Errors:
//   - ErrNegativeLength when n < 0 (the Array is left untouched).
//
// Complexity:
//   - Time O(max(old, n)), Space O(n) when reallocating.
func (a *Array[T]) Reserve(n int, preserve bool) error {
	if n < 0 {
		return arrayErrorf(ctxReserve, n, ErrNegativeLength)
	}

	old := len(a.data)
	if n > cap(a.data) {
		buf := make([]T, n)
		if preserve {
			copy(buf, a.data)
		}
		a.data = buf

		return nil
	}

	if n < old {
		clear(a.data[n:old]) // keep the tail zeroed past Len
	}
	a.data = a.data[:n]
	if !preserve {
		clear(a.data)
	}

	return nil
}

// Append adds vals to the end of the Array.
// Complexity: amortized O(len(vals)).
func (a *Array[T]) Append(vals ...T) {
	a.data = append(a.data, vals...)
}

// Clone returns an Array with its own backing buffer.
// Elements are copied by assignment, so pointer elements are shared.
func (a *Array[T]) Clone() *Array[T] {
	return Of(a.data...)
}

// Slice returns a copy of the elements as a plain slice.
func (a *Array[T]) Slice() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)

	return out
}

// All iterates (index, value) pairs in ascending index order.
// The sequence re-reads the Array on every invocation.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(a.data); i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// String renders the elements with %v, e.g. "[1 2 3]".
func (a *Array[T]) String() string {
	return fmt.Sprint(a.data)
}
