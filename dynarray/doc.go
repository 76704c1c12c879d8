// SPDX-License-Identifier: MIT

// Package dynarray provides Array, an ordered, indexable, resizable sequence
// of values of any type.
//
// Array is the storage primitive behind matrix.Matrix: the matrix keeps one
// Array of row pointers and one Array per row. The surface mirrors that use:
//
//   - Len / Cap report logical length and backing capacity.
//   - At / Set / Ref are bounds-checked and return ErrOutOfRange.
//   - Get / Put are unchecked and panic like a slice on misuse; they exist
//     for hot loops whose indices are already validated.
//   - Reserve(n, preserve) resizes to exactly n elements, either keeping the
//     overlapping prefix or resetting every slot to the zero value.
//
// Growth policy:
//
//	Reserve grows the backing buffer to exactly n when n exceeds the current
//	capacity and reslices otherwise; Append uses the runtime's amortized
//	growth. Slots beyond Len are kept zeroed, so shrinking releases
//	references held by dropped elements.
//
// Array is not safe for concurrent mutation.
package dynarray
