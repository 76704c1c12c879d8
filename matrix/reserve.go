// SPDX-License-Identifier: MIT

package matrix

// Reserve reshapes m to rows×cols.
// Implementation:
//   - Stage 1: validate the receiver and the requested shape.
//   - Stage 2: return early when BOTH dimensions are unchanged.
//   - Stage 3: resize the row table with preserve; then per row either
//     resize it in place (preserve) or replace it with a fresh zero row.
//
// Behavior highlights:
//   - preserve=true keeps every element inside the overlap of the old and new
//     shapes; new slots hold the zero value.
//   - preserve=false leaves an all-zero matrix, except that an unchanged shape
//     is a no-op and keeps the current contents.
//   - A change in columns alone is a resize trigger; afterwards every row has
//     exactly cols elements.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions. m is untouched on error.
//
// Complexity:
//   - Time O(max(old, new) cells), Space O(new cells).
func (m *Matrix[T]) Reserve(rows, cols int, preserve bool) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opReserve, err)
	}
	if err := validateDims(rows, cols); err != nil {
		return matrixErrorf(opReserve, err)
	}
	if rows == m.rows && cols == m.cols {
		return nil
	}

	if err := m.data.Reserve(rows, preserve); err != nil {
		return matrixErrorf(opReserve, err)
	}

	var zero T
	for i := 0; i < rows; i++ {
		row := m.data.Get(i)
		if preserve && row != nil {
			_ = row.Reserve(cols, true) // cols validated above
			continue
		}
		m.data.Put(i, newRow(cols, zero))
	}
	m.rows, m.cols = rows, cols

	return nil
}
