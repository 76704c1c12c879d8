// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for storage invariants.
//
// Compiled only with the package tests, so external matrix_test files can
// assert on row-table internals without widening the production API.

// RowTableLen_TestOnly returns the length of the row table.
func RowTableLen_TestOnly[T Numeric](m *Matrix[T]) int {
	return m.data.Len()
}

// RowLens_TestOnly returns the stored length of every row (-1 for a nil row).
func RowLens_TestOnly[T Numeric](m *Matrix[T]) []int {
	out := make([]int, m.data.Len())
	for i := range out {
		row := m.data.Get(i)
		if row == nil {
			out[i] = -1
			continue
		}
		out[i] = row.Len()
	}

	return out
}

// PanicCellWidthInvalid_TestOnly exports the option panic message.
const PanicCellWidthInvalid_TestOnly = panicCellWidthInvalid
