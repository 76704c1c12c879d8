// Package lvmat is a small generic dense-matrix toolkit: a growable
// array, a row-major matrix built on it, and a scenario runner with a CLI.
//
// What's inside:
//
//	dynarray/           Array[T]: a length-tracked slice with Reserve(n, preserve)
//	matrix/             Matrix[T]: checked access, Reserve, Add/Sub/Mul and in-place forms
//	internal/scenario/  YAML scenarios: named matrices, ordered steps, expectations
//	cmd/lvmat/          CLI: multiply, add, run FILE, list
//	examples/           runnable demos
//
// Quick start:
//
//	m := matrix.MustFromRows([][]int{{1, 2}, {4, 5}, {7, 8}})
//	n := matrix.MustFromRows([][]int{{2, 4, 6}, {8, 10, 12}})
//	_ = m.MulInPlace(n)
//	fmt.Print(m)
//
// Element types are integers, floats and complex numbers (matrix.Numeric).
// Shape mismatches return matrix.ErrDimensionMismatch and leave operands
// untouched; out-of-range access returns matrix.ErrOutOfRange.
//
// A Matrix is not safe for concurrent mutation.
package lvmat
