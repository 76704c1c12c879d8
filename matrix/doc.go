// Package matrix offers Matrix[T], a generic row-major two-dimensional
// container with bounds-checked access, explicit resizing, and the basic
// linear-algebra operators.
//
// The matrix package provides:
//
//   - Construction: New (0×0), NewFilled / NewZeros (sized), FromRows
//     (nested literal, rejects ragged rows), NewIdentity.
//   - Access: At / Set / Ref / RowAt (checked, ErrOutOfRange) and Row
//     (unchecked, for trusted loops).
//   - Reserve(rows, cols, preserve) to reshape in place.
//   - Add / Sub / Mul returning fresh matrices, and AddInPlace / SubInPlace /
//     MulInPlace mutating the receiver. Shape mismatches fail fast with
//     ErrDimensionMismatch and leave operands unchanged.
//   - Row iteration (All, Values), element visiting (Do), and text
//     rendering (String, WriteTo, Fprint with FormatOption).
//
// Storage is one dynarray.Array of rows, each a dynarray.Array of exactly
// Cols() elements. Copies (Clone, CopyFrom) are deep.
//
// Element types are constrained by Numeric: integers, floats and complex
// numbers. Their zero value seeds multiplication sums.
//
// A Matrix is not safe for concurrent mutation.
package matrix
