// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// String renders m with the default options: one line per row,
// "[ " + right-aligned elements + " ]", e.g.
//
//	[  2  4  6 ]
//	[  8 10 12 ]
func (m *Matrix[T]) String() string {
	var b strings.Builder
	m.render(&b, gatherFormatOptions())

	return b.String()
}

// WriteTo writes the default rendering of m to w. It implements io.WriterTo.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())

	return int64(n), err
}

// Fprint writes the rendering of m to w using opts.
//
// Errors:
//   - ErrNilMatrix when m is nil; otherwise whatever w returns.
func Fprint[T Numeric](w io.Writer, m *Matrix[T], opts ...FormatOption) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Fprint", err)
	}

	var b strings.Builder
	m.render(&b, gatherFormatOptions(opts...))
	_, err := io.WriteString(w, b.String())

	return err
}

// Sprint returns the rendering of m using opts.
func Sprint[T Numeric](m *Matrix[T], opts ...FormatOption) string {
	var b strings.Builder
	_ = Fprint(&b, m, opts...) // strings.Builder never fails; nil m yields ""

	return b.String()
}

// render writes every row into b in fixed i→j order.
func (m *Matrix[T]) render(b *strings.Builder, o formatOptions) {
	var i, j int
	for i = 0; i < m.rows; i++ {
		row := m.data.Get(i)
		b.WriteString(o.rowOpen)
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(b, "%*v", o.width, row.Get(j))
			if j+1 < m.cols {
				b.WriteString(o.separator)
			}
		}
		b.WriteString(o.rowClose)
		b.WriteByte('\n')
	}
}
