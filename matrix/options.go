// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering.
// This file defines:
//   - FormatOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal).
//
// Design goals:
//   - Deterministic output: same matrix and options, same bytes.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCellWidth is the minimum width each element is right-aligned to.
	DefaultCellWidth = 2

	// DefaultRowOpen and DefaultRowClose bracket each rendered row.
	DefaultRowOpen  = "[ "
	DefaultRowClose = " ]"

	// DefaultSeparator separates elements within a row.
	DefaultSeparator = " "
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCellWidthInvalid = "matrix: WithCellWidth: width must be >= 0"
)

// FormatOption mutates rendering options. Safe to apply repeatedly.
type FormatOption func(*formatOptions)

// formatOptions stores the effective rendering configuration.
type formatOptions struct {
	width     int    // minimum element width, right-aligned
	rowOpen   string // row prefix
	rowClose  string // row suffix (before the newline)
	separator string // between elements
}

// WithCellWidth sets the minimum width each element is padded to.
// Panics when width < 0.
func WithCellWidth(width int) FormatOption {
	if width < 0 {
		panic(panicCellWidthInvalid)
	}

	return func(o *formatOptions) { o.width = width }
}

// WithRowDelimiters replaces the row brackets, e.g. WithRowDelimiters("|", "|").
func WithRowDelimiters(open, close string) FormatOption {
	return func(o *formatOptions) {
		o.rowOpen = open
		o.rowClose = close
	}
}

// WithSeparator replaces the element separator.
func WithSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.separator = sep }
}

// gatherFormatOptions applies opts over the defaults. Nil options are skipped.
func gatherFormatOptions(opts ...FormatOption) formatOptions {
	o := formatOptions{
		width:     DefaultCellWidth,
		rowOpen:   DefaultRowOpen,
		rowClose:  DefaultRowClose,
		separator: DefaultSeparator,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
