// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"fmt"
	"io"
	"sort"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/lvmat/matrix"
)

var log = logging.Logger("scenario")

// Printer renders one named matrix for a print step.
type Printer func(w io.Writer, name string, m *matrix.Matrix[float64], opts ...matrix.FormatOption) error

// PlainPrinter writes m exactly as matrix.Fprint does and ignores name.
func PlainPrinter(w io.Writer, _ string, m *matrix.Matrix[float64], opts ...matrix.FormatOption) error {
	return matrix.Fprint(w, m, opts...)
}

// Runner executes scenarios, writing print steps to Out.
// A nil Print falls back to PlainPrinter; a nil Out discards output.
type Runner struct {
	Out   io.Writer
	Print Printer
}

// NewRunner returns a Runner printing to out with PlainPrinter.
func NewRunner(out io.Writer) *Runner {
	return &Runner{Out: out, Print: PlainPrinter}
}

// Result holds the matrices left after a run, keyed by name.
type Result struct {
	Matrices map[string]*matrix.Matrix[float64]
}

// Names returns the result's matrix names in sorted order.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Matrices))
	for name := range r.Matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Run executes sc step by step and then checks its expectations.
// Implementation:
//   - Stage 1: materialize every declared matrix with matrix.FromRows.
//   - Stage 2: run steps in order; ctx is checked between steps.
//   - Stage 3: compare each expected matrix with matrix.Equal.
//
// Errors:
//   - ErrUnknownMatrix, ErrUnknownOp, ErrExpectation, or the matrix error
//     of the failing step (wrapped with the step index), or ctx.Err().
//
// The Result is returned even when an expectation fails so callers can
// inspect the final state.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	env := make(map[string]*matrix.Matrix[float64], len(sc.Matrices))
	for name, rows := range sc.Matrices {
		m, err := matrix.FromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		env[name] = m
	}
	res := &Result{Matrices: env}
	log.Debugf("scenario %q: %d matrices, %d steps", sc.Name, len(env), len(sc.Steps))

	opts := []matrix.FormatOption{matrix.WithCellWidth(sc.CellWidth)}
	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := r.step(env, st, opts); err != nil {
			log.Warnf("scenario %q: step %d (%s) failed: %v", sc.Name, i, st.Op, err)
			return res, fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
		log.Debugf("scenario %q: step %d (%s) ok", sc.Name, i, st.Op)
	}

	if err := checkExpect(env, sc.Expect); err != nil {
		return res, err
	}
	log.Infof("scenario %q: %d steps, %d expectations passed", sc.Name, len(sc.Steps), len(sc.Expect))

	return res, nil
}

func (r *Runner) printer() Printer {
	if r.Print == nil {
		return PlainPrinter
	}

	return r.Print
}

func (r *Runner) writer() io.Writer {
	if r.Out == nil {
		return io.Discard
	}

	return r.Out
}

func lookup(env map[string]*matrix.Matrix[float64], name string) (*matrix.Matrix[float64], error) {
	m, ok := env[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatrix, name)
	}

	return m, nil
}

func (r *Runner) step(env map[string]*matrix.Matrix[float64], st Step, opts []matrix.FormatOption) error {
	left, err := lookup(env, st.Left)
	if err != nil {
		return err
	}

	var right *matrix.Matrix[float64]
	if st.Right != "" {
		if right, err = lookup(env, st.Right); err != nil {
			return err
		}
	}

	var out *matrix.Matrix[float64]
	switch st.Op {
	case OpAdd:
		out, err = matrix.Add(left, right)
	case OpSub:
		out, err = matrix.Sub(left, right)
	case OpMul:
		out, err = matrix.Mul(left, right)
	case OpCopy:
		out = left.Clone()
	case OpAddAssign:
		return left.AddInPlace(right)
	case OpSubAssign:
		return left.SubInPlace(right)
	case OpMulAssign:
		return left.MulInPlace(right)
	case OpReserve:
		return left.Reserve(st.Rows, st.Cols, st.Preserve)
	case OpSet:
		return left.Set(st.Row, st.Col, st.Value)
	case OpPrint:
		return r.printer()(r.writer(), st.Left, left, opts...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	if err != nil {
		return err
	}
	env[st.Into] = out

	return nil
}

// checkExpect compares final matrices with their expectations in name order.
func checkExpect(env map[string]*matrix.Matrix[float64], expect map[string][][]float64) error {
	names := make([]string, 0, len(expect))
	for name := range expect {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		got, err := lookup(env, name)
		if err != nil {
			return fmt.Errorf("expect: %w", err)
		}
		want, err := matrix.FromRows(expect[name])
		if err != nil {
			return fmt.Errorf("expect %q: %w", name, err)
		}
		if !matrix.Equal(want, got) {
			return fmt.Errorf("%w: %q\nwant:\n%sgot:\n%s", ErrExpectation, name, want, got)
		}
	}

	return nil
}
