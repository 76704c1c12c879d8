// SPDX-License-Identifier: MIT

// Package scenario loads YAML-described matrix workloads and runs them
// against matrix.Matrix[float64].
//
// A scenario declares named operands, an ordered list of steps, and
// optional expectations checked once every step has run:
//
//	cell_width: 2
//	matrices:
//	  m: [[1, 2], [4, 5], [7, 8]]
//	  n: [[2, 4, 6], [8, 10, 12]]
//	steps:
//	  - {op: mul_assign, left: m, right: n}
//	  - {op: print, left: m}
//	expect:
//	  m: [[18, 24, 30], [48, 66, 84], [78, 108, 138]]
package scenario

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvmat/matrix"
	"gopkg.in/yaml.v3"
)

// Supported step operations.
const (
	OpAdd       = "add"
	OpSub       = "sub"
	OpMul       = "mul"
	OpAddAssign = "add_assign"
	OpSubAssign = "sub_assign"
	OpMulAssign = "mul_assign"
	OpCopy      = "copy"
	OpReserve   = "reserve"
	OpSet       = "set"
	OpPrint     = "print"
)

// DefaultCellWidth mirrors the library default so a scenario that omits
// cell_width prints exactly like Matrix.String.
const DefaultCellWidth = matrix.DefaultCellWidth

// Scenario is one YAML document.
type Scenario struct {
	Name      string                 `yaml:"name"`
	CellWidth int                    `yaml:"cell_width"`
	Matrices  map[string][][]float64 `yaml:"matrices"`
	Steps     []Step                 `yaml:"steps"`
	Expect    map[string][][]float64 `yaml:"expect"`
}

// Step is a single operation. Which fields are read depends on Op:
//   - add, sub, mul: Into = Left op Right.
//   - add_assign, sub_assign, mul_assign: Left op= Right.
//   - copy: Into = deep copy of Left.
//   - reserve: Left.Reserve(Rows, Cols, Preserve).
//   - set: Left[Row][Col] = Value.
//   - print: render Left.
type Step struct {
	Op       string  `yaml:"op"`
	Left     string  `yaml:"left"`
	Right    string  `yaml:"right,omitempty"`
	Into     string  `yaml:"into,omitempty"`
	Rows     int     `yaml:"rows,omitempty"`
	Cols     int     `yaml:"cols,omitempty"`
	Preserve bool    `yaml:"preserve,omitempty"`
	Row      int     `yaml:"row,omitempty"`
	Col      int     `yaml:"col,omitempty"`
	Value    float64 `yaml:"value,omitempty"`
}

// Default returns an empty scenario carrying the documented defaults.
func Default() *Scenario {
	return &Scenario{CellWidth: DefaultCellWidth}
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse unmarshals data over Default and validates the result.
func Parse(data []byte) (*Scenario, error) {
	sc := Default()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return sc, nil
}

// Marshal encodes sc back to YAML.
func (sc *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(sc)
}

// Validate checks everything that can be decided without running steps:
// cell width, literal shapes, known ops and per-op required fields.
// Matrix names are resolved at run time because steps may create them.
func (sc *Scenario) Validate() error {
	if sc.CellWidth < 0 {
		return fmt.Errorf("%w: cell_width %d < 0", ErrInvalidScenario, sc.CellWidth)
	}
	for name, rows := range sc.Matrices {
		if err := checkLiteral(rows); err != nil {
			return fmt.Errorf("%w: matrix %q: %v", ErrInvalidScenario, name, err)
		}
	}
	for name, rows := range sc.Expect {
		if err := checkLiteral(rows); err != nil {
			return fmt.Errorf("%w: expect %q: %v", ErrInvalidScenario, name, err)
		}
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	return nil
}

func checkLiteral(rows [][]float64) error {
	_, err := matrix.FromRows(rows)
	return err
}

func (st Step) validate() error {
	switch st.Op {
	case OpAdd, OpSub, OpMul:
		if st.Right == "" || st.Into == "" {
			return fmt.Errorf("%w: %q requires right and into", ErrInvalidScenario, st.Op)
		}
	case OpAddAssign, OpSubAssign, OpMulAssign:
		if st.Right == "" {
			return fmt.Errorf("%w: %q requires right", ErrInvalidScenario, st.Op)
		}
	case OpCopy:
		if st.Into == "" {
			return fmt.Errorf("%w: %q requires into", ErrInvalidScenario, st.Op)
		}
	case OpReserve, OpSet, OpPrint:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	if st.Left == "" {
		return fmt.Errorf("%w: %q requires left", ErrInvalidScenario, st.Op)
	}

	return nil
}
