// SPDX-License-Identifier: MIT

package scenario_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/internal/scenario"
	"github.com/stretchr/testify/require"
)

func TestLoad_Pipeline(t *testing.T) {
	t.Parallel()

	sc, err := scenario.Load("testdata/pipeline.yaml")
	require.NoError(t, err)
	require.Equal(t, "pipeline", sc.Name)
	require.Equal(t, 3, sc.CellWidth)
	require.Len(t, sc.Matrices, 2)
	require.Len(t, sc.Steps, 8)
	require.Equal(t, scenario.Step{Op: scenario.OpReserve, Left: "a", Rows: 3, Cols: 3, Preserve: true}, sc.Steps[5])
	require.Equal(t, scenario.Step{Op: scenario.OpSet, Left: "a", Row: 2, Col: 2, Value: 9}, sc.Steps[6])
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := scenario.Load("testdata/missing.yaml")
	require.Error(t, err)

	_, err = scenario.Load("testdata/ragged.yaml")
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)
	require.ErrorContains(t, err, "ragged.yaml")
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	sc, err := scenario.Parse([]byte("matrices:\n  m: [[1]]\n"))
	require.NoError(t, err)
	require.Equal(t, scenario.DefaultCellWidth, sc.CellWidth)
	require.Empty(t, sc.Steps)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"not yaml", "steps: [", scenario.ErrInvalidScenario},
		{"negative width", "cell_width: -1\n", scenario.ErrInvalidScenario},
		{"ragged expect", "expect:\n  m: [[1], [2, 3]]\n", scenario.ErrInvalidScenario},
		{"unknown op", "steps:\n  - {op: transpose, left: m}\n", scenario.ErrUnknownOp},
		{"missing left", "steps:\n  - {op: print}\n", scenario.ErrInvalidScenario},
		{"missing into", "steps:\n  - {op: add, left: a, right: b}\n", scenario.ErrInvalidScenario},
		{"missing right", "steps:\n  - {op: mul_assign, left: a}\n", scenario.ErrInvalidScenario},
		{"copy without into", "steps:\n  - {op: copy, left: a}\n", scenario.ErrInvalidScenario},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := scenario.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	sc, err := scenario.Builtin("multiply")
	require.NoError(t, err)

	data, err := sc.Marshal()
	require.NoError(t, err)
	again, err := scenario.Parse(data)
	require.NoError(t, err)
	require.Equal(t, sc, again)
}
