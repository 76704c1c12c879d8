// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestReserve(t *testing.T) {
	t.Parallel()

	base := [][]int{{1, 2}, {3, 4}}
	tests := []struct {
		name       string
		rows, cols int
		preserve   bool
		want       [][]int
	}{
		{"grow both preserve", 3, 3, true, [][]int{{1, 2, 0}, {3, 4, 0}, {0, 0, 0}}},
		{"grow both discard", 3, 3, false, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}},
		{"shrink preserve", 1, 1, true, [][]int{{1}}},
		{"shrink discard", 1, 1, false, [][]int{{0}}},
		{"columns only preserve", 2, 3, true, [][]int{{1, 2, 0}, {3, 4, 0}}},
		{"columns only discard", 2, 1, false, [][]int{{0}, {0}}},
		{"rows only preserve", 3, 2, true, [][]int{{1, 2}, {3, 4}, {0, 0}}},
		{"unchanged shape is a no-op", 2, 2, false, [][]int{{1, 2}, {3, 4}}},
		{"to empty", 0, 0, true, [][]int{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustRows(t, base)
			require.NoError(t, m.Reserve(tc.rows, tc.cols, tc.preserve))
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			requireInvariants(t, m)
			require.Equal(t, tc.want, m.ToRows())
		})
	}
}

func TestReserve_ColumnChangeResizesEveryRow(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFilled(4, 2, int8(5))
	require.NoError(t, err)
	require.NoError(t, m.Reserve(4, 5, true))
	require.Equal(t, []int{5, 5, 5, 5}, matrix.RowLens_TestOnly(m))

	// Every new slot is reachable through the checked accessor.
	v, err := m.At(3, 4)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestReserve_PreserveRetainsOverlapAfterGrowth(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1.5, 2.5}, {3.5, 4.5}})
	require.NoError(t, m.Reserve(4, 6, true))
	m.Do(func(i, j int, v float64) bool {
		if i < 2 && j < 2 {
			require.Equal(t, float64(i*2+j)+1.5, v)
		} else {
			require.Zero(t, v)
		}
		return true
	})
}

func TestReserve_ShrinkThenGrowPreserveZeroFills(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, m.Reserve(1, 1, true))
	require.NoError(t, m.Reserve(3, 3, true))
	requireRows(t, [][]int{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}}, m)
}

func TestReserve_FromZeroValue(t *testing.T) {
	t.Parallel()

	var m matrix.Matrix[int]
	require.NoError(t, m.Reserve(2, 3, true))
	requireRows(t, [][]int{{0, 0, 0}, {0, 0, 0}}, &m)
}

func TestReserve_Errors(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]int{{1, 2}})
	require.ErrorIs(t, m.Reserve(-1, 2, true), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, m.Reserve(1, -2, false), matrix.ErrInvalidDimensions)
	requireRows(t, [][]int{{1, 2}}, m)

	var nilM *matrix.Matrix[int]
	require.ErrorIs(t, nilM.Reserve(1, 1, false), matrix.ErrNilMatrix)
}
