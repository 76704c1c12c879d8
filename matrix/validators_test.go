// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateNotNil(matrix.New[int]()))
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
}

func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, matrix.ValidateSameShape(a, a.Clone()))

	err := matrix.ValidateSameShape(a, mustRows(t, [][]int{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorContains(t, err, "Rows")

	err = matrix.ValidateSameShape(a, mustRows(t, [][]int{{1}, {2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorContains(t, err, "Columns")

	require.ErrorIs(t, matrix.ValidateSameShape(nil, a), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{1, 2, 3}})
	b := mustRows(t, [][]int{{1}, {2}, {3}})
	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.NoError(t, matrix.ValidateMulCompatible(b, a))

	err := matrix.ValidateMulCompatible(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorContains(t, err, "1x3 * 1x3")

	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}
