// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small, deterministic fixtures and assertions shared by the matrix tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a matrix from a nested literal or fails the test.
func mustRows[T matrix.Numeric](t testing.TB, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// requireRows asserts m holds exactly want and satisfies the shape invariants.
func requireRows[T matrix.Numeric](t *testing.T, want [][]T, m *matrix.Matrix[T]) {
	t.Helper()
	requireInvariants(t, m)
	require.Equal(t, len(want), m.Rows(), "rows")
	if len(want) > 0 {
		require.Equal(t, len(want[0]), m.Cols(), "cols")
	}
	require.Equal(t, want, m.ToRows())
}

// requireInvariants checks rows == row-table length and every row has Cols() elements.
func requireInvariants[T matrix.Numeric](t *testing.T, m *matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, m.Rows(), matrix.RowTableLen_TestOnly(m), "row table length")
	for i, n := range matrix.RowLens_TestOnly(m) {
		require.Equalf(t, m.Cols(), n, "row %d length", i)
	}
}

// randInts returns an r×c matrix of deterministic values in [-9, 9].
func randInts(t testing.TB, rng *rand.Rand, r, c int) *matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.NewZeros[int](r, c)
	if err != nil {
		t.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rng.Intn(19)-9); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// randFloats returns an r×c matrix of deterministic U(-1,1) values.
func randFloats(t testing.TB, rng *rand.Rand, r, c int) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.NewZeros[float64](r, c)
	if err != nil {
		t.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}
	m.Do(func(i, j int, _ float64) bool {
		if err = m.Set(i, j, rng.Float64()*2-1); err != nil {
			t.Fatalf("Set(%d,%d): %v", i, j, err)
		}
		return true
	})

	return m
}
