// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic integer fixtures for the Sparse tests.
//   • Keep assertions on big.Int grids terse (ints in, ints out).

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
	"github.com/stretchr/testify/require"
)

// Z is the integer ring shared by all tests in this package.
var Z = ring.Integers()

// MustInts builds a rows×cols integer matrix from a row-major grid or fails the test.
func MustInts(t *testing.T, rows, cols int, grid ...int64) *matrix.Sparse[*big.Int] {
	t.Helper()
	m, err := matrix.NewFromGrid[*big.Int](Z, rows, cols, ring.BigInts(grid...))
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n over Z or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Sparse[*big.Int] {
	t.Helper()
	m, err := matrix.NewIdentity[*big.Int](Z, n)
	require.NoError(t, err)

	return m
}

// gridInts flattens m into int64 values for readable assertions.
func gridInts(m *matrix.Sparse[*big.Int]) []int64 {
	g := m.Grid()
	out := make([]int64, len(g))
	for k, v := range g {
		out[k] = v.Int64()
	}

	return out
}

// requireGrid asserts that m is rows×cols with the given row-major content.
func requireGrid(t *testing.T, m *matrix.Sparse[*big.Int], rows, cols int, want ...int64) {
	t.Helper()
	require.Equal(t, rows, m.Rows(), "rows")
	require.Equal(t, cols, m.Cols(), "cols")
	require.Equal(t, want, gridInts(m))
}
