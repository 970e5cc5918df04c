// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
	"github.com/stretchr/testify/require"
)

// TestElementaryOps applies each primitive to the same fixture.
func TestElementaryOps(t *testing.T) {
	t.Parallel()

	base := func() *matrix.Sparse[*big.Int] {
		return MustInts(t, 2, 3,
			1, 2, 0,
			0, 3, 4)
	}

	tests := []struct {
		name string
		op   func(m *matrix.Sparse[*big.Int]) error
		want []int64
	}{
		{"swap rows", func(m *matrix.Sparse[*big.Int]) error { return m.SwapRows(0, 1) },
			[]int64{0, 3, 4, 1, 2, 0}},
		{"swap cols", func(m *matrix.Sparse[*big.Int]) error { return m.SwapCols(0, 2) },
			[]int64{0, 2, 1, 4, 3, 0}},
		{"multiply row by -1", func(m *matrix.Sparse[*big.Int]) error { return m.MultiplyRow(1, ring.Int(-1)) },
			[]int64{1, 2, 0, 0, -3, -4}},
		{"multiply col by -1", func(m *matrix.Sparse[*big.Int]) error { return m.MultiplyCol(1, ring.Int(-1)) },
			[]int64{1, -2, 0, 0, -3, 4}},
		{"add row", func(m *matrix.Sparse[*big.Int]) error { return m.AddRow(0, 1, ring.Int(-2)) },
			[]int64{1, 2, 0, -2, -1, 4}},
		{"add row cancels", func(m *matrix.Sparse[*big.Int]) error { return m.AddRow(1, 0, ring.Int(0)) },
			[]int64{1, 2, 0, 0, 3, 4}},
		{"add col", func(m *matrix.Sparse[*big.Int]) error { return m.AddCol(0, 1, ring.Int(-2)) },
			[]int64{1, 0, 0, 0, 3, 4}},
		{"add col from empty", func(m *matrix.Sparse[*big.Int]) error {
			if err := m.AddCol(0, 2, ring.Int(5)); err != nil {
				return err
			}
			return m.AddCol(2, 0, ring.Int(0))
		}, []int64{1, 2, 5, 0, 3, 4}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := base()
			require.NoError(t, tc.op(m))
			requireGrid(t, m, 2, 3, tc.want...)
		})
	}
}

func TestElementaryOps_Errors(t *testing.T) {
	t.Parallel()

	m := MustInts(t, 2, 2, 1, 2, 3, 4)

	require.ErrorIs(t, m.MultiplyRow(0, ring.Int(2)), matrix.ErrInvalidScalar)
	require.ErrorIs(t, m.MultiplyCol(0, ring.Int(0)), matrix.ErrInvalidScalar)
	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(-1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddRow(0, 0, ring.Int(1)), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddCol(0, 5, ring.Int(1)), matrix.ErrOutOfRange)

	// failed operations leave the matrix untouched
	requireGrid(t, m, 2, 2, 1, 2, 3, 4)
}

// TestElementaryOps_MatchMultiplication checks that AddRow on A equals E·A
// with E the corresponding elementary matrix.
func TestElementaryOps_MatchMultiplication(t *testing.T) {
	t.Parallel()

	a := MustInts(t, 3, 3,
		2, 0, 1,
		0, 1, 5,
		7, 3, 0)
	e := MustIdentity(t, 3)
	require.NoError(t, e.Set(2, 0, ring.Int(-4))) // row2 += -4·row0

	want, err := matrix.Mul(e, a)
	require.NoError(t, err)

	got := a.Clone()
	require.NoError(t, got.AddRow(0, 2, ring.Int(-4)))
	require.True(t, got.Equal(want))

	// column counterpart: A·E' with E' adding -4·col2 into col0
	f := MustIdentity(t, 3)
	require.NoError(t, f.Set(2, 0, ring.Int(-4)))
	want, err = matrix.Mul(a, f)
	require.NoError(t, err)

	got = a.Clone()
	require.NoError(t, got.AddCol(2, 0, ring.Int(-4)))
	require.True(t, got.Equal(want))
}

func TestElementaryOps_FieldScalars(t *testing.T) {
	t.Parallel()

	F5, err := ring.NewIntegersMod(5)
	require.NoError(t, err)
	m, err := matrix.NewFromGrid[int64](F5, 1, 2, []int64{2, 3})
	require.NoError(t, err)

	require.NoError(t, m.MultiplyRow(0, 3)) // 3 is a unit in F_5
	require.Equal(t, []int64{1, 4}, m.Grid())
	require.ErrorIs(t, m.MultiplyRow(0, 5), matrix.ErrInvalidScalar)
}
