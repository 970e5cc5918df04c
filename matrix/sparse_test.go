// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_Shapes(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewZero[*big.Int](Z, -1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewIdentity[*big.Int](Z, -3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewZero[*big.Int](nil, 1, 1)
	require.ErrorIs(t, err, matrix.ErrNilRing)

	z, err := matrix.NewZero[*big.Int](Z, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, z.Rows())
	assert.Equal(t, 0, z.Cols())
	assert.True(t, z.IsZero())
	assert.Equal(t, "[3×0]", z.String())

	_, err = matrix.NewFromGrid[*big.Int](Z, 2, 2, ring.BigInts(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromColumns[*big.Int](Z, 2, [][]*big.Int{ring.BigInts(1, 2), ring.BigInts(1)})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewFromGrid_SkipsZeros(t *testing.T) {
	t.Parallel()

	m := MustInts(t, 2, 3,
		0, 5, 0,
		-1, 0, 2)
	require.Equal(t, 3, m.NonZeroCount())

	want := []matrix.Entry[*big.Int]{
		{Row: 0, Col: 1, Value: ring.Int(5)},
		{Row: 1, Col: 0, Value: ring.Int(-1)},
		{Row: 1, Col: 2, Value: ring.Int(2)},
	}
	got := m.Entries()
	require.Len(t, got, len(want))
	for k := range want {
		require.Equal(t, want[k].Row, got[k].Row)
		require.Equal(t, want[k].Col, got[k].Col)
		require.Zero(t, want[k].Value.Cmp(got[k].Value))
	}
}

func TestNewFromEntries_MergesDuplicates(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromEntries[*big.Int](Z, 2, 2, []matrix.Entry[*big.Int]{
		{Row: 1, Col: 1, Value: ring.Int(3)},
		{Row: 0, Col: 0, Value: ring.Int(2)},
		{Row: 1, Col: 1, Value: ring.Int(4)},
		{Row: 0, Col: 1, Value: ring.Int(5)},
		{Row: 0, Col: 1, Value: ring.Int(-5)}, // cancels to zero
	})
	require.NoError(t, err)
	requireGrid(t, m, 2, 2, 2, 0, 0, 7)
	require.Equal(t, 2, m.NonZeroCount())

	_, err = matrix.NewFromEntries[*big.Int](Z, 2, 2, []matrix.Entry[*big.Int]{{Row: 2, Col: 0, Value: ring.Int(1)}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNewFromColumns(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromColumns[*big.Int](Z, 3, [][]*big.Int{
		ring.BigInts(1, 0, 0),
		ring.BigInts(2, 0, 7),
	})
	require.NoError(t, err)
	requireGrid(t, m, 3, 2,
		1, 2,
		0, 0,
		0, 7)

	col, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 0, 7}, []int64{col[0].Int64(), col[1].Int64(), col[2].Int64()})

	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, int64(7), row[1].Int64())

	_, err = m.Column(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAtSet(t *testing.T) {
	t.Parallel()

	m := MustInts(t, 2, 2, 1, 0, 0, 1)
	require.NoError(t, m.Set(0, 1, ring.Int(9)))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(9), v.Int64())

	// storing zero removes the entry
	require.NoError(t, m.Set(0, 0, ring.Int(0)))
	require.Equal(t, 2, m.NonZeroCount())

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 5, ring.Int(1)), matrix.ErrOutOfRange)

	// Set works the same on a column-aligned table
	require.NoError(t, m.SwapCols(0, 1))
	require.Equal(t, matrix.ColAligned, m.Alignment())
	require.NoError(t, m.Set(1, 0, ring.Int(4)))
	requireGrid(t, m, 2, 2, 9, 0, 4, 0)
}

func TestRowColEntries_IndependentOfAlignment(t *testing.T) {
	t.Parallel()

	m := MustInts(t, 3, 3,
		1, 0, 2,
		0, 3, 0,
		4, 0, 5)
	c := m.Clone()
	require.NoError(t, c.SwapCols(0, 0)) // forces column alignment, no change
	require.Equal(t, matrix.ColAligned, c.Alignment())
	require.True(t, m.Equal(c))

	for i := 0; i < 3; i++ {
		a, err := m.RowEntries(i)
		require.NoError(t, err)
		b, err := c.RowEntries(i)
		require.NoError(t, err)
		require.Equal(t, len(a), len(b))
		for k := range a {
			require.Equal(t, a[k].Col, b[k].Col)
		}
	}
	col, err := c.ColEntries(2)
	require.NoError(t, err)
	require.Len(t, col, 2)
	require.Equal(t, 0, col[0].Row)
	require.Equal(t, 2, col[1].Row)

	_, err = m.ColEntries(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	require.True(t, MustIdentity(t, 3).IsIdentity())
	require.True(t, MustIdentity(t, 0).IsIdentity())
	require.False(t, MustInts(t, 2, 2, 1, 0, 0, 2).IsIdentity())
	require.True(t, MustInts(t, 2, 3, 1, 0, 0, 0, 2, 0).IsDiagonal())
	require.False(t, MustInts(t, 2, 2, 1, 1, 0, 1).IsDiagonal())

	d := MustInts(t, 2, 3, 3, 0, 0, 0, 6, 0).Diagonal()
	require.Len(t, d, 2)
	require.Equal(t, int64(3), d[0].Int64())
	require.Equal(t, int64(6), d[1].Int64())

	require.Equal(t, "[1, 0]\n[0, 1]\n", MustIdentity(t, 2).String())
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	m := MustInts(t, 2, 2, 1, 2, 3, 4)
	c := m.Clone()
	require.NoError(t, c.AddRow(0, 1, ring.Int(-3)))
	requireGrid(t, m, 2, 2, 1, 2, 3, 4)
	requireGrid(t, c, 2, 2, 1, 2, 0, -2)
}

func TestOverRationalsAndPolynomials(t *testing.T) {
	t.Parallel()

	Q := ring.Rationals()
	q, err := matrix.NewFromGrid[*big.Rat](Q, 1, 2, []*big.Rat{ring.Rat(1, 2), ring.Rat(0, 1)})
	require.NoError(t, err)
	require.Equal(t, 1, q.NonZeroCount())

	P := ring.Polynomials()
	p, err := matrix.NewFromGrid[ring.Poly](P, 1, 2, []ring.Poly{ring.X(), ring.PolyInts(1, 1)})
	require.NoError(t, err)
	require.Equal(t, "[x, x + 1]\n", p.String())
}
