// SPDX-License-Identifier: MIT
// Package elimination_test contains shared fixtures and invariant checks.
//
// Purpose:
//   • Build integer matrices tersely.
//   • Assert the factorization identities every Result must satisfy,
//     independent of the ring and of the chosen pivot path.

package elimination_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/modstruct/elimination"
	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
	"github.com/stretchr/testify/require"
)

// Z is the integer ring shared by all tests in this package.
var Z = ring.Integers()

// mustInts builds a rows×cols integer matrix from a row-major grid.
func mustInts(t *testing.T, rows, cols int, grid ...int64) *matrix.Sparse[*big.Int] {
	t.Helper()
	m, err := matrix.NewFromGrid[*big.Int](Z, rows, cols, ring.BigInts(grid...))
	require.NoError(t, err)

	return m
}

// ints flattens an integer matrix for readable assertions.
func ints(m *matrix.Sparse[*big.Int]) []int64 {
	g := m.Grid()
	out := make([]int64, len(g))
	for k, v := range g {
		out[k] = v.Int64()
	}

	return out
}

// diagInts flattens a pivot list.
func diagInts(d []*big.Int) []int64 {
	out := make([]int64, len(d))
	for k, v := range d {
		out[k] = v.Int64()
	}

	return out
}

// requireFactorization checks D = P·A·Q, A = P⁻¹·D·Q⁻¹ and that the
// recorded inverses really are inverses.
func requireFactorization[T any](t *testing.T, a *matrix.Sparse[T], res *elimination.Result[T]) {
	t.Helper()

	d := res.Matrix()
	got, err := matrix.Product(res.Left(), a, res.Right())
	require.NoError(t, err)
	require.True(t, got.Equal(d), "P·A·Q != D\n%v\nvs\n%v", got, d)

	back, err := matrix.Product(res.LeftInverse(), d, res.RightInverse())
	require.NoError(t, err)
	require.True(t, back.Equal(a), "P⁻¹·D·Q⁻¹ != A")

	pp, err := matrix.Mul(res.Left(), res.LeftInverse())
	require.NoError(t, err)
	require.True(t, pp.IsIdentity(), "P·P⁻¹ != I")

	qq, err := matrix.Mul(res.Right(), res.RightInverse())
	require.NoError(t, err)
	require.True(t, qq.IsIdentity(), "Q·Q⁻¹ != I")
}

// requireSmithShape checks that D is diagonal with normalized pivots forming
// a divisibility chain.
func requireSmithShape[T any](t *testing.T, r ring.Euclidean[T], res *elimination.Result[T]) {
	t.Helper()

	d := res.Matrix()
	require.True(t, d.IsDiagonal())
	piv := res.Diagonal()
	require.Len(t, piv, res.Rank())
	for k, p := range piv {
		require.True(t, ring.IsOne[T](r, r.NormalizingUnit(p)), "pivot %d = %v is not normalized", k, p)
		if k > 0 {
			require.True(t, ring.Divides(r, piv[k-1], p), "%v does not divide %v", piv[k-1], p)
		}
	}
}

// requireRowEchelonShape checks strictly increasing leading columns with
// zero rows last.
func requireRowEchelonShape[T any](t *testing.T, d *matrix.Sparse[T]) {
	t.Helper()

	prev := -1
	seenZero := false
	for i := 0; i < d.Rows(); i++ {
		es, err := d.RowEntries(i)
		require.NoError(t, err)
		if len(es) == 0 {
			seenZero = true
			continue
		}
		require.False(t, seenZero, "non-zero row %d below a zero row", i)
		require.Greater(t, es[0].Col, prev, "row %d does not step right", i)
		prev = es[0].Col
	}
}

// requireKernelAndImage checks A·K = 0, the kernel coordinate map and the
// image identity Im = (A·Q)[:, :rank].
func requireKernelAndImage[T any](t *testing.T, a *matrix.Sparse[T], res *elimination.Result[T]) {
	t.Helper()

	k, err := res.KernelMatrix()
	require.NoError(t, err)
	require.Equal(t, res.Nullity(), k.Cols())

	ak, err := matrix.Mul(a, k)
	require.NoError(t, err)
	require.True(t, ak.IsZero(), "A·K != 0")

	kt, err := res.KernelTransitionMatrix()
	require.NoError(t, err)
	kk, err := matrix.Mul(kt, k)
	require.NoError(t, err)
	require.True(t, kk.IsIdentity(), "T·K != I")

	im, err := res.ImageMatrix()
	require.NoError(t, err)
	aq, err := matrix.Mul(a, res.Right())
	require.NoError(t, err)
	head, err := aq.Submatrix(0, aq.Rows(), 0, res.Rank())
	require.NoError(t, err)
	require.True(t, im.Equal(head), "Im != (A·Q)[:, :rank]")
}
