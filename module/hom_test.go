// SPDX-License-Identifier: MIT
package module_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/modstruct/module"
	"github.com/katalvlaran/modstruct/ring"
	"github.com/stretchr/testify/require"
)

type strVec = module.Element[string, *big.Int]

// lin builds Σ c·label from a coefficient map, in a fixed label order.
func lin(terms map[string]int64) strVec {
	var ts []module.Term[string, *big.Int]
	for _, l := range []string{"a", "b", "c", "u", "v", "w"} {
		if c, ok := terms[l]; ok {
			ts = append(ts, module.Term[string, *big.Int]{Label: l, Coeff: ring.Int(c)})
		}
	}

	return module.NewElement(Z, ts...)
}

var (
	from = []string{"a", "b", "c"}
	to   = []string{"u", "v"}
)

// rankOne is the map with matrix [[1,2,3],[2,4,6]].
func rankOne() *module.Hom[string, string, *big.Int] {
	return module.NewHom[string, string, *big.Int](Z, map[string]strVec{
		"a": lin(map[string]int64{"u": 1, "v": 2}),
		"b": lin(map[string]int64{"u": 2, "v": 4}),
		"c": lin(map[string]int64{"u": 3, "v": 6}),
	})
}

func TestHom_MatrixAndApply(t *testing.T) {
	t.Parallel()

	f := rankOne()
	m, err := f.Matrix(from, to)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.True(t, m.Equal(mustInts(t, 2, 3, 1, 2, 3, 2, 4, 6)))

	y := f.Apply(lin(map[string]int64{"a": 1, "b": 1}))
	require.True(t, y.Equal(lin(map[string]int64{"u": 3, "v": 6})))

	// unmapped labels go to zero
	require.True(t, f.Apply(lin(map[string]int64{"w": 5})).IsZero())

	g, err := module.HomFromMatrix(from, to, m)
	require.NoError(t, err)
	back, err := g.Matrix(from, to)
	require.NoError(t, err)
	require.True(t, back.Equal(m))
}

func TestHom_KernelAndImage(t *testing.T) {
	t.Parallel()

	f := rankOne()
	ker, err := f.Kernel(from, to)
	require.NoError(t, err)
	require.Len(t, ker, 2)
	for _, k := range ker {
		require.False(t, k.IsZero())
		require.True(t, f.Apply(k).IsZero(), "f(%v) != 0", k)
	}

	im, err := f.Image(from, to)
	require.NoError(t, err)
	require.Len(t, im, 1)
	u, v := im[0].Coefficient("u"), im[0].Coefficient("v")
	require.Zero(t, new(big.Int).Mul(u, big.NewInt(2)).Cmp(v), "image %v not on the line v = 2u", im[0])
}

func TestHom_Compose(t *testing.T) {
	t.Parallel()

	g := module.NewHom[string, string, *big.Int](Z, map[string]strVec{
		"u": lin(map[string]int64{"w": 1}),
		"v": lin(map[string]int64{"w": 1}),
	})
	gf := module.Compose(g, rankOne())
	m, err := gf.Matrix(from, []string{"w"})
	require.NoError(t, err)
	require.True(t, m.Equal(mustInts(t, 1, 3, 3, 6, 9)))
}

func TestHom_Errors(t *testing.T) {
	t.Parallel()

	f := module.NewHom[string, string, *big.Int](Z, map[string]strVec{
		"z": lin(map[string]int64{"u": 1}),
	})
	_, err := f.Matrix(from, to)
	require.ErrorIs(t, err, module.ErrUndeclaredGenerator)

	f = module.NewHom[string, string, *big.Int](Z, map[string]strVec{
		"a": lin(map[string]int64{"w": 1}),
	})
	_, err = f.Matrix(from, to)
	require.ErrorIs(t, err, module.ErrUndeclaredGenerator)
	_, err = f.Kernel(from, to)
	require.ErrorIs(t, err, module.ErrUndeclaredGenerator)

	_, err = rankOne().Matrix([]string{"a", "b", "a"}, to)
	require.ErrorIs(t, err, module.ErrDuplicateGenerator)

	_, err = module.HomFromMatrix(from, to, mustInts(t, 3, 2, 1, 0, 0, 1, 0, 0))
	require.ErrorIs(t, err, module.ErrDimensionMismatch)
}
