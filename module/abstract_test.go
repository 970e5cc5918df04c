// SPDX-License-Identifier: MIT
package module_test

import (
	"testing"

	"github.com/katalvlaran/modstruct/module"
	"github.com/katalvlaran/modstruct/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAbstract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rank     int
		torsions []int64
		want     string
		free     int
		tor      []int64
	}{
		{"free", 2, nil, "Z^2", 2, nil},
		{"trivial", 0, nil, "0", 0, nil},
		{"coprime merge", 1, []int64{2, 3}, "Z/6⊕Z", 1, []int64{6}},
		{"repeated", 0, []int64{2, 2}, "Z/2^2", 0, []int64{2, 2}},
		{"unit and zero torsion", 0, []int64{1, 0, 4}, "Z/4⊕Z", 1, []int64{4}},
		{"negative torsion is normalized", 0, []int64{-3}, "Z/3", 0, []int64{3}},
		{"non-dividing chain", 0, []int64{4, 6}, "Z/2⊕Z/12", 0, []int64{2, 12}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := module.NewAbstract(Z, tc.rank, ring.BigInts(tc.torsions...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.String())
			assert.Equal(t, tc.free, s.Rank())
			assert.Equal(t, len(tc.tor), len(s.TorsionCoefficients()))
			if len(tc.tor) > 0 {
				assert.Equal(t, tc.tor, int64s(s.TorsionCoefficients()))
			}
			assert.Equal(t, s.Len(), len(s.Basis()))
			assert.True(t, s.Transition().IsIdentity())
		})
	}

	_, err := module.NewAbstract(Z, -1)
	require.ErrorIs(t, err, module.ErrNegativeRank)
}

func TestNewAbstract_Factorize(t *testing.T) {
	t.Parallel()

	s, err := module.NewAbstract(Z, 1, ring.Int(4))
	require.NoError(t, err)
	require.Equal(t, "Z/4⊕Z", s.String())

	got, err := s.Factorize(vec(t, 5, 2))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, int64s(got))

	zero, err := s.ElementIsZero(vec(t, -8))
	require.NoError(t, err)
	require.True(t, zero)

	eq, err := s.ElementsAreEqual(vec(t, 1, 3), vec(t, 5, 3))
	require.NoError(t, err)
	require.True(t, eq)
}

func TestDirectSum(t *testing.T) {
	t.Parallel()

	a, err := module.NewAbstract(Z, 1, ring.Int(2))
	require.NoError(t, err)
	b, err := module.NewAbstract(Z, 2, ring.Int(3))
	require.NoError(t, err)

	sum, err := module.DirectSum(a, b)
	require.NoError(t, err)
	require.Equal(t, "Z/6⊕Z^3", sum.String())

	c, err := module.NewAbstract(Z, 0, ring.Int(2))
	require.NoError(t, err)
	sum, err = module.DirectSum(a, c)
	require.NoError(t, err)
	require.Equal(t, "Z/2^2⊕Z", sum.String())

	trivial, err := module.NewAbstract(Z, 0)
	require.NoError(t, err)
	sum, err = module.DirectSum(trivial, b)
	require.NoError(t, err)
	require.Equal(t, b.String(), sum.String())
}

func TestNewAbstract_Field(t *testing.T) {
	t.Parallel()

	F7, err := ring.NewIntegersMod(7)
	require.NoError(t, err)
	// every non-zero torsion over a field is a unit
	s, err := module.NewAbstract[int64](F7, 1, 3, 0)
	require.NoError(t, err)
	require.Equal(t, "F_7^2", s.String())
	require.True(t, s.IsFree())
}
