// SPDX-License-Identifier: MIT
// Package ring_test contains unit tests for the concrete rings and the
// generic helpers.
package ring_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/katalvlaran/modstruct/ring"
	"github.com/stretchr/testify/require"
)

// TestIntegers_EucDiv checks the non-negative remainder convention.
func TestIntegers_EucDiv(t *testing.T) {
	t.Parallel()
	Z := ring.Integers()

	tests := []struct {
		name         string
		a, b         int64
		wantQ, wantR int64
	}{
		{"positive", 17, 5, 3, 2},
		{"negative dividend", -7, 3, -3, 2},
		{"negative divisor", 7, -3, -2, 1},
		{"exact", 12, 4, 3, 0},
		{"zero dividend", 0, 9, 0, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			q, r, err := Z.EucDiv(ring.Int(tc.a), ring.Int(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.wantQ, q.Int64())
			require.Equal(t, tc.wantR, r.Int64())
			// a = q·b + r
			back := Z.Add(Z.Mul(q, ring.Int(tc.b)), r)
			require.True(t, Z.Equal(back, ring.Int(tc.a)))
		})
	}

	_, _, err := Z.EucDiv(ring.Int(3), ring.Int(0))
	require.ErrorIs(t, err, ring.ErrDivisionByZero)
}

func TestIntegers_DegreeUnitsNormalization(t *testing.T) {
	t.Parallel()
	Z := ring.Integers()

	require.Equal(t, -1, Z.Degree(ring.Int(0)))
	require.Equal(t, 7, Z.Degree(ring.Int(-7)))

	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	require.Greater(t, Z.Degree(huge), 1<<30)

	for _, u := range []int64{1, -1} {
		inv, ok := Z.Inverse(ring.Int(u))
		require.True(t, ok)
		require.Equal(t, u, inv.Int64())
	}
	_, ok := Z.Inverse(ring.Int(2))
	require.False(t, ok)

	require.Equal(t, int64(5), ring.Normalize(Z, ring.Int(-5)).Int64())
	require.Equal(t, int64(5), ring.Normalize(Z, ring.Int(5)).Int64())
	require.Equal(t, "Z", Z.Symbol())
	require.False(t, ring.IsField[*big.Int](Z))
}

func TestHelpers_Integers(t *testing.T) {
	t.Parallel()
	Z := ring.Integers()

	g, err := ring.GCD(Z, ring.Int(12), ring.Int(-18))
	require.NoError(t, err)
	require.Equal(t, int64(6), g.Int64())

	g, err = ring.GCD(Z, ring.Int(0), ring.Int(0))
	require.NoError(t, err)
	require.Equal(t, int64(0), g.Int64())

	l, err := ring.LCM(Z, ring.Int(-4), ring.Int(6))
	require.NoError(t, err)
	require.Equal(t, int64(12), l.Int64())

	l, err = ring.LCM(Z, ring.Int(0), ring.Int(6))
	require.NoError(t, err)
	require.Equal(t, int64(0), l.Int64())

	require.True(t, ring.Divides(Z, ring.Int(3), ring.Int(12)))
	require.False(t, ring.Divides(Z, ring.Int(5), ring.Int(12)))
	require.True(t, ring.Divides(Z, ring.Int(0), ring.Int(0)))
	require.False(t, ring.Divides(Z, ring.Int(0), ring.Int(1)))

	require.Equal(t, int64(-5), ring.FromInt[*big.Int](Z, -5).Int64())
	require.Equal(t, int64(1024), ring.FromInt[*big.Int](Z, 1024).Int64())

	_, err = ring.Quo(Z, ring.Int(1), ring.Int(0))
	require.True(t, errors.Is(err, ring.ErrDivisionByZero))
	_, err = ring.Rem(Z, ring.Int(1), ring.Int(0))
	require.True(t, errors.Is(err, ring.ErrDivisionByZero))
}

// TestBezout verifies x·a + y·b = g exactly, with g an associate of the gcd.
func TestBezout(t *testing.T) {
	t.Parallel()
	Z := ring.Integers()

	pairs := [][2]int64{{240, 46}, {46, 240}, {-15, 10}, {7, 0}, {0, 7}, {1, 1}, {17, 5}}
	for _, p := range pairs {
		a, b := ring.Int(p[0]), ring.Int(p[1])
		x, y, g, err := ring.Bezout(Z, a, b)
		require.NoError(t, err)
		lhs := Z.Add(Z.Mul(x, a), Z.Mul(y, b))
		require.Truef(t, Z.Equal(lhs, g), "bezout identity for %v", p)

		want, err := ring.GCD(Z, a, b)
		require.NoError(t, err)
		require.True(t, Z.Equal(ring.Normalize(Z, g), want))
	}
}

func TestRationals(t *testing.T) {
	t.Parallel()
	Q := ring.Rationals()

	q, r, err := Q.EucDiv(ring.Rat(3, 4), ring.Rat(1, 2))
	require.NoError(t, err)
	require.True(t, Q.Equal(q, ring.Rat(3, 2)))
	require.True(t, ring.IsZero[*big.Rat](Q, r))

	require.Equal(t, 0, Q.Degree(ring.Rat(-5, 3)))
	require.Equal(t, -1, Q.Degree(ring.Rat(0, 1)))
	require.True(t, Q.Equal(ring.Normalize[*big.Rat](Q, ring.Rat(-5, 3)), ring.Rat(1, 1)))

	_, ok := Q.Inverse(ring.Rat(0, 1))
	require.False(t, ok)

	_, _, err = Q.EucDiv(ring.Rat(1, 1), ring.Rat(0, 1))
	require.ErrorIs(t, err, ring.ErrDivisionByZero)

	require.True(t, ring.IsField[*big.Rat](Q))
	require.Equal(t, int64(0), Q.Characteristic())
}

func TestPolynomials_Division(t *testing.T) {
	t.Parallel()
	P := ring.Polynomials()

	// (x² + 1) = (x + 1)(x − 1) + 2
	q, r, err := P.EucDiv(ring.PolyInts(1, 0, 1), ring.PolyInts(-1, 1))
	require.NoError(t, err)
	require.True(t, P.Equal(q, ring.PolyInts(1, 1)), "q=%v", q)
	require.True(t, P.Equal(r, ring.PolyInts(2)), "r=%v", r)

	// lower degree dividend: quotient 0, remainder unchanged
	q, r, err = P.EucDiv(ring.PolyInts(3), ring.PolyInts(0, 1))
	require.NoError(t, err)
	require.True(t, q.IsZero())
	require.True(t, P.Equal(r, ring.PolyInts(3)))

	_, _, err = P.EucDiv(ring.X(), P.Zero())
	require.ErrorIs(t, err, ring.ErrDivisionByZero)

	// gcd(x² − 1, x² − 2x + 1) = x − 1 (monic)
	g, err := ring.GCD(P, ring.PolyInts(-1, 0, 1), ring.PolyInts(1, -2, 1))
	require.NoError(t, err)
	require.True(t, P.Equal(g, ring.PolyInts(-1, 1)), "g=%v", g)

	require.Equal(t, 2, P.Degree(ring.PolyInts(5, 0, 3)))
	require.Equal(t, -1, P.Degree(P.Zero()))
	require.True(t, P.Equal(P.Mul(ring.PolyInts(-1, 1), ring.PolyInts(1, 1)), ring.PolyInts(-1, 0, 1)))
	require.True(t, P.Add(ring.PolyInts(1, 2), P.Neg(ring.PolyInts(1, 2))).IsZero())

	inv, ok := P.Inverse(ring.PolyInts(4))
	require.True(t, ok)
	require.True(t, P.Equal(inv, ring.NewPoly(ring.Rat(1, 4))))
	_, ok = P.Inverse(ring.X())
	require.False(t, ok)
}

func TestPoly_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    ring.Poly
		want string
	}{
		{ring.PolyInts(), "0"},
		{ring.PolyInts(0, 0, 0), "0"},
		{ring.PolyInts(3, -1, 1), "x^2 - x + 3"},
		{ring.PolyInts(0, 0, -2), "-2x^2"},
		{ring.NewPoly(ring.Rat(3, 1), ring.Rat(-1, 2), ring.Rat(1, 1)), "x^2 - 1/2x + 3"},
		{ring.X(), "x"},
		{ring.PolyInts(-1), "-1"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.p.String())
	}
}

func TestIntegersMod(t *testing.T) {
	t.Parallel()

	for _, p := range []int64{-3, 0, 1, 4, 91} {
		_, err := ring.NewIntegersMod(p)
		require.ErrorIsf(t, err, ring.ErrNotPrime, "p=%d", p)
	}

	F7, err := ring.NewIntegersMod(7)
	require.NoError(t, err)
	require.Equal(t, "F_7", F7.Symbol())
	require.Equal(t, int64(7), F7.Characteristic())

	inv, ok := F7.Inverse(3)
	require.True(t, ok)
	require.Equal(t, int64(5), inv)
	_, ok = F7.Inverse(14)
	require.False(t, ok)

	require.Equal(t, int64(4), F7.Mul(-1, 3))
	require.Equal(t, int64(0), F7.Neg(0))
	require.Equal(t, int64(2), F7.Neg(5))
	require.Equal(t, int64(1), F7.Add(4, 4))
	require.True(t, F7.Equal(-1, 6))
	require.Equal(t, int64(3), ring.FromInt[int64](F7, 10))

	q, r, err := F7.EucDiv(1, 3)
	require.NoError(t, err)
	require.Equal(t, int64(5), q)
	require.Equal(t, int64(0), r)
	_, _, err = F7.EucDiv(1, 0)
	require.ErrorIs(t, err, ring.ErrDivisionByZero)

	require.Equal(t, int64(5), F7.NormalizingUnit(3))
	require.Equal(t, -1, F7.Degree(7))

	// products near the int64 range stay exact
	large, err := ring.NewIntegersMod(9223372036854775783) // largest prime < 2^63
	require.NoError(t, err)
	require.Equal(t, int64(1), large.Mul(-1, -1))
}
