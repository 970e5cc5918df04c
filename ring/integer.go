// SPDX-License-Identifier: MIT

package ring

import (
	"math"
	"math/big"
)

// integers is the ring Z over *big.Int values.
// Values are never mutated; every operation allocates its result.
type integers struct{}

// Integers returns the Euclidean ring Z.
//
// Behavior highlights:
//   - EucDiv uses Euclidean division: 0 ≤ r < |b|.
//   - Degree(a) = |a|, clamped to math.MaxInt for huge values.
//   - NormalizingUnit(a) = −1 for negative a, otherwise 1.
//
// AI-Hints: build values with Int(n) or BigInts(...) to keep tests terse.
func Integers() Euclidean[*big.Int] { return integers{} }

// Int returns n as a fresh *big.Int.
func Int(n int64) *big.Int { return big.NewInt(n) }

// BigInts converts a list of int64 to fresh *big.Int values.
func BigInts(ns ...int64) []*big.Int {
	out := make([]*big.Int, len(ns))
	for i, n := range ns {
		out[i] = big.NewInt(n)
	}

	return out
}

func (integers) Zero() *big.Int { return new(big.Int) }
func (integers) One() *big.Int  { return big.NewInt(1) }

func (integers) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (integers) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(a) }
func (integers) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func (integers) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

// Inverse: only ±1 are units in Z.
func (integers) Inverse(a *big.Int) (*big.Int, bool) {
	if a.IsInt64() && (a.Int64() == 1 || a.Int64() == -1) {
		return new(big.Int).Set(a), true
	}

	return nil, false
}

func (integers) Symbol() string { return "Z" }

// EucDiv returns q, r with a = q·b + r and 0 ≤ r < |b|.
func (integers) EucDiv(a, b *big.Int) (*big.Int, *big.Int, error) {
	if b.Sign() == 0 {
		return nil, nil, ringErrorf(opEucDiv, ErrDivisionByZero)
	}
	q, r := new(big.Int), new(big.Int)
	q.DivMod(a, b, r) // Euclidean division (not truncated)

	return q, r, nil
}

// Degree returns |a|, clamped to math.MaxInt; zero reports −1.
func (integers) Degree(a *big.Int) int {
	if a.Sign() == 0 {
		return -1
	}
	abs := new(big.Int).Abs(a)
	if abs.IsInt64() && abs.Int64() <= math.MaxInt {
		return int(abs.Int64())
	}

	return math.MaxInt
}

func (integers) NormalizingUnit(a *big.Int) *big.Int {
	if a.Sign() < 0 {
		return big.NewInt(-1)
	}

	return big.NewInt(1)
}
