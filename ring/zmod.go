// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// integersMod is the prime field Z/p over int64 representatives in [0, p).
type integersMod struct {
	p int64
}

// NewIntegersMod returns the field Z/p.
//
// Inputs outside [0, p) are reduced on entry by every operation, so callers
// may pass arbitrary int64 values (including negatives).
//
// Errors:
//   - ErrNotPrime if p < 2 or p is composite (checked with big.Int.ProbablyPrime).
func NewIntegersMod(p int64) (Field[int64], error) {
	if p < 2 || !big.NewInt(p).ProbablyPrime(20) {
		return nil, ringErrorf(opMod, fmt.Errorf("%w: %d", ErrNotPrime, p))
	}

	return integersMod{p: p}, nil
}

// reduce maps a to its representative in [0, p).
func (z integersMod) reduce(a int64) int64 {
	a %= z.p
	if a < 0 {
		a += z.p
	}

	return a
}

func (z integersMod) Zero() int64 { return 0 }
func (z integersMod) One() int64  { return 1 }

func (z integersMod) Add(a, b int64) int64 {
	a, b = z.reduce(a), z.reduce(b)
	// a, b < p ≤ MaxInt64, so a + b fits in uint64.
	return int64((uint64(a) + uint64(b)) % uint64(z.p))
}

func (z integersMod) Neg(a int64) int64 {
	a = z.reduce(a)
	if a == 0 {
		return 0
	}

	return z.p - a
}

func (z integersMod) Mul(a, b int64) int64 {
	hi, lo := bits.Mul64(uint64(z.reduce(a)), uint64(z.reduce(b)))

	return int64(bits.Rem64(hi, lo, uint64(z.p)))
}

func (z integersMod) Equal(a, b int64) bool { return z.reduce(a) == z.reduce(b) }

// Inverse uses the extended Euclidean algorithm on (a, p).
func (z integersMod) Inverse(a int64) (int64, bool) {
	a = z.reduce(a)
	if a == 0 {
		return 0, false
	}
	inv := new(big.Int).ModInverse(big.NewInt(a), big.NewInt(z.p))
	if inv == nil {
		return 0, false
	}

	return inv.Int64(), true
}

func (z integersMod) Symbol() string        { return fmt.Sprintf("F_%d", z.p) }
func (z integersMod) Characteristic() int64 { return z.p }

// EucDiv returns (a·b⁻¹, 0).
func (z integersMod) EucDiv(a, b int64) (int64, int64, error) {
	inv, ok := z.Inverse(b)
	if !ok {
		return 0, 0, ringErrorf(opEucDiv, ErrDivisionByZero)
	}

	return z.Mul(a, inv), 0, nil
}

func (z integersMod) Degree(a int64) int {
	if z.reduce(a) == 0 {
		return -1
	}

	return 0
}

func (z integersMod) NormalizingUnit(a int64) int64 {
	if inv, ok := z.Inverse(a); ok {
		return inv
	}

	return 1
}
