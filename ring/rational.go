// SPDX-License-Identifier: MIT

package ring

import "math/big"

// rationals is the field Q over *big.Rat values.
type rationals struct{}

// Rationals returns the field Q as a Euclidean ring: every non-zero value is a
// unit, EucDiv always has zero remainder and Degree is 0 on non-zero values.
func Rationals() Field[*big.Rat] { return rationals{} }

// Rat returns the fresh rational a/b. b must be non-zero.
func Rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func (rationals) Zero() *big.Rat { return new(big.Rat) }
func (rationals) One() *big.Rat  { return big.NewRat(1, 1) }

func (rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (rationals) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (rationals) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (rationals) Inverse(a *big.Rat) (*big.Rat, bool) {
	if a.Sign() == 0 {
		return nil, false
	}

	return new(big.Rat).Inv(a), true
}

func (rationals) Symbol() string        { return "Q" }
func (rationals) Characteristic() int64 { return 0 }

// EucDiv returns (a/b, 0).
func (rationals) EucDiv(a, b *big.Rat) (*big.Rat, *big.Rat, error) {
	if b.Sign() == 0 {
		return nil, nil, ringErrorf(opEucDiv, ErrDivisionByZero)
	}

	return new(big.Rat).Quo(a, b), new(big.Rat), nil
}

func (rationals) Degree(a *big.Rat) int {
	if a.Sign() == 0 {
		return -1
	}

	return 0
}

func (rationals) NormalizingUnit(a *big.Rat) *big.Rat {
	if a.Sign() == 0 {
		return big.NewRat(1, 1)
	}

	return new(big.Rat).Inv(a)
}
