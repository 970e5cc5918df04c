// SPDX-License-Identifier: MIT

package ring

import (
	"math/big"
	"strings"
)

// Poly is a univariate polynomial over Q with coefficients stored from the
// constant term upwards. Trailing zero coefficients are never stored, so the
// zero polynomial has no coefficients at all.
// A Poly is immutable once built; ring operations always allocate.
type Poly struct {
	c []*big.Rat // c[i] is the coefficient of x^i; len(c)-1 is the degree
}

// NewPoly builds a polynomial from coefficients (constant term first).
// Inputs are copied, so callers may reuse their values.
func NewPoly(coeffs ...*big.Rat) Poly {
	c := make([]*big.Rat, len(coeffs))
	for i, a := range coeffs {
		c[i] = new(big.Rat).Set(a)
	}

	return trimPoly(c)
}

// PolyInts builds a polynomial with integer coefficients (constant term first).
func PolyInts(coeffs ...int64) Poly {
	c := make([]*big.Rat, len(coeffs))
	for i, a := range coeffs {
		c[i] = big.NewRat(a, 1)
	}

	return trimPoly(c)
}

// X returns the indeterminate x.
func X() Poly { return PolyInts(0, 1) }

// trimPoly drops trailing zeros in place.
func trimPoly(c []*big.Rat) Poly {
	n := len(c)
	for n > 0 && c[n-1].Sign() == 0 {
		n--
	}

	return Poly{c: c[:n]}
}

// Degree returns the polynomial degree; the zero polynomial reports −1.
func (p Poly) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.c) == 0 }

// Coeff returns a copy of the coefficient of x^i (zero outside the support).
func (p Poly) Coeff(i int) *big.Rat {
	if i < 0 || i >= len(p.c) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p.c[i])
}

// Lead returns a copy of the leading coefficient (zero for the zero polynomial).
func (p Poly) Lead() *big.Rat { return p.Coeff(len(p.c) - 1) }

// String renders p with descending powers, e.g. "x^2 - 1/2x + 3".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(p.c) - 1; i >= 0; i-- {
		a := p.c[i]
		if a.Sign() == 0 {
			continue
		}
		abs := new(big.Rat).Abs(a)
		switch {
		case first && a.Sign() < 0:
			b.WriteString("-")
		case !first && a.Sign() < 0:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		first = false
		one := abs.Cmp(big.NewRat(1, 1)) == 0
		if i == 0 || !one {
			b.WriteString(abs.RatString())
		}
		switch {
		case i == 1:
			b.WriteString("x")
		case i > 1:
			b.WriteString("x^")
			b.WriteString(big.NewInt(int64(i)).String())
		}
	}

	return b.String()
}

// polynomials is the Euclidean ring Q[x].
type polynomials struct{}

// Polynomials returns the Euclidean ring Q[x]: Degree is the polynomial
// degree and canonical associates are monic.
func Polynomials() Euclidean[Poly] { return polynomials{} }

func (polynomials) Zero() Poly { return Poly{} }
func (polynomials) One() Poly  { return PolyInts(1) }

func (polynomials) Add(a, b Poly) Poly {
	n := max(len(a.c), len(b.c))
	c := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		c[i] = new(big.Rat).Add(a.Coeff(i), b.Coeff(i))
	}

	return trimPoly(c)
}

func (polynomials) Neg(a Poly) Poly {
	c := make([]*big.Rat, len(a.c))
	for i, x := range a.c {
		c[i] = new(big.Rat).Neg(x)
	}

	return Poly{c: c}
}

// Mul is the schoolbook convolution. Complexity: O(deg a · deg b).
func (polynomials) Mul(a, b Poly) Poly {
	if a.IsZero() || b.IsZero() {
		return Poly{}
	}
	c := make([]*big.Rat, len(a.c)+len(b.c)-1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i, x := range a.c {
		for j, y := range b.c {
			c[i+j].Add(c[i+j], tmp.Mul(x, y))
		}
	}

	return trimPoly(c)
}

func (polynomials) Equal(a, b Poly) bool {
	if len(a.c) != len(b.c) {
		return false
	}
	for i := range a.c {
		if a.c[i].Cmp(b.c[i]) != 0 {
			return false
		}
	}

	return true
}

// Inverse: the units of Q[x] are the non-zero constants.
func (polynomials) Inverse(a Poly) (Poly, bool) {
	if a.Degree() != 0 {
		return Poly{}, false
	}

	return NewPoly(new(big.Rat).Inv(a.c[0])), true
}

func (polynomials) Symbol() string { return "Q[x]" }

// EucDiv is polynomial long division.
//
// Implementation:
//   - Stage 1: copy a into a working remainder.
//   - Stage 2: while deg r ≥ deg b, cancel the leading term of r with
//     (lead r / lead b)·x^(deg r − deg b)·b.
//
// Complexity: O(deg a · deg b).
func (polynomials) EucDiv(a, b Poly) (Poly, Poly, error) {
	if b.IsZero() {
		return Poly{}, Poly{}, ringErrorf(opEucDiv, ErrDivisionByZero)
	}
	rem := make([]*big.Rat, len(a.c))
	for i, x := range a.c {
		rem[i] = new(big.Rat).Set(x)
	}
	db := b.Degree()
	if len(rem)-1 < db {
		return Poly{}, trimPoly(rem), nil
	}
	quo := make([]*big.Rat, len(rem)-db)
	for i := range quo {
		quo[i] = new(big.Rat)
	}
	lead := b.c[db]
	tmp := new(big.Rat)
	for k := len(rem) - 1; k >= db; k-- {
		if rem[k].Sign() == 0 {
			continue
		}
		f := new(big.Rat).Quo(rem[k], lead)
		quo[k-db] = f
		for j := 0; j <= db; j++ {
			rem[k-db+j].Sub(rem[k-db+j], tmp.Mul(f, b.c[j]))
		}
	}

	return trimPoly(quo), trimPoly(rem), nil
}

func (polynomials) Degree(a Poly) int { return a.Degree() }

func (polynomials) NormalizingUnit(a Poly) Poly {
	if a.IsZero() {
		return PolyInts(1)
	}

	return NewPoly(new(big.Rat).Inv(a.Lead()))
}
