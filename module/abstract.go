// SPDX-License-Identifier: MIT

package module

import (
	"fmt"

	"github.com/katalvlaran/modstruct/elimination"
	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
)

// Generator is the label type of abstract bases; Generator(i) prints "e<i>".
type Generator int

// String implements fmt.Stringer.
func (g Generator) String() string { return fmt.Sprintf("e%d", int(g)) }

// AbstractBasis returns the labels e0 … e(n−1).
func AbstractBasis(n int) []Generator {
	out := make([]Generator, n)
	for i := range out {
		out[i] = Generator(i)
	}

	return out
}

// NewAbstract returns R^rank ⊕ R/(t₁) ⊕ … over the abstract basis, brought
// to invariant-factor form: the torsions are replaced by the Smith diagonal
// of diag(t₁, …), so NewAbstract(Z, 0, 2, 3) is Z/6. Unit torsions vanish
// and zero torsions add to the rank.
//
// The result has torsion summands e0 … first, free summands last, and the
// identity transition matrix.
//
// Errors: ErrNegativeRank for rank < 0.
func NewAbstract[T any](r ring.Euclidean[T], rank int, torsions ...T) (*Structure[Generator, T], error) {
	if rank < 0 {
		return nil, moduleErrorf(opAbstract, fmt.Errorf("%d: %w", rank, ErrNegativeRank))
	}

	var factors []T
	if t := len(torsions); t > 0 {
		diag, _ := matrix.NewZero[T](r, t, t) // t > 0, r non-nil
		for i, d := range torsions {
			_ = diag.Set(i, i, d) // safe
		}
		res, err := elimination.Eliminate(diag, elimination.Smith)
		if err != nil {
			return nil, moduleErrorf(opAbstract, err)
		}
		rank += t - res.Rank()
		for _, d := range res.Diagonal() {
			if !ring.IsUnit[T](r, d) {
				factors = append(factors, d)
			}
		}
	}

	n := len(factors) + rank
	basis := AbstractBasis(n)
	summands := make([]Summand[Generator, T], n)
	for i := range summands {
		d := r.Zero()
		if i < len(factors) {
			d = factors[i]
		}
		summands[i] = Summand[Generator, T]{r: r, generator: BasisElement[Generator, T](r, basis[i]), divisor: d}
	}
	id, _ := matrix.NewIdentity[T](r, n) // n ≥ 0

	return &Structure[Generator, T]{r: r, summands: summands, basis: basis, transition: id}, nil
}

// DirectSum returns the abstract structure isomorphic to a ⊕ b.
func DirectSum[A, B comparable, T any](a *Structure[A, T], b *Structure[B, T]) (*Structure[Generator, T], error) {
	torsions := append(a.TorsionCoefficients(), b.TorsionCoefficients()...)

	return NewAbstract(a.r, a.Rank()+b.Rank(), torsions...)
}

// AsAbstract forgets the ambient basis of s and returns the abstract
// structure with the same rank and torsion coefficients.
func (s *Structure[A, T]) AsAbstract() *Structure[Generator, T] {
	out, _ := NewAbstract(s.r, s.Rank(), s.TorsionCoefficients()...) // rank ≥ 0

	return out
}
