// SPDX-License-Identifier: MIT

package module

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
)

// Summand is one cyclic piece R/(d) of a Structure: a generator in the
// ambient free module and its divisor. A zero divisor marks a free summand.
type Summand[A comparable, T any] struct {
	r         ring.Euclidean[T]
	generator Element[A, T]
	divisor   T
}

// Generator returns the summand generator over the ambient basis.
func (s Summand[A, T]) Generator() Element[A, T] { return s.generator }

// Divisor returns d (zero for free summands).
func (s Summand[A, T]) Divisor() T { return s.divisor }

// IsFree reports d = 0. The zero value Summand{} is not free.
func (s Summand[A, T]) IsFree() bool { return s.r != nil && ring.IsZero[T](s.r, s.divisor) }

// String renders "Z" or "Z/2"; the zero value Summand{} prints "0".
func (s Summand[A, T]) String() string {
	if s.r == nil {
		return "0"
	}
	if s.IsFree() {
		return s.r.Symbol()
	}

	return quotientSymbol(s.r.Symbol(), s.divisor)
}

// Equal reports equal generators and equal divisors.
func (s Summand[A, T]) Equal(o Summand[A, T]) bool {
	if s.r == nil || o.r == nil {
		return s.r == nil && o.r == nil
	}

	return s.generator.Equal(o.generator) && s.r.Equal(s.divisor, o.divisor)
}

func quotientSymbol(symbol string, d any) string {
	ds := fmt.Sprint(d)
	if strings.ContainsRune(ds, ' ') {
		ds = "(" + ds + ")"
	}

	return symbol + "/" + ds
}

// Structure is a decomposed finitely presented module
//
//	M ≅ R/(d₁) ⊕ … ⊕ R/(d_t) ⊕ R^rank,  d₁ | d₂ | … | d_t,
//
// together with the transition matrix that maps ambient coordinates to
// summand coordinates. Structures are read-only and safe for concurrent use.
type Structure[A comparable, T any] struct {
	r          ring.Euclidean[T]
	summands   []Summand[A, T]
	basis      []A
	transition *matrix.Sparse[T] // len(summands) × len(basis)
}

// Ring returns the coefficient ring.
func (s *Structure[A, T]) Ring() ring.Euclidean[T] { return s.r }

// Len is the number of summands.
func (s *Structure[A, T]) Len() int { return len(s.summands) }

// IsTrivial reports the zero module.
func (s *Structure[A, T]) IsTrivial() bool { return len(s.summands) == 0 }

// IsFree reports the absence of torsion summands.
func (s *Structure[A, T]) IsFree() bool {
	for _, sm := range s.summands {
		if !sm.IsFree() {
			return false
		}
	}

	return true
}

// Rank counts the free summands.
func (s *Structure[A, T]) Rank() int {
	n := 0
	for _, sm := range s.summands {
		if sm.IsFree() {
			n++
		}
	}

	return n
}

// TorsionCoefficients returns the divisors of the torsion summands in order.
func (s *Structure[A, T]) TorsionCoefficients() []T {
	var out []T
	for _, sm := range s.summands {
		if !sm.IsFree() {
			out = append(out, sm.divisor)
		}
	}

	return out
}

// Summands returns a copy of the summand list.
func (s *Structure[A, T]) Summands() []Summand[A, T] {
	return append([]Summand[A, T](nil), s.summands...)
}

// Summand returns the i-th summand; matrix.ErrOutOfRange unless 0 ≤ i < Len.
func (s *Structure[A, T]) Summand(i int) (Summand[A, T], error) {
	if i < 0 || i >= len(s.summands) {
		return Summand[A, T]{}, moduleErrorf(opSummand, fmt.Errorf("index %d of %d: %w", i, len(s.summands), matrix.ErrOutOfRange))
	}

	return s.summands[i], nil
}

// Generator returns the i-th summand generator.
func (s *Structure[A, T]) Generator(i int) (Element[A, T], error) {
	sm, err := s.Summand(i)
	if err != nil {
		return Element[A, T]{}, err
	}

	return sm.generator, nil
}

// Generators returns all summand generators in order.
func (s *Structure[A, T]) Generators() []Element[A, T] {
	out := make([]Element[A, T], len(s.summands))
	for i, sm := range s.summands {
		out[i] = sm.generator
	}

	return out
}

// Basis returns the ambient labels.
func (s *Structure[A, T]) Basis() []A { return append([]A(nil), s.basis...) }

// Transition returns the Len()×len(Basis()) matrix mapping ambient
// coordinates to summand coordinates.
func (s *Structure[A, T]) Transition() *matrix.Sparse[T] { return s.transition.Clone() }

// Factorize returns the coordinates of x in the summand generators:
// the transition matrix applied to x, then each torsion coordinate reduced
// by Rem modulo its divisor.
//
// Errors: ErrUndeclaredGenerator if x uses a label outside Basis().
// Complexity: O(nnz(transition) + len(basis)).
func (s *Structure[A, T]) Factorize(x Element[A, T]) ([]T, error) {
	v, err := x.factorizeOver(s.r, s.basis)
	if err != nil {
		return nil, moduleErrorf(opStructFactor, err)
	}
	out, err := matrix.MulVec(s.transition, v)
	if err != nil {
		return nil, moduleErrorf(opStructFactor, err)
	}
	for i, sm := range s.summands {
		if sm.IsFree() {
			continue
		}
		if out[i], err = ring.Rem(s.r, out[i], sm.divisor); err != nil {
			return nil, moduleErrorf(opStructFactor, err)
		}
	}

	return out, nil
}

// ElementIsZero reports whether x vanishes in the module.
func (s *Structure[A, T]) ElementIsZero(x Element[A, T]) (bool, error) {
	v, err := s.Factorize(x)
	if err != nil {
		return false, err
	}
	for _, c := range v {
		if !ring.IsZero[T](s.r, c) {
			return false, nil
		}
	}

	return true, nil
}

// ElementsAreEqual reports whether x and y agree in the module.
func (s *Structure[A, T]) ElementsAreEqual(x, y Element[A, T]) (bool, error) {
	return s.ElementIsZero(x.Sub(y))
}

// Combine returns Σ coords[i]·Generator(i), the inverse of Factorize up to
// the relations. Returns ErrDimensionMismatch unless len(coords) = Len().
func (s *Structure[A, T]) Combine(coords []T) (Element[A, T], error) {
	if len(coords) != len(s.summands) {
		return Element[A, T]{}, moduleErrorf(opCombine,
			fmt.Errorf("%d coordinates for %d summands: %w", len(coords), len(s.summands), ErrDimensionMismatch))
	}
	out := Zero[A, T](s.r)
	for i, c := range coords {
		out = out.Add(s.summands[i].generator.Scale(c))
	}

	return out, nil
}

// SubSummands restricts s to the listed summands, in the given order, with
// the matching rows of the transition matrix.
// Returns matrix.ErrOutOfRange for a bad index.
func (s *Structure[A, T]) SubSummands(indices ...int) (*Structure[A, T], error) {
	summands := make([]Summand[A, T], len(indices))
	grid := make([]T, 0, len(indices)*len(s.basis))
	for k, i := range indices {
		if i < 0 || i >= len(s.summands) {
			return nil, moduleErrorf(opSubSummands, fmt.Errorf("index %d of %d: %w", i, len(s.summands), matrix.ErrOutOfRange))
		}
		summands[k] = s.summands[i]
		row, _ := s.transition.Row(i) // i < Len
		grid = append(grid, row...)
	}
	trans, err := matrix.NewFromGrid[T](s.r, len(indices), len(s.basis), grid)
	if err != nil {
		return nil, moduleErrorf(opSubSummands, err)
	}

	return &Structure[A, T]{r: s.r, summands: summands, basis: s.basis, transition: trans}, nil
}

// FreePart restricts s to its free summands.
func (s *Structure[A, T]) FreePart() *Structure[A, T] {
	return s.filter(func(sm Summand[A, T]) bool { return sm.IsFree() })
}

// TorsionPart restricts s to its torsion summands.
func (s *Structure[A, T]) TorsionPart() *Structure[A, T] {
	return s.filter(func(sm Summand[A, T]) bool { return !sm.IsFree() })
}

func (s *Structure[A, T]) filter(keep func(Summand[A, T]) bool) *Structure[A, T] {
	var idx []int
	for i, sm := range s.summands {
		if keep(sm) {
			idx = append(idx, i)
		}
	}
	sub, _ := s.SubSummands(idx...) // indices are in range

	return sub
}

// Equal reports summand-wise equality: the same generators with the same
// divisors, in the same order. Isomorphic structures with different
// generators are not Equal; compare AsAbstract results for that.
func (s *Structure[A, T]) Equal(o *Structure[A, T]) bool {
	if len(s.summands) != len(o.summands) {
		return false
	}
	for i, sm := range s.summands {
		if !sm.Equal(o.summands[i]) {
			return false
		}
	}

	return true
}

// DetailString renders the isomorphism type followed by the generators,
// e.g. "Z/2⊕Z, [e1 e2]".
func (s *Structure[A, T]) DetailString() string {
	return fmt.Sprintf("%s, %v", s, s.Generators())
}

// String renders the isomorphism type, e.g. "0", "Z", "Z/2⊕Z/4⊕Z^2" or
// "Z/2^2⊕Z" for repeated divisors.
func (s *Structure[A, T]) String() string {
	if len(s.summands) == 0 {
		return "0"
	}

	type group struct {
		d T
		n int
	}
	var groups []group
	for _, d := range s.TorsionCoefficients() {
		if n := len(groups); n > 0 && s.r.Equal(groups[n-1].d, d) {
			groups[n-1].n++
			continue
		}
		groups = append(groups, group{d: d, n: 1})
	}

	var parts []string
	for _, g := range groups {
		parts = append(parts, quotientSymbol(s.r.Symbol(), g.d)+power(g.n))
	}
	if rank := s.Rank(); rank > 0 {
		parts = append(parts, s.r.Symbol()+power(rank))
	}

	return strings.Join(parts, "⊕")
}

func power(n int) string {
	if n == 1 {
		return ""
	}

	return fmt.Sprintf("^%d", n)
}
