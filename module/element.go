// SPDX-License-Identifier: MIT

package module

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
)

// Term is one summand Coeff·Label of an Element.
type Term[A comparable, T any] struct {
	Label A
	Coeff T
}

// Element is a vector of the free module over the labels A: a finite linear
// combination Σ cₐ·a with coefficients in a ring.
//
// Elements are immutable values. Only non-zero coefficients are stored, in
// order of first appearance, so String and Terms are deterministic.
type Element[A comparable, T any] struct {
	r      ring.Ring[T]
	labels []A
	coeffs map[A]T
}

// collect sums duplicate labels and drops zero coefficients.
// Complexity: O(len(terms)).
func collect[A comparable, T any](r ring.Ring[T], terms []Term[A, T]) Element[A, T] {
	coeffs := make(map[A]T, len(terms))
	var order []A
	for _, t := range terms {
		if prev, ok := coeffs[t.Label]; ok {
			coeffs[t.Label] = r.Add(prev, t.Coeff)
			continue
		}
		coeffs[t.Label] = t.Coeff
		order = append(order, t.Label)
	}

	labels := order[:0]
	for _, a := range order {
		if ring.IsZero(r, coeffs[a]) {
			delete(coeffs, a)
			continue
		}
		labels = append(labels, a)
	}

	return Element[A, T]{r: r, labels: labels, coeffs: coeffs}
}

// Zero returns the zero element over r.
func Zero[A comparable, T any](r ring.Ring[T]) Element[A, T] {
	return Element[A, T]{r: r, coeffs: map[A]T{}}
}

// NewElement builds Σ terms, summing repeated labels.
func NewElement[A comparable, T any](r ring.Ring[T], terms ...Term[A, T]) Element[A, T] {
	return collect(r, terms)
}

// BasisElement returns 1·a.
func BasisElement[A comparable, T any](r ring.Ring[T], a A) Element[A, T] {
	return collect(r, []Term[A, T]{{Label: a, Coeff: r.One()}})
}

// FromCoefficients returns Σ coeffs[i]·basis[i].
// Returns ErrDimensionMismatch when the lengths differ.
func FromCoefficients[A comparable, T any](r ring.Ring[T], basis []A, coeffs []T) (Element[A, T], error) {
	if len(basis) != len(coeffs) {
		return Zero[A, T](r), moduleErrorf(opNewElement,
			fmt.Errorf("%d labels, %d coefficients: %w", len(basis), len(coeffs), ErrDimensionMismatch))
	}
	terms := make([]Term[A, T], len(basis))
	for i, a := range basis {
		terms[i] = Term[A, T]{Label: a, Coeff: coeffs[i]}
	}

	return collect(r, terms), nil
}

// Ring returns the coefficient ring.
func (x Element[A, T]) Ring() ring.Ring[T] { return x.r }

// Len is the number of non-zero terms.
func (x Element[A, T]) Len() int { return len(x.labels) }

// IsZero reports whether every coefficient is zero.
func (x Element[A, T]) IsZero() bool { return len(x.labels) == 0 }

// Labels returns the labels with non-zero coefficient, in first-appearance order.
func (x Element[A, T]) Labels() []A { return append([]A(nil), x.labels...) }

// Terms returns the non-zero terms in label order.
func (x Element[A, T]) Terms() []Term[A, T] {
	out := make([]Term[A, T], len(x.labels))
	for i, a := range x.labels {
		out[i] = Term[A, T]{Label: a, Coeff: x.coeffs[a]}
	}

	return out
}

// Coefficient returns the coefficient of a (zero when absent). The zero
// value Element{} carries no ring and reports the zero value of T.
func (x Element[A, T]) Coefficient(a A) T {
	if c, ok := x.coeffs[a]; ok {
		return c
	}
	if x.r == nil {
		var zero T
		return zero
	}

	return x.r.Zero()
}

// ringWith picks a usable ring when one operand is the zero value Element{}.
func (x Element[A, T]) ringWith(y Element[A, T]) ring.Ring[T] {
	if x.r != nil {
		return x.r
	}

	return y.r
}

// Add returns x + y.
func (x Element[A, T]) Add(y Element[A, T]) Element[A, T] {
	return collect(x.ringWith(y), append(x.Terms(), y.Terms()...))
}

// Neg returns −x.
func (x Element[A, T]) Neg() Element[A, T] {
	if x.IsZero() {
		return x
	}
	terms := x.Terms()
	for i := range terms {
		terms[i].Coeff = x.r.Neg(terms[i].Coeff)
	}

	return Element[A, T]{r: x.r, labels: x.Labels(), coeffs: termMap(terms)}
}

// Sub returns x − y.
func (x Element[A, T]) Sub(y Element[A, T]) Element[A, T] {
	if y.IsZero() {
		return x
	}

	return x.Add(y.Neg())
}

// Scale returns c·x. Zero products are dropped.
func (x Element[A, T]) Scale(c T) Element[A, T] {
	if x.IsZero() {
		return x
	}
	terms := x.Terms()
	for i := range terms {
		terms[i].Coeff = x.r.Mul(c, terms[i].Coeff)
	}

	return collect(x.r, terms)
}

// Equal reports coefficient-wise equality; label order is irrelevant.
func (x Element[A, T]) Equal(y Element[A, T]) bool {
	if len(x.labels) != len(y.labels) {
		return false
	}
	r := x.ringWith(y)
	for a, c := range x.coeffs {
		d, ok := y.coeffs[a]
		if !ok || !r.Equal(c, d) {
			return false
		}
	}

	return true
}

// Factorize returns the coordinate vector of x in basis.
// Returns ErrUndeclaredGenerator if x uses a label outside basis, and
// matrix.ErrNilRing for the ring-less zero value Element{} over a non-empty
// basis (use Structure.Factorize, which supplies its ring).
// Complexity: O(len(basis) + x.Len()).
func (x Element[A, T]) Factorize(basis []A) ([]T, error) {
	if x.r == nil && len(basis) > 0 {
		return nil, moduleErrorf(opFactorize, matrix.ErrNilRing)
	}

	return x.factorizeOver(x.r, basis)
}

// factorizeOver is Factorize with zeros taken from r.
func (x Element[A, T]) factorizeOver(r ring.Ring[T], basis []A) ([]T, error) {
	index := indexOf(basis)
	out := make([]T, len(basis))
	for i := range out {
		out[i] = r.Zero()
	}
	for _, a := range x.labels {
		i, ok := index[a]
		if !ok {
			return nil, moduleErrorf(opFactorize, fmt.Errorf("%v: %w", a, ErrUndeclaredGenerator))
		}
		out[i] = x.coeffs[a]
	}

	return out, nil
}

// String renders x as "2·e1 + -e2"; the zero element prints "0".
func (x Element[A, T]) String() string {
	if x.IsZero() {
		return "0"
	}
	var b strings.Builder
	for k, a := range x.labels {
		if k > 0 {
			b.WriteString(" + ")
		}
		c := x.coeffs[a]
		switch {
		case ring.IsOne(x.r, c):
			fmt.Fprint(&b, a)
		case ring.IsOne(x.r, x.r.Neg(c)):
			fmt.Fprintf(&b, "-%v", a)
		default:
			s := fmt.Sprint(c)
			if strings.ContainsRune(s, ' ') {
				s = "(" + s + ")"
			}
			fmt.Fprintf(&b, "%s·%v", s, a)
		}
	}

	return b.String()
}

// termMap indexes terms by label.
func termMap[A comparable, T any](terms []Term[A, T]) map[A]T {
	out := make(map[A]T, len(terms))
	for _, t := range terms {
		out[t.Label] = t.Coeff
	}

	return out
}

// indexOf maps each label to its first position in basis.
func indexOf[A comparable](basis []A) map[A]int {
	out := make(map[A]int, len(basis))
	for i, a := range basis {
		if _, ok := out[a]; !ok {
			out[a] = i
		}
	}

	return out
}

// validateBasis rejects repeated labels.
func validateBasis[A comparable](basis []A) error {
	seen := make(map[A]struct{}, len(basis))
	for _, a := range basis {
		if _, ok := seen[a]; ok {
			return fmt.Errorf("%v: %w", a, ErrDuplicateGenerator)
		}
		seen[a] = struct{}{}
	}

	return nil
}

// fromColumn turns a dense coordinate column into an element over basis.
func fromColumn[A comparable, T any](r ring.Ring[T], basis []A, col []T) Element[A, T] {
	terms := make([]Term[A, T], 0, len(col))
	for i, c := range col {
		if !ring.IsZero(r, c) {
			terms = append(terms, Term[A, T]{Label: basis[i], Coeff: c})
		}
	}

	return collect(r, terms)
}
