// SPDX-License-Identifier: MIT

// Package ring: capability interfaces.
// This file contains ONLY the Ring / Euclidean contracts; concrete rings live
// in integer.go, rational.go, polynomial.go and zmod.go.
package ring

// Ring describes a commutative ring with identity over the value type T.
//
// Contract:
//   - Zero and One return fresh values; callers may keep them.
//   - Add, Neg and Mul never mutate their arguments.
//   - Equal is an equivalence relation consistent with the ring axioms.
//   - Inverse returns (a⁻¹, true) iff a is a unit.
//
// Complexity: implementation-defined; all concrete rings in this package are
// O(size of operands) per call.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// Add returns a + b.
	Add(a, b T) T

	// Neg returns −a.
	Neg(a T) T

	// Mul returns a · b.
	Mul(a, b T) T

	// Equal reports whether a and b denote the same ring element.
	Equal(a, b T) bool

	// Inverse returns the multiplicative inverse of a when a is a unit.
	Inverse(a T) (T, bool)

	// Symbol is the short human-facing name used in descriptions ("Z", "Q").
	Symbol() string
}

// Euclidean is a Ring equipped with Euclidean division.
//
// Contract:
//   - EucDiv(a, b) returns (q, r) with a = q·b + r and either r = 0 or
//     Degree(r) < Degree(b); b = 0 yields ErrDivisionByZero.
//   - Degree is only meaningful on non-zero values (zero reports −1).
//   - NormalizingUnit(a) is a unit u such that u·a is the canonical associate
//     of a (positive integer, monic polynomial, 1 in a field). For a = 0 it
//     returns One.
type Euclidean[T any] interface {
	Ring[T]

	// EucDiv performs Euclidean division of a by b.
	EucDiv(a, b T) (q, r T, err error)

	// Degree is the Euclidean size measure that drives termination.
	Degree(a T) int

	// NormalizingUnit returns the unit that maps a to its canonical associate.
	NormalizingUnit(a T) T
}

// Field is a Euclidean ring whose non-zero values are all units.
type Field[T any] interface {
	Euclidean[T]

	// Characteristic returns the ring characteristic (0 for Q).
	Characteristic() int64
}

// IsField reports whether r advertises itself as a Field.
func IsField[T any](r Ring[T]) bool {
	_, ok := r.(Field[T])

	return ok
}
