// SPDX-License-Identifier: MIT

// Package ring defines the algebraic capabilities consumed by the matrix,
// elimination and module packages, and ships the concrete coefficient rings
// used across the repository.
//
// What & Why:
//
//	Every algorithm in this module is exact: no floating point, no tolerance.
//	Instead of an inheritance tree of Ring/Field/EuclideanRing types, the
//	package exposes two small capability interfaces:
//
//	  Ring[T]       zero, one, +, −, ×, equality, unit inverse
//	  Euclidean[T]  Ring[T] + Euclidean division, degree, normalizing unit
//
//	A value type T carries no behavior of its own; the ring descriptor does.
//	This keeps T free to be *big.Int, *big.Rat, int64 or a package type
//	without wrappers, and lets the same T live in several rings (e.g. int64
//	in Z/5 and in Z/7).
//
// Concrete rings:
//
//	Integers()       Z over *big.Int, non-negative Euclidean remainder.
//	Rationals()      Q over *big.Rat, a field (degree 0 on non-zero values).
//	Polynomials()    Q[x] over Poly, degree = polynomial degree, monic normal form.
//	NewIntegersMod   Z/p over int64 for prime p, a field.
//
// Invariants:
//
//	For b ≠ 0, EucDiv(a, b) = (q, r) with a = q·b + r and r = 0 or
//	Degree(r) < Degree(b). Elimination terminates because of this measure.
//
// AI-Hints:
//   - Values are treated as immutable: every operation returns a fresh value.
//   - Use the generic helpers (Sub, Rem, GCD, Bezout, ...) instead of
//     re-deriving them per ring.
package ring
