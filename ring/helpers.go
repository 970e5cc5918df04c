// SPDX-License-Identifier: MIT
// Package ring: generic helpers derived from the capability interfaces.
//
// Purpose:
//   - Provide the derived operations (subtraction, quotient, remainder, gcd)
//     once, for every ring, instead of per implementation.
//   - Keep error surfaces uniform: helpers wrap ErrDivisionByZero with their
//     own operation tag.

package ring

// Sub returns a − b.
func Sub[T any](r Ring[T], a, b T) T {
	return r.Add(a, r.Neg(b))
}

// IsZero reports whether a equals the ring's zero.
func IsZero[T any](r Ring[T], a T) bool {
	return r.Equal(a, r.Zero())
}

// IsOne reports whether a equals the ring's identity.
func IsOne[T any](r Ring[T], a T) bool {
	return r.Equal(a, r.One())
}

// IsUnit reports whether a has a multiplicative inverse.
func IsUnit[T any](r Ring[T], a T) bool {
	_, ok := r.Inverse(a)

	return ok
}

// FromInt returns n·1 computed by repeated doubling.
// Complexity: O(log |n|) ring operations.
func FromInt[T any](r Ring[T], n int64) T {
	neg := n < 0
	if neg {
		n = -n
	}
	acc, base := r.Zero(), r.One()
	for n > 0 {
		if n&1 == 1 {
			acc = r.Add(acc, base)
		}
		base = r.Add(base, base)
		n >>= 1
	}
	if neg {
		return r.Neg(acc)
	}

	return acc
}

// Quo returns the Euclidean quotient of a by b.
func Quo[T any](r Euclidean[T], a, b T) (T, error) {
	q, _, err := r.EucDiv(a, b)
	if err != nil {
		return q, ringErrorf(opQuo, err)
	}

	return q, nil
}

// Rem returns the Euclidean remainder of a by b.
func Rem[T any](r Euclidean[T], a, b T) (T, error) {
	_, rem, err := r.EucDiv(a, b)
	if err != nil {
		return rem, ringErrorf(opRem, err)
	}

	return rem, nil
}

// Divides reports whether b | a. Zero divides only zero.
func Divides[T any](r Euclidean[T], b, a T) bool {
	if IsZero[T](r, b) {
		return IsZero[T](r, a)
	}
	_, rem, err := r.EucDiv(a, b)

	return err == nil && IsZero[T](r, rem)
}

// Normalize returns the canonical associate of a.
func Normalize[T any](r Euclidean[T], a T) T {
	return r.Mul(r.NormalizingUnit(a), a)
}

// GCD returns the normalized greatest common divisor of a and b.
// GCD(0, 0) = 0.
//
// Implementation:
//   - Stage 1: iterative Euclid (a, b) ← (b, a mod b) until b = 0.
//   - Stage 2: normalize the survivor.
//
// Complexity: O(Degree(b)) divisions; loop, not recursion.
func GCD[T any](r Euclidean[T], a, b T) (T, error) {
	for !IsZero[T](r, b) {
		_, rem, err := r.EucDiv(a, b)
		if err != nil {
			return r.Zero(), ringErrorf(opGCD, err)
		}
		a, b = b, rem
	}

	return Normalize(r, a), nil
}

// LCM returns the normalized least common multiple of a and b.
// LCM(a, 0) = 0.
func LCM[T any](r Euclidean[T], a, b T) (T, error) {
	if IsZero[T](r, a) || IsZero[T](r, b) {
		return r.Zero(), nil
	}
	g, err := GCD(r, a, b)
	if err != nil {
		return r.Zero(), ringErrorf(opLCM, err)
	}
	q, _, err := r.EucDiv(r.Mul(a, b), g)
	if err != nil {
		return r.Zero(), ringErrorf(opLCM, err)
	}

	return Normalize(r, q), nil
}

// Bezout returns (x, y, g) with x·a + y·b = g, where g is a gcd of a and b.
// g is NOT normalized, so that the identity holds exactly as returned.
//
// Implementation:
//   - Extended Euclid carried as two coefficient pairs; each step replaces
//     (r0, r1) by (r1, r0 − q·r1) and updates (x, y) in lockstep.
//
// Complexity: O(Degree(b)) divisions.
func Bezout[T any](r Euclidean[T], a, b T) (x, y, g T, err error) {
	r0, r1 := a, b
	x0, x1 := r.One(), r.Zero()
	y0, y1 := r.Zero(), r.One()
	for !IsZero[T](r, r1) {
		q, rem, divErr := r.EucDiv(r0, r1)
		if divErr != nil {
			return r.Zero(), r.Zero(), r.Zero(), ringErrorf(opBezout, divErr)
		}
		r0, r1 = r1, rem
		x0, x1 = x1, Sub[T](r, x0, r.Mul(q, x1))
		y0, y1 = y1, Sub[T](r, y0, r.Mul(q, y1))
	}

	return x0, y0, r0, nil
}
