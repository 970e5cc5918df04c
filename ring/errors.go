// SPDX-License-Identifier: MIT
// Package ring: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with an operation
// tag); callers match them via errors.Is.

package ring

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by EucDiv (and every helper built on it)
	// when the divisor is the ring's zero.
	ErrDivisionByZero = errors.New("ring: division by zero divisor")

	// ErrNotPrime signals that a modulus for Z/p is not a prime number,
	// so the quotient ring would not be a field.
	ErrNotPrime = errors.New("ring: modulus is not prime")

	// ErrNotInvertible indicates that a unit was required but the value has
	// no multiplicative inverse in the ring.
	ErrNotInvertible = errors.New("ring: value is not invertible")
)

// Operation name constants for unified error wrapping.
const (
	opEucDiv = "EucDiv"
	opQuo    = "Quo"
	opRem    = "Rem"
	opGCD    = "GCD"
	opLCM    = "LCM"
	opBezout = "Bezout"
	opMod    = "NewIntegersMod"
)

// ringErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func ringErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
