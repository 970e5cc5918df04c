// SPDX-License-Identifier: MIT
// Package elimination: sentinel error set.
// Engine entry points return these sentinels (wrapped with an operation tag)
// or pass through matrix/ring sentinels unchanged; match with errors.Is.

package elimination

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEuclidean is returned when the matrix ring does not implement
	// ring.Euclidean; normal forms need Euclidean division.
	ErrNotEuclidean = errors.New("elimination: ring is not Euclidean")

	// ErrUnknownForm signals a Form value outside the declared constants.
	ErrUnknownForm = errors.New("elimination: unknown form")

	// ErrUnknownOperation signals an OpKind outside the declared constants.
	ErrUnknownOperation = errors.New("elimination: unknown operation kind")

	// ErrUnsupportedForm is returned by Result queries that the chosen form
	// cannot answer (e.g. kernel vectors of a row echelon form).
	ErrUnsupportedForm = errors.New("elimination: query unsupported for this form")

	// ErrNotInvertible is returned by Result.Inverse for singular matrices or
	// matrices whose normal form carries a non-unit pivot.
	ErrNotInvertible = errors.New("elimination: matrix is not invertible")

	// ErrVerificationFailed is returned with WithVerify() when
	// Left·A·Right does not reproduce the normal form. It indicates a bug in
	// a ring implementation, never a user error.
	ErrVerificationFailed = errors.New("elimination: normal form verification failed")

	// ErrStepLimit is returned when WithMaxSteps(n) is set and the engine
	// needs more than n elementary operations.
	ErrStepLimit = errors.New("elimination: step limit exceeded")
)

// Operation name constants for unified error wrapping.
const (
	opEliminate   = "Eliminate"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opKernel      = "Kernel"
	opImage       = "Image"
	opApply       = "Operation.Apply"
	opVerify      = "Verify"
)

// eliminationErrorf wraps err with an operation tag, preserving it for errors.Is.
func eliminationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
