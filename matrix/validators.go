// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep algebra and elementary operations minimal by delegating
//    shape/nil/index checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T any](m *Sparse[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// validatePair runs ValidateNotNil on both operands.
func validatePair[T any](a, b *Sparse[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape[T any](a, b *Sparse[T]) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape ensures the product a·b is defined (a.Cols == b.Rows).
//
// Implementation: assumes a and b are not nil.
// Complexity: O(1).
func ValidateMulShape[T any](a, b *Sparse[T]) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulShape",
			fmt.Errorf("%d×%d · %d×%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare[T any](m *Sparse[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex checks 0 ≤ i < Rows and 0 ≤ j < Cols.
// Complexity: O(1).
func ValidateIndex[T any](m *Sparse[T], i, j int) error {
	if !m.inRange(i, j) {
		return validatorErrorf("ValidateIndex", fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}

	return nil
}

// validateRow checks 0 ≤ i < Rows.
func validateRow[T any](m *Sparse[T], i int) error {
	if i < 0 || i >= m.rows {
		return validatorErrorf("ValidateRow", fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}

	return nil
}

// validateCol checks 0 ≤ j < Cols.
func validateCol[T any](m *Sparse[T], j int) error {
	if j < 0 || j >= m.cols {
		return validatorErrorf("ValidateCol", fmt.Errorf("col %d: %w", j, ErrOutOfRange))
	}

	return nil
}
