// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf(op, ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> dimension mismatch -> scalar validity.

var (
	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilRing indicates that a constructor was called without a coefficient ring.
	ErrNilRing = errors.New("matrix: nil ring")

	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	// Zero-sized shapes (0×n, n×0) are legal.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row/column index or a submatrix bound is
	// outside valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidScalar signals that an elementary scaling was requested with a
	// non-unit scalar; the operation would not be invertible.
	ErrInvalidScalar = errors.New("matrix: scalar is not a unit")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewZero      = "NewZero"
	opNewIdentity  = "NewIdentity"
	opNewFromGrid  = "NewFromGrid"
	opNewEntries   = "NewFromEntries"
	opNewColumns   = "NewFromColumns"
	opAt           = "At"
	opSet          = "Set"
	opRowEntries   = "RowEntries"
	opColEntries   = "ColEntries"
	opColumn       = "Column"
	opRow          = "Row"
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opMulVec       = "MulVec"
	opSubmatrix    = "Submatrix"
	opConcat       = "ConcatColumns"
	opSwapRows     = "SwapRows"
	opSwapCols     = "SwapCols"
	opMultiplyRow  = "MultiplyRow"
	opMultiplyCol  = "MultiplyCol"
	opAddRow       = "AddRow"
	opAddCol       = "AddCol"
	opIdentityLike = "IdentityLike"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
