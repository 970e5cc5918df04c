// SPDX-License-Identifier: MIT

// Package matrix provides Sparse, an exact rectangular matrix over any
// ring.Ring, together with the algebra and the elementary row/column
// operations that the elimination engine is built from.
//
// The matrix package provides:
//
//   - Constructors from dense grids, column lists and sparse entry lists
//     (NewFromGrid, NewFromColumns, NewFromEntries), plus NewZero/NewIdentity.
//   - Read accessors (At, Entries, RowEntries, ColEntries, Column, Grid,
//     Diagonal) that never change internal state.
//   - Algebra (Add, Sub, Mul, MulVec, Product, Transposed, Submatrix,
//     SubmatrixFunc, ConcatColumns).
//   - Elementary operations (SwapRows, MultiplyRow, AddRow and the column
//     counterparts) mutating an owned working copy.
//
// Storage keeps one sorted list of non-zero cells per row or per column and
// switches the axis when an operation on the other axis is requested. Zero
// coefficients are never stored. 0×n and n×0 matrices are legal.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrOutOfRange,
// ErrInvalidScalar, ...) wrapped with the failing operation name; match them
// with errors.Is.
package matrix
