// SPDX-License-Identifier: MIT
// Package matrix: elementary row and column operations.
//
// Purpose:
//   - Provide the invertibility-preserving primitives the elimination engine
//     is built from: swap, scale by a unit, add a multiple.
//   - Each primitive mutates the receiver in place and costs O(nnz) of the
//     affected lines once the table is aligned along the operated axis.
//
// Alignment:
//   - Row operations align the table by rows; column operations by columns.
//     Consecutive operations on the same axis therefore pay the realignment
//     at most once.
//
// AI-Hints:
//   - Operate only on a matrix you own (Clone first).
//   - MultiplyRow/MultiplyCol reject non-units with ErrInvalidScalar; use
//     Scale for arbitrary scalars on a fresh copy.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/modstruct/ring"
)

// SwapRows exchanges rows i and j.
// Complexity: O(1) after alignment.
func (m *Sparse[T]) SwapRows(i, j int) error {
	if err := validateRow(m, i); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := validateRow(m, j); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	m.realign(RowAligned)
	m.table[i], m.table[j] = m.table[j], m.table[i]

	return nil
}

// SwapCols exchanges columns i and j.
func (m *Sparse[T]) SwapCols(i, j int) error {
	if err := validateCol(m, i); err != nil {
		return matrixErrorf(opSwapCols, err)
	}
	if err := validateCol(m, j); err != nil {
		return matrixErrorf(opSwapCols, err)
	}
	m.realign(ColAligned)
	m.table[i], m.table[j] = m.table[j], m.table[i]

	return nil
}

// MultiplyRow multiplies row i by the unit u.
// Returns ErrInvalidScalar when u is not a unit of the ring.
// Complexity: O(nnz(row i)).
func (m *Sparse[T]) MultiplyRow(i int, u T) error {
	if err := validateRow(m, i); err != nil {
		return matrixErrorf(opMultiplyRow, err)
	}
	if !ring.IsUnit(m.r, u) {
		return matrixErrorf(opMultiplyRow, fmt.Errorf("%v: %w", u, ErrInvalidScalar))
	}
	m.realign(RowAligned)
	m.scaleLine(i, u)

	return nil
}

// MultiplyCol multiplies column j by the unit u.
// Returns ErrInvalidScalar when u is not a unit of the ring.
func (m *Sparse[T]) MultiplyCol(j int, u T) error {
	if err := validateCol(m, j); err != nil {
		return matrixErrorf(opMultiplyCol, err)
	}
	if !ring.IsUnit(m.r, u) {
		return matrixErrorf(opMultiplyCol, fmt.Errorf("%v: %w", u, ErrInvalidScalar))
	}
	m.realign(ColAligned)
	m.scaleLine(j, u)

	return nil
}

// AddRow performs row[to] += factor · row[from]. from and to must differ.
// Complexity: O(nnz(row from) + nnz(row to)).
func (m *Sparse[T]) AddRow(from, to int, factor T) error {
	if err := validateRow(m, from); err != nil {
		return matrixErrorf(opAddRow, err)
	}
	if err := validateRow(m, to); err != nil {
		return matrixErrorf(opAddRow, err)
	}
	if from == to {
		return matrixErrorf(opAddRow, fmt.Errorf("row %d onto itself: %w", from, ErrOutOfRange))
	}
	m.realign(RowAligned)
	m.addLine(from, to, factor)

	return nil
}

// AddCol performs col[to] += factor · col[from]. from and to must differ.
func (m *Sparse[T]) AddCol(from, to int, factor T) error {
	if err := validateCol(m, from); err != nil {
		return matrixErrorf(opAddCol, err)
	}
	if err := validateCol(m, to); err != nil {
		return matrixErrorf(opAddCol, err)
	}
	if from == to {
		return matrixErrorf(opAddCol, fmt.Errorf("col %d onto itself: %w", from, ErrOutOfRange))
	}
	m.realign(ColAligned)
	m.addLine(from, to, factor)

	return nil
}

// scaleLine multiplies every cell of the major line k by u.
// u is a unit, so no product can vanish in an integral domain; the filter
// still runs to keep the invariant for rings with zero divisors.
func (m *Sparse[T]) scaleLine(k int, u T) {
	list := m.table[k]
	out := list[:0]
	for _, c := range list {
		if v := m.r.Mul(u, c.val); !ring.IsZero(m.r, v) {
			out = append(out, cell[T]{idx: c.idx, val: v})
		}
	}
	m.table[k] = out
}

// addLine merges factor·line[from] into line[to].
func (m *Sparse[T]) addLine(from, to int, factor T) {
	if ring.IsZero(m.r, factor) {
		return
	}
	src, dst := m.table[from], m.table[to]
	if len(src) == 0 {
		return
	}
	out := make([]cell[T], 0, len(src)+len(dst))
	x, y := 0, 0
	for x < len(src) || y < len(dst) {
		switch {
		case y >= len(dst) || (x < len(src) && src[x].idx < dst[y].idx):
			if v := m.r.Mul(factor, src[x].val); !ring.IsZero(m.r, v) {
				out = append(out, cell[T]{idx: src[x].idx, val: v})
			}
			x++
		case x >= len(src) || dst[y].idx < src[x].idx:
			out = append(out, dst[y])
			y++
		default:
			v := m.r.Add(dst[y].val, m.r.Mul(factor, src[x].val))
			if !ring.IsZero(m.r, v) {
				out = append(out, cell[T]{idx: dst[y].idx, val: v})
			}
			x++
			y++
		}
	}
	m.table[to] = out
}
