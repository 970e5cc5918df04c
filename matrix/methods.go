// SPDX-License-Identifier: MIT
// Package matrix provides the ring-generic algebra on Sparse values:
// element-wise sums, products, scaling, transposition and slicing.
// All functions perform strict fail-fast validation, never mutate their
// operands and return fresh matrices.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/modstruct/ring"
)

// Add returns the element-wise sum a + b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): merge the two sorted row lists.
// Complexity: O(nnz(a) + nnz(b)).
func Add[T any](a, b *Sparse[T]) (*Sparse[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return merge(a, b, false), nil
}

// Sub returns the element-wise difference a − b.
// Complexity: O(nnz(a) + nnz(b)).
func Sub[T any](a, b *Sparse[T]) (*Sparse[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return merge(a, b, true), nil
}

// merge combines two equally shaped matrices row by row; neg subtracts b.
func merge[T any](a, b *Sparse[T], neg bool) *Sparse[T] {
	r := a.r
	ra, rb := a.rowView(), b.rowView()
	out := newEmpty(r, a.rows, a.cols, RowAligned)
	for i := 0; i < a.rows; i++ {
		la, lb := ra[i], rb[i]
		var list []cell[T]
		x, y := 0, 0
		for x < len(la) || y < len(lb) {
			switch {
			case y >= len(lb) || (x < len(la) && la[x].idx < lb[y].idx):
				list = append(list, la[x])
				x++
			case x >= len(la) || lb[y].idx < la[x].idx:
				v := lb[y].val
				if neg {
					v = r.Neg(v)
				}
				list = append(list, cell[T]{idx: lb[y].idx, val: v})
				y++
			default:
				v := lb[y].val
				if neg {
					v = r.Neg(v)
				}
				if s := r.Add(la[x].val, v); !ring.IsZero(r, s) {
					list = append(list, cell[T]{idx: la[x].idx, val: s})
				}
				x++
				y++
			}
		}
		out.table[i] = list
	}

	return out
}

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: for every row i of a, accumulate a[i,k]·b[k,:] into a dense
//     scratch row, tracking touched columns.
//   - Stage 3: emit touched non-zero columns in ascending order.
//
// Complexity: O(Σ_i Σ_{k∈row i} nnz(b[k,:]) + rows·cols) worst case.
func Mul[T any](a, b *Sparse[T]) (*Sparse[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r := a.r
	ra, rb := a.rowView(), b.rowView()
	out := newEmpty(r, a.rows, b.cols, RowAligned)
	acc := make([]T, b.cols)
	touched := make([]bool, b.cols)
	for i := 0; i < a.rows; i++ {
		for _, ac := range ra[i] {
			for _, bc := range rb[ac.idx] {
				p := r.Mul(ac.val, bc.val)
				if touched[bc.idx] {
					acc[bc.idx] = r.Add(acc[bc.idx], p)
				} else {
					acc[bc.idx] = p
					touched[bc.idx] = true
				}
			}
		}
		var list []cell[T]
		for j := 0; j < b.cols; j++ {
			if !touched[j] {
				continue
			}
			if !ring.IsZero(r, acc[j]) {
				list = append(list, cell[T]{idx: j, val: acc[j]})
			}
			touched[j] = false
		}
		out.table[i] = list
	}

	return out, nil
}

// MulVec returns m·x for a dense vector x of length Cols().
// Complexity: O(nnz(m)).
func MulVec[T any](m *Sparse[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if len(x) != m.cols {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	out := m.zeros(m.rows)
	m.Range(func(i, j int, v T) bool {
		out[i] = m.r.Add(out[i], m.r.Mul(v, x[j]))
		return true
	})

	return out, nil
}

// Neg returns −m.
func (m *Sparse[T]) Neg() *Sparse[T] {
	out := m.Clone()
	for _, list := range out.table {
		for k := range list {
			list[k].val = m.r.Neg(list[k].val)
		}
	}

	return out
}

// Scale returns c·m. Zero divisors in the ring may annihilate entries; those
// are dropped to keep the no-zero invariant.
func (m *Sparse[T]) Scale(c T) *Sparse[T] {
	out := newEmpty(m.r, m.rows, m.cols, m.align)
	for major, list := range m.table {
		var scaled []cell[T]
		for _, x := range list {
			if v := m.r.Mul(c, x.val); !ring.IsZero(m.r, v) {
				scaled = append(scaled, cell[T]{idx: x.idx, val: v})
			}
		}
		out.table[major] = scaled
	}

	return out
}

// Transposed returns mᵀ. The table is reinterpreted along the other axis, so
// the cost is a single copy.
// Complexity: O(nnz).
func (m *Sparse[T]) Transposed() *Sparse[T] {
	out := m.Clone()
	out.rows, out.cols = m.cols, m.rows
	if m.align == RowAligned {
		out.align = ColAligned
	} else {
		out.align = RowAligned
	}

	return out
}

// Submatrix returns the block of rows [rowLo, rowHi) and columns [colLo, colHi).
// Empty ranges are legal and yield 0-sized matrices.
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ lo ≤ hi ≤ bound on both axes.
//
// Complexity: O(nnz).
func (m *Sparse[T]) Submatrix(rowLo, rowHi, colLo, colHi int) (*Sparse[T], error) {
	if rowLo < 0 || rowLo > rowHi || rowHi > m.rows || colLo < 0 || colLo > colHi || colHi > m.cols {
		return nil, matrixErrorf(opSubmatrix,
			fmt.Errorf("rows [%d,%d) cols [%d,%d) of %d×%d: %w", rowLo, rowHi, colLo, colHi, m.rows, m.cols, ErrOutOfRange))
	}
	out := newEmpty(m.r, rowHi-rowLo, colHi-colLo, RowAligned)
	rows := m.rowView()
	for i := rowLo; i < rowHi; i++ {
		var list []cell[T]
		for _, c := range rows[i] {
			if c.idx >= colLo && c.idx < colHi {
				list = append(list, cell[T]{idx: c.idx - colLo, val: c.val})
			}
		}
		out.table[i-rowLo] = list
	}

	return out, nil
}

// SubmatrixFunc keeps the rows and columns whose indices satisfy the
// predicates, preserving their relative order. A nil predicate keeps all.
// Complexity: O(rows + cols + nnz).
func (m *Sparse[T]) SubmatrixFunc(rowCond, colCond func(int) bool) *Sparse[T] {
	rowMap := keepMap(m.rows, rowCond)
	colMap := keepMap(m.cols, colCond)
	nr, nc := 0, 0
	for _, k := range rowMap {
		if k >= 0 {
			nr++
		}
	}
	for _, k := range colMap {
		if k >= 0 {
			nc++
		}
	}
	out := newEmpty(m.r, nr, nc, RowAligned)
	for i, list := range m.rowView() {
		ni := rowMap[i]
		if ni < 0 {
			continue
		}
		var kept []cell[T]
		for _, c := range list {
			if nj := colMap[c.idx]; nj >= 0 {
				kept = append(kept, cell[T]{idx: nj, val: c.val})
			}
		}
		out.table[ni] = kept
	}

	return out
}

// keepMap maps old indices to new ones (−1 for dropped indices).
func keepMap(n int, cond func(int) bool) []int {
	out := make([]int, n)
	next := 0
	for k := 0; k < n; k++ {
		if cond == nil || cond(k) {
			out[k] = next
			next++
		} else {
			out[k] = -1
		}
	}

	return out
}

// ConcatColumns returns [a | b], the columns of a followed by those of b.
// Returns ErrDimensionMismatch when row counts differ.
// Complexity: O(nnz(a) + nnz(b)).
func ConcatColumns[T any](a, b *Sparse[T]) (*Sparse[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opConcat, err)
	}
	if a.rows != b.rows {
		return nil, matrixErrorf(opConcat, ErrDimensionMismatch)
	}
	out := newEmpty(a.r, a.rows, a.cols+b.cols, ColAligned)
	copy(out.table, a.colView())
	for j, list := range b.colView() {
		out.table[a.cols+j] = list
	}

	return out.Clone(), nil
}
