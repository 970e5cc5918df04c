// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
)

// diagonalize reduces the working copy to Diagonal (smith=false) or Smith
// (smith=true) form using row and column operations.
//
// Implementation:
//   - Stage 1: for each pivot position t, choose the minimal candidate in the
//     block [t:, t:] and move it to (t,t). An empty block ends the loop.
//   - Stage 2: clear the cross at (t,t) with clearCross.
//   - Stage 3: normalize the pivot and advance t.
//
// The worklist is the pivot cursor t; there is no recursion.
// Complexity: O(min(rows,cols) · rounds · nnz).
func (e *engine[T]) diagonalize(smith bool) error {
	n := min(e.m.Rows(), e.m.Cols())
	for t := 0; t < n; t++ {
		block := e.candidates(t, e.m.Entries(), func(en matrix.Entry[T]) bool {
			return en.Row >= t && en.Col >= t
		})
		if len(block) == 0 {
			break
		}
		p := pick(block)
		e.pr, e.pc = t, t
		if err := e.moveTo(p.row, p.col, t); err != nil {
			return err
		}
		if err := e.clearCross(t, smith); err != nil {
			return err
		}
		if err := e.normalizeRow(t, e.at(t, t)); err != nil {
			return err
		}
	}

	return nil
}

// moveTo swaps the entry at (i, j) into (t, t).
func (e *engine[T]) moveTo(i, j, t int) error {
	if i != t {
		if err := e.apply(Operation[T]{Kind: SwapRows, From: i, To: t}); err != nil {
			return err
		}
	}
	if j != t {
		if err := e.apply(Operation[T]{Kind: SwapCols, From: j, To: t}); err != nil {
			return err
		}
	}

	return nil
}

// clearCross empties row t and column t outside (t,t).
//
// Implementation (loop until stable):
//   - Stage 1: reduce column t below the pivot with row operations; if a
//     remainder survives, swap the smallest one into the pivot row, restart.
//   - Stage 2: reduce row t right of the pivot with column operations; same
//     re-pivot rule with column swaps.
//   - Stage 3 (Smith only): if some entry of the block [t+1:, t+1:] is not a
//     multiple of the pivot, add its row into row t and restart. Stage 2
//     then leaves a remainder of smaller degree in row t.
//
// Every restart strictly lowers the pivot degree, which bounds the loop.
func (e *engine[T]) clearCross(t int, smith bool) error {
	for {
		piv := e.at(t, t)

		// Stage 1: column t.
		entries, _ := e.m.ColEntries(t)
		for _, en := range entries {
			if en.Row <= t {
				continue
			}
			if err := e.reduceBy(true, t, en.Row, en.Value, piv); err != nil {
				return err
			}
		}
		entries, _ = e.m.ColEntries(t)
		rest := e.candidates(t, entries, func(en matrix.Entry[T]) bool { return en.Row > t })
		if len(rest) > 0 {
			c := pick(rest)
			if c.deg >= e.r.Degree(piv) {
				return fmt.Errorf("pivot (%d,%d): column remainder does not shrink: %w", t, t, ErrNotEuclidean)
			}
			if err := e.apply(Operation[T]{Kind: SwapRows, From: c.row, To: t}); err != nil {
				return err
			}
			continue
		}

		// Stage 2: row t.
		entries, _ = e.m.RowEntries(t)
		for _, en := range entries {
			if en.Col <= t {
				continue
			}
			if err := e.reduceBy(false, t, en.Col, en.Value, piv); err != nil {
				return err
			}
		}
		entries, _ = e.m.RowEntries(t)
		rest = e.candidates(t, entries, func(en matrix.Entry[T]) bool { return en.Col > t })
		if len(rest) > 0 {
			c := pick(rest)
			if c.deg >= e.r.Degree(piv) {
				return fmt.Errorf("pivot (%d,%d): row remainder does not shrink: %w", t, t, ErrNotEuclidean)
			}
			if err := e.apply(Operation[T]{Kind: SwapCols, From: c.col, To: t}); err != nil {
				return err
			}
			continue
		}

		// Stage 3: divisibility fix-up.
		if smith {
			if i, ok := e.nonDivisibleRow(t, piv); ok {
				if err := e.apply(Operation[T]{Kind: AddRow, From: i, To: t, Factor: e.r.One()}); err != nil {
					return err
				}
				continue
			}
		}

		return nil
	}
}

// nonDivisibleRow returns the smallest row index i > t holding an entry
// (i, j), j > t, that piv does not divide.
func (e *engine[T]) nonDivisibleRow(t int, piv T) (int, bool) {
	best := -1
	e.m.Range(func(i, j int, v T) bool {
		if i > t && j > t && (best < 0 || i < best) && !ring.Divides(e.r, piv, v) {
			best = i
		}
		return true
	})

	return best, best >= 0
}

// isDiagonalForm reports whether m is already in the form diagonalize
// produces: diagonal, non-zero pivots contiguous from (0,0), normalized,
// and (smith) each pivot dividing the next.
// Complexity: O(nnz + min(rows, cols)).
func isDiagonalForm[T any](r ring.Euclidean[T], m *matrix.Sparse[T], smith bool) bool {
	if !m.IsDiagonal() {
		return false
	}
	diag := m.Diagonal()
	var prev T
	havePrev := false
	seenZero := false
	for _, d := range diag {
		if ring.IsZero[T](r, d) {
			seenZero = true
			continue
		}
		if seenZero || !isNormalized(r, d) {
			return false
		}
		if smith && havePrev && !ring.Divides(r, prev, d) {
			return false
		}
		prev, havePrev = d, true
	}

	return true
}
