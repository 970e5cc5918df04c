// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
)

// rowEchelon reduces the working copy to row echelon form by row operations.
//
// Implementation:
//   - Stage 1: walk columns left to right with a "top" row cursor.
//   - Stage 2: among entries of the column at rows ≥ top, pick the minimal
//     candidate and reduce every other one by Euclidean division. Remainders
//     have strictly smaller degree, so repeating until one entry survives
//     terminates.
//   - Stage 3: normalize the survivor, swap it to the top row, advance.
//
// Complexity: O(cols · rounds · nnz) where rounds is bounded by the degree
// of the first pivot in each column.
func (e *engine[T]) rowEchelon() error {
	rows, cols := e.m.Rows(), e.m.Cols()
	top := 0
	for col := 0; col < cols && top < rows; col++ {
		for {
			entries, _ := e.m.ColEntries(col) // col < cols
			cands := e.candidates(col, entries, func(en matrix.Entry[T]) bool { return en.Row >= top })
			if len(cands) == 0 {
				break // nothing at or below top: no pivot in this column
			}
			p := pick(cands)
			e.pr, e.pc = p.row, col
			if len(cands) == 1 {
				if err := e.normalizeRow(p.row, p.val); err != nil {
					return err
				}
				if p.row != top {
					if err := e.apply(Operation[T]{Kind: SwapRows, From: p.row, To: top}); err != nil {
						return err
					}
				}
				top++
				break
			}

			before := e.count
			for _, c := range cands {
				if c.row == p.row {
					continue
				}
				if err := e.reduceBy(true, p.row, c.row, c.val, p.val); err != nil {
					return err
				}
			}
			if e.count == before {
				// every quotient was zero: Degree is not a Euclidean function
				return fmt.Errorf("column %d: no reduction below degree %d: %w", col, p.deg, ErrNotEuclidean)
			}
		}
	}

	return nil
}

// isRowEchelon reports whether m is already in the form rowEchelon produces:
// non-zero rows first, strictly increasing leading columns, normalized
// leading entries.
// Complexity: O(rows + nnz).
func isRowEchelon[T any](r ring.Euclidean[T], m *matrix.Sparse[T]) bool {
	lead := make([]int, m.Rows())
	vals := make([]T, m.Rows())
	for i := range lead {
		lead[i] = -1
	}
	m.Range(func(i, j int, v T) bool {
		if lead[i] < 0 || j < lead[i] {
			lead[i], vals[i] = j, v
		}
		return true
	})

	prev := -1
	seenZero := false
	for i, j := range lead {
		if j < 0 {
			seenZero = true
			continue
		}
		if seenZero || j <= prev || !isNormalized(r, vals[i]) {
			return false
		}
		prev = j
	}

	return true
}

// isNormalized reports whether v is its own canonical associate.
func isNormalized[T any](r ring.Euclidean[T], v T) bool {
	return ring.IsOne[T](r, r.NormalizingUnit(v))
}
