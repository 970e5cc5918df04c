// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the storage-facing types (entries, alignment, the
// Sparse container itself). Errors live in errors.go, constructors and reads
// in sparse.go, algebra in methods.go, elementary operations in elementary.go.
package matrix

import "github.com/katalvlaran/modstruct/ring"

// Alignment selects which axis indexes the sparse table.
// Row-aligned tables make row operations cheap; column-aligned tables make
// column operations cheap. Mutating operations switch alignment on demand.
type Alignment int

const (
	// RowAligned stores one sorted list of (col, value) cells per row.
	RowAligned Alignment = iota

	// ColAligned stores one sorted list of (row, value) cells per column.
	ColAligned
)

// String implements fmt.Stringer.
func (a Alignment) String() string {
	if a == ColAligned {
		return "col"
	}

	return "row"
}

// Entry is one non-zero coefficient with its coordinates.
type Entry[T any] struct {
	Row   int // row index, 0-based
	Col   int // column index, 0-based
	Value T   // never the ring's zero when produced by this package
}

// cell is a table slot: the minor index (column for row-aligned tables, row
// for column-aligned ones) and the stored value.
type cell[T any] struct {
	idx int
	val T
}

// Sparse is a rows×cols matrix over a ring, storing non-zero entries only.
//
// Invariants:
//   - rows, cols never change after construction.
//   - len(table) == rows (RowAligned) or cols (ColAligned).
//   - every table[k] is sorted by idx with no duplicates.
//   - no stored value equals the ring's zero.
//
// Ownership:
//   - Read-only methods never touch the alignment, so a Sparse that is no
//     longer mutated may be shared by concurrent readers.
//   - Set and the elementary operations mutate in place and may rebuild the
//     table; they must not run concurrently with anything else on the same
//     value. Clone first when the input belongs to someone else.
type Sparse[T any] struct {
	r     ring.Ring[T] // coefficient ring
	rows  int          // number of rows
	cols  int          // number of columns
	align Alignment    // axis of table
	table [][]cell[T]  // major index -> sorted minor cells
}
