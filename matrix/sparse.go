// SPDX-License-Identifier: MIT
// Package matrix: Sparse constructors, read accessors and table maintenance.
//
// Purpose:
//   - Build Sparse values from dense (row-major grid, columns) or sparse
//     (entry list) sources.
//   - Provide read-only views that never change the alignment, so finished
//     matrices can be shared between goroutines.
//
// Determinism:
//   - Entries/RowEntries/ColEntries always return ascending coordinate order,
//     independent of the current alignment.

package matrix

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/modstruct/ring"
)

// newEmpty allocates a validated, entry-less matrix.
func newEmpty[T any](r ring.Ring[T], rows, cols int, align Alignment) *Sparse[T] {
	n := rows
	if align == ColAligned {
		n = cols
	}

	return &Sparse[T]{r: r, rows: rows, cols: cols, align: align, table: make([][]cell[T], n)}
}

// checkShape validates constructor inputs.
func checkShape[T any](r ring.Ring[T], rows, cols int) error {
	if r == nil {
		return ErrNilRing
	}
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}

	return nil
}

// NewZero returns the rows×cols zero matrix over r.
// Complexity: O(rows).
func NewZero[T any](r ring.Ring[T], rows, cols int) (*Sparse[T], error) {
	if err := checkShape(r, rows, cols); err != nil {
		return nil, matrixErrorf(opNewZero, err)
	}

	return newEmpty(r, rows, cols, RowAligned), nil
}

// NewIdentity returns I_n over r.
// Complexity: O(n).
func NewIdentity[T any](r ring.Ring[T], n int) (*Sparse[T], error) {
	if err := checkShape(r, n, n); err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}

	return identity(r, n), nil
}

// identity builds I_n without validation (n ≥ 0, r non-nil).
func identity[T any](r ring.Ring[T], n int) *Sparse[T] {
	m := newEmpty(r, n, n, RowAligned)
	for i := 0; i < n; i++ {
		m.table[i] = []cell[T]{{idx: i, val: r.One()}}
	}

	return m
}

// NewFromGrid builds a matrix from a dense row-major grid of length rows*cols.
// Zero values are skipped.
//
// Errors:
//   - ErrNilRing, ErrBadShape on invalid constructor input.
//   - ErrDimensionMismatch if len(grid) != rows*cols.
//
// Complexity: O(rows·cols).
func NewFromGrid[T any](r ring.Ring[T], rows, cols int, grid []T) (*Sparse[T], error) {
	if err := checkShape(r, rows, cols); err != nil {
		return nil, matrixErrorf(opNewFromGrid, err)
	}
	if len(grid) != rows*cols {
		return nil, matrixErrorf(opNewFromGrid, ErrDimensionMismatch)
	}
	m := newEmpty(r, rows, cols, RowAligned)
	for i := 0; i < rows; i++ {
		var list []cell[T]
		for j := 0; j < cols; j++ {
			v := grid[i*cols+j]
			if !ring.IsZero(r, v) {
				list = append(list, cell[T]{idx: j, val: v})
			}
		}
		m.table[i] = list
	}

	return m, nil
}

// NewFromEntries builds a matrix from a sparse entry list.
// Entries sharing coordinates are summed; entries summing to zero vanish.
//
// Errors:
//   - ErrNilRing, ErrBadShape on invalid constructor input.
//   - ErrOutOfRange if an entry lies outside rows×cols.
//
// Complexity: O(E log E).
func NewFromEntries[T any](r ring.Ring[T], rows, cols int, entries []Entry[T]) (*Sparse[T], error) {
	if err := checkShape(r, rows, cols); err != nil {
		return nil, matrixErrorf(opNewEntries, err)
	}
	sorted := make([]Entry[T], len(entries))
	copy(sorted, entries)
	for _, e := range sorted {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, matrixErrorf(opNewEntries, fmt.Errorf("(%d,%d): %w", e.Row, e.Col, ErrOutOfRange))
		}
	}
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}

		return sorted[a].Col < sorted[b].Col
	})

	m := newEmpty(r, rows, cols, RowAligned)
	for k := 0; k < len(sorted); {
		e := sorted[k]
		sum := e.Value
		k++
		for k < len(sorted) && sorted[k].Row == e.Row && sorted[k].Col == e.Col {
			sum = r.Add(sum, sorted[k].Value) // merge duplicates
			k++
		}
		if !ring.IsZero(r, sum) {
			m.table[e.Row] = append(m.table[e.Row], cell[T]{idx: e.Col, val: sum})
		}
	}

	return m, nil
}

// NewFromColumns builds a rows×len(columns) matrix whose j-th column is columns[j].
//
// Errors:
//   - ErrDimensionMismatch if some column does not have exactly rows entries.
//
// Complexity: O(rows·cols).
func NewFromColumns[T any](r ring.Ring[T], rows int, columns [][]T) (*Sparse[T], error) {
	if err := checkShape(r, rows, len(columns)); err != nil {
		return nil, matrixErrorf(opNewColumns, err)
	}
	m := newEmpty(r, rows, len(columns), ColAligned)
	for j, col := range columns {
		if len(col) != rows {
			return nil, matrixErrorf(opNewColumns, fmt.Errorf("column %d: %w", j, ErrDimensionMismatch))
		}
		var list []cell[T]
		for i, v := range col {
			if !ring.IsZero(r, v) {
				list = append(list, cell[T]{idx: i, val: v})
			}
		}
		m.table[j] = list
	}

	return m, nil
}

// Ring returns the coefficient ring.
func (m *Sparse[T]) Ring() ring.Ring[T] { return m.r }

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Sparse[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Sparse[T]) Cols() int { return m.cols }

// Alignment reports the current table axis.
func (m *Sparse[T]) Alignment() Alignment { return m.align }

// IsSquare reports rows == cols.
func (m *Sparse[T]) IsSquare() bool { return m.rows == m.cols }

// NonZeroCount returns the number of stored entries.
// Complexity: O(rows) or O(cols) depending on alignment.
func (m *Sparse[T]) NonZeroCount() int {
	n := 0
	for _, list := range m.table {
		n += len(list)
	}

	return n
}

// IsZero reports whether no entry is stored.
func (m *Sparse[T]) IsZero() bool {
	for _, list := range m.table {
		if len(list) > 0 {
			return false
		}
	}

	return true
}

// coords maps (major, minor) back to (row, col) for the current alignment.
func (m *Sparse[T]) coords(major, minor int) (int, int) {
	if m.align == ColAligned {
		return minor, major
	}

	return major, minor
}

// keys maps (row, col) to (major, minor) for the current alignment.
func (m *Sparse[T]) keys(i, j int) (int, int) {
	if m.align == ColAligned {
		return j, i
	}

	return i, j
}

// search returns the position of idx in a sorted cell list and whether it is present.
func search[T any](list []cell[T], idx int) (int, bool) {
	pos := sort.Search(len(list), func(k int) bool { return list[k].idx >= idx })

	return pos, pos < len(list) && list[pos].idx == idx
}

// get returns the value at (i, j) without bounds checks.
// Complexity: O(log nnz(line)).
func (m *Sparse[T]) get(i, j int) T {
	major, minor := m.keys(i, j)
	list := m.table[major]
	if pos, ok := search(list, minor); ok {
		return list[pos].val
	}

	return m.r.Zero()
}

// put stores v at (i, j) without bounds checks, removing the slot when v is zero.
func (m *Sparse[T]) put(i, j int, v T) {
	major, minor := m.keys(i, j)
	list := m.table[major]
	pos, ok := search(list, minor)
	zero := ring.IsZero(m.r, v)
	switch {
	case ok && zero:
		m.table[major] = append(list[:pos], list[pos+1:]...)
	case ok:
		list[pos].val = v
	case !zero:
		list = append(list, cell[T]{})
		copy(list[pos+1:], list[pos:])
		list[pos] = cell[T]{idx: minor, val: v}
		m.table[major] = list
	}
}

// inRange reports whether (i, j) is a valid coordinate.
func (m *Sparse[T]) inRange(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At returns the value at (i, j), the ring's zero when nothing is stored.
// Returns ErrOutOfRange for invalid coordinates.
// Complexity: O(log nnz(line)).
func (m *Sparse[T]) At(i, j int) (T, error) {
	if !m.inRange(i, j) {
		var zero T
		return zero, matrixErrorf(opAt, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}

	return m.get(i, j), nil
}

// Set stores v at (i, j); storing zero removes the entry.
// Returns ErrOutOfRange for invalid coordinates.
// Complexity: O(nnz(line)) due to slice insertion.
func (m *Sparse[T]) Set(i, j int, v T) error {
	if !m.inRange(i, j) {
		return matrixErrorf(opSet, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	m.put(i, j, v)

	return nil
}

// Range calls fn for every stored entry in table order (row-major when
// row-aligned, column-major otherwise) until fn returns false.
// Complexity: O(nnz).
func (m *Sparse[T]) Range(fn func(i, j int, v T) bool) {
	for major, list := range m.table {
		for _, c := range list {
			i, j := m.coords(major, c.idx)
			if !fn(i, j, c.val) {
				return
			}
		}
	}
}

// rowView returns one sorted (col, value) list per row. When the matrix is
// column-aligned a fresh transposed table is built; the receiver is untouched.
func (m *Sparse[T]) rowView() [][]cell[T] {
	if m.align == RowAligned {
		return m.table
	}

	return transposeTable(m.table, m.rows)
}

// colView is rowView for columns.
func (m *Sparse[T]) colView() [][]cell[T] {
	if m.align == ColAligned {
		return m.table
	}

	return transposeTable(m.table, m.cols)
}

// transposeTable rebuilds a table along the other axis. Iterating the source
// majors in ascending order keeps every produced list sorted.
// Complexity: O(n + nnz).
func transposeTable[T any](src [][]cell[T], n int) [][]cell[T] {
	dst := make([][]cell[T], n)
	for major, list := range src {
		for _, c := range list {
			dst[c.idx] = append(dst[c.idx], cell[T]{idx: major, val: c.val})
		}
	}

	return dst
}

// realign switches the table axis in place. Mutating operations only.
func (m *Sparse[T]) realign(a Alignment) {
	if m.align == a {
		return
	}
	n := m.rows
	if a == ColAligned {
		n = m.cols
	}
	m.table = transposeTable(m.table, n)
	m.align = a
}

// Entries returns all stored entries in row-major order.
// Complexity: O(nnz) (+ O(cols + nnz) when column-aligned).
func (m *Sparse[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, m.NonZeroCount())
	for i, list := range m.rowView() {
		for _, c := range list {
			out = append(out, Entry[T]{Row: i, Col: c.idx, Value: c.val})
		}
	}

	return out
}

// RowEntries returns the non-zero entries of row i, ascending by column.
// Complexity: O(nnz(row)) row-aligned, O(cols·log) otherwise.
func (m *Sparse[T]) RowEntries(i int) ([]Entry[T], error) {
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf(opRowEntries, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}

	return m.rowEntries(i), nil
}

func (m *Sparse[T]) rowEntries(i int) []Entry[T] {
	var out []Entry[T]
	if m.align == RowAligned {
		for _, c := range m.table[i] {
			out = append(out, Entry[T]{Row: i, Col: c.idx, Value: c.val})
		}

		return out
	}
	for j, list := range m.table {
		if pos, ok := search(list, i); ok {
			out = append(out, Entry[T]{Row: i, Col: j, Value: list[pos].val})
		}
	}

	return out
}

// ColEntries returns the non-zero entries of column j, ascending by row.
// Complexity: O(nnz(col)) column-aligned, O(rows·log) otherwise.
func (m *Sparse[T]) ColEntries(j int) ([]Entry[T], error) {
	if j < 0 || j >= m.cols {
		return nil, matrixErrorf(opColEntries, fmt.Errorf("col %d: %w", j, ErrOutOfRange))
	}

	return m.colEntries(j), nil
}

func (m *Sparse[T]) colEntries(j int) []Entry[T] {
	var out []Entry[T]
	if m.align == ColAligned {
		for _, c := range m.table[j] {
			out = append(out, Entry[T]{Row: c.idx, Col: j, Value: c.val})
		}

		return out
	}
	for i, list := range m.table {
		if pos, ok := search(list, j); ok {
			out = append(out, Entry[T]{Row: i, Col: j, Value: list[pos].val})
		}
	}

	return out
}

// Row returns row i as a dense slice of length Cols().
func (m *Sparse[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf(opRow, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}
	out := m.zeros(m.cols)
	for _, e := range m.rowEntries(i) {
		out[e.Col] = e.Value
	}

	return out, nil
}

// Column returns column j as a dense slice of length Rows().
func (m *Sparse[T]) Column(j int) ([]T, error) {
	if j < 0 || j >= m.cols {
		return nil, matrixErrorf(opColumn, fmt.Errorf("col %d: %w", j, ErrOutOfRange))
	}
	out := m.zeros(m.rows)
	for _, e := range m.colEntries(j) {
		out[e.Row] = e.Value
	}

	return out, nil
}

// Columns returns every column as a dense slice.
// Complexity: O(rows·cols).
func (m *Sparse[T]) Columns() [][]T {
	out := make([][]T, m.cols)
	for j := range out {
		out[j] = m.zeros(m.rows)
	}
	m.Range(func(i, j int, v T) bool {
		out[j][i] = v
		return true
	})

	return out
}

// zeros returns n fresh zero values.
func (m *Sparse[T]) zeros(n int) []T {
	out := make([]T, n)
	for k := range out {
		out[k] = m.r.Zero()
	}

	return out
}

// Grid returns the matrix as a dense row-major slice of length rows*cols.
// Complexity: O(rows·cols).
func (m *Sparse[T]) Grid() []T {
	out := m.zeros(m.rows * m.cols)
	m.Range(func(i, j int, v T) bool {
		out[i*m.cols+j] = v
		return true
	})

	return out
}

// Diagonal returns the entries (k,k) for k < min(rows, cols), zeros included.
func (m *Sparse[T]) Diagonal() []T {
	n := min(m.rows, m.cols)
	out := make([]T, n)
	for k := 0; k < n; k++ {
		out[k] = m.get(k, k)
	}

	return out
}

// IsDiagonal reports whether every stored entry lies on the main diagonal.
func (m *Sparse[T]) IsDiagonal() bool {
	diag := true
	m.Range(func(i, j int, _ T) bool {
		diag = i == j
		return diag
	})

	return diag
}

// IsIdentity reports whether m is square, diagonal and every diagonal entry is One.
func (m *Sparse[T]) IsIdentity() bool {
	if !m.IsSquare() || m.NonZeroCount() != m.rows || !m.IsDiagonal() {
		return false
	}
	one := m.r.One()
	ok := true
	m.Range(func(_, _ int, v T) bool {
		ok = m.r.Equal(v, one)
		return ok
	})

	return ok
}

// Equal reports whether o has the same shape and the same entries as m.
// The coefficient rings are assumed to agree.
// Complexity: O(nnz).
func (m *Sparse[T]) Equal(o *Sparse[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	a, b := m.Entries(), o.Entries()
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k].Row != b[k].Row || a[k].Col != b[k].Col || !m.r.Equal(a[k].Value, b[k].Value) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the table. Values are shared, which is safe
// because rings never mutate their operands.
// Complexity: O(nnz).
func (m *Sparse[T]) Clone() *Sparse[T] {
	out := &Sparse[T]{r: m.r, rows: m.rows, cols: m.cols, align: m.align, table: make([][]cell[T], len(m.table))}
	for k, list := range m.table {
		if len(list) > 0 {
			out.table[k] = append([]cell[T](nil), list...)
		}
	}

	return out
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(rows·cols) for string construction.
func (m *Sparse[T]) String() string {
	if m.rows == 0 || m.cols == 0 {
		return fmt.Sprintf("[%d×%d]", m.rows, m.cols)
	}
	grid := m.Grid()
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprint(&b, grid[i*m.cols+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
