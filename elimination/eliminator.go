// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
)

var log = logging.Logger("elimination")

// Step is one entry of the trace log kept under WithTrace().
type Step[T any] struct {
	Seq                int          // 1-based position in the log
	PivotRow, PivotCol int          // pivot being processed when Op was applied
	Op                 Operation[T] // the elementary operation, in the caller's orientation
}

// Eliminate reduces m to the requested normal form and records the
// elementary operations that get it there.
//
// Implementation:
//   - Stage 1: validate input, resolve the Euclidean ring, gather options.
//   - Stage 2: clone m (ColEchelon works on the transpose of the clone).
//   - Stage 3: if the working copy is zero or already in the target form,
//     record nothing; otherwise run the echelon or diagonal reduction.
//   - Stage 4: package the normal form and operation logs into a Result;
//     optionally verify Left·m·Right == Matrix.
//
// Behavior highlights:
//   - m is never mutated; each call owns its working copy, so independent
//     calls may run concurrently on shared inputs.
//   - Transformation matrices are built lazily from the logs.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrUnknownForm, ErrNotEuclidean on bad input.
//   - ErrStepLimit under WithMaxSteps, ErrVerificationFailed under WithVerify.
//   - ring.ErrDivisionByZero only if a ring violates its own contract.
//
// Complexity: polynomial in rows·cols; coefficient growth is bounded only by
// the ring's degree measure.
func Eliminate[T any](m *matrix.Sparse[T], form Form, opts ...Option) (*Result[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, eliminationErrorf(opEliminate, err)
	}
	if !form.valid() {
		return nil, eliminationErrorf(opEliminate, fmt.Errorf("%d: %w", int(form), ErrUnknownForm))
	}
	r, ok := m.Ring().(ring.Euclidean[T])
	if !ok {
		return nil, eliminationErrorf(opEliminate, fmt.Errorf("%s: %w", m.Ring().Symbol(), ErrNotEuclidean))
	}
	o := gatherOptions(opts...)

	e := &engine[T]{r: r, opts: o, transposed: form == ColEchelon}
	if e.transposed {
		e.m = m.Transposed() // Transposed returns an owned copy
	} else {
		e.m = m.Clone()
	}

	if !e.m.IsZero() && !inForm(r, e.m, form) {
		var err error
		switch form {
		case RowEchelon, ColEchelon:
			err = e.rowEchelon()
		case Diagonal:
			err = e.diagonalize(false)
		case Smith:
			err = e.diagonalize(true)
		}
		if err != nil {
			return nil, eliminationErrorf(opEliminate, err)
		}
	}

	res := e.result(form)
	if o.verify {
		if err := res.verify(m); err != nil {
			return nil, eliminationErrorf(opEliminate, err)
		}
	}
	log.Debugw("eliminated",
		"form", form.String(),
		"rows", m.Rows(),
		"cols", m.Cols(),
		"rank", res.rank,
		"ops", e.count)

	return res, nil
}

// inForm dispatches the "already reduced" pre-check. ColEchelon is checked
// as RowEchelon because the engine works on the transpose.
func inForm[T any](r ring.Euclidean[T], m *matrix.Sparse[T], form Form) bool {
	switch form {
	case RowEchelon, ColEchelon:
		return isRowEchelon(r, m)
	case Diagonal:
		return isDiagonalForm(r, m, false)
	default:
		return isDiagonalForm(r, m, true)
	}
}

// engine holds the mutable state of one elimination call.
type engine[T any] struct {
	r      ring.Euclidean[T]
	m      *matrix.Sparse[T] // owned working copy
	opts   Options
	rowOps []Operation[T]
	colOps []Operation[T]
	steps  []Step[T]
	count  int
	pr, pc int // pivot under processing, for the trace

	transposed bool // working copy is the transpose of the input (ColEchelon)
}

// apply performs op on the working copy and records it.
func (e *engine[T]) apply(op Operation[T]) error {
	if e.opts.maxSteps > 0 && e.count >= e.opts.maxSteps {
		return fmt.Errorf("%d operations: %w", e.count, ErrStepLimit)
	}
	if err := op.Apply(e.m); err != nil {
		return err
	}
	e.count++
	if op.Kind.IsRow() {
		e.rowOps = append(e.rowOps, op)
	} else {
		e.colOps = append(e.colOps, op)
	}
	if e.opts.trace {
		s := Step[T]{Seq: e.count, PivotRow: e.pr, PivotCol: e.pc, Op: op}
		if e.transposed {
			s.PivotRow, s.PivotCol, s.Op = e.pc, e.pr, op.Transposed()
		}
		e.steps = append(e.steps, s)
		log.Debugw("step", "seq", s.Seq, "pivot", [2]int{s.PivotRow, s.PivotCol}, "op", s.Op.String())
	}

	return nil
}

// at reads the working copy; indices come from the engine's own loops.
func (e *engine[T]) at(i, j int) T {
	v, _ := e.m.At(i, j) // in range by construction

	return v
}

// reduceBy applies "line[target] -= q·line[pivot]" with q = ⌊v / piv⌋.
// row selects AddRow (true) or AddCol (false).
func (e *engine[T]) reduceBy(row bool, pivot, target int, v, piv T) error {
	q, _, err := e.r.EucDiv(v, piv)
	if err != nil {
		return err
	}
	if ring.IsZero[T](e.r, q) {
		return nil // remainder is v itself; handled by the re-pivot step
	}
	kind := AddCol
	if row {
		kind = AddRow
	}

	return e.apply(Operation[T]{Kind: kind, From: pivot, To: target, Factor: e.r.Neg(q)})
}

// normalizeRow multiplies row i by the normalizing unit of v when it is not One.
func (e *engine[T]) normalizeRow(i int, v T) error {
	u := e.r.NormalizingUnit(v)
	if ring.IsOne[T](e.r, u) {
		return nil
	}

	return e.apply(Operation[T]{Kind: MulRow, From: i, To: i, Factor: u})
}

// candidate is a possible pivot with its tie-break keys.
type candidate[T any] struct {
	row, col int
	val      T
	deg      int
	weight   int // non-zeros in the candidate's row (within the active block)
}

// less orders candidates: smaller degree, lighter row, lower row, lower column.
func (c candidate[T]) less(o candidate[T]) bool {
	if c.deg != o.deg {
		return c.deg < o.deg
	}
	if c.weight != o.weight {
		return c.weight < o.weight
	}
	if c.row != o.row {
		return c.row < o.row
	}

	return c.col < o.col
}

// pick returns the minimal candidate; cands must be non-empty.
func pick[T any](cands []candidate[T]) candidate[T] {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.less(best) {
			best = c
		}
	}

	return best
}

// rowWeights counts, per row, the entries in columns ≥ colLo.
func (e *engine[T]) rowWeights(colLo int) []int {
	w := make([]int, e.m.Rows())
	e.m.Range(func(i, j int, _ T) bool {
		if j >= colLo {
			w[i]++
		}
		return true
	})

	return w
}

// candidates collects entries satisfying keep, with tie-break keys.
func (e *engine[T]) candidates(colLo int, entries []matrix.Entry[T], keep func(matrix.Entry[T]) bool) []candidate[T] {
	var out []candidate[T]
	var w []int
	for _, en := range entries {
		if !keep(en) {
			continue
		}
		if w == nil {
			w = e.rowWeights(colLo)
		}
		out = append(out, candidate[T]{row: en.Row, col: en.Col, val: en.Value, deg: e.r.Degree(en.Value), weight: w[en.Row]})
	}

	return out
}

// result packages the finished state. ColEchelon results are transposed
// back: the normal form and the operation kinds.
func (e *engine[T]) result(form Form) *Result[T] {
	normal := e.m
	rowOps, colOps := e.rowOps, e.colOps
	if e.transposed {
		normal = e.m.Transposed()
		colOps = make([]Operation[T], len(e.rowOps))
		for k, op := range e.rowOps {
			colOps[k] = op.Transposed()
		}
		rowOps = nil
	}

	return newResult(e.r, form, normal, rowOps, colOps, e.steps)
}
