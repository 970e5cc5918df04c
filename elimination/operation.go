// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
)

// OpKind enumerates the elementary operations recorded by the engine.
type OpKind int

const (
	// AddRow: row[To] += Factor · row[From].
	AddRow OpKind = iota
	// MulRow: row[From] *= Factor (a unit).
	MulRow
	// SwapRows: exchange rows From and To.
	SwapRows
	// AddCol: col[To] += Factor · col[From].
	AddCol
	// MulCol: col[From] *= Factor (a unit).
	MulCol
	// SwapCols: exchange columns From and To.
	SwapCols
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case AddRow:
		return "AddRow"
	case MulRow:
		return "MulRow"
	case SwapRows:
		return "SwapRows"
	case AddCol:
		return "AddCol"
	case MulCol:
		return "MulCol"
	case SwapCols:
		return "SwapCols"
	default:
		return "OpKind(?)"
	}
}

// IsRow reports whether the kind acts on rows (left multiplication).
func (k OpKind) IsRow() bool { return k == AddRow || k == MulRow || k == SwapRows }

// Operation is one recorded elementary operation. For MulRow/MulCol only
// From is meaningful; for swaps Factor is unused.
type Operation[T any] struct {
	Kind   OpKind
	From   int
	To     int
	Factor T
}

// Apply performs the operation on m in place.
// Errors are the matrix sentinels (ErrOutOfRange, ErrInvalidScalar).
func (op Operation[T]) Apply(m *matrix.Sparse[T]) error {
	var err error
	switch op.Kind {
	case AddRow:
		err = m.AddRow(op.From, op.To, op.Factor)
	case MulRow:
		err = m.MultiplyRow(op.From, op.Factor)
	case SwapRows:
		err = m.SwapRows(op.From, op.To)
	case AddCol:
		err = m.AddCol(op.From, op.To, op.Factor)
	case MulCol:
		err = m.MultiplyCol(op.From, op.Factor)
	case SwapCols:
		err = m.SwapCols(op.From, op.To)
	default:
		err = fmt.Errorf("kind %d: %w", op.Kind, ErrUnknownOperation)
	}
	if err != nil {
		return eliminationErrorf(opApply, err)
	}

	return nil
}

// Inverse returns the operation undoing op. Scaling by a non-unit has no
// inverse; the engine never records one, so the factor is returned unchanged
// in that case.
func (op Operation[T]) Inverse(r ring.Ring[T]) Operation[T] {
	switch op.Kind {
	case AddRow, AddCol:
		return Operation[T]{Kind: op.Kind, From: op.From, To: op.To, Factor: r.Neg(op.Factor)}
	case MulRow, MulCol:
		inv, ok := r.Inverse(op.Factor)
		if !ok {
			inv = op.Factor
		}
		return Operation[T]{Kind: op.Kind, From: op.From, To: op.To, Factor: inv}
	default:
		return op
	}
}

// Transposed maps a row operation to the column operation acting on the
// transpose, and vice versa.
func (op Operation[T]) Transposed() Operation[T] {
	out := op
	switch op.Kind {
	case AddRow:
		out.Kind = AddCol
	case MulRow:
		out.Kind = MulCol
	case SwapRows:
		out.Kind = SwapCols
	case AddCol:
		out.Kind = AddRow
	case MulCol:
		out.Kind = MulRow
	case SwapCols:
		out.Kind = SwapRows
	}

	return out
}

// Determinant returns the determinant of the elementary matrix of op:
// 1 for additions, the factor for scalings, −1 for swaps.
func (op Operation[T]) Determinant(r ring.Ring[T]) T {
	switch op.Kind {
	case MulRow, MulCol:
		return op.Factor
	case SwapRows, SwapCols:
		return r.Neg(r.One())
	default:
		return r.One()
	}
}

// String renders the operation for logs, e.g. "AddRow(0→2, -3)".
func (op Operation[T]) String() string {
	switch op.Kind {
	case MulRow, MulCol:
		return fmt.Sprintf("%s(%d, %v)", op.Kind, op.From, op.Factor)
	case SwapRows, SwapCols:
		return fmt.Sprintf("%s(%d, %d)", op.Kind, op.From, op.To)
	default:
		return fmt.Sprintf("%s(%d→%d, %v)", op.Kind, op.From, op.To, op.Factor)
	}
}
