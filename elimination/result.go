// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
)

// Result is the outcome of one Eliminate call: the normal form D of an input
// A together with the recorded operations, so that D = Left·A·Right.
//
// A Result is immutable. Transformation matrices are materialized on first
// use (once, guarded by sync.Once) and every accessor returns a fresh copy,
// so a Result may be shared by concurrent readers.
type Result[T any] struct {
	r      ring.Euclidean[T]
	form   Form
	normal *matrix.Sparse[T]
	rowOps []Operation[T]
	colOps []Operation[T]
	steps  []Step[T]
	rank   int
	pivots []T

	leftOnce, leftInvOnce, rightOnce, rightInvOnce sync.Once
	left, leftInv, right, rightInv                 *matrix.Sparse[T]
}

// newResult computes rank and pivots eagerly; they are cheap and used by
// almost every query.
func newResult[T any](r ring.Euclidean[T], form Form, normal *matrix.Sparse[T], rowOps, colOps []Operation[T], steps []Step[T]) *Result[T] {
	res := &Result[T]{r: r, form: form, normal: normal, rowOps: rowOps, colOps: colOps, steps: steps}
	res.pivots = pivotsOf(r, normal, form)
	res.rank = len(res.pivots)

	return res
}

// pivotsOf lists the pivots of a normal form: leading entries of the
// non-zero rows (RowEchelon) or columns (ColEchelon), or the non-zero
// diagonal (Diagonal, Smith).
func pivotsOf[T any](r ring.Euclidean[T], d *matrix.Sparse[T], form Form) []T {
	var out []T
	switch form {
	case RowEchelon:
		for i := 0; i < d.Rows(); i++ {
			if es, _ := d.RowEntries(i); len(es) > 0 {
				out = append(out, es[0].Value)
			}
		}
	case ColEchelon:
		for j := 0; j < d.Cols(); j++ {
			if es, _ := d.ColEntries(j); len(es) > 0 {
				out = append(out, es[0].Value)
			}
		}
	default:
		for _, v := range d.Diagonal() {
			if !ring.IsZero[T](r, v) {
				out = append(out, v)
			}
		}
	}

	return out
}

// Form returns the computed normal form kind.
func (res *Result[T]) Form() Form { return res.form }

// Matrix returns the normal form D.
func (res *Result[T]) Matrix() *matrix.Sparse[T] { return res.normal.Clone() }

// Rows is the row count of the input (and of D).
func (res *Result[T]) Rows() int { return res.normal.Rows() }

// Cols is the column count of the input (and of D).
func (res *Result[T]) Cols() int { return res.normal.Cols() }

// Rank returns the number of pivots.
func (res *Result[T]) Rank() int { return res.rank }

// Nullity returns Cols − Rank.
func (res *Result[T]) Nullity() int { return res.normal.Cols() - res.rank }

// Diagonal returns the pivots in order. For Diagonal and Smith forms these
// are the non-zero diagonal entries d₁ … d_rank (for Smith, d₁ | d₂ | …);
// for echelon forms they are the leading entries.
func (res *Result[T]) Diagonal() []T {
	out := make([]T, len(res.pivots))
	copy(out, res.pivots)

	return out
}

// RowOperations returns the recorded row operations in application order.
func (res *Result[T]) RowOperations() []Operation[T] {
	return append([]Operation[T](nil), res.rowOps...)
}

// ColOperations returns the recorded column operations in application order.
func (res *Result[T]) ColOperations() []Operation[T] {
	return append([]Operation[T](nil), res.colOps...)
}

// Steps returns the trace log; empty unless WithTrace() was given.
func (res *Result[T]) Steps() []Step[T] {
	return append([]Step[T](nil), res.steps...)
}

// replay applies ops to I_n. Row operations replayed on I build E_k…E_1;
// column operations build F_1…F_m.
func (res *Result[T]) replay(n int, ops []Operation[T], inverse bool) *matrix.Sparse[T] {
	id, _ := matrix.NewIdentity[T](res.r, n) // n ≥ 0, ring non-nil
	if !inverse {
		for _, op := range ops {
			_ = op.Apply(id) // indices were validated when recorded
		}

		return id
	}
	for k := len(ops) - 1; k >= 0; k-- {
		_ = ops[k].Inverse(res.r).Apply(id)
	}

	return id
}

// Left returns P with D = P·A·Right (rows×rows).
func (res *Result[T]) Left() *matrix.Sparse[T] {
	res.leftOnce.Do(func() { res.left = res.replay(res.Rows(), res.rowOps, false) })

	return res.left.Clone()
}

// LeftInverse returns P⁻¹, built from the inverted operations in reverse order.
func (res *Result[T]) LeftInverse() *matrix.Sparse[T] {
	res.leftInvOnce.Do(func() { res.leftInv = res.replay(res.Rows(), res.rowOps, true) })

	return res.leftInv.Clone()
}

// Right returns Q with D = Left·A·Q (cols×cols).
func (res *Result[T]) Right() *matrix.Sparse[T] {
	res.rightOnce.Do(func() { res.right = res.replay(res.Cols(), res.colOps, false) })

	return res.right.Clone()
}

// RightInverse returns Q⁻¹.
func (res *Result[T]) RightInverse() *matrix.Sparse[T] {
	res.rightInvOnce.Do(func() { res.rightInv = res.replay(res.Cols(), res.colOps, true) })

	return res.rightInv.Clone()
}

// Determinant returns det A for square inputs.
//
// Implementation:
//   - D = P·A·Q, so det A = det D · (det P)⁻¹ · (det Q)⁻¹.
//   - det D is the product of the pivots when rank = n (D is triangular),
//     zero otherwise; det P and det Q are products of unit determinants of
//     the recorded operations.
//
// Errors: matrix.ErrDimensionMismatch for non-square inputs.
func (res *Result[T]) Determinant() (T, error) {
	if !res.normal.IsSquare() {
		return res.r.Zero(), eliminationErrorf(opDeterminant, matrix.ErrDimensionMismatch)
	}
	if res.rank < res.Rows() {
		return res.r.Zero(), nil
	}
	det := res.r.One()
	for _, p := range res.pivots {
		det = res.r.Mul(det, p)
	}
	for _, ops := range [][]Operation[T]{res.rowOps, res.colOps} {
		for _, op := range ops {
			inv, ok := res.r.Inverse(op.Determinant(res.r))
			if !ok {
				return res.r.Zero(), eliminationErrorf(opDeterminant, ErrNotInvertible)
			}
			det = res.r.Mul(det, inv)
		}
	}

	return det, nil
}

// Inverse returns A⁻¹ = Q·D⁻¹·P for Diagonal and Smith results.
//
// Errors:
//   - matrix.ErrDimensionMismatch for non-square inputs.
//   - ErrUnsupportedForm for echelon results.
//   - ErrNotInvertible if rank < n or some pivot is not a unit.
func (res *Result[T]) Inverse() (*matrix.Sparse[T], error) {
	if !res.normal.IsSquare() {
		return nil, eliminationErrorf(opInverse, matrix.ErrDimensionMismatch)
	}
	if !res.form.diagonal() {
		return nil, eliminationErrorf(opInverse, fmt.Errorf("%s: %w", res.form, ErrUnsupportedForm))
	}
	n := res.Rows()
	if res.rank < n {
		return nil, eliminationErrorf(opInverse, ErrNotInvertible)
	}
	dinv, _ := matrix.NewZero[T](res.r, n, n)
	for k, p := range res.pivots {
		inv, ok := res.r.Inverse(p)
		if !ok {
			return nil, eliminationErrorf(opInverse, fmt.Errorf("pivot %v: %w", p, ErrNotInvertible))
		}
		_ = dinv.Set(k, k, inv)
	}

	return matrix.Product(res.Right(), dinv, res.Left())
}

// kernelSupported reports whether kernel/image queries make sense for the form.
func (res *Result[T]) kernelSupported() bool { return res.form != RowEchelon }

// KernelMatrix returns a cols×nullity matrix whose columns form a basis of
// {x : A·x = 0}: the last nullity columns of Right.
// Errors: ErrUnsupportedForm for RowEchelon results.
func (res *Result[T]) KernelMatrix() (*matrix.Sparse[T], error) {
	if !res.kernelSupported() {
		return nil, eliminationErrorf(opKernel, fmt.Errorf("%s: %w", res.form, ErrUnsupportedForm))
	}

	return res.Right().Submatrix(0, res.Cols(), res.rank, res.Cols())
}

// KernelVectors returns the kernel basis as dense column vectors.
func (res *Result[T]) KernelVectors() ([][]T, error) {
	k, err := res.KernelMatrix()
	if err != nil {
		return nil, err
	}

	return k.Columns(), nil
}

// KernelTransitionMatrix returns the nullity×cols matrix mapping a kernel
// element x to its coordinates in the KernelMatrix basis (last rows of Q⁻¹).
func (res *Result[T]) KernelTransitionMatrix() (*matrix.Sparse[T], error) {
	if !res.kernelSupported() {
		return nil, eliminationErrorf(opKernel, fmt.Errorf("%s: %w", res.form, ErrUnsupportedForm))
	}

	return res.RightInverse().Submatrix(res.rank, res.Cols(), 0, res.Cols())
}

// ImageMatrix returns a rows×rank matrix whose columns form a basis of the
// column space of A: P⁻¹·D[:, :rank].
// Errors: ErrUnsupportedForm for RowEchelon results.
func (res *Result[T]) ImageMatrix() (*matrix.Sparse[T], error) {
	if !res.kernelSupported() {
		return nil, eliminationErrorf(opImage, fmt.Errorf("%s: %w", res.form, ErrUnsupportedForm))
	}
	head, err := res.normal.Submatrix(0, res.Rows(), 0, res.rank)
	if err != nil {
		return nil, eliminationErrorf(opImage, err)
	}

	return matrix.Mul(res.LeftInverse(), head)
}

// ImageVectors returns the image basis as dense column vectors.
func (res *Result[T]) ImageVectors() ([][]T, error) {
	im, err := res.ImageMatrix()
	if err != nil {
		return nil, err
	}

	return im.Columns(), nil
}

// ImageTransitionMatrix returns the first rank rows of P. For Diagonal and
// Smith results it maps an image element y to coordinates c with
// c_i = d_i · (coefficient of the i-th ImageMatrix column).
func (res *Result[T]) ImageTransitionMatrix() (*matrix.Sparse[T], error) {
	if !res.kernelSupported() {
		return nil, eliminationErrorf(opImage, fmt.Errorf("%s: %w", res.form, ErrUnsupportedForm))
	}

	return res.Left().Submatrix(0, res.rank, 0, res.Rows())
}

// IsInjective reports a trivial kernel (rank = cols).
func (res *Result[T]) IsInjective() bool { return res.rank == res.Cols() }

// IsSurjective reports rank = rows with unit pivots, i.e. A·x = y is solvable
// for every y over the ring (not only over its fraction field).
func (res *Result[T]) IsSurjective() bool {
	if res.rank != res.Rows() {
		return false
	}
	for _, p := range res.pivots {
		if !ring.IsUnit[T](res.r, p) {
			return false
		}
	}

	return true
}

// IsBijective reports IsInjective && IsSurjective.
func (res *Result[T]) IsBijective() bool { return res.IsInjective() && res.IsSurjective() }

// verify recomputes Left·a·Right and compares it with the normal form.
func (res *Result[T]) verify(a *matrix.Sparse[T]) error {
	got, err := matrix.Product(res.Left(), a, res.Right())
	if err != nil {
		return eliminationErrorf(opVerify, err)
	}
	if !got.Equal(res.normal) {
		return eliminationErrorf(opVerify, ErrVerificationFailed)
	}

	return nil
}
