// SPDX-License-Identifier: MIT

package module

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/modstruct/elimination"
	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
)

var log = logging.Logger("module")

// Decompose computes the invariant-factor decomposition of the quotient
// span(A) / span(B), where A (n×k) lists generators and B (n×l) lists
// relations, both as columns over the n labels of basis, and T (k×n) is a
// left inverse of A.
//
// Implementation:
//   - Stage 1: validate shapes and spot-check T·A = I (column j: the
//     diagonal entry and the entry below it, cyclically).
//   - Stage 2: R = T·B expresses the relations in the generators of A;
//     P·R·Q = D is its Smith form.
//   - Stage 3: divisors = diag(D) followed by k − rank zeros; unit divisors
//     give trivial summands and are dropped, leaving s survivors which are
//     the last s of the k positions.
//   - Stage 4: new generators are the columns of A·P⁻¹[:, k−s:k]; the new
//     transition matrix is P[k−s:k, :]·T.
//
// Summands come out torsion first (d₁ | d₂ | …), free last.
//
// Errors:
//   - matrix.ErrNilMatrix for nil inputs.
//   - ErrDimensionMismatch unless A.rows = B.rows = len(basis) ≥ A.cols ≥
//     B.cols and T is A.cols×A.rows.
//   - ErrDuplicateGenerator, ErrIllFormedTransition.
//   - elimination.ErrNotEuclidean if the ring has no Euclidean division.
func Decompose[A comparable, T any](basis []A, generating, relations, transition *matrix.Sparse[T], opts ...elimination.Option) (*Structure[A, T], error) {
	for _, m := range []*matrix.Sparse[T]{generating, relations, transition} {
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, moduleErrorf(opDecompose, err)
		}
	}
	r, ok := generating.Ring().(ring.Euclidean[T])
	if !ok {
		return nil, moduleErrorf(opDecompose, fmt.Errorf("%s: %w", generating.Ring().Symbol(), elimination.ErrNotEuclidean))
	}
	if err := validatePresentation(basis, generating, relations, transition); err != nil {
		return nil, moduleErrorf(opDecompose, err)
	}
	if err := validateBasis(basis); err != nil {
		return nil, moduleErrorf(opDecompose, err)
	}
	if err := spotCheckTransition(r, generating, transition); err != nil {
		return nil, moduleErrorf(opDecompose, err)
	}

	k := generating.Cols()
	rel, err := matrix.Mul(transition, relations)
	if err != nil {
		return nil, moduleErrorf(opDecompose, err)
	}
	res, err := elimination.Eliminate(rel, elimination.Smith, opts...)
	if err != nil {
		return nil, moduleErrorf(opDecompose, err)
	}

	divisors := res.Diagonal()
	for i := res.Rank(); i < k; i++ {
		divisors = append(divisors, r.Zero())
	}
	kept := divisors[:0]
	for _, d := range divisors {
		if !ring.IsUnit[T](r, d) {
			kept = append(kept, d)
		}
	}
	s := len(kept)

	tail, err := res.LeftInverse().Submatrix(0, k, k-s, k)
	if err != nil {
		return nil, moduleErrorf(opDecompose, err)
	}
	gens, err := matrix.Mul(generating, tail)
	if err != nil {
		return nil, moduleErrorf(opDecompose, err)
	}
	head, err := res.Left().Submatrix(k-s, k, 0, k)
	if err != nil {
		return nil, moduleErrorf(opDecompose, err)
	}
	trans, err := matrix.Mul(head, transition)
	if err != nil {
		return nil, moduleErrorf(opDecompose, err)
	}

	summands := make([]Summand[A, T], s)
	for j, col := range gens.Columns() {
		summands[j] = Summand[A, T]{r: r, generator: fromColumn[A, T](r, basis, col), divisor: kept[j]}
	}
	st := &Structure[A, T]{r: r, summands: summands, basis: append([]A(nil), basis...), transition: trans}
	log.Debugw("decomposed",
		"generators", k,
		"relations", relations.Cols(),
		"structure", st.String())

	return st, nil
}

// DecomposeRelations decomposes span(basis) / span(relations), i.e.
// Decompose with identity generating and transition matrices.
func DecomposeRelations[A comparable, T any](basis []A, relations *matrix.Sparse[T], opts ...elimination.Option) (*Structure[A, T], error) {
	if err := matrix.ValidateNotNil(relations); err != nil {
		return nil, moduleErrorf(opDecompose, err)
	}
	id, err := matrix.NewIdentity(relations.Ring(), len(basis))
	if err != nil {
		return nil, moduleErrorf(opDecompose, err)
	}

	return Decompose(basis, id, relations, id.Clone(), opts...)
}

// validatePresentation checks the shape preconditions of Decompose.
func validatePresentation[A comparable, T any](basis []A, a, b, t *matrix.Sparse[T]) error {
	switch {
	case a.Rows() != b.Rows():
		return fmt.Errorf("generating has %d rows, relations %d: %w", a.Rows(), b.Rows(), ErrDimensionMismatch)
	case a.Rows() != len(basis):
		return fmt.Errorf("generating has %d rows for %d labels: %w", a.Rows(), len(basis), ErrDimensionMismatch)
	case a.Rows() < a.Cols():
		return fmt.Errorf("%d generators in rank %d: %w", a.Cols(), a.Rows(), ErrDimensionMismatch)
	case a.Cols() < b.Cols():
		return fmt.Errorf("%d relations for %d generators: %w", b.Cols(), a.Cols(), ErrDimensionMismatch)
	case t.Rows() != a.Cols() || t.Cols() != a.Rows():
		return fmt.Errorf("transition is %d×%d, want %d×%d: %w", t.Rows(), t.Cols(), a.Cols(), a.Rows(), ErrDimensionMismatch)
	}

	return nil
}

// spotCheckTransition verifies (T·A)[j,j] = 1 and (T·A)[j+1 mod k, j] = 0
// for every generator column j.
// Complexity: O(k·n).
func spotCheckTransition[T any](r ring.Ring[T], a, t *matrix.Sparse[T]) error {
	k := a.Cols()
	for j := 0; j < k; j++ {
		col, _ := a.Column(j) // j < k
		if !r.Equal(dot(r, t, j, col), r.One()) {
			return fmt.Errorf("(T·A)[%d,%d] != 1: %w", j, j, ErrIllFormedTransition)
		}
		if k > 1 {
			i := (j + 1) % k
			if !ring.IsZero(r, dot(r, t, i, col)) {
				return fmt.Errorf("(T·A)[%d,%d] != 0: %w", i, j, ErrIllFormedTransition)
			}
		}
	}

	return nil
}

// dot returns row i of m times the dense vector v.
func dot[T any](r ring.Ring[T], m *matrix.Sparse[T], i int, v []T) T {
	sum := r.Zero()
	es, _ := m.RowEntries(i) // i < m.Rows()
	for _, e := range es {
		sum = r.Add(sum, r.Mul(e.Value, v[e.Col]))
	}

	return sum
}
