// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common compositions.
//   - Each facade delegates to the canonical implementation.

package matrix

// ZerosLike returns a new zero matrix with the same ring and shape as m.
// Complexity: O(rows).
func ZerosLike[T any](m *Sparse[T]) (*Sparse[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewZero(m.r, m.rows, m.cols)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n).
func IdentityLike[T any](m *Sparse[T]) (*Sparse[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return identity(m.r, m.rows), nil
}

// Product returns m₁·m₂·…·mₙ evaluated left to right.
// At least one factor is required; a single factor is returned as a clone.
//
// AI-Hints: use it to check transformation identities such as P·A·Q = D.
func Product[T any](factors ...*Sparse[T]) (*Sparse[T], error) {
	if len(factors) == 0 {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateNotNil(factors[0]); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	acc := factors[0].Clone()
	for _, f := range factors[1:] {
		next, err := Mul(acc, f)
		if err != nil {
			return nil, err
		}
		acc = next
	}

	return acc, nil
}
