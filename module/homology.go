// SPDX-License-Identifier: MIT

package module

import (
	"fmt"

	"github.com/katalvlaran/modstruct/elimination"
	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
)

// Homology computes ker(outgoing) / im(incoming) at one position of a chain
// complex
//
//	C₁ --incoming--> C --outgoing--> C₂
//
// where basis labels C, incoming is len(basis)×dim C₁ and outgoing is
// dim C₂×len(basis). A nil map stands for the zero map from or to the
// zero module.
//
// Implementation:
//   - Stage 1: check shapes and outgoing·incoming = 0.
//   - Stage 2: Smith-eliminate both maps. The kernel basis of outgoing is the
//     generating matrix, its kernel transition matrix the left inverse, and
//     the image basis of incoming the relations.
//   - Stage 3: Decompose.
//
// Errors: ErrDimensionMismatch, ErrNotComplex, plus Decompose's errors.
func Homology[A comparable, T any](r ring.Euclidean[T], basis []A, incoming, outgoing *matrix.Sparse[T], opts ...elimination.Option) (*Structure[A, T], error) {
	n := len(basis)
	var err error
	if incoming == nil {
		if incoming, err = matrix.NewZero[T](r, n, 0); err != nil {
			return nil, moduleErrorf(opHomology, err)
		}
	}
	if outgoing == nil {
		if outgoing, err = matrix.NewZero[T](r, 0, n); err != nil {
			return nil, moduleErrorf(opHomology, err)
		}
	}
	if incoming.Rows() != n || outgoing.Cols() != n {
		return nil, moduleErrorf(opHomology,
			fmt.Errorf("incoming %d×%d, outgoing %d×%d, %d labels: %w",
				incoming.Rows(), incoming.Cols(), outgoing.Rows(), outgoing.Cols(), n, ErrDimensionMismatch))
	}

	comp, err := matrix.Mul(outgoing, incoming)
	if err != nil {
		return nil, moduleErrorf(opHomology, err)
	}
	if !comp.IsZero() {
		return nil, moduleErrorf(opHomology, ErrNotComplex)
	}

	out, err := elimination.Eliminate(outgoing, elimination.Smith, opts...)
	if err != nil {
		return nil, moduleErrorf(opHomology, err)
	}
	in, err := elimination.Eliminate(incoming, elimination.Smith, opts...)
	if err != nil {
		return nil, moduleErrorf(opHomology, err)
	}
	cycles, err := out.KernelMatrix()
	if err != nil {
		return nil, moduleErrorf(opHomology, err)
	}
	section, err := out.KernelTransitionMatrix()
	if err != nil {
		return nil, moduleErrorf(opHomology, err)
	}
	boundaries, err := in.ImageMatrix()
	if err != nil {
		return nil, moduleErrorf(opHomology, err)
	}

	return Decompose(basis, cycles, boundaries, section, opts...)
}
