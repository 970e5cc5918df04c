// SPDX-License-Identifier: MIT
// Package module: sentinel error set.
// Constructors and queries return these sentinels (wrapped with an operation
// tag) or pass matrix/elimination sentinels through; match with errors.Is.

package module

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/modstruct/matrix"
)

var (
	// ErrDimensionMismatch is matrix.ErrDimensionMismatch, re-exported so
	// callers of this package need not import matrix to match it.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrIllFormedTransition indicates that the supplied transition matrix T
	// fails the spot-check T·A = I.
	ErrIllFormedTransition = errors.New("module: transition matrix is not a left inverse of the generating matrix")

	// ErrUndeclaredGenerator indicates an element or map entry that uses a
	// label outside the declared basis.
	ErrUndeclaredGenerator = errors.New("module: undeclared generator")

	// ErrDuplicateGenerator indicates a basis listing the same label twice.
	ErrDuplicateGenerator = errors.New("module: duplicate generator in basis")

	// ErrNotComplex indicates outgoing·incoming ≠ 0 in a Homology call.
	ErrNotComplex = errors.New("module: consecutive maps do not compose to zero")

	// ErrNegativeRank indicates a negative free rank passed to NewAbstract.
	ErrNegativeRank = errors.New("module: rank must be >= 0")
)

// Operation name constants for unified error wrapping.
const (
	opNewElement   = "FromCoefficients"
	opFactorize    = "Element.Factorize"
	opHomFromMat   = "HomFromMatrix"
	opHomMatrix    = "Hom.Matrix"
	opKernel       = "Hom.Kernel"
	opImage        = "Hom.Image"
	opDecompose    = "Decompose"
	opStructFactor = "Structure.Factorize"
	opSummand      = "Structure.Summand"
	opSubSummands  = "Structure.SubSummands"
	opCombine      = "Structure.Combine"
	opAbstract     = "NewAbstract"
	opHomology     = "Homology"
)

// moduleErrorf wraps err with an operation tag, preserving it for errors.Is.
func moduleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
