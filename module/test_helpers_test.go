// SPDX-License-Identifier: MIT
// Package module_test contains shared fixtures.
//
// Purpose:
//   • Build integer presentations over the abstract basis e0, e1, … tersely.
//   • Compare big.Int coordinate vectors as int64 slices.

package module_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/module"
	"github.com/katalvlaran/modstruct/ring"
	"github.com/stretchr/testify/require"
)

// Z is the integer ring shared by all tests in this package.
var Z = ring.Integers()

// Vec is an element over the abstract basis with integer coefficients.
type Vec = module.Element[module.Generator, *big.Int]

// mustInts builds a rows×cols integer matrix from a row-major grid.
func mustInts(t *testing.T, rows, cols int, grid ...int64) *matrix.Sparse[*big.Int] {
	t.Helper()
	m, err := matrix.NewFromGrid[*big.Int](Z, rows, cols, ring.BigInts(grid...))
	require.NoError(t, err)

	return m
}

// vec returns Σ coeffs[i]·e_i.
func vec(t *testing.T, coeffs ...int64) Vec {
	t.Helper()
	x, err := module.FromCoefficients[module.Generator, *big.Int](Z, module.AbstractBasis(len(coeffs)), ring.BigInts(coeffs...))
	require.NoError(t, err)

	return x
}

// e returns the basis element e_i.
func e(i int) Vec { return module.BasisElement[module.Generator, *big.Int](Z, module.Generator(i)) }

// int64s flattens a coefficient vector.
func int64s(v []*big.Int) []int64 {
	out := make([]int64, len(v))
	for k, c := range v {
		out[k] = c.Int64()
	}

	return out
}
