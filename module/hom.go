// SPDX-License-Identifier: MIT

package module

import (
	"fmt"

	"github.com/katalvlaran/modstruct/elimination"
	"github.com/katalvlaran/modstruct/matrix"
	"github.com/katalvlaran/modstruct/ring"
)

// Hom is a homomorphism of free modules, determined by the images of the
// source labels. Labels without an image map to zero.
type Hom[A, B comparable, T any] struct {
	r      ring.Ring[T]
	images map[A]Element[B, T]
}

// NewHom returns the map a ↦ images[a]. The map is copied.
func NewHom[A, B comparable, T any](r ring.Ring[T], images map[A]Element[B, T]) *Hom[A, B, T] {
	cp := make(map[A]Element[B, T], len(images))
	for a, y := range images {
		cp[a] = y
	}

	return &Hom[A, B, T]{r: r, images: cp}
}

// HomFromMatrix returns the map sending from[j] to Σᵢ m[i,j]·to[i].
// Returns ErrDimensionMismatch unless m is len(to)×len(from).
func HomFromMatrix[A, B comparable, T any](from []A, to []B, m *matrix.Sparse[T]) (*Hom[A, B, T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, moduleErrorf(opHomFromMat, err)
	}
	if m.Rows() != len(to) || m.Cols() != len(from) {
		return nil, moduleErrorf(opHomFromMat,
			fmt.Errorf("%d×%d for %d→%d labels: %w", m.Rows(), m.Cols(), len(from), len(to), ErrDimensionMismatch))
	}
	if err := validateBasis(from); err != nil {
		return nil, moduleErrorf(opHomFromMat, err)
	}
	if err := validateBasis(to); err != nil {
		return nil, moduleErrorf(opHomFromMat, err)
	}
	images := make(map[A]Element[B, T], len(from))
	for j, col := range m.Columns() {
		images[from[j]] = fromColumn(m.Ring(), to, col)
	}

	return &Hom[A, B, T]{r: m.Ring(), images: images}, nil
}

// Apply returns f(x) = Σ cₐ·f(a).
// Complexity: O(Σ |f(a)| over the labels of x).
func (f *Hom[A, B, T]) Apply(x Element[A, T]) Element[B, T] {
	var terms []Term[B, T]
	for _, t := range x.Terms() {
		for _, u := range f.images[t.Label].Terms() {
			terms = append(terms, Term[B, T]{Label: u.Label, Coeff: f.r.Mul(t.Coeff, u.Coeff)})
		}
	}

	return collect(f.r, terms)
}

// Compose returns g∘f.
func Compose[A, B, C comparable, T any](g *Hom[B, C, T], f *Hom[A, B, T]) *Hom[A, C, T] {
	images := make(map[A]Element[C, T], len(f.images))
	for a, y := range f.images {
		images[a] = g.Apply(y)
	}

	return &Hom[A, C, T]{r: f.r, images: images}
}

// Matrix returns the len(to)×len(from) matrix of f: column j holds the
// coordinates of f(from[j]) in to.
//
// Errors:
//   - ErrUndeclaredGenerator if an image is given for a label outside from,
//     or some image uses a label outside to.
//   - ErrDuplicateGenerator if from or to repeats a label.
func (f *Hom[A, B, T]) Matrix(from []A, to []B) (*matrix.Sparse[T], error) {
	if err := validateBasis(from); err != nil {
		return nil, moduleErrorf(opHomMatrix, err)
	}
	if err := validateBasis(to); err != nil {
		return nil, moduleErrorf(opHomMatrix, err)
	}
	src := indexOf(from)
	for a := range f.images {
		if _, ok := src[a]; !ok {
			return nil, moduleErrorf(opHomMatrix, fmt.Errorf("source %v: %w", a, ErrUndeclaredGenerator))
		}
	}

	dst := indexOf(to)
	var entries []matrix.Entry[T]
	for j, a := range from {
		for _, t := range f.images[a].Terms() {
			i, ok := dst[t.Label]
			if !ok {
				return nil, moduleErrorf(opHomMatrix, fmt.Errorf("target %v: %w", t.Label, ErrUndeclaredGenerator))
			}
			entries = append(entries, matrix.Entry[T]{Row: i, Col: j, Value: t.Coeff})
		}
	}
	m, err := matrix.NewFromEntries(f.r, len(to), len(from), entries)
	if err != nil {
		return nil, moduleErrorf(opHomMatrix, err)
	}

	return m, nil
}

// Kernel returns a basis of ker f ⊂ span(from) over the ring.
// The ring must be Euclidean (elimination.ErrNotEuclidean otherwise).
func (f *Hom[A, B, T]) Kernel(from []A, to []B, opts ...elimination.Option) ([]Element[A, T], error) {
	m, err := f.Matrix(from, to)
	if err != nil {
		return nil, err
	}
	res, err := elimination.Eliminate(m, elimination.Smith, opts...)
	if err != nil {
		return nil, moduleErrorf(opKernel, err)
	}
	cols, err := res.KernelVectors()
	if err != nil {
		return nil, moduleErrorf(opKernel, err)
	}
	out := make([]Element[A, T], len(cols))
	for k, col := range cols {
		out[k] = fromColumn(f.r, from, col)
	}
	log.Debugw("kernel", "source", len(from), "target", len(to), "dim", len(out))

	return out, nil
}

// Image returns a basis of im f ⊂ span(to) over the ring.
func (f *Hom[A, B, T]) Image(from []A, to []B, opts ...elimination.Option) ([]Element[B, T], error) {
	m, err := f.Matrix(from, to)
	if err != nil {
		return nil, err
	}
	res, err := elimination.Eliminate(m, elimination.Smith, opts...)
	if err != nil {
		return nil, moduleErrorf(opImage, err)
	}
	cols, err := res.ImageVectors()
	if err != nil {
		return nil, moduleErrorf(opImage, err)
	}
	out := make([]Element[B, T], len(cols))
	for k, col := range cols {
		out[k] = fromColumn(f.r, to, col)
	}
	log.Debugw("image", "source", len(from), "target", len(to), "dim", len(out))

	return out, nil
}
