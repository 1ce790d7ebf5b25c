// SPDX-License-Identifier: MIT
//
// Package perm implements dense permutations over graphcanon.VIdx.
//
// A Permutation is represented as a direct image array (image[v] = σ(v)),
// giving O(1) application at the cost of O(n) storage per generator, which
// is exactly how the pruner applies a permutation to a vertex. No generic
// permutation-group library exists in the retrieved pack, so this type and
// Chain (package group) are hand-written in a plain-slice, no-dependency
// idiom (see DESIGN.md).
package perm

import "github.com/katalvlaran/graphcanon"

// Permutation is a bijection on [0, n) represented by its image array.
type Permutation struct {
	image []graphcanon.VIdx
}

// Identity returns the identity permutation on [0, n).
func Identity(n int) Permutation {
	img := make([]graphcanon.VIdx, n)
	for i := range img {
		img[i] = graphcanon.VIdx(i)
	}
	return Permutation{image: img}
}

// FromImage wraps img as a Permutation without copying. Callers must not
// mutate img afterward; permutations are treated as immutable values once
// constructed, matching how group.Chain hands out generators by value.
func FromImage(img []graphcanon.VIdx) Permutation {
	return Permutation{image: img}
}

// Len returns n, the size of the domain.
func (p Permutation) Len() int { return len(p.image) }

// At returns σ(v).
func (p Permutation) At(v graphcanon.VIdx) graphcanon.VIdx {
	return p.image[v]
}

// Image returns the underlying image array. Callers must treat it as
// read-only.
func (p Permutation) Image() []graphcanon.VIdx {
	return p.image
}

// IsIdentity reports whether σ fixes every point.
func (p Permutation) IsIdentity() bool {
	for v, iv := range p.image {
		if graphcanon.VIdx(v) != iv {
			return false
		}
	}
	return true
}

// Inverse returns σ⁻¹.
func (p Permutation) Inverse() Permutation {
	inv := make([]graphcanon.VIdx, len(p.image))
	for v, iv := range p.image {
		inv[iv] = graphcanon.VIdx(v)
	}
	return Permutation{image: inv}
}

// Compose returns the permutation v ↦ q.At(p.At(v)), i.e. p then q.
func Compose(p, q Permutation) Permutation {
	out := make([]graphcanon.VIdx, len(p.image))
	for v := range p.image {
		out[v] = q.At(p.image[v])
	}
	return Permutation{image: out}
}

// Equal reports whether p and q act identically on their (equal-size)
// domain.
func Equal(p, q Permutation) bool {
	if len(p.image) != len(q.image) {
		return false
	}
	for i := range p.image {
		if p.image[i] != q.image[i] {
			return false
		}
	}
	return true
}
