package group

import (
	"github.com/katalvlaran/graphcanon/perm"
	"github.com/katalvlaran/graphcanon/treenode"
)

// Chain is a flat-generator-list stabilizer accumulator: AddAutomorphism
// appends newly discovered automorphisms of the whole graph to a single
// slice; NeedUpdate/Update filter that slice, per node, down to the
// generators that fix every vertex individualized on the path from the
// root to that node (i.e. that lie in the stabilizer of the node's
// individualization prefix), and track how many of those each node has
// already been shown.
//
// The filtered-subset size for a fixed node is monotone non-decreasing as
// more generators are discovered (a generator either does or does not fix
// a given prefix, forever), so tracking "how many of the filtered list
// this node has already consumed" is sound even though the underlying
// gens slice keeps growing and reordering nothing.
type Chain struct {
	gens     []perm.Permutation
	consumed map[*treenode.Node]int
}

// NewChain returns an empty generator accumulator.
func NewChain() *Chain {
	return &Chain{consumed: make(map[*treenode.Node]int)}
}

// Generators returns every automorphism discovered so far, in discovery
// order. Callers must treat the returned slice as read-only.
func (c *Chain) Generators() []perm.Permutation {
	return c.gens
}

// AddAutomorphism appends sigma if it is not already present. The identity
// permutation is never appended: it fixes every vertex, so it is already
// implied by every node's stabilizer and carries no pruning information.
func (c *Chain) AddAutomorphism(_ *treenode.Node, sigma perm.Permutation) {
	if sigma.IsIdentity() {
		return
	}
	for _, g := range c.gens {
		if perm.Equal(g, sigma) {
			return
		}
	}
	c.gens = append(c.gens, sigma)
}

// NeedUpdate reports whether t's stabilizer, as filtered from the current
// generator list, has more elements than t has already consumed.
func (c *Chain) NeedUpdate(t *treenode.Node) bool {
	return len(c.filtered(t)) > c.consumed[t]
}

// Update returns the newly-fixing generators for t since the last call at
// t, and advances t's consumed counter.
func (c *Chain) Update(t *treenode.Node) []perm.Permutation {
	filtered := c.filtered(t)
	start := c.consumed[t]
	if start >= len(filtered) {
		return nil
	}
	c.consumed[t] = len(filtered)
	out := make([]perm.Permutation, len(filtered)-start)
	copy(out, filtered[start:])
	return out
}

// filtered returns the subset of c.gens that fixes every vertex
// individualized on the path from the root to t.
func (c *Chain) filtered(t *treenode.Node) []perm.Permutation {
	var out []perm.Permutation
	for _, g := range c.gens {
		if fixesPrefix(t, g) {
			out = append(out, g)
		}
	}
	return out
}

// fixesPrefix reports whether sigma fixes pointwise every vertex that was
// individualized to build the path from the root down to t.
func fixesPrefix(t *treenode.Node, sigma perm.Permutation) bool {
	for a := t; a.Parent() != nil; a = a.Parent() {
		p := a.Parent()
		v := p.Pi.Get(a.ChildIndividualizedPosition())
		if sigma.At(v) != v {
			return false
		}
	}
	return true
}
