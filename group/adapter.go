package group

import (
	"github.com/katalvlaran/graphcanon/perm"
	"github.com/katalvlaran/graphcanon/treenode"
)

// Adapter is the narrow contract the pruner calls into. An implementation
// incorporates newly discovered automorphisms and reports, per search-tree
// node, which generators of the stabilizer at that node are new since the
// last Update call there.
type Adapter interface {
	// AddAutomorphism incorporates sigma, discovered at t, into the
	// group. Idempotent if sigma is already known.
	AddAutomorphism(t *treenode.Node, sigma perm.Permutation)

	// NeedUpdate is a cheap predicate: true iff the stabilizer at t has,
	// or may have, generators not yet delivered to t via Update.
	NeedUpdate(t *treenode.Node) bool

	// Update returns the generators of the stabilizer at t that are new
	// since the last Update call at t, and records them as consumed.
	// Safe to call when nothing is pending; returns nil in that case.
	Update(t *treenode.Node) []perm.Permutation
}

// NullAdapter is a do-nothing composition default: it never reports
// updates, so pruner.Engine.TreeBeforeDescend becomes a no-op and no
// automorphism is ever incorporated. Useful as an explicit opt-out, and as
// the baseline for A/B comparison runs measuring how much pruning actually
// buys on a given search.
type NullAdapter struct{}

func (NullAdapter) AddAutomorphism(*treenode.Node, perm.Permutation) {}
func (NullAdapter) NeedUpdate(*treenode.Node) bool                  { return false }
func (NullAdapter) Update(*treenode.Node) []perm.Permutation        { return nil }
