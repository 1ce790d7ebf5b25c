// Package unionfind provides the disjoint-set primitives used by the
// pruner's per-node auxiliary data: path-halving Find over a
// caller-owned parent array, plus a raw Union that commits a
// caller-decided winner/loser pair.
//
// Deliberately not a self-contained struct like some union-find
// implementations: the pruner picks a merge's winner by priority
// (canonical child, then already-pruned, then lower index) rather than
// by rank or size, and that decision needs pruner-owned state
// (child-pruned bits, the canonical child's local index) the union-find
// layer has no business holding. So this package owns only Find/Union
// over a slice the caller supplies and keeps as its own per-node parent
// array.
package unionfind

import "github.com/katalvlaran/graphcanon"

// New returns a fresh identity parent array of size n: every element is
// its own root.
func New(n int) []graphcanon.LIdx {
	parent := make([]graphcanon.LIdx, n)
	for i := range parent {
		parent[i] = graphcanon.LIdx(i)
	}
	return parent
}

// Find returns the root of self's class in parent, compressing the path
// by two-step path halving as it walks up.
func Find(parent []graphcanon.LIdx, self graphcanon.LIdx) graphcanon.LIdx {
	for {
		p := parent[self]
		if p == self {
			return self
		}
		pp := parent[p]
		if pp == p {
			return p
		}
		parent[self] = pp
		self = p
	}
}

// Union makes winner the parent of loser's current root. Callers must
// have already established that winner and loser are roots of distinct
// classes (e.g. via two Find calls) and must have already decided which
// side should win by priority; Union performs no priority logic itself.
func Union(parent []graphcanon.LIdx, winner, loser graphcanon.LIdx) {
	parent[loser] = winner
}
