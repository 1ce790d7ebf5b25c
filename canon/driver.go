package canon

import (
	"bytes"

	"github.com/katalvlaran/graphcanon"
	"github.com/katalvlaran/graphcanon/graph"
	"github.com/katalvlaran/graphcanon/group"
	"github.com/katalvlaran/graphcanon/ordergraph"
	"github.com/katalvlaran/graphcanon/part"
	"github.com/katalvlaran/graphcanon/perm"
	"github.com/katalvlaran/graphcanon/pruner"
	"github.com/katalvlaran/graphcanon/refine"
	"github.com/katalvlaran/graphcanon/treenode"
)

func identityIdx(v graphcanon.VIdx) graphcanon.VIdx { return v }

// driver holds the per-canonicalization state: the ordered view of the
// input graph, the accumulating group, the pruner, the running search
// tree, and the currently elected canonical leaf. A driver is used for
// exactly one Canonicalize call.
type driver struct {
	n         int
	view      *ordergraph.View[graphcanon.VIdx, graph.Edge]
	chain     *group.Chain
	eng       *pruner.Engine
	arena     *treenode.Arena
	root      *treenode.Node
	canonLeaf *treenode.Node
	canonSig  []byte
}

func newDriver(g *graph.Graph) *driver {
	view := ordergraph.New[graphcanon.VIdx, graph.Edge](g, identityIdx, ordergraph.AlwaysFalse[graph.Edge], false)
	chain := group.NewChain()
	eng := pruner.New(chain)
	eng.Reserve(view.NumVertices())
	arena := treenode.NewArena()

	d := &driver{n: view.NumVertices(), view: view, chain: chain, eng: eng, arena: arena}

	rootPi := part.New(d.n)
	refine.Equitable(rootPi, view.AdjacentVertices)
	d.root = treenode.NewRoot(rootPi)
	d.arena.Track(d.root)
	d.eng.TreeCreateNodeBegin(d.root)
	return d
}

// CanonLeaf implements pruner.LeafProvider.
func (d *driver) CanonLeaf() *treenode.Node { return d.canonLeaf }

// search explores t's subtree to completion, refining, individualizing,
// and pruning as it goes.
func (d *driver) search(t *treenode.Node) {
	if t.IsPruned() {
		return
	}
	if t.Pi.IsDiscrete() {
		d.visitLeaf(t)
		return
	}

	begin, ok := refine.FirstNonTrivialCell(t.Pi)
	if !ok {
		graphcanon.Violate("canon.search", "non-discrete partition reports no non-trivial cell")
	}
	end := t.Pi.GetCellEnd(begin)
	k := int(end - begin)
	t.SetChildRefinerCell(begin, k)

	for local := 0; local < k; local++ {
		d.eng.TreeBeforeDescend(d, t)
		if t.IsPruned() {
			return
		}
		if t.ChildPruned[local] {
			continue
		}

		pos := begin + graphcanon.CIdx(local)
		childPi := t.Pi.Clone()
		childPi.Individualize(pos)
		refine.Equitable(childPi, d.view.AdjacentVertices)

		child := t.NewChild(graphcanon.LIdx(local), pos, childPi)
		d.arena.Track(child)
		d.eng.TreeCreateNodeBegin(child)
		d.search(child)
	}
}

// visitLeaf compares t against the running canonical leaf and either
// elects t, discards it, or — if t is automorphic to the canonical leaf —
// reports the witnessing automorphism to the pruner.
func (d *driver) visitLeaf(t *treenode.Node) {
	sig := leafSignature(t.Pi, d.view)

	if d.canonLeaf == nil {
		d.canonLeaf = t
		d.canonSig = sig
		return
	}

	switch bytes.Compare(sig, d.canonSig) {
	case -1:
		d.canonLeaf = t
		d.canonSig = sig
	case 0:
		sigma := automorphismBetween(d.canonLeaf.Pi, t.Pi)
		d.eng.AutomorphismLeaf(d, t, sigma)
	}
}

// canonLabeling reads off the elected canonical leaf's order.
func (d *driver) canonLabeling() Labeling {
	lab := make(Labeling, d.n)
	for i := 0; i < d.n; i++ {
		lab[i] = d.canonLeaf.Pi.Get(graphcanon.CIdx(i))
	}
	return lab
}

// leafSignature renders the adjacency matrix induced by pi's vertex order
// as a flat byte string, one byte per matrix cell, suitable for
// lexicographic comparison between competing leaves.
func leafSignature(pi *part.Partition, view *ordergraph.View[graphcanon.VIdx, graph.Edge]) []byte {
	n := pi.Len()
	sig := make([]byte, n*n)
	for i := 0; i < n; i++ {
		vi := pi.Get(graphcanon.CIdx(i))
		for _, u := range view.AdjacentVertices(vi) {
			j := pi.GetInverse(u)
			sig[i*n+int(j)] = 1
		}
	}
	return sig
}

// automorphismBetween returns the permutation mapping a's vertex order
// onto b's: sigma(v) = b.Get(a.GetInverse(v)). When a and b are leaves
// with identical induced-adjacency signatures, sigma is a graph
// automorphism.
func automorphismBetween(a, b *part.Partition) perm.Permutation {
	n := a.Len()
	img := make([]graphcanon.VIdx, n)
	for v := 0; v < n; v++ {
		vv := graphcanon.VIdx(v)
		pos := a.GetInverse(vv)
		img[v] = b.Get(pos)
	}
	return perm.FromImage(img)
}
