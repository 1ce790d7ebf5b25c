package pruner

import (
	"github.com/katalvlaran/graphcanon"
	"github.com/katalvlaran/graphcanon/group"
	"github.com/katalvlaran/graphcanon/internal/unionfind"
	"github.com/katalvlaran/graphcanon/perm"
	"github.com/katalvlaran/graphcanon/treenode"
)

// LeafProvider gives the pruner access to the search driver's current
// canonical leaf, which changes as the search progresses. The pruner
// never mutates it.
type LeafProvider interface {
	CanonLeaf() *treenode.Node
}

// Engine is the pruner itself: per-search state is just the two scratch
// path buffers, reused across calls to avoid reallocating on every
// TreeBeforeDescend.
type Engine struct {
	adapter group.Adapter
	tPath   []*treenode.Node
	cPath   []*treenode.Node
}

// New returns an Engine that records automorphisms into adapter.
func New(adapter group.Adapter) *Engine {
	return &Engine{adapter: adapter}
}

// Reserve preallocates the path buffers to hold up to n entries, mirroring
// the original's initialize() reserving t_path/c_path to state.n.
func (e *Engine) Reserve(n int) {
	e.tPath = make([]*treenode.Node, 0, n)
	e.cPath = make([]*treenode.Node, 0, n)
}

// TreeCreateNodeBegin must be called once for every node created,
// including the root (for which it is a no-op), before the node is used
// for anything else: it bumps the parent's child count so
// TreeBeforeDescend can later tell leaves and childless nodes apart from
// nodes worth pruning.
func (e *Engine) TreeCreateNodeBegin(t *treenode.Node) {
	if p := t.Parent(); p != nil {
		p.Aux.ChildCount++
	}
}

// AutomorphismLeaf records an automorphism discovered at leaf t and prunes
// the newly redundant part of the search tree: the subtree rooted at the
// child, on the path from the root to t, of the lowest common ancestor of
// t and the running canonical leaf.
func (e *Engine) AutomorphismLeaf(leaves LeafProvider, t *treenode.Node, aut perm.Permutation) {
	e.adapter.AddAutomorphism(t, aut)

	tCanon := leaves.CanonLeaf()
	tAut := t
	if tCanon == tAut {
		graphcanon.Violate("pruner.AutomorphismLeaf", "automorphism leaf equals the canonical leaf")
	}
	for tCanon.Level > tAut.Level {
		tCanon = tCanon.Parent()
	}
	for tAut.Level > tCanon.Level {
		tAut = tAut.Parent()
	}
	for tCanon.Parent() != tAut.Parent() {
		tCanon = tCanon.Parent()
		tAut = tAut.Parent()
	}
	tAut.PruneSubtree()
}

// AutomorphismImplicit records an automorphism discovered without
// constructing the leaf that would have exhibited it (e.g. derived from
// two already-known automorphisms). tag identifies the derivation site to
// a caller that distinguishes them (e.g. for diagnostics); the engine
// itself ignores it. No pruning is performed here: the discovering caller
// is responsible for any pruning implied by aut.
func (e *Engine) AutomorphismImplicit(t *treenode.Node, aut perm.Permutation, tag int) {
	e.adapter.AddAutomorphism(t, aut)
}

// TreeBeforeDescend attempts to prune t's children using every
// newly-available stabilizer generator along the path from t up to the
// lowest ancestor whose generators have not changed.
func (e *Engine) TreeBeforeDescend(leaves LeafProvider, t *treenode.Node) {
	if t.IsPruned() {
		return
	}
	if t.Aux.ChildCount == 0 {
		return
	}
	if !e.adapter.NeedUpdate(t) {
		return
	}

	tPath := e.tPath[:0]
	cPath := e.cPath[:0]
	for a := t; a != nil; a = a.Parent() {
		if !e.adapter.NeedUpdate(a) {
			break
		}
		tPath = append(tPath, a)
	}
	for a := leaves.CanonLeaf(); a != nil; a = a.Parent() {
		if !e.adapter.NeedUpdate(a) {
			break
		}
		cPath = append(cPath, a)
	}
	if len(tPath) == 0 {
		graphcanon.Violate("pruner.TreeBeforeDescend", "t itself must always need updating here")
	}
	if len(cPath) > 0 && tPath[len(tPath)-1] != cPath[len(cPath)-1] {
		cPath = cPath[:0]
	}

	for len(tPath) > 0 {
		aT := tPath[len(tPath)-1]
		if aT.IsPruned() {
			break
		}

		newAuts := e.adapter.Update(aT)
		if len(newAuts) == 0 {
			if aT.Parent() != nil {
				break
			}
			// the root always needs updating; move to the next ancestor.
			tPath, cPath = popBoth(tPath, cPath)
			continue
		}

		numChildren := len(aT.Children)
		if !aT.Aux.Initialized() {
			aT.Aux.Reset(numChildren)
		} else if aT.Aux.NumRoots == 0 {
			tPath, cPath = popBoth(tPath, cPath)
			continue
		}

		canonChildLocalIdx := graphcanon.LIdx(-1)
		if len(cPath) > 0 {
			if cPath[len(cPath)-1] != aT {
				cPath = cPath[:0]
			} else if len(cPath) < 2 {
				graphcanon.Violate("pruner.TreeBeforeDescend", "canonical leaf path reached a_t without a child below it")
			} else {
				canonChild := cPath[len(cPath)-2]
				canonChildVIdx := aT.Pi.Get(canonChild.ChildIndividualizedPosition())
				canonChildIdx := aT.Pi.GetInverse(canonChildVIdx)
				canonChildLocalIdx = graphcanon.LIdx(int(canonChildIdx) - int(aT.ChildRefinerCell()))
			}
		}

		cellBegin := aT.ChildRefinerCell()

	auts:
		for _, sigma := range newAuts {
			for idxLocal := 0; idxLocal < numChildren; idxLocal++ {
				idx := cellBegin + graphcanon.CIdx(idxLocal)
				vIdx := aT.Pi.Get(idx)
				vImageIdx := sigma.At(vIdx)
				if vIdx == vImageIdx {
					continue
				}
				imageIdx := aT.Pi.GetInverse(vImageIdx)
				imageIdxLocal := graphcanon.LIdx(int(imageIdx) - int(cellBegin))
				if imageIdxLocal < 0 || int(imageIdxLocal) >= numChildren {
					graphcanon.Violate("pruner.TreeBeforeDescend", "generator maps a target-cell vertex outside the target cell")
				}

				root := unionfind.Find(aT.Aux.Parent, graphcanon.LIdx(idxLocal))
				rootImage := unionfind.Find(aT.Aux.Parent, imageIdxLocal)
				if root == rootImage {
					continue
				}

				newRoot, other := root, rootImage
				switch {
				case root == canonChildLocalIdx:
					// keep root as the winner.
				case rootImage == canonChildLocalIdx:
					newRoot, other = other, newRoot
				case aT.ChildPruned[root]:
					// keep the already-pruned root as the winner.
				case aT.ChildPruned[rootImage]:
					newRoot, other = other, newRoot
				case other < newRoot:
					newRoot, other = other, newRoot
				}

				unionfind.Union(aT.Aux.Parent, newRoot, other)
				aT.Aux.NumRoots--
				aT.ChildPruned[other] = true
				if child := aT.Children[other]; child != nil {
					child.PruneSubtree()
				}
				if aT.Aux.NumRoots == 0 {
					break auts
				}
			}
		}

		tPath, cPath = popBoth(tPath, cPath)
	}
}

func popBoth(tPath, cPath []*treenode.Node) ([]*treenode.Node, []*treenode.Node) {
	if len(cPath) > 0 {
		cPath = cPath[:len(cPath)-1]
	}
	tPath = tPath[:len(tPath)-1]
	return tPath, cPath
}
