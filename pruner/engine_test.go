package pruner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcanon"
	"github.com/katalvlaran/graphcanon/group"
	"github.com/katalvlaran/graphcanon/part"
	"github.com/katalvlaran/graphcanon/perm"
	"github.com/katalvlaran/graphcanon/pruner"
	"github.com/katalvlaran/graphcanon/treenode"
)

func img(xs ...int) []graphcanon.VIdx {
	out := make([]graphcanon.VIdx, len(xs))
	for i, x := range xs {
		out[i] = graphcanon.VIdx(x)
	}
	return out
}

// fixedLeaf is a LeafProvider that always reports the same node.
type fixedLeaf struct{ leaf *treenode.Node }

func (f fixedLeaf) CanonLeaf() *treenode.Node { return f.leaf }

// buildStar creates a root with 3 children over the trivial cell [0,3),
// mirroring a target cell of size 3 individualized one vertex at a time.
func buildStar() (*treenode.Node, []*treenode.Node) {
	root := treenode.NewRoot(part.New(3))
	root.SetChildRefinerCell(0, 3)
	children := make([]*treenode.Node, 3)
	for local := 0; local < 3; local++ {
		childPi := root.Pi.Clone()
		childPi.Individualize(graphcanon.CIdx(local))
		children[local] = root.NewChild(graphcanon.LIdx(local), graphcanon.CIdx(local), childPi)
	}
	root.Aux.ChildCount = 3
	return root, children
}

func TestEngine_TreeBeforeDescend_PrunesNonCanonicalOrbit(t *testing.T) {
	root, children := buildStar()
	chain := group.NewChain()
	eng := pruner.New(chain)
	eng.Reserve(3)

	// this automorphism swaps vertices 0 and 1 and fixes vertex 2.
	sigma := perm.FromImage(img(1, 0, 2))
	chain.AddAutomorphism(root, sigma)

	leaves := fixedLeaf{leaf: children[0]}
	eng.TreeBeforeDescend(leaves, root)

	require.True(t, children[0].IsPruned() != children[1].IsPruned())
	assert.False(t, children[0].IsPruned(), "the canonical child's local index must never be pruned")
}

func TestEngine_TreeBeforeDescend_NoGeneratorsIsNoop(t *testing.T) {
	root, children := buildStar()
	chain := group.NewChain()
	eng := pruner.New(chain)
	eng.Reserve(3)

	leaves := fixedLeaf{leaf: children[0]}
	eng.TreeBeforeDescend(leaves, root)

	for _, c := range children {
		assert.False(t, c.IsPruned())
	}
}

func TestEngine_TreeBeforeDescend_SkipsPrunedNode(t *testing.T) {
	root, _ := buildStar()
	root.PruneSubtree()
	chain := group.NewChain()
	eng := pruner.New(chain)
	eng.Reserve(3)

	leaves := fixedLeaf{leaf: root}
	assert.NotPanics(t, func() { eng.TreeBeforeDescend(leaves, root) })
}

func TestEngine_TreeBeforeDescend_SkipsChildlessNode(t *testing.T) {
	leaf := treenode.NewRoot(part.New(1))
	chain := group.NewChain()
	eng := pruner.New(chain)
	eng.Reserve(1)

	leaves := fixedLeaf{leaf: leaf}
	assert.NotPanics(t, func() { eng.TreeBeforeDescend(leaves, leaf) })
}

func TestEngine_AutomorphismImplicit_RecordsWithoutPruning(t *testing.T) {
	root, children := buildStar()
	chain := group.NewChain()
	eng := pruner.New(chain)
	eng.Reserve(3)

	sigma := perm.FromImage(img(1, 0, 2))
	eng.AutomorphismImplicit(root, sigma, 0)

	assert.True(t, chain.NeedUpdate(root))
	for _, c := range children {
		assert.False(t, c.IsPruned())
	}
}

func TestEngine_AutomorphismLeaf_PrunesLCAChild(t *testing.T) {
	root, children := buildStar()

	// grandchildren under children[1] and children[2], simulating a
	// deeper search path so the LCA walk has something to climb through.
	gc1Pi := children[1].Pi.Clone()
	children[1].SetChildRefinerCell(1, 1)
	gc1 := children[1].NewChild(0, 1, gc1Pi)

	gc2Pi := children[2].Pi.Clone()
	children[2].SetChildRefinerCell(2, 1)
	gc2 := children[2].NewChild(0, 2, gc2Pi)

	chain := group.NewChain()
	eng := pruner.New(chain)
	eng.Reserve(3)

	leaves := fixedLeaf{leaf: gc1}
	sigma := perm.FromImage(img(0, 2, 1))
	eng.AutomorphismLeaf(leaves, gc2, sigma)

	assert.True(t, children[2].IsPruned())
	assert.False(t, children[1].IsPruned())
	assert.False(t, root.IsPruned())
}
