// Package treenode implements the individualization-refinement search-tree
// arena: Node (a search-tree node T, plus its pruner auxiliary data) and
// Arena, an integer-indexed owner of nodes — an arena-of-nodes with
// integer indices eliminates lifetime hazards during pruning.
//
// Ownership is tree-shaped: a parent's Children slice owns its child
// nodes, and each child holds a non-owning back-pointer to its parent
// (Go's garbage collector makes the "non-owning" half of that safe without
// needing weak references or indices, unlike the C++ original).
package treenode

import (
	"github.com/katalvlaran/graphcanon"
	"github.com/katalvlaran/graphcanon/internal/unionfind"
	"github.com/katalvlaran/graphcanon/part"
)

// PruneAux is the pruner's per-node auxiliary data: how many children
// have ever been created under this node, and the lazily-materialized
// union-find state over local child indices.
type PruneAux struct {
	// ChildCount is incremented once per child ever created, regardless
	// of later pruning; it only grows.
	ChildCount int

	// Parent is the union-find parent array over local child indices.
	// Empty until the first pruning attempt at this node (see Reset).
	Parent []graphcanon.LIdx

	// NumRoots is the current number of union-find roots, minus one, so
	// zero means exactly one class remains and no further pruning is
	// possible at this node.
	NumRoots int
}

// Initialized reports whether Parent has been materialized yet.
func (a *PruneAux) Initialized() bool { return a.Parent != nil }

// Reset (re)initializes the union-find state to the identity over k local
// child indices. This must only be called when Children has not grown and
// ChildPruned has not been reset since any prior Reset; pruner.Engine
// preserves that invariant by never calling Reset once Initialized() is
// already true and NumRoots is still greater than zero.
func (a *PruneAux) Reset(k int) {
	a.Parent = unionfind.New(k)
	a.NumRoots = k - 1
}

// Node is a single search-tree node.
type Node struct {
	// Level is the depth of this node; the root has Level 0.
	Level int

	// parent is the owning back-reference; nil for the root.
	parent *Node

	// Pi is the ordered partition valid at this node. Built during
	// refinement and immutable thereafter.
	Pi *part.Partition

	// childRefinerCell is the starting position of the target cell whose
	// vertices will be individualized to produce Children.
	childRefinerCell graphcanon.CIdx

	// childIndividualizedPosition is the absolute position in the
	// parent's π that was individualized to produce this node. Zero and
	// meaningless for the root.
	childIndividualizedPosition graphcanon.CIdx

	// Children holds k = |target cell| slots, each nil or an owned child.
	Children []*Node

	// ChildPruned is a bit per local child: true means provably
	// equivalent to some kept sibling, or pruned for any other reason.
	ChildPruned []bool

	isPruned bool

	// Aux is the pruner's per-node auxiliary data, created alongside the
	// node and destroyed with it.
	Aux PruneAux
}

// NewRoot returns a fresh root node (Level 0, no parent) over the given
// partition.
func NewRoot(pi *part.Partition) *Node {
	return &Node{Pi: pi}
}

// NewChild creates, attaches, and returns a new child of n at local index
// local, individualized at absolute position pos in n's π. n must already
// have had SetChildRefinerCell called so that Children/ChildPruned are
// sized, and local must be a currently-nil slot.
func (n *Node) NewChild(local graphcanon.LIdx, pos graphcanon.CIdx, childPi *part.Partition) *Node {
	child := &Node{
		Level:                       n.Level + 1,
		parent:                      n,
		Pi:                          childPi,
		childIndividualizedPosition: pos,
	}
	n.Children[local] = child
	return child
}

// SetChildRefinerCell records the target cell for n and allocates the
// Children/ChildPruned slots, sized to the cell's k vertices. It must be
// called exactly once per node, before any NewChild call.
func (n *Node) SetChildRefinerCell(cellBegin graphcanon.CIdx, k int) {
	n.childRefinerCell = cellBegin
	n.Children = make([]*Node, k)
	n.ChildPruned = make([]bool, k)
}

// Parent returns n's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// ChildRefinerCell returns the starting position of n's target cell.
func (n *Node) ChildRefinerCell() graphcanon.CIdx { return n.childRefinerCell }

// ChildIndividualizedPosition returns the absolute position in n.Parent().Pi
// that was individualized to produce n. Meaningless for the root.
func (n *Node) ChildIndividualizedPosition() graphcanon.CIdx { return n.childIndividualizedPosition }

// IsPruned reports whether PruneSubtree has been called on n.
func (n *Node) IsPruned() bool { return n.isPruned }

// PruneSubtree marks n and every descendant pruned, and drops n's owned
// children (their subtrees become unreachable and thus collectible). It
// is idempotent: a second call is a no-op because the first call already
// brought every descendant's isPruned to true. It never calls back into a
// pruner.
func (n *Node) PruneSubtree() {
	if n.isPruned {
		return
	}
	n.isPruned = true
	for _, c := range n.Children {
		if c != nil {
			c.PruneSubtree()
		}
	}
	n.Children = nil
	n.Aux = PruneAux{}
}
