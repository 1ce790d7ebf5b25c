package treenode

// Arena tracks every node created during one canonicalization, by integer
// index, favoring an arena-of-nodes over raw cyclic pointers. Ownership of
// subtrees still flows through Node.Children (parent owns child); Arena
// exists so a driver can count nodes, look one up by creation order for
// diagnostics, or release the whole tree in O(1) by dropping its own
// slice, without walking pointers.
type Arena struct {
	nodes []*Node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Track records n in the arena and returns its creation index.
func (a *Arena) Track(n *Node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// Len returns how many nodes have been tracked.
func (a *Arena) Len() int { return len(a.nodes) }

// At returns the node tracked at index i.
func (a *Arena) At(i int) *Node { return a.nodes[i] }

// Release drops the arena's references to every tracked node. Subtrees
// already pruned are immediately collectible; subtrees still referenced
// by a canonical-leaf path, if any caller kept one, survive independently
// of the arena.
func (a *Arena) Release() {
	a.nodes = nil
}
