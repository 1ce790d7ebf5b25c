// Package pruner implements automorphism-based subtree pruning over a
// search tree of treenode.Node values: storing each newly discovered
// automorphism with a group.Adapter, pruning the path
// between a leaf and the running canonical leaf by lowest common
// ancestor, and, at every non-leaf, non-pruned node whose stabilizer
// generators have grown, merging provably-equivalent children via a
// priority-ordered disjoint-set over local child indices.
//
// It is ported from original_source/include/graph_canon/aut/pruner_base.hpp's
// aut_pruner_base, with the CRTP derived-class hooks (add_automorphism,
// need_update, update) replaced by the group.Adapter interface, and the
// commented-out "moved points" optimization left out in favor of the
// always-on full-cell scan the original's mainline code path already
// performs.
package pruner
