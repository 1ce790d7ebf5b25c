// Package canon is the search driver: it ties graph, ordergraph, part,
// treenode, refine, group, and pruner together into a single entry
// point, Canonicalize, that runs the individualization-refinement
// backtracking search to completion and returns a canonical labeling
// plus every automorphism generator discovered along the way.
//
// The election rule between competing leaves is lexicographic comparison
// of each leaf's induced adjacency matrix, read in that leaf's vertex
// order: the leaf with the lexicographically smallest matrix wins. Two
// leaves with an identical matrix are automorphic, and the permutation
// carrying one leaf's order onto the other's is reported to the pruner as
// a newly discovered automorphism.
package canon
