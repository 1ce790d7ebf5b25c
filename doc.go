// Package graphcanon computes a canonical form of a finite labeled graph,
// together with a generating set of its automorphism group, using an
// individualization-refinement backtracking search.
//
// 🚀 What is graphcanon?
//
//	A pure-Go, single-threaded canonicalization engine that brings together:
//		• graph:     labeled input graphs (vertices, edges, weights, directedness)
//		• ordergraph: a read-only view imposing canonical neighbor iteration order
//		• part:      ordered partitions (the "π" of the search)
//		• treenode:  the individualization-refinement search-tree arena
//		• group:     an accumulating permutation-group adapter
//		• pruner:    the automorphism-based subtree pruning engine
//		• refine:    equitable partition refinement and target-cell selection
//		• canon:     the search driver tying all of the above together
//
// ✨ Why graphcanon?
//
//   - Deterministic — canonical output depends only on the isomorphism class
//   - Pure Go — no cgo; the library packages use only the standard library
//     (testify is used by the tests, cobra and charmbracelet/log by cmd/graphcanon)
//   - Orbit-aware — discovered automorphisms prune entire redundant subtrees
//
// Quick example:
//
//	g := graph.New()
//	g.AddVertex("a")
//	g.AddVertex("b")
//	g.AddEdge("a", "b", 0)
//	lab, gens, err := canon.Canonicalize(g)
//
// See canon.Canonicalize for the single public entry point, and pruner.Engine
// for the core subtree-pruning logic this module is built around.
package graphcanon
