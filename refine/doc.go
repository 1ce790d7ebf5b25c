// Package refine implements the two collaborators a canonicalization
// search needs beyond the pruner itself: equitable partition refinement
// and a target-cell (refiner cell) selector.
//
// Refinement here is a minimal degree/color-signature pass: repeatedly use
// every current cell as a splitter, re-partitioning every other cell by
// each vertex's neighbor count within the splitter, until a fixpoint is
// reached. It is not a full 1-dimensional Weisfeiler-Leman implementation
// (no splitter queue, no refinement against edge labels). It leaves
// vertex-transitive cells (such as all of K3) unsplit; the search splits
// those by individualization.
package refine
