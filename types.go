// SPDX-License-Identifier: MIT
// Package: graphcanon
//
// types.go — the three index types shared by every subpackage.
package graphcanon

// VIdx is a vertex index in [0, n), the position-independent identity a
// vertex is given once it has been assigned into the search tree's universe.
// All subpackages operate on VIdx rather than on domain-specific vertex
// identifiers (such as the string ids of package graph); the mapping between
// the two lives in package graph (Graph.VIdx and Graph.VertexID).
type VIdx int

// CIdx is a position in an ordered partition π, in [0, n). Positions, not
// vertices, are what contiguous cells are defined over.
type CIdx int

// LIdx is a local child index in [0, k), where k is the size of the target
// cell of some interior search-tree node. Child i of a node corresponds to
// individualizing the vertex at position (child_refiner_cell + i).
type LIdx int
