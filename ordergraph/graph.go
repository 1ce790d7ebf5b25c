package ordergraph

import "github.com/katalvlaran/graphcanon"

// Graph is the minimal graph abstraction ordergraph.View adapts: a vertex
// list, out-edges (and, optionally, in-edges) per vertex, and edge
// endpoint/degree accessors. It mirrors the VertexListGraph +
// IncidenceGraph (+ BidirectionalGraph, when in-edges are used) concepts
// from the Boost.Graph-based original.
type Graph[V comparable, E any] interface {
	NumVertices() int
	NumEdges() int
	Vertices() []V
	OutEdges(v V) []E
	InEdges(v V) []E
	Source(e E) V
	Target(e E) V
	OutDegree(v V) int
	InDegree(v V) int
}

// IndexMap assigns each vertex its position in [0, n); it must be
// injective over the graph's vertex set. That is the caller's
// responsibility to establish — View does not re-validate it.
type IndexMap[V comparable] func(v V) graphcanon.VIdx

// EdgeLess breaks ties among parallel edges sharing the same neighbor.
type EdgeLess[E any] func(a, b E) bool

// AlwaysFalse is the EdgeLess to use for simple graphs with no parallel
// edges, mirroring the original's documented "give always_false() for
// simple graphs" hint.
func AlwaysFalse[E any](E, E) bool { return false }
