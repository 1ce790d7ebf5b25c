// Package ordergraph implements the ordered neighbor view: a read-only
// adaptor over an underlying graph in which every iteration order over
// vertices, out-edges, and (optionally) in-edges is fully determined by a
// supplied vertex index map, with a tie-breaker predicate ordering
// parallel edges.
//
// It is generic over the vertex/edge descriptor types (View[V, E]) because
// the underlying standard directed/bidirectional graph abstraction —
// akin to Boost.Graph's VertexListGraph/IncidenceGraph concepts — is
// itself type-parameterized; Go generics are the idiomatic way to carry
// that without resorting to interface{} or code generation.
package ordergraph
