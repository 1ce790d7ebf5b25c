// Package graph implements the labeled input graph type canonicalization
// operates on: string-identified vertices backed by a dense, densely
// indexed graphcanon.VIdx numbering, with edges stored both ways so the
// type satisfies ordergraph.Graph[graphcanon.VIdx, Edge] directly.
//
// It is undirected by default (AddEdge mirrors each edge into both
// endpoints' adjacency lists), since every graph canonicalization needs
// so far has been undirected; pass Directed() to opt out.
// Concurrency-safety follows a sync.RWMutex-guarded map convention: reads
// take RLock, mutations take Lock.
package graph
