package graph

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/graphcanon"
)

// Edge is a directed arc between two dense vertex indices, carrying an
// optional integer weight. Canonicalization itself is purely structural
// and ignores Weight; it is retained so the type can round-trip a
// weighted input format without losing data.
type Edge struct {
	From, To graphcanon.VIdx
	Weight   int64
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// Directed marks the graph as directed: AddEdge no longer mirrors an edge
// into the reverse direction.
func Directed() Option {
	return func(g *Graph) { g.directed = true }
}

// Graph is a mutable, concurrency-safe labeled graph with string vertex
// identifiers, backed by a dense 0..n-1 index assigned in insertion order.
type Graph struct {
	mu       sync.RWMutex
	directed bool
	ids      []string
	index    map[string]graphcanon.VIdx
	outAdj   [][]Edge
	inAdj    [][]Edge
}

// New returns an empty, undirected graph, or a directed one if Directed()
// is supplied.
func New(opts ...Option) *Graph {
	g := &Graph{index: make(map[string]graphcanon.VIdx)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddVertex adds a new vertex identified by id, assigning it the next
// dense index. Returns ErrDuplicateVertex if id is already present.
func (g *Graph) AddVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	v := graphcanon.VIdx(len(g.ids))
	g.index[id] = v
	g.ids = append(g.ids, id)
	g.outAdj = append(g.outAdj, nil)
	g.inAdj = append(g.inAdj, nil)
	return nil
}

// AddEdge adds an edge from "from" to "to" with the given weight. Both
// endpoints must already exist. In an undirected graph (the default), the
// reverse edge is mirrored automatically unless from == to.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	vf, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, from)
	}
	vt, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, to)
	}

	e := Edge{From: vf, To: vt, Weight: weight}
	g.outAdj[vf] = append(g.outAdj[vf], e)
	g.inAdj[vt] = append(g.inAdj[vt], e)
	if !g.directed && vf != vt {
		r := Edge{From: vt, To: vf, Weight: weight}
		g.outAdj[vt] = append(g.outAdj[vt], r)
		g.inAdj[vf] = append(g.inAdj[vf], r)
	}
	return nil
}

// NumVertices returns the number of vertices added so far.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.ids)
}

// NumEdges returns the number of edges, counting each undirected edge once.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, loops := 0, 0
	for _, es := range g.outAdj {
		n += len(es)
		for _, e := range es {
			if e.From == e.To {
				loops++
			}
		}
	}
	if !g.directed {
		return (n + loops) / 2
	}
	return n
}

// Vertices returns every vertex in insertion (and index) order.
func (g *Graph) Vertices() []graphcanon.VIdx {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]graphcanon.VIdx, len(g.ids))
	for i := range g.ids {
		out[i] = graphcanon.VIdx(i)
	}
	return out
}

// OutEdges returns v's out-edges, in insertion order.
func (g *Graph) OutEdges(v graphcanon.VIdx) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.outAdj[v]
}

// InEdges returns v's in-edges, in insertion order.
func (g *Graph) InEdges(v graphcanon.VIdx) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inAdj[v]
}

// Source returns e's source vertex.
func (g *Graph) Source(e Edge) graphcanon.VIdx { return e.From }

// Target returns e's target vertex.
func (g *Graph) Target(e Edge) graphcanon.VIdx { return e.To }

// OutDegree returns the number of v's out-edges.
func (g *Graph) OutDegree(v graphcanon.VIdx) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.outAdj[v])
}

// InDegree returns the number of v's in-edges.
func (g *Graph) InDegree(v graphcanon.VIdx) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.inAdj[v])
}

// VertexID returns the string identifier originally given to v.
func (g *Graph) VertexID(v graphcanon.VIdx) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ids[v]
}

// VIdx returns the dense index assigned to id, and whether id exists.
func (g *Graph) VIdx(id string) (graphcanon.VIdx, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.index[id]
	return v, ok
}
