package ordergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphcanon"
	"github.com/katalvlaran/graphcanon/ordergraph"
)

// edge is a minimal (source, target) descriptor.
type edge struct{ from, to int }

// fixtureGraph is a tiny adjacency-list Graph[int, edge] for exercising View.
type fixtureGraph struct {
	verts []int
	out   map[int][]edge
	in    map[int][]edge
}

func (g *fixtureGraph) NumVertices() int { return len(g.verts) }

func (g *fixtureGraph) NumEdges() int {
	n := 0
	for _, es := range g.out {
		n += len(es)
	}
	return n
}

func (g *fixtureGraph) Vertices() []int       { return g.verts }
func (g *fixtureGraph) OutEdges(v int) []edge { return g.out[v] }
func (g *fixtureGraph) InEdges(v int) []edge  { return g.in[v] }
func (g *fixtureGraph) Source(e edge) int     { return e.from }
func (g *fixtureGraph) Target(e edge) int     { return e.to }
func (g *fixtureGraph) OutDegree(v int) int   { return len(g.out[v]) }
func (g *fixtureGraph) InDegree(v int) int    { return len(g.in[v]) }

// newFixture builds 0 -> {2, 1}, 1 -> {2}, 2 -> {} with vertex set {0,1,2}.
func newFixture() *fixtureGraph {
	g := &fixtureGraph{
		verts: []int{0, 1, 2},
		out:   map[int][]edge{},
		in:    map[int][]edge{},
	}
	add := func(from, to int) {
		e := edge{from, to}
		g.out[from] = append(g.out[from], e)
		g.in[to] = append(g.in[to], e)
	}
	add(0, 2)
	add(0, 1)
	add(1, 2)
	return g
}

func identityIdx(v int) graphcanon.VIdx { return graphcanon.VIdx(v) }

func TestView_OutEdgesSortedByTargetIndex(t *testing.T) {
	g := newFixture()
	view := ordergraph.New[int, edge](g, identityIdx, ordergraph.AlwaysFalse[edge], false)

	out := view.OutEdges(0)
	assert.Len(t, out, 2)
	assert.Equal(t, 1, out[0].to) // target 1 sorts before target 2
	assert.Equal(t, 2, out[1].to)
}

func TestView_AdjacentVerticesMatchesSortedOutEdges(t *testing.T) {
	g := newFixture()
	view := ordergraph.New[int, edge](g, identityIdx, ordergraph.AlwaysFalse[edge], false)

	assert.Equal(t, []int{1, 2}, view.AdjacentVertices(0))
	assert.Equal(t, []int{2}, view.AdjacentVertices(1))
	assert.Equal(t, []int{}, view.AdjacentVertices(2))
}

func TestView_InEdgesRequiresWithInEdges(t *testing.T) {
	g := newFixture()
	view := ordergraph.New[int, edge](g, identityIdx, ordergraph.AlwaysFalse[edge], false)
	assert.False(t, view.HasInEdges())
	assert.Panics(t, func() { view.InEdges(2) })
}

func TestView_InEdgesSortedBySourceIndex(t *testing.T) {
	g := newFixture()
	view := ordergraph.New[int, edge](g, identityIdx, ordergraph.AlwaysFalse[edge], true)

	assert.True(t, view.HasInEdges())
	in := view.InEdges(2)
	assert.Len(t, in, 2)
	assert.Equal(t, 0, in[0].from)
	assert.Equal(t, 1, in[1].from)
	assert.Equal(t, []int{0, 1}, view.InvAdjacentVertices(2))
}

func TestView_VerticesOrderedByIndex(t *testing.T) {
	g := newFixture()
	// reversedIdx flips the index order relative to Vertices() insertion order.
	reversedIdx := func(v int) graphcanon.VIdx { return graphcanon.VIdx(2 - v) }
	view := ordergraph.New[int, edge](g, reversedIdx, ordergraph.AlwaysFalse[edge], false)

	assert.Equal(t, []int{2, 1, 0}, view.Vertices())
}

func TestView_DegreePassesThrough(t *testing.T) {
	g := newFixture()
	view := ordergraph.New[int, edge](g, identityIdx, ordergraph.AlwaysFalse[edge], true)

	assert.Equal(t, 2, view.OutDegree(0))
	assert.Equal(t, 2, view.InDegree(2))
	assert.Equal(t, g.NumEdges(), view.NumEdges())
	assert.Equal(t, g.NumVertices(), view.NumVertices())
}
