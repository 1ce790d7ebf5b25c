package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcanon"
	"github.com/katalvlaran/graphcanon/canon"
	"github.com/katalvlaran/graphcanon/graph"
)

func TestCanonicalize_EmptyGraphReturnsErrEmptyGraph(t *testing.T) {
	g := graph.New()
	_, _, err := canon.Canonicalize(g)
	assert.ErrorIs(t, err, graphcanon.ErrEmptyGraph)
}

func TestCanonicalize_TwoNodeOneEdge(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b", 0))

	lab, _, err := canon.Canonicalize(g)
	require.NoError(t, err)
	assert.Len(t, lab, 2)
	assert.ElementsMatch(t, []graphcanon.VIdx{0, 1}, lab)
}

func buildK4(t *testing.T) *graph.Graph {
	g := graph.New()
	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			require.NoError(t, g.AddEdge(ids[i], ids[j], 0))
		}
	}
	return g
}

func TestCanonicalize_K4FindsNontrivialAutomorphisms(t *testing.T) {
	g := buildK4(t)
	lab, gens, err := canon.Canonicalize(g)
	require.NoError(t, err)
	assert.Len(t, lab, 4)
	assert.NotEmpty(t, gens, "K4's automorphism group has order 24; the search must discover at least one generator")
}

// buildAsymmetricSpider builds a 7-vertex tree with three legs of distinct
// length (1, 2, 3) from a common center — the standard smallest-asymmetric
// tree shape, since legs of unequal length admit no nontrivial symmetry.
func buildAsymmetricSpider(t *testing.T) *graph.Graph {
	g := graph.New()
	ids := []string{"center", "a1", "b1", "b2", "c1", "c2", "c3"}
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
	}
	edges := [][2]string{
		{"center", "a1"},
		{"center", "b1"}, {"b1", "b2"},
		{"center", "c1"}, {"c1", "c2"}, {"c2", "c3"},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}
	return g
}

func TestCanonicalize_AsymmetricTreeFindsNoAutomorphisms(t *testing.T) {
	g := buildAsymmetricSpider(t)
	lab, gens, err := canon.Canonicalize(g)
	require.NoError(t, err)
	assert.Len(t, lab, 7)
	assert.Empty(t, gens, "a spider with three distinct-length legs has a trivial automorphism group")
}

func TestCanonicalize_DisjointTwoTriangles(t *testing.T) {
	g := graph.New()
	ids := []string{"a1", "a2", "a3", "b1", "b2", "b3"}
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("a1", "a2", 0))
	require.NoError(t, g.AddEdge("a2", "a3", 0))
	require.NoError(t, g.AddEdge("a1", "a3", 0))
	require.NoError(t, g.AddEdge("b1", "b2", 0))
	require.NoError(t, g.AddEdge("b2", "b3", 0))
	require.NoError(t, g.AddEdge("b1", "b3", 0))

	lab, gens, err := canon.Canonicalize(g)
	require.NoError(t, err)
	assert.Len(t, lab, 6)
	assert.NotEmpty(t, gens, "the two triangles are interchangeable, so at least one generator must witness that")
}
