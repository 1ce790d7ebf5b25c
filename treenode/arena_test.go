package treenode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphcanon/part"
	"github.com/katalvlaran/graphcanon/treenode"
)

func TestArena_TrackAssignsSequentialIndices(t *testing.T) {
	a := treenode.NewArena()
	root := treenode.NewRoot(part.New(2))
	root.SetChildRefinerCell(0, 2)
	c0 := root.NewChild(0, 0, root.Pi.Clone())
	c1 := root.NewChild(1, 1, root.Pi.Clone())

	assert.Equal(t, 0, a.Track(root))
	assert.Equal(t, 1, a.Track(c0))
	assert.Equal(t, 2, a.Track(c1))
	assert.Equal(t, 3, a.Len())
	assert.Same(t, c0, a.At(1))
}

func TestArena_ReleaseDropsTrackedReferences(t *testing.T) {
	a := treenode.NewArena()
	root := treenode.NewRoot(part.New(1))
	a.Track(root)
	assert.Equal(t, 1, a.Len())

	a.Release()
	assert.Equal(t, 0, a.Len())
}
