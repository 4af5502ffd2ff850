package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathGraph(t *testing.T, n int) *Graph {
	t.Helper()
	nodes := make([]Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = Node{ID: int64(i), X: float64(i), Y: 0}
	}
	edges := make([]EdgeSpec, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, EdgeSpec{U: int64(i), V: int64(i + 1)})
	}
	g, err := New(nodes, edges)
	require.NoError(t, err)
	return g
}

func TestNew_Basic(t *testing.T) {
	g := pathGraph(t, 5)
	assert.Equal(t, 5, g.NumNodes())
	assert.Equal(t, 4, g.NumEdges())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(0, 2))
}

func TestNew_RejectsEmptyNodes(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyNodeSet)
}

func TestNew_RejectsDuplicateNode(t *testing.T) {
	_, err := New([]Node{{ID: 1}, {ID: 1}}, nil)
	assert.ErrorIs(t, err, ErrDuplicateNode)
}

func TestNew_RejectsSelfLoop(t *testing.T) {
	_, err := New([]Node{{ID: 1}}, []EdgeSpec{{U: 1, V: 1}})
	assert.ErrorIs(t, err, ErrSelfLoop)
}

func TestNew_RejectsUnknownEndpoint(t *testing.T) {
	_, err := New([]Node{{ID: 1}, {ID: 2}}, []EdgeSpec{{U: 1, V: 3}})
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestNew_RejectsDuplicateEdge(t *testing.T) {
	_, err := New([]Node{{ID: 1}, {ID: 2}}, []EdgeSpec{{U: 1, V: 2}, {U: 2, V: 1}})
	assert.ErrorIs(t, err, ErrDuplicateEdge)
}

func TestNeighborIDs_SortedUnique(t *testing.T) {
	g := pathGraph(t, 5)
	nbrs, err := g.NeighborIDs(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, nbrs)
}

func TestNodeXY(t *testing.T) {
	g := pathGraph(t, 3)
	x, y, err := g.NodeXY(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)

	_, _, err = g.NodeXY(99)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestSpeedAttribute(t *testing.T) {
	nodes := []Node{{ID: 1}, {ID: 2}}
	edges := []EdgeSpec{{U: 1, V: 2, HasSpeed: true, Speed: 42}}
	g, err := New(nodes, edges)
	require.NoError(t, err)

	speed, ok := g.Speed(1, 2)
	assert.True(t, ok)
	assert.Equal(t, 42.0, speed)

	speed, ok = g.Speed(2, 1)
	assert.True(t, ok)
	assert.Equal(t, 42.0, speed)
}
