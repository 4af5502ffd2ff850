package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectedComponents_TwoIslands(t *testing.T) {
	nodes := []Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	edges := []EdgeSpec{{U: 1, V: 2}, {U: 2, V: 3}, {U: 4, V: 5}}
	g, err := New(nodes, edges)
	require.NoError(t, err)

	comps := g.ConnectedComponents()
	assert.Len(t, comps, 2)

	assert.False(t, g.IsConnected())
	largest := g.LargestComponent()
	assert.Len(t, largest, 3)
}

func TestConnectedComponents_SingleComponent(t *testing.T) {
	g := pathGraph(t, 6)
	assert.True(t, g.IsConnected())
	assert.Len(t, g.LargestComponent(), 6)
}
