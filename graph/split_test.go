package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEdge_InsertsSteinerNode(t *testing.T) {
	g := pathGraph(t, 3) // 0 - 1 - 2

	g2, err := g.SplitEdge(0, 1, 100, 0.5, 0)
	require.NoError(t, err)

	assert.True(t, g2.HasNode(100))
	assert.False(t, g2.HasEdge(0, 1))
	assert.True(t, g2.HasEdge(0, 100))
	assert.True(t, g2.HasEdge(100, 1))
	assert.Equal(t, g.NumNodes(), 3, "original graph must be untouched")
	assert.Equal(t, 4, g2.NumNodes())
}

func TestSplitEdge_IdempotentOnExistingNode(t *testing.T) {
	g := pathGraph(t, 3)
	g2, err := g.SplitEdge(0, 1, 1, 0.5, 0)
	require.NoError(t, err)
	assert.Same(t, g, g2)
}

func TestSplitEdge_ViaShortestPathWhenNotDirectlyAdjacent(t *testing.T) {
	g := pathGraph(t, 3) // 0 - 1 - 2
	g2, err := g.SplitEdge(0, 1, 100, 0.5, 0)
	require.NoError(t, err)

	// Now split "0,1" again conceptually via the already-split path: a
	// second Steiner node placed near x=0.75 should land on the (100, 1)
	// half rather than erroring, since SplitEdge walks the shortest path.
	g3, err := g2.SplitEdge(0, 1, 101, 0.75, 0)
	require.NoError(t, err)
	assert.True(t, g3.HasNode(101))
	assert.True(t, g3.HasEdge(100, 101))
	assert.True(t, g3.HasEdge(101, 1))
}

func TestSetSpeed(t *testing.T) {
	g := pathGraph(t, 2)
	g2, err := g.SetSpeed(0, 1, 50)
	require.NoError(t, err)
	speed, ok := g2.Speed(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 50.0, speed)
}
