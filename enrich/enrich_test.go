package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadconflate/conflate"
	"roadconflate/geom"
	"roadconflate/graph"
)

// straightGraph builds the path 0-1-...-(n-1) at y=0, x=0..n-1.
func straightGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	nodes := make([]graph.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = graph.Node{ID: int64(i), X: float64(i), Y: 0}
	}
	edges := make([]graph.EdgeSpec, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, graph.EdgeSpec{U: int64(i), V: int64(i + 1)})
	}
	g, err := graph.New(nodes, edges)
	require.NoError(t, err)
	return g
}

func TestEnrich_PropagatesSpeedAlongPath(t *testing.T) {
	a := straightGraph(t, 5) // 0-1-2-3-4
	bNodes := []graph.Node{
		{ID: 100, X: 0.5, Y: 0.5},
		{ID: 101, X: 2.5, Y: 0.5},
	}
	bEdges := []graph.EdgeSpec{{U: 100, V: 101, HasSpeed: true, Speed: 42}}
	b, err := graph.New(bNodes, bEdges)
	require.NoError(t, err)

	results := []conflate.ConflationResult{
		{SegmentAID: [2]graph.NodeID{0, 1}, PointB: 100, PointBOnSegmentA: geom.Point{X: 0.5, Y: 0}},
		{SegmentAID: [2]graph.NodeID{2, 3}, PointB: 101, PointBOnSegmentA: geom.Point{X: 2.5, Y: 0}},
	}

	enriched, errs := Enrich(a, b, results, AttributeSpeed)
	assert.Empty(t, errs)
	require.NotNil(t, enriched)

	s1 := steinerID(100)
	s2 := steinerID(101)
	path, err := enriched.ShortestPath(s1, s2)
	require.NoError(t, err)
	require.True(t, len(path) >= 2)

	for i := 0; i+1 < len(path); i++ {
		speed, ok := enriched.Speed(path[i], path[i+1])
		require.True(t, ok)
		assert.Equal(t, 42.0, speed)
	}
}

func TestEnrich_SkipsEdgeMissingResult(t *testing.T) {
	a := straightGraph(t, 5)
	bNodes := []graph.Node{
		{ID: 100, X: 0.5, Y: 0.5},
		{ID: 101, X: 2.5, Y: 0.5},
	}
	bEdges := []graph.EdgeSpec{{U: 100, V: 101, HasSpeed: true, Speed: 10}}
	b, err := graph.New(bNodes, bEdges)
	require.NoError(t, err)

	// Only one endpoint has a ConflationResult; the other is absent, so
	// the edge should be logged and skipped rather than failing the run.
	results := []conflate.ConflationResult{
		{SegmentAID: [2]graph.NodeID{0, 1}, PointB: 100, PointBOnSegmentA: geom.Point{X: 0.5, Y: 0}},
	}

	enriched, errs := Enrich(a, b, results, AttributeSpeed)
	require.Len(t, errs, 1)
	assert.Equal(t, [2]graph.NodeID{100, 101}, errs[0].EdgeB)
	assert.Same(t, a, enriched)
}

func TestEnrich_SkipsUnreachablePath(t *testing.T) {
	// Two disconnected A components; Steiner nodes land on separate
	// components, so no shortest path connects them.
	aNodes := []graph.Node{
		{ID: 0, X: 0, Y: 0}, {ID: 1, X: 1, Y: 0},
		{ID: 10, X: 10, Y: 10}, {ID: 11, X: 11, Y: 10},
	}
	aEdges := []graph.EdgeSpec{{U: 0, V: 1}, {U: 10, V: 11}}
	a, err := graph.New(aNodes, aEdges)
	require.NoError(t, err)

	bNodes := []graph.Node{{ID: 100, X: 0.5, Y: 0.5}, {ID: 101, X: 10.5, Y: 10.5}}
	bEdges := []graph.EdgeSpec{{U: 100, V: 101, HasSpeed: true, Speed: 5}}
	b, err := graph.New(bNodes, bEdges)
	require.NoError(t, err)

	results := []conflate.ConflationResult{
		{SegmentAID: [2]graph.NodeID{0, 1}, PointB: 100, PointBOnSegmentA: geom.Point{X: 0.5, Y: 0}},
		{SegmentAID: [2]graph.NodeID{10, 11}, PointB: 101, PointBOnSegmentA: geom.Point{X: 10.5, Y: 10}},
	}

	_, errs := Enrich(a, b, results, AttributeSpeed)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Reason, "no shortest path")
}

func TestEnrich_IdempotentSteinerInsertion(t *testing.T) {
	a := straightGraph(t, 5)
	bNodes := []graph.Node{{ID: 100, X: 0.5, Y: 0.5}, {ID: 101, X: 2.5, Y: 0.5}}
	bEdges := []graph.EdgeSpec{{U: 100, V: 101, HasSpeed: true, Speed: 7}}
	b, err := graph.New(bNodes, bEdges)
	require.NoError(t, err)

	results := []conflate.ConflationResult{
		{SegmentAID: [2]graph.NodeID{0, 1}, PointB: 100, PointBOnSegmentA: geom.Point{X: 0.5, Y: 0}},
		{SegmentAID: [2]graph.NodeID{2, 3}, PointB: 101, PointBOnSegmentA: geom.Point{X: 2.5, Y: 0}},
	}

	first, errs := Enrich(a, b, results, AttributeSpeed)
	require.Empty(t, errs)
	second, errs := Enrich(first, b, results, AttributeSpeed)
	require.Empty(t, errs)

	assert.Equal(t, first.NumNodes(), second.NumNodes())
	assert.Equal(t, first.NumEdges(), second.NumEdges())
}

func TestEnrich_PropagatesExtras(t *testing.T) {
	a := straightGraph(t, 3)
	bNodes := []graph.Node{{ID: 100, X: 0.2, Y: 0.1}, {ID: 101, X: 1.8, Y: 0.1}}
	bEdges := []graph.EdgeSpec{{U: 100, V: 101, Extras: []byte("residential")}}
	b, err := graph.New(bNodes, bEdges)
	require.NoError(t, err)

	results := []conflate.ConflationResult{
		{SegmentAID: [2]graph.NodeID{0, 1}, PointB: 100, PointBOnSegmentA: geom.Point{X: 0.2, Y: 0}},
		{SegmentAID: [2]graph.NodeID{1, 2}, PointB: 101, PointBOnSegmentA: geom.Point{X: 1.8, Y: 0}},
	}

	enriched, errs := Enrich(a, b, results, AttributeExtras)
	assert.Empty(t, errs)

	s1, s2 := steinerID(100), steinerID(101)
	path, err := enriched.ShortestPath(s1, s2)
	require.NoError(t, err)
	for i := 0; i+1 < len(path); i++ {
		extras, ok := enriched.Extras(path[i], path[i+1])
		require.True(t, ok)
		assert.Equal(t, []byte("residential"), extras)
	}
}
