package enrich_test

import (
	"fmt"

	"roadconflate/conflate"
	"roadconflate/enrich"
	"roadconflate/geom"
	"roadconflate/graph"
)

// ExampleEnrich splits A's segment (0,1) at a single B-edge's projected
// endpoints and copies the B-edge's speed onto the resulting A-edges.
func ExampleEnrich() {
	aNodes := []graph.Node{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 1, Y: 0}, {ID: 2, X: 2, Y: 0}}
	aEdges := []graph.EdgeSpec{{U: 0, V: 1}, {U: 1, V: 2}}
	a, err := graph.New(aNodes, aEdges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	bNodes := []graph.Node{{ID: 100, X: 0.3, Y: 0.1}, {ID: 101, X: 1.7, Y: 0.1}}
	bEdges := []graph.EdgeSpec{{U: 100, V: 101, HasSpeed: true, Speed: 30}}
	b, err := graph.New(bNodes, bEdges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	results := []conflate.ConflationResult{
		{SegmentAID: [2]graph.NodeID{0, 1}, PointB: 100, PointBOnSegmentA: geom.Point{X: 0.3, Y: 0}},
		{SegmentAID: [2]graph.NodeID{1, 2}, PointB: 101, PointBOnSegmentA: geom.Point{X: 1.7, Y: 0}},
	}

	enriched, errs := enrich.Enrich(a, b, results, enrich.AttributeSpeed)
	fmt.Println("skipped:", len(errs))
	fmt.Println("nodes:", enriched.NumNodes())
	// Output:
	// skipped: 0
	// nodes: 5
}
