package match

import (
	"math"

	"github.com/tidwall/rtree"

	"roadconflate/geom"
)

// candidateIndex is a bounding-box spatial index over a planarGraph's
// directed edges, letting candidateStates query nearby edges in roughly
// O(log E + k) instead of the O(E) per-observation scan a naive
// implementation would need. Grounded on the azybler-map_router reference
// project's use of github.com/tidwall/rtree for edge lookup (see
// DESIGN.md).
type candidateIndex struct {
	pg  *planarGraph
	idx rtree.RTree
}

// buildCandidateIndex inserts every directed edge's bounding box into the
// index, keyed by its position in pg.edges.
func buildCandidateIndex(pg *planarGraph) *candidateIndex {
	ci := &candidateIndex{pg: pg}
	for i, e := range pg.edges {
		minX, maxX := e.a.X, e.b.X
		if minX > maxX {
			minX, maxX = maxX, minX
		}
		minY, maxY := e.a.Y, e.b.Y
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		ci.idx.Insert([2]float64{minX, minY}, [2]float64{maxX, maxY}, i)
	}
	return ci
}

// candidateState is one lattice state: a directed edge and the projection
// of the query point onto it.
type candidateState struct {
	edgeIdx int32
	proj    geom.Point
	perpD   float64
	t       float64 // parametric position of proj along [a, b], in [0, 1]
}

// query returns every directed edge within radius (metres, perpendicular
// clamped distance) of p.
func (ci *candidateIndex) query(p geom.Point, radius float64) []candidateState {
	min := [2]float64{p.X - radius, p.Y - radius}
	max := [2]float64{p.X + radius, p.Y + radius}

	var out []candidateState
	ci.idx.Search(min, max, func(emin, emax [2]float64, value interface{}) bool {
		ei := value.(int)
		e := ci.pg.edges[ei]
		proj, d := geom.ProjectClamped(p, e.a, e.b)
		if d <= radius {
			t := 0.0
			if e.length > 0 {
				t = geom.Dist(e.a, proj) / e.length
				t = math.Max(0, math.Min(1, t))
			}
			out = append(out, candidateState{edgeIdx: int32(ei), proj: proj, perpD: d, t: t})
		}
		return true
	})
	return out
}
