package match

import (
	"container/heap"

	"roadconflate/geom"
	"roadconflate/graph"
)

// planarEdge is one directed traversal of a B-edge in the matcher's local
// metric copy: from node index `from` to node index `to`, with its
// projected endpoints and length in metres. Each undirected B-edge
// contributes two planarEdges, one per orientation, since candidate
// lookups and transition scoring need to distinguish direction of travel.
type planarEdge struct {
	from, to   int32
	a, b       geom.Point // a = endpoint at `from`, b = endpoint at `to`
	length     float64
	bFrom, bTo graph.NodeID
}

// planarGraph is the map matcher's private, read-only, metrically
// projected copy of B: node positions in local planar metres plus the
// directed edge list above. It is built once per MatchTrajectories call
// and shared read-only across workers.
type planarGraph struct {
	ids      []graph.NodeID
	index    map[graph.NodeID]int32
	points   []geom.Point // metres, indexed like ids
	edges    []planarEdge
	adjStart []int32 // CSR over `edges`, keyed by `from` node index
	adjEdge  []int32

	proj geom.Equirect
}

// projectLonLat converts a WGS84 (lon, lat) pair into this matcher's local
// planar metric frame, the same frame b's nodes were projected into.
func (pg *planarGraph) projectLonLat(p geom.Point) geom.Point {
	return pg.proj.Project(p.X, p.Y)
}

// buildPlanarGraph projects every node of b into local planar metres via an
// equirectangular projection centred on b's centroid, then materializes
// both directed traversals of every edge.
func buildPlanarGraph(b *graph.Graph) *planarGraph {
	ids := b.Nodes()
	var sumLon, sumLat float64
	lonlat := make([]geom.Point, len(ids))
	for i, id := range ids {
		x, y, _ := b.NodeXY(id)
		lonlat[i] = geom.Point{X: x, Y: y}
		sumLon += x
		sumLat += y
	}
	n := len(ids)
	refLon, refLat := 0.0, 0.0
	if n > 0 {
		refLon, refLat = sumLon/float64(n), sumLat/float64(n)
	}
	proj := geom.NewEquirect(refLon, refLat)

	pg := &planarGraph{
		ids:    ids,
		index:  make(map[graph.NodeID]int32, n),
		points: make([]geom.Point, n),
		proj:   proj,
	}
	for i, id := range ids {
		pg.index[id] = int32(i)
		pg.points[i] = proj.Project(lonlat[i].X, lonlat[i].Y)
	}

	degree := make([]int32, n)
	for _, e := range b.Edges() {
		ui, vi := pg.index[e.U], pg.index[e.V]
		degree[ui]++
		degree[vi]++
	}
	pg.adjStart = make([]int32, n+1)
	for i := 0; i < n; i++ {
		pg.adjStart[i+1] = pg.adjStart[i] + degree[i]
	}
	total := pg.adjStart[n]
	pg.edges = make([]planarEdge, 0, total)
	pg.adjEdge = make([]int32, total)
	cursor := make([]int32, n)
	copy(cursor, pg.adjStart[:n])

	for _, e := range b.Edges() {
		ui, vi := pg.index[e.U], pg.index[e.V]
		pu, pv := pg.points[ui], pg.points[vi]
		length := geom.Dist(pu, pv)

		fwdIdx := int32(len(pg.edges))
		pg.edges = append(pg.edges, planarEdge{from: ui, to: vi, a: pu, b: pv, length: length, bFrom: e.U, bTo: e.V})
		pg.adjEdge[cursor[ui]] = fwdIdx
		cursor[ui]++

		revIdx := int32(len(pg.edges))
		pg.edges = append(pg.edges, planarEdge{from: vi, to: ui, a: pv, b: pu, length: length, bFrom: e.V, bTo: e.U})
		pg.adjEdge[cursor[vi]] = revIdx
		cursor[vi]++
	}

	return pg
}

// dijkstraFrom returns shortest-path distances in metres from node index
// src to every other node index, using the planar edge lengths as weights.
// This is a matcher-local, weighted shortest path, distinct from package
// graph's unweighted BFS ShortestPath: transition scoring needs metric
// distance, whereas graph.ShortestPath's fewest-edges notion is what the
// trajectory generator, conflater, and enricher need instead.
//
// Complexity: O((V+E) log V) via a binary heap.
func (pg *planarGraph) dijkstraFrom(src int32) []float64 {
	dist := make([]float64, len(pg.ids))
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0

	pq := &distHeap{{node: src, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		if dist[item.node] >= 0 && item.dist > dist[item.node] {
			continue
		}
		for k := pg.adjStart[item.node]; k < pg.adjStart[item.node+1]; k++ {
			e := pg.edges[pg.adjEdge[k]]
			nd := item.dist + e.length
			if dist[e.to] < 0 || nd < dist[e.to] {
				dist[e.to] = nd
				heap.Push(pq, distItem{node: e.to, dist: nd})
			}
		}
	}
	return dist
}

type distItem struct {
	node int32
	dist float64
}

type distHeap []distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
