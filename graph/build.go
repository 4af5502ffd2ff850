package graph

import "fmt"

// Graph is the immutable geometric graph substrate. Construct with New;
// there is no in-place mutation API — SplitEdge and Relabel return a new
// Graph.
type Graph struct {
	// ids[i] is the node ID stored at internal index i; index[id] is the
	// inverse mapping. xy[i] is the position of ids[i].
	ids   []NodeID
	index map[NodeID]int
	xy    []Point

	// edgeU/edgeV/edgeSpeed/edgeHasSpeed/edgeExtras are parallel, indexed
	// by edge index (stable within one Graph instance).
	edgeU, edgeV []NodeID
	edgeHasSpeed []bool
	edgeSpeed    []float64
	edgeExtras   [][]byte

	// CSR adjacency: node index i's neighbors are
	// adjTo[adjStart[i]:adjStart[i+1]], with adjEdge the matching edge index.
	adjStart []int32
	adjTo    []int32
	adjEdge  []int32
}

// Point is a local alias of geom.Point's shape to avoid an import cycle
// concern; kept structurally identical so callers can convert trivially.
type Point struct{ X, Y float64 }

// New constructs a Graph from an explicit node and edge list. It validates
// that node IDs are unique (ErrDuplicateNode), that every edge references
// known, distinct nodes (ErrNodeNotFound, ErrSelfLoop), and that no
// unordered pair is repeated (ErrDuplicateEdge).
//
// Complexity: O(V + E) to validate and build the CSR adjacency index.
func New(nodes []Node, edges []EdgeSpec) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyNodeSet
	}

	g := &Graph{
		ids:   make([]NodeID, len(nodes)),
		index: make(map[NodeID]int, len(nodes)),
		xy:    make([]Point, len(nodes)),
	}
	for i, n := range nodes {
		if _, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID)
		}
		g.index[n.ID] = i
		g.ids[i] = n.ID
		g.xy[i] = Point{X: n.X, Y: n.Y}
	}

	seenPairs := make(map[[2]NodeID]struct{}, len(edges))
	g.edgeU = make([]NodeID, 0, len(edges))
	g.edgeV = make([]NodeID, 0, len(edges))
	g.edgeHasSpeed = make([]bool, 0, len(edges))
	g.edgeSpeed = make([]float64, 0, len(edges))
	g.edgeExtras = make([][]byte, 0, len(edges))

	degree := make([]int32, len(nodes))
	for _, e := range edges {
		if e.U == e.V {
			return nil, fmt.Errorf("%w: node %d", ErrSelfLoop, e.U)
		}
		ui, ok := g.index[e.U]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, e.U)
		}
		vi, ok := g.index[e.V]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, e.V)
		}
		key := canonicalPair(e.U, e.V)
		if _, dup := seenPairs[key]; dup {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrDuplicateEdge, e.U, e.V)
		}
		seenPairs[key] = struct{}{}

		g.edgeU = append(g.edgeU, e.U)
		g.edgeV = append(g.edgeV, e.V)
		g.edgeHasSpeed = append(g.edgeHasSpeed, e.HasSpeed)
		g.edgeSpeed = append(g.edgeSpeed, e.Speed)
		g.edgeExtras = append(g.edgeExtras, e.Extras)

		degree[ui]++
		degree[vi]++
	}

	g.buildAdjacency(degree)

	return g, nil
}

// canonicalPair returns an unordered-pair key regardless of argument order.
func canonicalPair(a, b NodeID) [2]NodeID {
	if a < b {
		return [2]NodeID{a, b}
	}
	return [2]NodeID{b, a}
}

// buildAdjacency fills the CSR adjacency index from the already-validated
// edge lists and per-node degree counts, via the standard two-pass
// counting-sort construction: a prefix sum over degree gives row starts,
// then a second pass drops each edge's two entries into place.
func (g *Graph) buildAdjacency(degree []int32) {
	n := len(g.ids)
	g.adjStart = make([]int32, n+1)
	for i := 0; i < n; i++ {
		g.adjStart[i+1] = g.adjStart[i] + degree[i]
	}
	total := g.adjStart[n]
	g.adjTo = make([]int32, total)
	g.adjEdge = make([]int32, total)

	cursor := make([]int32, n)
	copy(cursor, g.adjStart[:n])

	for ei := range g.edgeU {
		ui := int32(g.index[g.edgeU[ei]])
		vi := int32(g.index[g.edgeV[ei]])

		g.adjTo[cursor[ui]] = vi
		g.adjEdge[cursor[ui]] = int32(ei)
		cursor[ui]++

		g.adjTo[cursor[vi]] = ui
		g.adjEdge[cursor[vi]] = int32(ei)
		cursor[vi]++
	}
}
