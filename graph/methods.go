package graph

import (
	"fmt"
	"sort"
)

// NumNodes returns the number of nodes in g.
func (g *Graph) NumNodes() int { return len(g.ids) }

// NumEdges returns the number of edges in g.
func (g *Graph) NumEdges() int { return len(g.edgeU) }

// Nodes returns every node ID in g, in construction order.
//
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.ids))
	copy(out, g.ids)
	return out
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.index[id]
	return ok
}

// NodeXY returns the (x, y) position of id.
func (g *Graph) NodeXY(id NodeID) (x, y float64, err error) {
	i, ok := g.index[id]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	p := g.xy[i]
	return p.X, p.Y, nil
}

// HasEdge reports whether u and v are directly connected, in either order.
//
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v NodeID) bool {
	ui, ok := g.index[u]
	if !ok {
		return false
	}
	vi, ok := g.index[v]
	if !ok {
		return false
	}
	for k := g.adjStart[ui]; k < g.adjStart[ui+1]; k++ {
		if g.adjTo[k] == int32(vi) {
			return true
		}
	}
	return false
}

// NeighborIDs returns the node IDs adjacent to id, sorted ascending.
//
// Complexity: O(deg(id) log deg(id)).
func (g *Graph) NeighborIDs(id NodeID) ([]NodeID, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	start, end := g.adjStart[i], g.adjStart[i+1]
	out := make([]NodeID, 0, end-start)
	for k := start; k < end; k++ {
		out = append(out, g.ids[g.adjTo[k]])
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id NodeID) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return int(g.adjStart[i+1] - g.adjStart[i]), nil
}

// Edges returns every edge in g, each as a materialized Edge.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edgeU))
	for i := range g.edgeU {
		out[i] = Edge{
			U:        g.edgeU[i],
			V:        g.edgeV[i],
			HasSpeed: g.edgeHasSpeed[i],
			Speed:    g.edgeSpeed[i],
			Extras:   g.edgeExtras[i],
		}
	}
	return out
}

// edgeIndex returns the internal edge index for the unordered pair (u, v),
// or -1 if they are not adjacent.
func (g *Graph) edgeIndex(u, v NodeID) int {
	ui, ok := g.index[u]
	if !ok {
		return -1
	}
	vi, ok := g.index[v]
	if !ok {
		return -1
	}
	for k := g.adjStart[ui]; k < g.adjStart[ui+1]; k++ {
		if g.adjTo[k] == int32(vi) {
			return int(g.adjEdge[k])
		}
	}
	return -1
}

// Speed returns the speed attribute of the edge between u and v, if any.
func (g *Graph) Speed(u, v NodeID) (speed float64, ok bool) {
	ei := g.edgeIndex(u, v)
	if ei < 0 || !g.edgeHasSpeed[ei] {
		return 0, false
	}
	return g.edgeSpeed[ei], true
}

// Extras returns the opaque attribute bytes of the edge between u and v, if any.
func (g *Graph) Extras(u, v NodeID) ([]byte, bool) {
	ei := g.edgeIndex(u, v)
	if ei < 0 {
		return nil, false
	}
	return g.edgeExtras[ei], true
}
