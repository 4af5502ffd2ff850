package graph

import "fmt"

// ErrRelabelConflict is returned by Relabel when the supplied mapping
// would collapse two distinct nodes onto the same new ID.
var ErrRelabelConflict = fmt.Errorf("graph: relabel mapping is not injective")

// Relabel returns a new Graph with every node ID replaced according to
// mapping. Nodes absent from mapping keep their original ID. This mirrors
// the original Python pipeline's nodes_and_edges_to_int preprocessing step,
// which coerces heterogeneous node identifiers into a dense integer space
// before trajectory generation runs.
//
// Complexity: O(V + E).
func (g *Graph) Relabel(mapping map[NodeID]NodeID) (*Graph, error) {
	newIDs := make(map[NodeID]struct{}, len(g.ids))
	nodes := make([]Node, len(g.ids))
	idFor := make(map[NodeID]NodeID, len(g.ids))

	for i, id := range g.ids {
		newID := id
		if mapped, ok := mapping[id]; ok {
			newID = mapped
		}
		if _, dup := newIDs[newID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrRelabelConflict, newID)
		}
		newIDs[newID] = struct{}{}
		idFor[id] = newID
		nodes[i] = Node{ID: newID, X: g.xy[i].X, Y: g.xy[i].Y}
	}

	edges := make([]EdgeSpec, len(g.edgeU))
	for i := range g.edgeU {
		edges[i] = EdgeSpec{
			U:        idFor[g.edgeU[i]],
			V:        idFor[g.edgeV[i]],
			HasSpeed: g.edgeHasSpeed[i],
			Speed:    g.edgeSpeed[i],
			Extras:   g.edgeExtras[i],
		}
	}

	return New(nodes, edges)
}
