package enrich

import (
	"roadconflate/conflate"
	"roadconflate/graph"
)

// steinerIDOffset separates Steiner node IDs inserted by Enrich from A's
// own node ID space: since NodeID is a uniform int64 rather than a
// mixed-type key, Enrich offsets B's node ID by a constant chosen far
// above any realistic node count, guaranteeing a Steiner ID can never
// collide with one of A's own nodes.
const steinerIDOffset graph.NodeID = 1 << 48

func steinerID(pointB graph.NodeID) graph.NodeID {
	return steinerIDOffset + pointB
}

// Enrich propagates an edge attribute from graph B onto graph A. For
// every B-edge (b_u, b_v) whose
// endpoints both have a ConflationResult, it inserts Steiner nodes into A
// at the two projected points, finds the shortest path in A between them,
// and copies the B-edge's attribute (selected by key) onto every A-edge
// along that path. Enrich returns the enriched graph A' alongside a
// []EnrichmentError describing every B-edge it had to skip. It has no
// error result: every per-item failure is reported in that slice, and a
// nil a or b is not checked for.
//
// Enrich is idempotent with respect to Steiner insertion: calling it twice
// with the same inputs inserts each Steiner node only once, since
// graph.SplitEdge is a no-op when the target ID already exists.
//
// Complexity: O(E_B * (V_A + E_A)), since every B-edge triggers up to two
// splits and one shortest-path search, each O(V_A + E_A).
func Enrich(a, b *graph.Graph, results []conflate.ConflationResult, key AttributeKey) (*graph.Graph, []EnrichmentError) {
	resultsByPoint := make(map[graph.NodeID]conflate.ConflationResult, len(results))
	for _, r := range results {
		resultsByPoint[r.PointB] = r
	}

	var errs []EnrichmentError
	cur := a

	for _, edge := range b.Edges() {
		start, ok1 := resultsByPoint[edge.U]
		end, ok2 := resultsByPoint[edge.V]
		if !ok1 || !ok2 {
			errs = append(errs, EnrichmentError{
				EdgeB:  [2]graph.NodeID{edge.U, edge.V},
				Reason: "endpoint has no ConflationResult",
			})
			continue
		}

		newStart := steinerID(start.PointB)
		newEnd := steinerID(end.PointB)

		next, err := cur.SplitEdge(start.SegmentAID[0], start.SegmentAID[1], newStart,
			start.PointBOnSegmentA.X, start.PointBOnSegmentA.Y)
		if err != nil {
			errs = append(errs, EnrichmentError{
				EdgeB:  [2]graph.NodeID{edge.U, edge.V},
				Reason: "inserting start Steiner node: " + err.Error(),
			})
			continue
		}
		cur = next

		next, err = cur.SplitEdge(end.SegmentAID[0], end.SegmentAID[1], newEnd,
			end.PointBOnSegmentA.X, end.PointBOnSegmentA.Y)
		if err != nil {
			errs = append(errs, EnrichmentError{
				EdgeB:  [2]graph.NodeID{edge.U, edge.V},
				Reason: "inserting end Steiner node: " + err.Error(),
			})
			continue
		}
		cur = next

		path, err := cur.ShortestPath(newStart, newEnd)
		if err != nil {
			errs = append(errs, EnrichmentError{
				EdgeB:  [2]graph.NodeID{edge.U, edge.V},
				Reason: "no shortest path between inserted nodes: " + err.Error(),
			})
			continue
		}

		cur, err = propagate(cur, path, edge, key)
		if err != nil {
			errs = append(errs, EnrichmentError{
				EdgeB:  [2]graph.NodeID{edge.U, edge.V},
				Reason: "propagating attribute: " + err.Error(),
			})
			continue
		}
	}

	return cur, errs
}

// propagate copies edge's attribute, selected by key, onto every edge of
// path in g, returning the resulting graph.
func propagate(g *graph.Graph, path []graph.NodeID, edge graph.Edge, key AttributeKey) (*graph.Graph, error) {
	cur := g
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		var err error
		switch key {
		case AttributeExtras:
			if edge.Extras == nil {
				continue
			}
			cur, err = cur.SetExtras(u, v, edge.Extras)
		default:
			if !edge.HasSpeed {
				continue
			}
			cur, err = cur.SetSpeed(u, v, edge.Speed)
		}
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
