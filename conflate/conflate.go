package conflate

import (
	"roadconflate/geom"
	"roadconflate/graph"
	"roadconflate/match"
)

// segmentKey identifies a directed A-segment (u, v) as a ballot target.
type segmentKey struct{ U, V graph.NodeID }

// voteAccumulator counts ballots per segmentKey while preserving
// first-seen insertion order, so that equal-vote ties resolve
// deterministically to whichever segment was voted for first, rather than
// depending on Go's randomized map iteration order.
type voteAccumulator struct {
	order  []segmentKey
	counts map[segmentKey]int
}

func newVoteAccumulator() *voteAccumulator {
	return &voteAccumulator{counts: make(map[segmentKey]int)}
}

func (va *voteAccumulator) add(key segmentKey) {
	if _, ok := va.counts[key]; !ok {
		va.order = append(va.order, key)
	}
	va.counts[key]++
}

// winner returns the first-seen segmentKey with the highest count.
func (va *voteAccumulator) winner() (segmentKey, int) {
	best := va.order[0]
	bestCount := va.counts[best]
	for _, key := range va.order[1:] {
		if c := va.counts[key]; c > bestCount {
			bestCount = c
			best = key
		}
	}
	return best, bestCount
}

// Conflate fuses a list of map-matcher Matches into a per-B-node mapping
// onto an A-segment. One ConflationResult is returned for every B-node
// that received at least one vote; PointB values across the result are
// always distinct.
//
// Conflate is a pure function of its inputs: the same matches, in the same
// order, always yield pointwise-equal results, and reversing every match's
// TraceAIDs reverses every result's SegmentAID while leaving
// PointBOnSegmentA and NumberOfVotes unchanged, since a clamped
// point-to-segment projection does not depend on which endpoint is called
// A or B.
//
// Complexity: O(sum over retained matches of trimmed-trace-length *
// A-trajectory-length), since every surviving B-node is compared against
// every segment of its match's A-trajectory via an explicit per-match
// linear scan; no spatial index is built for the A-trajectory itself.
func Conflate(a, b *graph.Graph, matches []match.Match, opts ...Option) ([]ConflationResult, error) {
	if a == nil || b == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	votes := make(map[graph.NodeID]*voteAccumulator)
	var pointOrder []graph.NodeID

	for _, m := range matches {
		if len(m.TraceBIDs) < o.TraceBMinLength {
			continue
		}
		trimmed := trim(m.TraceBIDs, o.Trim)

		for _, p := range trimmed {
			px, py, err := b.NodeXY(p)
			if err != nil {
				continue // per-item failure: point not in B, skip
			}
			pp := geom.Point{X: px, Y: py}

			key, ok := bestSegment(a, pp, m.TraceAIDs)
			if !ok {
				continue
			}

			acc, seen := votes[p]
			if !seen {
				acc = newVoteAccumulator()
				votes[p] = acc
				pointOrder = append(pointOrder, p)
			}
			acc.add(key)
		}
	}

	results := make([]ConflationResult, 0, len(pointOrder))
	for _, p := range pointOrder {
		acc := votes[p]
		key, count := acc.winner()

		xu, yu, _ := a.NodeXY(key.U)
		xv, yv, _ := a.NodeXY(key.V)
		au, av := geom.Point{X: xu, Y: yu}, geom.Point{X: xv, Y: yv}

		px, py, _ := b.NodeXY(p)
		pp := geom.Point{X: px, Y: py}
		proj, _ := geom.ProjectClamped(pp, au, av)

		results = append(results, ConflationResult{
			SegmentAID:       [2]graph.NodeID{key.U, key.V},
			SegmentACoords:   [2]geom.Point{au, av},
			PointB:           p,
			PointBCoords:     pp,
			PointBOnSegmentA: proj,
			NumberOfVotes:    count,
		})
	}

	return results, nil
}

// bestSegment scans every consecutive pair of traceA, returning the
// directed pair minimising the clamped perpendicular distance to p.
// Degenerate segments (coincident endpoints) are skipped, since a
// zero-length segment has no well-defined projection.
func bestSegment(a *graph.Graph, p geom.Point, traceA []graph.NodeID) (segmentKey, bool) {
	bestDist := -1.0
	var best segmentKey
	found := false

	for i := 0; i+1 < len(traceA); i++ {
		u, v := traceA[i], traceA[i+1]
		xu, yu, err1 := a.NodeXY(u)
		xv, yv, err2 := a.NodeXY(v)
		if err1 != nil || err2 != nil {
			continue
		}
		au, av := geom.Point{X: xu, Y: yu}, geom.Point{X: xv, Y: yv}
		if au == av {
			continue
		}
		_, d := geom.ProjectClamped(p, au, av)
		if !found || d < bestDist {
			bestDist = d
			best = segmentKey{U: u, V: v}
			found = true
		}
	}

	return best, found
}

// trim drops the first and last n entries of ids, since those endpoints
// carry the most map-matching noise. If ids is too short to have any
// middle portion, trim returns an empty slice.
func trim(ids []graph.NodeID, n int) []graph.NodeID {
	if len(ids) <= 2*n {
		return nil
	}
	return ids[n : len(ids)-n]
}
