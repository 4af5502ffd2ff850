package match

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"roadconflate/geom"
	"roadconflate/graph"
)

// latticeNode is one state in the Viterbi lattice: a directed B-edge
// projection, the accumulated log-probability of the best path reaching
// it, and a back-pointer to the previous node in that best path.
// Non-emitting nodes (emitting == false) consume no observation; they
// exist only to bridge sparse trajectories where a single observation
// straddles multiple edges.
type latticeNode struct {
	state    candidateState
	emitting bool
	prev     *latticeNode
	logProb  float64
}

// emissionLogProb is the emission log-probability: no normalizing
// constant, just the negative squared perpendicular distance scaled by
// the noise variance.
func emissionLogProb(perpD, sigma float64) float64 {
	return -(perpD * perpD) / (2 * sigma * sigma)
}

// transitionLogProb scores how well a candidate transition's along-graph
// route distance matches the distance between the two observations, as a
// zero-mean Gaussian log-density over the difference (see DESIGN.md for why
// gonum's distuv.Normal is used here rather than a hand-rolled closed
// form). viterbiMatch passes as geoDist the straight-line distance between
// the observations in the matcher's local equirectangular frame; it does
// not compute a haversine great-circle distance.
func transitionLogProb(routeDist, geoDist, sigma float64) float64 {
	n := distuv.Normal{Mu: 0, Sigma: sigma}
	return n.LogProb(routeDist - geoDist)
}

// routeDistance estimates the along-graph metric distance (metres) from
// state `from`'s projection to state `to`'s projection: if both lie on the
// same directed edge it is the along-edge distance; otherwise it is the
// remaining distance to `from`'s edge-end node, plus the shortest weighted
// path between that node and `to`'s edge-start node, plus the distance
// from that node to `to`'s projection.
func (pg *planarGraph) routeDistance(from, to candidateState) (float64, bool) {
	fe, te := pg.edges[from.edgeIdx], pg.edges[to.edgeIdx]

	if from.edgeIdx == to.edgeIdx {
		d := (to.t - from.t) * fe.length
		if d < 0 {
			d = -d
		}
		return d, true
	}

	remFrom := (1 - from.t) * fe.length
	remTo := to.t * te.length

	if fe.to == te.from {
		return remFrom + remTo, true
	}

	dist := pg.dijkstraFrom(fe.to)
	hop := dist[te.from]
	if hop < 0 {
		return 0, false
	}
	return remFrom + hop + remTo, true
}

// viterbiMatch runs the HMM lattice over the observation sequence obs
// (already projected into the matcher's local planar metres) and returns
// the back-trace of lattice nodes from first to last, or nil if no
// acceptable path exists (no candidate state scores high enough to survive
// pruning at some observation).
func viterbiMatch(pg *planarGraph, ci *candidateIndex, obs []geom.Point, settings Settings) []*latticeNode {
	if len(obs) == 0 {
		return nil
	}

	layer := buildInitialLayer(ci, obs[0], settings)
	layer = pruneLayer(layer, settings)
	if len(layer) == 0 {
		return nil
	}

	for i := 1; i < len(obs); i++ {
		candidates := ci.query(obs[i], settings.MaxDist)
		geoDist := geom.Dist(obs[i-1], obs[i])

		next := make([]*latticeNode, 0, len(candidates))
		for _, c := range candidates {
			best := extendToState(pg, ci, layer, c, obs[i-1], obs[i], geoDist, settings)
			if best != nil {
				next = append(next, best)
			}
		}
		next = pruneLayer(next, settings)
		if len(next) == 0 {
			// The trajectory lost all lattice mass at this observation:
			// the whole match is invalid (empty output) rather than
			// silently skipping the observation.
			return nil
		}
		layer = next
	}

	best := layer[0]
	for _, n := range layer[1:] {
		if n.logProb > best.logProb {
			best = n
		}
	}

	var chain []*latticeNode
	for n := best; n != nil; n = n.prev {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func buildInitialLayer(ci *candidateIndex, p0 geom.Point, settings Settings) []*latticeNode {
	candidates := ci.query(p0, settings.MaxDistInit)
	out := make([]*latticeNode, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, &latticeNode{
			state:    c,
			emitting: true,
			logProb:  emissionLogProb(c.perpD, settings.ObsNoise),
		})
	}
	return out
}

// extendToState finds the best predecessor in `layer` for reaching
// candidate emitting state `cur`, trying both a direct transition and
// (when enabled) a single non-emitting intermediate hop through the
// midpoint between the two observations, and returns whichever scores
// higher.
func extendToState(pg *planarGraph, ci *candidateIndex, layer []*latticeNode, cur candidateState, prevObs, curObs geom.Point, geoDist float64, settings Settings) *latticeNode {
	emitCur := emissionLogProb(cur.perpD, settings.ObsNoise)

	var best *latticeNode
	bestScore := math.Inf(-1)

	for _, prev := range layer {
		if route, ok := pg.routeDistance(prev.state, cur); ok {
			total := prev.logProb + transitionLogProb(route, geoDist, settings.DistNoise) + emitCur
			if total > bestScore {
				bestScore = total
				best = &latticeNode{state: cur, emitting: true, prev: prev, logProb: total}
			}
		}

		if !settings.NonEmittingStates {
			continue
		}
		mid := geom.Point{X: (prevObs.X + curObs.X) / 2, Y: (prevObs.Y + curObs.Y) / 2}
		for _, ne := range ci.query(mid, settings.MaxDist) {
			d1, ok1 := pg.routeDistance(prev.state, ne)
			d2, ok2 := pg.routeDistance(ne, cur)
			if !ok1 || !ok2 {
				continue
			}
			dampedRoute := (d1 + d2) * settings.NonEmittingLengthFactor
			emitNE := emissionLogProb(ne.perpD, settings.ObsNoiseNE)
			total := prev.logProb + transitionLogProb(dampedRoute, geoDist, settings.DistNoise) + emitNE + emitCur
			if total > bestScore {
				bestScore = total
				neNode := &latticeNode{state: ne, emitting: false, prev: prev, logProb: prev.logProb + emitNE}
				best = &latticeNode{state: cur, emitting: true, prev: neNode, logProb: total}
			}
		}
	}

	return best
}

// pruneLayer retains only the top settings.MaxLatticeWidth nodes by
// log-probability and drops any node whose softmax-normalised probability
// (relative to the layer's best) falls below settings.MinProbNorm, keeping
// the lattice's width bounded as observations accumulate.
func pruneLayer(layer []*latticeNode, settings Settings) []*latticeNode {
	if len(layer) == 0 {
		return layer
	}
	sort.SliceStable(layer, func(i, j int) bool { return layer[i].logProb > layer[j].logProb })
	if len(layer) > settings.MaxLatticeWidth {
		layer = layer[:settings.MaxLatticeWidth]
	}

	maxLP := layer[0].logProb
	var sum float64
	weights := make([]float64, len(layer))
	for i, n := range layer {
		w := math.Exp(n.logProb - maxLP)
		weights[i] = w
		sum += w
	}

	out := layer[:0:0]
	for i, n := range layer {
		if weights[i]/sum >= settings.MinProbNorm {
			out = append(out, n)
		}
	}
	return out
}

// pathToBIDs walks the selected lattice chain's edges in order and
// deduplicates consecutive identical node-ids, producing the matched
// B-node sequence. Consecutive lattice states on the same directed edge
// contribute that edge only once.
func pathToBIDs(pg *planarGraph, chain []*latticeNode) []graph.NodeID {
	var out []graph.NodeID
	prevEdge := int32(-1)
	for _, n := range chain {
		if n.state.edgeIdx == prevEdge {
			continue
		}
		prevEdge = n.state.edgeIdx
		e := pg.edges[n.state.edgeIdx]
		if len(out) == 0 || out[len(out)-1] != e.bFrom {
			out = append(out, e.bFrom)
		}
		if out[len(out)-1] != e.bTo {
			out = append(out, e.bTo)
		}
	}
	return out
}
