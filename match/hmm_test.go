package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadconflate/geom"
)

func TestEmissionLogProb_ZeroAtExactMatch(t *testing.T) {
	assert.Equal(t, 0.0, emissionLogProb(0, 50))
	assert.Less(t, emissionLogProb(10, 50), 0.0)
}

func TestTransitionLogProb_PeaksAtZeroDelta(t *testing.T) {
	atZero := transitionLogProb(10, 10, 50)
	atTen := transitionLogProb(20, 10, 50)
	assert.Greater(t, atZero, atTen)
}

func TestPruneLayer_RespectsWidthAndFloor(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxLatticeWidth = 2
	layer := []*latticeNode{
		{logProb: -1},
		{logProb: -2},
		{logProb: -3},
		{logProb: -100}, // should be dropped both by width and by prob floor
	}
	out := pruneLayer(layer, settings)
	assert.LessOrEqual(t, len(out), 2)
	assert.Equal(t, -1.0, out[0].logProb)
}

func TestViterbiMatch_EmptyObservationsReturnsNil(t *testing.T) {
	g := straightRoadGraph(t, 3)
	pg := buildPlanarGraph(g)
	ci := buildCandidateIndex(pg)
	assert.Nil(t, viterbiMatch(pg, ci, nil, DefaultSettings()))
}

func TestViterbiMatch_NoCandidatesReturnsNil(t *testing.T) {
	g := straightRoadGraph(t, 3)
	pg := buildPlanarGraph(g)
	ci := buildCandidateIndex(pg)
	obs := []geom.Point{{X: 1e9, Y: 1e9}}
	assert.Nil(t, viterbiMatch(pg, ci, obs, DefaultSettings()))
}

func TestPathToBIDs_DedupesConsecutive(t *testing.T) {
	g := straightRoadGraph(t, 3)
	pg := buildPlanarGraph(g)

	// Two chained nodes on the same directed edge (0 -> 1) should
	// contribute node 0 once and node 1 once, not duplicated.
	var edgeIdx int32 = -1
	for i, e := range pg.edges {
		if e.bFrom == 0 && e.bTo == 1 {
			edgeIdx = int32(i)
			break
		}
	}
	require.NotEqual(t, int32(-1), edgeIdx)

	n1 := &latticeNode{state: candidateState{edgeIdx: edgeIdx}, emitting: true}
	n2 := &latticeNode{state: candidateState{edgeIdx: edgeIdx}, emitting: true, prev: n1}

	ids := pathToBIDs(pg, []*latticeNode{n1, n2})
	assert.Equal(t, []int64{0, 1}, ids)
}
