package enrich

import (
	"strconv"

	"roadconflate/graph"
)

// AttributeKey selects which edge attribute Enrich propagates from B onto A.
type AttributeKey string

const (
	// AttributeSpeed copies the numeric Speed attribute, via
	// graph.Speed/graph.SetSpeed.
	AttributeSpeed AttributeKey = "speed"

	// AttributeExtras copies the opaque Extras byte attribute, via
	// graph.Extras/graph.SetExtras.
	AttributeExtras AttributeKey = "extras"
)

// EnrichmentError records one B-edge that Enrich could not propagate, and
// why: a missing endpoint or an unreachable path is logged and skipped,
// never fatal to the rest of the run.
type EnrichmentError struct {
	// EdgeB is the B-edge (u, v) that was skipped.
	EdgeB [2]graph.NodeID

	// Reason is a human-readable description of why the edge was skipped.
	Reason string
}

func (e EnrichmentError) Error() string {
	return "enrich: skipped B-edge (" + formatPair(e.EdgeB) + "): " + e.Reason
}

func formatPair(p [2]graph.NodeID) string {
	return strconv.FormatInt(p[0], 10) + "," + strconv.FormatInt(p[1], 10)
}
