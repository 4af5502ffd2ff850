package conflate

import (
	"errors"
	"fmt"

	"roadconflate/geom"
	"roadconflate/graph"
)

// DefaultTraceBMinLength is the default minimum matched-sequence length: a
// match whose matched B-node sequence is shorter than this contributes no
// votes.
const DefaultTraceBMinLength = 50

// DefaultTrim is the number of entries trimmed from each end of a
// surviving match's B-node sequence before voting, since the map matcher's
// endpoints are its noisiest output.
const DefaultTrim = 5

// Sentinel errors for the conflater.
var (
	// ErrGraphNil is returned when graph A or graph B is nil.
	ErrGraphNil = errors.New("conflate: graph is nil")

	// ErrOptionViolation is returned when an Option carries a
	// structurally invalid value.
	ErrOptionViolation = errors.New("conflate: invalid option supplied")
)

// ConflationResult is the public output of Conflate: the A-segment a B-node
// most likely lies on, its projection onto that segment, and the number
// of matches that voted for it. The JSON form round-trips losslessly:
// node IDs are integers and coordinates survive encoding/json's
// shortest-round-trip float representation bit-for-bit.
type ConflationResult struct {
	// SegmentAID is the ordered pair (u, v) of A-node-ids; the order
	// encodes the direction of traversal observed in the majority
	// evidence.
	SegmentAID [2]graph.NodeID `json:"segment_a_id"`

	// SegmentACoords are the (x, y) positions of SegmentAID's endpoints,
	// in the same order.
	SegmentACoords [2]geom.Point `json:"segment_a_coords"`

	// PointB is the B-node this result is about.
	PointB graph.NodeID `json:"point_b"`

	// PointBCoords is PointB's (x, y) position in graph B.
	PointBCoords geom.Point `json:"point_b_coords"`

	// PointBOnSegmentA is the clamped orthogonal projection of PointB
	// onto the closed segment SegmentACoords.
	PointBOnSegmentA geom.Point `json:"point_b_on_segment_a"`

	// NumberOfVotes is the size of the winning vote, >= 1.
	NumberOfVotes int `json:"number_of_votes"`
}

// Options configures Conflate.
type Options struct {
	// TraceBMinLength is trace_b_min_length: matches with a shorter
	// matched B-node sequence are dropped entirely.
	TraceBMinLength int

	// Trim is the number of entries trimmed from each end of a
	// surviving match's B-node sequence before voting. Exposed as an
	// option (rather than hardcoded) so tests can exercise the untrimmed
	// voting logic directly.
	Trim int

	err error
}

// Option configures Options via the functional-options pattern.
type Option func(*Options)

// DefaultOptions returns TraceBMinLength=50, Trim=5.
func DefaultOptions() Options {
	return Options{TraceBMinLength: DefaultTraceBMinLength, Trim: DefaultTrim}
}

// WithTraceBMinLength overrides trace_b_min_length. Negative values are an
// ErrOptionViolation.
func WithTraceBMinLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: TraceBMinLength must be >= 0", ErrOptionViolation)
			return
		}
		o.TraceBMinLength = n
	}
}

// WithTrim overrides the per-match endpoint trim count. Negative values
// are an ErrOptionViolation.
func WithTrim(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Trim must be >= 0", ErrOptionViolation)
			return
		}
		o.Trim = n
	}
}
