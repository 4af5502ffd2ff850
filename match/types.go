package match

import (
	"context"
	"errors"
	"fmt"

	"roadconflate/geom"
	"roadconflate/graph"
)

// Sentinel errors for the map matcher.
var (
	// ErrGraphNil is returned when a nil graph B is supplied.
	ErrGraphNil = errors.New("match: graph is nil")

	// ErrEmptyGraph is returned when graph B has no nodes.
	ErrEmptyGraph = errors.New("match: graph has no nodes")

	// ErrOptionViolation is returned when a Setting carries a structurally
	// invalid value (zero or negative where a positive scale is required).
	ErrOptionViolation = errors.New("match: invalid setting supplied")
)

// Trajectory is the input to MatchTrajectories: a coordinate-trajectory
// (WGS84 lon/lat) paired with the A-node-ids it was derived from. AIDs and
// Coords must be the same length, consecutive AIDs adjacent in the A-graph
// they came from (MatchTrajectories does not itself validate A-adjacency —
// that is the trajectory generator's contract — it only needs the pairing
// to assemble the Match triple).
type Trajectory struct {
	AIDs   []graph.NodeID
	Coords []geom.Point
}

// Match is the triple produced by matching one trajectory: the A-trajectory
// that produced this observation sequence, its coordinates, and the B-node
// sequence the map matcher decided most likely generated it. TraceBIDs is
// empty when no acceptable match exists.
type Match struct {
	TraceAIDs   []graph.NodeID
	TraceCoords []geom.Point
	TraceBIDs   []graph.NodeID
}

// Settings configures the HMM lattice: emission/transition noise scales,
// search radii, lattice pruning, and non-emitting states.
type Settings struct {
	// MaxDist is the perpendicular-distance radius (metres) within which a
	// B-edge is considered a candidate state for observations after the
	// first.
	MaxDist float64

	// MaxDistInit is the tighter radius (metres) applied to the first
	// observation only.
	MaxDistInit float64

	// MinProbNorm is the normalised-probability floor below which a
	// lattice state is pruned.
	MinProbNorm float64

	// NonEmittingLengthFactor dampens the path-length contribution of
	// non-emitting transitions.
	NonEmittingLengthFactor float64

	// ObsNoise is the emission Gaussian's scale (metres) for emitting
	// states.
	ObsNoise float64

	// ObsNoiseNE is the emission Gaussian's scale (metres) for
	// non-emitting states.
	ObsNoiseNE float64

	// DistNoise is the transition Gaussian's scale (metres).
	DistNoise float64

	// NonEmittingStates enables inserting intermediate, observation-free
	// states between consecutive observations.
	NonEmittingStates bool

	// MaxLatticeWidth bounds the number of states retained per
	// observation after pruning.
	MaxLatticeWidth int

	// Ctx allows cooperative cancellation between trajectories within a
	// chunk.
	Ctx context.Context

	err error
}

// DefaultSettings returns the documented defaults: MaxDist=100,
// MaxDistInit=25, MinProbNorm=0.001, NonEmittingLengthFactor=0.75,
// ObsNoise=50, ObsNoiseNE=75, DistNoise=50, NonEmittingStates=true,
// MaxLatticeWidth=5.
func DefaultSettings() Settings {
	return Settings{
		MaxDist:                 100,
		MaxDistInit:             25,
		MinProbNorm:             0.001,
		NonEmittingLengthFactor: 0.75,
		ObsNoise:                50,
		ObsNoiseNE:              75,
		DistNoise:               50,
		NonEmittingStates:       true,
		MaxLatticeWidth:         5,
		Ctx:                     context.Background(),
	}
}

// Option configures Settings via the functional-options pattern, mirroring
// trajectory.Option.
type Option func(*Settings)

// WithMaxDist overrides the candidate search radius for non-initial
// observations. Values <= 0 are an ErrOptionViolation.
func WithMaxDist(v float64) Option { return withPositive(v, func(s *Settings) *float64 { return &s.MaxDist }) }

// WithMaxDistInit overrides the first-observation candidate search radius.
func WithMaxDistInit(v float64) Option {
	return withPositive(v, func(s *Settings) *float64 { return &s.MaxDistInit })
}

// WithMinProbNorm overrides the normalised-probability pruning floor.
func WithMinProbNorm(v float64) Option {
	return func(s *Settings) { s.MinProbNorm = v }
}

// WithNonEmittingLengthFactor overrides the non-emitting path-length damping factor.
func WithNonEmittingLengthFactor(v float64) Option {
	return withPositive(v, func(s *Settings) *float64 { return &s.NonEmittingLengthFactor })
}

// WithObsNoise overrides the emitting-state emission Gaussian scale.
func WithObsNoise(v float64) Option { return withPositive(v, func(s *Settings) *float64 { return &s.ObsNoise }) }

// WithObsNoiseNE overrides the non-emitting-state emission Gaussian scale.
func WithObsNoiseNE(v float64) Option {
	return withPositive(v, func(s *Settings) *float64 { return &s.ObsNoiseNE })
}

// WithDistNoise overrides the transition Gaussian scale.
func WithDistNoise(v float64) Option { return withPositive(v, func(s *Settings) *float64 { return &s.DistNoise }) }

// WithNonEmittingStates toggles non-emitting intermediate states.
func WithNonEmittingStates(enabled bool) Option {
	return func(s *Settings) { s.NonEmittingStates = enabled }
}

// WithMaxLatticeWidth overrides the per-observation pruning width. Values
// < 1 are an ErrOptionViolation.
func WithMaxLatticeWidth(n int) Option {
	return func(s *Settings) {
		if n < 1 {
			s.err = fmt.Errorf("%w: MaxLatticeWidth must be >= 1", ErrOptionViolation)
			return
		}
		s.MaxLatticeWidth = n
	}
}

// WithContext sets a cancellation context, checked between trajectories
// within a chunk by MatchTrajectories.
func WithContext(ctx context.Context) Option {
	return func(s *Settings) {
		if ctx != nil {
			s.Ctx = ctx
		}
	}
}

func withPositive(v float64, field func(*Settings) *float64) Option {
	return func(s *Settings) {
		if v <= 0 {
			s.err = fmt.Errorf("%w: setting must be > 0", ErrOptionViolation)
			return
		}
		*field(s) = v
	}
}

func resolveSettings(opts []Option) (Settings, error) {
	s := DefaultSettings()
	for _, o := range opts {
		o(&s)
	}
	if s.err != nil {
		return Settings{}, s.err
	}
	return s, nil
}
