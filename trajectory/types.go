package trajectory

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMinPathLength is the default minimum path length: a path shorter
// than this is discarded during the covering phase.
const DefaultMinPathLength = 100

// Sentinel errors for trajectory generation.
var (
	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("trajectory: graph is nil")

	// ErrEmptyGraph is returned when the graph has no nodes.
	ErrEmptyGraph = errors.New("trajectory: graph has no nodes")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("trajectory: invalid option supplied")
)

// Options configures Generate. Use the With* functions to build it.
type Options struct {
	// MinPathLength is L_min: a generated path shorter than this is
	// discarded (falling back to the exact shortest path first).
	MinPathLength int

	// Seed seeds the deterministic RNG; 0 selects a fixed default seed.
	Seed int64

	// Parallelism bounds the number of concurrent covering-phase workers.
	Parallelism int

	// Ctx allows cooperative cancellation between covering-phase tasks.
	Ctx context.Context

	err error
}

// Option configures Options via the functional-options pattern.
type Option func(*Options)

// DefaultOptions returns the default configuration: MinPathLength=100,
// Seed=0 (deterministic default), Parallelism=1, Ctx=context.Background().
func DefaultOptions() Options {
	return Options{
		MinPathLength: DefaultMinPathLength,
		Seed:          0,
		Parallelism:   1,
		Ctx:           context.Background(),
	}
}

// WithMinPathLength overrides L_min. Values < 1 are an ErrOptionViolation.
func WithMinPathLength(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MinPathLength must be >= 1", ErrOptionViolation)
			return
		}
		o.MinPathLength = n
	}
}

// WithSeed sets the deterministic RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithParallelism bounds the number of concurrent covering-phase workers.
// Values < 1 are clamped to 1.
func WithParallelism(p int) Option {
	return func(o *Options) {
		if p < 1 {
			p = 1
		}
		o.Parallelism = p
	}
}

// WithContext sets a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
