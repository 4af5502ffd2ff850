// Package match implements the Map Matcher (component C2): probabilistic
// snapping of a coordinate-trajectory onto graph B using a Hidden-Markov-
// Model-style lattice with distance emissions, along-graph-distance
// transitions, and optional non-emitting intermediate states.
//
// A Matcher holds a local, metrically-projected copy of B (an
// equirectangular projection centred on B's centroid) plus a bounding-box
// spatial index over its directed edges, built once and reused read-only
// across every trajectory matched against it. The lattice, emissions,
// transitions, and Viterbi back-trace are implemented directly in Go
// rather than wrapping an external map-matching library, since none
// ships a portable lattice implementation this module can call into.
//
// Concurrency: MatchTrajectories processes its input in fixed-size chunks,
// each chunk sharded across up to `parallelism` goroutines via
// golang.org/x/sync/errgroup; each goroutine matches its shard of
// trajectories sequentially and independently, so there is no shared
// mutable state beyond the read-only Matcher, and the returned slice
// preserves input order regardless of worker count.
package match
