package match

import (
	"context"

	"golang.org/x/sync/errgroup"

	"roadconflate/geom"
	"roadconflate/graph"
)

// chunkSize is the batching unit MatchTrajectories processes trajectories
// in: chunks of 1000.
const chunkSize = 1000

// Matcher is a prepared map matcher over a fixed graph B: its local planar
// projection and spatial candidate index, built once and shared read-only
// across every trajectory matched against it.
type Matcher struct {
	pg *planarGraph
	ci *candidateIndex
}

// NewMatcher builds a Matcher over b. Construction is O(V + E); reuse one
// Matcher across many calls to MatchTrajectories-style batches instead of
// rebuilding it per trajectory.
func NewMatcher(b *graph.Graph) (*Matcher, error) {
	if b == nil {
		return nil, ErrGraphNil
	}
	if b.NumNodes() == 0 {
		return nil, ErrEmptyGraph
	}
	pg := buildPlanarGraph(b)
	return &Matcher{pg: pg, ci: buildCandidateIndex(pg)}, nil
}

// MatchTrajectory runs the HMM lattice over one coordinate trajectory
// (WGS84 lon/lat) and returns the most likely B-node sequence, or an empty
// slice if no acceptable match exists. It never returns an error:
// per-trajectory failure is swallowed to an empty result so that one bad
// trajectory never aborts the rest of the batch.
func (m *Matcher) MatchTrajectory(coordsLonLat []geom.Point, settings Settings) []graph.NodeID {
	if len(coordsLonLat) == 0 {
		return nil
	}
	obs := make([]geom.Point, len(coordsLonLat))
	for i, p := range coordsLonLat {
		obs[i] = m.pg.projectLonLat(p)
	}

	chain := viterbiMatch(m.pg, m.ci, obs, settings)
	if chain == nil {
		return nil
	}
	return pathToBIDs(m.pg, chain)
}

// TrajectoriesFromPaths materialises id-form paths on graph A into the
// coordinate-form Trajectory values MatchTrajectories consumes, by looking
// up each node's (lon, lat) in a's node table. A path referencing a node
// absent from a is an input contract violation and fails the whole call.
func TrajectoriesFromPaths(a *graph.Graph, paths [][]graph.NodeID) ([]Trajectory, error) {
	if a == nil {
		return nil, ErrGraphNil
	}
	out := make([]Trajectory, len(paths))
	for i, p := range paths {
		coords := make([]geom.Point, len(p))
		for j, id := range p {
			x, y, err := a.NodeXY(id)
			if err != nil {
				return nil, err
			}
			coords[j] = geom.Point{X: x, Y: y}
		}
		out[i] = Trajectory{AIDs: p, Coords: coords}
	}
	return out, nil
}

// MatchTrajectories builds one Matcher over b, then processes trajectories
// in chunks of chunkSize, each chunk split across up to parallelism
// concurrent workers that iterate their share sequentially. The returned
// slice preserves input order regardless of parallelism.
func MatchTrajectories(b *graph.Graph, trajectories []Trajectory, parallelism int, opts ...Option) ([]Match, error) {
	settings, err := resolveSettings(opts)
	if err != nil {
		return nil, err
	}

	m, err := NewMatcher(b)
	if err != nil {
		return nil, err
	}

	if parallelism < 1 {
		parallelism = 1
	}

	results := make([]Match, len(trajectories))

	for start := 0; start < len(trajectories); start += chunkSize {
		end := start + chunkSize
		if end > len(trajectories) {
			end = len(trajectories)
		}
		if err := matchChunk(m, trajectories[start:end], results[start:end], parallelism, settings); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// matchChunk splits [start, end) of a chunk's trajectories into
// contiguous shards, one per worker, and runs each shard sequentially
// within its own goroutine.
func matchChunk(m *Matcher, in []Trajectory, out []Match, parallelism int, settings Settings) error {
	n := len(in)
	if n == 0 {
		return nil
	}
	workers := parallelism
	if workers > n {
		workers = n
	}

	grp, _ := errgroup.WithContext(context.Background())
	shard := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * shard
		hi := lo + shard
		if lo >= n {
			break
		}
		if hi > n {
			hi = n
		}
		grp.Go(func() error {
			for i := lo; i < hi; i++ {
				if settings.Ctx != nil && settings.Ctx.Err() != nil {
					return nil
				}
				t := in[i]
				bIDs := m.MatchTrajectory(t.Coords, settings)
				out[i] = Match{TraceAIDs: t.AIDs, TraceCoords: t.Coords, TraceBIDs: bIDs}
			}
			return nil
		})
	}
	return grp.Wait()
}
