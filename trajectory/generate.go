package trajectory

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"roadconflate/geom"
	"roadconflate/graph"
)

// Generate manufactures a dense set of node-sequence paths over g (graph A)
// that jointly cover as many of g's nodes as possible.
//
// It runs a convex-hull backbone phase (every pair of hull-boundary nodes
// connected by its exact shortest path) followed by a randomized covering
// phase that greedily space-fills the remainder. Every returned path is a
// valid walk in g of length >= opts.MinPathLength; callers that need denser
// coverage may invoke Generate again (with a different seed) and
// concatenate the results.
//
// Complexity: O(H^2 * (V+E)) for the backbone (H = hull size) plus
// O(R * K * D) for the covering phase, where R is the number of rounds and
// D the average walk length; each round is bounded by opts.Parallelism
// concurrent workers.
//
// Concurrency: the covering phase dispatches up to opts.Parallelism
// concurrent workers per round via golang.org/x/sync/errgroup; task
// selection (which source/target pairs to try) is generated single
// threaded from the seeded RNG before dispatch, so the set of attempted
// walks is reproducible regardless of opts.Parallelism. If opts.Ctx is
// cancelled between rounds, Generate returns the paths accumulated so far
// with a nil error rather than discarding partial progress.
func Generate(g *graph.Graph, options ...Option) ([][]graph.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.NumNodes() == 0 {
		return nil, ErrEmptyGraph
	}

	opts := DefaultOptions()
	for _, o := range options {
		o(&opts)
	}
	if opts.err != nil {
		return nil, opts.err
	}

	allNodes := g.Nodes()
	sort.Slice(allNodes, func(i, j int) bool { return allNodes[i] < allNodes[j] })

	rng := rngFromSeed(opts.Seed)

	var paths [][]graph.NodeID

	unvisited := make(map[graph.NodeID]bool, len(allNodes))
	for _, id := range allNodes {
		unvisited[id] = true
	}

	// Step 1-2: convex-hull backbone.
	points := make([]geom.Point, len(allNodes))
	for i, id := range allNodes {
		x, y, err := g.NodeXY(id)
		if err != nil {
			return nil, err
		}
		points[i] = geom.Point{X: x, Y: y}
	}
	hullIdx := geom.ConvexHull(points)
	boundary := make([]graph.NodeID, len(hullIdx))
	for i, idx := range hullIdx {
		boundary[i] = allNodes[idx]
	}

	for i := 0; i < len(boundary); i++ {
		for j := i + 1; j < len(boundary); j++ {
			path, err := g.ShortestPath(boundary[i], boundary[j])
			if err != nil {
				// Boundary nodes are, by precondition, in the same
				// connected component; a missing path is an input
				// contract violation rather than a per-item failure.
				return nil, err
			}
			if len(path) < opts.MinPathLength {
				// Too short to retain; its nodes stay on the frontier
				// for the covering phase.
				continue
			}
			paths = append(paths, path)
			for _, id := range path {
				delete(unvisited, id)
			}
		}
	}

	// Step 3: randomized covering phase.
	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	for len(unvisited) > 0 {
		if opts.Ctx != nil && opts.Ctx.Err() != nil {
			return paths, nil
		}

		frontier := sortedKeys(unvisited)
		k := len(frontier) * 100
		if parallelism*100 < k {
			k = parallelism * 100
		}
		if k > len(frontier) {
			k = len(frontier)
		}
		if k == 0 {
			break
		}

		tasks := make([]coveringTask, k)
		for i := 0; i < k; i++ {
			tasks[i] = coveringTask{
				source: frontier[rng.Intn(len(frontier))],
				target: allNodes[rng.Intn(len(allNodes))],
			}
		}

		kept := runCoveringTasks(opts.Ctx, g, opts.MinPathLength, parallelism, tasks)

		progressed := false
		for _, path := range kept {
			if path == nil {
				continue
			}
			newNode := false
			for _, id := range path {
				if unvisited[id] {
					newNode = true
					delete(unvisited, id)
				}
			}
			if newNode {
				paths = append(paths, path)
				progressed = true
			}
		}

		if !progressed {
			// Deterministic fallback: pair every remaining unvisited node
			// with a random neighbour to guarantee the frontier shrinks
			// even if every covering task this round was discarded. The
			// resulting length-2 walks are discarded (too short to be
			// useful) but still remove their source node from the
			// frontier, so termination does not depend on luck.
			for _, id := range frontier {
				if !unvisited[id] {
					continue
				}
				delete(unvisited, id)
				if nbrs, err := g.NeighborIDs(id); err == nil && len(nbrs) > 0 {
					_ = []graph.NodeID{id, nbrs[rng.Intn(len(nbrs))]} // length-2 walk, discarded by construction
				}
			}
		}
	}

	return paths, nil
}

type coveringTask struct {
	source, target graph.NodeID
}

// runCoveringTasks dispatches tasks to up to `parallelism` concurrent
// workers and returns, in task order, the kept path for each task (or nil
// if the task's walk was discarded). Checking ctx between tasks lets
// cancellation take effect mid-round even under concurrency, since each
// worker checks before starting its next task.
func runCoveringTasks(ctx context.Context, g *graph.Graph, minLen, parallelism int, tasks []coveringTask) [][]graph.NodeID {
	results := make([][]graph.NodeID, len(tasks))

	grp, gctx := errgroup.WithContext(context.Background())
	grp.SetLimit(parallelism)

	for i, task := range tasks {
		i, task := i, task
		grp.Go(func() error {
			if ctx != nil && ctx.Err() != nil {
				return nil
			}
			select {
			case <-gctx.Done():
				return nil
			default:
			}
			results[i] = computeCoveringPath(g, task.source, task.target, minLen)
			return nil
		})
	}
	_ = grp.Wait()

	return results
}

// computeCoveringPath runs the greedy nearest-neighbour walk from source
// towards target, falling back to the exact shortest path when the walk
// comes up shorter than minLen, and discarding the result entirely if even
// the shortest path is too short.
func computeCoveringPath(g *graph.Graph, source, target graph.NodeID, minLen int) []graph.NodeID {
	walk := greedyNearestNeighbourWalk(g, source, target)
	if len(walk) >= minLen {
		return walk
	}

	fallback, err := g.ShortestPath(source, target)
	if err != nil || len(fallback) < minLen {
		return nil
	}
	return fallback
}

// greedyNearestNeighbourWalk performs a genuine space-filling walk: from
// source, repeatedly move to the not-yet-visited neighbour closest (by
// Euclidean distance) to the *current* node — never to the target. This is
// deliberately a space-filling walk rather than a heuristic search toward
// target; it stops on reaching target or when no unvisited neighbour
// remains, and never revisits a node already on the walk.
func greedyNearestNeighbourWalk(g *graph.Graph, source, target graph.NodeID) []graph.NodeID {
	onPath := map[graph.NodeID]bool{source: true}
	path := []graph.NodeID{source}
	cur := source

	for cur != target {
		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			break
		}
		cx, cy, _ := g.NodeXY(cur)

		best := graph.NodeID(-1)
		bestDist := -1.0
		for _, nb := range nbrs {
			if onPath[nb] {
				continue
			}
			nx, ny, _ := g.NodeXY(nb)
			d := geom.Dist2(geom.Point{X: cx, Y: cy}, geom.Point{X: nx, Y: ny})
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = nb
			}
		}
		if best < 0 {
			break
		}
		path = append(path, best)
		onPath[best] = true
		cur = best
	}

	return path
}

func sortedKeys(set map[graph.NodeID]bool) []graph.NodeID {
	out := make([]graph.NodeID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
