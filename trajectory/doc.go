// Package trajectory implements the Trajectory Generator: given graph A, it
// manufactures a dense set of node-sequence paths that jointly cover A's
// nodes, for later use as the coordinate trajectories fed into the map
// matcher (package match).
//
// Algorithm: a convex-hull backbone (every pair of hull-boundary nodes
// connected by its exact shortest path) followed by a randomized covering
// phase — a greedy, space-filling nearest-neighbour walk from a random
// unvisited node that stops if it reaches a random target, falling back to
// the exact shortest path to that target when the walk comes up short.
//
// Concurrency: the covering phase dispatches batches of tasks to a bounded
// worker pool (golang.org/x/sync/errgroup) consuming a work queue; callers
// that want reproducible output must pass a fixed seed.
package trajectory
