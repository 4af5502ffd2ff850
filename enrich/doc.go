// Package enrich implements attribute propagation: given graph A, graph B,
// and the ConflationResults produced by package conflate, it inserts
// Steiner nodes into A at both endpoints of every B-edge whose two
// endpoints each have a ConflationResult, then copies the B-edge's
// attribute onto every A-edge along the shortest path between the two
// inserted nodes.
//
// Inserting a Steiner node walks the shortest path between a segment's
// two endpoints and splits whichever edge's midpoint is closest to the
// projected point, rather than assuming the originally selected segment
// is still a direct edge — earlier calls in the same run may have already
// split it for a different B-node. graph.SplitEdge reproduces this search
// and its idempotence (inserting an already-present node ID is a no-op,
// not an error).
//
// Per-edge failures (a missing ConflationResult, an unreachable shortest
// path) are never fatal: Enrich collects them into a returned
// []EnrichmentError instead of logging to a global sink or aborting the
// run.
package enrich
