// Package graph implements the geometric graph substrate (component C4):
// an undirected graph whose nodes carry planar (x, y) positions and whose
// edges optionally carry a speed attribute and an opaque extras blob.
//
// Rather than a mutable, RWMutex-guarded adjacency list, this Graph is an
// immutable, flat arena: two parallel vectors for nodes and for edges, plus
// a compressed-sparse-row adjacency index built once at construction. Graphs
// A and B are supplied externally and are read-only for the duration of the
// conflation pipeline, so there is no mutation to guard against once New
// returns successfully; the CSR index can safely be shared, unsynchronized,
// across worker goroutines.
//
// Structural edits (splitting an edge to insert a Steiner node, relabeling
// node IDs) return a new Graph rather than mutating in place.
package graph
