package graph

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyNodeSet indicates a graph was constructed with no nodes.
	ErrEmptyNodeSet = errors.New("graph: node set is empty")

	// ErrDuplicateNode indicates two input nodes share an ID.
	ErrDuplicateNode = errors.New("graph: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrSelfLoop indicates an edge referenced the same node at both ends.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrDuplicateEdge indicates two input edges connect the same unordered pair.
	ErrDuplicateEdge = errors.New("graph: duplicate edge between the same pair")

	// ErrNoPath indicates no path exists between two nodes.
	ErrNoPath = errors.New("graph: no path between nodes")
)

// NodeID is the stable integer identifier of a Node.
type NodeID = int64

// Node is an input node: a stable ID plus a planar (x, y) position.
type Node struct {
	ID   NodeID
	X, Y float64
}

// EdgeSpec is an input, unordered edge between two node IDs, with optional
// scalar/opaque attributes.
type EdgeSpec struct {
	U, V NodeID

	// HasSpeed reports whether Speed carries a meaningful value; an edge
	// with no speed attribute leaves Speed unset entirely rather than
	// defaulting to zero, since zero is a valid speed for "impassable".
	HasSpeed bool
	Speed    float64

	// Extras is an opaque attribute bag for anything beyond Speed.
	Extras []byte
}

// Edge is a materialized, undirected edge as returned by Edges(): U and V are the two endpoints in no particular order unless
// a caller-supplied traversal direction is documented on the accessor.
type Edge struct {
	U, V     NodeID
	HasSpeed bool
	Speed    float64
	Extras   []byte
}
