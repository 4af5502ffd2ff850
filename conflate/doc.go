// Package conflate implements the Conflater: it fuses the map matcher's
// per-trajectory Matches into a single per-B-node mapping onto a directed
// A-segment, by majority vote over every trajectory that observed that
// B-node.
//
// Votes are accumulated with a first-seen-order-preserving counter so that
// equal-vote ties resolve deterministically, and the single clamped
// point-to-segment projection in package geom is used both to pick the
// winning segment and to compute the final projected point, so there is
// exactly one notion of "closest point on a segment" anywhere in the
// module.
package conflate
