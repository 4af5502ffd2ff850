// Package geom provides the small set of planar-geometry primitives shared
// by the trajectory, match, conflate and enrich packages: point/vector
// algebra (built on gonum's spatial/r2.Vec), clamped point-to-segment
// projection, a 2D convex hull, and an equirectangular lon/lat projector.
//
// Nothing here depends on graph; it operates on raw (x, y) pairs so it can
// be reused both for the WGS84 lon/lat coordinates stored on graph nodes and
// for the locally-projected metric coordinates used internally by the map
// matcher.
package geom
