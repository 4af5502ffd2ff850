package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a planar (x, y) coordinate. For graph nodes this is WGS84
// (lon, lat); for the map matcher's internal copy it is local metres.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// vec converts a Point to the gonum r2.Vec it is algebraically backed by.
func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return fromVec(r2.Sub(p.vec(), q.vec())) }

// Add returns p + q.
func (p Point) Add(q Point) Point { return fromVec(r2.Add(p.vec(), q.vec())) }

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point { return fromVec(r2.Scale(f, p.vec())) }

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 { return r2.Dot(p.vec(), q.vec()) }

// Cross returns the z-component of the cross product p×q, positive when
// q is a counter-clockwise turn from p.
func (p Point) Cross(q Point) float64 { return r2.Cross(p.vec(), q.vec()) }

// Norm2 returns the squared Euclidean norm of p.
func (p Point) Norm2() float64 { return r2.Norm2(p.vec()) }

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 { return r2.Norm(r2.Sub(p.vec(), q.vec())) }

// Dist2 returns the squared Euclidean distance between p and q, useful for
// nearest-neighbour comparisons that don't need the actual distance.
func Dist2(p, q Point) float64 { return r2.Norm2(r2.Sub(p.vec(), q.vec())) }

// ProjectClamped returns the closest point to p on the closed segment [a, b]
// and the Euclidean distance to it. When a == b the projection degenerates
// to a itself.
//
// This is the single clamped point-to-segment projection used throughout
// the module (map matching, conflation voting, and enrichment Steiner-node
// placement); see DESIGN.md for why two divergent copies existed upstream.
//
// Complexity: O(1).
func ProjectClamped(p, a, b Point) (closest Point, dist float64) {
	ab := b.Sub(a)
	denom := ab.Norm2()
	if denom == 0 {
		return a, Dist(p, a)
	}
	t := p.Sub(a).Dot(ab) / denom
	t = math.Max(0, math.Min(1, t))
	closest = a.Add(ab.Scale(t))
	return closest, Dist(p, closest)
}
