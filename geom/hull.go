package geom

import "sort"

// ConvexHull computes the 2D convex hull of pts using Andrew's monotone
// chain and returns the indices (into pts) of the hull vertices in
// counter-clockwise order, starting from the leftmost, then lowest, point.
//
// Collinear points on an edge of the hull are excluded from the result
// (strict turns only), matching the vertex set scipy.spatial.ConvexHull
// would report for points in "general position". Degenerate inputs return
// fewer than 3 indices: one or two input points are returned as given, and
// when all points are collinear only the two extremes of the (x, then y)
// sort order are returned.
//
// Complexity: O(n log n), dominated by the sort.
func ConvexHull(pts []Point) []int {
	n := len(pts)
	if n == 0 {
		return nil
	}
	if n <= 2 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := pts[order[i]], pts[order[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	// cross returns >0 if o->a->b turns counter-clockwise.
	cross := func(o, a, b int) float64 {
		return pts[a].Sub(pts[o]).Cross(pts[b].Sub(pts[o]))
	}

	build := func(order []int) []int {
		hull := make([]int, 0, len(order)+1)
		for _, p := range order {
			for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		return hull
	}

	lower := build(order)

	upper := make([]int, len(order))
	for i, p := range order {
		upper[len(order)-1-i] = p
	}
	upper = build(upper)

	// Concatenate, dropping the last point of each half since it repeats
	// the first point of the other half.
	hull := make([]int, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)

	if len(hull) == 0 {
		// All points collinear: fall back to the sorted extremes.
		return []int{order[0], order[len(order)-1]}
	}

	return hull
}
