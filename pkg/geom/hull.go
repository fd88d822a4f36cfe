package geom

import "slices"

// hullEps is the sine of the turn below which u is treated as
// collinear with o and v and pruned.
const hullEps = 1e-12

// turnsLeft reports whether o, u, v make a counterclockwise turn. The
// cross product is compared against the lengths of both spokes, so the
// test does not depend on the scale of the point set.
func turnsLeft(o, u, v Point) bool {
	return Cross(o, u, v) > hullEps*Dist(o, u)*Dist(o, v)
}

// ConvexHull computes the convex hull of points with Andrew's monotone
// chain algorithm. The hull is returned counterclockwise, starting at the
// lexicographically smallest point, without duplicates and without
// (nearly) collinear middle points.
//
// A set with a single distinct point yields a one point hull and an
// empty set yields nil.
func ConvexHull(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}

	pts := slices.Clone(points)
	slices.SortFunc(pts, lexCompare)
	pts = slices.Compact(pts)
	if len(pts) <= 2 {
		return pts
	}

	hull := make([]Point, 0, 2*len(pts))

	// Lower hull, left to right.
	for _, p := range pts {
		for len(hull) >= 2 && !turnsLeft(hull[len(hull)-2], hull[len(hull)-1], p) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper hull, right to left. The rightmost point is already in place.
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && !turnsLeft(hull[len(hull)-2], hull[len(hull)-1], p) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// The leftmost point closes the chain.
	return hull[:len(hull)-1]
}
