package geom

import (
	"cmp"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D point or vector.
type Point = r2.Vec

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IsFinite reports whether both coordinates are finite.
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Dist returns the euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return r2.Norm(r2.Sub(p, q))
}

// Cross returns the z component of (u-o)×(v-o). It is positive when
// o, u, v turn counterclockwise.
func Cross(o, u, v Point) float64 {
	return (u.X-o.X)*(v.Y-o.Y) - (u.Y-o.Y)*(v.X-o.X)
}

// Translate returns every point moved by v.
func Translate(points []Point, v Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = r2.Add(p, v)
	}
	return out
}

// lexCompare orders points by x, then by y.
func lexCompare(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}
