package geom

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

// circleEps widens the containment test so round-off never pushes a
// boundary point out of its own circle.
const circleEps = 1e-12

// Circle is a circle given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies inside c, boundary included.
func (c Circle) Contains(p Point) bool {
	return r2.Norm2(r2.Sub(p, c.Center)) <= c.Radius*c.Radius*(1+circleEps)
}

// CircleOption configures SmallestCircle.
type CircleOption func(*circleOptions)

type circleOptions struct {
	rng *rand.Rand
}

// WithRand sets the source used to shuffle the hull before Welzl's
// algorithm. Pass a seeded generator for reproducible results.
func WithRand(r *rand.Rand) CircleOption {
	return func(o *circleOptions) {
		o.rng = r
	}
}

// SmallestCircle computes the minimal enclosing circle of points using
// Welzl's algorithm on the convex hull of the set.
//
// The hull is shuffled first. Without WithRand every call draws its own
// freshly seeded generator.
func SmallestCircle(points []Point, opts ...CircleOption) (Circle, error) {
	if len(points) == 0 {
		return Circle{}, fmt.Errorf("smallest circle: %w", ErrEmptyPointSet)
	}
	if len(points) == 3 {
		return circle3(points[0], points[1], points[2]), nil
	}

	var o circleOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	hull := ConvexHull(points)
	o.rng.Shuffle(len(hull), func(i, j int) {
		hull[i], hull[j] = hull[j], hull[i]
	})

	return welzl(hull), nil
}

// welzl runs the randomized incremental form of Welzl's algorithm. The
// three nested loops replace the recursion on the boundary set: the
// outer loop has no boundary point, the middle one has pts[i] and the
// inner one has pts[i] and pts[j].
func welzl(pts []Point) Circle {
	c := trivialCircle(nil)
	for i := range pts {
		if i > 0 && c.Contains(pts[i]) {
			continue
		}
		c = trivialCircle(pts[i : i+1])
		for j := 0; j < i; j++ {
			if c.Contains(pts[j]) {
				continue
			}
			c = circle2(pts[i], pts[j])
			for k := 0; k < j; k++ {
				if c.Contains(pts[k]) {
					continue
				}
				c = circumcircle(pts[i], pts[j], pts[k])
			}
		}
	}
	return c
}

// trivialCircle returns the smallest circle of at most three points.
func trivialCircle(boundary []Point) Circle {
	switch len(boundary) {
	case 0:
		return Circle{}
	case 1:
		return Circle{Center: boundary[0]}
	case 2:
		return circle2(boundary[0], boundary[1])
	case 3:
		return circle3(boundary[0], boundary[1], boundary[2])
	default:
		panic(fmt.Sprintf("geom: trivial circle of %d points", len(boundary)))
	}
}

// circle2 is the circle having segment ab as diameter.
func circle2(a, b Point) Circle {
	return Circle{
		Center: Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2},
		Radius: Dist(a, b) / 2,
	}
}

// circle3 is the smallest circle enclosing a, b and c.
func circle3(a, b, c Point) Circle {
	for _, t := range [3][3]Point{{a, b, c}, {b, c, a}, {c, a, b}} {
		if cc := circle2(t[0], t[1]); cc.Contains(t[2]) {
			return cc
		}
	}
	return circumcircle(a, b, c)
}

// circumcircle is the circle through a, b and c. Nearly collinear
// triples fall back to the circle on their farthest pair.
func circumcircle(a, b, c Point) Circle {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	d := 2 * (bx*cy - by*cx)
	if math.Abs(d) <= circleEps*math.Max(b2, c2) {
		return farthestPairCircle(a, b, c)
	}

	center := Point{
		X: a.X + (cy*b2-by*c2)/d,
		Y: a.Y + (bx*c2-cx*b2)/d,
	}
	r := math.Max(Dist(center, a), math.Max(Dist(center, b), Dist(center, c)))
	return Circle{Center: center, Radius: r}
}

func farthestPairCircle(a, b, c Point) Circle {
	best := circle2(a, b)
	for _, cc := range []Circle{circle2(b, c), circle2(a, c)} {
		if cc.Radius > best.Radius {
			best = cc
		}
	}
	return best
}
