package polygon

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/cornerfan/pkg/angle"
	"github.com/chazu/cornerfan/pkg/border"
	"github.com/chazu/cornerfan/pkg/geom"
)

// MinEdgeLength is the shortest edge a polygon may have.
const MinEdgeLength = 1e-8

// Polygon is a named, counterclockwise, simple polygon. Edge i joins
// corner i and corner i+1 (circularly). A Polygon is immutable.
type Polygon struct {
	name    string
	corners []Corner
	lengths []float64
}

// Option configures polygon construction.
type Option func(*options)

type options struct {
	maxDenominator int
}

// WithMaxDenominator bounds the denominators used to approximate corner
// angles as rational multiples of π. The default is
// angle.DefaultMaxDenominator.
func WithMaxDenominator(n int) Option {
	return func(o *options) {
		o.maxDenominator = n
	}
}

// FromVertices builds a polygon from an n×2 array of coordinates.
func FromVertices(vertices [][]float64, name string, opts ...Option) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("polygon %q: %d vertices, need at least 3: %w", name, len(vertices), ErrInvalidVertexArray)
	}
	pts := make([]geom.Point, len(vertices))
	for i, v := range vertices {
		if len(v) != 2 {
			return nil, fmt.Errorf("polygon %q: vertex %d has %d coordinates, want 2: %w", name, i, len(v), ErrInvalidVertexArray)
		}
		pts[i] = geom.Pt(v[0], v[1])
	}
	return FromPoints(pts, name, opts...)
}

// FromPoints builds a polygon from its vertices given in either
// orientation.
func FromPoints(points []geom.Point, name string, opts ...Option) (*Polygon, error) {
	o := options{maxDenominator: angle.DefaultMaxDenominator}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxDenominator < 1 {
		return nil, fmt.Errorf("polygon %q: max denominator %d must be positive: %w", name, o.maxDenominator, ErrInvalidVertexArray)
	}

	if len(points) < 3 {
		return nil, fmt.Errorf("polygon %q: %d vertices, need at least 3: %w", name, len(points), ErrInvalidVertexArray)
	}
	for i, p := range points {
		if !geom.IsFinite(p) {
			return nil, fmt.Errorf("polygon %q: vertex %d is not finite: %w", name, i, ErrInvalidVertexArray)
		}
	}

	pts := fixOrientation(points)

	lengths, err := edgeLengths(name, pts)
	if err != nil {
		return nil, err
	}

	corners, err := computeCorners(name, pts, o.maxDenominator)
	if err != nil {
		return nil, err
	}

	return &Polygon{name: name, corners: corners, lengths: lengths}, nil
}

// fixOrientation returns a copy of pts in counterclockwise order, judged
// at the lexicographically smallest vertex.
func fixOrientation(pts []geom.Point) []geom.Point {
	out := slices.Clone(pts)
	n := len(out)

	i := 0
	for j, p := range out {
		if p.X < out[i].X || (p.X == out[i].X && p.Y < out[i].Y) {
			i = j
		}
	}

	prev := out[(i-1+n)%n]
	next := out[(i+1)%n]
	if geom.Cross(out[i], next, prev) < 0 {
		slices.Reverse(out)
	}
	return out
}

func edgeLengths(name string, pts []geom.Point) ([]float64, error) {
	n := len(pts)
	lengths := make([]float64, n)
	for i := range pts {
		l := geom.Dist(pts[i], pts[(i+1)%n])
		if !(l > MinEdgeLength) {
			return nil, fmt.Errorf("polygon %q: edge %d from %v to %v has length %g: %w",
				name, i, pts[i], pts[(i+1)%n], l, ErrDegenerateEdge)
		}
		lengths[i] = l
	}
	return lengths, nil
}

func computeCorners(name string, pts []geom.Point, maxDenominator int) ([]Corner, error) {
	n := len(pts)
	corners := make([]Corner, n)
	var sum angle.Angle
	for i := range pts {
		c := newCorner(pts[(i-1+n)%n], pts[i], pts[(i+1)%n], maxDenominator)
		if c.Angle.Sign() <= 0 || !c.Angle.Less(angle.Int(2)) {
			return nil, &AngleError{Name: name, Corner: i, Angle: c.Angle, MaxDenominator: maxDenominator}
		}
		corners[i] = c
		sum = sum.Add(c.Angle)
	}

	if want := int64(n - 2); sum != angle.Int(want) {
		return nil, &AngleError{Name: name, Corner: -1, Angle: sum, Want: want, MaxDenominator: maxDenominator}
	}
	return corners, nil
}

// Name returns the domain label of the polygon.
func (p *Polygon) Name() string { return p.name }

// NumSides returns the number of edges (and corners).
func (p *Polygon) NumSides() int { return len(p.lengths) }

// Corners returns a copy of the corners in counterclockwise order.
func (p *Polygon) Corners() []Corner { return slices.Clone(p.corners) }

// Corner returns corner i.
func (p *Polygon) Corner(i int) Corner { return p.corners[i] }

// Lengths returns a copy of the edge lengths.
func (p *Polygon) Lengths() []float64 { return slices.Clone(p.lengths) }

// Vertices returns the corner apexes in counterclockwise order.
func (p *Polygon) Vertices() []geom.Point {
	out := make([]geom.Point, len(p.corners))
	for i, c := range p.corners {
		out[i] = c.C
	}
	return out
}

// ElementaryAngle returns the largest angle dividing the elementary
// angle of every corner, the sector unit shared by the whole polygon.
func (p *Polygon) ElementaryAngle() angle.Angle {
	angles := make([]angle.Angle, len(p.corners))
	for i, c := range p.corners {
		angles[i] = c.ElementaryAngle()
	}
	return angle.Combine(angles...)
}

// CriticalInterval returns the union of the critical intervals of all
// corners.
func (p *Polygon) CriticalInterval() angle.Interval {
	in := p.corners[0].CriticalInterval()
	for _, c := range p.corners[1:] {
		in = in.Union(c.CriticalInterval())
	}
	return in
}

// MinVertexDistance returns the smallest distance between two vertices.
func (p *Polygon) MinVertexDistance() (float64, error) {
	return geom.MinDist(p.Vertices())
}

// MaxCornerRadius returns the largest radius a corner fan may use without
// reaching another vertex's fan or crossing the inner boundary of b.
func (p *Polygon) MaxCornerRadius(b border.Border) (float64, error) {
	verts := p.Vertices()
	d, err := geom.MinDist(verts)
	if err != nil {
		return 0, fmt.Errorf("polygon %q: %w", p.name, err)
	}
	inner, err := b.DistToInnerBoundary(verts)
	if err != nil {
		return 0, fmt.Errorf("polygon %q: %w", p.name, err)
	}
	return math.Min(d/2, inner), nil
}

// Translate returns a copy of the polygon moved by v.
func (p *Polygon) Translate(v geom.Point) *Polygon {
	out := &Polygon{
		name:    p.name,
		corners: slices.Clone(p.corners),
		lengths: slices.Clone(p.lengths),
	}
	for i := range out.corners {
		out.corners[i].C = r2.Add(out.corners[i].C, v)
	}
	return out
}

// Contains reports whether pt lies strictly inside the polygon, using
// the even-odd rule. Points on an edge or a vertex are not inside.
func (p *Polygon) Contains(pt geom.Point) bool {
	in := false
	n := len(p.corners)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.corners[i].C, p.corners[j].C
		if onSegment(a, b, pt) {
			return false
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// onSegmentEps is the sine of the angle below which pt counts as lying
// on the line through a and b.
const onSegmentEps = 1e-12

func onSegment(a, b, pt geom.Point) bool {
	ab, ap := r2.Sub(b, a), r2.Sub(pt, a)
	if math.Abs(r2.Cross(ab, ap)) > onSegmentEps*r2.Norm(ab)*r2.Norm(ap) {
		return false
	}
	d := r2.Dot(ab, ap)
	return d >= 0 && d <= r2.Norm2(ab)
}
