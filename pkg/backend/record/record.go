// Package record implements backend.Backend as an in-memory store. It
// keeps every call in order and resolves curve loops and surfaces into
// polylines, sampling arcs, so that a layout can be inspected or
// converted without a meshing library.
package record

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/cornerfan/pkg/backend"
	"github.com/chazu/cornerfan/pkg/geom"
)

// Compile-time interface check.
var _ backend.Backend = (*Backend)(nil)

// Op is the kind of a recorded call.
type Op int

const (
	OpPoint Op = iota
	OpLine
	OpArc
	OpCurveLoop
	OpPlanarSurface
	OpStructuredCurve
	OpStructuredSurface
	OpTagRegion
)

// String returns the name of the call.
func (o Op) String() string {
	switch o {
	case OpPoint:
		return "AddPoint"
	case OpLine:
		return "AddLine"
	case OpArc:
		return "AddArc"
	case OpCurveLoop:
		return "AddCurveLoop"
	case OpPlanarSurface:
		return "AddPlanarSurface"
	case OpStructuredCurve:
		return "SetStructuredCurve"
	case OpStructuredSurface:
		return "SetStructuredSurface"
	case OpTagRegion:
		return "TagRegion"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Call is one recorded call. ID is the handle returned or targeted by
// the call; for TagRegion it is the index of the region.
type Call struct {
	Op Op
	ID int
}

// Point is a stored point.
type Point struct {
	P    geom.Point
	Size float64
}

// Curve is a stored line or arc. Center is only meaningful for arcs.
// Nodes is zero until SetStructuredCurve is called.
type Curve struct {
	Arc         bool
	From, To    backend.PointID
	Center      backend.PointID
	Nodes       int
	Progression float64
}

// Surface is a stored planar surface.
type Surface struct {
	Outer      backend.LoopID
	Holes      []backend.LoopID
	Structured bool
}

// Backend records construction calls. The zero value is ready to use.
type Backend struct {
	points   []Point
	curves   []Curve
	loops    [][]backend.Oriented
	surfaces []Surface
	regions  []backend.Region
	calls    []Call
	err      error
}

// New returns an empty recorder.
func New() *Backend {
	return &Backend{}
}

func (b *Backend) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Backend) record(op Op, id int) {
	b.calls = append(b.calls, Call{Op: op, ID: id})
}

func (b *Backend) checkPoint(ids ...backend.PointID) bool {
	for _, id := range ids {
		if id < 0 || int(id) >= len(b.points) {
			b.fail(fmt.Errorf("point %d: %w", id, backend.ErrUnknownHandle))
			return false
		}
	}
	return true
}

func (b *Backend) checkCurve(id backend.CurveID) bool {
	if id < 0 || int(id) >= len(b.curves) {
		b.fail(fmt.Errorf("curve %d: %w", id, backend.ErrUnknownHandle))
		return false
	}
	return true
}

func (b *Backend) checkLoop(id backend.LoopID) bool {
	if id < 0 || int(id) >= len(b.loops) {
		b.fail(fmt.Errorf("loop %d: %w", id, backend.ErrUnknownHandle))
		return false
	}
	return true
}

func (b *Backend) checkSurface(id backend.SurfaceID) bool {
	if id < 0 || int(id) >= len(b.surfaces) {
		b.fail(fmt.Errorf("surface %d: %w", id, backend.ErrUnknownHandle))
		return false
	}
	return true
}

// AddPoint stores p.
func (b *Backend) AddPoint(p geom.Point, size float64) backend.PointID {
	id := backend.PointID(len(b.points))
	b.points = append(b.points, Point{P: p, Size: size})
	b.record(OpPoint, int(id))
	return id
}

// AddLine stores a straight segment.
func (b *Backend) AddLine(from, to backend.PointID) backend.CurveID {
	b.checkPoint(from, to)
	id := backend.CurveID(len(b.curves))
	b.curves = append(b.curves, Curve{From: from, To: to})
	b.record(OpLine, int(id))
	return id
}

// AddArc stores a counterclockwise arc around center.
func (b *Backend) AddArc(from, center, to backend.PointID) backend.CurveID {
	b.checkPoint(from, center, to)
	id := backend.CurveID(len(b.curves))
	b.curves = append(b.curves, Curve{Arc: true, From: from, To: to, Center: center})
	b.record(OpArc, int(id))
	return id
}

// AddCurveLoop stores a loop. Consecutive curves must share their end
// points and the last curve must end where the first one starts.
func (b *Backend) AddCurveLoop(curves ...backend.Oriented) backend.LoopID {
	id := backend.LoopID(len(b.loops))
	b.loops = append(b.loops, slices.Clone(curves))
	b.record(OpCurveLoop, int(id))

	if len(curves) == 0 {
		b.fail(fmt.Errorf("loop %d is empty: %w", id, backend.ErrOpenLoop))
		return id
	}
	for _, o := range curves {
		if !b.checkCurve(o.Curve) {
			return id
		}
	}
	for i, o := range curves {
		next := curves[(i+1)%len(curves)]
		if _, end := b.ends(o); end != b.start(next) {
			b.fail(fmt.Errorf("loop %d: curve %d ends at point %d, curve %d starts at point %d: %w",
				id, o.Curve, end, next.Curve, b.start(next), backend.ErrOpenLoop))
			return id
		}
	}
	return id
}

func (b *Backend) ends(o backend.Oriented) (start, end backend.PointID) {
	c := b.curves[o.Curve]
	if o.Reversed {
		return c.To, c.From
	}
	return c.From, c.To
}

func (b *Backend) start(o backend.Oriented) backend.PointID {
	s, _ := b.ends(o)
	return s
}

// AddPlanarSurface stores a surface bounded by outer, minus holes.
func (b *Backend) AddPlanarSurface(outer backend.LoopID, holes ...backend.LoopID) backend.SurfaceID {
	b.checkLoop(outer)
	for _, h := range holes {
		b.checkLoop(h)
	}
	id := backend.SurfaceID(len(b.surfaces))
	b.surfaces = append(b.surfaces, Surface{Outer: outer, Holes: slices.Clone(holes)})
	b.record(OpPlanarSurface, int(id))
	return id
}

// SetStructuredCurve stores the node count and progression of c.
func (b *Backend) SetStructuredCurve(c backend.CurveID, nodes int, progression float64) {
	if !b.checkCurve(c) {
		return
	}
	b.curves[c].Nodes = nodes
	b.curves[c].Progression = progression
	b.record(OpStructuredCurve, int(c))
}

// SetStructuredSurface marks s as structured.
func (b *Backend) SetStructuredSurface(s backend.SurfaceID) {
	if !b.checkSurface(s) {
		return
	}
	b.surfaces[s].Structured = true
	b.record(OpStructuredSurface, int(s))
}

// TagRegion stores r.
func (b *Backend) TagRegion(r backend.Region) {
	for _, c := range r.Curves {
		b.checkCurve(c)
	}
	for _, s := range r.Surfaces {
		b.checkSurface(s)
	}
	r.Curves = slices.Clone(r.Curves)
	r.Surfaces = slices.Clone(r.Surfaces)
	b.regions = append(b.regions, r)
	b.record(OpTagRegion, len(b.regions)-1)
}

// Err returns the first error met.
func (b *Backend) Err() error { return b.err }

// Calls returns the recorded calls in order.
func (b *Backend) Calls() []Call { return slices.Clone(b.calls) }

// Points returns the stored points.
func (b *Backend) Points() []Point { return slices.Clone(b.points) }

// Curves returns the stored curves.
func (b *Backend) Curves() []Curve { return slices.Clone(b.curves) }

// Surfaces returns the stored surfaces.
func (b *Backend) Surfaces() []Surface { return slices.Clone(b.surfaces) }

// Regions returns the tagged regions in order.
func (b *Backend) Regions() []backend.Region { return slices.Clone(b.regions) }

// Region returns the first region with the given label and dimension.
func (b *Backend) Region(label string, dim backend.Dim) (backend.Region, bool) {
	for _, r := range b.regions {
		if r.Label == label && r.Dim() == dim {
			return r, true
		}
	}
	return backend.Region{}, false
}

// CurvePolyline returns the points of curve c from its first to its last
// point. Arcs are split into segments pieces.
func (b *Backend) CurvePolyline(c backend.CurveID, segments int) ([]geom.Point, error) {
	if c < 0 || int(c) >= len(b.curves) {
		return nil, fmt.Errorf("curve %d: %w", c, backend.ErrUnknownHandle)
	}
	cv := b.curves[c]
	for _, id := range []backend.PointID{cv.From, cv.To, cv.Center} {
		if id < 0 || int(id) >= len(b.points) {
			return nil, fmt.Errorf("curve %d point %d: %w", c, id, backend.ErrUnknownHandle)
		}
	}
	from, to := b.points[cv.From].P, b.points[cv.To].P
	if !cv.Arc {
		return []geom.Point{from, to}, nil
	}

	center := b.points[cv.Center].P
	u := r2.Sub(from, center)
	radius := r2.Norm(u)
	start := math.Atan2(u.Y, u.X)
	v := r2.Sub(to, center)
	sweep := math.Atan2(v.Y, v.X) - start
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}

	segments = max(segments, 1)
	out := make([]geom.Point, 0, segments+1)
	out = append(out, from)
	for k := 1; k < segments; k++ {
		t := start + sweep*float64(k)/float64(segments)
		out = append(out, geom.Pt(center.X+radius*math.Cos(t), center.Y+radius*math.Sin(t)))
	}
	return append(out, to), nil
}

// LoopPolyline returns the closed polyline of loop l, without repeating
// its first point.
func (b *Backend) LoopPolyline(l backend.LoopID, segments int) ([]geom.Point, error) {
	if l < 0 || int(l) >= len(b.loops) {
		return nil, fmt.Errorf("loop %d: %w", l, backend.ErrUnknownHandle)
	}
	var out []geom.Point
	for _, o := range b.loops[l] {
		pts, err := b.CurvePolyline(o.Curve, segments)
		if err != nil {
			return nil, fmt.Errorf("loop %d: %w", l, err)
		}
		if o.Reversed {
			slices.Reverse(pts)
		}
		out = append(out, pts[:len(pts)-1]...)
	}
	return out, nil
}

// SurfaceRings returns the outer polyline of s and the polylines of its
// holes.
func (b *Backend) SurfaceRings(s backend.SurfaceID, segments int) (outer []geom.Point, holes [][]geom.Point, err error) {
	if s < 0 || int(s) >= len(b.surfaces) {
		return nil, nil, fmt.Errorf("surface %d: %w", s, backend.ErrUnknownHandle)
	}
	sf := b.surfaces[s]
	outer, err = b.LoopPolyline(sf.Outer, segments)
	if err != nil {
		return nil, nil, fmt.Errorf("surface %d: %w", s, err)
	}
	for _, h := range sf.Holes {
		ring, err := b.LoopPolyline(h, segments)
		if err != nil {
			return nil, nil, fmt.Errorf("surface %d hole: %w", s, err)
		}
		holes = append(holes, ring)
	}
	return outer, holes, nil
}

// SignedArea returns the shoelace area of a closed polyline, positive
// when counterclockwise.
func SignedArea(ring []geom.Point) float64 {
	var a float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Area returns the area of s: its outer ring minus its holes.
func (b *Backend) Area(s backend.SurfaceID, segments int) (float64, error) {
	outer, holes, err := b.SurfaceRings(s, segments)
	if err != nil {
		return 0, err
	}
	a := math.Abs(SignedArea(outer))
	for _, h := range holes {
		a -= math.Abs(SignedArea(h))
	}
	return a, nil
}
