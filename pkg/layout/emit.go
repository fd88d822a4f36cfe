package layout

import (
	"errors"
	"fmt"

	"github.com/chazu/cornerfan/pkg/backend"
)

// Regions lists the regions tagged by Emit, in tagging order.
type Regions struct {
	Tags []backend.Region
}

// Lookup returns the region with the given label and dimension.
func (r *Regions) Lookup(label string, dim backend.Dim) (backend.Region, bool) {
	for _, t := range r.Tags {
		if t.Label == label && t.Dim() == dim {
			return t, true
		}
	}
	return backend.Region{}, false
}

// Emit drives b through the construction of l. For each polygon, in
// order: the corner fans, the edge quads, then the polygon face. Then the
// border: inner ring, buffer ring, background face. Regions are tagged
// last: one surface region per polygon name, the background surfaces
// (exterior fans and quads included), the inner boundary curves, and
// when buffered the buffer surface and its outer boundary curves.
//
// Emit stops at the first error reported by b.Err.
func Emit(l *Layout, b backend.Backend) (*Regions, error) {
	if l == nil {
		return nil, errors.New("emit: nil layout")
	}
	e := &emitter{b: b, h: l.MeshSize, growth: l.Growth, surfaces: make(map[string][]backend.SurfaceID)}

	holes := make([]backend.LoopID, 0, len(l.Polygons))
	var background []backend.SurfaceID
	for i := range l.Polygons {
		p := &l.Polygons[i]
		outer, interior, exterior := e.polygon(p)
		if err := b.Err(); err != nil {
			return nil, fmt.Errorf("emit polygon %q: %w", p.Name, err)
		}
		holes = append(holes, outer)
		e.add(p.Name, interior...)
		background = append(background, exterior...)
	}

	bp := &l.Border
	var center backend.PointID
	if bp.Shape == ShapeCircle {
		center = b.AddPoint(bp.Center, e.h)
	}
	innerLoop, innerCurves := e.ring(bp.Shape, center, bp.Inner)
	var buffer backend.SurfaceID
	var outerCurves []backend.CurveID
	if bp.Buffered {
		var outerLoop backend.LoopID
		outerLoop, outerCurves = e.ring(bp.Shape, center, bp.Outer)
		buffer = b.AddPlanarSurface(outerLoop, innerLoop)
	}
	background = append(background, b.AddPlanarSurface(innerLoop, holes...))
	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("emit %s border: %w", bp.Shape, err)
	}
	e.add(bp.Labels.Background, background...)

	regions := &Regions{}
	for _, label := range e.order {
		regions.Tags = append(regions.Tags, backend.Region{Label: label, Surfaces: e.surfaces[label]})
	}
	regions.Tags = append(regions.Tags, backend.Region{Label: bp.Labels.Background + "_boundary", Curves: innerCurves})
	if bp.Buffered {
		regions.Tags = append(regions.Tags,
			backend.Region{Label: bp.Labels.Buffer, Surfaces: []backend.SurfaceID{buffer}},
			backend.Region{Label: bp.Labels.Buffer + "_boundary", Curves: outerCurves},
		)
	}

	for _, r := range regions.Tags {
		b.TagRegion(r)
		Logger().Debug("tagged region",
			"label", r.Label,
			"dim", r.Dim(),
			"entities", len(r.Curves)+len(r.Surfaces),
		)
	}
	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("emit tags: %w", err)
	}
	return regions, nil
}

// emitter accumulates surfaces per label, labels in first-use order.
type emitter struct {
	b        backend.Backend
	h        float64
	growth   float64
	surfaces map[string][]backend.SurfaceID
	order    []string
}

func (e *emitter) add(label string, s ...backend.SurfaceID) {
	if _, ok := e.surfaces[label]; !ok {
		e.order = append(e.order, label)
	}
	e.surfaces[label] = append(e.surfaces[label], s...)
}

// fan holds the handles of one corner. arcs[k] joins points[k] and
// points[k+1] counterclockwise.
type fan struct {
	points []backend.PointID
	arcs   []backend.CurveID
}

// polygon emits the fans, edge quads and face of p. It returns the loop
// bounding p and its exterior quads and fans, oriented counterclockwise
// around the polygon, with the surfaces on each side.
func (e *emitter) polygon(p *PolygonPlan) (outer backend.LoopID, interior, exterior []backend.SurfaceID) {
	b := e.b
	fans := make([]fan, len(p.Corners))
	for i, c := range p.Corners {
		apex := b.AddPoint(c.Apex, e.h)
		n := c.Sectors()
		f := fan{points: make([]backend.PointID, n), arcs: make([]backend.CurveID, n)}
		for k, pt := range c.Fan {
			f.points[k] = b.AddPoint(pt, e.h)
		}
		spokes := make([]backend.CurveID, n)
		for k := range spokes {
			spokes[k] = b.AddLine(apex, f.points[k])
			b.SetStructuredCurve(spokes[k], p.CornerNodes, e.growth)
		}
		for k := range f.arcs {
			f.arcs[k] = b.AddArc(f.points[k], apex, f.points[(k+1)%n])
			b.SetStructuredCurve(f.arcs[k], p.CornerNodes, 1)
		}
		for k := range n {
			loop := b.AddCurveLoop(backend.Fwd(spokes[k]), backend.Fwd(f.arcs[k]), backend.Rev(spokes[(k+1)%n]))
			s := b.AddPlanarSurface(loop)
			b.SetStructuredSurface(s)
			if k < c.Interior {
				interior = append(interior, s)
			} else {
				exterior = append(exterior, s)
			}
		}
		fans[i] = f
	}

	pt := func(r FanRef) backend.PointID { return fans[r.Corner].points[r.Index] }
	n := len(p.Corners)
	cav := make([]backend.CurveID, n)
	vac := make([]backend.CurveID, n)
	for i, ed := range p.Edges {
		j := (i + 1) % n
		iface := b.AddLine(pt(ed.Interface.From), pt(ed.Interface.To))
		cav[i] = b.AddLine(pt(ed.Interior.From), pt(ed.Interior.To))
		vac[i] = b.AddLine(pt(ed.Exterior.From), pt(ed.Exterior.To))
		for _, c := range []backend.CurveID{iface, cav[i], vac[i]} {
			b.SetStructuredCurve(c, ed.Nodes, 1)
		}

		pd := p.Corners[j].Interior
		last := p.Corners[i].Sectors() - 1
		in := b.AddPlanarSurface(b.AddCurveLoop(
			backend.Fwd(iface),
			backend.Rev(fans[j].arcs[pd-1]),
			backend.Fwd(cav[i]),
			backend.Rev(fans[i].arcs[0]),
		))
		out := b.AddPlanarSurface(b.AddCurveLoop(
			backend.Rev(fans[i].arcs[last]),
			backend.Fwd(vac[i]),
			backend.Rev(fans[j].arcs[pd]),
			backend.Rev(iface),
		))
		b.SetStructuredSurface(in)
		b.SetStructuredSurface(out)
		interior = append(interior, in)
		exterior = append(exterior, out)
	}

	// The face is bounded by the interior arcs not touching an edge and
	// the interior edge lines. Walking corner i then the line of edge
	// i-1 goes clockwise.
	var face []backend.Oriented
	for i := n - 1; i >= 0; i-- {
		for k := 1; k < p.Corners[i].Interior-1; k++ {
			face = append(face, backend.Fwd(fans[i].arcs[k]))
		}
		face = append(face, backend.Fwd(cav[(i-1+n)%n]))
	}
	s := b.AddPlanarSurface(b.AddCurveLoop(backend.Reverse(face)...))
	interior = append(interior, s)

	var hole []backend.Oriented
	for i, c := range p.Corners {
		for k := c.Interior + 1; k < c.Sectors()-1; k++ {
			hole = append(hole, backend.Fwd(fans[i].arcs[k]))
		}
		hole = append(hole, backend.Fwd(vac[i]))
	}
	return b.AddCurveLoop(hole...), interior, exterior
}

// ring emits the four points, sides and loop of a border ring. center is
// only used for circles.
func (e *emitter) ring(shape Shape, center backend.PointID, r Ring) (backend.LoopID, []backend.CurveID) {
	b := e.b
	var pts [4]backend.PointID
	for k, p := range r.Points {
		pts[k] = b.AddPoint(p, e.h)
	}
	curves := make([]backend.CurveID, 4)
	loop := make([]backend.Oriented, 4)
	for k := range curves {
		next := pts[(k+1)%4]
		if shape == ShapeCircle {
			curves[k] = b.AddArc(pts[k], center, next)
		} else {
			curves[k] = b.AddLine(pts[k], next)
		}
		b.SetStructuredCurve(curves[k], r.Nodes[k], 1)
		loop[k] = backend.Fwd(curves[k])
	}
	return b.AddCurveLoop(loop...), curves
}
