// Package geometry groups the polygons of a problem with the border that
// encloses them.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/chazu/cornerfan/pkg/angle"
	"github.com/chazu/cornerfan/pkg/border"
	"github.com/chazu/cornerfan/pkg/geom"
	"github.com/chazu/cornerfan/pkg/polygon"
)

// ErrNoPolygons is returned when a geometry is built without polygons.
var ErrNoPolygons = errors.New("geometry: no polygons")

// Geometry is a list of polygons and a resolved border. Polygons may
// share a name, in which case their regions share a label.
type Geometry struct {
	polygons []*polygon.Polygon
	border   border.Border
}

// New resolves spec against the vertices of every polygon and returns the
// resulting geometry. The circle options reach geom.SmallestCircle when
// the border is fitted automatically.
func New(polygons []*polygon.Polygon, spec border.Spec, opts ...geom.CircleOption) (*Geometry, error) {
	if len(polygons) == 0 {
		return nil, ErrNoPolygons
	}
	for i, p := range polygons {
		if p == nil {
			return nil, fmt.Errorf("geometry: polygon %d is nil: %w", i, ErrNoPolygons)
		}
	}
	g := &Geometry{polygons: slices.Clone(polygons)}
	b, err := border.Resolve(spec, g.Vertices(), opts...)
	if err != nil {
		return nil, fmt.Errorf("geometry border: %w", err)
	}
	g.border = b
	return g, nil
}

// Polygons returns the polygons in input order.
func (g *Geometry) Polygons() []*polygon.Polygon { return slices.Clone(g.polygons) }

// Border returns the resolved border.
func (g *Geometry) Border() border.Border { return g.border }

// Vertices returns the vertices of every polygon, polygon after polygon.
func (g *Geometry) Vertices() []geom.Point {
	var out []geom.Point
	for _, p := range g.polygons {
		out = append(out, p.Vertices()...)
	}
	return out
}

// CenterOrigin returns a copy of the geometry translated so that the
// border is centered on the origin.
func (g *Geometry) CenterOrigin() *Geometry {
	o := g.border.Origin()
	v := geom.Pt(-o.X, -o.Y)
	out := &Geometry{
		polygons: make([]*polygon.Polygon, len(g.polygons)),
		border:   g.border.Translate(v),
	}
	for i, p := range g.polygons {
		out.polygons[i] = p.Translate(v)
	}
	return out
}

// CriticalIntervals returns the critical interval of each polygon name.
// Polygons sharing a name contribute the union of their intervals.
func (g *Geometry) CriticalIntervals() map[string]angle.Interval {
	out := make(map[string]angle.Interval, len(g.polygons))
	for _, p := range g.polygons {
		in := p.CriticalInterval()
		if prev, ok := out[p.Name()]; ok {
			in = prev.Union(in)
		}
		out[p.Name()] = in
	}
	return out
}

// MaxCornerRadius returns the largest corner fan radius that keeps fans
// of distinct vertices apart and inside the border: half the smallest
// distance between any two vertices, capped by the distance to the inner
// boundary of the border.
func (g *Geometry) MaxCornerRadius() (float64, error) {
	verts := g.Vertices()
	d, err := geom.MinDist(verts)
	if err != nil {
		return 0, fmt.Errorf("max corner radius: %w", err)
	}
	inner, err := g.border.DistToInnerBoundary(verts)
	if err != nil {
		return 0, fmt.Errorf("max corner radius: %w", err)
	}
	return math.Min(d/2, inner), nil
}
