// Package layout plans and emits the structured corner fans of a
// geometry.
//
// Every polygon corner is surrounded by a fan of elementary sectors whose
// spokes and arcs carry prescribed node counts; every edge is covered by
// one interior and one exterior quadrilateral between the fans of its two
// corners. Plan computes the positions and counts, Emit drives a
// backend.Backend through the construction calls in a fixed order.
package layout

import (
	"fmt"

	"github.com/chazu/cornerfan/pkg/angle"
	"github.com/chazu/cornerfan/pkg/border"
	"github.com/chazu/cornerfan/pkg/geom"
)

// Layout is a complete plan: one PolygonPlan per polygon, in input order,
// and the plan of the border.
type Layout struct {
	MeshSize     float64
	CornerRadius float64 // radius budget shared by all polygons
	Growth       float64 // spoke progression
	Polygons     []PolygonPlan
	Border       BorderPlan
}

// PolygonPlan holds the fans and edge quads of one polygon.
type PolygonPlan struct {
	Name        string
	Elementary  angle.Angle
	Radius      float64 // fan radius
	CornerSize  float64 // mesh size along the edges between fans
	CornerNodes int     // nodes on each spoke and each fan arc
	Corners     []CornerPlan
	Edges       []EdgePlan // edge i joins corner i and corner i+1
}

// CornerPlan is the fan around one vertex. Fan holds Interior+Exterior
// points at radius Radius, spaced by the elementary angle
// counterclockwise from the direction of the next vertex. Sector k spans
// Fan[k] to Fan[k+1] (circularly); sectors below Interior lie inside the
// polygon.
type CornerPlan struct {
	Apex     geom.Point
	Angle    angle.Angle
	Interior int
	Exterior int
	Fan      []geom.Point
}

// Sectors returns the number of sectors of the fan.
func (c CornerPlan) Sectors() int { return c.Interior + c.Exterior }

// FanRef designates Fan[Index] of corner Corner.
type FanRef struct {
	Corner int
	Index  int
}

// Segment is a straight segment between two fan points.
type Segment struct {
	From, To FanRef
}

// EdgePlan describes the quads along one edge. Interface runs along the
// polygon edge; Interior and Exterior close the quads on either side.
type EdgePlan struct {
	Length    float64
	Nodes     int
	Interface Segment
	Interior  Segment
	Exterior  Segment
}

// Point resolves a fan reference.
func (p *PolygonPlan) Point(r FanRef) geom.Point {
	return p.Corners[r.Corner].Fan[r.Index]
}

// Shape is the kind of border.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeRectangle
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Ring is a closed border curve through four points, counterclockwise.
// Side i joins Points[i] and Points[(i+1)%4]: a quarter arc around the
// border center for a circle, a straight side for a rectangle.
type Ring struct {
	Points [4]geom.Point
	Nodes  [4]int
}

// BorderPlan holds the inner boundary of the border and, when the border
// is buffered, its outer boundary.
type BorderPlan struct {
	Shape    Shape
	Center   geom.Point
	Inner    Ring
	Outer    Ring
	Buffered bool
	Labels   border.Labels
}
