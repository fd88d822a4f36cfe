// Package backend defines the interface the corner-fan layout is drawn
// through. Implementations (record, sdfx, geojson) turn the same sequence
// of construction calls into a call log, signed distance regions or
// GeoJSON features, so the layout never depends on a particular meshing
// or rendering library.
package backend

import (
	"errors"

	"github.com/chazu/cornerfan/pkg/geom"
)

// ErrUnknownHandle is reported when a call references a handle the
// backend never returned.
var ErrUnknownHandle = errors.New("backend: unknown handle")

// ErrOpenLoop is reported when the curves of a loop do not join end to
// end.
var ErrOpenLoop = errors.New("backend: curve loop is not closed")

// Opaque handles. Each kind is numbered independently from 0.
type (
	PointID   int
	CurveID   int
	LoopID    int
	SurfaceID int
)

// Oriented is a curve traversed forward or backward inside a loop.
type Oriented struct {
	Curve    CurveID
	Reversed bool
}

// Fwd traverses c from its first to its last point.
func Fwd(c CurveID) Oriented { return Oriented{Curve: c} }

// Rev traverses c from its last to its first point.
func Rev(c CurveID) Oriented { return Oriented{Curve: c, Reversed: true} }

// Reverse returns the loop traversed the other way round.
func Reverse(loop []Oriented) []Oriented {
	out := make([]Oriented, len(loop))
	for i, o := range loop {
		out[len(loop)-1-i] = Oriented{Curve: o.Curve, Reversed: !o.Reversed}
	}
	return out
}

// Dim is the topological dimension of a tagged region.
type Dim int

const (
	DimCurve   Dim = 1
	DimSurface Dim = 2
)

// String returns a human-readable name for the dimension.
func (d Dim) String() string {
	switch d {
	case DimCurve:
		return "curve"
	case DimSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// Region is a labelled group of curves or surfaces.
type Region struct {
	Label    string
	Curves   []CurveID
	Surfaces []SurfaceID
}

// Dim returns DimSurface when the region holds surfaces, DimCurve
// otherwise.
func (r Region) Dim() Dim {
	if len(r.Surfaces) > 0 {
		return DimSurface
	}
	return DimCurve
}

// Backend receives the construction calls of a layout.
//
// Calls never fail individually. A backend records the first error it
// meets (an unknown handle, an open loop) and reports it from Err; later
// calls may return meaningless handles once Err is non-nil.
type Backend interface {
	// Entities. size is the target mesh size near the point.
	AddPoint(p geom.Point, size float64) PointID
	AddLine(from, to PointID) CurveID
	// AddArc adds the counterclockwise circular arc from from to to
	// around center. The arc spans less than π.
	AddArc(from, center, to PointID) CurveID
	AddCurveLoop(curves ...Oriented) LoopID
	AddPlanarSurface(outer LoopID, holes ...LoopID) SurfaceID

	// Structured meshing constraints. nodes counts the mesh nodes on the
	// curve, ends included; progression is the ratio between consecutive
	// segment lengths.
	SetStructuredCurve(c CurveID, nodes int, progression float64)
	SetStructuredSurface(s SurfaceID)

	// Labels
	TagRegion(r Region)

	Err() error
}
