// Package border models the shape enclosing all polygons of a geometry:
// a circle or an axis-aligned rectangle, optionally surrounded by a
// buffer layer of uniform thickness.
//
// Both the resolved shapes (Border) and the ways of obtaining one (Spec)
// are closed sets of types; the marker methods keep other packages from
// adding variants.
package border

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/cornerfan/pkg/geom"
)

// Default region labels.
const (
	DefaultBackgroundName = "background"
	DefaultBufferName     = "PML"
)

var (
	// ErrUnknownBorderShape is returned for a nil or foreign Spec.
	ErrUnknownBorderShape = errors.New("border: unknown border shape")

	// ErrInvalidBorder is returned for non-positive extents or negative
	// thickness.
	ErrInvalidBorder = errors.New("border: invalid border")
)

// Labels names the regions a border produces.
type Labels struct {
	Background string // region between the polygons and the border
	Buffer     string // buffer layer outside the border
}

func labels(background, buffer string) Labels {
	l := Labels{Background: background, Buffer: buffer}
	if l.Background == "" {
		l.Background = DefaultBackgroundName
	}
	if l.Buffer == "" {
		l.Buffer = DefaultBufferName
	}
	return l
}

// Spec describes how the border of a geometry is obtained: an explicit
// *Circular or *Rectangular, or an AutoCircular or AutoRectangular fitted
// to the polygon vertices.
type Spec interface {
	spec()
}

// Border is a resolved enclosing shape, either *Circular or *Rectangular.
type Border interface {
	Spec

	// Origin returns the center of the shape.
	Origin() geom.Point

	// DistToInnerBoundary returns a signed distance from points to the
	// inner boundary: positive while every point is strictly inside,
	// negative once one of them is outside.
	DistToInnerBoundary(points []geom.Point) (float64, error)

	// Buffer returns the buffer thickness and whether there is one.
	Buffer() (float64, bool)

	// Labels returns the region labels, defaults filled in.
	Labels() Labels

	// Translate returns a copy of the border moved by v.
	Translate(v geom.Point) Border

	border()
}

// Compile-time interface checks.
var (
	_ Border = (*Circular)(nil)
	_ Border = (*Rectangular)(nil)
	_ Spec   = AutoCircular{}
	_ Spec   = AutoRectangular{}
)

// Circular is a circular border.
type Circular struct {
	Center    geom.Point
	Radius    float64
	Thickness float64 // buffer thickness, 0 for none

	BackgroundName string // defaults to DefaultBackgroundName
	BufferName     string // defaults to DefaultBufferName
}

func (*Circular) spec()   {}
func (*Circular) border() {}

// Origin returns the center of the circle.
func (c *Circular) Origin() geom.Point { return c.Center }

// DistToInnerBoundary returns the radius minus the largest distance from
// the center to a point.
func (c *Circular) DistToInnerBoundary(points []geom.Point) (float64, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("circular border distance: %w", geom.ErrEmptyPointSet)
	}
	far := 0.0
	for _, p := range points {
		far = math.Max(far, geom.Dist(p, c.Center))
	}
	return c.Radius - far, nil
}

// Buffer returns the buffer thickness.
func (c *Circular) Buffer() (float64, bool) { return c.Thickness, c.Thickness > 0 }

// Labels returns the region labels.
func (c *Circular) Labels() Labels { return labels(c.BackgroundName, c.BufferName) }

// Translate returns a moved copy.
func (c *Circular) Translate(v geom.Point) Border {
	out := *c
	out.Center = r2.Add(c.Center, v)
	return &out
}

func (c *Circular) validate() error {
	if !(c.Radius > 0) || !(c.Thickness >= 0) {
		return fmt.Errorf("circular border radius %g thickness %g: %w", c.Radius, c.Thickness, ErrInvalidBorder)
	}
	return nil
}

// Rectangular is an axis-aligned rectangular border.
type Rectangular struct {
	Center     geom.Point
	HalfWidth  float64
	HalfHeight float64
	Thickness  float64 // buffer thickness, 0 for none

	BackgroundName string
	BufferName     string
}

func (*Rectangular) spec()   {}
func (*Rectangular) border() {}

// Origin returns the center of the rectangle.
func (r *Rectangular) Origin() geom.Point { return r.Center }

// DistToInnerBoundary returns the smallest gap between the points and
// the sides of the rectangle along either axis.
func (r *Rectangular) DistToInnerBoundary(points []geom.Point) (float64, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("rectangular border distance: %w", geom.ErrEmptyPointSet)
	}
	var fx, fy float64
	for _, p := range points {
		fx = math.Max(fx, math.Abs(p.X-r.Center.X))
		fy = math.Max(fy, math.Abs(p.Y-r.Center.Y))
	}
	return math.Min(r.HalfWidth-fx, r.HalfHeight-fy), nil
}

// Buffer returns the buffer thickness.
func (r *Rectangular) Buffer() (float64, bool) { return r.Thickness, r.Thickness > 0 }

// Labels returns the region labels.
func (r *Rectangular) Labels() Labels { return labels(r.BackgroundName, r.BufferName) }

// Translate returns a moved copy.
func (r *Rectangular) Translate(v geom.Point) Border {
	out := *r
	out.Center = r2.Add(r.Center, v)
	return &out
}

func (r *Rectangular) validate() error {
	if !(r.HalfWidth > 0) || !(r.HalfHeight > 0) || !(r.Thickness >= 0) {
		return fmt.Errorf("rectangular border %g×%g thickness %g: %w",
			2*r.HalfWidth, 2*r.HalfHeight, r.Thickness, ErrInvalidBorder)
	}
	return nil
}
