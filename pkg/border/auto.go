package border

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/cornerfan/pkg/geom"
)

// AutoCircular fits a circle around the points: the minimal enclosing
// circle of radius R becomes a border of radius R·(1+BorderFactor) with a
// buffer of thickness R·ThicknessFactor.
type AutoCircular struct {
	BorderFactor    float64
	ThicknessFactor float64 // 0 for no buffer

	BackgroundName string
	BufferName     string
}

func (AutoCircular) spec() {}

// AutoRectangular fits an axis-aligned rectangle around the points. With
// l the half extents of the minimal rectangle and r = |l|, the border has
// half extents l + r·BorderFactor and a buffer of thickness
// r·ThicknessFactor.
type AutoRectangular struct {
	BorderFactor    float64
	ThicknessFactor float64

	BackgroundName string
	BufferName     string
}

func (AutoRectangular) spec() {}

// Resolve turns a Spec into a Border. Explicit borders are validated and
// copied; automatic ones are fitted to points. The circle options are
// passed to geom.SmallestCircle.
func Resolve(s Spec, points []geom.Point, opts ...geom.CircleOption) (Border, error) {
	switch s := s.(type) {
	case *Circular:
		if s == nil {
			break
		}
		if err := s.validate(); err != nil {
			return nil, err
		}
		out := *s
		return &out, nil

	case *Rectangular:
		if s == nil {
			break
		}
		if err := s.validate(); err != nil {
			return nil, err
		}
		out := *s
		return &out, nil

	case AutoCircular:
		return s.fit(points, opts)
	case *AutoCircular:
		if s == nil {
			break
		}
		return s.fit(points, opts)

	case AutoRectangular:
		return s.fit(points)
	case *AutoRectangular:
		if s == nil {
			break
		}
		return s.fit(points)
	}
	return nil, fmt.Errorf("resolve %T: %w", s, ErrUnknownBorderShape)
}

func (a AutoCircular) fit(points []geom.Point, opts []geom.CircleOption) (*Circular, error) {
	c, err := geom.SmallestCircle(points, opts...)
	if err != nil {
		return nil, fmt.Errorf("auto circular border: %w", err)
	}
	out := &Circular{
		Center:         c.Center,
		Radius:         c.Radius * (1 + a.BorderFactor),
		Thickness:      c.Radius * a.ThicknessFactor,
		BackgroundName: a.BackgroundName,
		BufferName:     a.BufferName,
	}
	if err := out.validate(); err != nil {
		return nil, fmt.Errorf("auto circular border: %w", err)
	}
	return out, nil
}

func (a AutoRectangular) fit(points []geom.Point) (*Rectangular, error) {
	rect, err := geom.SmallestRectangle(points)
	if err != nil {
		return nil, fmt.Errorf("auto rectangular border: %w", err)
	}
	l := rect.HalfExtents()
	r := r2.Norm(l)
	out := &Rectangular{
		Center:         rect.Center(),
		HalfWidth:      l.X + r*a.BorderFactor,
		HalfHeight:     l.Y + r*a.BorderFactor,
		Thickness:      r * a.ThicknessFactor,
		BackgroundName: a.BackgroundName,
		BufferName:     a.BufferName,
	}
	if err := out.validate(); err != nil {
		return nil, fmt.Errorf("auto rectangular border: %w", err)
	}
	return out, nil
}
