package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	r2.Box
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// HalfExtents returns the half width and half height of the rectangle.
func (r Rect) HalfExtents() Point {
	return Point{X: (r.Max.X - r.Min.X) / 2, Y: (r.Max.Y - r.Min.Y) / 2}
}

// SmallestRectangle returns the smallest axis-aligned rectangle
// containing every point.
func SmallestRectangle(points []Point) (Rect, error) {
	if len(points) == 0 {
		return Rect{}, fmt.Errorf("smallest rectangle: %w", ErrEmptyPointSet)
	}

	box := r2.Box{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range points {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	return Rect{Box: box}, nil
}
