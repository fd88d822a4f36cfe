package polygon

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/cornerfan/pkg/angle"
	"github.com/chazu/cornerfan/pkg/geom"
)

// Corner is a polygon vertex with its interior angle. E1 is the unit
// vector toward the next vertex and E2 the unit vector toward the
// previous one; the interior angle sweeps counterclockwise from E1 to E2.
type Corner struct {
	C     geom.Point
	Angle angle.Angle
	E1    geom.Point
	E2    geom.Point
}

// CriticalInterval returns the critical interval of the corner angle.
func (c Corner) CriticalInterval() angle.Interval {
	return angle.CriticalInterval(c.Angle)
}

// ElementaryAngle returns the coarsest sector angle splitting both the
// interior and the exterior of the corner into whole sectors.
func (c Corner) ElementaryAngle() angle.Angle {
	return angle.Elementary(c.Angle)
}

// At returns the point at distance r from the apex, rotated by theta
// radians counterclockwise from E1.
func (c Corner) At(r, theta float64) geom.Point {
	return r2.Add(c.C, r2.Scale(r, r2.Rotate(c.E1, theta, geom.Point{})))
}

// newCorner builds the corner at a between its previous vertex prev and
// its next vertex next.
func newCorner(prev, a, next geom.Point, maxDenominator int) Corner {
	e1 := r2.Unit(r2.Sub(next, a))
	e2 := r2.Unit(r2.Sub(prev, a))
	return Corner{
		C:     a,
		Angle: angle.FromSinCos(r2.Cross(e1, e2), r2.Dot(e1, e2), maxDenominator),
		E1:    e1,
		E2:    e2,
	}
}
