package layout

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/chazu/cornerfan/pkg/angle"
	"github.com/chazu/cornerfan/pkg/border"
	"github.com/chazu/cornerfan/pkg/geom"
	"github.com/chazu/cornerfan/pkg/geometry"
	"github.com/chazu/cornerfan/pkg/polygon"
)

// Plan computes the corner fans, edge quads and border rings of g for
// the target mesh size. Polygons are planned concurrently and merged in
// input order; when several fail, the error of the first one in input
// order is returned. g is never modified.
func Plan(g *geometry.Geometry, meshSize float64, opts ...Option) (*Layout, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(meshSize > 0) || math.IsInf(meshSize, 1) {
		return nil, fmt.Errorf("plan with mesh size %g: %w", meshSize, ErrInvalidMeshSize)
	}
	if !(o.growth > 0) || math.IsInf(o.growth, 1) {
		return nil, fmt.Errorf("plan with growth %g: %w", o.growth, ErrInvalidGrowth)
	}

	maxRadius, err := g.MaxCornerRadius()
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	radius := maxRadius * o.shrink
	if !(radius > 0) {
		return nil, fmt.Errorf("plan: corner radius %g (largest admissible %g, shrink %g): %w",
			radius, maxRadius, o.shrink, ErrNonPositiveRadius)
	}

	polygons := g.Polygons()
	plans := make([]PolygonPlan, len(polygons))
	errs := make([]error, len(polygons))

	var eg errgroup.Group
	eg.SetLimit(o.workers)
	for i, p := range polygons {
		eg.Go(func() error {
			plans[i], errs[i] = planPolygon(p, radius, meshSize)
			return errs[i]
		})
	}
	if eg.Wait() != nil {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}

	bp, err := planBorder(g.Border(), meshSize)
	if err != nil {
		return nil, err
	}

	Logger().Info("layout planned",
		"polygons", len(plans),
		"mesh_size", meshSize,
		"corner_radius", radius,
		"border", bp.Shape,
	)

	return &Layout{
		MeshSize:     meshSize,
		CornerRadius: radius,
		Growth:       o.growth,
		Polygons:     plans,
		Border:       bp,
	}, nil
}

// nodeCount returns max(2, round(1+x)), rounding half to even.
func nodeCount(x float64) int {
	return max(2, int(math.RoundToEven(1+x)))
}

// sectorCounts returns how many elementary sectors of angle phi fit in
// the corner angle theta and in its complement.
func sectorCounts(theta, phi angle.Angle) (p, q int64) {
	return theta.Div(phi).Floor(), angle.Int(2).Sub(theta).Div(phi).Floor()
}

func planPolygon(p *polygon.Polygon, radius, h float64) (PolygonPlan, error) {
	phi := p.ElementaryAngle()
	r := math.Min(radius, h)
	plan := PolygonPlan{
		Name:        p.Name(),
		Elementary:  phi,
		Radius:      r,
		CornerSize:  math.Sqrt(h * r * 2 * math.Sin(phi.Radians()/2)),
		CornerNodes: nodeCount(r / h),
	}

	corners := p.Corners()
	angles := make([]angle.Angle, len(corners))
	plan.Corners = make([]CornerPlan, len(corners))
	for i, c := range corners {
		angles[i] = c.Angle
		interior, exterior := sectorCounts(c.Angle, phi)
		if interior < 2 || exterior < 2 {
			return PolygonPlan{}, &SectorError{
				Polygon:    p.Name(),
				Corner:     i,
				Angle:      c.Angle,
				Elementary: phi,
				Interior:   interior,
				Exterior:   exterior,
			}
		}
		fan := make([]geom.Point, interior+exterior)
		for k := range fan {
			fan[k] = c.At(r, phi.MulInt(int64(k)).Radians())
		}
		plan.Corners[i] = CornerPlan{
			Apex:     c.C,
			Angle:    c.Angle,
			Interior: int(interior),
			Exterior: int(exterior),
			Fan:      fan,
		}
	}

	n := len(corners)
	plan.Edges = make([]EdgePlan, n)
	for i, l := range p.Lengths() {
		j := (i + 1) % n
		c, d := plan.Corners[i], plan.Corners[j]
		plan.Edges[i] = EdgePlan{
			Length:    l,
			Nodes:     nodeCount((l - 2*r) / plan.CornerSize),
			Interface: Segment{From: FanRef{i, 0}, To: FanRef{j, d.Interior}},
			Interior:  Segment{From: FanRef{j, d.Interior - 1}, To: FanRef{i, 1}},
			Exterior:  Segment{From: FanRef{i, c.Sectors() - 1}, To: FanRef{j, d.Interior + 1}},
		}
	}

	Logger().Debug("planned polygon",
		"name", plan.Name,
		"elementary", phi.String(),
		"angles", angle.Format(angles),
		"radius", r,
		"corner_size", plan.CornerSize,
		"corner_nodes", plan.CornerNodes,
	)
	return plan, nil
}

func planBorder(b border.Border, h float64) (BorderPlan, error) {
	thickness, buffered := b.Buffer()
	bp := BorderPlan{Buffered: buffered, Labels: b.Labels()}

	switch b := b.(type) {
	case *border.Circular:
		bp.Shape = ShapeCircle
		bp.Center = b.Center
		bp.Inner = circleRing(b.Center, b.Radius, h)
		if buffered {
			bp.Outer = circleRing(b.Center, b.Radius+thickness, h)
		}
	case *border.Rectangular:
		bp.Shape = ShapeRectangle
		bp.Center = b.Center
		bp.Inner = rectangleRing(b.Center, b.HalfWidth, b.HalfHeight, h)
		if buffered {
			bp.Outer = rectangleRing(b.Center, b.HalfWidth+thickness, b.HalfHeight+thickness, h)
		}
	default:
		return BorderPlan{}, fmt.Errorf("plan border %T: %w", b, border.ErrUnknownBorderShape)
	}
	return bp, nil
}

func circleRing(c geom.Point, radius, h float64) Ring {
	n := nodeCount(radius * math.Pi / 2 / h)
	return Ring{
		Points: [4]geom.Point{
			geom.Pt(c.X+radius, c.Y),
			geom.Pt(c.X, c.Y+radius),
			geom.Pt(c.X-radius, c.Y),
			geom.Pt(c.X, c.Y-radius),
		},
		Nodes: [4]int{n, n, n, n},
	}
}

func rectangleRing(c geom.Point, hw, hh, h float64) Ring {
	nw, nh := nodeCount(2*hw/h), nodeCount(2*hh/h)
	return Ring{
		Points: [4]geom.Point{
			geom.Pt(c.X+hw, c.Y+hh),
			geom.Pt(c.X-hw, c.Y+hh),
			geom.Pt(c.X-hw, c.Y-hh),
			geom.Pt(c.X+hw, c.Y-hh),
		},
		Nodes: [4]int{nw, nh, nw, nh},
	}
}
