package layout_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/chazu/cornerfan/pkg/angle"
	"github.com/chazu/cornerfan/pkg/border"
	"github.com/chazu/cornerfan/pkg/geom"
	"github.com/chazu/cornerfan/pkg/geometry"
	"github.com/chazu/cornerfan/pkg/layout"
	"github.com/chazu/cornerfan/pkg/polygon"
)

// regular returns the vertices of a regular n-gon of circumradius r
// centered at c.
func regular(n int, r float64, c geom.Point) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		t := 2 * math.Pi * float64(i) / float64(n)
		out[i] = []float64{c.X + r*math.Cos(t), c.Y + r*math.Sin(t)}
	}
	return out
}

func mustPolygon(t *testing.T, name string, vertices [][]float64) *polygon.Polygon {
	t.Helper()
	p, err := polygon.FromVertices(vertices, name)
	if err != nil {
		t.Fatalf("FromVertices(%q) error: %v", name, err)
	}
	return p
}

func mustGeometry(t *testing.T, spec border.Spec, polygons ...*polygon.Polygon) *geometry.Geometry {
	t.Helper()
	g, err := geometry.New(polygons, spec, geom.WithRand(rand.New(rand.NewPCG(11, 13))))
	if err != nil {
		t.Fatalf("geometry.New() error: %v", err)
	}
	return g
}

func TestPlanRegularPolygons(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		elementary angle.Angle
		interior   int
		exterior   int
	}{
		{"square", 4, angle.New(1, 4), 2, 6},
		{"hexagon", 6, angle.New(1, 3), 2, 4},
		{"octagon", 8, angle.New(1, 4), 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPolygon(t, "ngon", regular(tt.n, 1, geom.Pt(0, 0)))
			g := mustGeometry(t, border.AutoCircular{BorderFactor: 0.3}, p)

			l, err := layout.Plan(g, 0.1)
			if err != nil {
				t.Fatalf("Plan() error: %v", err)
			}
			if len(l.Polygons) != 1 {
				t.Fatalf("planned %d polygons, want 1", len(l.Polygons))
			}
			pp := l.Polygons[0]
			if pp.Elementary != tt.elementary {
				t.Errorf("Elementary = %s, want %s", pp.Elementary, tt.elementary)
			}

			minDist, err := p.MinVertexDistance()
			if err != nil {
				t.Fatalf("MinVertexDistance() error: %v", err)
			}
			if !(pp.Radius > 0) || pp.Radius > minDist/2 {
				t.Errorf("Radius = %v, want in (0, %v]", pp.Radius, minDist/2)
			}
			if math.Abs(l.CornerRadius-0.3*0.75) > 1e-9 {
				t.Errorf("CornerRadius = %v, want 0.225", l.CornerRadius)
			}

			for i, c := range pp.Corners {
				if c.Interior != tt.interior || c.Exterior != tt.exterior {
					t.Errorf("corner %d: (P, Q) = (%d, %d), want (%d, %d)",
						i, c.Interior, c.Exterior, tt.interior, tt.exterior)
				}
				if len(c.Fan) != c.Sectors() {
					t.Errorf("corner %d: %d fan points for %d sectors", i, len(c.Fan), c.Sectors())
				}
				for k, f := range c.Fan {
					if d := geom.Dist(f, c.Apex); math.Abs(d-pp.Radius) > 1e-12 {
						t.Errorf("corner %d fan point %d at distance %v, want %v", i, k, d, pp.Radius)
					}
				}
			}
			for i, e := range pp.Edges[1:] {
				if e.Nodes != pp.Edges[0].Nodes {
					t.Errorf("edge %d has %d nodes, edge 0 has %d", i+1, e.Nodes, pp.Edges[0].Nodes)
				}
			}
		})
	}
}

func TestPlanEdgeSegments(t *testing.T) {
	p := mustPolygon(t, "sq", [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}})
	g := mustGeometry(t, &border.Circular{Radius: 2}, p)
	l, err := layout.Plan(g, 0.25)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	pp := &l.Polygons[0]

	if pp.Radius != 0.25 {
		t.Errorf("Radius = %v, want 0.25", pp.Radius)
	}
	if pp.CornerNodes != 2 {
		t.Errorf("CornerNodes = %d, want 2", pp.CornerNodes)
	}
	wantSize := math.Sqrt(0.25 * 0.25 * 2 * math.Sin(math.Pi/8))
	if math.Abs(pp.CornerSize-wantSize) > 1e-15 {
		t.Errorf("CornerSize = %v, want %v", pp.CornerSize, wantSize)
	}

	// Edge 0 runs from (-1, -1) to (1, -1).
	e := pp.Edges[0]
	if e.Nodes != 8 {
		t.Errorf("edge Nodes = %d, want 8", e.Nodes)
	}
	checks := []struct {
		name string
		ref  layout.FanRef
		want geom.Point
	}{
		{"interface start", e.Interface.From, geom.Pt(-0.75, -1)},
		{"interface end", e.Interface.To, geom.Pt(0.75, -1)},
		{"interior start", e.Interior.From, geom.Pt(1-0.25*math.Cos(math.Pi/4), -1+0.25*math.Sin(math.Pi/4))},
		{"interior end", e.Interior.To, geom.Pt(-1+0.25*math.Cos(math.Pi/4), -1+0.25*math.Sin(math.Pi/4))},
		{"exterior start", e.Exterior.From, geom.Pt(-1+0.25*math.Cos(math.Pi/4), -1-0.25*math.Sin(math.Pi/4))},
		{"exterior end", e.Exterior.To, geom.Pt(1-0.25*math.Cos(math.Pi/4), -1-0.25*math.Sin(math.Pi/4))},
	}
	for _, c := range checks {
		if got := pp.Point(c.ref); geom.Dist(got, c.want) > 1e-12 {
			t.Errorf("%s = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestPlanBorder(t *testing.T) {
	p := mustPolygon(t, "sq", [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}})

	t.Run("circle", func(t *testing.T) {
		g := mustGeometry(t, &border.Circular{Center: geom.Pt(0, 0), Radius: 2, Thickness: 1}, p)
		l, err := layout.Plan(g, 0.5)
		if err != nil {
			t.Fatalf("Plan() error: %v", err)
		}
		bp := l.Border
		if bp.Shape != layout.ShapeCircle || !bp.Buffered {
			t.Fatalf("border = %v buffered %v", bp.Shape, bp.Buffered)
		}
		if bp.Inner.Points[1] != geom.Pt(0, 2) || bp.Outer.Points[2] != geom.Pt(-3, 0) {
			t.Errorf("ring points %v, %v", bp.Inner.Points, bp.Outer.Points)
		}
		// Quarter arc of radius 2: 1 + π/0.5 ≈ 7.28.
		if bp.Inner.Nodes[0] != 7 {
			t.Errorf("inner nodes = %d, want 7", bp.Inner.Nodes[0])
		}
		if bp.Labels.Background != "background" || bp.Labels.Buffer != "PML" {
			t.Errorf("labels = %+v", bp.Labels)
		}
	})

	t.Run("rectangle", func(t *testing.T) {
		g := mustGeometry(t, &border.Rectangular{HalfWidth: 3, HalfHeight: 2}, p)
		l, err := layout.Plan(g, 0.5)
		if err != nil {
			t.Fatalf("Plan() error: %v", err)
		}
		bp := l.Border
		if bp.Shape != layout.ShapeRectangle || bp.Buffered {
			t.Fatalf("border = %v buffered %v", bp.Shape, bp.Buffered)
		}
		want := [4]geom.Point{geom.Pt(3, 2), geom.Pt(-3, 2), geom.Pt(-3, -2), geom.Pt(3, -2)}
		if bp.Inner.Points != want {
			t.Errorf("corners = %v, want %v", bp.Inner.Points, want)
		}
		if bp.Inner.Nodes != [4]int{13, 9, 13, 9} {
			t.Errorf("nodes = %v, want [13 9 13 9]", bp.Inner.Nodes)
		}
	})
}

func TestPlanErrors(t *testing.T) {
	sq := [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	tests := []struct {
		name string
		spec border.Spec
		h    float64
		opts []layout.Option
		want error
	}{
		{"zero mesh size", &border.Circular{Radius: 3}, 0, nil, layout.ErrInvalidMeshSize},
		{"NaN mesh size", &border.Circular{Radius: 3}, math.NaN(), nil, layout.ErrInvalidMeshSize},
		{"infinite mesh size", &border.Circular{Radius: 3}, math.Inf(1), nil, layout.ErrInvalidMeshSize},
		{"zero growth", &border.Circular{Radius: 3}, 0.1, []layout.Option{layout.WithGrowth(0)}, layout.ErrInvalidGrowth},
		{"zero shrink", &border.Circular{Radius: 3}, 0.1, []layout.Option{layout.WithCornerRadiusShrink(0)}, layout.ErrNonPositiveRadius},
		{"vertex on border", &border.Rectangular{HalfWidth: 1, HalfHeight: 4}, 0.1, nil, layout.ErrNonPositiveRadius},
		{"vertex outside border", &border.Circular{Radius: 1}, 0.1, nil, layout.ErrNonPositiveRadius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGeometry(t, tt.spec, mustPolygon(t, "sq", sq))
			l, err := layout.Plan(g, tt.h, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Plan() error = %v, want %v", err, tt.want)
			}
			if l != nil {
				t.Error("Plan() returned a partial layout")
			}
		})
	}
}

func TestPlanWorkers(t *testing.T) {
	var polygons []*polygon.Polygon
	for i := range 6 {
		c := geom.Pt(float64(3*i), 0)
		polygons = append(polygons, mustPolygon(t, "p", regular(4+i%3*2, 1, c)))
	}
	g := mustGeometry(t, border.AutoRectangular{BorderFactor: 0.2}, polygons...)

	serial, err := layout.Plan(g, 0.2, layout.WithWorkers(1))
	if err != nil {
		t.Fatalf("Plan(1 worker) error: %v", err)
	}
	parallel, err := layout.Plan(g, 0.2, layout.WithWorkers(4))
	if err != nil {
		t.Fatalf("Plan(4 workers) error: %v", err)
	}
	if !reflect.DeepEqual(serial, parallel) {
		t.Error("plans differ between 1 and 4 workers")
	}
	for i, pp := range parallel.Polygons {
		if pp.Corners[0].Apex != polygons[i].Corner(0).C {
			t.Errorf("polygon %d planned out of order", i)
		}
	}
}

func TestPlanDoesNotModifyGeometry(t *testing.T) {
	p := mustPolygon(t, "hex", regular(6, 1, geom.Pt(2, 3)))
	g := mustGeometry(t, border.AutoCircular{BorderFactor: 0.5, ThicknessFactor: 0.2}, p)
	before := g.Vertices()
	if _, err := layout.Plan(g, 0.05); err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if !reflect.DeepEqual(before, g.Vertices()) {
		t.Error("Plan modified the geometry")
	}
}
