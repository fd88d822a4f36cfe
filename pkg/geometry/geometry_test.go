package geometry

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/chazu/cornerfan/pkg/border"
	"github.com/chazu/cornerfan/pkg/geom"
	"github.com/chazu/cornerfan/pkg/polygon"
)

func mustPolygon(t *testing.T, name string, vertices [][]float64) *polygon.Polygon {
	t.Helper()
	p, err := polygon.FromVertices(vertices, name)
	if err != nil {
		t.Fatalf("FromVertices(%q) error: %v", name, err)
	}
	return p
}

func seeded() geom.CircleOption {
	return geom.WithRand(rand.New(rand.NewPCG(3, 4)))
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, border.AutoCircular{}); !errors.Is(err, ErrNoPolygons) {
		t.Errorf("New(nil) error = %v, want ErrNoPolygons", err)
	}
	sq := mustPolygon(t, "sq", [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	if _, err := New([]*polygon.Polygon{sq}, nil); !errors.Is(err, border.ErrUnknownBorderShape) {
		t.Errorf("New(nil spec) error = %v, want ErrUnknownBorderShape", err)
	}
}

func TestCenterOrigin(t *testing.T) {
	sq := mustPolygon(t, "sq", [][]float64{{2, 2}, {4, 2}, {4, 4}, {2, 4}})
	g, err := New([]*polygon.Polygon{sq}, border.AutoRectangular{BorderFactor: 0.5})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	c := g.CenterOrigin()

	if o := c.Border().Origin(); o != geom.Pt(0, 0) {
		t.Errorf("centered border origin = %v", o)
	}
	if v := c.Vertices()[0]; v != geom.Pt(-1, -1) {
		t.Errorf("centered vertex 0 = %v, want (-1, -1)", v)
	}
	if o := g.Border().Origin(); o != geom.Pt(3, 3) {
		t.Errorf("CenterOrigin mutated the receiver: origin %v", o)
	}
}

func TestMaxCornerRadius(t *testing.T) {
	a := mustPolygon(t, "a", [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	b := mustPolygon(t, "b", [][]float64{{1.5, 0}, {2.5, 0}, {2.5, 1}, {1.5, 1}})

	tests := []struct {
		name string
		spec border.Spec
		want float64
	}{
		{"vertex spacing", &border.Circular{Center: geom.Pt(1.25, 0.5), Radius: 10}, 0.25},
		{"border", &border.Rectangular{Center: geom.Pt(1.25, 0.5), HalfWidth: 1.35, HalfHeight: 5}, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New([]*polygon.Polygon{a, b}, tt.spec)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			got, err := g.MaxCornerRadius()
			if err != nil {
				t.Fatalf("MaxCornerRadius() error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MaxCornerRadius() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxCornerRadiusAutoCircular(t *testing.T) {
	sq := mustPolygon(t, "sq", [][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}})
	g, err := New([]*polygon.Polygon{sq}, border.AutoCircular{BorderFactor: 0.3}, seeded())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	got, err := g.MaxCornerRadius()
	if err != nil {
		t.Fatalf("MaxCornerRadius() error: %v", err)
	}
	if math.Abs(got-0.3) > 1e-12 {
		t.Errorf("MaxCornerRadius() = %v, want 0.3", got)
	}
}

func TestCriticalIntervals(t *testing.T) {
	tri := mustPolygon(t, "gold", [][]float64{{0, 0}, {1, 0}, {0, 1}})
	sq := mustPolygon(t, "gold", [][]float64{{3, 0}, {4, 0}, {4, 1}, {3, 1}})
	hex := mustPolygon(t, "glass", [][]float64{
		{7, 0}, {6.5, math.Sqrt(3) / 2}, {5.5, math.Sqrt(3) / 2}, {5, 0}, {5.5, -math.Sqrt(3) / 2}, {6.5, -math.Sqrt(3) / 2},
	})
	g, err := New([]*polygon.Polygon{tri, sq, hex}, border.AutoCircular{BorderFactor: 1}, seeded())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	got := g.CriticalIntervals()
	if len(got) != 2 {
		t.Fatalf("CriticalIntervals() has %d names, want 2", len(got))
	}
	if s := got["gold"].String(); s != "[-7, -1/7]" {
		t.Errorf("gold interval = %s", s)
	}
	if s := got["glass"].String(); s != "[-2, -1/2]" {
		t.Errorf("glass interval = %s", s)
	}
}
