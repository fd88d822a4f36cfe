package geom

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertEncloses(t *testing.T, c Circle, pts []Point) {
	t.Helper()
	for _, p := range pts {
		if d := Dist(p, c.Center); d > c.Radius*(1+1e-12) {
			t.Fatalf("point %v at distance %v outside circle %+v", p, d, c)
		}
	}
}

func TestSmallestCircleEmpty(t *testing.T) {
	_, err := SmallestCircle(nil)
	if !errors.Is(err, ErrEmptyPointSet) {
		t.Fatalf("SmallestCircle(nil) error = %v, want ErrEmptyPointSet", err)
	}
}

func TestSmallestCircleKnown(t *testing.T) {
	tests := []struct {
		name   string
		pts    []Point
		center Point
		radius float64
	}{
		{"single", []Point{Pt(2, 3)}, Pt(2, 3), 0},
		{"two", []Point{Pt(0, 0), Pt(4, 0)}, Pt(2, 0), 2},
		{"right triangle", []Point{Pt(0, 0), Pt(2, 0), Pt(0, 2)}, Pt(1, 1), math.Sqrt2},
		{"obtuse triangle", []Point{Pt(-2, 0), Pt(2, 0), Pt(0, 0.5)}, Pt(0, 0), 2},
		{"equilateral", []Point{Pt(1, 0), Pt(-0.5, math.Sqrt(3)/2), Pt(-0.5, -math.Sqrt(3)/2)}, Pt(0, 0), 1},
		{"square", []Point{Pt(1, 1), Pt(-1, 1), Pt(-1, -1), Pt(1, -1)}, Pt(0, 0), math.Sqrt2},
		{"square and center", []Point{Pt(1, 1), Pt(0, 0), Pt(-1, 1), Pt(-1, -1), Pt(1, -1)}, Pt(0, 0), math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := SmallestCircle(tt.pts, WithRand(rand.New(rand.NewPCG(7, 7))))
			if err != nil {
				t.Fatalf("SmallestCircle() error: %v", err)
			}
			if !almostEqual(c.Center.X, tt.center.X, 1e-12) || !almostEqual(c.Center.Y, tt.center.Y, 1e-12) {
				t.Errorf("center = %v, want %v", c.Center, tt.center)
			}
			if !almostEqual(c.Radius, tt.radius, 1e-12) {
				t.Errorf("radius = %v, want %v", c.Radius, tt.radius)
			}
			assertEncloses(t, c, tt.pts)
		})
	}
}

func TestSmallestCircleEnclosesRandomSets(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.IntN(200)
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Pt(rng.NormFloat64()*5, rng.NormFloat64()*5)
		}

		c, err := SmallestCircle(pts, WithRand(rng))
		if err != nil {
			t.Fatalf("iter %d: %v", iter, err)
		}
		assertEncloses(t, c, pts)
	}
}

func TestSmallestCircleEnclosesTinySets(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 17))
	for _, extent := range []float64{1e-6, 1e-7, 1e-9} {
		for iter := 0; iter < 500; iter++ {
			n := 4 + rng.IntN(8)
			pts := make([]Point, n)
			for i := range pts {
				pts[i] = Pt(rng.Float64()*extent, rng.Float64()*extent)
			}

			c, err := SmallestCircle(pts, WithRand(rng))
			if err != nil {
				t.Fatalf("extent %g, iter %d: %v", extent, iter, err)
			}
			for _, p := range pts {
				if !c.Contains(p) {
					t.Fatalf("extent %g, iter %d: %v not in %+v (hull %v)", extent, iter, p, c, ConvexHull(pts))
				}
			}
		}
	}
}

func TestSmallestCircleIsMinimal(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	for iter := 0; iter < 50; iter++ {
		pts := make([]Point, 4+rng.IntN(30))
		for i := range pts {
			pts[i] = Pt(rng.Float64(), rng.Float64())
		}
		c, err := SmallestCircle(pts, WithRand(rng))
		if err != nil {
			t.Fatal(err)
		}

		// The minimal circle is no larger than any circle built on two or
		// three input points that still encloses the whole set.
		for i := range pts {
			for j := i + 1; j < len(pts); j++ {
				cc := circle2(pts[i], pts[j])
				if enclosesAll(cc, pts) && cc.Radius < c.Radius*(1-1e-9) {
					t.Fatalf("iter %d: circle %+v smaller than result %+v", iter, cc, c)
				}
			}
		}
	}
}

func enclosesAll(c Circle, pts []Point) bool {
	for _, p := range pts {
		if !c.Contains(p) {
			return false
		}
	}
	return true
}

func TestSmallestCircleSeededIsDeterministic(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(3, 1), Pt(1, 4), Pt(-2, 2), Pt(0.5, -3), Pt(2, 2)}
	a, _ := SmallestCircle(pts, WithRand(rand.New(rand.NewPCG(11, 12))))
	b, _ := SmallestCircle(pts, WithRand(rand.New(rand.NewPCG(11, 12))))
	if a != b {
		t.Fatalf("seeded runs differ: %+v vs %+v", a, b)
	}
}

func TestCircumcircleCollinearFallback(t *testing.T) {
	c := circumcircle(Pt(0, 0), Pt(1, 0), Pt(2, 0))
	if !almostEqual(c.Radius, 1, 1e-12) || !almostEqual(c.Center.X, 1, 1e-12) {
		t.Fatalf("circumcircle of collinear points = %+v, want center (1,0) radius 1", c)
	}
}

func TestTrivialCircle(t *testing.T) {
	if c := trivialCircle(nil); c != (Circle{}) {
		t.Errorf("trivialCircle(nil) = %+v, want zero circle at origin", c)
	}
	defer func() {
		if recover() == nil {
			t.Error("trivialCircle with 4 points did not panic")
		}
	}()
	trivialCircle(make([]Point, 4))
}
