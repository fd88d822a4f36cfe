package geom

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// maxClosestPairDepth bounds the recursion of MinDist. Halving the set at
// every level keeps real inputs far below it.
const maxClosestPairDepth = 64

// MinDistNaive returns the minimal euclidean distance between two points
// of the set by checking every pair. It returns +Inf for fewer than two
// points.
func MinDistNaive(points []Point) float64 {
	d := math.Inf(1)
	for i, p := range points {
		for _, q := range points[i+1:] {
			d = math.Min(d, Dist(p, q))
		}
	}
	return d
}

// MinDist returns the minimal euclidean distance between two points of
// the set with the divide and conquer closest pair algorithm.
func MinDist(points []Point) (float64, error) {
	if len(points) < 2 {
		return 0, fmt.Errorf("min dist: need at least 2 points, got %d: %w", len(points), ErrEmptyPointSet)
	}

	pts := slices.Clone(points)
	slices.SortFunc(pts, lexCompare)
	return minDistRec(pts, 0)
}

// minDistRec expects pts sorted by x.
func minDistRec(pts []Point, depth int) (float64, error) {
	if depth > maxClosestPairDepth {
		return 0, fmt.Errorf("min dist: %d points at depth %d: %w", len(pts), depth, ErrRecursionDepth)
	}

	n := len(pts)
	if n <= 3 {
		return MinDistNaive(pts), nil
	}

	mid := n / 2
	m := pts[mid]

	dl, err := minDistRec(pts[:mid], depth+1)
	if err != nil {
		return 0, err
	}
	dr, err := minDistRec(pts[mid:], depth+1)
	if err != nil {
		return 0, err
	}
	d := math.Min(dl, dr)

	var strip []Point
	for _, p := range pts {
		if math.Abs(p.X-m.X) < d {
			strip = append(strip, p)
		}
	}

	return math.Min(d, minDistStrip(strip, d)), nil
}

// minDistStrip scans a strip of points around the dividing line, sorted
// by y, and stops as soon as the vertical gap exceeds the best distance.
func minDistStrip(strip []Point, d float64) float64 {
	slices.SortFunc(strip, func(a, b Point) int {
		return cmp.Compare(a.Y, b.Y)
	})

	best := d
	for i, p := range strip {
		for _, q := range strip[i+1:] {
			if q.Y-p.Y >= best {
				break
			}
			best = math.Min(best, Dist(p, q))
		}
	}
	return best
}
