// Package geojson implements backend.Backend by converting tagged regions
// into a GeoJSON FeatureCollection: one Polygon feature per tagged
// surface and one LineString feature per tagged curve, each carrying its
// label. Coordinates are the layout's plane coordinates, not longitudes
// and latitudes.
package geojson

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/chazu/cornerfan/pkg/backend"
	"github.com/chazu/cornerfan/pkg/backend/record"
	"github.com/chazu/cornerfan/pkg/geom"
)

// Compile-time interface check.
var _ backend.Backend = (*Backend)(nil)

const defaultArcSegments = 8

// Feature property keys.
const (
	PropLabel   = "label"
	PropDim     = "dim"
	PropSurface = "surface"
	PropCurve   = "curve"
)

// Option configures a Backend.
type Option func(*Backend)

// WithArcSegments sets how many straight pieces approximate each arc.
func WithArcSegments(n int) Option {
	return func(b *Backend) {
		b.arcSegments = max(n, 1)
	}
}

// Backend records calls and exports the tagged regions.
type Backend struct {
	*record.Backend
	arcSegments int
}

// New returns an empty Backend.
func New(opts ...Option) *Backend {
	b := &Backend{Backend: record.New(), arcSegments: defaultArcSegments}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// closed returns ring as GeoJSON positions, first position repeated at
// the end. Outer rings are counterclockwise and holes clockwise.
func closed(ring []geom.Point, hole bool) [][]float64 {
	ccw := record.SignedArea(ring) > 0
	out := make([][]float64, 0, len(ring)+1)
	for i := range ring {
		p := ring[i]
		if ccw == hole {
			p = ring[(len(ring)-i)%len(ring)]
		}
		out = append(out, []float64{p.X, p.Y})
	}
	return append(out, out[0])
}

// FeatureCollection converts the tagged regions, in tagging order.
func (b *Backend) FeatureCollection() (*geojson.FeatureCollection, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	fc := geojson.NewFeatureCollection()
	for _, r := range b.Regions() {
		for _, s := range r.Surfaces {
			outer, holes, err := b.SurfaceRings(s, b.arcSegments)
			if err != nil {
				return nil, fmt.Errorf("region %q: %w", r.Label, err)
			}
			rings := [][][]float64{closed(outer, false)}
			for _, h := range holes {
				rings = append(rings, closed(h, true))
			}
			f := geojson.NewPolygonFeature(rings)
			f.SetProperty(PropLabel, r.Label)
			f.SetProperty(PropDim, int(backend.DimSurface))
			f.SetProperty(PropSurface, int(s))
			fc.AddFeature(f)
		}
		for _, c := range r.Curves {
			pts, err := b.CurvePolyline(c, b.arcSegments)
			if err != nil {
				return nil, fmt.Errorf("region %q: %w", r.Label, err)
			}
			coords := make([][]float64, len(pts))
			for i, p := range pts {
				coords[i] = []float64{p.X, p.Y}
			}
			f := geojson.NewLineStringFeature(coords)
			f.SetProperty(PropLabel, r.Label)
			f.SetProperty(PropDim, int(backend.DimCurve))
			f.SetProperty(PropCurve, int(c))
			fc.AddFeature(f)
		}
	}
	return fc, nil
}

// MarshalJSON encodes the feature collection.
func (b *Backend) MarshalJSON() ([]byte, error) {
	fc, err := b.FeatureCollection()
	if err != nil {
		return nil, err
	}
	return fc.MarshalJSON()
}
