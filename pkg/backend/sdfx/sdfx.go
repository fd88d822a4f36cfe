// Package sdfx implements backend.Backend on top of the
// github.com/deadsy/sdfx signed distance library. Calls are recorded;
// tagged surfaces are then turned into one sdf.SDF2 per label, which
// can classify points or be rendered with sdfx.
package sdfx

import (
	"errors"
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/cornerfan/pkg/backend"
	"github.com/chazu/cornerfan/pkg/backend/record"
	"github.com/chazu/cornerfan/pkg/geom"
)

// Compile-time interface check.
var _ backend.Backend = (*Backend)(nil)

// defaultArcSegments is the number of straight pieces per arc.
const defaultArcSegments = 16

// ErrOutside is returned by Classify for a point outside every region.
var ErrOutside = errors.New("sdfx: point outside every region")

// ErrNoRegion is returned when no surface carries a label.
var ErrNoRegion = errors.New("sdfx: no such region")

// Option configures a Backend.
type Option func(*Backend)

// WithArcSegments sets how many straight pieces approximate each arc.
func WithArcSegments(n int) Option {
	return func(b *Backend) {
		b.arcSegments = max(n, 1)
	}
}

// Backend records calls like record.Backend and converts tagged surfaces
// to signed distance functions on demand.
type Backend struct {
	*record.Backend
	arcSegments int

	// cache of the regions, valid while built equals the number of
	// tagged regions.
	built  int
	order  []string
	shapes map[string]sdf.SDF2
}

// New returns an empty Backend.
func New(opts ...Option) *Backend {
	b := &Backend{Backend: record.New(), arcSegments: defaultArcSegments}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func toVec(ring []geom.Point) []v2.Vec {
	out := make([]v2.Vec, len(ring))
	for i, p := range ring {
		out[i] = v2.Vec{X: p.X, Y: p.Y}
	}
	return out
}

// surface converts s to its outer polygon minus its holes.
func (b *Backend) surface(s backend.SurfaceID) (sdf.SDF2, error) {
	outer, holes, err := b.SurfaceRings(s, b.arcSegments)
	if err != nil {
		return nil, err
	}
	shape, err := sdf.Polygon2D(toVec(outer))
	if err != nil {
		return nil, fmt.Errorf("surface %d: %w", s, err)
	}
	for _, h := range holes {
		hole, err := sdf.Polygon2D(toVec(h))
		if err != nil {
			return nil, fmt.Errorf("surface %d hole: %w", s, err)
		}
		shape = sdf.Difference2D(shape, hole)
	}
	return shape, nil
}

func (b *Backend) build() error {
	if err := b.Err(); err != nil {
		return err
	}
	regions := b.Regions()
	if b.shapes != nil && b.built == len(regions) {
		return nil
	}

	parts := make(map[string][]sdf.SDF2)
	var order []string
	for _, r := range regions {
		if r.Dim() != backend.DimSurface {
			continue
		}
		if _, ok := parts[r.Label]; !ok {
			order = append(order, r.Label)
		}
		for _, s := range r.Surfaces {
			shape, err := b.surface(s)
			if err != nil {
				return fmt.Errorf("region %q: %w", r.Label, err)
			}
			parts[r.Label] = append(parts[r.Label], shape)
		}
	}

	shapes := make(map[string]sdf.SDF2, len(parts))
	for label, p := range parts {
		shapes[label] = sdf.Union2D(p...)
	}
	b.shapes, b.order, b.built = shapes, order, len(regions)
	return nil
}

// Shape returns the union of the surfaces tagged label.
func (b *Backend) Shape(label string) (sdf.SDF2, error) {
	if err := b.build(); err != nil {
		return nil, err
	}
	s, ok := b.shapes[label]
	if !ok {
		return nil, fmt.Errorf("region %q: %w", label, ErrNoRegion)
	}
	return s, nil
}

// Labels returns the surface labels in tagging order.
func (b *Backend) Labels() ([]string, error) {
	if err := b.build(); err != nil {
		return nil, err
	}
	return append([]string(nil), b.order...), nil
}

// Classify returns the label of the region containing p. On a shared
// boundary the region tagged first wins.
func (b *Backend) Classify(p geom.Point) (string, error) {
	if err := b.build(); err != nil {
		return "", err
	}
	best, label := math.Inf(1), ""
	for _, l := range b.order {
		if d := b.shapes[l].Evaluate(v2.Vec{X: p.X, Y: p.Y}); d < best {
			best, label = d, l
		}
	}
	if label == "" || best > 0 {
		return "", fmt.Errorf("classify %v: %w", p, ErrOutside)
	}
	return label, nil
}

// BoundingBox returns the extent of every tagged surface.
func (b *Backend) BoundingBox() (min, max geom.Point, err error) {
	if err := b.build(); err != nil {
		return geom.Point{}, geom.Point{}, err
	}
	if len(b.order) == 0 {
		return geom.Point{}, geom.Point{}, ErrNoRegion
	}
	all := make([]sdf.SDF2, len(b.order))
	for i, l := range b.order {
		all[i] = b.shapes[l]
	}
	bb := sdf.Union2D(all...).BoundingBox()
	return geom.Pt(bb.Min.X, bb.Min.Y), geom.Pt(bb.Max.X, bb.Max.Y), nil
}
