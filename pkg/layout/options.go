package layout

import "runtime"

// Default planning coefficients.
const (
	DefaultCornerRadiusShrink = 0.75
	DefaultGrowth             = 1.5
)

// Option configures Plan.
//
// Example:
//
//	l, err := layout.Plan(g, 0.1, layout.WithGrowth(1.2), layout.WithWorkers(1))
type Option func(*options)

type options struct {
	shrink  float64
	growth  float64
	workers int
}

func defaultOptions() options {
	return options{
		shrink:  DefaultCornerRadiusShrink,
		growth:  DefaultGrowth,
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithCornerRadiusShrink scales the largest admissible corner radius of
// the geometry to obtain the radius budget shared by every corner fan.
func WithCornerRadiusShrink(f float64) Option {
	return func(o *options) {
		o.shrink = f
	}
}

// WithGrowth sets the geometric progression of mesh nodes along the
// spokes of a corner fan, from the apex outward. Values above 1 refine
// toward the apex.
func WithGrowth(f float64) Option {
	return func(o *options) {
		o.growth = f
	}
}

// WithWorkers bounds the number of polygons planned concurrently.
// Values below 1 mean one worker.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}
