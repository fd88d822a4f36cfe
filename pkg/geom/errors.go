package geom

import "errors"

var (
	// ErrEmptyPointSet is returned when a primitive receives fewer points
	// than it needs.
	ErrEmptyPointSet = errors.New("geom: empty point set")

	// ErrRecursionDepth is returned when a divide and conquer routine
	// exceeds its depth budget.
	ErrRecursionDepth = errors.New("geom: recursion depth exceeded")
)
