package layout

import (
	"errors"
	"fmt"

	"github.com/chazu/cornerfan/pkg/angle"
)

var (
	// ErrNonPositiveRadius is returned when the corner radius budget is
	// not positive, typically because a vertex touches the border.
	ErrNonPositiveRadius = errors.New("layout: non-positive corner radius")

	// ErrInvalidMeshSize is returned for a mesh size that is not a
	// positive finite number.
	ErrInvalidMeshSize = errors.New("layout: invalid mesh size")

	// ErrInvalidGrowth is returned for a non-positive growth coefficient.
	ErrInvalidGrowth = errors.New("layout: invalid growth coefficient")

	// ErrDegenerateCornerSectors is returned when a corner cannot be split
	// into at least two elementary sectors on each side.
	ErrDegenerateCornerSectors = errors.New("layout: degenerate corner sectors")
)

// SectorError identifies the corner whose sector counts are too small.
type SectorError struct {
	Polygon    string
	Corner     int
	Angle      angle.Angle
	Elementary angle.Angle
	Interior   int64
	Exterior   int64
}

func (e *SectorError) Error() string {
	return fmt.Sprintf(
		"layout: polygon %q corner %d: angle %s splits into %d interior and %d exterior sectors of %s, need at least 2 each",
		e.Polygon, e.Corner, e.Angle, e.Interior, e.Exterior, e.Elementary,
	)
}

// Unwrap makes errors.Is(err, ErrDegenerateCornerSectors) hold.
func (e *SectorError) Unwrap() error {
	return ErrDegenerateCornerSectors
}
