package polygon

import (
	"errors"
	"fmt"

	"github.com/chazu/cornerfan/pkg/angle"
)

var (
	// ErrInvalidVertexArray reports a vertex array that is not n×2 with
	// n >= 3 finite coordinates.
	ErrInvalidVertexArray = errors.New("polygon: invalid vertex array")

	// ErrDegenerateEdge reports two consecutive vertices closer than
	// MinEdgeLength.
	ErrDegenerateEdge = errors.New("polygon: degenerate edge")

	// ErrAngleApproximation reports corner angles that do not add up to
	// (n-2)π once rounded to rational multiples of π.
	ErrAngleApproximation = errors.New("polygon: angle approximation failure")
)

// AngleError describes a failed angle check. Corner is the offending
// corner, or -1 when only the sum is wrong.
type AngleError struct {
	Name           string
	Corner         int
	Angle          angle.Angle // corner angle, or the sum when Corner < 0
	Want           int64       // expected sum as a multiple of π
	MaxDenominator int
}

func (e *AngleError) Error() string {
	var what string
	if e.Corner >= 0 {
		what = fmt.Sprintf("corner %d has angle %s outside (0, 2π)", e.Corner, e.Angle)
	} else {
		what = fmt.Sprintf("corner angles sum to %s, want %s", e.Angle, angle.Int(e.Want))
	}
	return fmt.Sprintf(
		"polygon %q: %s: either the angles are badly approximated by a rational times π "+
			"(try a max denominator above %d) or the polygon is not simple",
		e.Name, what, e.MaxDenominator,
	)
}

// Unwrap makes errors.Is(err, ErrAngleApproximation) hold.
func (e *AngleError) Unwrap() error {
	return ErrAngleApproximation
}
