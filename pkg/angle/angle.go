package angle

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// DefaultMaxDenominator bounds the denominators produced by FromRadians
// when callers have no better estimate.
const DefaultMaxDenominator = 32

// Angle is the exact angle num/den·π. It is always stored in lowest terms
// with a positive denominator. The zero value is the angle 0.
//
// Angles are comparable with == and usable as map keys.
type Angle struct {
	num int64
	// denm1 is the denominator minus one so that the zero value is 0/1.
	denm1 int64
}

// New returns the angle n/d·π. It panics if d is zero.
func New(n, d int64) Angle {
	if d == 0 {
		panic("angle: zero denominator")
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(n, d)
	if g == 0 {
		g = 1
	}
	return Angle{num: n / g, denm1: d/g - 1}
}

// Int returns the angle n·π.
func Int(n int64) Angle {
	return Angle{num: n}
}

// Num returns the numerator in lowest terms.
func (a Angle) Num() int64 { return a.num }

// Den returns the (positive) denominator in lowest terms.
func (a Angle) Den() int64 { return a.denm1 + 1 }

// Sign returns -1, 0 or +1.
func (a Angle) Sign() int {
	switch {
	case a.num < 0:
		return -1
	case a.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether a is the null angle.
func (a Angle) IsZero() bool { return a.num == 0 }

// Add returns a+b.
func (a Angle) Add(b Angle) Angle {
	l := lcm(a.Den(), b.Den())
	return New(a.num*(l/a.Den())+b.num*(l/b.Den()), l)
}

// Sub returns a-b.
func (a Angle) Sub(b Angle) Angle {
	return a.Add(b.Neg())
}

// Neg returns -a.
func (a Angle) Neg() Angle {
	return Angle{num: -a.num, denm1: a.denm1}
}

// Mul returns the product of a and the rational b.
func (a Angle) Mul(b Angle) Angle {
	g1 := gcd(a.num, b.Den())
	g2 := gcd(b.num, a.Den())
	if g1 == 0 {
		g1 = 1
	}
	if g2 == 0 {
		g2 = 1
	}
	return New((a.num/g1)*(b.num/g2), (a.Den()/g2)*(b.Den()/g1))
}

// MulInt returns k·a.
func (a Angle) MulInt(k int64) Angle {
	return New(a.num*k, a.Den())
}

// Inv returns 1/a. It panics if a is zero.
func (a Angle) Inv() Angle {
	return New(a.Den(), a.num)
}

// Div returns a/b as a rational. It panics if b is zero.
func (a Angle) Div(b Angle) Angle {
	return a.Mul(b.Inv())
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Angle) Cmp(b Angle) int {
	return a.Sub(b).Sign()
}

// Less reports whether a < b.
func (a Angle) Less(b Angle) bool { return a.Cmp(b) < 0 }

// Equal reports whether a == b.
func (a Angle) Equal(b Angle) bool { return a == b }

// Floor returns the largest integer not greater than num/den.
func (a Angle) Floor() int64 {
	q := a.num / a.Den()
	if a.num%a.Den() != 0 && a.num < 0 {
		q--
	}
	return q
}

// Float64 returns num/den, the angle as a fraction of π.
func (a Angle) Float64() float64 {
	return float64(a.num) / float64(a.Den())
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return a.Float64() * math.Pi
}

// String formats the angle as a multiple of π, e.g. "3π/4" or "-π".
func (a Angle) String() string {
	if a.num == 0 {
		return "0"
	}
	s := coefficient(a.num) + "π"
	if a.Den() != 1 {
		s += "/" + strconv.FormatInt(a.Den(), 10)
	}
	return s
}

// Latex formats the angle for a LaTeX math context.
func (a Angle) Latex() string {
	if a.num == 0 {
		return "$0$"
	}
	if a.Den() == 1 {
		return fmt.Sprintf("$%s\\pi$", coefficient(a.num))
	}
	return fmt.Sprintf("$\\dfrac{%s\\pi}{%d}$", coefficient(a.num), a.Den())
}

func coefficient(n int64) string {
	switch n {
	case 1:
		return ""
	case -1:
		return "-"
	default:
		return strconv.FormatInt(n, 10)
	}
}

func abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// gcd returns the non-negative greatest common divisor; gcd(0, 0) == 0.
func gcd[T constraints.Signed](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns the non-negative least common multiple; lcm(0, x) == 0.
func lcm[T constraints.Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return abs(a / gcd(a, b) * b)
}
