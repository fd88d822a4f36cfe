package angle

import (
	"fmt"
	"strings"
)

// Interval is the closed rational interval [Lo, Hi].
type Interval struct {
	Lo, Hi Angle
}

// Union returns the smallest interval containing both i and j.
func (i Interval) Union(j Interval) Interval {
	out := i
	if j.Lo.Less(out.Lo) {
		out.Lo = j.Lo
	}
	if out.Hi.Less(j.Hi) {
		out.Hi = j.Hi
	}
	return out
}

// Contains reports whether x lies in the interval.
func (i Interval) Contains(x Angle) bool {
	return !x.Less(i.Lo) && !i.Hi.Less(x)
}

// String prints the bounds as plain fractions, e.g. "[-7, -1/7]".
func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s]", ratio(i.Lo), ratio(i.Hi))
}

func ratio(a Angle) string {
	if a.Den() == 1 {
		return fmt.Sprint(a.Num())
	}
	return fmt.Sprintf("%d/%d", a.Num(), a.Den())
}

// CriticalInterval returns the critical interval of a corner of angle a:
// with A = (2-a)/a and B = 1/A it is (-B, -A) for a reflex corner and
// (-A, -B) otherwise. It panics if a is zero or 2.
func CriticalInterval(a Angle) Interval {
	A := Int(2).Sub(a).Div(a)
	B := A.Inv()
	if Int(1).Less(a) {
		return Interval{Lo: B.Neg(), Hi: A.Neg()}
	}
	return Interval{Lo: A.Neg(), Hi: B.Neg()}
}

// Decompose returns the smallest integers p, q >= 2 such that the corner
// angle a is p elementary sectors of 2/(p+q)·π and its complement 2-a is
// q of them. It panics unless 0 < a < 2.
func Decompose(a Angle) (p, q int64) {
	n, d := a.Num(), a.Den()
	if n <= 0 || n >= 2*d {
		panic(fmt.Sprintf("angle: cannot decompose %s outside (0, 2π)", a))
	}
	c := gcd(n, 2*d-n)
	p, q = n/c, (2*d-n)/c
	if p == 1 || q == 1 {
		p, q = 2*p, 2*q
	}
	return p, q
}

// Elementary returns the coarsest angle 2/(p+q)·π dividing both a and its
// complement 2π-a into at least two sectors each.
func Elementary(a Angle) Angle {
	p, q := Decompose(a)
	return New(2, p+q)
}

// Combine returns gcd(numerators)/lcm(denominators) of angles, the
// largest angle dividing every one of them.
func Combine(angles ...Angle) Angle {
	if len(angles) == 0 {
		return Angle{}
	}
	n, d := angles[0].Num(), angles[0].Den()
	for _, a := range angles[1:] {
		n = gcd(n, a.Num())
		d = lcm(d, a.Den())
	}
	return New(n, d)
}

// Format joins angles for log output.
func Format(angles []Angle) string {
	parts := make([]string, len(angles))
	for i, a := range angles {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}
