package angle

import (
	"math"
	"math/big"
)

// FromRadians returns the closest rational angle to rad, normalized to
// [0, 2), whose denominator does not exceed maxDenominator.
func FromRadians(rad float64, maxDenominator int) Angle {
	return FromSinCos(math.Sin(rad), math.Cos(rad), maxDenominator)
}

// FromSinCos is FromRadians for the angle whose sine and cosine are
// proportional to sin and cos.
func FromSinCos(sin, cos float64, maxDenominator int) Angle {
	a := approximate(math.Atan2(sin, cos)/math.Pi, int64(max(maxDenominator, 1)))
	if a.Sign() < 0 {
		a = a.Add(Int(2))
	}
	if a.Cmp(Int(2)) >= 0 {
		a = a.Sub(Int(2))
	}
	return a
}

// approximate finds the closest fraction to x with a denominator at most
// maxDen. It walks the continued fraction expansion of the exact binary
// value of x and picks the better of the last convergent and the best
// semiconvergent.
func approximate(x float64, maxDen int64) Angle {
	exact := new(big.Rat).SetFloat64(x)
	limit := big.NewInt(maxDen)
	if exact.Denom().Cmp(limit) <= 0 {
		return New(exact.Num().Int64(), exact.Denom().Int64())
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(exact.Num())
	d := new(big.Int).Set(exact.Denom())

	a, t := new(big.Int), new(big.Int)
	for {
		// Euclidean division floors for a positive divisor.
		a.Div(n, d)
		q2 := new(big.Int).Add(q0, t.Mul(a, q1))
		if q2.Cmp(limit) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, t.Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, q2
		r := new(big.Int).Sub(n, t.Mul(a, d))
		n, d = d, r
	}

	k := new(big.Int).Sub(limit, q0)
	k.Div(k, q1)
	bound1 := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	bound2 := new(big.Rat).SetFrac(p1, q1)

	d1 := new(big.Rat).Sub(bound1, exact)
	d2 := new(big.Rat).Sub(bound2, exact)
	if d2.Abs(d2).Cmp(d1.Abs(d1)) <= 0 {
		return New(bound2.Num().Int64(), bound2.Denom().Int64())
	}
	return New(bound1.Num().Int64(), bound1.Denom().Int64())
}
