package math

import (
	"github.com/db47h/fixp"
	"github.com/db47h/fixp/internal/wide"
)

// Sin returns the sine of the radian argument x, computed by CORDIC.
//
// x is first reduced to [-π/2, π/2] so any angle is accepted. Sin is odd:
// Sin(-x) == -Sin(x) exactly. Results that are not representable in x's
// format (such as 1 in Q0.7) saturate.
func Sin[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	s, _ := engine(x.FracBits()).Sincos(raw(x))
	return fromRaw[T, F, P](s)
}

// Cos returns the cosine of the radian argument x. Cos is even:
// Cos(-x) == Cos(x) exactly.
func Cos[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	_, c := engine(x.FracBits()).Sincos(raw(x))
	return fromRaw[T, F, P](c)
}

// Sincos returns Sin(x), Cos(x) with a single CORDIC run.
func Sincos[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) (sin, cos fixp.Fixed[T, F, P]) {
	s, c := engine(x.FracBits()).Sincos(raw(x))
	return fromRaw[T, F, P](s), fromRaw[T, F, P](c)
}

// Tan returns the tangent of the radian argument x, as Sin(x)/Cos(x). The
// division is carried out before rounding the sine and cosine to x's format.
// When the cosine is zero, Tan saturates like Quo.
func Tan[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	f := x.FracBits()
	s, c := engine(f).Sincos(raw(x))
	if c == 0 {
		if s < 0 {
			return fixp.Min[fixp.Fixed[T, F, P]]()
		}
		return fixp.Max[fixp.Fixed[T, F, P]]()
	}
	return fromWide[T, F, P](wide.Quo(wide.FromInt64(s).Lsh(f), wide.FromInt64(c)))
}

// Atan returns the arctangent, in radians, of x. It is computed as
// Atan2(x, 1) with an exact 1, even in formats where 1 is not representable.
func Atan[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	f := x.FracBits()
	y := raw(x)
	if f == 63 {
		// 1 << 63 overflows; Atan2 only depends on the ratio.
		y, f = y>>1, 62
	}
	return fromRaw[T, F, P](engine(x.FracBits()).Atan2(y, 1<<f))
}

// Atan2 returns the arctangent of y/x, using the signs of the two to determine
// the quadrant of the return value. The result is in [-π, π], saturated if the
// format cannot represent it.
//
// Special cases are:
//
//	Atan2(0, 0) = 0
//	Atan2(y, 0) = ±π/2 with the sign of y
func Atan2[T fixp.Int, F fixp.Frac, P fixp.Policy](y, x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return fromRaw[T, F, P](engine(x.FracBits()).Atan2(raw(y), raw(x)))
}

// Hypot returns √(x²+y²), the magnitude of the vector (x, y), computed in
// CORDIC vectoring mode. It saturates instead of overflowing.
func Hypot[T fixp.Int, F fixp.Frac, P fixp.Policy](x, y fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return fromRaw[T, F, P](engine(x.FracBits()).Hypot(raw(x), raw(y)))
}

// Rotate returns the vector (x, y) rotated by angle radians. Components
// saturate.
func Rotate[T fixp.Int, F fixp.Frac, P fixp.Policy](x, y, angle fixp.Fixed[T, F, P]) (fixp.Fixed[T, F, P], fixp.Fixed[T, F, P]) {
	rx, ry := engine(x.FracBits()).Rotate(raw(x), raw(y), raw(angle))
	return fromRaw[T, F, P](rx), fromRaw[T, F, P](ry)
}
