// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixp

import "github.com/db47h/fixp/internal/wide"

// Abs returns |x|. Abs saturates whatever the policy: Abs(Min) is Max.
func (x Fixed[T, F, P]) Abs() Fixed[T, F, P] {
	if x.raw >= 0 {
		return x
	}
	return x.NegSat()
}

// Min returns the smaller of x and y.
func (x Fixed[T, F, P]) Min(y Fixed[T, F, P]) Fixed[T, F, P] {
	if y.raw < x.raw {
		return y
	}
	return x
}

// Max returns the larger of x and y.
func (x Fixed[T, F, P]) Max(y Fixed[T, F, P]) Fixed[T, F, P] {
	if y.raw > x.raw {
		return y
	}
	return x
}

// Clamp returns x limited to the range [lo, hi].
func (x Fixed[T, F, P]) Clamp(lo, hi Fixed[T, F, P]) Fixed[T, F, P] {
	return x.Max(lo).Min(hi)
}

func fracMask[T Int, F Frac]() T {
	return T(1)<<fracOf[F]() - 1
}

// Floor returns the greatest integer value less than or equal to x.
func (x Fixed[T, F, P]) Floor() Fixed[T, F, P] {
	return Fixed[T, F, P]{x.raw &^ fracMask[T, F]()}
}

// Ceil returns the least integer value greater than or equal to x. Ceil may
// overflow, in which case it follows x's policy.
func (x Fixed[T, F, P]) Ceil() Fixed[T, F, P] {
	if x.raw&fracMask[T, F]() == 0 {
		return x
	}
	w := wide.Add(toWide(x.Floor().raw), wide.FromInt64(1).Lsh(fracOf[F]()))
	return Fixed[T, F, P]{narrow[T](w, modeOf[P](), "ceil")}
}

// Trunc returns the integer value of x, rounded toward zero.
func (x Fixed[T, F, P]) Trunc() Fixed[T, F, P] {
	if x.raw < 0 {
		return x.Ceil()
	}
	return x.Floor()
}

// Round returns the nearest integer value of x, rounding half away from zero.
// Round may overflow, in which case it follows x's policy.
func (x Fixed[T, F, P]) Round() Fixed[T, F, P] {
	f := fracOf[F]()
	if f == 0 {
		return x
	}
	w := toWide(x.raw)
	m := wide.Add(w.Abs(), wide.FromInt64(1).Lsh(f-1)).Rsh(f).Lsh(f)
	if w.Sign() < 0 {
		m = m.Neg()
	}
	return Fixed[T, F, P]{narrow[T](m, modeOf[P](), "round")}
}

// Frac returns the fractional part x - x.Floor(), which is always
// non-negative.
func (x Fixed[T, F, P]) Frac() Fixed[T, F, P] {
	return Fixed[T, F, P]{x.raw & fracMask[T, F]()}
}

// Shl returns x × 2**n, following x's policy on overflow.
func (x Fixed[T, F, P]) Shl(n uint) Fixed[T, F, P] {
	if n > 64 {
		// any non-zero value overflows
		n = 64
	}
	return Fixed[T, F, P]{narrow[T](toWide(x.raw).Lsh(n), modeOf[P](), "shl")}
}

// Shr returns x / 2**n, rounded toward negative infinity (arithmetic shift).
func (x Fixed[T, F, P]) Shr(n uint) Fixed[T, F, P] {
	return Fixed[T, F, P]{x.raw >> n}
}

// Lerp returns the linear interpolation x + (y-x)×t. The intermediate values
// are exact; the product is rounded like Mul and the result follows x's
// policy.
func (x Fixed[T, F, P]) Lerp(y, t Fixed[T, F, P]) Fixed[T, F, P] {
	a := toWide(x.raw)
	d := wide.Sub(toWide(y.raw), a) // magnitude < 2**64
	p := wide.Mul(d, toWide(t.raw)).RshRound(fracOf[F]())
	return Fixed[T, F, P]{narrow[T](wide.Add(a, p), modeOf[P](), "lerp")}
}
