// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Fixed values and Go numeric types,
// and between Fixed formats.

package fixp

import (
	"math"

	"github.com/db47h/fixp/internal/wide"
	"golang.org/x/exp/constraints"
)

// fromFloat returns round(d × 2**F) with ties away from zero, saturated to the
// range of T. NaN converts to 0.
func fromFloat[T Int, F Frac, G constraints.Float](d G) T {
	v := float64(d)
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(math.Ldexp(v, int(fracOf[F]())))
	b := int(bitsOf[T]())
	if isSigned[T]() {
		switch {
		case v >= math.Ldexp(1, b-1):
			return maxOf[T]()
		case v < -math.Ldexp(1, b-1):
			return minOf[T]()
		}
		return T(int64(v))
	}
	switch {
	case v >= math.Ldexp(1, b):
		return maxOf[T]()
	case v < 0:
		return 0
	}
	return T(uint64(v))
}

// FromFloat64 returns d converted to the format X, rounded to the nearest
// representable value with ties away from zero.
//
// Conversion from floating point always saturates, whatever the policy of X:
// values outside the range of X convert to Min or Max. NaN converts to 0.
func FromFloat64[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy](d float64) X {
	return X(Fixed[T, F, P]{fromFloat[T, F](d)})
}

// FromFloat32 is like FromFloat64 for float32 values.
func FromFloat32[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy](d float32) X {
	return X(Fixed[T, F, P]{fromFloat[T, F](d)})
}

// FromInt returns i converted to the format X. Overflow is handled according to
// the policy of X.
func FromInt[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy](i int) X {
	w := wide.FromInt64(int64(i)).Lsh(fracOf[F]())
	return X(Fixed[T, F, P]{narrow[T](w, modeOf[P](), "convert")})
}

// Float64 returns the float64 value nearest to x. The conversion is exact
// when x's raw value fits in 53 bits.
func (x Fixed[T, F, P]) Float64() float64 {
	return math.Ldexp(float64(x.raw), -int(fracOf[F]()))
}

// Float32 returns the float32 value nearest to x.
func (x Fixed[T, F, P]) Float32() float32 {
	return float32(x.Float64())
}

// Int returns the integer part of x, dropping the fractional bits. For negative
// values this rounds toward negative infinity: Int(-1.5) is -2.
func (x Fixed[T, F, P]) Int() int {
	return int(x.raw >> fracOf[F]())
}

// IntRound returns x rounded to the nearest integer, with ties away from zero.
func (x Fixed[T, F, P]) IntRound() int {
	f := fracOf[F]()
	if f == 0 {
		return int(x.raw)
	}
	w := toWide(x.raw)
	m := wide.Add(w.Abs(), wide.FromInt64(1).Lsh(f-1)).Rsh(f)
	if w.Sign() < 0 {
		m = m.Neg()
	}
	return int(m.Low64())
}

// rescale converts the raw value w from frac fractional bits to to fractional
// bits. Right shifts round half up, like Mul.
func rescale(w wide.Int, frac, to uint) wide.Int {
	if to >= frac {
		return w.Lsh(to - frac)
	}
	return w.RshRound(frac - to)
}

// Convert returns x converted to the format Y. Fractional bits are added by
// shifting left, or removed by rounding half up. Overflow is handled
// according to the policy of Y.
//
//	y := fixp.Convert[fixp.Q7_8](x) // x is a fixp.Q15_16
func Convert[Y interface{ Fixed[U, G, Q] }, U Int, G Frac, Q Policy, T Int, F Frac, P Policy](x Fixed[T, F, P]) Y {
	w := rescale(toWide(x.raw), fracOf[F](), fracOf[G]())
	return Y(Fixed[U, G, Q]{narrow[U](w, modeOf[Q](), "convert")})
}
