// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the basic arithmetic operations. Each one comes in four
// flavors: Op uses the format's overflow policy, OpWrap and OpSat force Wrap and
// Saturate, and OpMode takes the mode at run time.

package fixp

import "github.com/db47h/fixp/internal/wide"

// AddMode returns x + y, handling overflow according to mode.
func (x Fixed[T, F, P]) AddMode(y Fixed[T, F, P], mode OverflowMode) Fixed[T, F, P] {
	s := x.raw + y.raw // wraps
	if mode == Wrap {
		return Fixed[T, F, P]{s}
	}
	var ovf, neg bool
	if isSigned[T]() {
		// overflow iff both operands have the same sign and the sign of the
		// result differs.
		ovf = (x.raw < 0) == (y.raw < 0) && (s < 0) != (x.raw < 0)
		neg = x.raw < 0
	} else {
		ovf = s < x.raw
	}
	if ovf {
		if mode == Trap {
			panic(ErrOverflow{"add"})
		}
		s = saturate[T](neg)
	}
	return Fixed[T, F, P]{s}
}

// Add returns x + y.
func (x Fixed[T, F, P]) Add(y Fixed[T, F, P]) Fixed[T, F, P] { return x.AddMode(y, modeOf[P]()) }

// AddWrap returns x + y, wrapping on overflow.
func (x Fixed[T, F, P]) AddWrap(y Fixed[T, F, P]) Fixed[T, F, P] { return x.AddMode(y, Wrap) }

// AddSat returns x + y, saturating on overflow.
func (x Fixed[T, F, P]) AddSat(y Fixed[T, F, P]) Fixed[T, F, P] { return x.AddMode(y, Saturate) }

// SubMode returns x - y, handling overflow according to mode.
func (x Fixed[T, F, P]) SubMode(y Fixed[T, F, P], mode OverflowMode) Fixed[T, F, P] {
	d := x.raw - y.raw
	if mode == Wrap {
		return Fixed[T, F, P]{d}
	}
	var ovf, neg bool
	if isSigned[T]() {
		// Two's complement subtraction can only overflow in two ways:
		//	x >= 0, y < 0 and the result is negative: toward +Max
		//	x < 0, y >= 0 and the result is non-negative: toward Min
		switch {
		case x.raw >= 0 && y.raw < 0 && d < 0:
			ovf = true
		case x.raw < 0 && y.raw >= 0 && d >= 0:
			ovf, neg = true, true
		}
	} else {
		ovf, neg = y.raw > x.raw, true
	}
	if ovf {
		if mode == Trap {
			panic(ErrOverflow{"sub"})
		}
		d = saturate[T](neg)
	}
	return Fixed[T, F, P]{d}
}

// Sub returns x - y.
func (x Fixed[T, F, P]) Sub(y Fixed[T, F, P]) Fixed[T, F, P] { return x.SubMode(y, modeOf[P]()) }

// SubWrap returns x - y, wrapping on overflow.
func (x Fixed[T, F, P]) SubWrap(y Fixed[T, F, P]) Fixed[T, F, P] { return x.SubMode(y, Wrap) }

// SubSat returns x - y, saturating on overflow.
func (x Fixed[T, F, P]) SubSat(y Fixed[T, F, P]) Fixed[T, F, P] { return x.SubMode(y, Saturate) }

// MulMode returns x × y, handling overflow according to mode.
//
// The exact product is computed in 128 bits and rounded half up, that is by
// adding 2**(FracBits-1) before shifting right by FracBits. Note that this
// differs from QuoMode which truncates.
func (x Fixed[T, F, P]) MulMode(y Fixed[T, F, P], mode OverflowMode) Fixed[T, F, P] {
	p := wide.Mul(toWide(x.raw), toWide(y.raw)).RshRound(fracOf[F]())
	return Fixed[T, F, P]{narrow[T](p, mode, "mul")}
}

// Mul returns x × y.
func (x Fixed[T, F, P]) Mul(y Fixed[T, F, P]) Fixed[T, F, P] { return x.MulMode(y, modeOf[P]()) }

// MulWrap returns x × y, wrapping on overflow.
func (x Fixed[T, F, P]) MulWrap(y Fixed[T, F, P]) Fixed[T, F, P] { return x.MulMode(y, Wrap) }

// MulSat returns x × y, saturating on overflow.
func (x Fixed[T, F, P]) MulSat(y Fixed[T, F, P]) Fixed[T, F, P] { return x.MulMode(y, Saturate) }

// QuoMode returns the quotient x / y, truncated toward zero, and handles
// overflow according to mode.
//
// Division by zero is not an error: the result is Max if x >= 0 and Min
// otherwise, whatever the mode.
func (x Fixed[T, F, P]) QuoMode(y Fixed[T, F, P], mode OverflowMode) Fixed[T, F, P] {
	if y.raw == 0 {
		return Fixed[T, F, P]{saturate[T](x.raw < 0)}
	}
	q := wide.Quo(toWide(x.raw).Lsh(fracOf[F]()), toWide(y.raw))
	return Fixed[T, F, P]{narrow[T](q, mode, "quo")}
}

// Quo returns x / y.
func (x Fixed[T, F, P]) Quo(y Fixed[T, F, P]) Fixed[T, F, P] { return x.QuoMode(y, modeOf[P]()) }

// QuoWrap returns x / y, wrapping on overflow.
func (x Fixed[T, F, P]) QuoWrap(y Fixed[T, F, P]) Fixed[T, F, P] { return x.QuoMode(y, Wrap) }

// QuoSat returns x / y, saturating on overflow.
func (x Fixed[T, F, P]) QuoSat(y Fixed[T, F, P]) Fixed[T, F, P] { return x.QuoMode(y, Saturate) }

// NegMode returns -x, handling overflow according to mode. In two's complement
// -Min overflows: it wraps to Min and saturates to Max. For unsigned formats,
// the negation of any non-zero value overflows.
func (x Fixed[T, F, P]) NegMode(mode OverflowMode) Fixed[T, F, P] {
	n := -x.raw
	if mode == Wrap || x.raw == 0 {
		return Fixed[T, F, P]{n}
	}
	if isSigned[T]() && x.raw != minOf[T]() {
		return Fixed[T, F, P]{n}
	}
	if mode == Trap {
		panic(ErrOverflow{"neg"})
	}
	return Fixed[T, F, P]{saturate[T](!isSigned[T]())}
}

// Neg returns -x.
func (x Fixed[T, F, P]) Neg() Fixed[T, F, P] { return x.NegMode(modeOf[P]()) }

// NegWrap returns -x, wrapping on overflow.
func (x Fixed[T, F, P]) NegWrap() Fixed[T, F, P] { return x.NegMode(Wrap) }

// NegSat returns -x, saturating on overflow.
func (x Fixed[T, F, P]) NegSat() Fixed[T, F, P] { return x.NegMode(Saturate) }

// MulIntMode returns x × n, handling overflow according to mode.
func (x Fixed[T, F, P]) MulIntMode(n int, mode OverflowMode) Fixed[T, F, P] {
	p := wide.Mul(toWide(x.raw), wide.FromInt64(int64(n)))
	return Fixed[T, F, P]{narrow[T](p, mode, "mul")}
}

// MulInt returns x × n, handling overflow according to x's policy.
func (x Fixed[T, F, P]) MulInt(n int) Fixed[T, F, P] { return x.MulIntMode(n, modeOf[P]()) }

// QuoIntMode returns x / n truncated toward zero, handling overflow according
// to mode. As for QuoMode, division by zero saturates.
func (x Fixed[T, F, P]) QuoIntMode(n int, mode OverflowMode) Fixed[T, F, P] {
	if n == 0 {
		return Fixed[T, F, P]{saturate[T](x.raw < 0)}
	}
	q := wide.Quo(toWide(x.raw), wide.FromInt64(int64(n)))
	return Fixed[T, F, P]{narrow[T](q, mode, "quo")}
}

// QuoInt returns x / n truncated toward zero.
func (x Fixed[T, F, P]) QuoInt(n int) Fixed[T, F, P] { return x.QuoIntMode(n, modeOf[P]()) }
