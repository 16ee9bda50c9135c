// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package consts computes the mathematical constants and CORDIC tables used by
// fixed-point formats, at a precision well beyond any supported format, and
// scales them to a given number of fractional bits.
package consts

import (
	"math"
	"math/big"
)

// prec is the working precision in bits. The widest format has 64 bits, so this
// leaves ample guard bits for correct rounding.
const prec = 256

// High precision values. They are computed once at package init and never
// modified.
var (
	Pi    = pi()
	E     = e()
	Sqrt2 = new(big.Float).SetPrec(prec).Sqrt(newFloat(2))
	Ln2   = ln2()
	Log2E = new(big.Float).SetPrec(prec).Quo(newFloat(1), Ln2)
)

func newFloat(x int64) *big.Float {
	return new(big.Float).SetPrec(prec).SetInt64(x)
}

// atanInv returns atan(1/n) using the Taylor series
//
//	atan(x) = x - x³/3 + x⁵/5 - ...
func atanInv(n int64) *big.Float {
	x := new(big.Float).SetPrec(prec).Quo(newFloat(1), newFloat(n))
	return atanSeries(x)
}

// atanSeries evaluates the arctangent series for |x| <= 1/2.
func atanSeries(x *big.Float) *big.Float {
	var (
		sum  = new(big.Float).SetPrec(prec).Set(x)
		x2   = new(big.Float).SetPrec(prec).Mul(x, x)
		term = new(big.Float).SetPrec(prec).Set(x)
		t    = new(big.Float).SetPrec(prec)
		eps  = new(big.Float).SetPrec(prec).SetMantExp(newFloat(1), -prec-8)
	)
	for k := int64(3); ; k += 2 {
		term.Mul(term, x2)
		term.Neg(term)
		t.Quo(term, newFloat(k))
		if t.Sign() == 0 || new(big.Float).Abs(t).Cmp(eps) < 0 {
			break
		}
		sum.Add(sum, t)
	}
	return sum
}

// pi computes π with Machin's formula π = 16·atan(1/5) - 4·atan(1/239).
func pi() *big.Float {
	a := atanInv(5)
	a.Mul(a, newFloat(16))
	b := atanInv(239)
	b.Mul(b, newFloat(4))
	return a.Sub(a, b)
}

// e computes Σ 1/k!.
func e() *big.Float {
	var (
		sum  = newFloat(1)
		term = newFloat(1)
		eps  = new(big.Float).SetPrec(prec).SetMantExp(newFloat(1), -prec-8)
	)
	for k := int64(1); term.Cmp(eps) > 0; k++ {
		term.Quo(term, newFloat(k))
		sum.Add(sum, term)
	}
	return sum
}

// ln2 computes Σ 1/(k·2**k).
func ln2() *big.Float {
	var (
		sum = newFloat(0)
		t   = new(big.Float).SetPrec(prec)
	)
	for k := int64(1); k <= prec+8; k++ {
		t.SetMantExp(newFloat(1), -int(k))
		t.Quo(t, newFloat(k))
		sum.Add(sum, t)
	}
	return sum
}

// Atan returns atan(2**-i).
func Atan(i int) *big.Float {
	if i == 0 {
		q := new(big.Float).SetPrec(prec).Set(Pi)
		return q.SetMantExp(q, -2) // π/4
	}
	x := new(big.Float).SetPrec(prec).SetMantExp(newFloat(1), -i)
	return atanSeries(x)
}

// Gain returns the CORDIC gain of n iterations:
//
//	A(n) = Π √(1 + 2**-2i), i = 0 … n-1
//
// Rotation mode results are scaled by A(n); the reciprocal 1/A(n) (often
// called K) is used as the initial x to cancel it.
func Gain(n int) *big.Float {
	g := newFloat(1)
	t := new(big.Float).SetPrec(prec)
	for i := 0; i < n; i++ {
		t.SetMantExp(newFloat(1), -2*i)
		t.Add(t, newFloat(1))
		t.Sqrt(t)
		g.Mul(g, t)
	}
	return g
}

// InvGain returns 1/Gain(n).
func InvGain(n int) *big.Float {
	return new(big.Float).SetPrec(prec).Quo(newFloat(1), Gain(n))
}

var half = new(big.Float).SetPrec(prec).SetFloat64(0.5)

// Scale returns x·2**frac rounded half away from zero, and reports whether the
// result fits in an int64. When it does not fit, the result is saturated to
// math.MinInt64 or math.MaxInt64.
func Scale(x *big.Float, frac uint) (int64, bool) {
	t := new(big.Float).SetPrec(prec).SetMantExp(x, int(frac))
	if t.Sign() < 0 {
		t.Sub(t, half)
	} else {
		t.Add(t, half)
	}
	i, _ := t.Int(nil) // truncates toward zero
	if !i.IsInt64() {
		if i.Sign() < 0 {
			return math.MinInt64, false
		}
		return math.MaxInt64, false
	}
	return i.Int64(), true
}
