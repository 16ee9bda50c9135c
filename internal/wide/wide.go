// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wide implements the double-width intermediate used by fixed-point
// multiplication, division and accumulation.
//
// An Int is a 128-bit magnitude with a separate sign. It is never stored in a
// fixed-point value: it only lives for the duration of a single operation.
package wide

import (
	"math"
	"math/bits"
)

// Int is a signed 128-bit integer in sign-magnitude form. The zero value is 0.
// Zero is never negative.
type Int struct {
	neg    bool
	hi, lo uint64
}

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	m := uint64(v)
	if v < 0 {
		m = -m
	}
	return Int{neg: v < 0, lo: m}
}

// FromUint64 returns v as an Int.
func FromUint64(v uint64) Int {
	return Int{lo: v}
}

func (x Int) norm() Int {
	if x.hi == 0 && x.lo == 0 {
		x.neg = false
	}
	return x
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int {
	switch {
	case x.hi == 0 && x.lo == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// Neg returns -x.
func (x Int) Neg() Int {
	x.neg = !x.neg
	return x.norm()
}

// Abs returns |x|.
func (x Int) Abs() Int {
	x.neg = false
	return x
}

// BitLen returns the length of the magnitude of x in bits.
func (x Int) BitLen() int {
	if x.hi != 0 {
		return 64 + bits.Len64(x.hi)
	}
	return bits.Len64(x.lo)
}

// cmpAbs compares the magnitudes of x and y.
func cmpAbs(x, y Int) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	}
	r := cmpAbs(x, y)
	if x.neg {
		return -r
	}
	return r
}

func addAbs(x, y Int) (hi, lo uint64) {
	var c uint64
	lo, c = bits.Add64(x.lo, y.lo, 0)
	hi, _ = bits.Add64(x.hi, y.hi, c)
	return
}

func subAbs(x, y Int) (hi, lo uint64) {
	var b uint64
	lo, b = bits.Sub64(x.lo, y.lo, 0)
	hi, _ = bits.Sub64(x.hi, y.hi, b)
	return
}

// Add returns x + y. Carries out of the 128-bit magnitude are lost.
func Add(x, y Int) Int {
	if x.neg == y.neg {
		hi, lo := addAbs(x, y)
		return Int{neg: x.neg, hi: hi, lo: lo}.norm()
	}
	if cmpAbs(x, y) >= 0 {
		hi, lo := subAbs(x, y)
		return Int{neg: x.neg, hi: hi, lo: lo}.norm()
	}
	hi, lo := subAbs(y, x)
	return Int{neg: y.neg, hi: hi, lo: lo}.norm()
}

// Sub returns x - y.
func Sub(x, y Int) Int {
	return Add(x, y.Neg())
}

// Mul returns the exact product x × y of two values whose magnitudes fit in 64
// bits. The high words of x and y are ignored.
func Mul(x, y Int) Int {
	hi, lo := bits.Mul64(x.lo, y.lo)
	return Int{neg: x.neg != y.neg, hi: hi, lo: lo}.norm()
}

// Lsh returns x << n. Bits shifted out of the 128-bit magnitude are lost.
func (x Int) Lsh(n uint) Int {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return Int{}
	case n >= 64:
		x.hi, x.lo = x.lo<<(n-64), 0
	default:
		x.hi, x.lo = x.hi<<n|x.lo>>(64-n), x.lo<<n
	}
	return x.norm()
}

func rshAbs(hi, lo uint64, n uint) (uint64, uint64) {
	switch {
	case n == 0:
		return hi, lo
	case n >= 128:
		return 0, 0
	case n >= 64:
		return 0, hi >> (n - 64)
	}
	return hi >> n, lo>>n | hi<<(64-n)
}

// Rsh returns x >> n, rounded toward zero.
func (x Int) Rsh(n uint) Int {
	x.hi, x.lo = rshAbs(x.hi, x.lo, n)
	return x.norm()
}

// RshRound returns floor((x + 2**(n-1)) / 2**n), that is x / 2**n rounded to
// the nearest integer with ties rounded toward positive infinity.
func (x Int) RshRound(n uint) Int {
	if n == 0 || n > 127 {
		return x.Rsh(n)
	}
	h := Int{lo: 1}.Lsh(n - 1)
	// for negative x, floor((-m + h) / 2**n) == -((m + h - 1) >> n)
	if x.neg {
		h = Sub(h, Int{lo: 1})
	}
	hi, lo := addAbs(x, h)
	x.hi, x.lo = rshAbs(hi, lo, n)
	return x.norm()
}

// Quo returns x / y truncated toward zero. The magnitude of y must fit in 64
// bits; Quo panics if y is zero.
func Quo(x, y Int) Int {
	d := y.lo
	qhi, r := x.hi/d, x.hi%d
	qlo, _ := bits.Div64(r, x.lo, d)
	return Int{neg: x.neg != y.neg, hi: qhi, lo: qlo}.norm()
}

// Rem returns x modulo d, with the sign of x (truncated division).
func (x Int) Rem(d uint64) Int {
	_, r := bits.Div64(x.hi%d, x.lo, d)
	return Int{neg: x.neg, lo: r}.norm()
}

// Int64 returns x as an int64 and reports whether it fits.
func (x Int) Int64() (int64, bool) {
	if x.hi != 0 {
		return 0, false
	}
	if x.neg {
		if x.lo > 1<<63 {
			return 0, false
		}
		return int64(-x.lo), true
	}
	if x.lo > math.MaxInt64 {
		return 0, false
	}
	return int64(x.lo), true
}

// Uint64 returns x as a uint64 and reports whether it fits.
func (x Int) Uint64() (uint64, bool) {
	if x.neg || x.hi != 0 {
		return 0, false
	}
	return x.lo, true
}

// Low64 returns the low 64 bits of the two's complement representation of x.
func (x Int) Low64() uint64 {
	if x.neg {
		return -x.lo
	}
	return x.lo
}
