// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixp

import (
	"math"
	"unsafe"

	"github.com/db47h/fixp/internal/wide"
)

// A Fixed is a fixed-point number: an integer of type T holding the value
// scaled by 2**FracBits, where FracBits is given by F. P selects the default
// overflow mode of arithmetic operations.
//
// Fixed values are immutable: operations return new values. Values of
// different formats are different types and cannot be mixed without an
// explicit Convert. The zero value is 0.
type Fixed[T Int, F Frac, P Policy] struct {
	raw T
}

// Internal helpers over type parameters. They reduce to constants once
// instantiated.

func bitsOf[T Int]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

func isSigned[T Int]() bool {
	return ^T(0) < 0
}

func minOf[T Int]() T {
	if isSigned[T]() {
		return T(1) << (bitsOf[T]() - 1)
	}
	return 0
}

func maxOf[T Int]() T {
	return ^minOf[T]()
}

func fracOf[F Frac]() uint {
	var f F
	return f.FracBits()
}

func modeOf[P Policy]() OverflowMode {
	var p P
	return p.Mode()
}

// toWide returns v as a wide integer.
func toWide[T Int](v T) wide.Int {
	if isSigned[T]() {
		return wide.FromInt64(int64(v))
	}
	return wide.FromUint64(uint64(v))
}

// fits reports whether w is in the range of T.
func fits[T Int](w wide.Int) bool {
	if isSigned[T]() {
		v, ok := w.Int64()
		return ok && v >= int64(minOf[T]()) && v <= int64(maxOf[T]())
	}
	v, ok := w.Uint64()
	return ok && v <= uint64(maxOf[T]())
}

func saturate[T Int](neg bool) T {
	if neg {
		return minOf[T]()
	}
	return maxOf[T]()
}

// narrow converts w to T according to mode. op names the operation for
// ErrOverflow.
func narrow[T Int](w wide.Int, mode OverflowMode, op string) T {
	if fits[T](w) {
		return T(w.Low64())
	}
	switch mode {
	case Wrap:
		return T(w.Low64())
	case Trap:
		panic(ErrOverflow{op})
	}
	return saturate[T](w.Sign() < 0)
}

// oneRaw returns the raw value of 1, saturated to the maximum when 1 is not
// representable.
func oneRaw[T Int, F Frac]() T {
	f := fracOf[F]()
	if f+1 >= bitsOf[T]() && isSigned[T]() || f >= bitsOf[T]() {
		return maxOf[T]()
	}
	return T(1) << f
}

// FromRaw returns the Fixed value of type X whose raw representation is r.
// That is, the value r / 2**FracBits.
//
// The type parameters T, F and P are inferred from X:
//
//	x := fixp.FromRaw[fixp.Q15_16](0x18000) // 1.5
func FromRaw[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy](r T) X {
	return X(Fixed[T, F, P]{r})
}

// FromRaw64 returns the value of type X whose raw representation is r,
// saturated to the range of X.
func FromRaw64[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy](r int64) X {
	return X(Fixed[T, F, P]{narrow[T](wide.FromInt64(r), Saturate, "")})
}

// Raw returns the raw representation of x.
func (x Fixed[T, F, P]) Raw() T {
	return x.raw
}

// Raw64 returns the raw representation of x as an int64. Raw values of
// unsigned 64-bit formats above math.MaxInt64 saturate.
func (x Fixed[T, F, P]) Raw64() int64 {
	if !isSigned[T]() && uint64(x.raw) > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(x.raw)
}

// Bits returns the total number of bits of x's format.
func (Fixed[T, F, P]) Bits() uint { return bitsOf[T]() }

// FracBits returns the number of fractional bits of x's format.
func (Fixed[T, F, P]) FracBits() uint { return fracOf[F]() }

// Signed reports whether x's format is signed.
func (Fixed[T, F, P]) Signed() bool { return isSigned[T]() }

// Mode returns the default overflow mode of x's format.
func (Fixed[T, F, P]) Mode() OverflowMode { return modeOf[P]() }

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Fixed[T, F, P]) Cmp(y Fixed[T, F, P]) int {
	switch {
	case x.raw < y.raw:
		return -1
	case x.raw > y.raw:
		return 1
	}
	return 0
}

func (x Fixed[T, F, P]) Eq(y Fixed[T, F, P]) bool { return x.raw == y.raw }
func (x Fixed[T, F, P]) Ne(y Fixed[T, F, P]) bool { return x.raw != y.raw }
func (x Fixed[T, F, P]) Lt(y Fixed[T, F, P]) bool { return x.raw < y.raw }
func (x Fixed[T, F, P]) Le(y Fixed[T, F, P]) bool { return x.raw <= y.raw }
func (x Fixed[T, F, P]) Gt(y Fixed[T, F, P]) bool { return x.raw > y.raw }
func (x Fixed[T, F, P]) Ge(y Fixed[T, F, P]) bool { return x.raw >= y.raw }

// IsZero reports whether x is 0.
func (x Fixed[T, F, P]) IsZero() bool { return x.raw == 0 }

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x Fixed[T, F, P]) Sign() int {
	switch {
	case x.raw < 0:
		return -1
	case x.raw > 0:
		return 1
	}
	return 0
}
