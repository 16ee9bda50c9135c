// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixp

import "github.com/db47h/fixp/internal/wide"

// Acc is a multiply-accumulate register for values of type Fixed[T, F, P].
//
// Products are accumulated exactly in a 128-bit register, at twice the
// fractional precision of the format, and rounded only once by Result. This
// is the building block of dot products, FIR filters and the like.
//
// When the magnitude of the sum reaches 2**127, the accumulator saturates with
// the sign of the sum and ignores further input until Reset.
//
// The zero value is an empty accumulator ready to use.
type Acc[T Int, F Frac, P Policy] struct {
	sum wide.Int
	sat int // sign of the saturated sum, 0 if not saturated
}

// add adds v to the sum. Both terms are below 2**128, and only products of
// unsigned 64-bit raw values reach 2**127; those are never negative.
func (a *Acc[T, F, P]) add(v wide.Int) {
	if a.sat != 0 {
		return
	}
	if v.BitLen() > 127 {
		a.sat = v.Sign()
		return
	}
	a.sum = wide.Add(a.sum, v)
	if a.sum.BitLen() > 127 {
		a.sat = a.sum.Sign()
	}
}

// MulAdd adds x × y to the accumulator.
func (a *Acc[T, F, P]) MulAdd(x, y Fixed[T, F, P]) {
	a.add(wide.Mul(toWide(x.raw), toWide(y.raw)))
}

// Add adds x to the accumulator.
func (a *Acc[T, F, P]) Add(x Fixed[T, F, P]) {
	a.add(toWide(x.raw).Lsh(fracOf[F]()))
}

// Reset clears the accumulator.
func (a *Acc[T, F, P]) Reset() {
	*a = Acc[T, F, P]{}
}

// Result returns the accumulated sum, rounded half up to the format and
// saturated to its range.
func (a *Acc[T, F, P]) Result() Fixed[T, F, P] {
	if a.sat != 0 {
		return Fixed[T, F, P]{saturate[T](a.sat < 0)}
	}
	return Fixed[T, F, P]{narrow[T](a.sum.RshRound(fracOf[F]()), Saturate, "acc")}
}

// Dot returns the dot product of x and y, rounded once. If the slices differ in
// length, the extra elements are ignored.
func Dot[T Int, F Frac, P Policy](x, y []Fixed[T, F, P]) Fixed[T, F, P] {
	var a Acc[T, F, P]
	for i := range min(len(x), len(y)) {
		a.MulAdd(x[i], y[i])
	}
	return a.Result()
}
