// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string conversion of Fixed values. All conversions go
// through an exact big.Float.

package fixp

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/db47h/fixp/internal/wide"
)

// Float returns the exact value of x as a *big.Float.
func (x Fixed[T, F, P]) Float() *big.Float {
	f := new(big.Float).SetPrec(64)
	if isSigned[T]() {
		f.SetInt64(int64(x.raw))
	} else {
		f.SetUint64(uint64(x.raw))
	}
	return f.SetMantExp(f, -int(fracOf[F]()))
}

// String returns the exact decimal representation of x, without trailing
// zeros.
func (x Fixed[T, F, P]) String() string {
	s := x.Float().Text('f', int(fracOf[F]()))
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// Text converts x to a string according to the given format and precision, as
// big.Float.Text does.
func (x Fixed[T, F, P]) Text(format byte, prec int) string {
	return x.Float().Text(format, prec)
}

// Append appends to buf the string form of x, as generated by x.Text, and
// returns the extended buffer.
func (x Fixed[T, F, P]) Append(buf []byte, format byte, prec int) []byte {
	return x.Float().Append(buf, format, prec)
}

// Format implements fmt.Formatter. The 's' and 'v' verbs print x.String(); all
// other verbs behave as for *big.Float.
func (x Fixed[T, F, P]) Format(s fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprintf(s, fmt.FormatString(s, 's'), x.String())
	default:
		x.Float().Format(s, verb)
	}
}

var half = big.NewFloat(0.5)

// fromBig returns f × 2**F rounded half away from zero and saturated to T.
func fromBig[T Int, F Frac](f *big.Float) T {
	if f.IsInf() {
		return saturate[T](f.Signbit())
	}
	t := new(big.Float).SetMantExp(f, int(fracOf[F]()))
	if t.Signbit() {
		t.Sub(t, half)
	} else {
		t.Add(t, half)
	}
	i, _ := t.Int(nil)
	var w wide.Int
	switch {
	case i.IsInt64():
		w = wide.FromInt64(i.Int64())
	case i.IsUint64():
		w = wide.FromUint64(i.Uint64())
	default:
		return saturate[T](i.Sign() < 0)
	}
	return narrow[T](w, Saturate, "")
}

func parse[T Int, F Frac](s string) (T, error) {
	f, _, err := big.ParseFloat(s, 0, 256, big.ToNearestEven)
	if err != nil {
		return 0, err
	}
	return fromBig[T, F](f), nil
}

// Parse parses s as a value of format X. s may be any floating-point literal
// accepted by big.ParseFloat with base 0, including hexadecimal mantissas and
// "Inf". The result is rounded to nearest with ties away from zero and
// saturates like FromFloat64.
func Parse[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy](s string) (X, error) {
	r, err := parse[T, F](s)
	return X(Fixed[T, F, P]{r}), err
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies safe
// initialization of global variables.
func MustParse[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy](s string) X {
	r, err := parse[T, F](s)
	if err != nil {
		panic(err)
	}
	return X(Fixed[T, F, P]{r})
}
