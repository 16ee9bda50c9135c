// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixp

import (
	"math/big"
	"sync"

	"github.com/db47h/fixp/internal/consts"
	"github.com/db47h/fixp/internal/wide"
)

// scaled holds the irrational constants scaled to a given number of fractional
// bits, rounded to nearest and saturated to the int64 range.
type scaled struct {
	pi, halfPi, quarterPi, twoPi, e, sqrt2 int64
}

var scaledCache [64]struct {
	once sync.Once
	c    scaled
}

func scaleConst(x *big.Float, frac uint, mul int) int64 {
	t := new(big.Float).Set(x)
	t.SetMantExp(t, mul)
	v, _ := consts.Scale(t, frac)
	return v
}

func constants(frac uint) *scaled {
	e := &scaledCache[frac]
	e.once.Do(func() {
		e.c = scaled{
			pi:        scaleConst(consts.Pi, frac, 0),
			halfPi:    scaleConst(consts.Pi, frac, -1),
			quarterPi: scaleConst(consts.Pi, frac, -2),
			twoPi:     scaleConst(consts.Pi, frac, 1),
			e:         scaleConst(consts.E, frac, 0),
			sqrt2:     scaleConst(consts.Sqrt2, frac, 0),
		}
		Logger().Debug("fixp: constants ready", "frac", frac)
	})
	return &e.c
}

func constOf[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy](sel func(*scaled) int64) X {
	v := sel(constants(fracOf[F]()))
	return X(Fixed[T, F, P]{narrow[T](wide.FromInt64(v), Saturate, "")})
}

// Zero returns 0 in the format X.
func Zero[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy]() X {
	return X(Fixed[T, F, P]{})
}

// One returns 1 in the format X, or Max if 1 is not representable in X.
func One[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy]() X {
	return X(Fixed[T, F, P]{oneRaw[T, F]()})
}

// Max returns the largest value of the format X.
func Max[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy]() X {
	return X(Fixed[T, F, P]{maxOf[T]()})
}

// Min returns the smallest value of the format X.
func Min[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy]() X {
	return X(Fixed[T, F, P]{minOf[T]()})
}

// Epsilon returns the smallest positive value of the format X, 2**-FracBits.
func Epsilon[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy]() X {
	return X(Fixed[T, F, P]{1})
}

// Irrational constants, rounded to the nearest value of the format X.
// Constants that are out of range saturate to Max.

func Pi[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy]() X {
	return constOf[X, T, F, P](func(c *scaled) int64 { return c.pi })
}

func HalfPi[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy]() X {
	return constOf[X, T, F, P](func(c *scaled) int64 { return c.halfPi })
}

func QuarterPi[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy]() X {
	return constOf[X, T, F, P](func(c *scaled) int64 { return c.quarterPi })
}

func TwoPi[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy]() X {
	return constOf[X, T, F, P](func(c *scaled) int64 { return c.twoPi })
}

func E[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy]() X {
	return constOf[X, T, F, P](func(c *scaled) int64 { return c.e })
}

func Sqrt2[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy]() X {
	return constOf[X, T, F, P](func(c *scaled) int64 { return c.sqrt2 })
}
