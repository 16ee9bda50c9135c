// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fixp implements binary fixed-point arithmetic on Go's integer types.

A fixed-point value of format Q(m.n) is a two's complement integer r, stored
in m+n+1 bits (or m+n bits for unsigned formats), that represents the real
number r / 2**n. The format of a value is part of its type:

	type Fixed[T Int, F Frac, P Policy] struct{ ... }

T is the storage type, F selects the number of fractional bits and P is the
overflow policy of the format. The most common formats have names:

	var x fixp.Q15_16 // signed 32 bits, 16 fractional bits, wraps on overflow
	var y fixp.Q7_8Sat // signed 16 bits, 8 fractional bits, saturates

The zero value of a Fixed is 0. Values are created from other numeric types
with the generic functions FromInt, FromFloat64, Parse and FromRaw:

	x := fixp.FromFloat64[fixp.Q15_16](1.5)
	y := fixp.MustParse[fixp.Q15_16]("2.25")
	z := x.Add(y) // 3.75

# Overflow

Every arithmetic operation comes in three flavors. The plain method, like Add,
applies the policy of the format. AddWrap and AddSat force wrapping or
saturation. AddMode takes the OverflowMode as an argument. In Trap mode, an
operation whose result does not fit panics with an ErrOverflow; package
fixp/context turns these panics into sticky errors.

Wrapping operations behave like Go's integer arithmetic. Saturating operations
clamp the result to [Min, Max]. Division by zero is not an error in any mode:
it saturates to Max or Min according to the sign of the dividend.

Multiplication computes the exact product in 128 bits and rounds it half up.
Division truncates toward zero. Conversions from floating-point values round
half away from zero and always saturate.

Constants such as Pi, E and Sqrt2 are computed with math/big and rounded to
nearest for each number of fractional bits. Package fixp/math provides
elementary functions: trigonometric functions and Atan2 computed with the
CORDIC algorithm, square roots by Newton-Raphson iteration, exponentials and
logarithms.

Fixed values implement fmt.Formatter, encoding.TextMarshaler and gob.GobEncoder.
Formatting is exact: the 'v' and 's' verbs print all the significant digits of
a value, other verbs format it like a *big.Float.

The named formats are declared in formats_gen.go, generated by cmd/fixgen from
formats.toml.
*/
package fixp

//go:generate go run ./cmd/fixgen generate -c formats.toml -o formats_gen.go
