package math

import "github.com/db47h/fixp"

// The functions below mirror the standard library's math package for Fixed
// values so that code can be written against a single package.

// Abs returns |x|. Abs saturates: Abs(Min) is Max.
//
// This function is a proxy for x.Abs()
func Abs[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return x.Abs()
}

// Floor returns the greatest integer value less than or equal to x.
//
// This function is a proxy for x.Floor()
func Floor[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return x.Floor()
}

// Ceil returns the least integer value greater than or equal to x.
//
// This function is a proxy for x.Ceil()
func Ceil[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return x.Ceil()
}

// Trunc returns the integer value of x.
//
// This function is a proxy for x.Trunc()
func Trunc[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return x.Trunc()
}

// Round returns the nearest integer, rounding half away from zero.
//
// This function is a proxy for x.Round()
func Round[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return x.Round()
}

// Modf returns integer and fractional values that sum to x. Unlike the
// standard library, the fractional part is always non-negative: int is
// Floor(x).
func Modf[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) (ip, frac fixp.Fixed[T, F, P]) {
	return x.Floor(), x.Frac()
}

// Dim returns the maximum of x-y or 0.
func Dim[T fixp.Int, F fixp.Frac, P fixp.Policy](x, y fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	if x.Le(y) {
		return fixp.Fixed[T, F, P]{}
	}
	return x.SubSat(y)
}
