package math

import (
	"math/bits"

	"github.com/db47h/fixp"
	"github.com/db47h/fixp/internal/wide"
)

// Exponentials and logarithms are computed on raw values with a 60 bit working
// precision for the mantissa, then rounded to the format.

const work = 60 // fractional bits of the working precision

// mul60 returns a×b / 2**60, truncated.
func mul60(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi<<(64-work) | lo>>work
}

// exp2Frac returns 2**(t/2**60) × 2**60 for t in [0, 2**60), by the Taylor
// series of e**(t·ln 2). 20 terms bring the truncation error below 2**-60.
func exp2Frac(t uint64) uint64 {
	u := mul60(t, ln2)
	sum, term := uint64(1)<<work, uint64(1)<<work
	for k := uint64(1); k <= 20 && term != 0; k++ {
		term = mul60(term, u) / k
		sum += term
	}
	return sum
}

// huge is a wide value that does not fit any format.
var huge = wide.FromUint64(1).Lsh(127)

// exp2Raw returns 2**(r/2**s) as a raw value with frac fractional bits. The
// result does not fit in 64 bits when it overflows.
func exp2Raw(r int64, s, frac uint) wide.Int {
	n := r >> s // floor
	switch {
	case n > 128:
		return huge
	case n < -256:
		return wide.Int{}
	}
	f := uint64(r) & (1<<s - 1)
	if s <= work {
		f <<= work - s
	} else {
		f >>= s - work
	}
	m := wide.FromUint64(exp2Frac(f)) // [2**60, 2**61)
	sh := n + int64(frac) - work
	switch {
	case sh >= 64:
		return huge
	case sh >= 0:
		return m.Lsh(uint(sh))
	case sh < -127:
		return wide.Int{}
	}
	return m.RshRound(uint(-sh))
}

// Exp2 returns 2**x. Results out of range saturate.
func Exp2[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	f := x.FracBits()
	if f > 62 {
		// keep 1<<s within an int64
		return fromWide[T, F, P](exp2Raw(raw(x)>>(f-62), 62, f))
	}
	return fromWide[T, F, P](exp2Raw(raw(x), f, f))
}

// expScale is the scale of the exponent passed to exp2Raw by Exp and Pow.
func expScale(frac uint) uint {
	return min(frac+8, 62)
}

// exp2Wide returns 2**w as a value of the format X, where w has s
// fractional bits.
func exp2Wide[T fixp.Int, F fixp.Frac, P fixp.Policy](w wide.Int, s uint) fixp.Fixed[T, F, P] {
	e, ok := w.Int64()
	if !ok {
		if w.Sign() < 0 {
			return fixp.Fixed[T, F, P]{}
		}
		return fixp.Max[fixp.Fixed[T, F, P]]()
	}
	return fromWide[T, F, P](exp2Raw(e, s, fixp.Fixed[T, F, P]{}.FracBits()))
}

// Exp returns e**x, computed as 2**(x·log2(e)). Results out of range saturate.
func Exp[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	f := x.FracBits()
	s := expScale(f)
	// x × log2(e) at f+60 bits, rounded to s bits.
	w := wide.Mul(wide.FromInt64(raw(x)), wide.FromUint64(log2e)).RshRound(f + work - s)
	return exp2Wide[T, F, P](w, s)
}

// Pow returns x**y, computed as 2**(y·log2(x)). If x <= 0 the result is 0, and
// Pow(x, 0) is 1 for any x > 0.
func Pow[T fixp.Int, F fixp.Frac, P fixp.Policy](x, y fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	if x.Sign() <= 0 {
		return fixp.Fixed[T, F, P]{}
	}
	f := x.FracBits()
	l, s := log2Raw(uint64(x.Raw()), f)
	// y × log2(x) at f+s bits, rounded to s bits.
	w := wide.Mul(wide.FromInt64(raw(y)), wide.FromInt64(l)).RshRound(f)
	return exp2Wide[T, F, P](w, s)
}
