package math

import (
	"math/bits"

	"github.com/db47h/fixp"
	"github.com/db47h/fixp/internal/consts"
	"github.com/db47h/fixp/internal/wide"
)

// ln(2) and log2(e) with 60 fractional bits.
var (
	ln2   = mustScale(consts.Scale(consts.Ln2, work))
	log2e = mustScale(consts.Scale(consts.Log2E, work))
)

func mustScale(v int64, ok bool) uint64 {
	if !ok {
		panic("fixp/math: constant out of range")
	}
	return uint64(v)
}

// logScale returns the number of fractional bits of log2Raw results. The
// integer part of a logarithm needs up to 8 bits.
func logScale(frac uint) uint {
	return min(frac+6, 54)
}

// log2Raw returns log2(u/2**frac) with s fractional bits, for u > 0.
//
// The integer part comes from the bit length of u. The fractional bits of the
// logarithm of the mantissa m in [1, 2) are produced one at a time by
// repeatedly squaring m: each time m² >= 2, the next bit is 1 and m is
// halved.
func log2Raw(u uint64, frac uint) (l int64, s uint) {
	s = logScale(frac)
	n := bits.Len64(u) - 1
	e := int64(n) - int64(frac)
	// mantissa at 60 fractional bits
	var m uint64
	if n <= work {
		m = u << uint(work-n)
	} else {
		m = u >> uint(n-work)
	}
	var f int64
	for i := uint(1); i <= s; i++ {
		m = mul60(m, m)
		if m >= 2<<work {
			m >>= 1
			f |= 1 << (s - i)
		}
	}
	return e<<s | f, s
}

// Log2 returns the binary logarithm of x. Log2 of zero or of a negative value
// is 0.
func Log2[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	if x.Sign() <= 0 {
		return fixp.Fixed[T, F, P]{}
	}
	l, s := log2Raw(uint64(x.Raw()), x.FracBits())
	return fromWide[T, F, P](shift(wide.FromInt64(l), int(x.FracBits())-int(s)))
}

// Log returns the natural logarithm of x, computed as log2(x)·ln(2). Log of
// zero or of a negative value is 0.
func Log[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	if x.Sign() <= 0 {
		return fixp.Fixed[T, F, P]{}
	}
	l, s := log2Raw(uint64(x.Raw()), x.FracBits())
	w := wide.Mul(wide.FromInt64(l), wide.FromUint64(ln2)) // s+60 bits
	return fromWide[T, F, P](shift(w, int(x.FracBits())-int(s)-work))
}

// shift returns w × 2**n, rounded half up when n < 0.
func shift(w wide.Int, n int) wide.Int {
	if n >= 0 {
		return w.Lsh(uint(n))
	}
	return w.RshRound(uint(-n))
}
