package math

import (
	"github.com/db47h/fixp"
	"github.com/db47h/fixp/internal/wide"
)

// SqrtIterations is the number of Newton-Raphson iterations run by Sqrt. It is
// enough for full precision in all formats.
const SqrtIterations = 8

// Sqrt returns the square root of x, truncated to x's format. Sqrt of zero or
// of a negative value is 0.
//
// The root is computed with SqrtIterations Newton-Raphson steps on integers,
// starting from a power of two derived from the bit length of x.
func Sqrt[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return SqrtN(x, SqrtIterations)
}

// SqrtN is like Sqrt but runs n Newton-Raphson iterations. With fewer
// iterations than Sqrt the result may be too large.
func SqrtN[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P], n int) fixp.Fixed[T, F, P] {
	if x.Sign() <= 0 {
		return fixp.Fixed[T, F, P]{}
	}
	// √(r/2**F) × 2**F = √(r × 2**F)
	v := wide.FromUint64(uint64(x.Raw())).Lsh(x.FracBits())
	r := isqrt(v, n)
	if hi := uint64(fixp.Max[fixp.Fixed[T, F, P]]().Raw()); r > hi {
		r = hi
	}
	return fixp.FromRaw[fixp.Fixed[T, F, P]](T(r))
}

// isqrt returns ⌊√v⌋ for v < 2**127, using n Newton-Raphson iterations.
func isqrt(v wide.Int, n int) uint64 {
	l := v.BitLen()
	if l == 0 {
		return 0
	}
	// 2**⌈l/2⌉ >= √v, and Newton's iteration decreases monotonically from
	// above.
	var r uint64 = 1<<64 - 1
	if e := (l + 1) / 2; e < 64 {
		r = 1 << uint(e)
	}
	for i := 0; i < n; i++ {
		q := wide.Quo(v, wide.FromUint64(r))
		qu, ok := q.Uint64()
		if !ok {
			qu = 1<<64 - 1
		}
		// ⌊(r+q)/2⌋ without overflow
		r = r>>1 + qu>>1 + r&qu&1
	}
	// After convergence r may oscillate between ⌊√v⌋ and ⌊√v⌋+1.
	if sq := wide.Mul(wide.FromUint64(r), wide.FromUint64(r)); sq.Cmp(v) > 0 {
		r--
	}
	return r
}

// Rsqrt returns 1/√x. If √x is zero, the result is Max.
func Rsqrt[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	s := Sqrt(x)
	return fixp.One[fixp.Fixed[T, F, P]]().QuoSat(s)
}
