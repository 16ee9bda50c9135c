// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cordic implements the CORDIC shift-and-add algorithm in circular
// rotation and vectoring modes, together with the range reduction needed to
// evaluate sine, cosine, arctangent and vector magnitude of fixed-point
// values.
//
// An Engine works for a given number of fractional bits. Inputs and outputs of
// its exported methods are raw fixed-point values with that many fractional
// bits, held in int64s. Internally the accumulators carry a few guard bits.
//
// The number of iterations of an Engine is fixed and the execution time of all
// methods is independent of their input.
package cordic

import (
	"math/big"
	"math/bits"

	"github.com/db47h/fixp/internal/consts"
	"github.com/db47h/fixp/internal/wide"
)

const (
	// Guard is the number of extra fractional bits of the accumulators.
	Guard = 8
	// MaxScale is the largest supported accumulator scale: 2π×2**MaxScale must
	// fit in an int64.
	MaxScale = 60
	// MaxIterations is the largest supported iteration count.
	MaxIterations = 62
	// normBits is the bit length to which vectors are normalized in vectoring
	// mode. The CORDIC gain (< 1.65) times √2 leaves one spare bit.
	normBits = 60
)

// An Engine holds the precomputed arctangent table and gain of a CORDIC
// configuration. It is immutable and safe for concurrent use.
type Engine struct {
	frac  uint    // fractional bits of inputs and outputs
	scale uint    // fractional bits of the accumulators
	atan  []int64 // atan(2**-i) × 2**scale
	kinv  int64   // 1/A(n) × 2**scale, where A(n) is the gain of n iterations

	pi, halfPi int64 // × 2**scale

	// 2π × 2**(scale+64), truncated, split in its high and low 64 bits.
	twoPiHi, twoPiLo uint64
}

// Iterations returns the default iteration count for frac fractional bits.
// It matches the number of fractional bits, with a minimum of 8.
func Iterations(frac uint) int {
	n := int(frac)
	if n < 8 {
		n = 8
	}
	if n > MaxIterations {
		n = MaxIterations
	}
	return n
}

func mustScale(v int64, ok bool) int64 {
	if !ok {
		panic("cordic: constant out of range")
	}
	return v
}

// New returns a new Engine for values with frac fractional bits, running n
// iterations. If n <= 0, Iterations(frac) is used.
func New(frac uint, n int) *Engine {
	if n <= 0 {
		n = Iterations(frac)
	}
	if n > MaxIterations {
		n = MaxIterations
	}
	s := frac + Guard
	if s > MaxScale {
		s = MaxScale
	}
	e := &Engine{
		frac:  frac,
		scale: s,
		atan:  make([]int64, n),
		kinv:  mustScale(consts.Scale(consts.InvGain(n), s)),
		pi:    mustScale(consts.Scale(consts.Pi, s)),
	}
	for i := range e.atan {
		e.atan[i] = mustScale(consts.Scale(consts.Atan(i), s))
	}
	e.halfPi = mustScale(consts.Scale(new(big.Float).SetMantExp(consts.Pi, -1), s))
	t, _ := new(big.Float).SetMantExp(consts.Pi, int(s)+65).Int(nil)
	e.twoPiLo = t.Uint64()
	e.twoPiHi = t.Rsh(t, 64).Uint64()
	return e
}

// Frac returns the number of fractional bits of e's inputs and outputs.
func (e *Engine) Frac() uint { return e.frac }

// Scale returns the number of fractional bits of e's accumulators.
func (e *Engine) Scale() uint { return e.scale }

// Iterations returns the number of iterations run by e.
func (e *Engine) Iterations() int { return len(e.atan) }

// rotate runs the rotation mode iterations, driving z toward zero.
func (e *Engine) rotate(x, y, z int64) (int64, int64, int64) {
	for i, a := range e.atan {
		dx, dy := y>>uint(i), x>>uint(i)
		if z >= 0 {
			x, y, z = x-dx, y+dy, z-a
		} else {
			x, y, z = x+dx, y-dy, z+a
		}
	}
	return x, y, z
}

// vector runs the vectoring mode iterations, driving y toward zero. x must be
// positive.
func (e *Engine) vector(x, y int64) (int64, int64, int64) {
	var z int64
	for i, a := range e.atan {
		dx, dy := y>>uint(i), x>>uint(i)
		if y >= 0 {
			x, y, z = x+dx, y-dy, z+a
		} else {
			x, y, z = x-dx, y+dy, z-a
		}
	}
	return x, y, z
}

// shiftRound returns w × 2**s, rounded half away from zero when s < 0. The
// rounding is symmetric: shiftRound(-w, s) == -shiftRound(w, s).
func shiftRound(w wide.Int, s int) wide.Int {
	if s >= 0 {
		return w.Lsh(uint(s))
	}
	n := uint(-s)
	m := wide.Add(w.Abs(), wide.FromInt64(1).Lsh(n-1)).Rsh(n)
	if w.Sign() < 0 {
		return m.Neg()
	}
	return m
}

func sat64(w wide.Int) int64 {
	if v, ok := w.Int64(); ok {
		return v
	}
	if w.Sign() < 0 {
		return -1 << 63
	}
	return 1<<63 - 1
}

// in converts a raw input value to the accumulator scale, without reduction.
func (e *Engine) in(v int64) wide.Int {
	return shiftRound(wide.FromInt64(v), int(e.scale)-int(e.frac))
}

// out converts an accumulator value to the output scale.
func (e *Engine) out(v int64) int64 {
	return sat64(shiftRound(wide.FromInt64(v), int(e.frac)-int(e.scale)))
}

// wrap reduces angle to [-π, π] at accumulator scale.
//
// The reduction works with 64 bits of 2π beyond the accumulator scale, so that
// the error does not grow with the number of periods removed. The angle is
// first reduced by the high word of 2π, which leaves a period count k and a
// remainder below 2π. The remainder is then extended by 64 bits and corrected
// by k times the low word of 2π. What is left is reduced by the full 2π, with a
// quotient estimated from its top 63 bits.
func (e *Engine) wrap(angle int64) int64 {
	hi, lo := wide.FromUint64(e.twoPiHi), wide.FromUint64(e.twoPiLo)
	d := wide.Add(hi.Lsh(64), lo) // 2π × 2**(scale+64)

	x := e.in(angle) // |x| < 2**71
	k := wide.Quo(x, hi)
	r := wide.Sub(x, wide.Mul(k, hi))
	r = wide.Sub(r.Lsh(64), wide.Mul(k, lo))

	sh := uint(d.BitLen() - 63)
	k = wide.Quo(r.Rsh(sh), d.Rsh(sh))
	r = wide.Sub(r, wide.Add(wide.Mul(k, hi).Lsh(64), wide.Mul(k, lo)))

	half := d.Rsh(1)
	for r.Cmp(half) > 0 {
		r = wide.Sub(r, d)
	}
	for r.Cmp(half.Neg()) < 0 {
		r = wide.Add(r, d)
	}
	v, _ := shiftRound(r, -64).Int64()
	return v
}

// Reduce maps angle into [-π/2, π/2], the convergence domain of rotation mode,
// and returns it at e.Scale() fractional bits. The reduction first uses the
// periodicity of sine and cosine to map angle into [-π, π], then the
// identities sin(π-x) = sin(x) and cos(π-x) = -cos(x). negCos reports
// whether the cosine computed from r must be negated.
//
// Reduce is odd: Reduce(-a) == -Reduce(a) with the same negCos.
func (e *Engine) Reduce(angle int64) (r int64, negCos bool) {
	r = e.wrap(angle)
	switch {
	case r > e.halfPi:
		r, negCos = e.pi-r, true
	case r < -e.halfPi:
		r, negCos = -e.pi-r, true
	}
	return r, negCos
}

// Sincos returns the sine and cosine of angle.
//
// The rotation runs on |angle| and signs are applied after rounding, so that
// sin(-x) == -sin(x) and cos(-x) == cos(x) hold exactly.
func (e *Engine) Sincos(angle int64) (sin, cos int64) {
	z, negCos := e.Reduce(angle)
	neg := z < 0
	if neg {
		z = -z
	}
	x, y, _ := e.rotate(e.kinv, 0, z)
	if z == 0 {
		// exact on the axes; the iterations above run regardless
		x, y = 1<<e.scale, 0
	}
	sin, cos = e.out(y), e.out(x)
	if neg {
		sin = -sin
	}
	if negCos {
		cos = -cos
	}
	return sin, cos
}

func abs64(v int64) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return u
}

// norm returns the shift that brings the larger of |x| and |y| to normBits
// bits.
func norm(x, y int64) int {
	return normBits - bits.Len64(abs64(x)|abs64(y))
}

func shift64(v int64, s int) int64 {
	if s >= 0 {
		return v << uint(s)
	}
	return v >> uint(-s)
}

// Atan2 returns the arctangent of y/x, in [-π, π], using the signs of both
// arguments to determine the quadrant.
//
// Atan2(0, 0) is 0 and Atan2(y, 0) is ±π/2 with the sign of y.
func (e *Engine) Atan2(y, x int64) int64 {
	switch {
	case x == 0 && y == 0:
		return 0
	case x == 0:
		if y > 0 {
			return e.out(e.halfPi)
		}
		return -e.out(e.halfPi)
	case y == 0:
		if x > 0 {
			return 0
		}
		return e.out(e.pi)
	}
	s := norm(x, y)
	// Bring the vector into the right half plane: (x, y) -> (-x, -y) when x
	// is negative. Shifting magnitudes keeps the normalization symmetric.
	vx, vy := int64(shiftMag(abs64(x), s)), int64(shiftMag(abs64(y), s))
	if (y < 0) != (x < 0) {
		vy = -vy
	}
	_, _, z := e.vector(vx, vy)
	if x < 0 {
		if y >= 0 {
			z += e.pi
		} else {
			z -= e.pi
		}
	}
	switch {
	case z > e.pi:
		z = e.pi
	case z < -e.pi:
		z = -e.pi
	}
	return sat64(shiftRound(wide.FromInt64(z), int(e.frac)-int(e.scale)))
}

func shiftMag(u uint64, s int) uint64 {
	if s >= 0 {
		return u << uint(s)
	}
	return u >> uint(-s)
}

// Hypot returns √(x²+y²), computed in vectoring mode. The result saturates to
// math.MaxInt64.
func (e *Engine) Hypot(x, y int64) int64 {
	switch {
	case y == 0:
		return sat64(wide.FromUint64(abs64(x)))
	case x == 0:
		return sat64(wide.FromUint64(abs64(y)))
	}
	s := norm(x, y)
	vx, _, _ := e.vector(int64(shiftMag(abs64(x), s)), int64(shiftMag(abs64(y), s)))
	// vx = A(n) × magnitude; compensate the gain, then undo the normalization.
	m := wide.Mul(wide.FromInt64(vx), wide.FromInt64(e.kinv)).RshRound(e.scale)
	return sat64(shiftRound(m, -s))
}

// Rotate rotates the vector (x, y) by angle and returns the result. The gain
// of the iterations is compensated. Results saturate to the int64 range.
func (e *Engine) Rotate(x, y, angle int64) (int64, int64) {
	if x == 0 && y == 0 {
		return 0, 0
	}
	z := e.wrap(angle)
	// a rotation by ±π negates both components
	flip := false
	switch {
	case z > e.halfPi:
		z, flip = z-e.pi, true
	case z < -e.halfPi:
		z, flip = z+e.pi, true
	}
	s := norm(x, y)
	rx, ry, _ := e.rotate(shift64(x, s), shift64(y, s), z)
	if flip {
		rx, ry = -rx, -ry
	}
	k := wide.FromInt64(e.kinv)
	wx := wide.Mul(wide.FromInt64(rx), k).RshRound(e.scale)
	wy := wide.Mul(wide.FromInt64(ry), k).RshRound(e.scale)
	return sat64(shiftRound(wx, -s)), sat64(shiftRound(wy, -s))
}
