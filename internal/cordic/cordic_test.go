// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cordic

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

var fracs = []uint{7, 8, 15, 16, 24, 32}

func toRaw(x float64, frac uint) int64 {
	return int64(math.Round(math.Ldexp(x, int(frac))))
}

func toFloat(r int64, frac uint) float64 {
	return math.Ldexp(float64(r), -int(frac))
}

func TestNew(t *testing.T) {
	for _, test := range []struct {
		frac  uint
		n     int
		scale uint
		iter  int
	}{
		{16, 0, 24, 16},
		{16, 20, 24, 20},
		{4, 0, 12, 8},
		{32, 0, 40, 32},
		{56, 0, 60, 56},
		{63, 0, 60, 62},
		{16, 100, 24, MaxIterations},
	} {
		e := New(test.frac, test.n)
		if e.Scale() != test.scale || e.Iterations() != test.iter || e.Frac() != test.frac {
			t.Errorf("New(%d, %d): scale %d, iterations %d; want %d, %d",
				test.frac, test.n, e.Scale(), e.Iterations(), test.scale, test.iter)
		}
	}
}

func TestTable(t *testing.T) {
	e := New(16, 16)
	for i, a := range e.atan {
		want := math.Ldexp(math.Atan(math.Ldexp(1, -i)), int(e.Scale()))
		if math.Abs(float64(a)-want) > 0.5 {
			t.Errorf("table[%d] = %d; want %v", i, a, want)
		}
	}
	k := toFloat(e.kinv, e.Scale())
	if math.Abs(k-0.6072529350088813) > 1e-6 {
		t.Errorf("1/gain = %v", k)
	}
	// 2π at scale+64 bits
	tp := math.Ldexp(float64(e.twoPiHi), -int(e.Scale())) + math.Ldexp(float64(e.twoPiLo), -int(e.Scale())-64)
	if math.Abs(tp-2*math.Pi) > 1e-15 {
		t.Errorf("2π = %v", tp)
	}
}

func TestSincos(t *testing.T) {
	for _, frac := range fracs {
		e := New(frac, 0)
		ulp := math.Ldexp(1, -int(frac))
		tol := 4 * ulp
		// CORDIC results of Q0.7 are within [-1, 1]; only keep the bound.
		for a := -10.0; a <= 10; a += 0.01 {
			r := toRaw(a, frac)
			x := toFloat(r, frac)
			s, c := e.Sincos(r)
			gs, gc := toFloat(s, frac), toFloat(c, frac)
			if math.Abs(gs-math.Sin(x)) > tol || math.Abs(gc-math.Cos(x)) > tol {
				t.Fatalf("frac %d: Sincos(%v) = %v, %v; want %v, %v", frac, x, gs, gc, math.Sin(x), math.Cos(x))
			}
		}
	}
}

func TestSincosSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, frac := range fracs {
		e := New(frac, 0)
		for i := 0; i < 5000; i++ {
			a := int64(r.Uint64()) >> uint(r.Intn(63))
			s0, c0 := e.Sincos(a)
			s1, c1 := e.Sincos(-a)
			if s1 != -s0 || c1 != c0 {
				t.Fatalf("frac %d: Sincos(%d) = %d, %d; Sincos(%d) = %d, %d", frac, a, s0, c0, -a, s1, c1)
			}
		}
	}
}

func TestReduce(t *testing.T) {
	e := New(16, 0)
	for a := int64(-1 << 22); a < 1<<22; a += 997 {
		r, neg := e.Reduce(a)
		if r < -e.halfPi || r > e.halfPi {
			t.Fatalf("Reduce(%d) = %d out of range", a, r)
		}
		nr, nneg := e.Reduce(-a)
		if nr != -r || nneg != neg {
			t.Fatalf("Reduce(%d) = %d, %v; Reduce(%d) = %d, %v", a, r, neg, -a, nr, nneg)
		}
		// sin is preserved by the reduction
		x := toFloat(a, 16)
		got := math.Sin(toFloat(r, e.Scale()))
		if math.Abs(got-math.Sin(x)) > 1e-4 {
			t.Fatalf("Reduce(%v) = %v: sin %v; want %v", x, toFloat(r, e.Scale()), got, math.Sin(x))
		}
		gc := math.Cos(toFloat(r, e.Scale()))
		if neg {
			gc = -gc
		}
		if math.Abs(gc-math.Cos(x)) > 1e-4 {
			t.Fatalf("Reduce(%v) = %v, %v: cos %v; want %v", x, toFloat(r, e.Scale()), neg, gc, math.Cos(x))
		}
	}
}

// Large angles are reduced with a 2π that is more precise than the
// accumulators, so the error does not grow with the number of periods.
func TestSincosLargeAngles(t *testing.T) {
	for _, test := range []struct {
		frac uint
		base float64
	}{
		{16, 32000},
		{32, 2e9},
		{8, 3e16},
	} {
		e := New(test.frac, 0)
		tol := 4 * math.Ldexp(1, -int(test.frac))
		for i := 0; i < 1000; i++ {
			a := test.base + float64(i)*0.37
			v := toFloat(toRaw(a, test.frac), test.frac)
			for _, x := range []float64{v, -v} {
				s, c := e.Sincos(toRaw(x, test.frac))
				if d := math.Abs(toFloat(s, test.frac) - math.Sin(x)); d > tol {
					t.Fatalf("frac %d: sin(%v) = %v; want %v", test.frac, x, toFloat(s, test.frac), math.Sin(x))
				}
				if d := math.Abs(toFloat(c, test.frac) - math.Cos(x)); d > tol {
					t.Fatalf("frac %d: cos(%v) = %v; want %v", test.frac, x, toFloat(c, test.frac), math.Cos(x))
				}
			}
		}
	}
}

func TestAtan2(t *testing.T) {
	for _, frac := range fracs {
		e := New(frac, 0)
		tol := 4 * math.Ldexp(1, -int(frac))
		pi := math.Pi + tol
		for _, v := range [][2]float64{
			{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
			{0.5, 0.25}, {-0.5, 0.25}, {0.25, -0.5}, {-0.25, -0.5},
			{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {0.75, 0},
			{0.001, -0.9}, {-0.001, -0.9},
		} {
			y, x := toRaw(v[0], frac), toRaw(v[1], frac)
			got := toFloat(e.Atan2(y, x), frac)
			want := math.Atan2(toFloat(y, frac), toFloat(x, frac))
			if math.Abs(got-want) > tol || math.Abs(got) > pi {
				t.Errorf("frac %d: Atan2(%v, %v) = %v; want %v", frac, v[0], v[1], got, want)
			}
		}
		if got := e.Atan2(0, 0); got != 0 {
			t.Errorf("frac %d: Atan2(0, 0) = %d; want 0", frac, got)
		}
		if got, want := e.Atan2(1, 0), -e.Atan2(-1, 0); got != want || got <= 0 {
			t.Errorf("frac %d: Atan2(±1, 0) = %d, %d", frac, got, -want)
		}
	}
}

func TestAtan2Extremes(t *testing.T) {
	e := New(32, 0)
	for _, v := range [][2]int64{
		{math.MaxInt64, math.MaxInt64},
		{math.MinInt64, math.MinInt64},
		{math.MinInt64, 1},
		{1, math.MinInt64},
		{-1, math.MinInt64},
	} {
		got := toFloat(e.Atan2(v[0], v[1]), 32)
		want := math.Atan2(float64(v[0]), float64(v[1]))
		if math.Abs(got-want) > 1e-8 {
			t.Errorf("Atan2(%d, %d) = %v; want %v", v[0], v[1], got, want)
		}
	}
}

func TestHypot(t *testing.T) {
	for _, frac := range []uint{8, 16, 32} {
		e := New(frac, 0)
		ulp := math.Ldexp(1, -int(frac))
		for _, v := range [][2]float64{{3, 4}, {-3, 4}, {0, -2}, {1, 1}, {0.001, 0}, {100, -0.5}} {
			got := toFloat(e.Hypot(toRaw(v[0], frac), toRaw(v[1], frac)), frac)
			want := math.Hypot(toFloat(toRaw(v[0], frac), frac), toFloat(toRaw(v[1], frac), frac))
			if math.Abs(got-want) > 2*ulp+want*1e-4 {
				t.Errorf("frac %d: Hypot(%v, %v) = %v; want %v", frac, v[0], v[1], got, want)
			}
		}
	}
	e := New(0, 0)
	if got := e.Hypot(math.MaxInt64, math.MaxInt64); got != math.MaxInt64 {
		t.Errorf("Hypot(MaxInt64, MaxInt64) = %d; want saturation", got)
	}
}

func TestRotate(t *testing.T) {
	const frac = 16
	e := New(frac, 0)
	tol := 4 * math.Ldexp(1, -frac)
	for _, test := range []struct {
		x, y, a float64
	}{
		{1, 0, math.Pi / 2},
		{3, 4, math.Pi / 2},
		{3, 4, -math.Pi},
		{3, 4, 3},
		{-2, 0.5, 1},
		{0.25, -0.5, -2.5},
		{0, 0, 1},
	} {
		a := toFloat(toRaw(test.a, frac), frac)
		gx, gy := e.Rotate(toRaw(test.x, frac), toRaw(test.y, frac), toRaw(test.a, frac))
		s, c := math.Sincos(a)
		wx, wy := test.x*c-test.y*s, test.x*s+test.y*c
		if math.Abs(toFloat(gx, frac)-wx) > tol*(1+math.Hypot(test.x, test.y)) ||
			math.Abs(toFloat(gy, frac)-wy) > tol*(1+math.Hypot(test.x, test.y)) {
			t.Errorf("Rotate(%v, %v, %v) = %v, %v; want %v, %v", test.x, test.y, test.a,
				toFloat(gx, frac), toFloat(gy, frac), wx, wy)
		}
	}
}

func TestAxes(t *testing.T) {
	for _, frac := range []uint{8, 16, 32} {
		e := New(frac, 0)
		one := int64(1) << frac
		if s, c := e.Sincos(0); s != 0 || c != one {
			t.Errorf("frac %d: Sincos(0) = %d, %d; want 0, %d", frac, s, c, one)
		}
		if got := e.Atan2(0, 5); got != 0 {
			t.Errorf("frac %d: Atan2(0, 5) = %d; want 0", frac, got)
		}
		if got, want := e.Atan2(0, -5), toRaw(math.Pi, frac); got != want {
			t.Errorf("frac %d: Atan2(0, -5) = %d; want %d", frac, got, want)
		}
		if got := e.Hypot(-3*one, 0); got != 3*one {
			t.Errorf("frac %d: Hypot(-3, 0) = %d; want %d", frac, got, 3*one)
		}
	}
}

func BenchmarkSincos(b *testing.B) {
	for _, frac := range []uint{16, 32} {
		e := New(frac, 0)
		b.Run(fmt.Sprint(frac), func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				e.Sincos(int64(n))
			}
		})
	}
}
