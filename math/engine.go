package math

import (
	"sync"

	"github.com/db47h/fixp"
	"github.com/db47h/fixp/internal/cordic"
	"github.com/db47h/fixp/internal/wide"
)

// engines caches one CORDIC engine per number of fractional bits. Engines are
// built on first use and never modified.
var engines [64]struct {
	once sync.Once
	e    *cordic.Engine
}

func engine(frac uint) *cordic.Engine {
	c := &engines[frac]
	c.once.Do(func() {
		c.e = cordic.New(frac, 0)
		fixp.Logger().Debug("fixp/math: cordic engine ready",
			"frac", frac, "iterations", c.e.Iterations(), "scale", c.e.Scale())
	})
	return c.e
}

// Iterations returns the number of CORDIC iterations used for values of x's
// format.
func Iterations[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) int {
	return engine(x.FracBits()).Iterations()
}

// raw returns x's raw value as an int64, saturating.
func raw[T fixp.Int, F fixp.Frac, P fixp.Policy](x fixp.Fixed[T, F, P]) int64 {
	return x.Raw64()
}

// fromRaw returns the value with raw representation r, saturated.
func fromRaw[T fixp.Int, F fixp.Frac, P fixp.Policy](r int64) fixp.Fixed[T, F, P] {
	return fixp.FromRaw64[fixp.Fixed[T, F, P]](r)
}

// fromWide returns the value with raw representation w, saturated.
func fromWide[T fixp.Int, F fixp.Frac, P fixp.Policy](w wide.Int) fixp.Fixed[T, F, P] {
	if v, ok := w.Int64(); ok {
		return fromRaw[T, F, P](v)
	}
	hi := fixp.Max[fixp.Fixed[T, F, P]]()
	if u, ok := w.Uint64(); ok && u <= uint64(hi.Raw()) {
		return fixp.FromRaw[fixp.Fixed[T, F, P]](T(u))
	}
	if w.Sign() < 0 {
		return fixp.Min[fixp.Fixed[T, F, P]]()
	}
	return hi
}
