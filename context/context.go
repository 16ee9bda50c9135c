// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides overflow contexts for fixed-point values.
//
// A Context applies its own overflow mode to the operations it performs,
// regardless of the policy of the format:
//
//	ctx := context.New[fixp.Q15_16](fixp.Trap)
//	z := ctx.Mul(x, y) // traps on overflow, whatever the policy of Q15_16
//
// A Context catches overflow errors: if an operation overflows in Trap mode,
// the operation silently succeeds and returns its first operand. Further
// operations with the context are no-ops (they simply return their first
// operand) until (*Context).Err is called to check for errors. Division by zero
// and the square root of a negative number are recorded in the same way, in
// all modes.
//
// A Context is not safe for concurrent use. Its mode can be carried across API
// boundaries by a standard library context.Context with WithMode, and turned
// back into a Context with FromContext.
package context

import (
	stdctx "context"
	"errors"

	"github.com/db47h/fixp"
	fixmath "github.com/db47h/fixp/math"
)

// Errors recorded by a Context besides fixp.ErrOverflow.
var (
	ErrDivByZero = errors.New("fixp: division by zero")
	ErrDomain    = errors.New("fixp: argument out of domain")
)

// A Context is a wrapper around fixed-point operations that facilitates
// management of overflow modes and error handling.
type Context[T fixp.Int, F fixp.Frac, P fixp.Policy] struct {
	mode fixp.OverflowMode
	err  error
}

// New creates a new context for the format X with the given overflow mode.
func New[X interface{ fixp.Fixed[T, F, P] }, T fixp.Int, F fixp.Frac, P fixp.Policy](mode fixp.OverflowMode) *Context[T, F, P] {
	return &Context[T, F, P]{mode: mode}
}

type modeKey struct{}

// WithMode returns a copy of parent that carries mode.
func WithMode(parent stdctx.Context, mode fixp.OverflowMode) stdctx.Context {
	return stdctx.WithValue(parent, modeKey{}, mode)
}

// ModeFromContext returns the overflow mode carried by ctx, if any.
func ModeFromContext(ctx stdctx.Context) (fixp.OverflowMode, bool) {
	m, ok := ctx.Value(modeKey{}).(fixp.OverflowMode)
	return m, ok
}

// FromContext returns a new Context for the format X, set to the mode carried
// by ctx, or to the mode of X's policy if ctx carries none.
func FromContext[X interface{ fixp.Fixed[T, F, P] }, T fixp.Int, F fixp.Frac, P fixp.Policy](ctx stdctx.Context) *Context[T, F, P] {
	m, ok := ModeFromContext(ctx)
	if !ok {
		var p P
		m = p.Mode()
	}
	return &Context[T, F, P]{mode: m}
}

// Mode returns the overflow mode of c.
func (c *Context[T, F, P]) Mode() fixp.OverflowMode {
	return c.mode
}

// SetMode sets c's overflow mode to mode and returns c.
func (c *Context[T, F, P]) SetMode(mode fixp.OverflowMode) *Context[T, F, P] {
	c.mode = mode
	return c
}

// Enter sets c's overflow mode to mode and returns a function that restores
// the previous mode. It is meant to be used with defer:
//
//	defer ctx.Enter(fixp.Saturate)()
func (c *Context[T, F, P]) Enter(mode fixp.OverflowMode) (restore func()) {
	prev := c.mode
	c.mode = mode
	return func() { c.mode = prev }
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context[T, F, P]) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// do returns op(c.mode). If op panics with an ErrOverflow, the error is
// recorded and z is returned.
func (c *Context[T, F, P]) do(z fixp.Fixed[T, F, P], op func(fixp.OverflowMode) fixp.Fixed[T, F, P]) (r fixp.Fixed[T, F, P]) {
	if c.err != nil {
		return z
	}
	defer func() {
		if e := recover(); e != nil {
			err, ok := e.(error)
			var ovf fixp.ErrOverflow
			if !ok || !errors.As(err, &ovf) {
				panic(e)
			}
			c.err = ovf
			r = z
		}
	}()
	return op(c.mode)
}

// Add returns the sum x+y.
func (c *Context[T, F, P]) Add(x, y fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return c.do(x, func(m fixp.OverflowMode) fixp.Fixed[T, F, P] { return x.AddMode(y, m) })
}

// Sub returns the difference x-y.
func (c *Context[T, F, P]) Sub(x, y fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return c.do(x, func(m fixp.OverflowMode) fixp.Fixed[T, F, P] { return x.SubMode(y, m) })
}

// Mul returns the rounded product x×y.
func (c *Context[T, F, P]) Mul(x, y fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return c.do(x, func(m fixp.OverflowMode) fixp.Fixed[T, F, P] { return x.MulMode(y, m) })
}

// Quo returns the quotient x/y. Division by zero records ErrDivByZero.
func (c *Context[T, F, P]) Quo(x, y fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	if c.err == nil && y.IsZero() {
		c.err = ErrDivByZero
		return x
	}
	return c.do(x, func(m fixp.OverflowMode) fixp.Fixed[T, F, P] { return x.QuoMode(y, m) })
}

// MulInt returns x×n.
func (c *Context[T, F, P]) MulInt(x fixp.Fixed[T, F, P], n int) fixp.Fixed[T, F, P] {
	return c.do(x, func(m fixp.OverflowMode) fixp.Fixed[T, F, P] { return x.MulIntMode(n, m) })
}

// QuoInt returns x/n. Division by zero records ErrDivByZero.
func (c *Context[T, F, P]) QuoInt(x fixp.Fixed[T, F, P], n int) fixp.Fixed[T, F, P] {
	if c.err == nil && n == 0 {
		c.err = ErrDivByZero
		return x
	}
	return c.do(x, func(m fixp.OverflowMode) fixp.Fixed[T, F, P] { return x.QuoIntMode(n, m) })
}

// Neg returns -x.
func (c *Context[T, F, P]) Neg(x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return c.do(x, func(m fixp.OverflowMode) fixp.Fixed[T, F, P] { return x.NegMode(m) })
}

// Abs returns |x|.
func (c *Context[T, F, P]) Abs(x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	return c.do(x, func(m fixp.OverflowMode) fixp.Fixed[T, F, P] {
		if x.Sign() < 0 {
			return x.NegMode(m)
		}
		return x
	})
}

// Sqrt returns the square root of x. A negative argument records ErrDomain.
func (c *Context[T, F, P]) Sqrt(x fixp.Fixed[T, F, P]) fixp.Fixed[T, F, P] {
	if c.err != nil {
		return x
	}
	if x.Sign() < 0 {
		c.err = ErrDomain
		return x
	}
	return fixmath.Sqrt(x)
}
