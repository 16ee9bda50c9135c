// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file defines the type parameters of Fixed and the overflow policies.

package fixp

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Int is the constraint for the storage type of a Fixed value. Any signed or
// unsigned integer type of 8, 16, 32 or 64 bits is allowed.
type Int interface {
	constraints.Integer
}

// Frac is implemented by the marker types Frac0 to Frac63 that select the
// number of fractional bits of a Fixed type. FracBits must be lower than the
// width of the storage type.
type Frac interface {
	FracBits() uint
}

// OverflowMode determines what happens when the result of an operation does
// not fit in the format of its operands.
type OverflowMode byte

// These constants define supported overflow modes.
const (
	Wrap     OverflowMode = iota // keep the low bits of the result (two's complement)
	Saturate                     // clamp the result to Min or Max
	Trap                         // panic with ErrOverflow
)

//go:generate go tool stringer -type=OverflowMode

// ParseOverflowMode returns the OverflowMode named s. Matching is case
// insensitive and "sat" is accepted as a short form of "saturate".
func ParseOverflowMode(s string) (OverflowMode, error) {
	switch strings.ToLower(s) {
	case "wrap":
		return Wrap, nil
	case "saturate", "sat":
		return Saturate, nil
	case "trap":
		return Trap, nil
	}
	return 0, fmt.Errorf("fixp: unknown overflow mode %q", s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (m OverflowMode) MarshalText() ([]byte, error) {
	if m > Trap {
		return nil, fmt.Errorf("fixp: invalid overflow mode %d", m)
	}
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *OverflowMode) UnmarshalText(text []byte) error {
	v, err := ParseOverflowMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Policy is implemented by the marker types Wrapping, Saturating and Trapping
// that select the default overflow mode of a Fixed type at compile time.
type Policy interface {
	Mode() OverflowMode
}

// Wrapping selects the Wrap overflow mode.
type Wrapping struct{}

// Saturating selects the Saturate overflow mode.
type Saturating struct{}

// Trapping selects the Trap overflow mode. It is meant for debug builds.
type Trapping struct{}

func (Wrapping) Mode() OverflowMode   { return Wrap }
func (Saturating) Mode() OverflowMode { return Saturate }
func (Trapping) Mode() OverflowMode   { return Trap }

// An ErrOverflow panic is raised by an operation in Trap mode whose result does
// not fit in its format. ErrOverflow implements the error interface.
type ErrOverflow struct {
	Op string
}

func (err ErrOverflow) Error() string {
	return "fixp: overflow in " + err.Op
}

// ErrFormat is returned when decoding a value that was encoded in another
// format.
type ErrFormat struct {
	Got, Want string
}

func (err ErrFormat) Error() string {
	return "fixp: format mismatch: got " + err.Got + ", want " + err.Want
}

// formatName returns the Q notation of a format: Qm.n for signed formats (m
// excludes the sign bit) and UQm.n for unsigned ones.
func formatName(bits, frac uint, signed bool) string {
	if signed {
		return fmt.Sprintf("Q%d.%d", int(bits)-1-int(frac), frac)
	}
	return fmt.Sprintf("UQ%d.%d", int(bits)-int(frac), frac)
}
