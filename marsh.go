// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Fixed values.

package fixp

import (
	"fmt"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const fixedGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The raw value is encoded
// together with its format (total bits, fractional bits and signedness).
func (x Fixed[T, F, P]) GobEncode() ([]byte, error) {
	n := bitsOf[T]() / 8
	buf := make([]byte, 3+n)
	buf[0] = fixedGobVersion
	buf[1] = byte(bitsOf[T]())
	buf[2] = byte(fracOf[F]()) << 1
	if isSigned[T]() {
		buf[2] |= 1
	}
	u := uint64(x.raw)
	for i := len(buf) - 1; i >= 3; i-- {
		buf[i] = byte(u)
		u >>= 8
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface. It fails with an
// ErrFormat if buf holds a value of a different format.
func (z *Fixed[T, F, P]) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Fixed[T, F, P]{}
		return nil
	}
	if buf[0] != fixedGobVersion {
		return fmt.Errorf("Fixed.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 3 || len(buf) != 3+int(buf[1])/8 {
		return fmt.Errorf("Fixed.GobDecode: invalid encoding length %d", len(buf))
	}
	bits, frac, signed := uint(buf[1]), uint(buf[2]>>1), buf[2]&1 != 0
	if bits != bitsOf[T]() || frac != fracOf[F]() || signed != isSigned[T]() {
		return ErrFormat{
			Got:  formatName(bits, frac, signed),
			Want: formatName(bitsOf[T](), fracOf[F](), isSigned[T]()),
		}
	}
	var u uint64
	for _, b := range buf[3:] {
		u = u<<8 | uint64(b)
	}
	z.raw = T(u)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The value is
// marshaled exactly, in decimal.
func (x Fixed[T, F, P]) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The result
// is rounded and saturated as for Parse.
func (z *Fixed[T, F, P]) UnmarshalText(text []byte) error {
	r, err := parse[T, F](string(text))
	if err != nil {
		return fmt.Errorf("fixp: cannot unmarshal %q into a %s (%v)", text,
			formatName(bitsOf[T](), fracOf[F](), isSigned[T]()), err)
	}
	z.raw = r
	return nil
}
