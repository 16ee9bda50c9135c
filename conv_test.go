// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixp

import (
	"bytes"
	"encoding"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"testing/quick"
)

var (
	_ fmt.Stringer             = Q15_16{}
	_ fmt.Formatter            = Q15_16{}
	_ encoding.TextMarshaler   = Q15_16{}
	_ encoding.TextUnmarshaler = new(Q15_16)
	_ gob.GobEncoder           = Q15_16{}
	_ gob.GobDecoder           = new(Q15_16)
)

// Verify that the error types implement the error interface.
var (
	_ error = ErrOverflow{}
	_ error = ErrFormat{}
)

func TestFromFloat64(t *testing.T) {
	eps := math.Ldexp(1, -16)
	for _, tc := range []struct {
		f    float64
		want int32
	}{
		{0, 0},
		{1.5, 0x18000},
		{-1.5, -0x18000},
		{3.75, 0x3c000},
		{eps / 2, 1},   // ties away from zero
		{-eps / 2, -1}, // ties away from zero
		{eps / 3, 0},
		{1e6, math.MaxInt32},
		{-1e6, math.MinInt32},
		{32768, math.MaxInt32},
		{-32768, math.MinInt32},
		{math.Inf(1), math.MaxInt32},
		{math.Inf(-1), math.MinInt32},
		{math.NaN(), 0},
	} {
		if got := FromFloat64[Q15_16](tc.f).Raw(); got != tc.want {
			t.Errorf("FromFloat64(%g) = %#x, want %#x", tc.f, got, tc.want)
		}
	}
	// always saturates, even for wrapping formats
	if got := FromFloat32[UQ8_8](-1); got.Raw() != 0 {
		t.Errorf("UQ8.8 FromFloat32(-1) = %v, want 0", got)
	}
	if got := FromFloat32[UQ8_8](256); got != Max[UQ8_8]() {
		t.Errorf("UQ8.8 FromFloat32(256) = %v, want Max", got)
	}
	if got := FromFloat32[Q0_15](0.5); got.Raw() != 1<<14 {
		t.Errorf("Q0.15 FromFloat32(0.5) = %#x", got.Raw())
	}
}

func TestFloat64_roundTrip(t *testing.T) {
	f := func(r int32) bool {
		x := FromRaw[Q15_16](r)
		return FromFloat64[Q15_16](x.Float64()) == x && x.Float64() == float64(r)/65536
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
	if got := FromRaw[Q15_16](0x18000).Float32(); got != 1.5 {
		t.Errorf("Float32 = %g, want 1.5", got)
	}
}

func TestFromInt(t *testing.T) {
	if got := FromInt[Q15_16](-3); got.Raw() != -3<<16 {
		t.Errorf("FromInt(-3) = %#x", got.Raw())
	}
	v := int64(40000)
	if got := FromInt[Q15_16](40000); got.Raw() != int32(v<<16) {
		t.Errorf("FromInt(40000) wrapping = %#x", got.Raw())
	}
	if got := FromInt[Q15_16Sat](40000); got != Max[Q15_16Sat]() {
		t.Errorf("FromInt(40000) saturating = %v", got)
	}
	if got := FromInt[Q15_16Sat](-40000); got != Min[Q15_16Sat]() {
		t.Errorf("FromInt(-40000) saturating = %v", got)
	}
}

func TestInt(t *testing.T) {
	for _, tc := range []struct {
		f           float64
		trunc, near int
	}{
		{0, 0, 0},
		{1.75, 1, 2},
		{1.5, 1, 2},
		{1.25, 1, 1},
		{-1.25, -2, -1},
		{-1.5, -2, -2},
		{-1.75, -2, -2},
		{-0.5, -1, -1},
	} {
		x := FromFloat64[Q15_16](tc.f)
		if got := x.Int(); got != tc.trunc {
			t.Errorf("Int(%g) = %d, want %d", tc.f, got, tc.trunc)
		}
		if got := x.IntRound(); got != tc.near {
			t.Errorf("IntRound(%g) = %d, want %d", tc.f, got, tc.near)
		}
	}
	if got := FromRaw[Fixed[int16, Frac0, Wrapping]](-7).IntRound(); got != -7 {
		t.Errorf("IntRound with no fractional bits = %d", got)
	}
}

func TestConvert(t *testing.T) {
	x := FromFloat64[Q15_16](1.5)
	if got := Convert[Q7_8](x); got != FromFloat64[Q7_8](1.5) {
		t.Errorf("Convert[Q7_8](1.5) = %v", got)
	}
	// removed bits round half up
	if got := Convert[Q7_8](FromRaw[Q15_16](0x80)); got.Raw() != 1 {
		t.Errorf("Convert[Q7_8](2**-9) = %#x, want 1", got.Raw())
	}
	if got := Convert[Q7_8](FromRaw[Q15_16](-0x80)); got.Raw() != 0 {
		t.Errorf("Convert[Q7_8](-2**-9) = %#x, want 0", got.Raw())
	}
	if got := Convert[Q7_8Sat](FromInt[Q15_16](200)); got != Max[Q7_8Sat]() {
		t.Errorf("Convert[Q7_8Sat](200) = %v, want Max", got)
	}
	if got := Convert[UQ16_16](FromInt[Q15_16](-1)); got.Raw() != 0xffff0000 {
		t.Errorf("Convert[UQ16_16](-1) wrapping = %#x", got.Raw())
	}
	// widening and back is the identity
	f := func(r int32) bool {
		x := FromRaw[Q15_16](r)
		return Convert[Q15_16](Convert[Q31_32](x)) == x
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		x    Q15_16
		want string
	}{
		{Zero[Q15_16](), "0"},
		{FromInt[Q15_16](2), "2"},
		{FromFloat64[Q15_16](3.75), "3.75"},
		{FromFloat64[Q15_16](-0.5), "-0.5"},
		{Epsilon[Q15_16](), "0.0000152587890625"},
		{Min[Q15_16](), "-32768"},
		{Max[Q15_16](), "32767.9999847412109375"},
	} {
		if got := tc.x.String(); got != tc.want {
			t.Errorf("String(%#x) = %s, want %s", tc.x.Raw(), got, tc.want)
		}
	}
	if got := Max[UQ8_8]().String(); got != "255.99609375" {
		t.Errorf("UQ8.8 Max = %s", got)
	}
}

func TestFormat(t *testing.T) {
	x := FromFloat64[Q15_16](1.5)
	for _, tc := range []struct {
		format string
		want   string
	}{
		{"%v", "1.5"},
		{"%s", "1.5"},
		{"%8v", "     1.5"},
		{"%-6s|", "1.5   |"},
		{"%g", "1.5"},
		{"%+g", "+1.5"},
		{"%.3f", "1.500"},
		{"%e", "1.500000e+00"},
	} {
		if got := fmt.Sprintf(tc.format, x); got != tc.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tc.format, got, tc.want)
		}
	}
	if got := x.Text('f', 2); got != "1.50" {
		t.Errorf("Text = %s", got)
	}
	if got := string(x.Append([]byte("x="), 'g', -1)); got != "x=1.5" {
		t.Errorf("Append = %s", got)
	}
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want Q15_16
	}{
		{"3.75", FromFloat64[Q15_16](3.75)},
		{"-0.5", FromFloat64[Q15_16](-0.5)},
		{"0x1.8p1", FromInt[Q15_16](3)},
		{"1e10", Max[Q15_16]()},
		{"-Inf", Min[Q15_16]()},
		{"0.00000762939453125", Epsilon[Q15_16]()}, // 2**-17 ties away from zero
		{"32767.9999847412109375", Max[Q15_16]()},
	} {
		got, err := Parse[Q15_16](tc.s)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.s, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
	if _, err := Parse[Q15_16]("1.5x"); err == nil {
		t.Error("expected parse error")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse[Q15_16]("abc")
}

func TestString_roundTrip(t *testing.T) {
	f := func(r int32) bool {
		x := FromRaw[Q15_16](r)
		y, err := Parse[Q15_16](x.String())
		return err == nil && x == y
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestGobEncode(t *testing.T) {
	x := FromRaw[Q15_16](0x18000)
	buf, err := x.GobEncode()
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{1, 32, 16<<1 | 1, 0x00, 0x01, 0x80, 0x00}; !bytes.Equal(buf, want) {
		t.Errorf("GobEncode = %v, want %v", buf, want)
	}

	var b bytes.Buffer
	values := []Q15_16{Zero[Q15_16](), x, Min[Q15_16](), Max[Q15_16](), FromFloat64[Q15_16](-3.25)}
	if err := gob.NewEncoder(&b).Encode(values); err != nil {
		t.Fatal(err)
	}
	var got []Q15_16
	if err := gob.NewDecoder(bytes.NewReader(b.Bytes())).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != len(values) {
		t.Fatalf("decoded %d values, want %d", len(got), len(values))
	}
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("value %d: got %v, want %v", i, got[i], values[i])
		}
	}

	// different format
	var q Q7_8
	err = gob.NewDecoder(bytes.NewReader(b.Bytes())).Decode(&[]Q7_8{q})
	var ef ErrFormat
	if !errors.As(err, &ef) {
		t.Fatalf("decoding into Q7.8: got %v, want ErrFormat", err)
	}
	if ef.Got != "Q15.16" || ef.Want != "Q7.8" {
		t.Errorf("ErrFormat = %+v", ef)
	}
	if err = q.GobDecode([]byte{2, 16, 17, 0, 0}); err == nil {
		t.Error("expected version error")
	}
	if err = q.GobDecode([]byte{1, 16, 17, 0}); err == nil {
		t.Error("expected length error")
	}
	if err = q.GobDecode(nil); err != nil || !q.IsZero() {
		t.Errorf("GobDecode(nil) = %v, %v", q, err)
	}
}

func TestMarshalText(t *testing.T) {
	x := FromFloat64[Q15_16](-2.25)
	text, err := x.MarshalText()
	if err != nil || string(text) != "-2.25" {
		t.Errorf("MarshalText = %s, %v", text, err)
	}
	var y Q15_16
	if err = y.UnmarshalText(text); err != nil || y != x {
		t.Errorf("UnmarshalText = %v, %v", y, err)
	}
	err = y.UnmarshalText([]byte("x"))
	if err == nil || !strings.Contains(err.Error(), "Q15.16") {
		t.Errorf("UnmarshalText(x) error = %v", err)
	}

	// JSON goes through the text marshaler
	type point struct {
		X, Y Q15_16
	}
	js, err := json.Marshal(point{FromFloat64[Q15_16](1.5), x})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"X":"1.5","Y":"-2.25"}`; string(js) != want {
		t.Errorf("json = %s, want %s", js, want)
	}
	var p point
	if err = json.Unmarshal(js, &p); err != nil || p.X != FromFloat64[Q15_16](1.5) || p.Y != x {
		t.Errorf("json.Unmarshal = %+v, %v", p, err)
	}
}
