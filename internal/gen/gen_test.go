// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/fixp"
)

const tomlConfig = `
package = "fixp"

[[format]]
name = "Q15_16"
storage = "int32"
frac = 16
aliases = ["Q16_16"]

[[format]]
name = "Q15_16Sat"
storage = "int32"
frac = 16
policy = "saturate"
doc = "Use it for control loops."
`

const yamlConfig = `
package: dsp
format:
  - name: Q0_15
    storage: int16
    frac: 15
    policy: sat
  - name: UQ8_8
    storage: uint16
    frac: 8
`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(tomlConfig), "toml")
	if err != nil {
		t.Fatal(err)
	}
	if c.Package != "fixp" || len(c.Formats) != 2 {
		t.Fatalf("got %+v", c)
	}
	if f := c.Formats[1]; f.Policy != fixp.Saturate || f.Doc == "" || f.PolicyType() != "Saturating" {
		t.Errorf("got %+v", f)
	}
	if f := c.Formats[0]; f.Policy != fixp.Wrap || len(f.Aliases) != 1 {
		t.Errorf("got %+v", f)
	}

	c, err = Decode(strings.NewReader(yamlConfig), ".yml")
	if err != nil {
		t.Fatal(err)
	}
	if c.Package != "dsp" || len(c.Formats) != 2 || c.Formats[0].Policy != fixp.Saturate {
		t.Fatalf("got %+v", c)
	}
	if c.Formats[1].Signed() || c.Formats[1].Bits() != 16 {
		t.Errorf("got %+v", c.Formats[1])
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, test := range []struct {
		format string
		data   string
		want   string
	}{
		{"toml", `pkg = "x"`, "unknown key"},
		{"yaml", "pkg: x\n", "failed to parse YAML"},
		{"json", `{}`, "unsupported config format"},
		{"toml", "[[format]]\nname = \"Q\"\nstorage = \"int7\"\n", "unsupported storage type"},
		{"toml", "[[format]]\nname = \"Q\"\nstorage = \"int8\"\nfrac = 8\n", "do not fit"},
		{"toml", "[[format]]\nname = \"q\"\nstorage = \"int8\"\n", "invalid name"},
		{"toml", "[[format]]\nname = \"Q\"\nstorage = \"int8\"\naliases = [\"Q\"]\n", "duplicate name"},
		{"toml", "[[format]]\nname = \"Q\"\nstorage = \"int8\"\npolicy = \"clip\"\n", "unknown overflow mode"},
		{"toml", "package = \"a-b\"\n", "invalid package name"},
	} {
		_, err := Decode(strings.NewReader(test.data), test.format)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("Decode(%q, %s): got error %v; want %q", test.data, test.format, err, test.want)
		}
	}
}

func TestValidateReportsAll(t *testing.T) {
	c := &Config{Package: "fixp", Formats: []Format{
		{Name: "A", Storage: "int8", Frac: 9},
		{Name: "B", Storage: "float"},
	}}
	err := c.Validate()
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Fatalf("got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	for _, test := range []struct {
		f    Format
		want string
	}{
		{Format{Storage: "int32", Frac: 16}, "a signed 32-bit format with 15 integer and 16 fractional bits. Overflow wraps."},
		{Format{Storage: "uint16", Frac: 8, Policy: fixp.Saturate}, "an unsigned 16-bit format with 8 integer and 8 fractional bits. Overflow saturates."},
		{Format{Storage: "int8", Frac: 7, Policy: fixp.Trap}, "a signed 8-bit format with 0 integer and 7 fractional bits. Overflow panics."},
	} {
		if got := test.f.Describe(); got != test.want {
			t.Errorf("Describe() = %q; want %q", got, test.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	c, err := Decode(strings.NewReader(tomlConfig), "toml")
	if err != nil {
		t.Fatal(err)
	}
	src, err := Generate(c)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// Code generated by fixgen; DO NOT EDIT.",
		"package fixp\n",
		"type Frac0 struct{}",
		"func (Frac63) FracBits() uint { return 63 }",
		"type Q15_16 = Fixed[int32, Frac16, Wrapping]",
		"type Q16_16 = Q15_16",
		"type Q15_16Sat = Fixed[int32, Frac16, Saturating]",
		"// Use it for control loops.",
	} {
		if !bytes.Contains(src, []byte(want)) {
			t.Errorf("generated code does not contain %q:\n%s", want, src)
		}
	}

	c, err = Decode(strings.NewReader(yamlConfig), "yaml")
	if err != nil {
		t.Fatal(err)
	}
	src, err = Generate(c)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"package dsp\n",
		`import "github.com/db47h/fixp"`,
		"type Q0_15 = fixp.Fixed[int16, fixp.Frac15, fixp.Saturating]",
	} {
		if !bytes.Contains(src, []byte(want)) {
			t.Errorf("generated code does not contain %q:\n%s", want, src)
		}
	}
	if bytes.Contains(src, []byte("type Frac")) {
		t.Error("external package declares Frac types")
	}
}

// TestGeneratedUpToDate checks that formats_gen.go matches formats.toml.
func TestGeneratedUpToDate(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "formats.toml"))
	if err != nil {
		t.Fatal(err)
	}
	want, err := Generate(c)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join("..", "..", "formats_gen.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("formats_gen.go is out of date; run go generate")
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, 16, 16); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	for _, want := range []string{
		"var atanTable = [16]int64{",
		"\t0xc910, // 0: 0.785398163397448",
		"const invGain = 0x9b75",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("table does not contain %q:\n%s", want, s)
		}
	}
	if err := WriteTable(&buf, 64, 16); err == nil {
		t.Error("expected error for 64 fractional bits")
	}
	if err := WriteTable(&buf, 16, 0); err == nil {
		t.Error("expected error for 0 iterations")
	}
}
