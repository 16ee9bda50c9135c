// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/db47h/fixp/internal/consts"
)

// MaxFrac is the largest number of fractional bits of a format.
const MaxFrac = 63

var formatsTmpl = template.Must(template.New("formats").Parse(`// Code generated by fixgen; DO NOT EDIT.

package {{.Package}}
{{if .External}}
import "github.com/db47h/fixp"
{{else}}{{range .Fracs}}
// Frac{{.}} selects {{.}} fractional bits.
type Frac{{.}} struct{}

// FracBits returns {{.}}.
func (Frac{{.}}) FracBits() uint { return {{.}} }
{{end}}{{end}}
{{- range $f := .Formats}}
// {{$f.Name}} is {{$f.Describe}}
{{- with $f.Doc}}
//
// {{.}}
{{- end}}
type {{$f.Name}} = {{$.Q}}Fixed[{{$f.Storage}}, {{$.Q}}Frac{{$f.Frac}}, {{$.Q}}{{$f.PolicyType}}]
{{range $f.Aliases}}
// {{.}} is an alias of {{$f.Name}}.
type {{.}} = {{$f.Name}}
{{end}}
{{- end}}`))

type tmplData struct {
	*Config
	External bool
	Q        string
	Fracs    []uint
}

// Generate returns the formatted Go source declaring the formats of c. When
// c.Package is the fixp package itself, the FracN marker types are declared
// as well; otherwise the declarations refer to package fixp.
func Generate(c *Config) ([]byte, error) {
	d := tmplData{Config: c}
	if c.Package != DefaultPackage {
		d.External, d.Q = true, "fixp."
	} else {
		for i := uint(0); i <= MaxFrac; i++ {
			d.Fracs = append(d.Fracs, i)
		}
	}
	var buf bytes.Buffer
	if err := formatsTmpl.Execute(&buf, d); err != nil {
		return nil, err
	}
	out, err := imports.Process("formats_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

// WriteTable writes the CORDIC arctangent table and gain reciprocal for frac
// fractional bits and n iterations to w, as Go source.
func WriteTable(w io.Writer, frac uint, n int) error {
	if frac > MaxFrac {
		return fmt.Errorf("invalid number of fractional bits: %d", frac)
	}
	if n <= 0 {
		return fmt.Errorf("invalid iteration count: %d", n)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// atan(2**-i) with %d fractional bits, rounded to nearest.\n", frac)
	fmt.Fprintf(&buf, "var atanTable = [%d]int64{\n", n)
	for i := 0; i < n; i++ {
		a := consts.Atan(i)
		v, ok := consts.Scale(a, frac)
		if !ok {
			return fmt.Errorf("atan(2**-%d) overflows with %d fractional bits", i, frac)
		}
		fmt.Fprintf(&buf, "\t%#x, // %d: %.15g\n", v, i, a)
	}
	buf.WriteString("}\n\n")
	k := consts.InvGain(n)
	v, _ := consts.Scale(k, frac)
	fmt.Fprintf(&buf, "// 1/K for %d iterations: %.15g\n", n, k)
	fmt.Fprintf(&buf, "const invGain = %#x\n", v)
	_, err := w.Write(buf.Bytes())
	return err
}
