// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen generates Go declarations for named fixed-point formats from a
// TOML or YAML description, and prints CORDIC tables.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/db47h/fixp"
)

// DefaultPackage is the package name used when a configuration does not set
// one.
const DefaultPackage = "fixp"

// Format describes a named fixed-point format.
type Format struct {
	Name    string            `toml:"name" yaml:"name"`
	Storage string            `toml:"storage" yaml:"storage"`
	Frac    uint              `toml:"frac" yaml:"frac"`
	Policy  fixp.OverflowMode `toml:"policy" yaml:"policy"`
	Aliases []string          `toml:"aliases" yaml:"aliases"`
	Doc     string            `toml:"doc" yaml:"doc"`
}

// Config is the content of a formats file.
type Config struct {
	Package string   `toml:"package" yaml:"package"`
	Formats []Format `toml:"format" yaml:"format"`
}

// storageBits maps the supported storage types to their width.
var storageBits = map[string]uint{
	"int8": 8, "int16": 16, "int32": 32, "int64": 64,
	"uint8": 8, "uint16": 16, "uint32": 32, "uint64": 64,
}

// Load reads a formats file. The format of the file is selected by its
// extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Decode(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode decodes a configuration from r. format is "toml" or "yaml" (a leading
// dot is ignored). Unknown keys are an error. Defaults are applied and the
// configuration is validated.
func Decode(r io.Reader, format string) (*Config, error) {
	var c Config
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "toml":
		md, err := toml.NewDecoder(r).Decode(&c)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, fmt.Errorf("unknown key %q", keys[0].String())
		}
	case "yaml", "yml":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		d := yaml.NewDecoder(bytes.NewReader(data))
		d.KnownFields(true)
		if err := d.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Package == "" {
		c.Package = DefaultPackage
	}
}

// Validate checks that all formats are well formed. All problems found are
// reported.
func (c *Config) Validate() error {
	var errs []error
	if !token.IsIdentifier(c.Package) {
		errs = append(errs, fmt.Errorf("invalid package name %q", c.Package))
	}
	seen := make(map[string]bool)
	name := func(i int, n string) {
		switch {
		case !token.IsIdentifier(n) || !token.IsExported(n):
			errs = append(errs, fmt.Errorf("format %d: invalid name %q", i, n))
		case seen[n]:
			errs = append(errs, fmt.Errorf("format %d: duplicate name %q", i, n))
		}
		seen[n] = true
	}
	for i, f := range c.Formats {
		name(i, f.Name)
		for _, a := range f.Aliases {
			name(i, a)
		}
		bits, ok := storageBits[f.Storage]
		if !ok {
			errs = append(errs, fmt.Errorf("format %q: unsupported storage type %q", f.Name, f.Storage))
			continue
		}
		if f.Frac >= bits {
			errs = append(errs, fmt.Errorf("format %q: %d fractional bits do not fit in %s", f.Name, f.Frac, f.Storage))
		}
		if f.Policy > fixp.Trap {
			errs = append(errs, fmt.Errorf("format %q: invalid policy %d", f.Name, f.Policy))
		}
	}
	return errors.Join(errs...)
}

// Signed reports whether f uses a signed storage type.
func (f Format) Signed() bool {
	return !strings.HasPrefix(f.Storage, "u")
}

// Bits returns the width of f's storage type.
func (f Format) Bits() uint {
	return storageBits[f.Storage]
}

// PolicyType returns the name of the Policy type of f.
func (f Format) PolicyType() string {
	switch f.Policy {
	case fixp.Saturate:
		return "Saturating"
	case fixp.Trap:
		return "Trapping"
	}
	return "Wrapping"
}

// Describe returns a one-line description of f.
func (f Format) Describe() string {
	var (
		kind = "an unsigned"
		ib   = int(f.Bits()) - int(f.Frac)
	)
	if f.Signed() {
		kind = "a signed"
		ib--
	}
	var ovf string
	switch f.Policy {
	case fixp.Wrap:
		ovf = "wraps"
	case fixp.Saturate:
		ovf = "saturates"
	case fixp.Trap:
		ovf = "panics"
	}
	return fmt.Sprintf("%s %d-bit format with %d integer and %d fractional bits. Overflow %s.",
		kind, f.Bits(), ib, f.Frac, ovf)
}
