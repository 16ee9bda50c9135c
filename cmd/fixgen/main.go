// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fixgen generates the named fixed-point format declarations of a
// package and prints CORDIC tables for a given format.
package main

import (
	"os"

	"github.com/db47h/fixp/cmd/fixgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
