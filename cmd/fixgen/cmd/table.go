// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/db47h/fixp/internal/cordic"
	"github.com/db47h/fixp/internal/gen"
)

var (
	tableFrac  uint
	tableIters int
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print a CORDIC arctangent table",
	Long: `Table prints the arctangent table and gain reciprocal of the CORDIC
algorithm as Go source, scaled to the given number of fractional bits. When
--iterations is 0, the default iteration count of the format is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n := tableIters
		if n == 0 {
			n = cordic.Iterations(tableFrac)
		}
		if err := gen.WriteTable(os.Stdout, tableFrac, n); err != nil {
			printError("writing table", err)
			return err
		}
		return nil
	},
}

func init() {
	tableCmd.Flags().UintVarP(&tableFrac, "frac", "f", 16, "number of fractional bits")
	tableCmd.Flags().IntVarP(&tableIters, "iterations", "n", 0, "number of iterations")
	rootCmd.AddCommand(tableCmd)
}
