// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/db47h/fixp"
	"github.com/db47h/fixp/internal/gen"
)

var (
	cfgFile string
	outFile string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate format declarations",
	Long: `Generate reads a formats file (.toml, .yaml or .yml) and writes the
corresponding type declarations. The output is written to stdout unless
--output is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := gen.Load(cfgFile)
		if err != nil {
			printError("loading formats", err)
			return err
		}
		src, err := gen.Generate(c)
		if err != nil {
			printError("generating code", err)
			return err
		}
		fixp.Logger().Debug("fixgen: generated formats",
			"package", c.Package, "formats", len(c.Formats), "bytes", len(src))
		if outFile == "" {
			_, err = os.Stdout.Write(src)
			return err
		}
		if err = os.WriteFile(outFile, src, 0o644); err != nil {
			printError("writing output", err)
			return err
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&cfgFile, "config", "c", "formats.toml", "formats file")
	generateCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(generateCmd)
}
