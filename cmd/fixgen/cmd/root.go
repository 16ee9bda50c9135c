// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/db47h/fixp"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fixgen",
	Short: "Code generator for the fixp fixed-point package",
	Long: `fixgen generates Go declarations for named fixed-point formats from a
TOML or YAML description, and prints CORDIC arctangent tables.

Commands:
  generate  - write the format declarations of a package
  table     - print the CORDIC table of a format`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
			fixp.SetLogger(slog.New(h))
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log table construction to stderr")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "fixgen: %s: %v\n", msg, err)
}
