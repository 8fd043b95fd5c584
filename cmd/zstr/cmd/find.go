// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find TEXT NEEDLE",
	Short: "Prints the offset of the first occurrence of NEEDLE in TEXT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := service.Find(args[0], args[1])
		if err != nil {
			return err
		}
		return printResult(cmd, res)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Compares A and B byte by byte and prints -1, 0 or 1",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := service.Compare(args[0], args[1])
		if err != nil {
			return err
		}
		return printResult(cmd, res)
	},
}

var concatCmd = &cobra.Command{
	Use:   "concat PART...",
	Short: "Concatenates all parts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := service.Concat(args)
		if err != nil {
			return err
		}
		return printResult(cmd, res)
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(concatCmd)
}
