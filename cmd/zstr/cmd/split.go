// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split TEXT",
	Short: "Splits TEXT around a delimiter, dropping empty segments",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

func init() {
	splitCmd.Flags().StringP("delim", "d", "", "delimiter (default from config, a single space)")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	res, err := service.Split(args[0], delimiter(cmd))
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
