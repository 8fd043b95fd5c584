// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"
)

var joinCmd = &cobra.Command{
	Use:   "join [ITEM...]",
	Short: "Joins items with a delimiter between adjacent ones",
	Args:  cobra.ArbitraryArgs,
	RunE:  runJoin,
}

func init() {
	joinCmd.Flags().StringP("delim", "d", "", "delimiter (default from config, a single space)")
	rootCmd.AddCommand(joinCmd)
}

func runJoin(cmd *cobra.Command, args []string) error {
	res, err := service.Join(args, delimiter(cmd))
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
