// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/KirilStrezikozin/zstring/internal"
	"github.com/KirilStrezikozin/zstring/internal/config"
	"github.com/KirilStrezikozin/zstring/internal/services"
	"github.com/KirilStrezikozin/zstring/internal/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	output  string

	cfg     config.Config
	logger  zerolog.Logger
	service services.IStringService
)

var rootCmd = &cobra.Command{
	Use:   "zstr",
	Short: "Zero-terminated byte string operations",
	Long: `zstr runs split, join, find, compare and concat on zero-terminated
byte strings, allocating every intermediate result through the configured
allocator and checking that all of them are released.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+types.DefaultConfigFilePath+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: text or json")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(config.Resolve(cfgFile))
	if err != nil {
		return err
	}

	if output != "" {
		cfg.Output = types.OutputFormat(output)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().
		Timestamp().
		Logger()

	a, tracker, err := internal.NewAllocator(cfg, logger)
	if err != nil {
		return err
	}

	service = services.NewStringService(a, tracker, logger)
	logger.Debug().
		Str("allocator", string(cfg.Allocator)).
		Bool("tracking", tracker != nil).
		Msg("ready")
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if service == nil {
		return nil
	}
	return service.Close()
}

func printResult(cmd *cobra.Command, res internal.Result) error {
	return res.Write(cmd.OutOrStdout(), cfg.Output)
}

// delimiter returns the --delim flag value when given, else the configured
// delimiter.
func delimiter(cmd *cobra.Command) []byte {
	if cmd.Flags().Changed("delim") {
		d, _ := cmd.Flags().GetString("delim")
		return []byte(d)
	}
	return []byte(cfg.Delimiter)
}
