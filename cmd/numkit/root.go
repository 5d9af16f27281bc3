// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numkit/batch"
)

var (
	flagLogLevel  string
	flagLogFormat string

	// logger is configured by the root PersistentPreRunE from the log flags.
	logger = batch.NoopLogger()
)

var rootCmd = &cobra.Command{
	Use:          "numkit",
	Short:        "Inspect small numeric utilities from the command line",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `numkit evaluates scalar, series, vector, complex and determinant helpers
and prints the results. Pass negative numbers after "--", e.g. numkit sqrt -- -4.`,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format: text or json")
}

// Execute is called by main. An interrupt cancels the command context so
// batch evaluation stops scheduling new jobs.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setupLogging builds the package logger from --log-level/--log-format.
// Logs always go to stderr so stdout carries only results.
func setupLogging(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(flagLogLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	switch strings.ToLower(flagLogFormat) {
	case "text":
		logger = batch.NewTextLogger(cmd.ErrOrStderr(), level)
	case "json":
		logger = batch.NewJSONLogger(cmd.ErrOrStderr(), level)
	default:
		return fmt.Errorf("invalid --log-format %q: want text or json", flagLogFormat)
	}

	return nil
}
