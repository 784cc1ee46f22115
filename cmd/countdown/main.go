// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command countdown solves the Countdown numbers game: it searches for a
// sequence of arithmetic operations combining six numbers into a target,
// widening the tolerance when no exact solution exists.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/countdown/pkg/logging"
	"github.com/AleutianAI/countdown/services/solver/countdown"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Countdown numbers game solver",
	Long: `countdown searches for a sequence of + - * / operations that combines
a multiset of numbers into a target value, or the closest reachable one.

Give it numbers and a target, or let it generate a random instance:

  countdown solve 25 50 75 100 3 6 --target 952
  countdown solve --seed 42
  countdown parse "4 - (2 + 2)"
  countdown bench -n 100`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML/JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(benchCmd)
}

// loadConfig merges file, env, and flag configuration for a command run.
func loadConfig() (countdown.Config, error) {
	return countdown.LoadConfig(configPath)
}

// newLogger builds the CLI logger, letting --log-level override the config.
func newLogger(cfg countdown.Config) *logging.Logger {
	level := cfg.Observability.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return logging.New(logging.Config{
		Level:   logging.ParseLevel(level),
		Service: "cli",
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(CLIExitError)
	}
}
