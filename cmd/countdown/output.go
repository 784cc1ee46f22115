// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// CLIExitSuccess indicates the command completed and a solution was found.
	CLIExitSuccess = 0

	// CLIExitNoSolution indicates the command completed but no solution exists
	// within the allowed tolerance.
	CLIExitNoSolution = 1

	// CLIExitError indicates the command failed due to invalid input or an
	// internal error.
	CLIExitError = 2
)

// =============================================================================
// STRUCTURED OUTPUT
// =============================================================================

// CommandResult is the envelope for JSON output emitted with --json.
type CommandResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OutputJSON writes v as indented JSON to stdout.
//
// Inputs:
//   - v: any JSON-serializable value
//
// Outputs:
//   - error: marshaling failure
func OutputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// OutputError writes an error to stderr, as a JSON envelope when jsonOut is
// set, and exits with CLIExitError.
func OutputError(err error, jsonOut bool) {
	if jsonOut {
		_ = OutputJSON(CommandResult{Success: false, Error: err.Error()})
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(CLIExitError)
}
