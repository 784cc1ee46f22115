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
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/countdown/pkg/ux"
	"github.com/AleutianAI/countdown/services/solver/expr"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse and evaluate an arithmetic expression",
	Long: `Parse reads an infix expression over + - * / and parentheses,
evaluates it, and prints the canonical minimally parenthesized form.

Division must be exact; "5 / 2" is rejected.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "emit the result as JSON")
}

// parseOutput is the --json payload for a parse run.
type parseOutput struct {
	Input      string `json:"input"`
	Expression string `json:"expression"`
	Value      int    `json:"value"`
}

func runParse(cmd *cobra.Command, args []string) {
	input := strings.Join(args, " ")

	e, err := expr.Parse(input)
	if err != nil {
		OutputError(err, parseJSON)
	}

	if parseJSON {
		_ = OutputJSON(CommandResult{Success: true, Data: parseOutput{
			Input:      input,
			Expression: e.String(),
			Value:      e.Value(),
		}})
		return
	}
	fmt.Printf("%s = %s\n", ux.Highlight(e.String()), ux.Number(strconv.Itoa(e.Value())))
}
