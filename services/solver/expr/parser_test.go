// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package expr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue int
		wantStr   string
	}{
		{"single_number", "42", 42, "42"},
		{"precedence", "1 + 2 * 3", 7, "1 + 2 * 3"},
		{"parens_override", "(1 + 2) * 3", 9, "(1 + 2) * 3"},
		{"left_assoc_sub", "10 - 4 - 3", 3, "10 - 4 - 3"},
		{"left_assoc_div", "100 / 5 / 2", 10, "100 / 5 / 2"},
		{"right_parens_kept", "8 / (4 / 2)", 4, "8 / (4 / 2)"},
		{"redundant_parens_dropped", "(3 * 2) + 2", 8, "3 * 2 + 2"},
		{"mixed", "25 * 4 - 50", 50, "25 * 4 - 50"},
		{"no_spaces", "12+3*4", 24, "12 + 3 * 4"},
		{"extra_whitespace", "  7 *   8 ", 56, "7 * 8"},
		{"nested_parens", "((2 + 2))", 4, "2 + 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.wantValue, e.Value())
			require.Equal(t, tt.wantStr, e.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrParse},
		{"only_operator", "+", ErrParse},
		{"missing_operand", "1 +", ErrParse},
		{"adjacent_numbers", "1 2", ErrParse},
		{"unknown_symbol", "a + 2", ErrUnknownSymbol},
		{"unclosed_paren", "(1 + 2", ErrMismatchedParens},
		{"stray_close_paren", "1 + 2)", ErrMismatchedParens},
		{"inexact_division", "5 / 2", ErrInvalidExpression},
		{"division_by_zero", "5 / (2 - 2)", ErrInvalidExpression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestParseRoundTrip checks that rendering and reparsing preserves both the
// value and the canonical form.
func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"3 * 2 + 2",
		"3 * (2 + 2)",
		"4 - (2 + 2)",
		"4 - 2 + 2",
		"100 / (25 - 5) * 3",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Parse(input)
			require.NoError(t, err)

			second, err := Parse(first.String())
			require.NoError(t, err)

			require.Equal(t, first.Value(), second.Value())
			require.Equal(t, first.String(), second.String())
		})
	}
}
