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
	"errors"
	"fmt"
)

// Sentinel errors for expression construction and parsing.
var (
	// ErrInvalidExpression is returned when composing a division node whose
	// quotient is not an exact integer. The check runs at construction time
	// so an invalid tree can never exist.
	ErrInvalidExpression = errors.New("division is only allowed if the quotient is an integer")

	// ErrParse is the base error for all malformed input text. The more
	// specific parse errors below wrap it, so callers can match the whole
	// family with errors.Is(err, ErrParse).
	ErrParse = errors.New("expression parse error")

	// ErrUnknownSymbol is returned when tokenization hits a character that
	// is not a digit, operator, parenthesis, or whitespace.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown symbol", ErrParse)

	// ErrMismatchedParens is returned for an unclosed "(" or a stray ")".
	ErrMismatchedParens = fmt.Errorf("%w: mismatched parentheses", ErrParse)
)
