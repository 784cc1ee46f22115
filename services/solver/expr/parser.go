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
	"fmt"
	"strconv"
)

// tokenKind classifies lexer output.
type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenOpenParen
	tokenCloseParen
)

// token is a single lexed unit. num is set for tokenNumber, op for
// tokenOperator.
type token struct {
	kind tokenKind
	num  int
	op   Op
}

// Parse builds an expression tree from infix text.
//
// Inputs:
//   - s: Infix arithmetic over non-negative integers, the four operators,
//     and parentheses. Whitespace is ignored.
//
// Outputs:
//   - *Expr: The parsed tree.
//   - error: ErrUnknownSymbol or ErrMismatchedParens for malformed text
//     (both match ErrParse), or ErrInvalidExpression if a division
//     subexpression is inexact.
//
// The parse runs in three stages: tokenize, shunting-yard to postfix
// (equal precedence pops, so - and / group left), then a fold of the
// postfix sequence through Compose. Partial state is discarded on failure.
func Parse(s string) (*Expr, error) {
	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}

	postfix, err := toPostfix(tokens)
	if err != nil {
		return nil, err
	}

	var stack []*Expr
	for _, t := range postfix {
		if t.kind == tokenNumber {
			stack = append(stack, Literal(t.num))
			continue
		}

		if len(stack) < 2 {
			return nil, fmt.Errorf("%w: operator %q is missing an operand", ErrParse, t.op)
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		node, err := Compose(left, right, t.op)
		if err != nil {
			return nil, err
		}
		stack = append(stack, node)
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: empty or incomplete expression", ErrParse)
	}
	return stack[0], nil
}

// tokenize splits s into numbers, operators, and parentheses.
func tokenize(s string) ([]token, error) {
	var tokens []token

	onNumber := false
	number := 0
	flush := func() {
		if onNumber {
			tokens = append(tokens, token{kind: tokenNumber, num: number})
			onNumber = false
			number = 0
		}
	}

	for _, c := range s {
		if c >= '0' && c <= '9' {
			number = number*10 + int(c-'0')
			onNumber = true
			continue
		}
		flush()

		switch c {
		case ' ', '\t', '\n':
		case '(':
			tokens = append(tokens, token{kind: tokenOpenParen})
		case ')':
			tokens = append(tokens, token{kind: tokenCloseParen})
		case '+', '-', '*', '/':
			tokens = append(tokens, token{kind: tokenOperator, op: Op(c)})
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, strconv.QuoteRune(c))
		}
	}
	flush()

	return tokens, nil
}

// toPostfix reorders tokens into postfix via an operator stack.
// Parentheses scope the reordering; ties in precedence pop, which makes
// every operator left-associative.
func toPostfix(tokens []token) ([]token, error) {
	var output []token
	var operators []token

	for _, t := range tokens {
		switch t.kind {
		case tokenNumber:
			output = append(output, t)

		case tokenOperator:
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.kind == tokenOpenParen || t.op.Precedence() > top.op.Precedence() {
					break
				}
				operators = operators[:len(operators)-1]
				output = append(output, top)
			}
			operators = append(operators, t)

		case tokenOpenParen:
			operators = append(operators, t)

		case tokenCloseParen:
			openFound := false
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if top.kind == tokenOpenParen {
					openFound = true
					break
				}
				output = append(output, top)
			}
			if !openFound {
				return nil, ErrMismatchedParens
			}
		}
	}

	for len(operators) > 0 {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.kind == tokenOpenParen {
			return nil, ErrMismatchedParens
		}
		output = append(output, top)
	}

	return output, nil
}
