// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package expr models immutable binary integer arithmetic expressions.
//
// An Expr is either a literal integer or an operator applied to two child
// expressions. Trees are built with Literal and Compose, evaluated lazily
// with Value, and rendered back to minimally parenthesized infix text with
// String. Parse builds a tree from infix text via shunting-yard.
//
// Division is restricted to exact integer quotients, and the restriction is
// enforced when a node is composed rather than when it is evaluated. A tree
// that exists is always valid.
//
// # Thread Safety
//
// Expr is NOT safe for concurrent use: Value memoizes its result on first
// call. Share trees across goroutines only after forcing evaluation.
package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is one of the four binary arithmetic operators.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
)

// String returns the operator symbol.
func (o Op) String() string {
	return string(o)
}

// Valid reports whether o is one of the four supported operators.
func (o Op) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// Precedence returns the binding strength of the operator. Addition and
// subtraction bind at 2, multiplication and division at 3.
func (o Op) Precedence() int {
	switch o {
	case OpAdd, OpSub:
		return 2
	case OpMul, OpDiv:
		return 3
	}
	return 0
}

// Associative reports whether operand grouping is irrelevant for o.
// Only + and * qualify; - and / are left-associative.
func (o Op) Associative() bool {
	return o == OpAdd || o == OpMul
}

// Apply evaluates a o b with integer semantics. Division truncates, which
// coincides with exact division for every quotient the solver produces.
func (o Op) Apply(a, b int) int {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	}
	return 0
}

// side marks which operand position a child occupies during rendering.
type side int

const (
	sideNone side = iota
	sideLeft
	sideRight
)

// Expr is an immutable binary integer arithmetic expression.
//
// A literal Expr has op == "" and holds its value directly. An operator
// Expr owns its two children: Compose consumes them, mirroring how numbers
// are used up in the puzzle, and they must not be reused independently.
type Expr struct {
	op    Op // "" for literals
	left  *Expr
	right *Expr

	value     int
	evaluated bool
}

// Literal builds a leaf expression holding n.
func Literal(n int) *Expr {
	return &Expr{value: n, evaluated: true}
}

// Compose builds an operator node over two child expressions.
//
// Inputs:
//   - left: Left operand. Ownership transfers to the new node.
//   - right: Right operand. Ownership transfers to the new node.
//   - op: One of the four arithmetic operators.
//
// Outputs:
//   - *Expr: The composed expression.
//   - error: ErrInvalidExpression if op is division and left is not an
//     exact multiple of right (or right evaluates to zero).
//
// Division validity is checked here, never later: an Expr that exists can
// always be evaluated.
func Compose(left, right *Expr, op Op) (*Expr, error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("compose %q: nil operand", op)
	}
	if !op.Valid() {
		return nil, fmt.Errorf("compose: unknown operator %q", op)
	}
	if op == OpDiv {
		divisor := right.Value()
		if divisor == 0 || left.Value()%divisor != 0 {
			return nil, fmt.Errorf("%w: %d / %d", ErrInvalidExpression, left.Value(), divisor)
		}
	}
	return &Expr{op: op, left: left, right: right}, nil
}

// IsLiteral reports whether e is a leaf.
func (e *Expr) IsLiteral() bool {
	return e.op == ""
}

// Op returns the operator symbol, or "" for literals.
func (e *Expr) Op() Op {
	return e.op
}

// Value returns the integer value of the expression, computing it on first
// call and caching it. Literals return their stored value immediately.
func (e *Expr) Value() int {
	if !e.evaluated {
		e.value = e.op.Apply(e.left.Value(), e.right.Value())
		e.evaluated = true
	}
	return e.value
}

// Compare orders two expressions by evaluated value only, not structurally.
// It returns a negative number, zero, or a positive number as e is less
// than, equal to, or greater than other.
func (e *Expr) Compare(other *Expr) int {
	return e.Value() - other.Value()
}

// String renders the expression as infix text with the minimum parentheses
// required for an unambiguous re-parse.
//
// A child is wrapped when its operator binds strictly looser than the
// parent's, or when it sits on the right of - or / regardless of
// precedence. The asymmetry is what distinguishes "4 - (2 + 2)" from
// "4 - 2 + 2".
func (e *Expr) String() string {
	return e.render("", sideNone)
}

func (e *Expr) render(parentOp Op, pos side) string {
	if e.IsLiteral() {
		return strconv.Itoa(e.value)
	}

	var sb strings.Builder
	r1 := e.left.render(e.op, sideLeft)
	r2 := e.right.render(e.op, sideRight)

	needParens := false
	switch {
	case parentOp != "" && parentOp.Precedence() > e.op.Precedence():
		needParens = true
	case parentOp != "" && !parentOp.Associative() && pos == sideRight:
		needParens = true
	}

	if needParens {
		sb.WriteByte('(')
	}
	sb.WriteString(r1)
	sb.WriteByte(' ')
	sb.WriteString(string(e.op))
	sb.WriteByte(' ')
	sb.WriteString(r2)
	if needParens {
		sb.WriteByte(')')
	}
	return sb.String()
}
