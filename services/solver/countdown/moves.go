// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package countdown

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AleutianAI/countdown/services/solver/expr"
)

// Move combines two available numbers with an operator. Applying it removes
// both operands from the state and inserts the computed result.
type Move struct {
	A  int     `json:"a"`
	Op expr.Op `json:"op"`
	B  int     `json:"b"`
}

// Result returns the number the move produces.
func (m Move) Result() int {
	return m.Op.Apply(m.A, m.B)
}

// String renders the move as "a op b = result".
func (m Move) String() string {
	return fmt.Sprintf("%d %s %d = %d", m.A, m.Op, m.B, m.Result())
}

// numbersDomain adapts the available-numbers multiset to the search
// engine's capability interface. The state is a plain []int; the identity
// key is its sorted canonical form, which collapses every permutation of
// the same multiset into one search state.
type numbersDomain struct{}

// ID returns the canonical identity key: the numbers sorted ascending and
// comma-joined.
func (numbersDomain) ID(state []int) string {
	sorted := make([]int, len(state))
	copy(sorted, state)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// Moves enumerates every legal combination of an unordered pair of
// positions: multiplication and addition always, subtraction of the smaller
// from the larger (never a negative result), and division of the multiple
// by its divisor in either direction when it divides evenly (never a
// fraction).
func (numbersDomain) Moves(state []int) []Move {
	var moves []Move
	for i := 0; i < len(state); i++ {
		for j := i + 1; j < len(state); j++ {
			n1, n2 := state[i], state[j]

			moves = append(moves,
				Move{A: n1, Op: expr.OpMul, B: n2},
				Move{A: n1, Op: expr.OpAdd, B: n2},
			)

			if n2 != 0 && n1%n2 == 0 {
				moves = append(moves, Move{A: n1, Op: expr.OpDiv, B: n2})
			}
			if n1 != 0 && n2%n1 == 0 {
				moves = append(moves, Move{A: n2, Op: expr.OpDiv, B: n1})
			}

			if n1 >= n2 {
				moves = append(moves, Move{A: n1, Op: expr.OpSub, B: n2})
			} else {
				moves = append(moves, Move{A: n2, Op: expr.OpSub, B: n1})
			}
		}
	}
	return moves
}

// Apply removes the first occurrence of each operand and appends the
// result. Every move shrinks the multiset by one, which bounds the search.
func (numbersDomain) Apply(state []int, move Move) []int {
	next := make([]int, 0, len(state)-1)
	removedA, removedB := false, false
	for _, n := range state {
		if !removedA && n == move.A {
			removedA = true
			continue
		}
		if !removedB && n == move.B {
			removedB = true
			continue
		}
		next = append(next, n)
	}
	return append(next, move.Result())
}
