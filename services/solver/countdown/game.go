// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package countdown solves the Countdown numbers game: combine a multiset
// of integers with + - * / into a target (or the closest reachable value).
//
// The package adapts the puzzle to the generic engine in
// services/solver/search and replays winning move sequences through
// services/solver/expr to produce a printable arithmetic expression.
package countdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AleutianAI/countdown/services/solver/expr"
	"github.com/AleutianAI/countdown/services/solver/search"
)

// ErrNoSolution is returned by Solve when the search frontier empties
// without reaching the target. It is an expected, recoverable outcome:
// many instances have no exact solution, and callers typically widen the
// tolerance and retry.
var ErrNoSolution = errors.New("no path found")

// Game is a single puzzle instance.
//
// Thread Safety: Solve constructs a fresh engine per call and shares no
// mutable state, so a Game is safe for concurrent Solve calls.
type Game struct {
	numbers []int
	target  int

	maxDepth int
	logger   *slog.Logger
	tracer   *search.Tracer
}

// GameOption configures a Game during creation.
type GameOption func(*Game)

// WithMaxDepth bounds the search depth (0 = unbounded).
func WithMaxDepth(maxDepth int) GameOption {
	return func(g *Game) {
		g.maxDepth = maxDepth
	}
}

// WithLogger sets the structured logger passed to the engine.
func WithLogger(logger *slog.Logger) GameOption {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithTracer sets the tracer passed to the engine.
func WithTracer(tracer *search.Tracer) GameOption {
	return func(g *Game) {
		g.tracer = tracer
	}
}

// NewGame creates a puzzle instance.
//
// Inputs:
//   - numbers: The available numbers. Copied; must be non-empty.
//   - target: The number to reach.
//   - opts: Optional configuration.
//
// Outputs:
//   - *Game: The instance.
//   - error: Non-nil if numbers is empty.
func NewGame(numbers []int, target int, opts ...GameOption) (*Game, error) {
	if len(numbers) == 0 {
		return nil, fmt.Errorf("countdown: at least one number is required")
	}

	g := &Game{
		numbers: append([]int(nil), numbers...),
		target:  target,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g, nil
}

// Numbers returns a copy of the available numbers.
func (g *Game) Numbers() []int {
	return append([]int(nil), g.numbers...)
}

// Target returns the target number.
func (g *Game) Target() int {
	return g.target
}

// Solution is a solved instance: the move sequence and the matching
// expression tree with its exact value.
type Solution struct {
	// Path holds the moves from the initial numbers to the goal, oldest
	// first. Empty when a starting number was already within tolerance.
	Path []Move `json:"path"`

	// Expr is the arithmetic expression rebuilt from Path (or the closest
	// original literal for an empty path).
	Expr *expr.Expr `json:"-"`

	// Rendered and Value duplicate Expr's string form and evaluation for
	// machine output.
	Rendered string `json:"expression"`
	Value    int    `json:"value"`

	// RunID correlates the solution with the engine run that found it.
	RunID string `json:"run_id"`
}

// Solve searches for a move sequence reaching the target within tolerance.
//
// Inputs:
//   - ctx: Carried for tracing and log correlation.
//   - tolerance: Maximum acceptable absolute difference from the target.
//     Must be non-negative.
//
// Outputs:
//   - *Solution: The found solution.
//   - error: ErrNoSolution (wrapped) when the state space is exhausted, or
//     a validation/replay error.
//
// Solve runs exactly one search. The retry-with-wider-tolerance loop
// belongs to the caller.
func (g *Game) Solve(ctx context.Context, tolerance int) (*Solution, error) {
	if tolerance < 0 {
		return nil, fmt.Errorf("countdown: tolerance must be non-negative, got %d", tolerance)
	}

	goal := func(n *search.Node[[]int, Move]) bool {
		for _, number := range n.State() {
			if abs(number-g.target) <= tolerance {
				return true
			}
		}
		return false
	}

	// Admissible in the informal sense: reaching the goal requires at
	// least closing the smallest remaining gap.
	heuristic := func(state []int) int {
		best := abs(state[0] - g.target)
		for _, number := range state[1:] {
			if d := abs(number - g.target); d < best {
				best = d
			}
		}
		return best
	}

	engine, err := search.New[[]int, Move](numbersDomain{}, goal, heuristic,
		search.WithMaxDepth[[]int, Move](g.maxDepth),
		search.WithLogger[[]int, Move](g.logger),
		search.WithTracer[[]int, Move](g.tracer),
	)
	if err != nil {
		return nil, fmt.Errorf("countdown: configure search: %w", err)
	}

	res := engine.Search(ctx, g.Numbers())
	if !res.Found {
		return nil, fmt.Errorf("%w: target %d tolerance %d", ErrNoSolution, g.target, tolerance)
	}

	solution, err := g.replay(res.Path)
	if err != nil {
		return nil, err
	}
	solution.RunID = res.RunID
	return solution, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
