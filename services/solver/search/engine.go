// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// GoalFunc reports whether a node satisfies the search goal.
type GoalFunc[S, M any] func(*Node[S, M]) bool

// HeuristicFunc estimates the remaining distance from a state to the goal.
// Estimates must be non-negative; each node caches its estimate after the
// first computation.
type HeuristicFunc[S any] func(S) int

// Result is the outcome of a single search run. Exhausting the frontier
// without reaching the goal is an expected outcome, reported through Found
// rather than an error: many puzzle instances simply have no solution and
// the caller decides whether to relax the goal and retry.
type Result[M any] struct {
	// RunID correlates this run across logs, traces, and metrics.
	RunID string

	// Found is true when the goal test succeeded. Path then holds the moves
	// from the root to the goal node, oldest first (empty when the root
	// itself was the goal). On failure Path is nil.
	Found bool
	Path  []M

	// Counters for observability.
	Expanded            int
	Generated           int
	DiscardedWorse      int
	DiscardedInFrontier int
	DiscardedDepth      int

	Elapsed time.Duration
}

// Engine runs best-first searches over a Domain. Construct one per logical
// caller; an Engine holds no per-run state but is not synchronized.
type Engine[S, M any] struct {
	domain    Domain[S, M]
	goal      GoalFunc[S, M]
	heuristic HeuristicFunc[S]

	maxDepth int
	logger   *slog.Logger
	tracer   *Tracer
}

// Option configures an Engine during construction.
type Option[S, M any] func(*Engine[S, M])

// WithMaxDepth bounds the search depth. Children at depth >= maxDepth are
// not added to the frontier. Zero (the default) means unbounded.
func WithMaxDepth[S, M any](maxDepth int) Option[S, M] {
	return func(e *Engine[S, M]) {
		e.maxDepth = maxDepth
	}
}

// WithLogger sets the structured logger for search lifecycle events.
func WithLogger[S, M any](logger *slog.Logger) Option[S, M] {
	return func(e *Engine[S, M]) {
		e.logger = logger
	}
}

// WithTracer sets the tracer used to span each search run.
func WithTracer[S, M any](tracer *Tracer) Option[S, M] {
	return func(e *Engine[S, M]) {
		e.tracer = tracer
	}
}

// New creates a search engine.
//
// Inputs:
//   - domain: State capabilities (identity, move enumeration, application).
//   - goal: Goal test, evaluated when a node is popped from the frontier.
//   - heuristic: Non-negative estimate of remaining distance to goal.
//   - opts: Optional configuration.
//
// Outputs:
//   - *Engine: The configured engine.
//   - error: Non-nil if any required capability is nil.
func New[S, M any](domain Domain[S, M], goal GoalFunc[S, M], heuristic HeuristicFunc[S], opts ...Option[S, M]) (*Engine[S, M], error) {
	if domain == nil {
		return nil, fmt.Errorf("search: domain must not be nil")
	}
	if goal == nil {
		return nil, fmt.Errorf("search: goal must not be nil")
	}
	if heuristic == nil {
		return nil, fmt.Errorf("search: heuristic must not be nil")
	}

	e := &Engine[S, M]{
		domain:    domain,
		goal:      goal,
		heuristic: heuristic,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.tracer == nil {
		e.tracer = NewTracer(e.logger, false)
	}
	return e, nil
}

// Search runs the search to completion or frontier exhaustion.
//
// Inputs:
//   - ctx: Carried for tracing and log correlation only. The engine has no
//     cancellation point; callers wanting a time bound must impose it
//     externally (the depth bound is the only built-in limiter).
//   - initial: The initial domain state.
//
// Outputs:
//   - Result: Found/Path plus run counters. Never an error: an empty
//     frontier is a normal, recoverable outcome.
//
// The frontier is ordered by pathLength + heuristic; equal priorities break
// by identity key, so the expansion order is deterministic for identical
// inputs. A child whose identity key is already in the frontier is
// discarded even when its path is cheaper. That trade-off is intentional
// and observable through DiscardedInFrontier; changing it would change
// which solutions ambiguous instances report.
func (e *Engine[S, M]) Search(ctx context.Context, initial S) Result[M] {
	res := Result[M]{RunID: uuid.NewString()}
	start := time.Now()

	ctx, span := e.tracer.StartSearch(ctx, res.RunID, e.maxDepth)
	defer func() {
		e.tracer.EndSearch(span, res.Found, len(res.Path), res.Expanded, res.Generated)
		recordSearch(res.Found, res.Elapsed, res.Expanded, len(res.Path),
			res.DiscardedWorse, res.DiscardedInFrontier, res.DiscardedDepth)
	}()

	root := NewRoot(e.domain, initial)

	open := &frontier[S, M]{}
	heap.Init(open)
	heap.Push(open, &frontierItem[S, M]{
		node:     root,
		priority: root.PathLength() + root.heuristicFor(e.heuristic),
	})
	inFrontier := map[string]struct{}{root.ID(): {}}
	bestKnown := make(map[string]*Node[S, M])

	e.logger.DebugContext(ctx, "search started",
		slog.String("run_id", res.RunID),
		slog.String("root", root.ID()),
		slog.Int("max_depth", e.maxDepth),
	)

	for open.Len() > 0 {
		current := heap.Pop(open).(*frontierItem[S, M]).node
		delete(inFrontier, current.ID())

		if e.goal(current) {
			res.Found = true
			res.Path = current.PathToRoot()
			res.Elapsed = time.Since(start)
			e.logger.InfoContext(ctx, "search solved",
				slog.String("run_id", res.RunID),
				slog.Int("path_length", len(res.Path)),
				slog.Int("expanded", res.Expanded),
				slog.Duration("elapsed", res.Elapsed),
			)
			return res
		}

		res.Expanded++
		for _, child := range current.Expand() {
			res.Generated++
			key := child.ID()

			if best, ok := bestKnown[key]; ok && child.PathLength() >= best.PathLength() {
				res.DiscardedWorse++
				continue
			}
			if _, ok := inFrontier[key]; ok {
				res.DiscardedInFrontier++
				continue
			}
			if e.maxDepth > 0 && child.PathDepth() >= e.maxDepth {
				res.DiscardedDepth++
				continue
			}

			heap.Push(open, &frontierItem[S, M]{
				node:     child,
				priority: child.PathLength() + child.heuristicFor(e.heuristic),
			})
			inFrontier[key] = struct{}{}
			bestKnown[key] = child
		}
	}

	res.Elapsed = time.Since(start)
	e.logger.InfoContext(ctx, "search exhausted",
		slog.String("run_id", res.RunID),
		slog.Int("expanded", res.Expanded),
		slog.Int("generated", res.Generated),
		slog.Duration("elapsed", res.Elapsed),
	)
	return res
}

// frontierItem pairs a node with its evaluation priority at insert time.
type frontierItem[S, M any] struct {
	node     *Node[S, M]
	priority int
}

// frontier is a min-heap over pathLength + heuristic with identity-key
// tie-breaking.
type frontier[S, M any] []*frontierItem[S, M]

func (f frontier[S, M]) Len() int { return len(f) }

func (f frontier[S, M]) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].node.Less(f[j].node)
}

func (f frontier[S, M]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[S, M]) Push(x any) {
	*f = append(*f, x.(*frontierItem[S, M]))
}

func (f *frontier[S, M]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
